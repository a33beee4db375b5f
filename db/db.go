// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wso2/doc-migration-platform/migration-service/config"
)

var database *gorm.DB

// Init opens the Postgres connection pool and stores the shared handle.
func Init(cfg *config.Config) error {
	pg := cfg.POSTGRESQL
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		pg.Host, pg.Port, pg.User, pg.Password, pg.DBName, pg.SSLMode)

	gormCfg := &gorm.Config{
		SkipDefaultTransaction: pg.DbConfigs.SkipDefaultTransaction,
		Logger: gormlogger.New(slogWriter{}, gormlogger.Config{
			SlowThreshold:             time.Duration(pg.DbConfigs.SlowThresholdMilliseconds) * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	gdb, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	if pg.DbConfigs.MaxIdleCount != nil {
		sqlDB.SetMaxIdleConns(int(*pg.DbConfigs.MaxIdleCount))
	}
	if pg.DbConfigs.MaxOpenCount != nil {
		sqlDB.SetMaxOpenConns(int(*pg.DbConfigs.MaxOpenCount))
	}
	if pg.DbConfigs.MaxIdleTimeSeconds != nil {
		sqlDB.SetConnMaxIdleTime(time.Duration(*pg.DbConfigs.MaxIdleTimeSeconds) * time.Second)
	}
	if pg.DbConfigs.MaxLifetimeSeconds != nil {
		sqlDB.SetConnMaxLifetime(time.Duration(*pg.DbConfigs.MaxLifetimeSeconds) * time.Second)
	}

	database = gdb
	return nil
}

// DB returns the shared handle bound to the given context.
func DB(ctx context.Context) *gorm.DB {
	return database.WithContext(ctx)
}

// Close closes the underlying connection pool.
func Close() error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// slogWriter adapts gorm's logger interface to slog.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...interface{}) {
	slog.Warn(fmt.Sprintf(format, args...))
}
