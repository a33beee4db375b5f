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

// Package dbmigrations holds the ordered, hand-written schema migrations.
// They are applied through gormigrate, which records applied ids in its
// migrations table so each migration runs at most once.
package dbmigrations

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var registered = []*gormigrate.Migration{
	migration001,
	migration002,
	migration003,
	migration004,
	migration005,
}

// Run applies every registered migration that has not been applied yet, in
// order.
func Run(db *gorm.DB) error {
	if err := gormigrate.New(db, gormigrate.DefaultOptions, registered).Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	return nil
}

func runSQL(tx *gorm.DB, statements ...string) error {
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
