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

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var config *Config

func GetConfig() *Config {
	return config
}

func init() {
	loadEnvs()
}

func loadEnvs() {
	config = &Config{}

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			panic(err)
		}
	}

	r := &configReader{}
	config.ServerHost = r.readOptionalString("SERVER_HOST", "")
	config.ServerPort = int(r.readOptionalInt64("SERVER_PORT", 8080))
	config.AuthHeader = r.readOptionalString("AUTH_HEADER", "Authorization")
	config.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)
	config.CORSAllowedOrigin = r.readOptionalString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	// Logging configuration
	config.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")

	// read database configs
	config.POSTGRESQL = POSTGRESQL{
		Host:     r.readOptionalString("DB_HOST", "localhost"),
		Port:     int(r.readOptionalInt64("DB_PORT", 5432)),
		User:     r.readOptionalString("DB_USER", "postgres"),
		Password: r.readOptionalString("DB_PASSWORD", "postgres"),
		DBName:   r.readOptionalString("DB_NAME", "doc_migration"),
		SSLMode:  r.readOptionalString("DB_SSL_MODE", "disable"),
	}
	config.POSTGRESQL.DbConfigs = DbConfigs{
		// gorm configs
		SkipDefaultTransaction:    r.readOptionalBool("GORM_SKIP_DEFAULT_TRANSACTION", true),
		SlowThresholdMilliseconds: r.readOptionalInt64("GORM_SLOW_THRESHOLD_MILLISECONDS", 200),

		// sql.DB configs
		MaxIdleCount:       r.readNullableInt64("DB_MAX_IDLE_COUNT"),
		MaxOpenCount:       r.readNullableInt64("DB_MAX_OPEN_COUNT"),
		MaxIdleTimeSeconds: r.readNullableInt64("DB_MAX_IDLE_TIME_SECONDS"),
		MaxLifetimeSeconds: r.readNullableInt64("DB_MAX_LIFETIME_SECONDS"),
	}

	// HTTP Server timeout configurations
	config.ReadTimeoutSeconds = int(r.readOptionalInt64("HTTP_READ_TIMEOUT_SECONDS", 10))
	config.WriteTimeoutSeconds = int(r.readOptionalInt64("HTTP_WRITE_TIMEOUT_SECONDS", 90))
	config.IdleTimeoutSeconds = int(r.readOptionalInt64("HTTP_IDLE_TIMEOUT_SECONDS", 60))
	config.MaxHeaderBytes = int(r.readOptionalInt64("HTTP_MAX_HEADER_BYTES", 65536)) // 1024 * 64

	// Database operation timeout configuration
	config.DbOperationTimeoutSeconds = int(r.readOptionalInt64("DB_OPERATION_TIMEOUT_SECONDS", 10))
	config.HealthCheckTimeoutSeconds = int(r.readOptionalInt64("HEALTH_CHECK_TIMEOUT_SECONDS", 5))

	// Use Version from ldflags or environment variable override
	config.PackageVersion = r.readOptionalString("DMP_VERSION", Version)

	config.IsLocalDevEnv = r.readOptionalBool("IS_LOCAL_DEV_ENV", false)

	// Composition server configuration
	config.Composition = CompositionConfig{
		Host:               r.readOptionalString("COMPOSITION_HOST", "localhost"),
		Port:               int(r.readOptionalInt64("COMPOSITION_PORT", 30354)),
		ConnectTimeoutSecs: int(r.readOptionalInt64("COMPOSITION_CONNECT_TIMEOUT_SECONDS", 10)),
		JobWaitTimeoutSecs: int(r.readOptionalInt64("COMPOSITION_JOB_WAIT_TIMEOUT_SECONDS", 120)),
		User:               r.readOptionalString("COMPOSITION_USER", ""),
		Password:           r.readOptionalString("COMPOSITION_PASSWORD", ""),
	}

	// Storage backend configuration
	config.Storage = StorageConfig{
		Backend:   StorageBackend(r.readOptionalString("STORAGE_BACKEND", string(StorageBackendFilesystem))),
		RootDir:   r.readOptionalString("STORAGE_ROOT_DIR", "./data/assets"),
		Endpoint:  r.readOptionalString("STORAGE_MINIO_ENDPOINT", ""),
		AccessKey: r.readOptionalString("STORAGE_MINIO_ACCESS_KEY", ""),
		SecretKey: r.readOptionalString("STORAGE_MINIO_SECRET_KEY", ""),
		Bucket:    r.readOptionalString("STORAGE_MINIO_BUCKET", "migration-assets"),
		UseSSL:    r.readOptionalBool("STORAGE_MINIO_USE_SSL", false),
	}

	config.PlacementRulesPath = r.readOptionalString("PLACEMENT_RULES_PATH", "placement-rules.yaml")

	config.KeyManagerConfigurations = KeyManagerConfigurations{
		// Comma-separated list of allowed issuers and audiences
		Issuer:        r.readOptionalStringList("KEY_MANAGER_ISSUER", "Document Migration Platform Local"),
		Audience:      r.readOptionalStringList("KEY_MANAGER_AUDIENCE", "localhost"),
		JWKSUrl:       r.readOptionalString("KEY_MANAGER_JWKS_URL", ""),
		DefaultIssuer: r.readOptionalString("KEY_MANAGER_DEFAULT_ISSUER", "Document Migration Platform Local"),
	}

	// Validate HTTP server configurations
	validateHTTPServerConfigs(config, r)

	validateStorageConfigs(config, r)

	r.logAndExitIfErrorsFound()

	slog.Info("configReader: configs loaded")
}

func validateHTTPServerConfigs(cfg *Config, r *configReader) {
	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		r.errors = append(r.errors, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort))
	}
	if cfg.ReadTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.ReadTimeoutSeconds))
	}
	if cfg.WriteTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_WRITE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.WriteTimeoutSeconds))
	}
	if cfg.ReadTimeoutSeconds >= cfg.WriteTimeoutSeconds {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS (%d) must be < HTTP_WRITE_TIMEOUT_SECONDS (%d)",
			cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds))
	}
	if cfg.IdleTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_IDLE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.IdleTimeoutSeconds))
	}
	if cfg.MaxHeaderBytes < 1024 || cfg.MaxHeaderBytes > 1048576 { // 1KB to 1MB
		r.errors = append(r.errors, fmt.Errorf("HTTP_MAX_HEADER_BYTES must be between 1024 and 1048576, got %d", cfg.MaxHeaderBytes))
	}
}

func validateStorageConfigs(cfg *Config, r *configReader) {
	switch cfg.Storage.Backend {
	case StorageBackendFilesystem:
		if cfg.Storage.RootDir == "" {
			r.errors = append(r.errors, fmt.Errorf("STORAGE_ROOT_DIR must be set for the filesystem backend"))
		}
	case StorageBackendMinio:
		if cfg.Storage.Endpoint == "" {
			r.errors = append(r.errors, fmt.Errorf("STORAGE_MINIO_ENDPOINT must be set for the minio backend"))
		}
	default:
		r.errors = append(r.errors, fmt.Errorf("STORAGE_BACKEND must be one of filesystem, minio; got %q", cfg.Storage.Backend))
	}
}

// configReader reads env vars and accumulates every problem so that a
// misconfigured process reports all of them at once before exiting.
type configReader struct {
	errors []error
}

func (r *configReader) readOptionalString(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func (r *configReader) readOptionalStringList(key, fallback string) []string {
	raw := r.readOptionalString(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (r *configReader) readOptionalInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("%s must be an integer, got %q", key, raw))
		return fallback
	}
	return v
}

func (r *configReader) readNullableInt64(key string) *int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("%s must be an integer, got %q", key, raw))
		return nil
	}
	return &v
}

func (r *configReader) readOptionalBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("%s must be a boolean, got %q", key, raw))
		return fallback
	}
	return v
}

func (r *configReader) logAndExitIfErrorsFound() {
	if len(r.errors) == 0 {
		return
	}
	for _, err := range r.errors {
		slog.Error("configReader: " + err.Error())
	}
	os.Exit(1)
}
