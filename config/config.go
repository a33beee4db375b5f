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

// Config holds all configuration for the migration service
type Config struct {
	PackageVersion      string
	ServerHost          string
	ServerPort          int
	AuthHeader          string
	AutoMaxProcsEnabled bool
	LogLevel            string
	POSTGRESQL          POSTGRESQL

	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int

	// Database operation timeout configuration
	DbOperationTimeoutSeconds int
	HealthCheckTimeoutSeconds int

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	IsLocalDevEnv bool

	// Composition server (remote protocol) configuration
	Composition CompositionConfig

	// Storage backend for source asset bytes
	Storage StorageConfig

	// PlacementRulesPath points at the per-output placement rules YAML file
	PlacementRulesPath string

	KeyManagerConfigurations KeyManagerConfigurations
}

// CompositionConfig holds the composition-server endpoint and protocol
// timeouts
type CompositionConfig struct {
	Host               string
	Port               int
	ConnectTimeoutSecs int
	JobWaitTimeoutSecs int
	User               string
	Password           string `json:"-"`
}

// StorageBackend selects the storage collaborator implementation
type StorageBackend string

const (
	StorageBackendFilesystem StorageBackend = "filesystem"
	StorageBackendMinio      StorageBackend = "minio"
)

// StorageConfig holds the source-asset storage configuration
type StorageConfig struct {
	Backend StorageBackend

	// Filesystem backend
	RootDir string

	// MinIO backend
	Endpoint  string
	AccessKey string
	SecretKey string `json:"-"`
	Bucket    string
	UseSSL    bool
}

// KeyManagerConfigurations holds JWT validation configuration
type KeyManagerConfigurations struct {
	Issuer        []string
	Audience      []string
	JWKSUrl       string
	DefaultIssuer string // Default issuer allowed to skip JWKS signature validation
}

// POSTGRESQL holds the database connection configuration
type POSTGRESQL struct {
	Host      string
	Port      int
	User      string
	Password  string `json:"-"`
	DBName    string
	SSLMode   string
	DbConfigs DbConfigs
}

// DbConfigs holds gorm and sql.DB tuning knobs
type DbConfigs struct {
	// gorm configs
	SkipDefaultTransaction    bool
	SlowThresholdMilliseconds int64

	// sql.DB configs
	MaxIdleCount       *int64
	MaxOpenCount       *int64
	MaxIdleTimeSeconds *int64
	MaxLifetimeSeconds *int64
}

// Version is set via ldflags at build time
var Version = "dev"
