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

package wiring

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/builder"
	"github.com/wso2/doc-migration-platform/migration-service/clients/ips"
	"github.com/wso2/doc-migration-platform/migration-service/clients/storage"
	"github.com/wso2/doc-migration-platform/migration-service/config"
	"github.com/wso2/doc-migration-platform/migration-service/controllers"
	"github.com/wso2/doc-migration-platform/migration-service/middleware/jwtassertion"
	"github.com/wso2/doc-migration-platform/migration-service/services"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	// Middleware
	AuthMiddleware jwtassertion.Middleware
	Logger         *slog.Logger

	// Controllers
	MigrationController  controllers.MigrationController
	StatusController     controllers.StatusController
	DeploymentController controllers.DeploymentController

	// Services
	MigrationService     services.MigrationService
	DeployServiceFactory services.DeployServiceFactory

	// Database
	DB *gorm.DB
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideAuthMiddleware builds the JWT assertion middleware from config
func ProvideAuthMiddleware(cfg *config.Config) jwtassertion.Middleware {
	return jwtassertion.JWTAuthMiddleware(cfg.AuthHeader)
}

// ProvideStorage creates the source-asset storage client from config
func ProvideStorage(cfg *config.Config) (storage.Storage, error) {
	return storage.NewStorage(cfg.Storage)
}

// ProvidePlacementRules loads the per-output placement rules, falling back to
// the built-in defaults when no rules file is configured
func ProvidePlacementRules(cfg *config.Config) (*services.PlacementRules, error) {
	if cfg.PlacementRulesPath == "" {
		return services.DefaultPlacementRules(), nil
	}
	return services.LoadPlacementRules(cfg.PlacementRulesPath)
}

// ProvideLayoutBuilder provides the XML layout builder
func ProvideLayoutBuilder() builder.LayoutBuilder {
	return builder.NewXMLLayoutBuilder()
}

// ProvideCompositionConfig extracts the composition-server endpoint config
func ProvideCompositionConfig(cfg *config.Config) config.CompositionConfig {
	return cfg.Composition
}

// ProvideIPSDialer provides the production composition-server dialer
func ProvideIPSDialer() services.IPSDialer {
	return ips.Dial
}
