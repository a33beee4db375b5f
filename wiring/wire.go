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

//go:build wireinject
// +build wireinject

package wiring

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/config"
	"github.com/wso2/doc-migration-platform/migration-service/controllers"
	"github.com/wso2/doc-migration-platform/migration-service/repositories"
	"github.com/wso2/doc-migration-platform/migration-service/services"
)

var repositoryProviderSet = wire.NewSet(
	repositories.NewStatusTrackingRepo,
	repositories.NewDocumentObjectRepo,
	repositories.NewImageRepo,
	repositories.NewTextStyleRepo,
	repositories.NewParagraphStyleRepo,
	repositories.NewVariableRepo,
	repositories.NewVariableStructureRepo,
	repositories.NewDisplayRuleRepo,
	repositories.NewFileRepo,
	repositories.NewAttachmentRepo,
)

var serviceProviderSet = wire.NewSet(
	services.NewMigrationService,
	services.NewDeployServiceFactory,
	ProvideStorage,
	ProvidePlacementRules,
	ProvideLayoutBuilder,
	ProvideCompositionConfig,
	ProvideIPSDialer,
)

var controllerProviderSet = wire.NewSet(
	controllers.NewMigrationController,
	controllers.NewStatusController,
	controllers.NewDeploymentController,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

func InitializeAppParams(cfg *config.Config, gormDB *gorm.DB) (*AppParams, error) {
	wire.Build(
		repositoryProviderSet,
		serviceProviderSet,
		controllerProviderSet,
		loggerProviderSet,
		ProvideAuthMiddleware, wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}
