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

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wso2/doc-migration-platform/migration-service/builder"
	"github.com/wso2/doc-migration-platform/migration-service/clients/ips"
	"github.com/wso2/doc-migration-platform/migration-service/clients/storage"
	"github.com/wso2/doc-migration-platform/migration-service/config"
	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/repositories"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// IPSDialer opens a session against the composition server. Swappable for a
// fake in tests.
type IPSDialer func(ctx context.Context, cfg config.CompositionConfig) (ips.Client, error)

// DeployServiceFactory builds a DeployService for one deployment request.
// Each run gets its own composition-server session and output flavor; the
// returned cleanup closes the session.
type DeployServiceFactory interface {
	NewDeployService(ctx context.Context, output models.Output, tenant string) (DeployService, func(), error)
}

type deployServiceFactory struct {
	objects         repositories.DocumentObjectRepository
	images          repositories.ImageRepository
	textStyles      repositories.TextStyleRepository
	paragraphStyles repositories.ParagraphStyleRepository
	status          repositories.StatusTrackingRepository
	storage         storage.Storage
	builder         builder.LayoutBuilder
	placement       *PlacementRules
	composition     config.CompositionConfig
	dial            IPSDialer
	logger          *slog.Logger
}

// NewDeployServiceFactory creates the per-request deploy service factory
func NewDeployServiceFactory(
	objects repositories.DocumentObjectRepository,
	images repositories.ImageRepository,
	textStyles repositories.TextStyleRepository,
	paragraphStyles repositories.ParagraphStyleRepository,
	status repositories.StatusTrackingRepository,
	store storage.Storage,
	layoutBuilder builder.LayoutBuilder,
	placement *PlacementRules,
	composition config.CompositionConfig,
	dial IPSDialer,
) DeployServiceFactory {
	if dial == nil {
		dial = ips.Dial
	}
	return &deployServiceFactory{
		objects:         objects,
		images:          images,
		textStyles:      textStyles,
		paragraphStyles: paragraphStyles,
		status:          status,
		storage:         store,
		builder:         layoutBuilder,
		placement:       placement,
		composition:     composition,
		dial:            dial,
		logger:          slog.Default(),
	}
}

func (f *deployServiceFactory) NewDeployService(ctx context.Context, output models.Output, tenant string) (DeployService, func(), error) {
	target, err := f.newTarget(output, tenant)
	if err != nil {
		return nil, nil, err
	}

	client, err := f.dial(ctx, f.composition)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: composition server unreachable: %v", utils.ErrServiceUnavailable, err)
	}
	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			f.logger.Warn("failed to close composition session", "error", err)
		}
	}

	svc := NewDeployService(
		f.objects,
		f.images,
		f.textStyles,
		f.paragraphStyles,
		f.status,
		f.storage,
		f.builder,
		client,
		target,
	)
	return svc, cleanup, nil
}

func (f *deployServiceFactory) newTarget(output models.Output, tenant string) (DeployTarget, error) {
	switch output {
	case models.OutputBatch:
		return NewBatchDeployTarget(f.placement.ForOutput(models.OutputBatch)), nil
	case models.OutputInteractive:
		if tenant == "" {
			return nil, fmt.Errorf("%w: interactive output requires a tenant", utils.ErrInvalidInput)
		}
		return NewInteractiveDeployTarget(f.placement.ForOutput(models.OutputInteractive), tenant), nil
	default:
		return nil, fmt.Errorf("%w: unknown output %q", utils.ErrInvalidInput, output)
	}
}
