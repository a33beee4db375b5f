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

	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/repositories"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// MigrationService is the ingestion and query surface over the migration
// entity repositories. Upserts stamp the project scope onto every dto before
// writing; reads translate absent rows into ErrObjectNotFound for the API
// layer.
type MigrationService interface {
	UpsertDocumentObjects(ctx context.Context, projectName string, dtos []*models.DocumentObject) error
	GetDocumentObject(ctx context.Context, projectName, id string) (*models.DocumentObject, error)
	ListDocumentObjects(ctx context.Context, projectName string) ([]*models.DocumentObject, error)
	FindUsages(ctx context.Context, projectName, id string) ([]*models.DocumentObject, error)

	UpsertImages(ctx context.Context, projectName string, dtos []*models.Image) error
	GetImage(ctx context.Context, projectName, id string) (*models.Image, error)

	UpsertTextStyles(ctx context.Context, projectName string, dtos []*models.TextStyle) error
	UpsertParagraphStyles(ctx context.Context, projectName string, dtos []*models.ParagraphStyle) error
	UpsertVariables(ctx context.Context, projectName string, dtos []*models.Variable) error
	UpsertVariableStructures(ctx context.Context, projectName string, dtos []*models.VariableStructure) error
	UpsertDisplayRules(ctx context.Context, projectName string, dtos []*models.DisplayRule) error
	UpsertFiles(ctx context.Context, projectName string, dtos []*models.File) error
	UpsertAttachments(ctx context.Context, projectName string, dtos []*models.Attachment) error

	GetStatus(ctx context.Context, projectName string, rtype models.ResourceType, id string) (*models.StatusTracking, error)
	GetLastStatusEvent(ctx context.Context, projectName string, rtype models.ResourceType, id string, output models.Output) (*models.StatusEvent, error)

	DeleteProject(ctx context.Context, projectName string) error
}

type migrationService struct {
	objects            repositories.DocumentObjectRepository
	images             repositories.ImageRepository
	textStyles         repositories.TextStyleRepository
	paragraphStyles    repositories.ParagraphStyleRepository
	variables          repositories.VariableRepository
	variableStructures repositories.VariableStructureRepository
	displayRules       repositories.DisplayRuleRepository
	files              repositories.FileRepository
	attachments        repositories.AttachmentRepository
	status             repositories.StatusTrackingRepository
	logger             *slog.Logger
}

// NewMigrationService creates the migration ingestion/query service
func NewMigrationService(
	objects repositories.DocumentObjectRepository,
	images repositories.ImageRepository,
	textStyles repositories.TextStyleRepository,
	paragraphStyles repositories.ParagraphStyleRepository,
	variables repositories.VariableRepository,
	variableStructures repositories.VariableStructureRepository,
	displayRules repositories.DisplayRuleRepository,
	files repositories.FileRepository,
	attachments repositories.AttachmentRepository,
	status repositories.StatusTrackingRepository,
) MigrationService {
	return &migrationService{
		objects:            objects,
		images:             images,
		textStyles:         textStyles,
		paragraphStyles:    paragraphStyles,
		variables:          variables,
		variableStructures: variableStructures,
		displayRules:       displayRules,
		files:              files,
		attachments:        attachments,
		status:             status,
		logger:             slog.Default(),
	}
}

// upsertScoped stamps the project onto each dto and writes the batch through
// one repository.
func upsertScoped[T models.MigrationRecord](ctx context.Context, repo repositories.ObjectRepository[T], projectName string, dtos []T) error {
	if projectName == "" {
		return fmt.Errorf("%w: project name cannot be empty", utils.ErrInvalidInput)
	}
	for _, dto := range dtos {
		dto.Meta().ProjectName = projectName
	}
	if len(dtos) == 1 {
		return repo.Upsert(ctx, dtos[0])
	}
	return repo.UpsertBatch(ctx, dtos)
}

func (s *migrationService) UpsertDocumentObjects(ctx context.Context, projectName string, dtos []*models.DocumentObject) error {
	return upsertScoped[*models.DocumentObject](ctx, s.objects, projectName, dtos)
}

func (s *migrationService) GetDocumentObject(ctx context.Context, projectName, id string) (*models.DocumentObject, error) {
	obj, err := s.objects.FindByID(ctx, projectName, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: %s/%s", utils.ErrObjectNotFound, projectName, id)
	}
	return obj, nil
}

func (s *migrationService) ListDocumentObjects(ctx context.Context, projectName string) ([]*models.DocumentObject, error) {
	return s.objects.FindAll(ctx, projectName)
}

func (s *migrationService) FindUsages(ctx context.Context, projectName, id string) ([]*models.DocumentObject, error) {
	return s.objects.FindUsages(ctx, projectName, id)
}

func (s *migrationService) UpsertImages(ctx context.Context, projectName string, dtos []*models.Image) error {
	return upsertScoped[*models.Image](ctx, s.images, projectName, dtos)
}

func (s *migrationService) GetImage(ctx context.Context, projectName, id string) (*models.Image, error) {
	img, err := s.images.FindByID(ctx, projectName, id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: %s/%s", utils.ErrImageNotFound, projectName, id)
	}
	return img, nil
}

func (s *migrationService) UpsertTextStyles(ctx context.Context, projectName string, dtos []*models.TextStyle) error {
	return upsertScoped[*models.TextStyle](ctx, s.textStyles, projectName, dtos)
}

func (s *migrationService) UpsertParagraphStyles(ctx context.Context, projectName string, dtos []*models.ParagraphStyle) error {
	return upsertScoped[*models.ParagraphStyle](ctx, s.paragraphStyles, projectName, dtos)
}

func (s *migrationService) UpsertVariables(ctx context.Context, projectName string, dtos []*models.Variable) error {
	return upsertScoped[*models.Variable](ctx, s.variables, projectName, dtos)
}

func (s *migrationService) UpsertVariableStructures(ctx context.Context, projectName string, dtos []*models.VariableStructure) error {
	return upsertScoped[*models.VariableStructure](ctx, s.variableStructures, projectName, dtos)
}

func (s *migrationService) UpsertDisplayRules(ctx context.Context, projectName string, dtos []*models.DisplayRule) error {
	return upsertScoped[*models.DisplayRule](ctx, s.displayRules, projectName, dtos)
}

func (s *migrationService) UpsertFiles(ctx context.Context, projectName string, dtos []*models.File) error {
	return upsertScoped[*models.File](ctx, s.files, projectName, dtos)
}

func (s *migrationService) UpsertAttachments(ctx context.Context, projectName string, dtos []*models.Attachment) error {
	return upsertScoped[*models.Attachment](ctx, s.attachments, projectName, dtos)
}

func (s *migrationService) GetStatus(ctx context.Context, projectName string, rtype models.ResourceType, id string) (*models.StatusTracking, error) {
	entry, err := s.status.Find(ctx, projectName, rtype, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %s/%s/%s", utils.ErrStatusNotFound, projectName, rtype, id)
	}
	return entry, nil
}

func (s *migrationService) GetLastStatusEvent(ctx context.Context, projectName string, rtype models.ResourceType, id string, output models.Output) (*models.StatusEvent, error) {
	if output == "" {
		return s.status.FindLastEvent(ctx, projectName, rtype, id)
	}
	return s.status.FindLastEventRelevantToOutput(ctx, projectName, rtype, id, output)
}

// DeleteProject removes every migration entity and status log of a project.
func (s *migrationService) DeleteProject(ctx context.Context, projectName string) error {
	s.logger.Info("deleting project data", "project", projectName)
	deletes := []func(context.Context, string) error{
		s.objects.DeleteAll,
		s.images.DeleteAll,
		s.textStyles.DeleteAll,
		s.paragraphStyles.DeleteAll,
		s.variables.DeleteAll,
		s.variableStructures.DeleteAll,
		s.displayRules.DeleteAll,
		s.files.DeleteAll,
		s.attachments.DeleteAll,
		s.status.DeleteAll,
	}
	for _, del := range deletes {
		if err := del(ctx, projectName); err != nil {
			return err
		}
	}
	return nil
}
