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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/doc-migration-platform/migration-service/builder"
	"github.com/wso2/doc-migration-platform/migration-service/clients/ips"
	"github.com/wso2/doc-migration-platform/migration-service/clients/storage"
	"github.com/wso2/doc-migration-platform/migration-service/content"
	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/repositories"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// DeployService drives one deployment run: validate the requested set, expand
// dependencies, order them, push styles, images and objects to the
// composition server and approve what landed. Per-item failures accumulate in
// the result; only pre-flight validation and deploy-order failures abort.
type DeployService interface {
	DeployDocumentObjects(ctx context.Context, projectName string, ids []string, skipDependencies bool) (*models.DeploymentResult, error)
}

type deployService struct {
	objects         repositories.DocumentObjectRepository
	images          repositories.ImageRepository
	textStyles      repositories.TextStyleRepository
	paragraphStyles repositories.ParagraphStyleRepository
	status          repositories.StatusTrackingRepository
	storage         storage.Storage
	builder         builder.LayoutBuilder
	ips             ips.Client
	target          DeployTarget
	logger          *slog.Logger
}

// NewDeployService creates a deploy service for one output flavor
func NewDeployService(
	objects repositories.DocumentObjectRepository,
	images repositories.ImageRepository,
	textStyles repositories.TextStyleRepository,
	paragraphStyles repositories.ParagraphStyleRepository,
	status repositories.StatusTrackingRepository,
	store storage.Storage,
	layoutBuilder builder.LayoutBuilder,
	ipsClient ips.Client,
	target DeployTarget,
) DeployService {
	return &deployService{
		objects:         objects,
		images:          images,
		textStyles:      textStyles,
		paragraphStyles: paragraphStyles,
		status:          status,
		storage:         store,
		builder:         layoutBuilder,
		ips:             ipsClient,
		target:          target,
		logger:          slog.Default(),
	}
}

func (s *deployService) DeployDocumentObjects(ctx context.Context, projectName string, ids []string, skipDependencies bool) (*models.DeploymentResult, error) {
	requested, err := s.resolveRequested(ctx, projectName, ids)
	if err != nil {
		return nil, err
	}

	deployList, inlined, err := s.expandDependencies(ctx, projectName, requested, skipDependencies)
	if err != nil {
		return nil, err
	}

	order, err := DeployOrder(deployList)
	if err != nil {
		return nil, err
	}

	result := &models.DeploymentResult{DeploymentID: uuid.NewString()}
	s.logger.Info("starting deployment",
		"deploymentId", result.DeploymentID,
		"project", projectName,
		"output", s.target.Output(),
		"objects", len(order))

	s.deployStyleDefinition(ctx, projectName, result)
	s.deployImages(ctx, projectName, order, inlined, result)
	for _, obj := range order {
		s.deployObject(ctx, obj, inlined, result)
	}
	s.approveDeployed(ctx, result)

	s.logger.Info("deployment finished",
		"deploymentId", result.DeploymentID,
		"deployed", len(result.Deployed),
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))
	return result, nil
}

// resolveRequested loads the requested objects, or every eligible object of
// the project when no ids are given. Validation collects every problem and
// fails once with the combined message.
func (s *deployService) resolveRequested(ctx context.Context, projectName string, ids []string) ([]*models.DocumentObject, error) {
	if len(ids) == 0 {
		all, err := s.objects.FindAll(ctx, projectName)
		if err != nil {
			return nil, err
		}
		eligible := make([]*models.DocumentObject, 0, len(all))
		for _, obj := range all {
			if s.target.Includes(obj) {
				eligible = append(eligible, obj)
			}
		}
		return eligible, nil
	}

	found, err := s.objects.FindByIDs(ctx, projectName, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.DocumentObject, len(found))
	for _, obj := range found {
		byID[obj.ID] = obj
	}

	var problems []string
	requested := make([]*models.DocumentObject, 0, len(ids))
	for _, id := range ids {
		obj, ok := byID[id]
		if !ok {
			problems = append(problems, fmt.Sprintf("object %s does not exist", id))
			continue
		}
		if obj.Internal {
			problems = append(problems, fmt.Sprintf("object %s is internal and cannot be deployed standalone", id))
		}
		if obj.Type == models.DocumentObjectTypeUnsupported {
			problems = append(problems, fmt.Sprintf("object %s has unsupported type", id))
		}
		if !s.target.Includes(obj) {
			problems = append(problems, fmt.Sprintf("object %s is not deployable to %s output", id, s.target.Output()))
		}
		requested = append(requested, obj)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", utils.ErrDeployValidation, strings.Join(problems, "; "))
	}
	return requested, nil
}

// expandDependencies walks document-object references transitively. External
// (non-internal) dependencies join the deploy set unless skipped; internal
// dependencies are always collected for inlining. References to unknown ids
// are tolerated.
func (s *deployService) expandDependencies(ctx context.Context, projectName string, requested []*models.DocumentObject, skipDependencies bool) ([]*models.DocumentObject, map[string]*models.DocumentObject, error) {
	deployList := make([]*models.DocumentObject, 0, len(requested))
	inlined := make(map[string]*models.DocumentObject)
	visited := make(map[string]bool, len(requested))

	queue := make([]*models.DocumentObject, 0, len(requested))
	for _, obj := range requested {
		if visited[obj.ID] {
			continue
		}
		visited[obj.ID] = true
		deployList = append(deployList, obj)
		queue = append(queue, obj)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		refIDs := current.ReferencedObjectIDs()
		var missing []string
		for _, refID := range refIDs {
			if !visited[refID] {
				missing = append(missing, refID)
			}
		}
		if len(missing) == 0 {
			continue
		}

		deps, err := s.objects.FindByIDs(ctx, projectName, missing)
		if err != nil {
			return nil, nil, err
		}
		for _, dep := range deps {
			if visited[dep.ID] {
				continue
			}
			visited[dep.ID] = true
			if dep.Internal {
				inlined[dep.ID] = dep
				queue = append(queue, dep)
				continue
			}
			if skipDependencies {
				continue
			}
			if s.target.Includes(dep) {
				deployList = append(deployList, dep)
				queue = append(queue, dep)
			}
		}
	}
	return deployList, inlined, nil
}

// deployStyleDefinition builds the combined style sheet and submits it once
// per run, before any object. Failure is recorded, not fatal.
func (s *deployService) deployStyleDefinition(ctx context.Context, projectName string, result *models.DeploymentResult) {
	const styleID = "styleDefinition"

	textStyles, err := s.textStyles.FindAll(ctx, projectName)
	if err != nil {
		result.AddError(styleID, fmt.Sprintf("failed to load text styles: %v", err))
		return
	}
	paragraphStyles, err := s.paragraphStyles.FindAll(ctx, projectName)
	if err != nil {
		result.AddError(styleID, fmt.Sprintf("failed to load paragraph styles: %v", err))
		return
	}
	if len(textStyles) == 0 && len(paragraphStyles) == 0 {
		return
	}

	path := s.target.StyleDefinitionPath()
	data, err := s.builder.BuildStyles(textStyles, paragraphStyles)
	if err == nil {
		err = s.ips.ImportDocument(ctx, path, data)
	}
	s.recordOutcome(ctx, projectName, models.ResourceTypeStyleDefinition, styleID, path, result, err)
}

// deployImages uploads every image reachable from the ordered objects (and
// from inlined dependents where the flavor traverses them), exactly once
// each. Every image is independent; a failure or skip never blocks others.
func (s *deployService) deployImages(ctx context.Context, projectName string, order []*models.DocumentObject, inlined map[string]*models.DocumentObject, result *models.DeploymentResult) {
	var imageIDs []string
	seen := make(map[string]bool)
	collect := func(obj *models.DocumentObject) {
		for _, id := range content.RefIDs(obj.CollectRefs(), content.RefImage) {
			if !seen[id] {
				seen[id] = true
				imageIDs = append(imageIDs, id)
			}
		}
	}
	for _, obj := range order {
		if s.target.TraverseForImages(obj) {
			collect(obj)
		}
	}
	for _, dep := range inlined {
		if s.target.TraverseForImages(dep) {
			collect(dep)
		}
	}

	for _, id := range imageIDs {
		s.deployImage(ctx, projectName, id, result)
	}
}

func (s *deployService) deployImage(ctx context.Context, projectName, id string, result *models.DeploymentResult) {
	img, err := s.images.FindByID(ctx, projectName, id)
	if err != nil {
		result.AddError(id, fmt.Sprintf("failed to look up image: %v", err))
		return
	}
	if img == nil {
		result.AddError(id, "referenced image does not exist")
		return
	}
	if !models.KnownImageType(img.Type) {
		result.AddWarning(id, fmt.Sprintf("skipped: unknown image type %q", img.Type))
		return
	}
	if img.SourcePath == "" {
		result.AddWarning(id, "skipped: no source path")
		return
	}

	path := s.target.ImagePath(img)
	data, err := s.storage.Read(ctx, img.SourcePath)
	if err == nil {
		err = s.ips.Upload(ctx, path, data)
	}
	s.recordOutcome(ctx, projectName, models.ResourceTypeImage, id, path, result, err)
}

// deployObject builds and submits one document object. Build panics are
// contained so one broken content tree cannot abort the run.
func (s *deployService) deployObject(ctx context.Context, obj *models.DocumentObject, inlined map[string]*models.DocumentObject, result *models.DeploymentResult) {
	path := s.target.ObjectPath(obj)
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("build panicked: %v", r)
			}
		}()
		data, err := s.builder.BuildDocumentObject(obj, inlined)
		if err != nil {
			return err
		}
		return s.ips.ImportDocument(ctx, path, data)
	}()
	s.recordOutcome(ctx, obj.ProjectName, models.ResourceTypeDocumentObject, obj.ID, path, result, err)
}

// approveDeployed submits one batch approval covering every successfully
// deployed path.
func (s *deployService) approveDeployed(ctx context.Context, result *models.DeploymentResult) {
	paths := result.DeployedPaths()
	if len(paths) == 0 {
		return
	}
	if err := s.ips.SetApprovalState(ctx, paths, s.target.ApprovalState()); err != nil {
		result.AddError(result.DeploymentID, fmt.Sprintf("failed to approve deployed paths: %v", err))
	}
}

// recordOutcome folds one submit outcome into the result and the status log.
// Status write failures are logged, never escalated.
func (s *deployService) recordOutcome(ctx context.Context, projectName string, rtype models.ResourceType, id, path string, result *models.DeploymentResult, err error) {
	now := time.Now()
	output := s.target.Output()
	if err != nil {
		result.AddError(id, err.Error())
		if statusErr := s.status.Error(ctx, projectName, rtype, id, result.DeploymentID, now, path, output, err.Error(), nil); statusErr != nil {
			s.logger.Error("failed to record error status", "id", id, "error", statusErr)
		}
		return
	}
	result.AddDeployed(id, rtype, path)
	if statusErr := s.status.Deployed(ctx, projectName, rtype, id, result.DeploymentID, now, path, output, nil); statusErr != nil {
		s.logger.Error("failed to record deployed status", "id", id, "error", statusErr)
	}
}
