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

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wso2/doc-migration-platform/migration-service/middleware/logger"
	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/services"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// MigrationController defines the HTTP handlers for migration entity
// ingestion and lookup.
type MigrationController interface {
	UpsertDocumentObjects(w http.ResponseWriter, r *http.Request)
	ListDocumentObjects(w http.ResponseWriter, r *http.Request)
	GetDocumentObject(w http.ResponseWriter, r *http.Request)
	GetDocumentObjectUsages(w http.ResponseWriter, r *http.Request)
	UpsertImages(w http.ResponseWriter, r *http.Request)
	GetImage(w http.ResponseWriter, r *http.Request)
	UpsertTextStyles(w http.ResponseWriter, r *http.Request)
	UpsertParagraphStyles(w http.ResponseWriter, r *http.Request)
	UpsertVariables(w http.ResponseWriter, r *http.Request)
	UpsertVariableStructures(w http.ResponseWriter, r *http.Request)
	UpsertDisplayRules(w http.ResponseWriter, r *http.Request)
	UpsertFiles(w http.ResponseWriter, r *http.Request)
	UpsertAttachments(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)
}

type migrationController struct {
	migrationService services.MigrationService
}

// NewMigrationController creates a new migration controller
func NewMigrationController(migrationService services.MigrationService) MigrationController {
	return &migrationController{
		migrationService: migrationService,
	}
}

func handleMigrationErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrObjectNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Migration object not found")
	case errors.Is(err, utils.ErrImageNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Image not found")
	case errors.Is(err, utils.ErrStatusNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Status tracking entry not found")
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}

// upsertHandler decodes a dto batch and hands it to the scoped upsert of one
// entity type.
func upsertHandler[T any](op string, upsert func(r *http.Request, projectName string, dtos []T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.GetLogger(r.Context())
		projectName := r.PathValue(utils.PathParamProjectName)

		var dtos []T
		if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
			log.Error(op+": failed to decode request", "error", err)
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if len(dtos) == 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Request body must contain at least one item")
			return
		}

		if err := upsert(r, projectName, dtos); err != nil {
			log.Error(op+": upsert failed", "project", projectName, "error", err)
			handleMigrationErrors(w, err, "Failed to store migration objects")
			return
		}
		utils.WriteSuccessResponse(w, http.StatusNoContent, struct{}{})
	}
}

func (c *migrationController) UpsertDocumentObjects(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertDocumentObjects", func(r *http.Request, projectName string, dtos []*models.DocumentObject) error {
		return c.migrationService.UpsertDocumentObjects(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) ListDocumentObjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)

	objects, err := c.migrationService.ListDocumentObjects(ctx, projectName)
	if err != nil {
		log.Error("ListDocumentObjects: failed to list objects", "project", projectName, "error", err)
		handleMigrationErrors(w, err, "Failed to list document objects")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, objects)
}

func (c *migrationController) GetDocumentObject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)
	id := r.PathValue(utils.PathParamID)

	obj, err := c.migrationService.GetDocumentObject(ctx, projectName, id)
	if err != nil {
		log.Error("GetDocumentObject: failed to get object", "project", projectName, "id", id, "error", err)
		handleMigrationErrors(w, err, "Failed to get document object")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, obj)
}

func (c *migrationController) GetDocumentObjectUsages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)
	id := r.PathValue(utils.PathParamID)

	usages, err := c.migrationService.FindUsages(ctx, projectName, id)
	if err != nil {
		log.Error("GetDocumentObjectUsages: failed to find usages", "project", projectName, "id", id, "error", err)
		handleMigrationErrors(w, err, "Failed to find usages")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, usages)
}

func (c *migrationController) UpsertImages(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertImages", func(r *http.Request, projectName string, dtos []*models.Image) error {
		return c.migrationService.UpsertImages(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) GetImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)
	id := r.PathValue(utils.PathParamID)

	img, err := c.migrationService.GetImage(ctx, projectName, id)
	if err != nil {
		log.Error("GetImage: failed to get image", "project", projectName, "id", id, "error", err)
		handleMigrationErrors(w, err, "Failed to get image")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, img)
}

func (c *migrationController) UpsertTextStyles(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertTextStyles", func(r *http.Request, projectName string, dtos []*models.TextStyle) error {
		return c.migrationService.UpsertTextStyles(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) UpsertParagraphStyles(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertParagraphStyles", func(r *http.Request, projectName string, dtos []*models.ParagraphStyle) error {
		return c.migrationService.UpsertParagraphStyles(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) UpsertVariables(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertVariables", func(r *http.Request, projectName string, dtos []*models.Variable) error {
		return c.migrationService.UpsertVariables(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) UpsertVariableStructures(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertVariableStructures", func(r *http.Request, projectName string, dtos []*models.VariableStructure) error {
		return c.migrationService.UpsertVariableStructures(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) UpsertDisplayRules(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertDisplayRules", func(r *http.Request, projectName string, dtos []*models.DisplayRule) error {
		return c.migrationService.UpsertDisplayRules(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) UpsertFiles(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertFiles", func(r *http.Request, projectName string, dtos []*models.File) error {
		return c.migrationService.UpsertFiles(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) UpsertAttachments(w http.ResponseWriter, r *http.Request) {
	upsertHandler("UpsertAttachments", func(r *http.Request, projectName string, dtos []*models.Attachment) error {
		return c.migrationService.UpsertAttachments(r.Context(), projectName, dtos)
	})(w, r)
}

func (c *migrationController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)

	if err := c.migrationService.DeleteProject(ctx, projectName); err != nil {
		log.Error("DeleteProject: failed to delete project data", "project", projectName, "error", err)
		handleMigrationErrors(w, err, "Failed to delete project data")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusNoContent, struct{}{})
}
