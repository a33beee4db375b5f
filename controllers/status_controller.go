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
	"net/http"

	"github.com/wso2/doc-migration-platform/migration-service/middleware/logger"
	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/services"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// StatusController defines the HTTP handlers for the append-only status log.
type StatusController interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetLastStatusEvent(w http.ResponseWriter, r *http.Request)
}

type statusController struct {
	migrationService services.MigrationService
}

// NewStatusController creates a new status controller
func NewStatusController(migrationService services.MigrationService) StatusController {
	return &statusController{
		migrationService: migrationService,
	}
}

func (c *statusController) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)
	id := r.PathValue(utils.PathParamID)

	rtype, ok := models.ParseResourceType(r.PathValue(utils.PathParamResourceType))
	if !ok {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Unknown resource type")
		return
	}

	entry, err := c.migrationService.GetStatus(ctx, projectName, rtype, id)
	if err != nil {
		log.Error("GetStatus: failed to get status", "project", projectName, "type", rtype, "id", id, "error", err)
		handleMigrationErrors(w, err, "Failed to get status")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, entry)
}

// GetLastStatusEvent returns the newest event of the entry. With an output
// query parameter, only events relevant to that output count.
func (c *statusController) GetLastStatusEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)
	id := r.PathValue(utils.PathParamID)

	rtype, ok := models.ParseResourceType(r.PathValue(utils.PathParamResourceType))
	if !ok {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Unknown resource type")
		return
	}

	output := models.Output(r.URL.Query().Get("output"))
	if output != "" && output != models.OutputBatch && output != models.OutputInteractive {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Unknown output")
		return
	}

	event, err := c.migrationService.GetLastStatusEvent(ctx, projectName, rtype, id, output)
	if err != nil {
		log.Error("GetLastStatusEvent: failed to get last event", "project", projectName, "type", rtype, "id", id, "error", err)
		handleMigrationErrors(w, err, "Failed to get last status event")
		return
	}
	if event == nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "No status event recorded")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, event)
}
