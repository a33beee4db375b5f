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

// DeploymentRequest is the body of a deployment run request. An empty ids
// list deploys every eligible object of the project.
type DeploymentRequest struct {
	IDs              []string      `json:"ids,omitempty"`
	Output           models.Output `json:"output"`
	Tenant           string        `json:"tenant,omitempty"`
	SkipDependencies bool          `json:"skipDependencies,omitempty"`
}

// DeploymentController defines the HTTP handlers for deployment runs.
type DeploymentController interface {
	Deploy(w http.ResponseWriter, r *http.Request)
}

type deploymentController struct {
	factory services.DeployServiceFactory
}

// NewDeploymentController creates a new deployment controller
func NewDeploymentController(factory services.DeployServiceFactory) DeploymentController {
	return &deploymentController{
		factory: factory,
	}
}

func handleDeploymentErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrDeployValidation):
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, utils.ErrDeployOrder):
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, utils.ErrServiceUnavailable):
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Composition server unavailable")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}

// Deploy runs one deployment for the requested output flavor. The run holds
// its own composition-server session for its whole duration.
func (c *deploymentController) Deploy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	projectName := r.PathValue(utils.PathParamProjectName)

	var req DeploymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Deploy: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, cleanup, err := c.factory.NewDeployService(ctx, req.Output, req.Tenant)
	if err != nil {
		log.Error("Deploy: failed to prepare deployment", "project", projectName, "output", req.Output, "error", err)
		handleDeploymentErrors(w, err, "Failed to prepare deployment")
		return
	}
	defer cleanup()

	result, err := svc.DeployDocumentObjects(ctx, projectName, req.IDs, req.SkipDependencies)
	if err != nil {
		log.Error("Deploy: deployment aborted", "project", projectName, "output", req.Output, "error", err)
		handleDeploymentErrors(w, err, "Deployment failed")
		return
	}

	log.Info("Deploy: deployment finished",
		"project", projectName,
		"deploymentId", result.DeploymentID,
		"deployed", len(result.Deployed),
		"errors", len(result.Errors))
	utils.WriteSuccessResponse(w, http.StatusOK, result)
}
