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

package api

import (
	"net/http"

	"github.com/wso2/doc-migration-platform/migration-service/controllers"
	"github.com/wso2/doc-migration-platform/migration-service/middleware"
)

// registerMigrationRoutes registers the migration entity ingestion and
// lookup routes
func registerMigrationRoutes(mux *http.ServeMux, ctrl controllers.MigrationController) {
	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/document-objects", ctrl.UpsertDocumentObjects)
	middleware.HandleFuncWithValidation(mux, "GET /projects/{projectName}/document-objects", ctrl.ListDocumentObjects)
	middleware.HandleFuncWithValidation(mux, "GET /projects/{projectName}/document-objects/{id}", ctrl.GetDocumentObject)
	middleware.HandleFuncWithValidation(mux, "GET /projects/{projectName}/document-objects/{id}/usages", ctrl.GetDocumentObjectUsages)

	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/images", ctrl.UpsertImages)
	middleware.HandleFuncWithValidation(mux, "GET /projects/{projectName}/images/{id}", ctrl.GetImage)

	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/text-styles", ctrl.UpsertTextStyles)
	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/paragraph-styles", ctrl.UpsertParagraphStyles)
	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/variables", ctrl.UpsertVariables)
	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/variable-structures", ctrl.UpsertVariableStructures)
	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/display-rules", ctrl.UpsertDisplayRules)
	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/files", ctrl.UpsertFiles)
	middleware.HandleFuncWithValidation(mux, "POST /projects/{projectName}/attachments", ctrl.UpsertAttachments)

	middleware.HandleFuncWithValidation(mux, "DELETE /projects/{projectName}", ctrl.DeleteProject)
}

// registerStatusRoutes registers the status tracking lookup routes
func registerStatusRoutes(mux *http.ServeMux, ctrl controllers.StatusController) {
	middleware.HandleFuncWithValidation(mux, "GET /projects/{projectName}/status/{resourceType}/{id}", ctrl.GetStatus)
	middleware.HandleFuncWithValidation(mux, "GET /projects/{projectName}/status/{resourceType}/{id}/last-event", ctrl.GetLastStatusEvent)
}
