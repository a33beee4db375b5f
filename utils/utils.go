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

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
)

// Path parameter names shared by route registrations and controllers
const (
	PathParamProjectName  = "projectName"
	PathParamResourceType = "resourceType"
	PathParamID           = "id"
)

// MaxProjectNameLength bounds project names to fit the persisted scope column
const MaxProjectNameLength = 100

var projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

// ValidateProjectName validates that a project name is a usable scope key:
// lowercase alphanumerics and '-', starting with a letter.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if len(name) > MaxProjectNameLength {
		return fmt.Errorf("project name must be at most %d characters, got %d", MaxProjectNameLength, len(name))
	}
	if len(name) == 1 || !projectNamePattern.MatchString(name) {
		return fmt.Errorf("project name must contain only lowercase alphanumeric characters or '-', start with a letter and end with an alphanumeric character")
	}
	return nil
}

// ErrorResponse is the JSON error payload of the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteSuccessResponse writes a successful API response
func WriteSuccessResponse[T any](w http.ResponseWriter, statusCode int, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if statusCode == http.StatusNoContent {
		return
	}
	_ = json.NewEncoder(w).Encode(data) // Ignore encoding errors for response
}

// WriteErrorResponse writes an error API response
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	errPayload := &ErrorResponse{
		Message: message,
	}
	_ = json.NewEncoder(w).Encode(errPayload) // Ignore encoding errors for response
}
