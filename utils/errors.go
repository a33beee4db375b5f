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

import "errors"

var (
	// Resource not found errors
	ErrObjectNotFound      = errors.New("migration object not found")
	ErrImageNotFound       = errors.New("image not found")
	ErrStatusNotFound      = errors.New("status tracking entry not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrObjectAlreadyExists = errors.New("migration object already exists")

	// Request errors
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidInput = errors.New("invalid input")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Storage collaborator errors
	ErrAssetNotFound     = errors.New("asset not found")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrAssetAccessDenied = errors.New("asset access denied")

	// Deployment errors
	ErrDeployValidation = errors.New("deployment validation failed")
	ErrDeployOrder      = errors.New("deploy order could not be resolved")

	// Server errors
	ErrServiceUnavailable = errors.New("service unavailable")
)
