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

package models

// DeployedObject records one successfully deployed resource.
type DeployedObject struct {
	ID           string       `json:"id"`
	ResourceType ResourceType `json:"resourceType"`
	Path         string       `json:"path"`
}

// DeploymentError records one per-item failure that did not abort the run.
type DeploymentError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// DeploymentWarning records a non-fatal observation (skipped image, unknown
// type).
type DeploymentWarning struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// DeploymentResult accumulates the outcome of a deployment run. Partial
// failures in one branch never abort sibling work; sub-results are folded in
// via Merge.
type DeploymentResult struct {
	DeploymentID string              `json:"deploymentId"`
	Deployed     []DeployedObject    `json:"deployed"`
	Errors       []DeploymentError   `json:"errors"`
	Warnings     []DeploymentWarning `json:"warnings"`
}

// AddDeployed records a successful deployment.
func (r *DeploymentResult) AddDeployed(id string, rtype ResourceType, path string) {
	r.Deployed = append(r.Deployed, DeployedObject{ID: id, ResourceType: rtype, Path: path})
}

// AddError records a per-item failure.
func (r *DeploymentResult) AddError(id, message string) {
	r.Errors = append(r.Errors, DeploymentError{ID: id, Message: message})
}

// AddWarning records a non-fatal observation.
func (r *DeploymentResult) AddWarning(id, message string) {
	r.Warnings = append(r.Warnings, DeploymentWarning{ID: id, Message: message})
}

// Merge folds a sub-result into the receiver.
func (r *DeploymentResult) Merge(other *DeploymentResult) {
	if other == nil {
		return
	}
	r.Deployed = append(r.Deployed, other.Deployed...)
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// DeployedPaths returns the target paths of everything deployed so far.
func (r *DeploymentResult) DeployedPaths() []string {
	paths := make([]string, 0, len(r.Deployed))
	for _, d := range r.Deployed {
		paths = append(paths, d.Path)
	}
	return paths
}
