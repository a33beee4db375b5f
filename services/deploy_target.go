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
	"strings"

	"github.com/wso2/doc-migration-platform/migration-service/models"
)

// DeployTarget is one output flavor of a deployment run. Flavors share the
// deploy algorithm and differ in path computation, object inclusion and how
// deep the image collection traverses.
type DeployTarget interface {
	Output() models.Output
	Includes(obj *models.DocumentObject) bool
	TraverseForImages(obj *models.DocumentObject) bool
	ObjectPath(obj *models.DocumentObject) string
	ImagePath(img *models.Image) string
	StyleDefinitionPath() string
	ApprovalState() string
}

// batchTarget deploys pages and files for batch production output.
type batchTarget struct {
	placement OutputPlacement
}

// NewBatchDeployTarget creates the batch page/file output flavor
func NewBatchDeployTarget(placement OutputPlacement) DeployTarget {
	return &batchTarget{placement: placement}
}

func (t *batchTarget) Output() models.Output { return models.OutputBatch }

func (t *batchTarget) Includes(obj *models.DocumentObject) bool {
	return !obj.Internal && obj.Type != models.DocumentObjectTypeUnsupported
}

// Batch output inlines internal dependents, so image collection traverses
// every dependent.
func (t *batchTarget) TraverseForImages(obj *models.DocumentObject) bool { return true }

func (t *batchTarget) ObjectPath(obj *models.DocumentObject) string {
	return joinTargetPath(t.placement.FolderPrefix, obj.TargetFolder, obj.ID+".wfd")
}

func (t *batchTarget) ImagePath(img *models.Image) string {
	return joinTargetPath(t.placement.ImageFolder, img.TargetFolder, img.ID+"."+string(img.Type))
}

func (t *batchTarget) StyleDefinitionPath() string { return t.placement.StyleDefinitionPath }

func (t *batchTarget) ApprovalState() string { return t.placement.ApprovalState }

// interactiveTarget deploys editable building blocks into a tenant's
// interactive workspace. Pages are batch-only artifacts and are excluded.
type interactiveTarget struct {
	placement OutputPlacement
	tenant    string
}

// NewInteractiveDeployTarget creates the tenant-scoped interactive flavor
func NewInteractiveDeployTarget(placement OutputPlacement, tenant string) DeployTarget {
	return &interactiveTarget{placement: placement, tenant: tenant}
}

func (t *interactiveTarget) Output() models.Output { return models.OutputInteractive }

func (t *interactiveTarget) Includes(obj *models.DocumentObject) bool {
	return !obj.Internal &&
		obj.Type != models.DocumentObjectTypeUnsupported &&
		obj.Type != models.DocumentObjectTypePage
}

// Internal dependents are inlined into the deployed output, so their images
// ship too; only pages stay out of the traversal.
func (t *interactiveTarget) TraverseForImages(obj *models.DocumentObject) bool {
	return obj.Type != models.DocumentObjectTypePage
}

func (t *interactiveTarget) ObjectPath(obj *models.DocumentObject) string {
	return joinTargetPath(t.placement.FolderPrefix, t.tenant, obj.TargetFolder, obj.ID+".wfd")
}

func (t *interactiveTarget) ImagePath(img *models.Image) string {
	return joinTargetPath(t.placement.ImageFolder, t.tenant, img.TargetFolder, img.ID+"."+string(img.Type))
}

func (t *interactiveTarget) StyleDefinitionPath() string {
	return joinTargetPath(t.placement.FolderPrefix, t.tenant, "StyleDefinition.wfd")
}

func (t *interactiveTarget) ApprovalState() string { return t.placement.ApprovalState }

func joinTargetPath(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for i, p := range parts {
		// keep a leading scheme prefix like icm:// intact
		if i > 0 {
			p = strings.TrimLeft(p, "/")
		}
		p = strings.TrimRight(p, "/")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "/")
}
