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

// Package builder serializes the content model into the layout format the
// composition server imports. The deploy pipeline treats the builder as a
// pure function of the content model.
package builder

import (
	"github.com/wso2/doc-migration-platform/migration-service/models"
)

// LayoutBuilder turns migration entities into importable layout documents.
// The inlined map carries the internal document objects the built object
// embeds, keyed by id.
type LayoutBuilder interface {
	BuildDocumentObject(obj *models.DocumentObject, inlined map[string]*models.DocumentObject) ([]byte, error)
	BuildStyles(textStyles []*models.TextStyle, paragraphStyles []*models.ParagraphStyle) ([]byte, error)
}
