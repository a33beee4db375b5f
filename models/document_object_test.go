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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/doc-migration-platform/migration-service/content"
)

func TestDocumentObjectValidate(t *testing.T) {
	obj := &DocumentObject{
		ObjectMeta: ObjectMeta{ID: "tmpl-1", ProjectName: "p"},
		Type:       DocumentObjectTypeTemplate,
	}
	require.NoError(t, obj.Validate())

	obj.ID = ""
	assert.Error(t, obj.Validate())

	obj.ID = "tmpl-1"
	obj.Type = "letterhead"
	assert.Error(t, obj.Validate())

	// page options are legal only for pages
	obj.Type = DocumentObjectTypeBlock
	obj.Options = &PageOptions{}
	assert.Error(t, obj.Validate())

	obj.Type = DocumentObjectTypePage
	assert.NoError(t, obj.Validate())

	// options are an optional override: a page without them is valid
	obj.Options = nil
	assert.NoError(t, obj.Validate())
}

func TestDocumentObjectCollectRefs(t *testing.T) {
	obj := &DocumentObject{
		ObjectMeta: ObjectMeta{ID: "letter", ProjectName: "p"},
		Type:       DocumentObjectTypeTemplate,
		Content: content.NodeList{
			&content.ImageRef{ImageID: "img-1"},
			&content.DocumentObjectRef{ObjectID: "footer"},
		},
		DisplayRuleRef: "rule-1",
		BaseTemplate:   "base",
	}

	refs := obj.CollectRefs()
	assert.Contains(t, refs, content.Ref{Type: content.RefImage, ID: "img-1"})
	assert.Contains(t, refs, content.Ref{Type: content.RefDisplayRule, ID: "rule-1"})
	assert.Contains(t, refs, content.Ref{Type: content.RefDocumentObject, ID: "base"})
}

func TestReferencedObjectIDsDeduplicates(t *testing.T) {
	obj := &DocumentObject{
		ObjectMeta: ObjectMeta{ID: "letter", ProjectName: "p"},
		Type:       DocumentObjectTypeTemplate,
		Content: content.NodeList{
			&content.DocumentObjectRef{ObjectID: "footer"},
			&content.DocumentObjectRef{ObjectID: "header"},
			&content.DocumentObjectRef{ObjectID: "footer"},
			&content.ImageRef{ImageID: "img-1"},
		},
		BaseTemplate: "header",
	}

	assert.Equal(t, []string{"footer", "header"}, obj.ReferencedObjectIDs())
}

func TestParseResourceType(t *testing.T) {
	rt, ok := ParseResourceType("documentObject")
	assert.True(t, ok)
	assert.Equal(t, ResourceTypeDocumentObject, rt)

	_, ok = ParseResourceType("documentobject")
	assert.False(t, ok)
	_, ok = ParseResourceType("")
	assert.False(t, ok)
}
