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
	"fmt"

	"github.com/wso2/doc-migration-platform/migration-service/content"
)

// DocumentObjectType classifies a document object. The classification is
// immutable after first insert and affects deploy routing.
type DocumentObjectType string

const (
	DocumentObjectTypeTemplate    DocumentObjectType = "template"
	DocumentObjectTypePage        DocumentObjectType = "page"
	DocumentObjectTypeBlock       DocumentObjectType = "block"
	DocumentObjectTypeSection     DocumentObjectType = "section"
	DocumentObjectTypeUnsupported DocumentObjectType = "unsupported"
)

// PageOptions are layout options legal only for page-typed objects.
type PageOptions struct {
	Width        content.Size `json:"width"`
	Height       content.Size `json:"height"`
	MarginTop    content.Size `json:"marginTop,omitempty"`
	MarginBottom content.Size `json:"marginBottom,omitempty"`
	MarginLeft   content.Size `json:"marginLeft,omitempty"`
	MarginRight  content.Size `json:"marginRight,omitempty"`
	Orientation  string       `json:"orientation,omitempty"`
}

// DocumentObject is a template/page/block/section unit of composed output.
// Internal objects are inlined into their referrer's output instead of being
// deployed as standalone files. Skip is tri-state: nil means not decided,
// true renders placeholder text instead of content.
type DocumentObject struct {
	ObjectMeta           `gorm:"embedded"`
	Type                 DocumentObjectType `gorm:"column:type" json:"type"`
	Content              content.NodeList   `gorm:"column:content;type:jsonb;serializer:json;not null;default:'[]'" json:"content"`
	Internal             bool               `gorm:"column:internal" json:"internal"`
	TargetFolder         string             `gorm:"column:target_folder" json:"targetFolder,omitempty"`
	DisplayRuleRef       string             `gorm:"column:display_rule_ref" json:"displayRuleRef,omitempty"`
	VariableStructureRef string             `gorm:"column:variable_structure_ref" json:"variableStructureRef,omitempty"`
	BaseTemplate         string             `gorm:"column:base_template" json:"baseTemplate,omitempty"`
	Options              *PageOptions       `gorm:"column:options;type:jsonb;serializer:json" json:"options,omitempty"`
	Skip                 *bool              `gorm:"column:skip" json:"skip,omitempty"`
}

// TableName returns the table name for the DocumentObject model
func (DocumentObject) TableName() string { return "document_objects" }

func (*DocumentObject) ResourceType() ResourceType { return ResourceTypeDocumentObject }

// Validate enforces the type/options invariant before any write.
func (d *DocumentObject) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("document object id cannot be empty")
	}
	switch d.Type {
	case DocumentObjectTypeTemplate, DocumentObjectTypePage, DocumentObjectTypeBlock,
		DocumentObjectTypeSection, DocumentObjectTypeUnsupported:
	default:
		return fmt.Errorf("document object %s: unknown type %q", d.ID, d.Type)
	}
	if d.Options != nil && d.Type != DocumentObjectTypePage {
		return fmt.Errorf("document object %s: page options are only valid for pages, got type %q", d.ID, d.Type)
	}
	return nil
}

// CollectRefs returns every reference reachable from the object's content
// plus its direct cross-references, in walk order.
func (d *DocumentObject) CollectRefs() []content.Ref {
	refs := content.CollectRefs(d.Content)
	if d.DisplayRuleRef != "" {
		refs = append(refs, content.Ref{Type: content.RefDisplayRule, ID: d.DisplayRuleRef})
	}
	if d.BaseTemplate != "" {
		refs = append(refs, content.Ref{Type: content.RefDocumentObject, ID: d.BaseTemplate})
	}
	return refs
}

// ReferencedObjectIDs returns the ids of directly referenced document
// objects, deduplicated in first-seen order.
func (d *DocumentObject) ReferencedObjectIDs() []string {
	return content.RefIDs(d.CollectRefs(), content.RefDocumentObject)
}
