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

import "time"

// ResourceType identifies a migration entity type in status tracking and
// deployment results.
type ResourceType string

const (
	ResourceTypeDocumentObject    ResourceType = "documentObject"
	ResourceTypeImage             ResourceType = "image"
	ResourceTypeTextStyle         ResourceType = "textStyle"
	ResourceTypeParagraphStyle    ResourceType = "paragraphStyle"
	ResourceTypeVariable          ResourceType = "variable"
	ResourceTypeVariableStructure ResourceType = "variableStructure"
	ResourceTypeDisplayRule       ResourceType = "displayRule"
	ResourceTypeFile              ResourceType = "file"
	ResourceTypeAttachment        ResourceType = "attachment"
	// ResourceTypeStyleDefinition tracks the combined style sheet deployed
	// once per run; it is not a persisted migration entity.
	ResourceTypeStyleDefinition ResourceType = "styleDefinition"
)

// ParseResourceType maps an API path segment to a resource type.
func ParseResourceType(s string) (ResourceType, bool) {
	switch ResourceType(s) {
	case ResourceTypeDocumentObject,
		ResourceTypeImage,
		ResourceTypeTextStyle,
		ResourceTypeParagraphStyle,
		ResourceTypeVariable,
		ResourceTypeVariableStructure,
		ResourceTypeDisplayRule,
		ResourceTypeFile,
		ResourceTypeAttachment,
		ResourceTypeStyleDefinition:
		return ResourceType(s), true
	}
	return "", false
}

// ObjectMeta carries the fields shared by every migration entity. IDs are
// assigned by the caller and are stable within a project. OriginLocations
// accumulates across upserts and never shrinks; CustomFields is fully
// replaced on each upsert.
type ObjectMeta struct {
	ID              string            `gorm:"column:id;primaryKey" json:"id" db:"id"`
	ProjectName     string            `gorm:"column:project_name;primaryKey" json:"projectName" db:"project_name"`
	Name            string            `gorm:"column:name" json:"name,omitempty" db:"name"`
	OriginLocations []string          `gorm:"column:origin_locations;type:jsonb;serializer:json;not null;default:'[]'" json:"originLocations,omitempty" db:"origin_locations"`
	CustomFields    map[string]string `gorm:"column:custom_fields;type:jsonb;serializer:json" json:"customFields,omitempty" db:"custom_fields"`
	CreatedAt       time.Time         `gorm:"column:created_at" json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `gorm:"column:updated_at" json:"updatedAt" db:"updated_at"`
}

// Meta exposes the shared fields to generic repository code.
func (m *ObjectMeta) Meta() *ObjectMeta { return m }

// DisplayName returns the name, defaulting to the id when no name was set.
func (m *ObjectMeta) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// MigrationRecord is implemented by every persisted migration entity.
type MigrationRecord interface {
	Meta() *ObjectMeta
	ResourceType() ResourceType
	TableName() string
}
