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

// VariableType is the data type of a migrated variable.
type VariableType string

const (
	VariableTypeString   VariableType = "string"
	VariableTypeNumber   VariableType = "number"
	VariableTypeBoolean  VariableType = "boolean"
	VariableTypeDateTime VariableType = "dateTime"
	VariableTypeCurrency VariableType = "currency"
)

// Variable is a data-binding placeholder referenced from content and display
// rules.
type Variable struct {
	ObjectMeta   `gorm:"embedded"`
	Type         VariableType `gorm:"column:type" json:"type"`
	DefaultValue string       `gorm:"column:default_value" json:"defaultValue,omitempty"`
	Format       string       `gorm:"column:format" json:"format,omitempty"`
	StructureRef string       `gorm:"column:structure_ref" json:"structureRef,omitempty"`
}

// TableName returns the table name for the Variable model
func (Variable) TableName() string { return "variables" }

func (*Variable) ResourceType() ResourceType { return ResourceTypeVariable }

// VariableStructureField is one field of a variable structure.
type VariableStructureField struct {
	Name     string                   `json:"name"`
	Type     VariableType             `json:"type"`
	Repeated bool                     `json:"repeated,omitempty"`
	Children []VariableStructureField `json:"children,omitempty"`
}

// VariableStructure describes the shape of the data record a document object
// is composed against.
type VariableStructure struct {
	ObjectMeta `gorm:"embedded"`
	Fields     []VariableStructureField `gorm:"column:fields;type:jsonb;serializer:json;not null;default:'[]'" json:"fields"`
}

// TableName returns the table name for the VariableStructure model
func (VariableStructure) TableName() string { return "variable_structures" }

func (*VariableStructure) ResourceType() ResourceType { return ResourceTypeVariableStructure }
