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

import "github.com/wso2/doc-migration-platform/migration-service/content"

// DisplayRule is a boolean condition tree gating conditional content.
type DisplayRule struct {
	ObjectMeta `gorm:"embedded"`
	Condition  *content.RuleGroup `gorm:"column:condition;type:jsonb;serializer:json" json:"condition,omitempty"`
}

// TableName returns the table name for the DisplayRule model
func (DisplayRule) TableName() string { return "display_rules" }

func (*DisplayRule) ResourceType() ResourceType { return ResourceTypeDisplayRule }

// CollectRefs returns the variable references contained in the condition.
func (d *DisplayRule) CollectRefs() []content.Ref {
	return content.CollectRuleRefs(d.Condition)
}
