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

package repositories

import (
	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/models"
)

// DisplayRuleRepository persists display rule condition trees.
type DisplayRuleRepository interface {
	ObjectRepository[*models.DisplayRule]
}

// DisplayRuleRepo implements DisplayRuleRepository using GORM
type DisplayRuleRepo struct {
	objectRepo[models.DisplayRule, *models.DisplayRule]
}

// NewDisplayRuleRepo creates a new display rule repository
func NewDisplayRuleRepo(db *gorm.DB, status StatusTrackingRepository) DisplayRuleRepository {
	return &DisplayRuleRepo{objectRepo: newObjectRepo[models.DisplayRule](db, status)}
}
