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
	"fmt"

	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// VariableRepository persists data-binding variables.
type VariableRepository interface {
	ObjectRepository[*models.Variable]
}

// VariableRepo implements VariableRepository using GORM
type VariableRepo struct {
	objectRepo[models.Variable, *models.Variable]
}

// NewVariableRepo creates a new variable repository
func NewVariableRepo(db *gorm.DB, status StatusTrackingRepository) VariableRepository {
	base := newObjectRepo[models.Variable](db, status)
	base.beforeWrite = func(existing, incoming *models.Variable) error {
		switch incoming.Type {
		case models.VariableTypeString, models.VariableTypeNumber, models.VariableTypeBoolean,
			models.VariableTypeDateTime, models.VariableTypeCurrency:
			return nil
		}
		return fmt.Errorf("%w: variable %s: unknown type %q", utils.ErrInvalidInput, incoming.ID, incoming.Type)
	}
	return &VariableRepo{objectRepo: base}
}

// VariableStructureRepository persists the record shapes documents are
// composed against.
type VariableStructureRepository interface {
	ObjectRepository[*models.VariableStructure]
}

// VariableStructureRepo implements VariableStructureRepository using GORM
type VariableStructureRepo struct {
	objectRepo[models.VariableStructure, *models.VariableStructure]
}

// NewVariableStructureRepo creates a new variable structure repository
func NewVariableStructureRepo(db *gorm.DB, status StatusTrackingRepository) VariableStructureRepository {
	return &VariableStructureRepo{objectRepo: newObjectRepo[models.VariableStructure](db, status)}
}
