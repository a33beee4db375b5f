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

// TextStyleRepository persists character-level styles.
type TextStyleRepository interface {
	ObjectRepository[*models.TextStyle]
}

// TextStyleRepo implements TextStyleRepository using GORM
type TextStyleRepo struct {
	objectRepo[models.TextStyle, *models.TextStyle]
}

// NewTextStyleRepo creates a new text style repository
func NewTextStyleRepo(db *gorm.DB, status StatusTrackingRepository) TextStyleRepository {
	base := newObjectRepo[models.TextStyle](db, status)
	base.beforeWrite = func(existing, incoming *models.TextStyle) error {
		if incoming.Color != "" {
			if err := incoming.Color.Validate(); err != nil {
				return fmt.Errorf("%w: text style %s: %s", utils.ErrInvalidInput, incoming.ID, err.Error())
			}
		}
		return nil
	}
	return &TextStyleRepo{objectRepo: base}
}

// ParagraphStyleRepository persists block-level styles.
type ParagraphStyleRepository interface {
	ObjectRepository[*models.ParagraphStyle]
}

// ParagraphStyleRepo implements ParagraphStyleRepository using GORM
type ParagraphStyleRepo struct {
	objectRepo[models.ParagraphStyle, *models.ParagraphStyle]
}

// NewParagraphStyleRepo creates a new paragraph style repository
func NewParagraphStyleRepo(db *gorm.DB, status StatusTrackingRepository) ParagraphStyleRepository {
	return &ParagraphStyleRepo{objectRepo: newObjectRepo[models.ParagraphStyle](db, status)}
}
