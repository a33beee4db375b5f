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
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// DocumentObjectRepository persists document objects. On top of the common
// contract it can list a whole project and answer reverse-reference queries.
type DocumentObjectRepository interface {
	ObjectRepository[*models.DocumentObject]
	FindByIDs(ctx context.Context, projectName string, ids []string) ([]*models.DocumentObject, error)
	FindUsages(ctx context.Context, projectName, id string) ([]*models.DocumentObject, error)
}

// DocumentObjectRepo implements DocumentObjectRepository using GORM
type DocumentObjectRepo struct {
	objectRepo[models.DocumentObject, *models.DocumentObject]
}

// NewDocumentObjectRepo creates a new document object repository
func NewDocumentObjectRepo(db *gorm.DB, status StatusTrackingRepository) DocumentObjectRepository {
	base := newObjectRepo[models.DocumentObject](db, status)
	base.beforeWrite = func(existing, incoming *models.DocumentObject) error {
		if err := incoming.Validate(); err != nil {
			return fmt.Errorf("%w: %s", utils.ErrInvalidInput, err.Error())
		}
		if existing != nil && existing.Type != incoming.Type {
			return fmt.Errorf("%w: document object %s: type is immutable, was %q",
				utils.ErrInvalidInput, incoming.ID, existing.Type)
		}
		return nil
	}
	// An object also (re)activates when it stops being internal: it now
	// produces a standalone output of its own.
	base.needsActivation = func(existing, incoming *models.DocumentObject) bool {
		if existing == nil {
			return true
		}
		return existing.Internal && !incoming.Internal
	}
	return &DocumentObjectRepo{objectRepo: base}
}

func (r *DocumentObjectRepo) FindByIDs(ctx context.Context, projectName string, ids []string) ([]*models.DocumentObject, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var objects []*models.DocumentObject
	err := r.db.WithContext(ctx).
		Where("project_name = ? AND id IN ?", projectName, ids).
		Order("id").
		Find(&objects).Error
	if err != nil {
		return nil, err
	}
	return objects, nil
}

// FindUsages returns the document objects whose content or direct references
// point at the given object id, ordered by id. References live inside the
// jsonb content column, so candidates are filtered in memory after a coarse
// textual match in SQL.
func (r *DocumentObjectRepo) FindUsages(ctx context.Context, projectName, id string) ([]*models.DocumentObject, error) {
	var candidates []*models.DocumentObject
	err := r.db.WithContext(ctx).
		Where("project_name = ? AND (content::text LIKE ? OR base_template = ?)",
			projectName, "%"+id+"%", id).
		Order("id").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	usages := make([]*models.DocumentObject, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == id {
			continue
		}
		for _, refID := range candidate.ReferencedObjectIDs() {
			if refID == id {
				usages = append(usages, candidate)
				break
			}
		}
	}
	return usages, nil
}
