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

// ImageRepository persists image assets. Unknown image types are accepted
// here and skipped with a warning at deploy time.
type ImageRepository interface {
	ObjectRepository[*models.Image]
}

// ImageRepo implements ImageRepository using GORM
type ImageRepo struct {
	objectRepo[models.Image, *models.Image]
}

// NewImageRepo creates a new image repository
func NewImageRepo(db *gorm.DB, status StatusTrackingRepository) ImageRepository {
	return &ImageRepo{objectRepo: newObjectRepo[models.Image](db, status)}
}
