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

// FileRepository persists auxiliary migrated files.
type FileRepository interface {
	ObjectRepository[*models.File]
}

// FileRepo implements FileRepository using GORM
type FileRepo struct {
	objectRepo[models.File, *models.File]
}

// NewFileRepo creates a new file repository
func NewFileRepo(db *gorm.DB, status StatusTrackingRepository) FileRepository {
	return &FileRepo{objectRepo: newObjectRepo[models.File](db, status)}
}

// AttachmentRepository persists document attachments.
type AttachmentRepository interface {
	ObjectRepository[*models.Attachment]
}

// AttachmentRepo implements AttachmentRepository using GORM
type AttachmentRepo struct {
	objectRepo[models.Attachment, *models.Attachment]
}

// NewAttachmentRepo creates a new attachment repository
func NewAttachmentRepo(db *gorm.DB, status StatusTrackingRepository) AttachmentRepository {
	return &AttachmentRepo{objectRepo: newObjectRepo[models.Attachment](db, status)}
}
