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

package dbmigrations

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"gorm.io/gorm"
)

// create tables images, files, attachments
var migration002 = &gormigrate.Migration{
	ID: "002",
	Migrate: func(db *gorm.DB) error {
		createImages := `CREATE TABLE images
(
   id               VARCHAR(255) NOT NULL,
   project_name     VARCHAR(100) NOT NULL,
   name             VARCHAR(255),
   type             VARCHAR(20) NOT NULL DEFAULT 'unknown',
   source_path      TEXT,
   target_folder    TEXT,
   origin_locations JSONB NOT NULL DEFAULT '[]',
   custom_fields    JSONB,
   created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name)
)`

		createFiles := `CREATE TABLE files
(
   id               VARCHAR(255) NOT NULL,
   project_name     VARCHAR(100) NOT NULL,
   name             VARCHAR(255),
   source_path      TEXT,
   target_folder    TEXT,
   origin_locations JSONB NOT NULL DEFAULT '[]',
   custom_fields    JSONB,
   created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name)
)`

		createAttachments := `CREATE TABLE attachments
(
   id               VARCHAR(255) NOT NULL,
   project_name     VARCHAR(100) NOT NULL,
   name             VARCHAR(255),
   source_path      TEXT,
   mime_type        VARCHAR(100),
   origin_locations JSONB NOT NULL DEFAULT '[]',
   custom_fields    JSONB,
   created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name)
)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createImages, createFiles, createAttachments)
		})
	},
}
