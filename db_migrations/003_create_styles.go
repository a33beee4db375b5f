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

// create tables text_styles, paragraph_styles
var migration003 = &gormigrate.Migration{
	ID: "003",
	Migrate: func(db *gorm.DB) error {
		createTextStyles := `CREATE TABLE text_styles
(
   id               VARCHAR(255) NOT NULL,
   project_name     VARCHAR(100) NOT NULL,
   name             VARCHAR(255),
   font_family      VARCHAR(255),
   font_size        JSONB,
   color            VARCHAR(7),
   bold             BOOLEAN NOT NULL DEFAULT FALSE,
   italic           BOOLEAN NOT NULL DEFAULT FALSE,
   underline        BOOLEAN NOT NULL DEFAULT FALSE,
   strike_through   BOOLEAN NOT NULL DEFAULT FALSE,
   origin_locations JSONB NOT NULL DEFAULT '[]',
   custom_fields    JSONB,
   created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name)
)`

		createParagraphStyles := `CREATE TABLE paragraph_styles
(
   id                VARCHAR(255) NOT NULL,
   project_name      VARCHAR(100) NOT NULL,
   name              VARCHAR(255),
   alignment         VARCHAR(10),
   space_before      JSONB,
   space_after       JSONB,
   line_spacing      DOUBLE PRECISION,
   left_indent       JSONB,
   right_indent      JSONB,
   first_line_indent JSONB,
   default_text_ref  VARCHAR(255),
   origin_locations  JSONB NOT NULL DEFAULT '[]',
   custom_fields     JSONB,
   created_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name)
)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTextStyles, createParagraphStyles)
		})
	},
}
