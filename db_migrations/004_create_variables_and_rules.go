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

// create tables variables, variable_structures, display_rules
var migration004 = &gormigrate.Migration{
	ID: "004",
	Migrate: func(db *gorm.DB) error {
		createVariables := `CREATE TABLE variables
(
   id               VARCHAR(255) NOT NULL,
   project_name     VARCHAR(100) NOT NULL,
   name             VARCHAR(255),
   type             VARCHAR(20) NOT NULL,
   default_value    TEXT,
   format           VARCHAR(100),
   structure_ref    VARCHAR(255),
   origin_locations JSONB NOT NULL DEFAULT '[]',
   custom_fields    JSONB,
   created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name),
   CONSTRAINT variable_type_enum CHECK (type IN ('string', 'number', 'boolean', 'dateTime', 'currency'))
)`

		createVariableStructures := `CREATE TABLE variable_structures
(
   id               VARCHAR(255) NOT NULL,
   project_name     VARCHAR(100) NOT NULL,
   name             VARCHAR(255),
   fields           JSONB NOT NULL DEFAULT '[]',
   origin_locations JSONB NOT NULL DEFAULT '[]',
   custom_fields    JSONB,
   created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name)
)`

		createDisplayRules := `CREATE TABLE display_rules
(
   id               VARCHAR(255) NOT NULL,
   project_name     VARCHAR(100) NOT NULL,
   name             VARCHAR(255),
   condition        JSONB,
   origin_locations JSONB NOT NULL DEFAULT '[]',
   custom_fields    JSONB,
   created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (id, project_name)
)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createVariables, createVariableStructures, createDisplayRules)
		})
	},
}
