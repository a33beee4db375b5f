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

// create table status_tracking
var migration005 = &gormigrate.Migration{
	ID: "005",
	Migrate: func(db *gorm.DB) error {
		createTable := `CREATE TABLE status_tracking
(
   project_name  VARCHAR(100) NOT NULL,
   resource_type VARCHAR(30) NOT NULL,
   resource_id   VARCHAR(255) NOT NULL,
   events        JSONB NOT NULL DEFAULT '[]',
   updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   PRIMARY KEY (project_name, resource_type, resource_id)
)`

		createIndex := `CREATE INDEX ix_status_tracking_project_type ON status_tracking(project_name, resource_type)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTable, createIndex)
		})
	},
}
