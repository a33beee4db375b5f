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

package apitestutils

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wso2/doc-migration-platform/migration-service/config"
	"github.com/wso2/doc-migration-platform/migration-service/content"
	"github.com/wso2/doc-migration-platform/migration-service/db"
	dbmigrations "github.com/wso2/doc-migration-platform/migration-service/db_migrations"
	"github.com/wso2/doc-migration-platform/migration-service/models"
)

// RequireTestDB connects to the integration test database and runs the
// schema migrations. Tests are skipped when TEST_DB_HOST is not set.
func RequireTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}
	cfg := config.GetConfig()
	cfg.POSTGRESQL.Host = os.Getenv("TEST_DB_HOST")
	require.NoError(t, db.Init(cfg))
	require.NoError(t, dbmigrations.Run(db.DB(context.Background())))
}

// CleanProject removes all rows of the given project so tests start from a
// known state.
func CleanProject(t *testing.T, projectName string) {
	t.Helper()
	gdb := db.DB(context.Background())
	for _, table := range []string{
		"document_objects", "images", "files", "attachments",
		"text_styles", "paragraph_styles",
		"variables", "variable_structures", "display_rules",
		"status_tracking",
	} {
		err := gdb.Exec("DELETE FROM "+table+" WHERE project_name = ?", projectName).Error
		require.NoError(t, err)
	}
}

// CreateDocumentObject seeds one document object row directly.
func CreateDocumentObject(t *testing.T, projectName, id string, objType models.DocumentObjectType, internal bool, nodes ...content.Node) *models.DocumentObject {
	t.Helper()
	obj := &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: id, ProjectName: projectName},
		Type:       objType,
		Internal:   internal,
		Content:    nodes,
	}
	err := db.DB(context.Background()).Create(obj).Error
	require.NoError(t, err)
	return obj
}

// CreateImage seeds one image row directly.
func CreateImage(t *testing.T, projectName, id string, imgType models.ImageType, sourcePath string) *models.Image {
	t.Helper()
	img := &models.Image{
		ObjectMeta: models.ObjectMeta{ID: id, ProjectName: projectName},
		Type:       imgType,
		SourcePath: sourcePath,
	}
	err := db.DB(context.Background()).Create(img).Error
	require.NoError(t, err)
	return img
}
