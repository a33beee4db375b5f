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

package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/doc-migration-platform/migration-service/content"
	"github.com/wso2/doc-migration-platform/migration-service/db"
	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/repositories"
	"github.com/wso2/doc-migration-platform/migration-service/tests/apitestutils"
)

const testProject = "repo-integration"

func newObjectRepo(t *testing.T) (repositories.DocumentObjectRepository, repositories.StatusTrackingRepository) {
	t.Helper()
	apitestutils.RequireTestDB(t)
	apitestutils.CleanProject(t, testProject)
	t.Cleanup(func() { apitestutils.CleanProject(t, testProject) })

	status := repositories.NewStatusTrackingRepo(db.DB(context.Background()))
	return repositories.NewDocumentObjectRepo(db.DB(context.Background()), status), status
}

func TestUpsertMergesOriginLocations(t *testing.T) {
	repo, _ := newObjectRepo(t)
	ctx := context.Background()

	first := &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{
			ID:              "tmpl-1",
			ProjectName:     testProject,
			Name:            "Welcome",
			OriginLocations: []string{"src/letters/welcome.doc", "src/shared/header.doc"},
		},
		Type: models.DocumentObjectTypeTemplate,
	}
	require.NoError(t, repo.Upsert(ctx, first))

	created, err := repo.FindByID(ctx, testProject, "tmpl-1")
	require.NoError(t, err)
	require.NotNil(t, created)
	createdAt := created.CreatedAt

	second := &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{
			ID:              "tmpl-1",
			ProjectName:     testProject,
			Name:            "Welcome v2",
			OriginLocations: []string{"src/shared/header.doc", "src/letters/welcome-de.doc"},
		},
		Type: models.DocumentObjectTypeTemplate,
	}
	require.NoError(t, repo.Upsert(ctx, second))

	merged, err := repo.FindByID(ctx, testProject, "tmpl-1")
	require.NoError(t, err)
	require.NotNil(t, merged)

	assert.Equal(t, "Welcome v2", merged.Name)
	assert.Equal(t, []string{
		"src/letters/welcome.doc",
		"src/shared/header.doc",
		"src/letters/welcome-de.doc",
	}, merged.OriginLocations)
	assert.True(t, merged.CreatedAt.Equal(createdAt), "created_at must survive re-upserts")
	assert.True(t, merged.UpdatedAt.After(createdAt) || merged.UpdatedAt.Equal(createdAt))
}

func TestUpsertAppendsActiveEventOnlyOnce(t *testing.T) {
	repo, status := newObjectRepo(t)
	ctx := context.Background()

	obj := &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "tmpl-2", ProjectName: testProject},
		Type:       models.DocumentObjectTypeBlock,
	}
	require.NoError(t, repo.Upsert(ctx, obj))
	require.NoError(t, repo.Upsert(ctx, obj))

	log, err := status.Find(ctx, testProject, models.ResourceTypeDocumentObject, "tmpl-2")
	require.NoError(t, err)
	require.NotNil(t, log)
	require.Len(t, log.Events, 1)
	assert.Equal(t, models.StatusActive, log.Events[0].Type)
}

func TestFindUsages(t *testing.T) {
	repo, _ := newObjectRepo(t)
	ctx := context.Background()

	footer := &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "footer", ProjectName: testProject},
		Type:       models.DocumentObjectTypeBlock,
	}
	letter := &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "letter", ProjectName: testProject},
		Type:       models.DocumentObjectTypeTemplate,
		Content: content.NodeList{
			&content.DocumentObjectRef{ObjectID: "footer"},
		},
	}
	unrelated := &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "invoice", ProjectName: testProject},
		Type:       models.DocumentObjectTypeTemplate,
	}
	require.NoError(t, repo.UpsertBatch(ctx, []*models.DocumentObject{footer, letter, unrelated}))

	usages, err := repo.FindUsages(ctx, testProject, "footer")
	require.NoError(t, err)
	require.Len(t, usages, 1)
	assert.Equal(t, "letter", usages[0].ID)
}

func TestStatusRelevanceAcrossOutputs(t *testing.T) {
	_, status := newObjectRepo(t)
	ctx := context.Background()

	apitestutils.CreateImage(t, testProject, "img-1", models.ImageTypePNG, "assets/img-1.png")
	require.NoError(t, status.Active(ctx, testProject, models.ResourceTypeImage, "img-1", nil))
	require.NoError(t, status.Deployed(ctx, testProject, models.ResourceTypeImage, "img-1",
		"dep-1", time.Now(), "icm://Resources/Images/img-1.png", models.OutputBatch, nil))
	require.NoError(t, status.Error(ctx, testProject, models.ResourceTypeImage, "img-1",
		"dep-2", time.Now(), "", models.OutputInteractive, "asset unavailable", nil))

	// the last event overall is the interactive error
	last, err := status.FindLastEvent(ctx, testProject, models.ResourceTypeImage, "img-1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, models.StatusError, last.Type)

	// batch deciders never see the interactive error
	batch, err := status.FindLastEventRelevantToOutput(ctx, testProject,
		models.ResourceTypeImage, "img-1", models.OutputBatch)
	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, models.StatusDeployed, batch.Type)
	assert.Equal(t, "icm://Resources/Images/img-1.png", batch.Path)
}

func TestFindByIDsReturnsSeededRows(t *testing.T) {
	repo, _ := newObjectRepo(t)

	apitestutils.CreateDocumentObject(t, testProject, "blk-1", models.DocumentObjectTypeBlock, true)
	apitestutils.CreateDocumentObject(t, testProject, "blk-2", models.DocumentObjectTypeBlock, false,
		&content.DocumentObjectRef{ObjectID: "blk-1"})

	objects, err := repo.FindByIDs(context.Background(), testProject, []string{"blk-1", "blk-2", "absent"})
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "blk-1", objects[0].ID)
	assert.True(t, objects[0].Internal)
}

func TestFindByIDAbsentRowReturnsNil(t *testing.T) {
	repo, _ := newObjectRepo(t)

	obj, err := repo.FindByID(context.Background(), testProject, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, obj)
}
