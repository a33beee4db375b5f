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

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/clients/ips"
	"github.com/wso2/doc-migration-platform/migration-service/content"
	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// fakeRepo is an in-memory ObjectRepository used by the deploy tests.
type fakeRepo[T models.MigrationRecord] struct {
	items []T
}

func (f *fakeRepo[T]) Upsert(_ context.Context, dto T) error {
	f.items = append(f.items, dto)
	return nil
}

func (f *fakeRepo[T]) UpsertBatch(_ context.Context, dtos []T) error {
	f.items = append(f.items, dtos...)
	return nil
}

func (f *fakeRepo[T]) FindByID(_ context.Context, projectName, id string) (T, error) {
	for _, item := range f.items {
		if item.Meta().ProjectName == projectName && item.Meta().ID == id {
			return item, nil
		}
	}
	var zero T
	return zero, nil
}

func (f *fakeRepo[T]) FindByName(_ context.Context, projectName, name string) (T, error) {
	for _, item := range f.items {
		if item.Meta().ProjectName == projectName && item.Meta().Name == name {
			return item, nil
		}
	}
	var zero T
	return zero, nil
}

func (f *fakeRepo[T]) FindAll(_ context.Context, projectName string) ([]T, error) {
	var out []T
	for _, item := range f.items {
		if item.Meta().ProjectName == projectName {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo[T]) Delete(_ context.Context, projectName, id string) error {
	out := f.items[:0]
	for _, item := range f.items {
		if item.Meta().ProjectName != projectName || item.Meta().ID != id {
			out = append(out, item)
		}
	}
	f.items = out
	return nil
}

func (f *fakeRepo[T]) DeleteAll(_ context.Context, projectName string) error {
	out := f.items[:0]
	for _, item := range f.items {
		if item.Meta().ProjectName != projectName {
			out = append(out, item)
		}
	}
	f.items = out
	return nil
}

func (f *fakeRepo[T]) Destroy(_ context.Context) error {
	f.items = nil
	return nil
}

type fakeObjectRepo struct {
	fakeRepo[*models.DocumentObject]
}

func (f *fakeObjectRepo) FindByIDs(ctx context.Context, projectName string, ids []string) ([]*models.DocumentObject, error) {
	var out []*models.DocumentObject
	for _, id := range ids {
		obj, _ := f.FindByID(ctx, projectName, id)
		if obj != nil {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (f *fakeObjectRepo) FindUsages(_ context.Context, projectName, id string) ([]*models.DocumentObject, error) {
	var out []*models.DocumentObject
	for _, obj := range f.items {
		if obj.ProjectName != projectName || obj.ID == id {
			continue
		}
		for _, refID := range obj.ReferencedObjectIDs() {
			if refID == id {
				out = append(out, obj)
				break
			}
		}
	}
	return out, nil
}

type statusRecord struct {
	Type    models.StatusEventType
	Rtype   models.ResourceType
	ID      string
	Path    string
	Output  models.Output
	Message string
}

type fakeStatusRepo struct {
	records []statusRecord
}

func (f *fakeStatusRepo) Active(_ context.Context, _ string, rtype models.ResourceType, id string, _ map[string]string) error {
	f.records = append(f.records, statusRecord{Type: models.StatusActive, Rtype: rtype, ID: id})
	return nil
}

func (f *fakeStatusRepo) Deployed(_ context.Context, _ string, rtype models.ResourceType, id, _ string, _ time.Time, path string, output models.Output, _ map[string]string) error {
	f.records = append(f.records, statusRecord{Type: models.StatusDeployed, Rtype: rtype, ID: id, Path: path, Output: output})
	return nil
}

func (f *fakeStatusRepo) Error(_ context.Context, _ string, rtype models.ResourceType, id, _ string, _ time.Time, path string, output models.Output, message string, _ map[string]string) error {
	f.records = append(f.records, statusRecord{Type: models.StatusError, Rtype: rtype, ID: id, Path: path, Output: output, Message: message})
	return nil
}

func (f *fakeStatusRepo) ActiveTx(_ *gorm.DB, _ string, rtype models.ResourceType, id string, _ map[string]string) error {
	f.records = append(f.records, statusRecord{Type: models.StatusActive, Rtype: rtype, ID: id})
	return nil
}

func (f *fakeStatusRepo) Find(context.Context, string, models.ResourceType, string) (*models.StatusTracking, error) {
	return nil, nil
}

func (f *fakeStatusRepo) FindLastEvent(context.Context, string, models.ResourceType, string) (*models.StatusEvent, error) {
	return nil, nil
}

func (f *fakeStatusRepo) FindLastEventRelevantToOutput(context.Context, string, models.ResourceType, string, models.Output) (*models.StatusEvent, error) {
	return nil, nil
}

func (f *fakeStatusRepo) DeleteAll(context.Context, string) error { return nil }
func (f *fakeStatusRepo) Destroy(context.Context) error           { return nil }

func (f *fakeStatusRepo) forID(id string) []statusRecord {
	var out []statusRecord
	for _, r := range f.records {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out
}

type fakeStorage struct {
	files map[string][]byte
}

func (f *fakeStorage) Read(_ context.Context, path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrAssetNotFound, path)
	}
	return data, nil
}

// fakeBuilder renders object ids; ids in failOn error out, ids in panicOn
// panic mid-build.
type fakeBuilder struct {
	failOn  map[string]bool
	panicOn map[string]bool
	built   []string
	inlined map[string][]string
}

func (f *fakeBuilder) BuildDocumentObject(obj *models.DocumentObject, inlined map[string]*models.DocumentObject) ([]byte, error) {
	if f.panicOn[obj.ID] {
		panic("corrupted content tree")
	}
	if f.failOn[obj.ID] {
		return nil, fmt.Errorf("cannot render %s", obj.ID)
	}
	f.built = append(f.built, obj.ID)
	if f.inlined == nil {
		f.inlined = make(map[string][]string)
	}
	for id := range inlined {
		f.inlined[obj.ID] = append(f.inlined[obj.ID], id)
	}
	return []byte("<layout id=\"" + obj.ID + "\"/>"), nil
}

func (f *fakeBuilder) BuildStyles(textStyles []*models.TextStyle, paragraphStyles []*models.ParagraphStyle) ([]byte, error) {
	return []byte(fmt.Sprintf("<styles text=\"%d\" paragraph=\"%d\"/>", len(textStyles), len(paragraphStyles))), nil
}

// fakeIPS records protocol calls; paths in failOn error out.
type fakeIPS struct {
	failOn    map[string]bool
	imports   []string
	uploads   []string
	approved  []string
	approvals int
	closed    bool
}

func (f *fakeIPS) Close(context.Context) error { f.closed = true; return nil }

func (f *fakeIPS) Run(context.Context, string, ...string) (ips.Result, error) {
	return ips.Result{}, nil
}

func (f *fakeIPS) RunWait(context.Context, string, ...string) (ips.Result, error) {
	return ips.Result{}, nil
}

func (f *fakeIPS) Upload(_ context.Context, path string, _ []byte) error {
	if f.failOn[path] {
		return fmt.Errorf("upload refused: %s", path)
	}
	f.uploads = append(f.uploads, path)
	return nil
}

func (f *fakeIPS) Download(context.Context, string) ([]byte, error) { return nil, nil }
func (f *fakeIPS) Remove(context.Context, string) error             { return nil }

func (f *fakeIPS) WaitForJob(context.Context, string, time.Duration) (ips.Result, error) {
	return ips.Result{}, nil
}

func (f *fakeIPS) AckJob(context.Context, string) error { return nil }

func (f *fakeIPS) XMLToWFD(context.Context, string, string) (ips.Result, error) {
	return ips.Result{}, nil
}

func (f *fakeIPS) WFDToXML(context.Context, string, string) (ips.Result, error) {
	return ips.Result{}, nil
}

func (f *fakeIPS) ImportDocument(_ context.Context, targetPath string, _ []byte) error {
	if f.failOn[targetPath] {
		return fmt.Errorf("import refused: %s", targetPath)
	}
	f.imports = append(f.imports, targetPath)
	return nil
}

func (f *fakeIPS) SetApprovalState(_ context.Context, paths []string, _ string) error {
	f.approvals++
	f.approved = append(f.approved, paths...)
	return nil
}

type deployFixture struct {
	objects *fakeObjectRepo
	images  *fakeRepo[*models.Image]
	texts   *fakeRepo[*models.TextStyle]
	paras   *fakeRepo[*models.ParagraphStyle]
	status  *fakeStatusRepo
	storage *fakeStorage
	builder *fakeBuilder
	ips     *fakeIPS
	svc     DeployService
}

func newDeployFixture(target DeployTarget) *deployFixture {
	f := &deployFixture{
		objects: &fakeObjectRepo{},
		images:  &fakeRepo[*models.Image]{},
		texts:   &fakeRepo[*models.TextStyle]{},
		paras:   &fakeRepo[*models.ParagraphStyle]{},
		status:  &fakeStatusRepo{},
		storage: &fakeStorage{files: map[string][]byte{}},
		builder: &fakeBuilder{failOn: map[string]bool{}, panicOn: map[string]bool{}},
		ips:     &fakeIPS{failOn: map[string]bool{}},
	}
	f.svc = NewDeployService(f.objects, f.images, f.texts, f.paras, f.status, f.storage, f.builder, f.ips, target)
	return f
}

func batchFixture() *deployFixture {
	return newDeployFixture(NewBatchDeployTarget(OutputPlacement{
		FolderPrefix:        "icm://Documents",
		ImageFolder:         "icm://Images",
		StyleDefinitionPath: "icm://Styles/StyleDefinition.wfd",
		ApprovalState:       "Approved",
	}))
}

func (f *deployFixture) addObject(obj *models.DocumentObject) *models.DocumentObject {
	obj.ProjectName = "proj"
	f.objects.items = append(f.objects.items, obj)
	return obj
}

func (f *deployFixture) addImage(id string, imgType models.ImageType, sourcePath string) {
	f.images.items = append(f.images.items, &models.Image{
		ObjectMeta: models.ObjectMeta{ID: id, ProjectName: "proj"},
		Type:       imgType,
		SourcePath: sourcePath,
	})
	if sourcePath != "" {
		f.storage.files[sourcePath] = []byte("img-bytes")
	}
}

func TestDeployIsolatesPerObjectFailures(t *testing.T) {
	f := batchFixture()
	f.addObject(objWithRefs("a"))
	f.addObject(objWithRefs("b"))
	f.addObject(objWithRefs("c"))
	f.builder.failOn["b"] = true

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"a", "b", "c"}, false)
	require.NoError(t, err)

	assert.Len(t, result.Deployed, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "b", result.Errors[0].ID)

	// status log mirrors the outcome per object
	require.Len(t, f.status.forID("a"), 1)
	assert.Equal(t, models.StatusDeployed, f.status.forID("a")[0].Type)
	assert.Equal(t, models.StatusError, f.status.forID("b")[0].Type)

	// only what landed is approved, in one batch call
	assert.Equal(t, 1, f.ips.approvals)
	assert.ElementsMatch(t, []string{"icm://Documents/a.wfd", "icm://Documents/c.wfd"}, f.ips.approved)
}

func TestDeployContainsBuildPanics(t *testing.T) {
	f := batchFixture()
	f.addObject(objWithRefs("good"))
	f.addObject(objWithRefs("bad"))
	f.builder.panicOn["bad"] = true

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", nil, false)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad", result.Errors[0].ID)
	assert.Contains(t, result.Errors[0].Message, "panicked")
	assert.Len(t, result.Deployed, 1)
}

func TestDeployUploadsEachImageOnce(t *testing.T) {
	f := batchFixture()
	f.addImage("logo", models.ImageTypePNG, "assets/logo.png")
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "a", ProjectName: "proj"},
		Type:       models.DocumentObjectTypePage,
		Content:    content.NodeList{&content.ImageRef{ImageID: "logo"}},
	})
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "b", ProjectName: "proj"},
		Type:       models.DocumentObjectTypePage,
		Content:    content.NodeList{&content.ImageRef{ImageID: "logo"}},
	})

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", nil, false)
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{"icm://Images/logo.png"}, f.ips.uploads)
}

func TestDeployRecordsMissingAndUnknownImages(t *testing.T) {
	f := batchFixture()
	f.addImage("odd", models.ImageTypeUnknown, "assets/odd.bin")
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "a", ProjectName: "proj"},
		Type:       models.DocumentObjectTypePage,
		Content: content.NodeList{
			&content.ImageRef{ImageID: "ghost"},
			&content.ImageRef{ImageID: "odd"},
		},
	})

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", nil, false)
	require.NoError(t, err)

	// the object itself still deploys
	assert.Len(t, result.Deployed, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "ghost", result.Errors[0].ID)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "odd", result.Warnings[0].ID)
	assert.Empty(t, f.ips.uploads)
}

func TestDeployExpandsExternalDependencies(t *testing.T) {
	f := batchFixture()
	f.addObject(objWithRefs("root", "dep"))
	f.addObject(objWithRefs("dep"))

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"root"}, false)
	require.NoError(t, err)

	assert.Len(t, result.Deployed, 2)
	// dependency deploys before its referrer
	assert.Equal(t, []string{"dep", "root"}, f.builder.built)
}

func TestDeploySkipDependenciesDeploysOnlyRequested(t *testing.T) {
	f := batchFixture()
	f.addObject(objWithRefs("root", "dep"))
	f.addObject(objWithRefs("dep"))

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"root"}, true)
	require.NoError(t, err)

	assert.Len(t, result.Deployed, 1)
	assert.Equal(t, []string{"root"}, f.builder.built)
}

func TestDeployInlinesInternalDependencies(t *testing.T) {
	f := batchFixture()
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "root", ProjectName: "proj"},
		Type:       models.DocumentObjectTypePage,
		Content:    content.NodeList{&content.DocumentObjectRef{ObjectID: "inner"}},
	})
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "inner", ProjectName: "proj"},
		Type:       models.DocumentObjectTypeBlock,
		Internal:   true,
		Content:    content.NodeList{&content.ImageRef{ImageID: "logo"}},
	})
	f.addImage("logo", models.ImageTypePNG, "assets/logo.png")

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"root"}, false)
	require.NoError(t, err)

	// internal dependency is not a standalone deployment
	assert.Equal(t, []string{"root"}, f.builder.built)
	assert.Equal(t, []string{"inner"}, f.builder.inlined["root"])
	require.Len(t, result.Deployed, 2) // root + the image
	// batch output reaches images referenced only by the inlined internal
	assert.Equal(t, []string{"icm://Images/logo.png"}, f.ips.uploads)
}

func TestDeployToleratesDanglingObjectRefs(t *testing.T) {
	f := batchFixture()
	f.addObject(objWithRefs("root", "vanished"))

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"root"}, false)
	require.NoError(t, err)
	assert.Len(t, result.Deployed, 1)
	assert.Empty(t, result.Errors)
}

func TestDeployValidationCollectsAllProblems(t *testing.T) {
	f := batchFixture()
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "internal-1", ProjectName: "proj"},
		Type:       models.DocumentObjectTypeBlock,
		Internal:   true,
	})

	_, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"missing-1", "internal-1"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrDeployValidation)
	assert.Contains(t, err.Error(), "missing-1")
	assert.Contains(t, err.Error(), "internal-1")
}

func TestDeployAbortsOnReferenceCycle(t *testing.T) {
	f := batchFixture()
	f.addObject(objWithRefs("a", "b"))
	f.addObject(objWithRefs("b", "a"))

	_, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"a", "b"}, false)
	assert.ErrorIs(t, err, utils.ErrDeployOrder)
}

func TestDeployStyleDefinitionOncePerRun(t *testing.T) {
	f := batchFixture()
	f.texts.items = append(f.texts.items, &models.TextStyle{
		ObjectMeta: models.ObjectMeta{ID: "ts-1", ProjectName: "proj"},
	})
	f.addObject(objWithRefs("a"))

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", nil, false)
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	require.NotEmpty(t, f.ips.imports)
	// style sheet goes first
	assert.Equal(t, "icm://Styles/StyleDefinition.wfd", f.ips.imports[0])
}

func TestDeployStyleDefinitionSkippedWithoutStyles(t *testing.T) {
	f := batchFixture()
	f.addObject(objWithRefs("a"))

	_, err := f.svc.DeployDocumentObjects(context.Background(), "proj", nil, false)
	require.NoError(t, err)

	for _, path := range f.ips.imports {
		assert.NotContains(t, path, "StyleDefinition")
	}
}

func TestInteractiveDeploySkipsPagesAndTheirImages(t *testing.T) {
	f := newDeployFixture(NewInteractiveDeployTarget(OutputPlacement{
		FolderPrefix:  "icm://Interactive",
		ImageFolder:   "icm://Interactive/Images",
		ApprovalState: "Approved",
	}, "tenant-a"))
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "page-1", ProjectName: "proj"},
		Type:       models.DocumentObjectTypePage,
		Content:    content.NodeList{&content.ImageRef{ImageID: "page-img"}},
	})
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "blk-1", ProjectName: "proj"},
		Type:       models.DocumentObjectTypeBlock,
		Content:    content.NodeList{&content.ImageRef{ImageID: "blk-img"}},
	})
	f.addImage("page-img", models.ImageTypePNG, "assets/p.png")
	f.addImage("blk-img", models.ImageTypePNG, "assets/b.png")

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", nil, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"blk-1"}, f.builder.built)
	assert.Equal(t, []string{"icm://Interactive/Images/tenant-a/blk-img.png"}, f.ips.uploads)
	assert.Empty(t, result.Errors)
}

func TestInteractiveDeployUploadsImagesOfInlinedInternals(t *testing.T) {
	f := newDeployFixture(NewInteractiveDeployTarget(OutputPlacement{
		FolderPrefix:  "icm://Interactive",
		ImageFolder:   "icm://Interactive/Images",
		ApprovalState: "Approved",
	}, "tenant-a"))
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "root", ProjectName: "proj"},
		Type:       models.DocumentObjectTypeBlock,
		Content:    content.NodeList{&content.DocumentObjectRef{ObjectID: "inner"}},
	})
	f.addObject(&models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: "inner", ProjectName: "proj"},
		Type:       models.DocumentObjectTypeBlock,
		Internal:   true,
		Content:    content.NodeList{&content.ImageRef{ImageID: "logo"}},
	})
	f.addImage("logo", models.ImageTypePNG, "assets/logo.png")

	result, err := f.svc.DeployDocumentObjects(context.Background(), "proj", []string{"root"}, false)
	require.NoError(t, err)

	// inner is inlined into root's output, so its image ships too
	assert.Equal(t, []string{"root"}, f.builder.built)
	assert.Contains(t, f.builder.inlined["root"], "inner")
	assert.Equal(t, []string{"icm://Interactive/Images/tenant-a/logo.png"}, f.ips.uploads)
	assert.Empty(t, result.Errors)
}
