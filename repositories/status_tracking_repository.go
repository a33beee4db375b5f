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
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/models"
)

// StatusTrackingRepository maintains the append-only lifecycle event log per
// (project, resource type, resource id). Events are never mutated or removed
// except through DeleteAll. Appends are transactional read-modify-writes;
// single-writer-per-id is assumed (no optimistic locking).
type StatusTrackingRepository interface {
	Active(ctx context.Context, projectName string, rtype models.ResourceType, id string, data map[string]string) error
	Deployed(ctx context.Context, projectName string, rtype models.ResourceType, id, deploymentID string, timestamp time.Time, path string, output models.Output, data map[string]string) error
	Error(ctx context.Context, projectName string, rtype models.ResourceType, id, deploymentID string, timestamp time.Time, path string, output models.Output, message string, data map[string]string) error

	// ActiveTx appends an Active event inside an already-open transaction,
	// so entity upserts and their status emission commit atomically.
	ActiveTx(tx *gorm.DB, projectName string, rtype models.ResourceType, id string, data map[string]string) error

	Find(ctx context.Context, projectName string, rtype models.ResourceType, id string) (*models.StatusTracking, error)
	FindLastEvent(ctx context.Context, projectName string, rtype models.ResourceType, id string) (*models.StatusEvent, error)
	FindLastEventRelevantToOutput(ctx context.Context, projectName string, rtype models.ResourceType, id string, output models.Output) (*models.StatusEvent, error)
	DeleteAll(ctx context.Context, projectName string) error
	Destroy(ctx context.Context) error
}

// StatusTrackingRepo implements StatusTrackingRepository using GORM
type StatusTrackingRepo struct {
	db *gorm.DB
}

// NewStatusTrackingRepo creates a new status tracking repository
func NewStatusTrackingRepo(db *gorm.DB) StatusTrackingRepository {
	return &StatusTrackingRepo{db: db}
}

func (r *StatusTrackingRepo) Active(ctx context.Context, projectName string, rtype models.ResourceType, id string, data map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.ActiveTx(tx, projectName, rtype, id, data)
	})
}

func (r *StatusTrackingRepo) ActiveTx(tx *gorm.DB, projectName string, rtype models.ResourceType, id string, data map[string]string) error {
	return appendEvent(tx, projectName, rtype, id, models.StatusEvent{
		Type:      models.StatusActive,
		Timestamp: time.Now(),
		Data:      data,
	})
}

func (r *StatusTrackingRepo) Deployed(ctx context.Context, projectName string, rtype models.ResourceType, id, deploymentID string, timestamp time.Time, path string, output models.Output, data map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return appendEvent(tx, projectName, rtype, id, models.StatusEvent{
			Type:         models.StatusDeployed,
			Timestamp:    timestamp,
			DeploymentID: deploymentID,
			Path:         path,
			Output:       output,
			Data:         data,
		})
	})
}

func (r *StatusTrackingRepo) Error(ctx context.Context, projectName string, rtype models.ResourceType, id, deploymentID string, timestamp time.Time, path string, output models.Output, message string, data map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return appendEvent(tx, projectName, rtype, id, models.StatusEvent{
			Type:         models.StatusError,
			Timestamp:    timestamp,
			DeploymentID: deploymentID,
			Path:         path,
			Output:       output,
			Message:      message,
			Data:         data,
		})
	})
}

// appendEvent loads the entity's log, appends one event and writes it back,
// creating the entity when it does not yet exist. Must run inside a
// transaction.
func appendEvent(tx *gorm.DB, projectName string, rtype models.ResourceType, id string, event models.StatusEvent) error {
	var entry models.StatusTracking
	err := tx.Where("project_name = ? AND resource_type = ? AND resource_id = ?",
		projectName, rtype, id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.StatusTracking{
			ProjectName:  projectName,
			ResourceType: rtype,
			ResourceID:   id,
			Events:       []models.StatusEvent{event},
			UpdatedAt:    time.Now(),
		}
		return tx.Create(&entry).Error
	}
	if err != nil {
		return err
	}

	entry.Events = append(entry.Events, event)
	entry.UpdatedAt = time.Now()
	return tx.Save(&entry).Error
}

func (r *StatusTrackingRepo) Find(ctx context.Context, projectName string, rtype models.ResourceType, id string) (*models.StatusTracking, error) {
	var entry models.StatusTracking
	err := r.db.WithContext(ctx).
		Where("project_name = ? AND resource_type = ? AND resource_id = ?", projectName, rtype, id).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *StatusTrackingRepo) FindLastEvent(ctx context.Context, projectName string, rtype models.ResourceType, id string) (*models.StatusEvent, error) {
	entry, err := r.Find(ctx, projectName, rtype, id)
	if err != nil || entry == nil {
		return nil, err
	}
	return entry.LastEvent(), nil
}

func (r *StatusTrackingRepo) FindLastEventRelevantToOutput(ctx context.Context, projectName string, rtype models.ResourceType, id string, output models.Output) (*models.StatusEvent, error) {
	entry, err := r.Find(ctx, projectName, rtype, id)
	if err != nil || entry == nil {
		return nil, err
	}
	return entry.LastEventRelevantToOutput(output), nil
}

func (r *StatusTrackingRepo) DeleteAll(ctx context.Context, projectName string) error {
	return r.db.WithContext(ctx).
		Where("project_name = ?", projectName).
		Delete(&models.StatusTracking{}).Error
}

// Destroy drops the backing table. Teardown and test use only.
func (r *StatusTrackingRepo) Destroy(ctx context.Context) error {
	return r.db.WithContext(ctx).Migrator().DropTable(&models.StatusTracking{})
}
