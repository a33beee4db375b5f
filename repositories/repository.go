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

// Package repositories implements the persistence contracts for migration
// entities over GORM. Every upsert runs in a single transaction: look up the
// existing row, merge, write, and emit status events. Merge rules: origin
// locations accumulate as a first-seen-stable union, custom fields are fully
// replaced, created_at is immutable after first insert, updated_at refreshes
// on every write.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// ObjectRepository is the persistence contract shared by every migration
// entity type. T is a pointer to the entity model.
type ObjectRepository[T models.MigrationRecord] interface {
	Upsert(ctx context.Context, dto T) error
	UpsertBatch(ctx context.Context, dtos []T) error
	FindByID(ctx context.Context, projectName, id string) (T, error)
	FindByName(ctx context.Context, projectName, name string) (T, error)
	FindAll(ctx context.Context, projectName string) ([]T, error)
	Delete(ctx context.Context, projectName, id string) error
	DeleteAll(ctx context.Context, projectName string) error
	Destroy(ctx context.Context) error
}

// record constrains PT to a pointer to T implementing MigrationRecord.
type record[T any] interface {
	*T
	models.MigrationRecord
}

// objectRepo is the shared GORM implementation behind the per-entity
// repositories.
type objectRepo[T any, PT record[T]] struct {
	db     *gorm.DB
	status StatusTrackingRepository

	// beforeWrite validates the incoming dto against the existing row
	// (existing is nil on creation). Runs before any write.
	beforeWrite func(existing, incoming PT) error

	// needsActivation decides whether this upsert appends an Active event.
	needsActivation func(existing, incoming PT) bool
}

func newObjectRepo[T any, PT record[T]](db *gorm.DB, status StatusTrackingRepository) objectRepo[T, PT] {
	return objectRepo[T, PT]{
		db:     db,
		status: status,
		needsActivation: func(existing, incoming PT) bool {
			return existing == nil
		},
	}
}

// mergeOriginLocations unions existing and incoming origin lists, removing
// duplicates and keeping first-seen order.
func mergeOriginLocations(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, lists := range [][]string{existing, incoming} {
		for _, loc := range lists {
			if _, ok := seen[loc]; ok {
				continue
			}
			seen[loc] = struct{}{}
			out = append(out, loc)
		}
	}
	return out
}

// isUniqueViolation reports whether the error is a Postgres duplicate-key
// violation, raised when two callers insert the same id concurrently.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *objectRepo[T, PT]) Upsert(ctx context.Context, dto PT) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.upsertTx(tx, dto)
	})
}

func (r *objectRepo[T, PT]) UpsertBatch(ctx context.Context, dtos []PT) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dto := range dtos {
			if err := r.upsertTx(tx, dto); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *objectRepo[T, PT]) upsertTx(tx *gorm.DB, dto PT) error {
	meta := dto.Meta()
	if meta.ID == "" {
		return fmt.Errorf("%w: id cannot be empty", utils.ErrInvalidInput)
	}
	if meta.ProjectName == "" {
		return fmt.Errorf("%w: project name cannot be empty", utils.ErrInvalidInput)
	}

	var row T
	existing := PT(&row)
	err := tx.Where("id = ? AND project_name = ?", meta.ID, meta.ProjectName).First(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		existing = nil
	} else if err != nil {
		return err
	}

	if r.beforeWrite != nil {
		if err := r.beforeWrite(existing, dto); err != nil {
			return err
		}
	}

	now := time.Now()
	if existing != nil {
		prev := existing.Meta()
		meta.CreatedAt = prev.CreatedAt
		meta.OriginLocations = mergeOriginLocations(prev.OriginLocations, meta.OriginLocations)
	} else {
		meta.CreatedAt = now
		meta.OriginLocations = mergeOriginLocations(nil, meta.OriginLocations)
	}
	meta.UpdatedAt = now

	if existing != nil {
		if err := tx.Save(dto).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Create(dto).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s/%s", utils.ErrObjectAlreadyExists, meta.ProjectName, meta.ID)
			}
			return err
		}
	}

	if r.needsActivation != nil && r.needsActivation(existing, dto) {
		return r.status.ActiveTx(tx, meta.ProjectName, dto.ResourceType(), meta.ID, nil)
	}
	return nil
}

func (r *objectRepo[T, PT]) FindByID(ctx context.Context, projectName, id string) (PT, error) {
	var row T
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_name = ?", id, projectName).
		First(PT(&row)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return PT(&row), nil
}

func (r *objectRepo[T, PT]) FindByName(ctx context.Context, projectName, name string) (PT, error) {
	var row T
	err := r.db.WithContext(ctx).
		Where("name = ? AND project_name = ?", name, projectName).
		First(PT(&row)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return PT(&row), nil
}

func (r *objectRepo[T, PT]) FindAll(ctx context.Context, projectName string) ([]PT, error) {
	var rows []PT
	err := r.db.WithContext(ctx).
		Where("project_name = ?", projectName).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *objectRepo[T, PT]) Delete(ctx context.Context, projectName, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND project_name = ?", id, projectName).
		Delete(PT(new(T))).Error
}

func (r *objectRepo[T, PT]) DeleteAll(ctx context.Context, projectName string) error {
	return r.db.WithContext(ctx).
		Where("project_name = ?", projectName).
		Delete(PT(new(T))).Error
}

// Destroy drops the backing table. Teardown and test use only.
func (r *objectRepo[T, PT]) Destroy(ctx context.Context) error {
	return r.db.WithContext(ctx).Migrator().DropTable(PT(new(T)))
}
