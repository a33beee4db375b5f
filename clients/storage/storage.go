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

// Package storage reads source asset bytes referenced by migrated entities.
// Failures map onto the utils sentinel errors so callers can report distinct
// categories (not found, invalid path, access denied) per asset instead of
// aborting a whole run.
package storage

import (
	"context"
	"fmt"

	"github.com/wso2/doc-migration-platform/migration-service/config"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// Storage fetches source asset bytes by path.
type Storage interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// NewStorage creates the storage client selected by configuration.
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.StorageBackendFilesystem:
		return NewFilesystemStorage(cfg.RootDir), nil
	case config.StorageBackendMinio:
		return NewMinioStorage(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", utils.ErrInvalidInput, cfg.Backend)
	}
}
