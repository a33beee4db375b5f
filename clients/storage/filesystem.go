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

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// FilesystemStorage serves asset bytes from a directory tree. Paths are
// interpreted relative to the configured root and may not escape it.
type FilesystemStorage struct {
	root string
}

// NewFilesystemStorage creates a filesystem-backed storage client
func NewFilesystemStorage(root string) *FilesystemStorage {
	return &FilesystemStorage{root: root}
}

func (s *FilesystemStorage) Read(_ context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", utils.ErrInvalidAssetPath)
	}
	cleaned := filepath.Clean("/" + filepath.FromSlash(path))
	if strings.Contains(cleaned, "..") {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidAssetPath, path)
	}

	data, err := os.ReadFile(filepath.Join(s.root, cleaned))
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", utils.ErrAssetNotFound, path)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s", utils.ErrAssetAccessDenied, path)
		default:
			return nil, fmt.Errorf("storage: read %s: %w", path, err)
		}
	}
	return data, nil
}
