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
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/wso2/doc-migration-platform/migration-service/config"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// MinioStorage serves asset bytes from an S3-compatible object store.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates an object-store-backed storage client
func NewMinioStorage(cfg config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: minio client: %w", err)
	}
	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStorage) Read(ctx context.Context, path string) ([]byte, error) {
	key := strings.TrimPrefix(path, "/")
	if key == "" {
		return nil, fmt.Errorf("%w: empty path", utils.ErrInvalidAssetPath)
	}

	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		switch resp.Code {
		case "NoSuchKey", "NoSuchBucket":
			return nil, fmt.Errorf("%w: %s", utils.ErrAssetNotFound, path)
		case "AccessDenied":
			return nil, fmt.Errorf("%w: %s", utils.ErrAssetAccessDenied, path)
		default:
			return nil, fmt.Errorf("storage: read %s: %w", path, err)
		}
	}
	return data, nil
}
