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

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/wso2/doc-migration-platform/migration-service/config"
	"github.com/wso2/doc-migration-platform/migration-service/db"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// registerHealthCheck registers the unauthenticated health endpoint. The
// check pings the database within the configured timeout.
func registerHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		timeout := time.Duration(cfg.HealthCheckTimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		sqlDB, err := db.DB(ctx).DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		utils.WriteSuccessResponse(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Version: config.Version,
		})
	})
}
