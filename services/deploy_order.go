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
	"fmt"
	"strings"

	"github.com/wso2/doc-migration-platform/migration-service/models"
	"github.com/wso2/doc-migration-platform/migration-service/utils"
)

// DeployOrder sorts document objects so that every object appears after the
// objects it references. Layered Kahn sort: each round moves every object
// whose remaining references are already resolved, preserving input order
// within a round. References to ids outside the input set count as satisfied.
// A round that moves nothing while objects remain means a reference cycle;
// that fails with the resolved and blocked id sets spelled out.
func DeployOrder(objects []*models.DocumentObject) ([]*models.DocumentObject, error) {
	present := make(map[string]bool, len(objects))
	for _, obj := range objects {
		present[obj.ID] = true
	}

	// blocking set per object: direct references restricted to the input set
	blocking := make(map[string][]string, len(objects))
	for _, obj := range objects {
		var deps []string
		for _, refID := range obj.ReferencedObjectIDs() {
			if present[refID] {
				deps = append(deps, refID)
			}
		}
		blocking[obj.ID] = deps
	}

	resolved := make(map[string]bool, len(objects))
	order := make([]*models.DocumentObject, 0, len(objects))
	remaining := objects

	for len(remaining) > 0 {
		var ready, blocked []*models.DocumentObject
		for _, obj := range remaining {
			if allResolved(blocking[obj.ID], resolved) {
				ready = append(ready, obj)
			} else {
				blocked = append(blocked, obj)
			}
		}

		if len(ready) == 0 {
			return nil, fmt.Errorf("%w: reference cycle or unresolvable reference; resolved=[%s] blocked=[%s]",
				utils.ErrDeployOrder, strings.Join(objectIDs(order), ","), strings.Join(objectIDs(blocked), ","))
		}

		for _, obj := range ready {
			resolved[obj.ID] = true
		}
		order = append(order, ready...)
		remaining = blocked
	}
	return order, nil
}

func allResolved(deps []string, resolved map[string]bool) bool {
	for _, dep := range deps {
		if !resolved[dep] {
			return false
		}
	}
	return true
}

func objectIDs(objects []*models.DocumentObject) []string {
	ids := make([]string, 0, len(objects))
	for _, obj := range objects {
		ids = append(ids, obj.ID)
	}
	return ids
}
