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
	"os"

	"sigs.k8s.io/yaml"

	"github.com/wso2/doc-migration-platform/migration-service/models"
)

// OutputPlacement configures where one output flavor places its artifacts on
// the composition server.
type OutputPlacement struct {
	FolderPrefix        string `json:"folderPrefix"`
	ImageFolder         string `json:"imageFolder"`
	StyleDefinitionPath string `json:"styleDefinitionPath"`
	ApprovalState       string `json:"approvalState"`
}

// PlacementRules holds the per-output placement configuration, loaded from a
// YAML file.
type PlacementRules struct {
	Batch       OutputPlacement `json:"batch"`
	Interactive OutputPlacement `json:"interactive"`
}

// DefaultPlacementRules returns the placement used when no rules file is
// configured.
func DefaultPlacementRules() *PlacementRules {
	return &PlacementRules{
		Batch: OutputPlacement{
			FolderPrefix:        "icm://Documents/",
			ImageFolder:         "icm://Resources/Images/",
			StyleDefinitionPath: "icm://Resources/Styles/StyleDefinition.wfd",
			ApprovalState:       "Approved",
		},
		Interactive: OutputPlacement{
			FolderPrefix:        "icm://Interactive/",
			ImageFolder:         "icm://Interactive/Images/",
			StyleDefinitionPath: "icm://Interactive/StyleDefinition.wfd",
			ApprovalState:       "Approved",
		},
	}
}

// LoadPlacementRules reads the rules file, falling back to defaults for
// fields the file leaves empty. An empty path yields the defaults.
func LoadPlacementRules(path string) (*PlacementRules, error) {
	rules := DefaultPlacementRules()
	if path == "" {
		return rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("placement rules: read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, rules); err != nil {
		return nil, fmt.Errorf("placement rules: parse %s: %w", path, err)
	}
	return rules, nil
}

// ForOutput returns the placement of one output flavor.
func (r *PlacementRules) ForOutput(output models.Output) OutputPlacement {
	if output == models.OutputInteractive {
		return r.Interactive
	}
	return r.Batch
}
