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

package models

import "time"

// StatusEventType is a lifecycle transition of a tracked resource.
type StatusEventType string

const (
	StatusActive   StatusEventType = "active"
	StatusDeployed StatusEventType = "deployed"
	StatusError    StatusEventType = "error"
)

// Output names a deployment output flavor (batch pages/files vs interactive).
type Output string

const (
	OutputBatch       Output = "batch"
	OutputInteractive Output = "interactive"
)

// StatusEvent is one immutable entry of a resource's lifecycle log.
type StatusEvent struct {
	Type         StatusEventType   `json:"type"`
	Timestamp    time.Time         `json:"timestamp"`
	DeploymentID string            `json:"deploymentId,omitempty"`
	Path         string            `json:"path,omitempty"`
	Output       Output            `json:"output,omitempty"`
	Message      string            `json:"message,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

// RelevantToOutput reports whether the event matters when deciding what to
// do for the given output. Active events always do; Deployed and Error
// events only for the output they were recorded against.
func (e StatusEvent) RelevantToOutput(output Output) bool {
	if e.Type == StatusActive {
		return true
	}
	return e.Output == output
}

// StatusTracking is the append-only event log for one resource, keyed by
// (project, resource type, resource id). Events are only ever appended;
// removal happens solely through DeleteAll.
type StatusTracking struct {
	ProjectName  string        `gorm:"column:project_name;primaryKey" json:"projectName"`
	ResourceType ResourceType  `gorm:"column:resource_type;primaryKey" json:"resourceType"`
	ResourceID   string        `gorm:"column:resource_id;primaryKey" json:"resourceId"`
	Events       []StatusEvent `gorm:"column:events;type:jsonb;serializer:json;not null;default:'[]'" json:"events"`
	UpdatedAt    time.Time     `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName returns the table name for the StatusTracking model
func (StatusTracking) TableName() string { return "status_tracking" }

// LastEvent returns the most recent event, or nil for an empty log.
func (s *StatusTracking) LastEvent() *StatusEvent {
	if len(s.Events) == 0 {
		return nil
	}
	return &s.Events[len(s.Events)-1]
}

// LastEventRelevantToOutput scans the log from the end and returns the most
// recent event relevant to the given output, or nil.
func (s *StatusTracking) LastEventRelevantToOutput(output Output) *StatusEvent {
	for i := len(s.Events) - 1; i >= 0; i-- {
		if s.Events[i].RelevantToOutput(output) {
			return &s.Events[i]
		}
	}
	return nil
}
