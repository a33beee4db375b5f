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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevantToOutput(t *testing.T) {
	active := StatusEvent{Type: StatusActive}
	assert.True(t, active.RelevantToOutput(OutputBatch))
	assert.True(t, active.RelevantToOutput(OutputInteractive))

	deployed := StatusEvent{Type: StatusDeployed, Output: OutputBatch}
	assert.True(t, deployed.RelevantToOutput(OutputBatch))
	assert.False(t, deployed.RelevantToOutput(OutputInteractive))

	failed := StatusEvent{Type: StatusError, Output: OutputInteractive}
	assert.False(t, failed.RelevantToOutput(OutputBatch))
	assert.True(t, failed.RelevantToOutput(OutputInteractive))
}

func TestLastEventRelevantToOutput(t *testing.T) {
	log := StatusTracking{Events: []StatusEvent{
		{Type: StatusActive},
		{Type: StatusDeployed, Output: OutputBatch, Path: "icm://Documents/a.wfd"},
		{Type: StatusError, Output: OutputInteractive, Message: "build failed"},
	}}

	// for batch the interactive error is invisible; the batch deploy wins
	batch := log.LastEventRelevantToOutput(OutputBatch)
	require.NotNil(t, batch)
	assert.Equal(t, StatusDeployed, batch.Type)
	assert.Equal(t, "icm://Documents/a.wfd", batch.Path)

	interactive := log.LastEventRelevantToOutput(OutputInteractive)
	require.NotNil(t, interactive)
	assert.Equal(t, StatusError, interactive.Type)

	empty := StatusTracking{}
	assert.Nil(t, empty.LastEventRelevantToOutput(OutputBatch))
	assert.Nil(t, empty.LastEvent())
}

func TestLastEvent(t *testing.T) {
	log := StatusTracking{Events: []StatusEvent{
		{Type: StatusActive},
		{Type: StatusDeployed, Output: OutputBatch},
	}}
	last := log.LastEvent()
	require.NotNil(t, last)
	assert.Equal(t, StatusDeployed, last.Type)
}
