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

package ips

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	r, err := parseResult("ok;42;wf-7;finished\r\n")
	require.NoError(t, err)
	assert.True(t, r.OK())
	assert.Equal(t, "42", r.JobID())
	assert.Equal(t, "wf-7", r.WorkflowID())
	assert.Equal(t, "finished", r.JobState())
	assert.False(t, r.Expired())

	r, err = parseResult("ok\n")
	require.NoError(t, err)
	assert.True(t, r.OK())
	assert.Equal(t, "", r.JobID())

	r, err = parseResult("error;file not found\n")
	require.NoError(t, err)
	assert.False(t, r.OK())
	assert.Equal(t, "file not found", r.Message())

	r, err = parseResult("ok;9;wf-1;expired\n")
	require.NoError(t, err)
	assert.True(t, r.Expired())
}

func TestParseResultRejectsMalformedLines(t *testing.T) {
	for _, line := range []string{"", "\n", "OK;1\n", "42;ok\n"} {
		_, err := parseResult(line)
		assert.Error(t, err, "expected %q to be rejected", line)
	}
}

func TestProtocolErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := protocolErr("upload", "write payload", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "upload")
	assert.Contains(t, err.Error(), "boom")

	bare := protocolErr("wfj", "job not found", nil)
	assert.Equal(t, "ips: wfj: job not found", bare.Error())
}
