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
	"fmt"
	"strings"
)

const (
	statusOK    = "ok"
	statusError = "error"

	jobStateExpired = "expired"
)

// Result is one parsed status line from the composition server. Every command
// yields exactly one: `;`-separated fields with `ok` or `error` first.
type Result struct {
	Status string
	Fields []string
}

// OK reports whether the server accepted the command.
func (r Result) OK() bool { return r.Status == statusOK }

// Field returns the i-th field after the status, or "" when absent.
func (r Result) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// JobID returns the job id of a long-running command's response.
func (r Result) JobID() string { return r.Field(0) }

// WorkflowID returns the workflow id of a job response.
func (r Result) WorkflowID() string { return r.Field(1) }

// JobState returns the job state field of a wait-for-job response.
func (r Result) JobState() string { return r.Field(2) }

// Expired reports whether a wait-for-job response timed out server side.
func (r Result) Expired() bool { return r.JobState() == jobStateExpired }

// Message joins the response fields for error reporting.
func (r Result) Message() string { return strings.Join(r.Fields, ";") }

func parseResult(line string) (Result, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Result{}, fmt.Errorf("empty response line")
	}
	fields := strings.Split(line, ";")
	switch fields[0] {
	case statusOK, statusError:
		return Result{Status: fields[0], Fields: fields[1:]}, nil
	default:
		return Result{}, fmt.Errorf("malformed response line %q", line)
	}
}

// ProtocolError is a failure reported by the composition server or a
// transport/framing failure underneath one command.
type ProtocolError struct {
	Command string
	Message string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ips: %s: %s: %v", e.Command, e.Message, e.Err)
	}
	return fmt.Sprintf("ips: %s: %s", e.Command, e.Message)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func protocolErr(command, message string, err error) *ProtocolError {
	return &ProtocolError{Command: command, Message: message, Err: err}
}
