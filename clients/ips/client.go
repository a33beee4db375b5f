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

// Package ips implements the line-oriented request/response protocol of the
// composition server over one persistent TCP connection. Commands are
// `;`-joined fields terminated by newline; every command yields exactly one
// status line. Long-running commands return a job id that must be waited on
// (wfj) and acknowledged (ackj) to release server-side resources; binary
// payloads are framed by a byte-count line followed by raw bytes and a
// confirming status line.
package ips

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/doc-migration-platform/migration-service/config"
)

// ErrJobExpired is returned when a wait-for-job call times out server side.
var ErrJobExpired = errors.New("ips: job wait expired")

// Client is the composition-server protocol contract consumed by the deploy
// pipeline.
type Client interface {
	Close(ctx context.Context) error
	Run(ctx context.Context, command string, args ...string) (Result, error)
	RunWait(ctx context.Context, command string, args ...string) (Result, error)
	Upload(ctx context.Context, path string, data []byte) error
	Download(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
	WaitForJob(ctx context.Context, jobID string, timeout time.Duration) (Result, error)
	AckJob(ctx context.Context, jobID string) error
	XMLToWFD(ctx context.Context, sourcePath, targetPath string) (Result, error)
	WFDToXML(ctx context.Context, sourcePath, targetPath string) (Result, error)
	ImportDocument(ctx context.Context, targetPath string, xml []byte) error
	SetApprovalState(ctx context.Context, paths []string, state string) error
}

type ipsClient struct {
	mu             sync.Mutex
	conn           net.Conn
	reader         *bufio.Reader
	jobWaitTimeout time.Duration
	logger         *slog.Logger
}

// Dial connects to the composition server and opens a session.
func Dial(ctx context.Context, cfg config.CompositionConfig) (Client, error) {
	dialer := net.Dialer{Timeout: time.Duration(cfg.ConnectTimeoutSecs) * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)))
	if err != nil {
		return nil, protocolErr("open", "connect", err)
	}

	c := &ipsClient{
		conn:           conn,
		reader:         bufio.NewReader(conn),
		jobWaitTimeout: time.Duration(cfg.JobWaitTimeoutSecs) * time.Second,
		logger:         slog.Default(),
	}
	if _, err := c.command(ctx, "open", cfg.User, cfg.Password); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *ipsClient) Close(ctx context.Context) error {
	_, err := c.command(ctx, "close")
	if closeErr := c.conn.Close(); err == nil {
		err = closeErr
	}
	return err
}

// command sends one request line and reads its status line. An `error` status
// is returned as a ProtocolError alongside the parsed result.
func (c *ipsClient) command(ctx context.Context, name string, args ...string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandLocked(ctx, name, args...)
}

func (c *ipsClient) commandLocked(ctx context.Context, name string, args ...string) (Result, error) {
	if err := c.sendLocked(ctx, name, args...); err != nil {
		return Result{}, err
	}
	return c.readResultLocked(name)
}

func (c *ipsClient) sendLocked(ctx context.Context, name string, args ...string) error {
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
	} else {
		c.conn.SetDeadline(time.Time{})
	}

	line := name
	if len(args) > 0 {
		line += ";" + strings.Join(args, ";")
	}
	if _, err := io.WriteString(c.conn, line+"\n"); err != nil {
		return protocolErr(name, "write", err)
	}
	return nil
}

func (c *ipsClient) readResultLocked(name string) (Result, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return Result{}, protocolErr(name, "read response", err)
	}
	result, err := parseResult(line)
	if err != nil {
		return Result{}, protocolErr(name, "parse response", err)
	}
	if !result.OK() {
		return result, protocolErr(name, result.Message(), nil)
	}
	return result, nil
}

// Run starts a long-running server command and returns its job id result
// without waiting for completion.
func (c *ipsClient) Run(ctx context.Context, command string, args ...string) (Result, error) {
	return c.command(ctx, "run", append([]string{command}, args...)...)
}

// RunWait executes a server command and blocks until it completes.
func (c *ipsClient) RunWait(ctx context.Context, command string, args ...string) (Result, error) {
	return c.command(ctx, "runw", append([]string{command}, args...)...)
}

func (c *ipsClient) Upload(ctx context.Context, path string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sendLocked(ctx, "upload", path, strconv.Itoa(len(data))); err != nil {
		return err
	}
	if _, err := c.conn.Write(data); err != nil {
		return protocolErr("upload", "write payload", err)
	}
	_, err := c.readResultLocked("upload")
	return err
}

func (c *ipsClient) Download(ctx context.Context, path string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sendLocked(ctx, "download", path); err != nil {
		return nil, err
	}

	countLine, err := c.reader.ReadString('\n')
	if err != nil {
		return nil, protocolErr("download", "read byte count", err)
	}
	countLine = strings.TrimRight(countLine, "\r\n")
	if strings.HasPrefix(countLine, statusError) {
		result, _ := parseResult(countLine)
		return nil, protocolErr("download", result.Message(), nil)
	}
	count, err := strconv.Atoi(countLine)
	if err != nil || count < 0 {
		return nil, protocolErr("download", fmt.Sprintf("malformed byte count %q", countLine), nil)
	}

	data := make([]byte, count)
	if _, err := io.ReadFull(c.reader, data); err != nil {
		return nil, protocolErr("download", "read payload", err)
	}
	if _, err := c.readResultLocked("download"); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *ipsClient) Remove(ctx context.Context, path string) error {
	_, err := c.command(ctx, "remove", path)
	return err
}

// WaitForJob blocks until the job completes or the timeout elapses server
// side. The job must still be acked afterwards, also on failure.
func (c *ipsClient) WaitForJob(ctx context.Context, jobID string, timeout time.Duration) (Result, error) {
	if timeout <= 0 {
		timeout = c.jobWaitTimeout
	}
	secs := int(timeout / time.Second)
	result, err := c.command(ctx, "wfj", jobID, strconv.Itoa(secs))
	if err != nil {
		return result, err
	}
	if result.Expired() {
		return result, fmt.Errorf("%w: job %s after %s", ErrJobExpired, jobID, timeout)
	}
	return result, nil
}

// AckJob releases the server-side resources of a completed job. Skipping the
// ack leaks those resources, so callers defer it as soon as a job id exists.
func (c *ipsClient) AckJob(ctx context.Context, jobID string) error {
	_, err := c.command(ctx, "ackj", jobID)
	return err
}

// XMLToWFD converts an uploaded XML design into the native layout format.
func (c *ipsClient) XMLToWFD(ctx context.Context, sourcePath, targetPath string) (Result, error) {
	return c.Run(ctx, "xml2wfd", sourcePath, targetPath)
}

// WFDToXML extracts the XML design of an existing layout file.
func (c *ipsClient) WFDToXML(ctx context.Context, sourcePath, targetPath string) (Result, error) {
	return c.Run(ctx, "wfd2xml", sourcePath, targetPath)
}

// ImportDocument uploads an XML design to a temporary in-memory resource,
// converts it into place at targetPath and cleans the temporary up again,
// also when the conversion fails.
func (c *ipsClient) ImportDocument(ctx context.Context, targetPath string, xml []byte) error {
	tempPath := "memory://" + uuid.NewString() + ".xml"
	if err := c.Upload(ctx, tempPath, xml); err != nil {
		return err
	}
	defer func() {
		if err := c.Remove(ctx, tempPath); err != nil {
			c.logger.Warn("failed to remove temporary resource", "path", tempPath, "error", err)
		}
	}()

	result, err := c.XMLToWFD(ctx, tempPath, targetPath)
	if err != nil {
		return err
	}
	jobID := result.JobID()
	defer func() {
		if err := c.AckJob(ctx, jobID); err != nil {
			c.logger.Warn("failed to ack job", "jobId", jobID, "error", err)
		}
	}()

	waited, err := c.WaitForJob(ctx, jobID, 0)
	if err != nil {
		return err
	}
	if !waited.OK() {
		return protocolErr("xml2wfd", waited.Message(), nil)
	}
	return nil
}

// SetApprovalState applies one approval state to every given path in a
// single blocking server call.
func (c *ipsClient) SetApprovalState(ctx context.Context, paths []string, state string) error {
	if len(paths) == 0 {
		return nil
	}
	_, err := c.RunWait(ctx, "setapprovalstate", append([]string{state}, paths...)...)
	return err
}
