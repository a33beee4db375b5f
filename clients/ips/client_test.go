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
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/doc-migration-platform/migration-service/config"
)

// fakeServer is a scripted composition server on a loopback listener. It
// answers the open handshake itself and hands every further command to the
// test's handler.
type fakeServer struct {
	mu    sync.Mutex
	lines []string
}

func (s *fakeServer) record(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns every command line received so far, handshake included.
func (s *fakeServer) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

type commandHandler func(cmd string, args []string, br *bufio.Reader, conn net.Conn)

func startFakeServer(t *testing.T, handle commandHandler) (*fakeServer, config.CompositionConfig) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	srv := &fakeServer{}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		br := bufio.NewReader(conn)
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimRight(line, "\r\n")
			srv.record(line)
			fields := strings.Split(line, ";")
			switch fields[0] {
			case "open":
				fmt.Fprint(conn, "ok\n")
			case "close":
				fmt.Fprint(conn, "ok\n")
				return
			default:
				handle(fields[0], fields[1:], br, conn)
			}
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return srv, config.CompositionConfig{
		Host:               "127.0.0.1",
		Port:               addr.Port,
		ConnectTimeoutSecs: 5,
		JobWaitTimeoutSecs: 1,
		User:               "svc-user",
		Password:           "svc-pass",
	}
}

func okHandler(cmd string, _ []string, _ *bufio.Reader, conn net.Conn) {
	fmt.Fprint(conn, "ok\n")
}

func TestDialSendsCredentialsAndCloses(t *testing.T) {
	srv, cfg := startFakeServer(t, okHandler)

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, client.Close(context.Background()))

	lines := srv.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "open;svc-user;svc-pass", lines[0])
	assert.Equal(t, "close", lines[len(lines)-1])
}

func TestUploadFramesPayload(t *testing.T) {
	var payload []byte
	srv, cfg := startFakeServer(t, func(cmd string, args []string, br *bufio.Reader, conn net.Conn) {
		if cmd != "upload" {
			fmt.Fprint(conn, "error;unexpected command\n")
			return
		}
		count, _ := strconv.Atoi(args[1])
		payload = make([]byte, count)
		if _, err := io.ReadFull(br, payload); err != nil {
			fmt.Fprint(conn, "error;short payload\n")
			return
		}
		fmt.Fprint(conn, "ok\n")
	})

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	require.NoError(t, client.Upload(context.Background(), "icm://Docs/a.wfd", []byte("hello")))
	assert.Equal(t, []byte("hello"), payload)
	assert.Contains(t, srv.Lines(), "upload;icm://Docs/a.wfd;5")
}

func TestDownloadReadsFramedPayload(t *testing.T) {
	_, cfg := startFakeServer(t, func(cmd string, args []string, _ *bufio.Reader, conn net.Conn) {
		body := []byte("layout-bytes")
		fmt.Fprintf(conn, "%d\n", len(body))
		conn.Write(body)
		fmt.Fprint(conn, "ok\n")
	})

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	data, err := client.Download(context.Background(), "icm://Docs/a.wfd")
	require.NoError(t, err)
	assert.Equal(t, []byte("layout-bytes"), data)
}

func TestDownloadPropagatesServerError(t *testing.T) {
	_, cfg := startFakeServer(t, func(cmd string, args []string, _ *bufio.Reader, conn net.Conn) {
		fmt.Fprint(conn, "error;no such resource\n")
	})

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	_, err = client.Download(context.Background(), "icm://Docs/missing.wfd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such resource")
}

func TestWaitForJobExpiry(t *testing.T) {
	_, cfg := startFakeServer(t, func(cmd string, args []string, _ *bufio.Reader, conn net.Conn) {
		fmt.Fprint(conn, "ok;42;wf-7;expired\n")
	})

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	_, err = client.WaitForJob(context.Background(), "42", 0)
	assert.ErrorIs(t, err, ErrJobExpired)
}

func TestCommandErrorCarriesServerMessage(t *testing.T) {
	_, cfg := startFakeServer(t, func(cmd string, args []string, _ *bufio.Reader, conn net.Conn) {
		fmt.Fprint(conn, "error;permission denied\n")
	})

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	err = client.Remove(context.Background(), "icm://Docs/a.wfd")
	require.Error(t, err)
	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "remove", perr.Command)
	assert.Contains(t, perr.Message, "permission denied")
}

// importHandler answers the full import sequence and lets the test choose
// the wfj outcome.
func importHandler(jobState string) commandHandler {
	return func(cmd string, args []string, br *bufio.Reader, conn net.Conn) {
		switch cmd {
		case "upload":
			count, _ := strconv.Atoi(args[1])
			io.CopyN(io.Discard, br, int64(count))
			fmt.Fprint(conn, "ok\n")
		case "run":
			fmt.Fprint(conn, "ok;42;wf-7\n")
		case "wfj":
			fmt.Fprintf(conn, "ok;42;wf-7;%s\n", jobState)
		default: // ackj, remove
			fmt.Fprint(conn, "ok\n")
		}
	}
}

func TestImportDocumentLifecycle(t *testing.T) {
	srv, cfg := startFakeServer(t, importHandler("finished"))

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	require.NoError(t, client.ImportDocument(context.Background(), "icm://Docs/a.wfd", []byte("<layout/>")))

	var cmds []string
	var tempPath string
	for _, line := range srv.Lines() {
		fields := strings.Split(line, ";")
		cmds = append(cmds, fields[0])
		if fields[0] == "upload" {
			tempPath = fields[1]
		}
	}
	assert.Equal(t, []string{"open", "upload", "run", "wfj", "ackj", "remove"}, cmds)
	// conversion runs from an in-memory temporary, then cleans it up
	assert.True(t, strings.HasPrefix(tempPath, "memory://"), "temp path %q", tempPath)
	assert.Contains(t, srv.Lines(), "remove;"+tempPath)
	assert.Contains(t, srv.Lines(), "run;xml2wfd;"+tempPath+";icm://Docs/a.wfd")
}

func TestImportDocumentAcksAndCleansUpOnExpiry(t *testing.T) {
	srv, cfg := startFakeServer(t, importHandler("expired"))

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	err = client.ImportDocument(context.Background(), "icm://Docs/a.wfd", []byte("<layout/>"))
	assert.ErrorIs(t, err, ErrJobExpired)

	var cmds []string
	for _, line := range srv.Lines() {
		cmds = append(cmds, strings.Split(line, ";")[0])
	}
	// the job is acked and the temporary removed even though the wait failed
	assert.Equal(t, []string{"open", "upload", "run", "wfj", "ackj", "remove"}, cmds)
}

func TestSetApprovalStateBatchesPaths(t *testing.T) {
	srv, cfg := startFakeServer(t, okHandler)

	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	require.NoError(t, client.SetApprovalState(context.Background(), []string{"a.wfd", "b.wfd"}, "Approved"))
	assert.Contains(t, srv.Lines(), "runw;setapprovalstate;Approved;a.wfd;b.wfd")

	// no paths, no round trip
	require.NoError(t, client.SetApprovalState(context.Background(), nil, "Approved"))
	assert.NotContains(t, srv.Lines(), "runw;setapprovalstate;Approved")
}
