// Copyright (c) 2025, The DockerLab-SystemInfo Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snapshotter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider/providertest"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/server"
)

func TestHandleSnapshot(t *testing.T) {
	fake := providertest.New()
	fake.Devices = []provider.GPU{{
		ID: 0, UUID: "GPU-1", Name: "NVIDIA RTX A4000",
		Load: 0.5, MemoryFree: 15000, MemoryUsed: 1376, MemoryTotal: 16376, Temperature: 41,
	}}
	s := newTestSnapshotter(fake)

	rec := httptest.NewRecorder()
	s.HandleSnapshot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "\n  \"kind\"", "body must be indented")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, k := range []string{"identity", "cpu", "memory", "disks", "network", "gpus"} {
		assert.Contains(t, body, k)
	}

	var gpus []map[string]any
	require.NoError(t, json.Unmarshal(body["gpus"], &gpus))
	require.Len(t, gpus, 1)
	assert.Equal(t, "50%", gpus[0]["load"])
	assert.Equal(t, "16376 MB", gpus[0]["memoryTotal"])
}

func TestHandleSnapshot_MethodNotAllowed(t *testing.T) {
	fake := providertest.New()
	s := newTestSnapshotter(fake)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		s.HandleSnapshot(rec, httptest.NewRequest(method, "/", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))

		var resp server.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "METHOD_NOT_ALLOWED", resp.Code)
	}
	assert.Empty(t, fake.Calls(), "rejected requests must not collect")
}

func TestHandleSnapshot_FatalError(t *testing.T) {
	fake := providertest.New()
	fake.Errors = map[string]error{"Memory": errors.New("meminfo unreadable")}
	s := newTestSnapshotter(fake)

	rec := httptest.NewRecorder()
	s.HandleSnapshot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INTERNAL", resp.Code)
	assert.Equal(t, "memory", resp.Details["collector"])
	assert.NotEmpty(t, resp.RequestID)
}

func TestHandleSnapshot_ThroughServer(t *testing.T) {
	s := newTestSnapshotter(providertest.New())

	cfg := server.NewConfig()
	cfg.NotifySystemd = false
	srv := server.New(server.WithConfig(cfg), server.WithHandler(map[string]http.HandlerFunc{
		"/": s.HandleSnapshot,
	}))

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var snap Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, FullAPIVersion, snap.APIVersion)
	assert.Equal(t, "lab-01", snap.Identity.Host)

	notFound, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	notFound.Body.Close()
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
}
