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

package serializer

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "{\n  \"status\": \"ok\"\n}\n", w.Body.String())
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestNewHTTPReader_Defaults(t *testing.T) {
	r := NewHTTPReader()
	require.NotNil(t, r.Client)
	assert.Equal(t, HTTPReaderUserAgent, r.UserAgent)

	tr, ok := r.Client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.False(t, tr.TLSClientConfig.InsecureSkipVerify)
}

func TestNewHTTPReader_Options(t *testing.T) {
	r := NewHTTPReader(
		WithUserAgent("custom"),
		WithTotalTimeout(3*time.Second),
		WithInsecureSkipVerify(true),
	)
	assert.Equal(t, "custom", r.UserAgent)
	assert.Equal(t, 3*time.Second, r.Client.Timeout)
	assert.True(t, r.Client.Transport.(*http.Transport).TLSClientConfig.InsecureSkipVerify)

	custom := &http.Client{}
	assert.Same(t, custom, NewHTTPReader(WithClient(custom)).Client)
}

func TestHTTPReader_Read(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"name":"node-1"}`))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	r := NewHTTPReader()

	data, err := r.Read(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"node-1"}`, string(data))
	assert.Equal(t, HTTPReaderUserAgent, gotUA)

	_, err = r.Read(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "404"))

	_, err = r.Read(context.Background(), "")
	assert.Error(t, err)

	_, err = r.Read(context.Background(), "://bad")
	assert.Error(t, err)
}

func TestHTTPReader_ReadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			_, _ = w.Write([]byte("not json"))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"count": 3})
	}))
	defer srv.Close()

	var v struct {
		Count int `json:"count"`
	}
	require.NoError(t, NewHTTPReader().ReadJSON(context.Background(), srv.URL, &v))
	assert.Equal(t, 3, v.Count)

	assert.Error(t, NewHTTPReader().ReadJSON(context.Background(), srv.URL+"/bad", &v))
}

func TestHTTPReader_ReadCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPReader().Read(ctx, srv.URL)
	assert.Error(t, err)
}
