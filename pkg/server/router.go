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

package server

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/serializer"
)

// System routes are served outside the middleware chain.
const (
	routeHealth  = "/health"
	routeReady   = "/ready"
	routeMetrics = "/metrics"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	handlers := s.config.Handlers
	if _, ok := handlers["/"]; !ok {
		handlers = mergeHandlers(handlers, map[string]http.HandlerFunc{"/": s.handleDefault})
	}

	for path, handler := range handlers {
		if path == "/" {
			handler = exactRoot(handler)
		}
		mux.HandleFunc(path, s.withMiddleware(path, handler))
		slog.Debug("registered route", "path", path)
	}

	// System endpoints (no rate limiting)
	mux.HandleFunc(routeHealth, s.handleHealth)
	mux.HandleFunc(routeReady, s.handleReady)
	mux.Handle(routeMetrics, promhttp.Handler())

	return mux
}

// exactRoot restricts a "/" handler to the root path; the mux otherwise
// routes every unmatched path to it.
func exactRoot(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound,
				"Resource not found", false, map[string]any{"path": r.URL.Path})
			return
		}
		next(w, r)
	}
}

func mergeHandlers(a, b map[string]http.HandlerFunc) map[string]http.HandlerFunc {
	out := make(map[string]http.HandlerFunc, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// routes lists every registered path, sorted.
func (s *Server) routes() []string {
	paths := []string{"/", routeHealth, routeReady, routeMetrics}
	for path := range s.config.Handlers {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return slices.Compact(paths)
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.IsReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
