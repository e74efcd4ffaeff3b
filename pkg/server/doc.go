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

// Package server provides the HTTP server shared by the sysinfo daemon.
//
// A Server routes the handlers supplied through WithHandler behind a fixed
// middleware chain and adds system endpoints that bypass it.
//
// # Middleware
//
// Routed handlers run inside, from outermost to innermost:
//
//   - Prometheus request metrics, labeled by registered route
//   - API version negotiation (Accept: application/vnd.dockerlab.sysinfo.v1+json)
//   - Request ID tracking via X-Request-Id (UUID, generated when absent)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// A handler registered at "/" answers only the exact root path. Any other
// unmatched path receives a 404 ErrorResponse with code NOT_FOUND.
//
// # System Endpoints
//
//	GET /health   liveness, always 200
//	GET /ready    200 while serving, 503 before Start and during shutdown
//	GET /metrics  Prometheus exposition
//
// # Errors
//
// Errors are written as JSON:
//
//	{
//	  "code": "METHOD_NOT_ALLOWED",
//	  "message": "Method not allowed",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T01:03:04Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the status from a pkg/errors code.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("sysinfod"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{"/": snap.HandleSnapshot}),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on SIGINT or SIGTERM and drains in-flight requests for at most
// Config.ShutdownTimeout. Under systemd with Type=notify, READY=1 is sent once
// the listener is bound and STOPPING=1 when shutdown begins.
//
// Configuration is read from PORT, ADDRESS, and SHUTDOWN_TIMEOUT_SECONDS.
package server
