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

// Package api wires the sysinfod daemon: structured logging, the collector
// factory, the snapshotter, and the HTTP server.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoint (rate limited):
//   - GET / - host snapshot as indented JSON
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT, ADDRESS, SHUTDOWN_TIMEOUT_SECONDS: listener and shutdown
//   - LOG_LEVEL: debug, info, warn, error
//   - CPU_PER_CORE, CPU_SAMPLE_INTERVAL: per-core CPU sampling
//   - DISK_EXCLUDE_DEVICES, DISK_EXCLUDE_MOUNTS, DISK_SYSTEM_POLICY: partition filtering
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/thiago-freire/DockerLab-SystemInfo/pkg/api.version=1.0.0'"
package api
