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

// Package defaults provides centralized configuration constants for sysinfo.
//
// This package defines timeout values and sampling intervals used across the
// codebase so that the collectors, the HTTP server and the CLI agree on them.
//
// # Timeout Categories
//
//   - Collector timeouts: snapshot collection, CPU sampling, GPU queries
//   - Handler timeouts: for HTTP request processing
//   - Server timeouts: for HTTP server configuration
//   - HTTP client timeouts: for remote snapshot retrieval
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// A snapshot with per-core CPU sampling blocks for CPUSampleInterval, so every
// timeout on the request path (handler, server write, client response header)
// is kept well above it.
package defaults
