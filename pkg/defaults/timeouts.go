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

package defaults

import "time"

// Collector timeouts and sampling intervals.
const (
	// CollectorTimeout bounds a complete snapshot collection.
	// Collectors respect parent context deadlines when shorter.
	CollectorTimeout = 10 * time.Second

	// CPUSampleInterval is the blocking window used for per-core utilization.
	CPUSampleInterval = 1 * time.Second

	// CPUBaselineWindow is the minimum age of the aggregate CPU baseline
	// before a non-blocking utilization read is trusted.
	CPUBaselineWindow = 250 * time.Millisecond

	// GPUQueryTimeout bounds a single nvidia-smi invocation.
	GPUQueryTimeout = 5 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// SnapshotHandlerTimeout is the timeout for a GET / request.
	// Must exceed CPUSampleInterval plus the GPU query.
	SnapshotHandlerTimeout = 20 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	// A remote snapshot may block on per-core CPU sampling before headers are sent.
	HTTPResponseHeaderTimeout = 25 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISnapshotTimeout is the default timeout for snapshot operations.
	CLISnapshotTimeout = 1 * time.Minute
)
