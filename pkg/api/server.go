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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/logging"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/server"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/snapshotter"
)

const (
	name           = "sysinfod"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/thiago-freire/DockerLab-SystemInfo/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return ServeContext(context.Background(), collector.OptionsFromEnv()...)
}

// ServeContext runs the API server until ctx is canceled or a termination
// signal arrives. The caller owns logger setup.
func ServeContext(ctx context.Context, opts ...collector.Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := NewServer(opts...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer builds the daemon's server with GET / bound to a snapshotter
// using a collector factory configured by opts.
func NewServer(opts ...collector.Option) *server.Server {
	snap := &snapshotter.NodeSnapshotter{
		Version: version,
		Factory: collector.NewDefaultFactory(opts...),
	}

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(snap)),
	)
}

// Routes returns the application routes served behind the middleware chain.
func Routes(snap *snapshotter.NodeSnapshotter) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/": snap.HandleSnapshot,
	}
}

// Version returns the build version.
func Version() string {
	return version
}
