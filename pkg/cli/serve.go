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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve snapshots over HTTP",
		Description: `Run the sysinfod HTTP server in-process. GET / returns a fresh snapshot.

Listener settings come from PORT, ADDRESS, and SHUTDOWN_TIMEOUT_SECONDS.`,
		Flags: collectorFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.ServeContext(ctx, factoryOptions(cmd)...)
		},
	}
}
