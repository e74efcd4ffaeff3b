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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/defaults"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/serializer"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/snapshotter"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a host system snapshot",
		Description: `Capture host identity, CPU, memory, disks, network, and GPUs.

The snapshot is collected on this host, or fetched from a running sysinfod
when --url is set. Output is JSON, YAML, or a flattened table.

# Examples

Local snapshot as YAML:
  sysinfo snapshot --format yaml

Skip the per-core CPU sample and loop devices:
  sysinfo snapshot --per-core=false --system-policy

Remote snapshot saved to a file:
  sysinfo snapshot --url http://10.0.0.12:8080/ --output lab-01.json`,
		Flags: append([]cli.Flag{
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:    "url",
				Usage:   "fetch the snapshot from a sysinfod endpoint instead of collecting locally",
				Sources: cli.EnvVars("SYSINFO_URL"),
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "skip TLS certificate verification for --url",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "overall timeout for the snapshot",
				Value: defaults.CLISnapshotTimeout,
			},
		}, collectorFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if cerr := out.Close(); cerr != nil {
					slog.Warn("failed to close output", "error", cerr)
				}
			}()

			if url := cmd.String("url"); url != "" {
				return fetchSnapshot(ctx, url, cmd.Bool("insecure"), out)
			}

			ns := snapshotter.NodeSnapshotter{
				Version:    version,
				Factory:    collector.NewDefaultFactory(factoryOptions(cmd)...),
				Serializer: out,
				Timeout:    cmd.Duration("timeout"),
			}
			return ns.Measure(ctx)
		},
	}
}

// fetchSnapshot reads a snapshot from a remote daemon and re-serializes it.
func fetchSnapshot(ctx context.Context, url string, insecure bool, out serializer.Serializer) error {
	slog.Debug("fetching remote snapshot", "url", url)

	reader := serializer.NewHTTPReader(
		serializer.WithUserAgent(fmt.Sprintf("%s/%s", name, version)),
		serializer.WithInsecureSkipVerify(insecure),
	)

	var snap snapshotter.Snapshot
	if err := reader.ReadJSON(ctx, url, &snap); err != nil {
		return fmt.Errorf("failed to fetch snapshot from %s: %w", url, err)
	}

	return out.Serialize(ctx, &snap)
}
