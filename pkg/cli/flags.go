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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/disk"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/defaults"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// collectorFlags mirror the daemon's collector environment variables.
func collectorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "per-core",
			Usage:   "sample per-core CPU utilization (blocks for --cpu-interval)",
			Value:   true,
			Sources: cli.EnvVars(collector.EnvCPUPerCore),
		},
		&cli.DurationFlag{
			Name:    "cpu-interval",
			Usage:   "per-core CPU sampling window",
			Value:   defaults.CPUSampleInterval,
			Sources: cli.EnvVars(collector.EnvCPUSampleInterval),
		},
		&cli.StringSliceFlag{
			Name:    "exclude-device",
			Usage:   "skip partitions whose device starts with this prefix (can be repeated)",
			Sources: cli.EnvVars(collector.EnvDiskExcludeDevices),
		},
		&cli.StringSliceFlag{
			Name:    "exclude-mount",
			Usage:   "skip partitions whose mountpoint starts with this prefix (can be repeated)",
			Sources: cli.EnvVars(collector.EnvDiskExcludeMounts),
		},
		&cli.BoolFlag{
			Name:    "system-policy",
			Usage:   "skip loop devices and /boot mounts",
			Sources: cli.EnvVars(collector.EnvDiskSystemPolicy),
		},
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q, supported: %s",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// factoryOptions turns the collector flags into factory options.
func factoryOptions(cmd *cli.Command) []collector.Option {
	policy := disk.Policy{
		ExcludeDevicePrefixes: cleanList(cmd.StringSlice("exclude-device")),
		ExcludeMountPrefixes:  cleanList(cmd.StringSlice("exclude-mount")),
	}
	if cmd.Bool("system-policy") {
		policy = policy.Merge(disk.SystemPolicy())
	}

	return []collector.Option{
		collector.WithPerCore(cmd.Bool("per-core")),
		collector.WithCPUSampleInterval(cmd.Duration("cpu-interval")),
		collector.WithDiskPolicy(policy),
	}
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, collector.SplitList(v)...)
	}
	return out
}
