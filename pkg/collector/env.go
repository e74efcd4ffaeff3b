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

package collector

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/disk"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvCPUPerCore         = "CPU_PER_CORE"
	EnvCPUSampleInterval  = "CPU_SAMPLE_INTERVAL"
	EnvDiskExcludeDevices = "DISK_EXCLUDE_DEVICES"
	EnvDiskExcludeMounts  = "DISK_EXCLUDE_MOUNTS"
	EnvDiskSystemPolicy   = "DISK_SYSTEM_POLICY"
)

// OptionsFromEnv returns factory options for the collector settings present
// in the environment. Unparsable values are logged and ignored.
func OptionsFromEnv() []Option {
	var opts []Option

	if v, ok := envBool(EnvCPUPerCore); ok {
		opts = append(opts, WithPerCore(v))
	}

	if s := os.Getenv(EnvCPUSampleInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			slog.Warn("ignoring invalid duration", slog.String("env", EnvCPUSampleInterval), slog.String("value", s))
		} else {
			opts = append(opts, WithCPUSampleInterval(d))
		}
	}

	policy := disk.Policy{
		ExcludeDevicePrefixes: SplitList(os.Getenv(EnvDiskExcludeDevices)),
		ExcludeMountPrefixes:  SplitList(os.Getenv(EnvDiskExcludeMounts)),
	}
	if v, ok := envBool(EnvDiskSystemPolicy); ok && v {
		policy = policy.Merge(disk.SystemPolicy())
	}
	if len(policy.ExcludeDevicePrefixes) > 0 || len(policy.ExcludeMountPrefixes) > 0 {
		opts = append(opts, WithDiskPolicy(policy))
	}

	return opts
}

func envBool(key string) (bool, bool) {
	s := os.Getenv(key)
	if s == "" {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		slog.Warn("ignoring invalid boolean", slog.String("env", key), slog.String("value", s))
		return false, false
	}
	return v, true
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
