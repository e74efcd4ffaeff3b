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

// Package cli implements the sysinfo command line.
//
// # Commands
//
// snapshot - capture a host snapshot:
//
//	sysinfo snapshot [--format json|yaml|table] [--output FILE] [--url URL]
//
// Collects locally by default. With --url the snapshot is fetched from a
// running sysinfod and re-encoded in the requested format.
//
// serve - run the snapshot daemon in-process:
//
//	sysinfo serve [--per-core=false] [--system-policy]
//
// # Flags
//
//	--output, -o       output file path (default: stdout)
//	--format, -t       json, yaml, table (default: json)
//	--per-core         per-core CPU sampling (default: true, CPU_PER_CORE)
//	--cpu-interval     per-core sampling window (default: 1s, CPU_SAMPLE_INTERVAL)
//	--exclude-device   device prefix to skip, repeatable (DISK_EXCLUDE_DEVICES)
//	--exclude-mount    mountpoint prefix to skip, repeatable (DISK_EXCLUDE_MOUNTS)
//	--system-policy    skip /dev/loop* and /boot* (DISK_SYSTEM_POLICY)
//	--log-level        debug, info, warn, error (LOG_LEVEL)
//	--version, -v      print version information
//
// # Exit Codes
//
//	0  Success
//	1  Any failure, including invalid flags and collection errors
package cli
