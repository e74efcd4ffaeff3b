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

// Package disk reports mounted partitions with their capacity.
//
// Partitions are returned in the order the provider enumerates them. A
// partition whose usage cannot be read, typically because the process has no
// access to the mountpoint, is still returned with only its device,
// mountpoint, and filesystem set. Read/write totals come from the host-wide
// I/O counters and are the same on every record.
//
// A Policy excludes partitions by device or mountpoint prefix:
//
//	c := &disk.Collector{Provider: p, Policy: disk.SystemPolicy()}
//	parts, _ := c.Collect(ctx)
package disk
