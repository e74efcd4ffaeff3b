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

// Package collector wires the per-category collectors to a metrics provider.
//
// # Collectors
//
// Each sub-package gathers one category of host state and normalizes it into
// a serializable record:
//
//   - identity: OS, host name, kernel, architecture, boot time
//   - cpu: core counts, frequency, aggregate and per-core utilization
//   - memory: physical and swap memory
//   - disk: partitions with usage and I/O totals
//   - network: IPv4 and MAC addresses, traffic totals
//   - gpu: attached GPUs
//
// All of them implement the generic interface:
//
//	type Collector[T any] interface {
//	    Collect(ctx context.Context) (T, error)
//	}
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so the snapshotter can
// be tested with fakes. DefaultFactory builds collectors over one Provider:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithPerCore(false),
//	    collector.WithDiskPolicy(disk.SystemPolicy()),
//	)
//	cpuInfo, err := factory.CreateCPUCollector().Collect(ctx)
//
// OptionsFromEnv maps CPU_PER_CORE, CPU_SAMPLE_INTERVAL, DISK_EXCLUDE_DEVICES,
// DISK_EXCLUDE_MOUNTS, and DISK_SYSTEM_POLICY onto the same options.
//
// # Failure Semantics
//
// Identity, CPU, memory, and network collectors return provider failures.
// The disk collector degrades to partial records and the GPU collector to an
// empty list; neither fails a snapshot.
package collector
