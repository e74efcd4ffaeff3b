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

// Package snapshotter assembles host snapshots from the collectors.
//
// A Snapshot is a header (kind Snapshot, apiVersion
// sysinfo.dockerlab.io/v1alpha1, metadata with timestamp, version, and
// source-node) followed by identity, cpu, memory, disks, network, and gpus,
// in that order:
//
//	{
//	  "kind": "Snapshot",
//	  "apiVersion": "sysinfo.dockerlab.io/v1alpha1",
//	  "metadata": {"source-node": "lab-01", "timestamp": "...", "version": "v0.3.0"},
//	  "identity": {...},
//	  "cpu": {...},
//	  "memory": {...},
//	  "disks": [...],
//	  "network": {...},
//	  "gpus": []
//	}
//
// Collection is sequential and explicit: nothing is gathered until Snapshot,
// Measure, or HandleSnapshot is called, and every call collects afresh.
// Identity, CPU, memory, and network failures abort the snapshot with an
// INTERNAL error. Disk and GPU problems degrade to partial records or an
// empty list. The context is checked before each collector.
//
// # Usage
//
// Write a snapshot to stdout:
//
//	s := &snapshotter.NodeSnapshotter{Version: version}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
//
// Serve it over HTTP:
//
//	srv := server.New(server.WithHandler(map[string]http.HandlerFunc{
//	    "/": s.HandleSnapshot,
//	}))
//
// # Metrics
//
//	sysinfo_snapshot_collection_duration_seconds
//	sysinfo_snapshot_collection_total{status}
//	sysinfo_snapshot_collector_duration_seconds{collector}
//	sysinfo_snapshot_partial_disks_total
//	sysinfo_snapshot_gpu_unavailable_total
package snapshotter
