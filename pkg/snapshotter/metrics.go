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

package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Snapshot collection metrics
	snapshotCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sysinfo_snapshot_collection_duration_seconds",
			Help:    "Time taken to collect a complete host snapshot",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 1.5, 2, 5, 10},
		},
	)

	snapshotCollectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysinfo_snapshot_collection_total",
			Help: "Total number of snapshot collection attempts",
		},
		[]string{"status"}, // success, error
	)

	snapshotCollectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sysinfo_snapshot_collector_duration_seconds",
			Help:    "Time taken by each collector",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"collector"},
	)

	// Degraded data metrics
	snapshotPartialDisks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sysinfo_snapshot_partial_disks_total",
			Help: "Total number of partitions reported without usage figures",
		},
	)

	snapshotGPUUnavailable = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sysinfo_snapshot_gpu_unavailable_total",
			Help: "Total number of snapshots that reported no GPU",
		},
	)
)
