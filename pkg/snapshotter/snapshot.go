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
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/defaults"
	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/header"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/serializer"
)

// NodeSnapshotter collects a snapshot of the current host. Collectors run
// sequentially in the order identity, cpu, memory, disk, network, gpu.
type NodeSnapshotter struct {
	// Version is the snapshotter version written into metadata.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is used by Measure. If nil, JSON is written to stdout.
	Serializer serializer.Serializer

	// Timeout bounds one collection. Zero means defaults.CollectorTimeout.
	// A shorter parent deadline still wins.
	Timeout time.Duration
}

var _ Snapshotter = (*NodeSnapshotter)(nil)

// Snapshot collects a fresh snapshot. The first failing collector aborts the
// collection; disk and GPU degrade instead of failing.
func (n *NodeSnapshotter) Snapshot(ctx context.Context) (*Snapshot, error) {
	factory := n.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory()
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaults.CollectorTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Debug("starting host snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	snap, err := n.collect(ctx, factory)
	if err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		slog.Error("snapshot collection failed", slog.String("error", err.Error()))
		return nil, err
	}

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	slog.Debug("snapshot collection complete",
		slog.Int("disks", len(snap.Disks)),
		slog.Int("gpus", len(snap.GPUs)),
		slog.Duration("duration", time.Since(start)),
	)

	return snap, nil
}

func (n *NodeSnapshotter) collect(ctx context.Context, f collector.Factory) (*Snapshot, error) {
	snap := NewSnapshot()
	snap.Init(header.KindSnapshot, FullAPIVersion, n.Version)

	var err error
	if snap.Identity, err = run(ctx, "identity", f.CreateIdentityCollector()); err != nil {
		return nil, err
	}
	if snap.CPU, err = run(ctx, "cpu", f.CreateCPUCollector()); err != nil {
		return nil, err
	}
	if snap.Memory, err = run(ctx, "memory", f.CreateMemoryCollector()); err != nil {
		return nil, err
	}
	disks, err := run(ctx, "disk", f.CreateDiskCollector())
	if err != nil {
		return nil, err
	}
	if snap.Network, err = run(ctx, "network", f.CreateNetworkCollector()); err != nil {
		return nil, err
	}
	gpus, err := run(ctx, "gpu", f.CreateGPUCollector())
	if err != nil {
		return nil, err
	}

	if disks != nil {
		snap.Disks = disks
	}
	for _, p := range snap.Disks {
		if p.Partial() {
			snapshotPartialDisks.Inc()
		}
	}

	if gpus != nil {
		snap.GPUs = gpus
	}
	if len(snap.GPUs) == 0 {
		snapshotGPUUnavailable.Inc()
	}

	snap.Metadata[MetadataSourceNode] = sourceNode(snap)

	return snap, nil
}

// run executes one collector, checking for cancellation first so a canceled
// request stops at the next collector boundary.
func run[T any](ctx context.Context, name string, c collector.Collector[T]) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, contextError(name, err)
	}

	start := time.Now()
	defer func() {
		snapshotCollectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	slog.Debug("running collector", slog.String("collector", name))
	v, err := c.Collect(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, contextError(name, ctxErr)
		}
		return zero, cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			"failed to collect "+name, err, map[string]any{"collector": name})
	}
	return v, nil
}

func contextError(name string, err error) error {
	code := cnserrors.ErrCodeInternal
	if errors.Is(err, context.DeadlineExceeded) {
		code = cnserrors.ErrCodeTimeout
	}
	return cnserrors.WrapWithContext(code, "snapshot interrupted before "+name, err,
		map[string]any{"collector": name})
}

// sourceNode names the host the snapshot was taken on.
func sourceNode(snap *Snapshot) string {
	if snap.Identity != nil && snap.Identity.Host != "" {
		return snap.Identity.Host
	}
	name, err := os.Hostname()
	if err != nil {
		slog.Debug("failed to resolve hostname", slog.String("error", err.Error()))
		return ""
	}
	return name
}

// Measure collects a snapshot and writes it with the configured Serializer.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap, err := n.Snapshot(ctx)
	if err != nil {
		return err
	}

	ser := n.Serializer
	if ser == nil {
		ser = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := ser.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to serialize snapshot", err)
	}

	return nil
}
