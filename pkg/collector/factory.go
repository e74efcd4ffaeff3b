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
	"context"
	"time"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/cpu"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/disk"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/gpu"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/identity"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/memory"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/network"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/defaults"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
)

// Collector gathers one category of host metrics.
type Collector[T any] interface {
	Collect(ctx context.Context) (T, error)
}

// Factory creates the collectors that make up a snapshot.
type Factory interface {
	CreateIdentityCollector() Collector[*identity.Identity]
	CreateCPUCollector() Collector[*cpu.Info]
	CreateMemoryCollector() Collector[*memory.Info]
	CreateDiskCollector() Collector[[]disk.Partition]
	CreateNetworkCollector() Collector[*network.Info]
	CreateGPUCollector() Collector[[]gpu.Info]
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithProvider sets the metrics source shared by all collectors.
func WithProvider(p provider.Provider) Option {
	return func(f *DefaultFactory) {
		f.Provider = p
	}
}

// WithPerCore enables the blocking per-core CPU sample.
func WithPerCore(enabled bool) Option {
	return func(f *DefaultFactory) {
		f.PerCore = enabled
	}
}

// WithCPUSampleInterval sets the per-core sampling window.
// Non-positive values are ignored.
func WithCPUSampleInterval(d time.Duration) Option {
	return func(f *DefaultFactory) {
		if d > 0 {
			f.CPUSampleInterval = d
		}
	}
}

// WithDiskPolicy sets which partitions the disk collector skips.
func WithDiskPolicy(p disk.Policy) Option {
	return func(f *DefaultFactory) {
		f.DiskPolicy = p
	}
}

// DefaultFactory creates collectors backed by a single Provider.
type DefaultFactory struct {
	Provider          provider.Provider
	PerCore           bool
	CPUSampleInterval time.Duration
	DiskPolicy        disk.Policy
}

var _ Factory = (*DefaultFactory)(nil)

// NewDefaultFactory creates a factory reading the local host with per-core
// sampling enabled.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		PerCore:           true,
		CPUSampleInterval: defaults.CPUSampleInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.Provider == nil {
		f.Provider = provider.NewHost()
	}
	return f
}

// CreateIdentityCollector creates a host identity collector.
func (f *DefaultFactory) CreateIdentityCollector() Collector[*identity.Identity] {
	return &identity.Collector{Provider: f.Provider}
}

// CreateCPUCollector creates a CPU collector.
func (f *DefaultFactory) CreateCPUCollector() Collector[*cpu.Info] {
	return &cpu.Collector{
		Provider:       f.Provider,
		PerCore:        f.PerCore,
		SampleInterval: f.CPUSampleInterval,
	}
}

// CreateMemoryCollector creates a memory collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector[*memory.Info] {
	return &memory.Collector{Provider: f.Provider}
}

// CreateDiskCollector creates a disk collector.
func (f *DefaultFactory) CreateDiskCollector() Collector[[]disk.Partition] {
	return &disk.Collector{Provider: f.Provider, Policy: f.DiskPolicy}
}

// CreateNetworkCollector creates a network collector.
func (f *DefaultFactory) CreateNetworkCollector() Collector[*network.Info] {
	return &network.Collector{Provider: f.Provider}
}

// CreateGPUCollector creates a GPU collector.
func (f *DefaultFactory) CreateGPUCollector() Collector[[]gpu.Info] {
	return &gpu.Collector{Provider: f.Provider}
}
