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

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/cpu"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/disk"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/gpu"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/identity"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/memory"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/collector/network"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/header"
)

const (
	// APIGroup is the document group of a snapshot.
	APIGroup = "sysinfo.dockerlab.io"

	// APIVersion is the schema version of a snapshot.
	APIVersion = "v1alpha1"

	// FullAPIVersion is the apiVersion written into every snapshot.
	FullAPIVersion = APIGroup + "/" + APIVersion

	// MetadataSourceNode is the metadata key holding the host name.
	MetadataSourceNode = "source-node"
)

// Snapshotter defines the interface for collecting host snapshots.
type Snapshotter interface {
	// Snapshot collects a fresh snapshot.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Measure collects a snapshot and serializes it.
	Measure(ctx context.Context) error
}

// NewSnapshot creates a new Snapshot with empty disk and GPU lists.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Disks: make([]disk.Partition, 0),
		GPUs:  make([]gpu.Info, 0),
	}
}

// Snapshot is a point-in-time picture of the host. Field order is the
// serialized key order.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Identity *identity.Identity `json:"identity" yaml:"identity"`
	CPU      *cpu.Info          `json:"cpu" yaml:"cpu"`
	Memory   *memory.Info       `json:"memory" yaml:"memory"`
	Disks    []disk.Partition   `json:"disks" yaml:"disks"`
	Network  *network.Info      `json:"network" yaml:"network"`
	GPUs     []gpu.Info         `json:"gpus" yaml:"gpus"`
}
