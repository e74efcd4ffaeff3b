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

// Package providertest provides an in-memory provider.Provider for tests.
package providertest

import (
	"context"
	"sync"
	"time"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
)

// Fake returns canned values. A non-nil entry in Errors, keyed by method
// name, is returned instead of the value.
type Fake struct {
	Host        provider.HostIdentity
	Counts      provider.CPUCounts
	Frequency   provider.CPUFrequency
	Utilization []float64
	PerCPU      []float64
	VMem        provider.VirtualMemory
	SwapMem     provider.SwapMemory
	Parts       []provider.Partition
	Usage       map[string]provider.DiskUsage
	IO          provider.DiskIO
	Interfaces  []provider.Interface
	Net         provider.NetIO
	Devices     []provider.GPU

	Errors map[string]error

	mu    sync.Mutex
	calls []string
}

var _ provider.Provider = (*Fake)(nil)

// New returns a Fake describing a small single-disk host without GPUs.
func New() *Fake {
	return &Fake{
		Host: provider.HostIdentity{
			OS:       "Linux",
			Host:     "lab-01",
			Release:  "6.8.0-45-generic",
			Version:  "#45-Ubuntu SMP PREEMPT_DYNAMIC",
			Machine:  "x86_64",
			BootTime: 1704157384,
		},
		Counts:      provider.CPUCounts{Physical: 4, Logical: 8},
		Frequency:   provider.CPUFrequency{Min: 800, Max: 4200, Current: 2400},
		Utilization: []float64{12.5},
		PerCPU:      []float64{10, 20, 5, 15, 0, 30, 25, 0},
		VMem:        provider.VirtualMemory{Total: 16 << 30, Available: 8 << 30, Used: 8 << 30, Percent: 50},
		SwapMem:     provider.SwapMemory{Total: 2 << 30, Free: 2 << 30},
		Parts: []provider.Partition{
			{Device: "/dev/nvme0n1p2", Mountpoint: "/", Fstype: "ext4"},
		},
		Usage: map[string]provider.DiskUsage{
			"/": {Total: 512 << 30, Used: 128 << 30, Free: 384 << 30, Percent: 25},
		},
		IO: provider.DiskIO{ReadBytes: 1 << 30, WriteBytes: 2 << 30},
		Interfaces: []provider.Interface{
			{Name: "eth0", Addresses: []provider.Address{
				{Family: provider.FamilyLinkLayer, Address: "02:42:ac:11:00:02", Broadcast: "ff:ff:ff:ff:ff:ff"},
				{Family: provider.FamilyIPv4, Address: "172.17.0.2", Netmask: "255.255.0.0", Broadcast: "172.17.255.255"},
			}},
		},
		Net: provider.NetIO{BytesSent: 1024, BytesRecv: 2048},
	}
}

// Calls returns the provider methods invoked so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *Fake) record(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method)
	return f.Errors[method]
}

func (f *Fake) Identity(context.Context) (*provider.HostIdentity, error) {
	if err := f.record("Identity"); err != nil {
		return nil, err
	}
	h := f.Host
	return &h, nil
}

func (f *Fake) CPUCounts(context.Context) (*provider.CPUCounts, error) {
	if err := f.record("CPUCounts"); err != nil {
		return nil, err
	}
	c := f.Counts
	return &c, nil
}

func (f *Fake) CPUFrequency(context.Context) (*provider.CPUFrequency, error) {
	if err := f.record("CPUFrequency"); err != nil {
		return nil, err
	}
	fr := f.Frequency
	return &fr, nil
}

// CPUUtilization honors ctx while "sampling" so cancellation can be tested.
func (f *Fake) CPUUtilization(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error) {
	if err := f.record("CPUUtilization"); err != nil {
		return nil, err
	}
	if interval > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
	if perCPU {
		return append([]float64(nil), f.PerCPU...), nil
	}
	return append([]float64(nil), f.Utilization...), nil
}

func (f *Fake) Memory(context.Context) (*provider.VirtualMemory, error) {
	if err := f.record("Memory"); err != nil {
		return nil, err
	}
	m := f.VMem
	return &m, nil
}

func (f *Fake) Swap(context.Context) (*provider.SwapMemory, error) {
	if err := f.record("Swap"); err != nil {
		return nil, err
	}
	s := f.SwapMem
	return &s, nil
}

func (f *Fake) Partitions(context.Context) ([]provider.Partition, error) {
	if err := f.record("Partitions"); err != nil {
		return nil, err
	}
	return append([]provider.Partition(nil), f.Parts...), nil
}

// DiskUsage reports PERMISSION_DENIED for mountpoints missing from Usage.
func (f *Fake) DiskUsage(_ context.Context, mountpoint string) (*provider.DiskUsage, error) {
	if err := f.record("DiskUsage"); err != nil {
		return nil, err
	}
	u, ok := f.Usage[mountpoint]
	if !ok {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodePermissionDenied, "mountpoint not accessible",
			map[string]any{"mountpoint": mountpoint})
	}
	return &u, nil
}

func (f *Fake) DiskIOCounters(context.Context) (*provider.DiskIO, error) {
	if err := f.record("DiskIOCounters"); err != nil {
		return nil, err
	}
	io := f.IO
	return &io, nil
}

func (f *Fake) InterfaceAddresses(context.Context) ([]provider.Interface, error) {
	if err := f.record("InterfaceAddresses"); err != nil {
		return nil, err
	}
	return append([]provider.Interface(nil), f.Interfaces...), nil
}

func (f *Fake) NetIOCounters(context.Context) (*provider.NetIO, error) {
	if err := f.record("NetIOCounters"); err != nil {
		return nil, err
	}
	n := f.Net
	return &n, nil
}

// GPUs reports SERVICE_UNAVAILABLE when Devices is empty, like a host
// without nvidia-smi.
func (f *Fake) GPUs(context.Context) ([]provider.GPU, error) {
	if err := f.record("GPUs"); err != nil {
		return nil, err
	}
	if len(f.Devices) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeUnavailable, "nvidia-smi not available")
	}
	return append([]provider.GPU(nil), f.Devices...), nil
}
