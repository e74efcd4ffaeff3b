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

package provider

import (
	"context"
	"time"
)

// AddressFamily classifies an interface address.
type AddressFamily int

const (
	// FamilyOther covers every family the collectors do not report.
	FamilyOther AddressFamily = iota
	// FamilyIPv4 is an AF_INET address.
	FamilyIPv4
	// FamilyIPv6 is an AF_INET6 address.
	FamilyIPv6
	// FamilyLinkLayer is a hardware (MAC) address.
	FamilyLinkLayer
)

// String returns the lowercase family name.
func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	case FamilyLinkLayer:
		return "link"
	default:
		return "other"
	}
}

// HostIdentity is the uname-like identity of the machine.
type HostIdentity struct {
	OS       string
	Host     string
	Release  string
	Version  string
	Machine  string
	BootTime uint64 // seconds since the Unix epoch
}

// CPUCounts holds core counts.
type CPUCounts struct {
	Physical int
	Logical  int
}

// CPUFrequency holds frequencies in MHz. Zero means unknown.
type CPUFrequency struct {
	Min     float64
	Max     float64
	Current float64
}

// VirtualMemory holds physical memory totals in bytes.
type VirtualMemory struct {
	Total     uint64
	Available uint64
	Used      uint64
	Percent   float64
}

// SwapMemory holds swap totals in bytes.
type SwapMemory struct {
	Total   uint64
	Free    uint64
	Used    uint64
	Percent float64
}

// Partition is a mounted filesystem.
type Partition struct {
	Device     string
	Mountpoint string
	Fstype     string
}

// DiskUsage holds filesystem capacity in bytes.
type DiskUsage struct {
	Total   uint64
	Used    uint64
	Free    uint64
	Percent float64
}

// DiskIO holds cumulative I/O counters summed over all block devices.
type DiskIO struct {
	ReadBytes  uint64
	WriteBytes uint64
}

// Address is one address bound to an interface.
type Address struct {
	Family    AddressFamily
	Address   string
	Netmask   string
	Broadcast string
}

// Interface is a network interface with its addresses in provider order.
type Interface struct {
	Name      string
	Addresses []Address
}

// NetIO holds cumulative network counters summed over all interfaces.
type NetIO struct {
	BytesSent uint64
	BytesRecv uint64
}

// GPU is one accelerator as reported by the driver tooling.
// Load is a fraction in [0, 1]; memory values are in MB.
type GPU struct {
	ID          int
	UUID        string
	Name        string
	Load        float64
	MemoryFree  float64
	MemoryUsed  float64
	MemoryTotal float64
	Temperature float64
}

// HostProvider supplies host identity.
type HostProvider interface {
	Identity(ctx context.Context) (*HostIdentity, error)
}

// CPUProvider supplies CPU counts, frequency, and utilization.
type CPUProvider interface {
	CPUCounts(ctx context.Context) (*CPUCounts, error)
	CPUFrequency(ctx context.Context) (*CPUFrequency, error)

	// CPUUtilization returns utilization percentages (0-100). With perCPU false
	// the result has a single element. A zero interval compares against the
	// previous call and returns immediately; a positive interval blocks for it.
	CPUUtilization(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error)
}

// MemoryProvider supplies physical and swap memory.
type MemoryProvider interface {
	Memory(ctx context.Context) (*VirtualMemory, error)
	Swap(ctx context.Context) (*SwapMemory, error)
}

// DiskProvider supplies partitions, usage, and I/O counters.
type DiskProvider interface {
	Partitions(ctx context.Context) ([]Partition, error)

	// DiskUsage fails with an ErrCodePermissionDenied error when the
	// mountpoint is not accessible.
	DiskUsage(ctx context.Context, mountpoint string) (*DiskUsage, error)
	DiskIOCounters(ctx context.Context) (*DiskIO, error)
}

// NetworkProvider supplies interface addresses and counters.
type NetworkProvider interface {
	InterfaceAddresses(ctx context.Context) ([]Interface, error)
	NetIOCounters(ctx context.Context) (*NetIO, error)
}

// GPUProvider supplies attached GPUs. It fails with an ErrCodeUnavailable
// error when no GPU tooling is present.
type GPUProvider interface {
	GPUs(ctx context.Context) ([]GPU, error)
}

// Provider is the complete metrics source consumed by the collectors.
type Provider interface {
	HostProvider
	CPUProvider
	MemoryProvider
	DiskProvider
	NetworkProvider
	GPUProvider
}
