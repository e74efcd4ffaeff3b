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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/defaults"
	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider/sysfs"
)

var (
	filePathKernelVersion = "/proc/sys/kernel/version"
	dirPathCPUFreq        = "/sys/devices/system/cpu/cpu0/cpufreq"
	dirPathBlock          = "/sys/block"
)

// HostOption configures a Host provider.
type HostOption func(*Host)

// WithSysfsReader replaces the reader used for /proc and /sys values.
func WithSysfsReader(r *sysfs.Reader) HostOption {
	return func(h *Host) {
		h.sysfs = r
	}
}

// WithCommandRunner replaces the runner used to invoke nvidia-smi.
func WithCommandRunner(run CommandRunner) HostOption {
	return func(h *Host) {
		h.run = run
	}
}

// WithCPUBaselineWindow sets how old the aggregate CPU baseline must be
// before an instant utilization read is served. Zero disables the wait.
func WithCPUBaselineWindow(d time.Duration) HostOption {
	return func(h *Host) {
		h.baselineWindow = d
	}
}

// WithGPUQueryTimeout bounds each nvidia-smi invocation.
func WithGPUQueryTimeout(d time.Duration) HostOption {
	return func(h *Host) {
		h.gpuTimeout = d
	}
}

// Host reads live metrics of the local machine through gopsutil, procfs/sysfs
// and nvidia-smi. It holds no per-request state and is safe for concurrent use.
type Host struct {
	sysfs          *sysfs.Reader
	run            CommandRunner
	gpuTimeout     time.Duration
	baselineWindow time.Duration
	baselineAt     time.Time
}

var _ Provider = (*Host)(nil)

// NewHost creates a provider for the local machine and primes the aggregate
// CPU baseline.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		sysfs:          sysfs.NewReader(),
		run:            execCommand,
		gpuTimeout:     defaults.GPUQueryTimeout,
		baselineWindow: defaults.CPUBaselineWindow,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.primeCPU()
	return h
}

// primeCPU resets gopsutil's aggregate baseline so the first instant read
// measures a real window instead of the span since package init.
func (h *Host) primeCPU() {
	if _, err := cpu.Percent(0, false); err != nil {
		slog.Debug("failed to prime cpu baseline", "error", err)
	}
	h.baselineAt = time.Now()
}

// awaitBaseline blocks until the primed baseline is baselineWindow old.
// Only the first reads after NewHost ever wait.
func (h *Host) awaitBaseline(ctx context.Context) error {
	wait := h.baselineWindow - time.Since(h.baselineAt)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func internal(msg string, err error) error {
	return cnserrors.Wrap(cnserrors.ErrCodeInternal, msg, err)
}

// Identity implements HostProvider.
func (h *Host) Identity(ctx context.Context) (*HostIdentity, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, internal("failed to read host info", err)
	}

	id := &HostIdentity{
		OS:       info.OS,
		Host:     info.Hostname,
		Release:  info.KernelVersion,
		Machine:  info.KernelArch,
		BootTime: info.BootTime,
	}

	// Kernel build string is only exposed by procfs.
	if v, err := h.sysfs.ReadString(filePathKernelVersion); err == nil {
		id.Version = v
	} else {
		slog.Debug("kernel version string not available", "error", err)
	}

	return id, nil
}

// CPUCounts implements CPUProvider.
func (h *Host) CPUCounts(ctx context.Context) (*CPUCounts, error) {
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return nil, internal("failed to count physical cores", err)
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, internal("failed to count logical cores", err)
	}
	return &CPUCounts{Physical: physical, Logical: logical}, nil
}

// CPUFrequency implements CPUProvider. Linux cpufreq values are read from
// sysfs (kHz); elsewhere the per-CPU MHz reported by gopsutil is used.
func (h *Host) CPUFrequency(ctx context.Context) (*CPUFrequency, error) {
	freq := &CPUFrequency{
		Min:     h.readKHz("cpuinfo_min_freq"),
		Max:     h.readKHz("cpuinfo_max_freq"),
		Current: h.readKHz("scaling_cur_freq"),
	}
	if freq.Current > 0 && freq.Max > 0 {
		return freq, nil
	}

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, internal("failed to read cpu info", err)
	}
	if len(infos) == 0 {
		return freq, nil
	}

	var sum float64
	for _, ci := range infos {
		sum += ci.Mhz
	}
	if freq.Current == 0 {
		freq.Current = sum / float64(len(infos))
	}
	if freq.Max == 0 {
		freq.Max = infos[0].Mhz
	}
	return freq, nil
}

func (h *Host) readKHz(name string) float64 {
	v, err := h.sysfs.ReadUint(path.Join(dirPathCPUFreq, name))
	if err != nil {
		return 0
	}
	return float64(v) / 1000
}

// CPUUtilization implements CPUProvider.
func (h *Host) CPUUtilization(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error) {
	if interval <= 0 && !perCPU {
		if err := h.awaitBaseline(ctx); err != nil {
			return nil, err
		}
	}
	pct, err := cpu.PercentWithContext(ctx, interval, perCPU)
	if err != nil {
		return nil, internal("failed to sample cpu utilization", err)
	}
	return pct, nil
}

// Memory implements MemoryProvider.
func (h *Host) Memory(ctx context.Context) (*VirtualMemory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, internal("failed to read virtual memory", err)
	}
	return &VirtualMemory{
		Total:     vm.Total,
		Available: vm.Available,
		Used:      vm.Used,
		Percent:   vm.UsedPercent,
	}, nil
}

// Swap implements MemoryProvider.
func (h *Host) Swap(ctx context.Context) (*SwapMemory, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, internal("failed to read swap memory", err)
	}
	return &SwapMemory{
		Total:   sw.Total,
		Free:    sw.Free,
		Used:    sw.Used,
		Percent: sw.UsedPercent,
	}, nil
}

// Partitions implements DiskProvider. Only physical devices are listed, which
// matches what df shows by default.
func (h *Host) Partitions(ctx context.Context) ([]Partition, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, internal("failed to list partitions", err)
	}
	res := make([]Partition, 0, len(parts))
	for _, p := range parts {
		res = append(res, Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
		})
	}
	return res, nil
}

// DiskUsage implements DiskProvider.
func (h *Host) DiskUsage(ctx context.Context, mountpoint string) (*DiskUsage, error) {
	u, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodePermissionDenied,
				"failed to read disk usage", err, map[string]any{"mountpoint": mountpoint})
		}
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			"failed to read disk usage", err, map[string]any{"mountpoint": mountpoint})
	}
	return &DiskUsage{
		Total:   u.Total,
		Used:    u.Used,
		Free:    u.Free,
		Percent: u.UsedPercent,
	}, nil
}

// DiskIOCounters implements DiskProvider. On Linux the kernel reports whole
// disks and their partitions separately; only whole disks (those present in
// /sys/block) are summed so partition traffic is not counted twice.
func (h *Host) DiskIOCounters(ctx context.Context) (*DiskIO, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return nil, internal("failed to read disk io counters", err)
	}

	wholeDisksOnly := h.sysfs.Exists(dirPathBlock)

	res := &DiskIO{}
	for name, c := range counters {
		if wholeDisksOnly && !h.sysfs.Exists(path.Join(dirPathBlock, name)) {
			continue
		}
		res.ReadBytes += c.ReadBytes
		res.WriteBytes += c.WriteBytes
	}
	return res, nil
}

// InterfaceAddresses implements NetworkProvider. Interfaces are returned in
// kernel index order with the hardware address first, followed by the
// configured IP addresses.
func (h *Host) InterfaceAddresses(ctx context.Context) ([]Interface, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, internal("failed to list network interfaces", err)
	}

	res := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		broadcast := hasFlag(iface.Flags, "broadcast")
		addrs := make([]Address, 0, len(iface.Addrs)+1)

		if iface.HardwareAddr != "" {
			addrs = append(addrs, linkLayerAddress(iface.HardwareAddr, broadcast))
		}
		for _, a := range iface.Addrs {
			addrs = append(addrs, ipAddress(a.Addr, broadcast))
		}

		res = append(res, Interface{Name: iface.Name, Addresses: addrs})
	}
	return res, nil
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, flag) {
			return true
		}
	}
	return false
}

// NetIOCounters implements NetworkProvider.
func (h *Host) NetIOCounters(ctx context.Context) (*NetIO, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return nil, internal("failed to read network io counters", err)
	}
	res := &NetIO{}
	for _, c := range counters {
		res.BytesSent += c.BytesSent
		res.BytesRecv += c.BytesRecv
	}
	return res, nil
}

// GPUs implements GPUProvider.
func (h *Host) GPUs(ctx context.Context) ([]GPU, error) {
	ctx, cancel := context.WithTimeout(ctx, h.gpuTimeout)
	defer cancel()

	out, err := h.run(ctx, nvidiaSMICommand, nvidiaSMIArgs...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "nvidia-smi timed out", err)
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "nvidia-smi not available", err)
	}

	gpus, err := parseSMIQuery(out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nvidia-smi output: %w", err)
	}
	return gpus, nil
}
