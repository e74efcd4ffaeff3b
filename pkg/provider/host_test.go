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
	"os"
	"path/filepath"
	"testing"
	"time"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider/sysfs"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
}

func TestHost_CPUFrequencyFromSysfs(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_min_freq", "800000\n")
	writeFixture(t, root, "sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq", "4200000\n")
	writeFixture(t, root, "sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq", "2500000\n")

	h := NewHost(WithSysfsReader(sysfs.NewReader(sysfs.WithRoot(root))))
	freq, err := h.CPUFrequency(context.Background())
	if err != nil {
		t.Fatalf("CPUFrequency() error = %v", err)
	}

	want := CPUFrequency{Min: 800, Max: 4200, Current: 2500}
	if *freq != want {
		t.Errorf("CPUFrequency() = %+v, want %+v", *freq, want)
	}
}

func TestHost_DiskUsagePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permissions are not enforced")
	}

	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err := NewHost().DiskUsage(context.Background(), filepath.Join(dir, "inner"))
	if err == nil {
		t.Skip("platform allowed statfs below an unreadable directory")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Skipf("unexpected underlying error: %v", err)
	}
	if !cnserrors.HasCode(err, cnserrors.ErrCodePermissionDenied) {
		t.Errorf("expected %s, got %v", cnserrors.ErrCodePermissionDenied, err)
	}
}

func TestHost_LiveMetrics(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live host metrics in short mode")
	}

	ctx := context.Background()
	h := NewHost()

	id, err := h.Identity(ctx)
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if id.Host == "" {
		t.Error("expected hostname to be set")
	}
	if id.BootTime == 0 {
		t.Error("expected boot time to be set")
	}

	counts, err := h.CPUCounts(ctx)
	if err != nil {
		t.Fatalf("CPUCounts() error = %v", err)
	}
	if counts.Logical < 1 {
		t.Errorf("expected at least one logical cpu, got %d", counts.Logical)
	}

	vm, err := h.Memory(ctx)
	if err != nil {
		t.Fatalf("Memory() error = %v", err)
	}
	if vm.Total == 0 {
		t.Error("expected total memory to be set")
	}

	ifaces, err := h.InterfaceAddresses(ctx)
	if err != nil {
		t.Fatalf("InterfaceAddresses() error = %v", err)
	}
	if len(ifaces) == 0 {
		t.Error("expected at least one interface")
	}
}

func TestHasFlag(t *testing.T) {
	flags := []string{"up", "broadcast", "multicast"}
	if !hasFlag(flags, "broadcast") {
		t.Error("expected broadcast flag")
	}
	if hasFlag(flags, "loopback") {
		t.Error("unexpected loopback flag")
	}
}

func TestHost_CPUUtilizationWaitsForBaseline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live host metrics in short mode")
	}

	const window = 150 * time.Millisecond
	h := NewHost(WithCPUBaselineWindow(window))

	start := time.Now()
	pct, err := h.CPUUtilization(context.Background(), 0, false)
	if err != nil {
		t.Fatalf("CPUUtilization() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < window/2 {
		t.Errorf("first read returned after %v, want it to wait for the baseline", elapsed)
	}
	if len(pct) != 1 || pct[0] < 0 || pct[0] > 100 {
		t.Errorf("unexpected aggregate utilization %v", pct)
	}

	start = time.Now()
	if _, err := h.CPUUtilization(context.Background(), 0, false); err != nil {
		t.Fatalf("second CPUUtilization() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > window/2 {
		t.Errorf("second read blocked for %v", elapsed)
	}
}

func TestHost_CPUUtilizationBaselineCanceled(t *testing.T) {
	h := NewHost(WithCPUBaselineWindow(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.CPUUtilization(ctx, 0, false); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
