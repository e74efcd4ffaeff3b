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

package disk

import (
	"context"
	"log/slog"

	"k8s.io/utils/ptr"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/units"
)

// Partition is one mounted filesystem. Only Device, Mountpoint, and
// Filesystem are set when the usage of the mountpoint cannot be read.
type Partition struct {
	Device     string `json:"device" yaml:"device"`
	Mountpoint string `json:"mountpoint" yaml:"mountpoint"`
	Filesystem string `json:"filesystem,omitempty" yaml:"filesystem,omitempty"`

	Total   *string  `json:"total,omitempty" yaml:"total,omitempty"`
	Used    *string  `json:"used,omitempty" yaml:"used,omitempty"`
	Free    *string  `json:"free,omitempty" yaml:"free,omitempty"`
	Percent *float64 `json:"percent,omitempty" yaml:"percent,omitempty"`

	// ReadBytes and WriteBytes are host-wide totals, not per partition.
	ReadBytes  *string `json:"readBytes,omitempty" yaml:"readBytes,omitempty"`
	WriteBytes *string `json:"writeBytes,omitempty" yaml:"writeBytes,omitempty"`
}

// Partial reports whether only the identifying fields are populated.
func (p Partition) Partial() bool {
	return p.Total == nil
}

// Collector enumerates partitions and their usage. It never fails: partitions
// that cannot be read are reported partially and an enumeration failure
// yields no partitions.
type Collector struct {
	Provider provider.DiskProvider
	Policy   Policy
}

// Collect returns the partitions in enumeration order. The returned slice is
// never nil. Only context errors are returned.
func (c *Collector) Collect(ctx context.Context) ([]Partition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]Partition, 0)

	parts, err := c.Provider.Partitions(ctx)
	if err != nil {
		slog.Warn("failed to enumerate partitions", slog.String("error", err.Error()))
		return res, nil
	}

	var io *ioTotals
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.Policy.Skip(p.Device, p.Mountpoint) {
			slog.Debug("skipping partition", slog.String("device", p.Device), slog.String("mountpoint", p.Mountpoint))
			continue
		}

		rec := Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Filesystem: p.Fstype,
		}

		usage, err := c.Provider.DiskUsage(ctx, p.Mountpoint)
		if err != nil {
			if cnserrors.HasCode(err, cnserrors.ErrCodePermissionDenied) {
				slog.Debug("partition not accessible", slog.String("mountpoint", p.Mountpoint))
			} else {
				slog.Warn("failed to read partition usage",
					slog.String("mountpoint", p.Mountpoint), slog.String("error", err.Error()))
			}
			res = append(res, rec)
			continue
		}

		rec.Total = ptr.To(units.FormatBytes(usage.Total))
		rec.Used = ptr.To(units.FormatBytes(usage.Used))
		rec.Free = ptr.To(units.FormatBytes(usage.Free))
		rec.Percent = ptr.To(usage.Percent)

		if io == nil {
			io = c.readIO(ctx)
		}
		rec.ReadBytes = io.read
		rec.WriteBytes = io.write

		res = append(res, rec)
	}

	return res, nil
}

// ioTotals caches the host-wide counters for one Collect call.
type ioTotals struct {
	read, write *string
}

func (c *Collector) readIO(ctx context.Context) *ioTotals {
	counters, err := c.Provider.DiskIOCounters(ctx)
	if err != nil {
		slog.Warn("disk io counters not available", slog.String("error", err.Error()))
		return &ioTotals{}
	}
	return &ioTotals{
		read:  ptr.To(units.FormatBytes(counters.ReadBytes)),
		write: ptr.To(units.FormatBytes(counters.WriteBytes)),
	}
}
