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

package cpu

import (
	"context"
	"time"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
)

// Info is the CPU record. Frequencies are in MHz, usage values in percent.
type Info struct {
	PhysicalCores    int       `json:"physicalCores" yaml:"physicalCores"`
	LogicalCores     int       `json:"logicalCores" yaml:"logicalCores"`
	MinFrequency     float64   `json:"minFrequency" yaml:"minFrequency"`
	MaxFrequency     float64   `json:"maxFrequency" yaml:"maxFrequency"`
	CurrentFrequency float64   `json:"currentFrequency" yaml:"currentFrequency"`
	Usage            float64   `json:"usage" yaml:"usage"`
	PerCoreUsage     []float64 `json:"perCoreUsage,omitempty" yaml:"perCoreUsage,omitempty"`
}

// Collector reads CPU counts, frequency, and utilization.
//
// With PerCore set, Collect blocks for SampleInterval to sample every core and
// derives Usage from that same window. Without it, Collect returns immediately.
type Collector struct {
	Provider       provider.CPUProvider
	PerCore        bool
	SampleInterval time.Duration
}

// Collect reads the CPU record. Provider failures are returned.
func (c *Collector) Collect(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts, err := c.Provider.CPUCounts(ctx)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read cpu counts", err)
	}

	freq, err := c.Provider.CPUFrequency(ctx)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read cpu frequency", err)
	}

	info := &Info{
		PhysicalCores:    counts.Physical,
		LogicalCores:     counts.Logical,
		MinFrequency:     freq.Min,
		MaxFrequency:     freq.Max,
		CurrentFrequency: freq.Current,
	}

	if c.PerCore && c.SampleInterval > 0 {
		perCore, err := c.Provider.CPUUtilization(ctx, c.SampleInterval, true)
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to sample per-core utilization", err)
		}
		info.PerCoreUsage = perCore
		info.Usage = mean(perCore)
		return info, nil
	}

	// Zero interval compares against the previous sample and does not block.
	total, err := c.Provider.CPUUtilization(ctx, 0, false)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read cpu utilization", err)
	}
	if len(total) > 0 {
		info.Usage = total[0]
	}

	return info, nil
}

// mean averages per-core percentages into one aggregate over the same window.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
