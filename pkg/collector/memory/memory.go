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

package memory

import (
	"context"
	"log/slog"

	"k8s.io/utils/ptr"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/units"
)

// Info is the memory record. Sizes are scaled strings such as "15.52GB".
// Swap fields are nil when swap could not be read.
type Info struct {
	Total     string  `json:"total" yaml:"total"`
	Available string  `json:"available" yaml:"available"`
	Used      string  `json:"used" yaml:"used"`
	Percent   float64 `json:"percent" yaml:"percent"`

	SwapTotal   *string  `json:"swapTotal,omitempty" yaml:"swapTotal,omitempty"`
	SwapFree    *string  `json:"swapFree,omitempty" yaml:"swapFree,omitempty"`
	SwapUsed    *string  `json:"swapUsed,omitempty" yaml:"swapUsed,omitempty"`
	SwapPercent *float64 `json:"swapPercent,omitempty" yaml:"swapPercent,omitempty"`
}

// Collector reads physical and swap memory.
type Collector struct {
	Provider provider.MemoryProvider
}

// Collect reads the memory record. A virtual memory failure is returned; a
// swap failure only leaves the swap fields empty.
func (c *Collector) Collect(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vm, err := c.Provider.Memory(ctx)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read virtual memory", err)
	}

	info := &Info{
		Total:     units.FormatBytes(vm.Total),
		Available: units.FormatBytes(vm.Available),
		Used:      units.FormatBytes(vm.Used),
		Percent:   vm.Percent,
	}

	sw, err := c.Provider.Swap(ctx)
	if err != nil {
		slog.Warn("swap memory not available", slog.String("error", err.Error()))
		return info, nil
	}

	info.SwapTotal = ptr.To(units.FormatBytes(sw.Total))
	info.SwapFree = ptr.To(units.FormatBytes(sw.Free))
	info.SwapUsed = ptr.To(units.FormatBytes(sw.Used))
	info.SwapPercent = ptr.To(sw.Percent)

	return info, nil
}
