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

package gpu

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
)

// Info is one GPU record.
type Info struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Load        string  `json:"load" yaml:"load"`
	MemoryFree  string  `json:"memoryFree" yaml:"memoryFree"`
	MemoryUsed  string  `json:"memoryUsed" yaml:"memoryUsed"`
	MemoryTotal string  `json:"memoryTotal" yaml:"memoryTotal"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	UUID        string  `json:"uuid,omitempty" yaml:"uuid,omitempty"`
}

// Collector enumerates attached GPUs.
type Collector struct {
	Provider provider.GPUProvider
}

// Collect returns the attached GPUs. It never fails: hosts without GPU
// tooling, and any provider error, yield an empty, non-nil slice.
func (c *Collector) Collect(ctx context.Context) ([]Info, error) {
	res := make([]Info, 0)

	gpus, err := c.Provider.GPUs(ctx)
	if err != nil {
		if cnserrors.HasCode(err, cnserrors.ErrCodeUnavailable) {
			slog.Debug("no gpu tooling available", slog.String("error", err.Error()))
		} else {
			slog.Warn("failed to query gpus", slog.String("error", err.Error()))
		}
		return res, nil
	}

	for _, g := range gpus {
		res = append(res, Info{
			ID:          g.ID,
			Name:        g.Name,
			Load:        FormatLoad(g.Load),
			MemoryFree:  FormatMB(g.MemoryFree),
			MemoryUsed:  FormatMB(g.MemoryUsed),
			MemoryTotal: FormatMB(g.MemoryTotal),
			Temperature: g.Temperature,
			UUID:        g.UUID,
		})
	}
	return res, nil
}

// FormatLoad renders a load fraction as a percentage rounded to two
// decimals, e.g. 0.5 => "50%" and 0.07 => "7%".
func FormatLoad(load float64) string {
	return strconv.FormatFloat(math.Round(load*10000)/100, 'f', -1, 64) + "%"
}

// FormatMB renders a memory amount in megabytes, e.g. 1024 => "1024 MB".
func FormatMB(mb float64) string {
	return strconv.FormatFloat(mb, 'f', -1, 64) + " MB"
}
