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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
)

type fakeMemory struct {
	vmErr   error
	swapErr error
}

func (f *fakeMemory) Memory(context.Context) (*provider.VirtualMemory, error) {
	if f.vmErr != nil {
		return nil, f.vmErr
	}
	return &provider.VirtualMemory{
		Total:     16 << 30,
		Available: 8 << 30,
		Used:      1253656678,
		Percent:   42.5,
	}, nil
}

func (f *fakeMemory) Swap(context.Context) (*provider.SwapMemory, error) {
	if f.swapErr != nil {
		return nil, f.swapErr
	}
	return &provider.SwapMemory{Total: 2 << 30, Free: 2 << 30, Used: 0, Percent: 0}, nil
}

func TestCollector_Collect(t *testing.T) {
	info, err := (&Collector{Provider: &fakeMemory{}}).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "16.00GB", info.Total)
	assert.Equal(t, "8.00GB", info.Available)
	assert.Equal(t, "1.17GB", info.Used)
	assert.InDelta(t, 42.5, info.Percent, 0)

	assert.Equal(t, ptr.To("2.00GB"), info.SwapTotal)
	assert.Equal(t, ptr.To("2.00GB"), info.SwapFree)
	assert.Equal(t, ptr.To("0.00B"), info.SwapUsed)
	assert.Equal(t, ptr.To(0.0), info.SwapPercent)
}

func TestCollector_SwapUnavailable(t *testing.T) {
	info, err := (&Collector{Provider: &fakeMemory{swapErr: errors.New("no swap")}}).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "16.00GB", info.Total)
	assert.Nil(t, info.SwapTotal)
	assert.Nil(t, info.SwapFree)
	assert.Nil(t, info.SwapUsed)
	assert.Nil(t, info.SwapPercent)
}

func TestCollector_VirtualMemoryError(t *testing.T) {
	_, err := (&Collector{Provider: &fakeMemory{vmErr: errors.New("boom")}}).Collect(context.Background())
	assert.Error(t, err)
}
