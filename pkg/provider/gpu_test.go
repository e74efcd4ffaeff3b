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
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
)

const smiTwoGPUs = `0, GPU-5f2a1b3c-0000-1111-2222-333344445555, 37, 24576, 1024, 23552, NVIDIA GeForce RTX 4090, 45
1, GPU-aa00bb11-cc22-dd33-ee44-ff5566778899, 0, 16384, 0, 16384, NVIDIA RTX A4000, [N/A]
`

func TestParseSMIQuery(t *testing.T) {
	gpus, err := parseSMIQuery([]byte(smiTwoGPUs))
	require.NoError(t, err)
	require.Len(t, gpus, 2)

	assert.Equal(t, GPU{
		ID:          0,
		UUID:        "GPU-5f2a1b3c-0000-1111-2222-333344445555",
		Name:        "NVIDIA GeForce RTX 4090",
		Load:        0.37,
		MemoryTotal: 24576,
		MemoryUsed:  1024,
		MemoryFree:  23552,
		Temperature: 45,
	}, gpus[0])

	assert.Equal(t, 1, gpus[1].ID)
	assert.Equal(t, "NVIDIA RTX A4000", gpus[1].Name)
	assert.Zero(t, gpus[1].Temperature)
}

func TestParseSMIQuery_SkipsMalformedRows(t *testing.T) {
	out := "garbage line\n" +
		"x, GPU-1, 1, 2, 3, 4, name, 5\n" +
		"2, GPU-2, 50, 100, 50, 50, Tesla T4, 60\n"

	gpus, err := parseSMIQuery([]byte(out))
	require.NoError(t, err)
	require.Len(t, gpus, 1)
	assert.Equal(t, 2, gpus[0].ID)
	assert.InDelta(t, 0.5, gpus[0].Load, 1e-9)
}

func TestParseSMIQuery_Empty(t *testing.T) {
	gpus, err := parseSMIQuery(nil)
	require.NoError(t, err)
	assert.NotNil(t, gpus)
	assert.Empty(t, gpus)
}

func TestHost_GPUs(t *testing.T) {
	tests := []struct {
		name     string
		run      CommandRunner
		wantLen  int
		wantCode cnserrors.ErrorCode
	}{
		{
			name: "two gpus",
			run: func(_ context.Context, name string, args ...string) ([]byte, error) {
				if name != nvidiaSMICommand || len(args) != len(nvidiaSMIArgs) {
					return nil, errors.New("unexpected invocation")
				}
				return []byte(smiTwoGPUs), nil
			},
			wantLen: 2,
		},
		{
			name: "binary missing",
			run: func(context.Context, string, ...string) ([]byte, error) {
				return nil, exec.ErrNotFound
			},
			wantCode: cnserrors.ErrCodeUnavailable,
		},
		{
			name: "query timeout",
			run: func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			wantCode: cnserrors.ErrCodeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHost(WithCommandRunner(tt.run), WithGPUQueryTimeout(20*time.Millisecond))
			gpus, err := h.GPUs(context.Background())
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, cnserrors.HasCode(err, tt.wantCode), "want code %s, got %v", tt.wantCode, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, gpus, tt.wantLen)
		})
	}
}
