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
	"errors"
	"testing"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
)

type fakeGPU struct {
	gpus []provider.GPU
	err  error
}

func (f *fakeGPU) GPUs(context.Context) ([]provider.GPU, error) {
	return f.gpus, f.err
}

func TestCollector_Collect(t *testing.T) {
	c := &Collector{Provider: &fakeGPU{gpus: []provider.GPU{
		{ID: 0, UUID: "GPU-abc", Name: "NVIDIA A100", Load: 0.5, MemoryFree: 40000, MemoryUsed: 960, MemoryTotal: 40960, Temperature: 41},
		{ID: 1, Name: "NVIDIA A100", Load: 0, MemoryTotal: 40960, MemoryFree: 40960},
	}}}

	got, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 gpus, got %d", len(got))
	}

	want := Info{
		ID:          0,
		Name:        "NVIDIA A100",
		Load:        "50%",
		MemoryFree:  "40000 MB",
		MemoryUsed:  "960 MB",
		MemoryTotal: "40960 MB",
		Temperature: 41,
		UUID:        "GPU-abc",
	}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
	if got[1].Load != "0%" || got[1].UUID != "" {
		t.Errorf("unexpected second gpu: %+v", got[1])
	}
}

func TestCollector_NeverFails(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unavailable", cnserrors.New(cnserrors.ErrCodeUnavailable, "nvidia-smi not found")},
		{"timeout", cnserrors.New(cnserrors.ErrCodeTimeout, "nvidia-smi timed out")},
		{"unclassified", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&Collector{Provider: &fakeGPU{err: tt.err}}).Collect(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty non-nil slice, got %#v", got)
			}
		})
	}
}

func TestFormatLoad(t *testing.T) {
	tests := map[float64]string{
		0:     "0%",
		0.07:  "7%",
		0.123: "12.3%",
		0.29:  "29%",
		0.37:  "37%",
		0.5:   "50%",
		1:     "100%",
	}
	for in, want := range tests {
		if got := FormatLoad(in); got != want {
			t.Errorf("FormatLoad(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMB(t *testing.T) {
	if got := FormatMB(24576); got != "24576 MB" {
		t.Errorf("FormatMB(24576) = %q", got)
	}
	if got := FormatMB(0.5); got != "0.5 MB" {
		t.Errorf("FormatMB(0.5) = %q", got)
	}
}
