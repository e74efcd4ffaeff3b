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

package units

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  string
	}{
		{"zero", 0, "0.00B"},
		{"bytes", 512, "512.00B"},
		{"just below kilo", 1023, "1023.00B"},
		{"one kilo", 1024, "1.00KB"},
		{"megabytes", 1253656, "1.20MB"},
		{"gigabytes", 1253656678, "1.17GB"},
		{"one tera", 1 << 40, "1.00TB"},
		{"one peta", 1 << 50, "1.00PB"},
		{"beyond peta", 1 << 60, "1024.00PB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytes(tt.value); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatBytes_Float(t *testing.T) {
	if got := FormatBytes(1536.0); got != "1.50KB" {
		t.Errorf("FormatBytes(1536.0) = %q, want %q", got, "1.50KB")
	}
	if got := FormatBytes(float32(0.5)); got != "0.50B" {
		t.Errorf("FormatBytes(0.5) = %q, want %q", got, "0.50B")
	}
}

func TestFormatBytesWithSuffix(t *testing.T) {
	if got := FormatBytesWithSuffix(2048, "B/s"); got != "2.00KB/s" {
		t.Errorf("got %q, want %q", got, "2.00KB/s")
	}
	if got := FormatBytesWithSuffix(10, ""); got != "10.00" {
		t.Errorf("got %q, want %q", got, "10.00")
	}
}

var scaledPattern = regexp.MustCompile(`^-?\d+\.\d{2}[KMGTP]?B$`)

func TestFormatBytes_Pattern(t *testing.T) {
	values := []uint64{0, 1, 999, 1024, 4096, 1 << 20, 123456789, 1 << 40, 1 << 50, math.MaxUint64}
	for _, v := range values {
		got := FormatBytes(v)
		if !scaledPattern.MatchString(got) {
			t.Errorf("FormatBytes(%d) = %q does not match %s", v, got, scaledPattern)
		}
	}
}

// magnitude converts a scaled string back to an approximate byte count.
func magnitude(t *testing.T, s string) float64 {
	t.Helper()
	s = strings.TrimSuffix(s, DefaultSuffix)
	mult := 1.0
	for i := len(prefixes) - 1; i > 0; i-- {
		if strings.HasSuffix(s, prefixes[i]) {
			s = strings.TrimSuffix(s, prefixes[i])
			mult = math.Pow(factor, float64(i))
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", s, err)
	}
	return v * mult
}

func TestFormatBytes_Monotonic(t *testing.T) {
	inputs := []uint64{1023, 1024, (1 << 20) - 1, 1 << 20, (1 << 30) - 1, 1 << 30}
	for exp := 0; exp <= 52; exp++ {
		inputs = append(inputs, (1<<exp)-1, 1<<exp, (1<<exp)+1)
	}
	slices.Sort(inputs)
	inputs = slices.Compact(inputs)

	prev := -1.0
	for _, v := range inputs {
		got := magnitude(t, FormatBytes(v))
		if got < prev {
			t.Fatalf("magnitude decreased at %d: %v < %v", v, got, prev)
		}
		prev = got
	}
}
