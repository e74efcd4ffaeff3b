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

// Package units renders raw byte counts as human-readable magnitudes.
package units

import "fmt"

const (
	// DefaultSuffix is appended after the magnitude prefix.
	DefaultSuffix = "B"

	factor = 1024
)

var prefixes = []string{"", "K", "M", "G", "T", "P"}

// Number is any raw count the formatter accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FormatBytes scales value by powers of 1024 and renders it with two decimals,
// e.g. 1253656 => "1.20MB" and 1253656678 => "1.17GB".
func FormatBytes[T Number](value T) string {
	return FormatBytesWithSuffix(value, DefaultSuffix)
}

// FormatBytesWithSuffix is FormatBytes with a caller supplied unit suffix.
// Values beyond the P range stay at P scale.
func FormatBytesWithSuffix[T Number](value T, suffix string) string {
	v := float64(value)
	last := len(prefixes) - 1
	for i, prefix := range prefixes {
		if v < factor || i == last {
			return fmt.Sprintf("%.2f%s%s", v, prefix, suffix)
		}
		v /= factor
	}
	return "" // unreachable
}
