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

import "strings"

// Policy selects which partitions are skipped. The zero value skips nothing.
type Policy struct {
	// ExcludeDevicePrefixes skips partitions whose device starts with any prefix.
	ExcludeDevicePrefixes []string `json:"excludeDevicePrefixes,omitempty" yaml:"excludeDevicePrefixes,omitempty"`

	// ExcludeMountPrefixes skips partitions whose mountpoint starts with any prefix.
	ExcludeMountPrefixes []string `json:"excludeMountPrefixes,omitempty" yaml:"excludeMountPrefixes,omitempty"`
}

// SystemPolicy skips loop devices and boot partitions.
func SystemPolicy() Policy {
	return Policy{
		ExcludeDevicePrefixes: []string{"/dev/loop"},
		ExcludeMountPrefixes:  []string{"/boot"},
	}
}

// Merge returns a policy excluding everything p or o exclude.
func (p Policy) Merge(o Policy) Policy {
	return Policy{
		ExcludeDevicePrefixes: append(append([]string(nil), p.ExcludeDevicePrefixes...), o.ExcludeDevicePrefixes...),
		ExcludeMountPrefixes:  append(append([]string(nil), p.ExcludeMountPrefixes...), o.ExcludeMountPrefixes...),
	}
}

// Skip reports whether the partition is excluded.
func (p Policy) Skip(device, mountpoint string) bool {
	return hasAnyPrefix(device, p.ExcludeDevicePrefixes) ||
		hasAnyPrefix(mountpoint, p.ExcludeMountPrefixes)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
