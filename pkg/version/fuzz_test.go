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

package version

import (
	"strings"
	"testing"
)

// kernel releases as reported by uname -r on common distributions
var kernelSeeds = []string{
	"6.8.0-45-generic",
	"5.15.0-1028-aws",
	"6.1.0-18-amd64",
	"5.14.0-427.13.1.el9_4.x86_64",
	"6.6.32-linuxkit",
	"4.19.112+",
	"6.10.3-arch1-2",
	"5.10.0",
}

func FuzzParseVersion(f *testing.F) {
	for _, s := range kernelSeeds {
		f.Add(s)
	}
	for _, s := range []string{"", "v", "v1", "1.2", ".", "1..2", "-1", "1.-2", "a.b.c", "1.2.3.4", " 1.2.3", "999.999.999"} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ParseVersion(input)
		if err != nil {
			return
		}

		if !v.IsValid() || v.Precision < 1 || v.Precision > 3 {
			t.Fatalf("ParseVersion(%q) = %+v, not a usable version", input, v)
		}
		if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
			t.Fatalf("ParseVersion(%q) = %+v, negative component", input, v)
		}
		if v.Extras != "" && !strings.HasSuffix(input, v.Extras) {
			t.Fatalf("ParseVersion(%q) extras %q is not a suffix of the input", input, v.Extras)
		}

		// String drops extras, so it must parse back to the same numbers.
		back, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("ParseVersion(%q) failed on String() of %q: %v", v.String(), input, err)
		}
		if back.Major != v.Major || back.Minor != v.Minor || back.Patch != v.Patch || back.Precision != v.Precision {
			t.Fatalf("round trip of %q: %+v != %+v", input, back, v)
		}

		ref := NewVersion(6, 8, 0)
		if v.Compare(ref) != -ref.Compare(v) {
			t.Fatalf("Compare is not antisymmetric for %+v and %+v", v, ref)
		}
	})
}
