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

package header

import (
	"testing"
	"time"
)

func TestHeader_Init(t *testing.T) {
	var h Header
	h.Metadata = map[string]string{"stale": "x"}
	h.Init(KindSnapshot, "sysinfo.dockerlab.io/v1alpha1", "v1.0.0")

	if h.Kind != KindSnapshot {
		t.Errorf("Kind = %q", h.Kind)
	}
	if h.APIVersion != "sysinfo.dockerlab.io/v1alpha1" {
		t.Errorf("APIVersion = %q", h.APIVersion)
	}
	if _, ok := h.Metadata["stale"]; ok {
		t.Error("expected metadata to be reset")
	}
	if h.Metadata[MetadataVersion] != "v1.0.0" {
		t.Errorf("version = %q", h.Metadata[MetadataVersion])
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp]); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
}

func TestHeader_InitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindSnapshot, "v1", "")
	if _, ok := h.Metadata[MetadataVersion]; ok {
		t.Error("expected no version key")
	}
}

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindSnapshot),
		WithAPIVersion("v1"),
		WithMetadata("source-node", "node-1"),
	)
	if h.Kind != KindSnapshot || h.APIVersion != "v1" || h.Metadata["source-node"] != "node-1" {
		t.Errorf("unexpected header %+v", h)
	}

	var empty Header
	WithMetadata("k", "v")(&empty)
	if empty.Metadata["k"] != "v" {
		t.Error("WithMetadata must initialize a nil map")
	}
}

func TestKind(t *testing.T) {
	if !KindSnapshot.IsValid() {
		t.Error("Snapshot should be valid")
	}
	if Kind("Recipe").IsValid() {
		t.Error("Recipe should not be valid")
	}
	if KindSnapshot.String() != "Snapshot" {
		t.Errorf("String() = %q", KindSnapshot.String())
	}
}
