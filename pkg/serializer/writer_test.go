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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type Meta struct {
	Kind string `json:"kind" yaml:"kind"`
}

type testConfig struct {
	Meta `json:",inline" yaml:",inline"`

	Name    string   `json:"name" yaml:"name"`
	Value   int      `json:"value" yaml:"value"`
	Comment *string  `json:"comment,omitempty" yaml:"comment,omitempty"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Secret  string   `json:"-" yaml:"-"`
}

const test1Name = "test1"

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
	if !strings.Contains(buf.String(), "\n  {") {
		t.Error("expected indented output")
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testConfig{Meta: Meta{Kind: "Snapshot"}, Name: test1Name, Value: 123}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result["kind"] != "Snapshot" {
		t.Errorf("expected inlined kind, got %v", result)
	}
	if result["name"] != test1Name {
		t.Errorf("expected name %q, got %v", test1Name, result["name"])
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	comment := "hello"
	data := testConfig{
		Meta:    Meta{Kind: "Snapshot"},
		Name:    test1Name,
		Value:   123,
		Comment: &comment,
		Tags:    []string{"a", "b"},
		Secret:  "hidden",
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "kind", "name", "comment", "tags[0]", "tags[1]"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in table output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "hidden") {
		t.Error("json:\"-\" field must not be rendered")
	}
}

func TestWriter_SerializeTableNilPointer(t *testing.T) {
	var buf bytes.Buffer
	data := testConfig{Name: test1Name}

	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.Contains(buf.String(), "comment") {
		t.Error("nil pointer should be left out")
	}
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), []string{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "test", Value: 123}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, "x"); err == nil {
		t.Error("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Error("expected no output for canceled context")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	writer := NewFileWriterOrStdout(FormatYAML, path)
	if err := writer.Serialize(context.Background(), map[string]int{"a": 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if strings.TrimSpace(string(data)) != "a: 1" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestNewFileWriterOrStdout_FallsBack(t *testing.T) {
	for _, path := range []string{"", "   ", filepath.Join(t.TempDir(), "missing", "out.json")} {
		w := NewFileWriterOrStdout(FormatJSON, path)
		if w.output != os.Stdout {
			t.Errorf("path %q: expected stdout fallback", path)
		}
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("%s should be known", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
}
