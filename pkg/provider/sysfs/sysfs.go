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

// Package sysfs reads small single-value files such as those under /proc/sys
// and /sys/devices.
package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMaxSize is the largest file the Reader accepts.
const DefaultMaxSize = 64 << 10

// Option configures a Reader.
type Option func(*Reader)

// Reader reads value files relative to a root directory.
// The root allows tests to point the reader at a fixture tree.
type Reader struct {
	root    string
	maxSize int
}

// WithRoot sets the directory that absolute paths are resolved under.
// Default is "/".
func WithRoot(root string) Option {
	return func(r *Reader) {
		r.root = root
	}
}

// WithMaxSize sets the maximum size (in bytes) of a file.
func WithMaxSize(size int) Option {
	return func(r *Reader) {
		r.maxSize = size
	}
}

// NewReader creates a Reader with the provided options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		root:    "/",
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reader) resolve(path string) string {
	return filepath.Join(r.root, path)
}

// Exists reports whether path exists under the root.
func (r *Reader) Exists(path string) bool {
	_, err := os.Stat(r.resolve(path))
	return err == nil
}

// ReadLines returns the non-empty, trimmed lines of the file at path.
func (r *Reader) ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	full := r.resolve(path)
	b, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", full, err)
	}

	if len(b) > r.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", full, r.maxSize)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", full)
	}

	parts := strings.Split(string(b), "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			lines = append(lines, clean)
		}
	}
	return lines, nil
}

// ReadString returns the first non-empty line of the file at path.
func (r *Reader) ReadString(path string) (string, error) {
	lines, err := r.ReadLines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("file %q is empty", r.resolve(path))
	}
	return lines[0], nil
}

// ReadUint parses the first line of the file at path as an unsigned integer.
func (r *Reader) ReadUint(path string) (uint64, error) {
	s, err := r.ReadString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q from %q: %w", s, r.resolve(path), err)
	}
	return v, nil
}
