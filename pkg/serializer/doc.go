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

// Package serializer renders values as JSON, YAML, or a flattened table and
// moves them over HTTP.
//
// Writing to stdout or a file:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//		return err
//	}
//
// The table format flattens nested structures into dotted keys named after
// the JSON field names (cpu.perCoreUsage[0], disks[1].mountpoint), one row
// per leaf, sorted by key.
//
// HTTP handlers answer with RespondJSON, which buffers the indented body
// before writing headers. HTTPReader is the client side, with timeouts from
// pkg/defaults:
//
//	var snap snapshotter.Snapshot
//	err := serializer.NewHTTPReader().ReadJSON(ctx, "http://node-1:8080/", &snap)
package serializer
