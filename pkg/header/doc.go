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

// Package header provides the common document header.
//
// Every document the service emits starts with the same three fields:
//
//	kind: Snapshot
//	apiVersion: sysinfo.dockerlab.io/v1alpha1
//	metadata:
//	  timestamp: "2026-01-02T15:04:05Z"
//	  version: v0.3.0
//	  source-node: node-1
//
// Embed Header inline in a document type and call Init when building it:
//
//	type Snapshot struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    ...
//	}
//
//	snap.Init(header.KindSnapshot, APIVersion, version)
package header
