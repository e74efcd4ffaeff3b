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

// Package provider abstracts the operating system as a source of host
// metrics.
//
// The Provider interface is what every collector consumes. Host is the live
// implementation backed by gopsutil, procfs/sysfs, and nvidia-smi; tests
// supply their own fakes.
//
//	p := provider.NewHost()
//	vm, err := p.Memory(ctx)
//
// Errors carry pkg/errors codes so callers can tell inaccessible resources
// (ErrCodePermissionDenied) and missing tooling (ErrCodeUnavailable) apart
// from real failures.
package provider
