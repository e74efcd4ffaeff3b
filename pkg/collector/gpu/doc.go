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

// Package gpu reports attached GPUs.
//
// Each record carries the id, name, load as a percentage string ("37%"),
// free/used/total memory as "<n> MB" strings, the temperature in degrees
// Celsius, and the device UUID when known.
//
// Hosts without nvidia-smi are not an error: the collector returns an empty
// slice so a snapshot of a CPU-only machine is still complete.
package gpu
