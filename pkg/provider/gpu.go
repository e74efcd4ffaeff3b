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

package provider

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

const nvidiaSMICommand = "nvidia-smi"

var nvidiaSMIArgs = []string{
	"--query-gpu=index,uuid,utilization.gpu,memory.total,memory.used,memory.free,name,temperature.gpu",
	"--format=csv,noheader,nounits",
}

// smiFieldCount is the number of columns requested from nvidia-smi.
const smiFieldCount = 8

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// parseSMIQuery parses nvidia-smi CSV output. Rows with the wrong column
// count or an unparsable index are skipped; unavailable numeric fields
// ("[N/A]", "[Not Supported]") read as zero.
func parseSMIQuery(out []byte) ([]GPU, error) {
	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	gpus := make([]GPU, 0)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != smiFieldCount {
			slog.Debug("skipping malformed nvidia-smi row", "fields", len(rec))
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			slog.Debug("skipping nvidia-smi row with bad index", "index", rec[0])
			continue
		}

		gpus = append(gpus, GPU{
			ID:          id,
			UUID:        strings.TrimSpace(rec[1]),
			Load:        smiFloat(rec[2]) / 100,
			MemoryTotal: smiFloat(rec[3]),
			MemoryUsed:  smiFloat(rec[4]),
			MemoryFree:  smiFloat(rec[5]),
			Name:        strings.TrimSpace(rec[6]),
			Temperature: smiFloat(rec[7]),
		})
	}
	return gpus, nil
}

func smiFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
