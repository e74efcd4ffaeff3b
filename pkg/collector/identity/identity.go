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

package identity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/version"
)

// Identity is the host identity record.
type Identity struct {
	OS      string `json:"os" yaml:"os"`
	Host    string `json:"host" yaml:"host"`
	Release string `json:"release" yaml:"release"`
	Version string `json:"version" yaml:"version"`
	Machine string `json:"machine" yaml:"machine"`

	// Boot is the boot time in local time, formatted as YYYY/M/D H:M:S.
	Boot string `json:"boot" yaml:"boot"`

	// Kernel is the parsed kernel release, when it is a semantic version.
	Kernel *version.Version `json:"kernel,omitempty" yaml:"kernel,omitempty"`
}

// Collector reads host identity.
type Collector struct {
	Provider provider.HostProvider

	// Location used to render the boot time. Defaults to time.Local.
	Location *time.Location
}

// Collect reads the identity of the host. Provider failures are returned.
func (c *Collector) Collect(ctx context.Context) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := c.Provider.Identity(ctx)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read host identity", err)
	}

	loc := c.Location
	if loc == nil {
		loc = time.Local
	}

	res := &Identity{
		OS:      id.OS,
		Host:    id.Host,
		Release: id.Release,
		Version: id.Version,
		Machine: id.Machine,
		Boot:    FormatBootTime(id.BootTime, loc),
	}

	if kv, err := version.ParseVersion(id.Release); err == nil {
		res.Kernel = &kv
	} else {
		slog.Debug("kernel release is not a semantic version", slog.String("release", id.Release))
	}

	return res, nil
}

// FormatBootTime renders epoch seconds as YYYY/M/D H:M:S in loc without
// zero padding.
func FormatBootTime(epoch uint64, loc *time.Location) string {
	t := time.Unix(int64(epoch), 0).In(loc) //nolint:gosec // boot epoch fits in int64
	return fmt.Sprintf("%d/%d/%d %d:%d:%d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
