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

package snapshotter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/defaults"
	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/serializer"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/server"
)

// HandleSnapshot serves GET / with a fresh snapshot as indented JSON.
func (n *NodeSnapshotter) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SnapshotHandlerTimeout)
	defer cancel()

	snap, err := n.Snapshot(ctx)
	if err != nil {
		slog.Error("failed to serve snapshot",
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err,
		)
		server.WriteErrorFromErr(w, r, err, "Failed to collect snapshot", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, snap)
}
