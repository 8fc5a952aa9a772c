// Copyright 2026 Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trajectory provides the public API for recorded weight-space
// paths.
package trajectory

import (
	"github.com/descent-ml/descent/internal/trajectory"
)

// Trajectory is an append-only sequence of weight-vector snapshots
// produced by one optimizer run.
type Trajectory = trajectory.Trajectory

// New returns an empty trajectory with room for n snapshots.
func New(n int) *Trajectory {
	return trajectory.New(n)
}
