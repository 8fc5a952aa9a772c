// Copyright 2026 Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package plot provides the public API for rendering weight-space
// trajectories.
//
// Example:
//
//	err := plot.Save([]plot.Series{
//	    {Name: "batch", Traj: batchTraj},
//	    {Name: "momentum", Traj: momentumRes.Steps},
//	}, "Weight-space paths", "paths.png", nil)
package plot

import (
	"github.com/descent-ml/descent/internal/plot"
)

// Series is one named trajectory to draw.
type Series = plot.Series

// Limits restricts the intercept/slope axes to zoom near the convergence
// point.
type Limits = plot.Limits

// Save draws the trajectories through weight space and writes the plot
// to path.
func Save(series []Series, title, path string, limits *Limits) error {
	return plot.Save(series, title, path, limits)
}
