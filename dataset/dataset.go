// Copyright 2026 Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the public API for synthetic regression data.
//
// Example:
//
//	src := rand.NewSource(42)
//	d, err := dataset.Generate(21, -1, 1, 0.2, src)
package dataset

import (
	"golang.org/x/exp/rand"

	"github.com/descent-ml/descent/internal/dataset"
)

// Dataset is a fixed, read-only sequence of (x, y) samples.
type Dataset = dataset.Dataset

// Generate produces n samples with x evenly spaced over [min, max] and
// y = x + 1 plus zero-mean Gaussian noise of standard deviation noiseStd
// drawn from src.
func Generate(n int, min, max, noiseStd float64, src rand.Source) (Dataset, error) {
	return dataset.Generate(n, min, max, noiseStd, src)
}
