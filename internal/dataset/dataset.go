// Package dataset generates the synthetic regression data shared by all
// optimizer runs.
package dataset

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset is a fixed sequence of (x, y) samples. It is generated once and
// treated as read-only; every optimizer run consumes the same instance.
type Dataset struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.X)
}

// Generate produces n samples with x evenly spaced over [min, max] and
// y = x + 1 + noise, where noise is zero-mean Gaussian with standard
// deviation noiseStd drawn from src. A fixed seed reproduces the dataset
// exactly, which keeps trajectories from different optimizers comparable.
func Generate(n int, min, max, noiseStd float64, src rand.Source) (Dataset, error) {
	if n < 1 {
		return Dataset{}, errors.Errorf("sample count %d outside allowed range [1, Inf)", n)
	}
	if max < min {
		return Dataset{}, errors.Errorf("domain range [%v, %v] is inverted", min, max)
	}

	x := make([]float64, n)
	if n == 1 {
		x[0] = min
	} else {
		floats.Span(x, min, max)
	}

	noise := distuv.Normal{Mu: 0, Sigma: noiseStd, Src: src}
	y := make([]float64, n)
	for i := range x {
		y[i] = x[i] + 1
		if noiseStd > 0 {
			y[i] += noise.Rand()
		}
	}
	return Dataset{X: x, Y: y}, nil
}
