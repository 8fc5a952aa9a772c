// Package regression holds the univariate linear model and its
// sum-of-squared-error loss and analytic gradient. Every optimizer variant
// shares these primitives; they are side-effect free and work over any
// subset of the dataset.
package regression

import (
	"github.com/descent-ml/descent/internal/dataset"
)

// Dim is the size of the weight vector: intercept followed by slope.
const Dim = 2

// Init returns the zero weight vector every run starts from.
func Init() []float64 {
	return make([]float64, Dim)
}

// Predict evaluates the model w0 + w1*x.
func Predict(w []float64, x float64) float64 {
	return w[0] + w[1]*x
}

// Loss computes 1/2 * sum((y_i - w0 - w1*x_i)^2) over the samples selected
// by idx. A nil idx selects the full dataset.
func Loss(d dataset.Dataset, idx []int, w []float64) float64 {
	sum := 0.0
	if idx == nil {
		for i := range d.X {
			r := d.Y[i] - Predict(w, d.X[i])
			sum += r * r
		}
	} else {
		for _, i := range idx {
			r := d.Y[i] - Predict(w, d.X[i])
			sum += r * r
		}
	}
	return sum / 2
}

// Gradient writes the partial derivatives of Loss with respect to
// (w0, w1) into dst:
//
//	dL/dw0 = -sum(y_i - w0 - w1*x_i)
//	dL/dw1 = -sum((y_i - w0 - w1*x_i) * x_i)
//
// A nil idx selects the full dataset; a single-element idx degenerates to
// the one-sample stochastic gradient. dst is overwritten, so callers can
// reuse one buffer across steps.
func Gradient(d dataset.Dataset, idx []int, w, dst []float64) {
	dst[0], dst[1] = 0, 0
	if idx == nil {
		for i := range d.X {
			r := d.Y[i] - Predict(w, d.X[i])
			dst[0] -= r
			dst[1] -= r * d.X[i]
		}
		return
	}
	for _, i := range idx {
		r := d.Y[i] - Predict(w, d.X[i])
		dst[0] -= r
		dst[1] -= r * d.X[i]
	}
}
