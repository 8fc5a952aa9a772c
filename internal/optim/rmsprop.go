package optim

import (
	"math"

	"github.com/pkg/errors"
)

// RMSProp normalizes each update by a running average of squared
// gradients.
//
// Update rule, element-wise:
//
//	avgSq = decay * avgSq + (1 - decay) * gradient²
//	w     = w - lr * gradient / (sqrt(avgSq) + eps)
//
// The eps term is the sole guard against division by zero and is part of
// the update rule, not an incidental safeguard. Because steps are
// normalized by gradient magnitude, the stable learning rate is much
// smaller than for the other variants (1e-4 vs 1e-2 in the reference
// configuration).
type RMSProp struct {
	lr    float64
	decay float64
	eps   float64
	avgSq []float64
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig struct {
	LR    float64 // Learning rate (default: 1e-4)
	Decay float64 // Squared-gradient averaging coefficient (default: 0.9, range: [0, 1))
	Eps   float64 // Term preventing division by zero (default: 1e-8)
}

// NewRMSProp creates a new RMSProp optimizer with defaults filled in for
// zero-valued fields.
func NewRMSProp(config RMSPropConfig) (*RMSProp, error) {
	if config.LR == 0 {
		config.LR = 1e-4
	}
	if config.Decay == 0 {
		config.Decay = 0.9
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	if config.LR < 0 {
		return nil, errors.Errorf("learning rate %v outside allowed range (0, Inf)", config.LR)
	}
	if config.Decay < 0 || config.Decay >= 1 {
		return nil, errors.Errorf("decay %v outside allowed range [0, 1)", config.Decay)
	}
	if config.Eps < 0 {
		return nil, errors.Errorf("eps %v outside allowed range (0, Inf)", config.Eps)
	}
	return &RMSProp{lr: config.LR, decay: config.Decay, eps: config.Eps}, nil
}

// Step applies one update to w given the gradient.
func (r *RMSProp) Step(w, grad []float64) {
	if r.avgSq == nil {
		r.avgSq = make([]float64, len(w))
	}
	for i := range w {
		g := grad[i]
		r.avgSq[i] = r.decay*r.avgSq[i] + (1-r.decay)*g*g
		w[i] -= r.lr * g / (math.Sqrt(r.avgSq[i]) + r.eps)
	}
}
