package optim

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	w = w - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + (1 - momentum) * gradient
//	w = w - lr * velocity
//
// With Momentum == 0 the velocity rule reduces exactly to the plain
// update, so one type serves the batch, stochastic, mini-batch, and
// momentum variants.
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum coefficient (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer. Invalid hyperparameters are
// rejected up front rather than producing silently wrong trajectories.
func NewSGD(config SGDConfig) (*SGD, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.LR < 0 {
		return nil, errors.Errorf("learning rate %v outside allowed range (0, Inf)", config.LR)
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, errors.Errorf("momentum %v outside allowed range [0, 1)", config.Momentum)
	}
	return &SGD{lr: config.LR, momentum: config.Momentum}, nil
}

// Step applies one update to w given the gradient.
func (s *SGD) Step(w, grad []float64) {
	if s.momentum == 0 {
		floats.AddScaled(w, -s.lr, grad)
		return
	}
	if s.velocity == nil {
		s.velocity = make([]float64, len(w))
	}
	for i := range s.velocity {
		s.velocity[i] = s.momentum*s.velocity[i] + (1-s.momentum)*grad[i]
	}
	floats.AddScaled(w, -s.lr, s.velocity)
}
