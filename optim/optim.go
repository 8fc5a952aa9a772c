// Copyright 2026 Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"golang.org/x/exp/rand"

	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/trajectory"
)

// Optimizer applies one gradient update to the weight vector, in place.
type Optimizer = optim.Optimizer

// Result holds the trajectories of one per-sample or mini-batch run.
type Result = optim.Result

// SGD implements gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}

// RMSProp normalizes each update by a running average of squared
// gradients.
type RMSProp = optim.RMSProp

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp(config RMSPropConfig) (*RMSProp, error) {
	return optim.NewRMSProp(config)
}

// Batch runs full-dataset gradient descent for the given number of
// epochs, recording the weight vector after every epoch.
func Batch(d dataset.Dataset, opt Optimizer, epochs int) (*trajectory.Trajectory, error) {
	return optim.Batch(d, opt, epochs)
}

// PerSample runs one-sample-at-a-time descent with a fresh random
// permutation of the samples every epoch.
func PerSample(d dataset.Dataset, opt Optimizer, epochs int, rng *rand.Rand) (Result, error) {
	return optim.PerSample(d, opt, epochs, rng)
}

// MiniBatch runs descent over consecutive chunks of a per-epoch random
// permutation, batchSize samples per update.
func MiniBatch(d dataset.Dataset, opt Optimizer, batchSize, epochs int, rng *rand.Rand) (Result, error) {
	return optim.MiniBatch(d, opt, batchSize, epochs, rng)
}
