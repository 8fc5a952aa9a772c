// Copyright 2026 Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for the gradient descent variants.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - RMSProp: squared-gradient-normalized descent
//   - Batch, PerSample, MiniBatch: epoch schedules producing trajectories
//
// # Basic Usage
//
//	import (
//	    "golang.org/x/exp/rand"
//
//	    "github.com/descent-ml/descent/dataset"
//	    "github.com/descent-ml/descent/optim"
//	)
//
//	func main() {
//	    d, _ := dataset.Generate(21, -1, 1, 0.2, rand.NewSource(42))
//
//	    sgd, _ := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	    traj, _ := optim.Batch(d, sgd, 10000)
//
//	    fmt.Println(traj.Final()) // ≈ [1, 1]
//	}
//
// # Variants
//
// Stochastic descent (one sample per update, fresh permutation per epoch):
//
//	sgd, _ := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	res, _ := optim.PerSample(d, sgd, 1000, rand.New(rand.NewSource(1)))
//
// Momentum (same schedule, smoothed updates):
//
//	mom, _ := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	res, _ := optim.PerSample(d, mom, 1000, rand.New(rand.NewSource(2)))
//
// RMSProp (note the much smaller stable learning rate):
//
//	rms, _ := optim.NewRMSProp(optim.RMSPropConfig{LR: 1e-4})
//	res, _ := optim.PerSample(d, rms, 1000, rand.New(rand.NewSource(3)))
//
// Mini-batch (chunked permutation, trailing short chunk included):
//
//	sgd, _ := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	res, _ := optim.MiniBatch(d, sgd, 7, 1000, rand.New(rand.NewSource(4)))
//
// Every run starts from the zero weight vector and records a snapshot
// after each update; per-sample and mini-batch runs additionally record
// an epoch-granularity trajectory.
package optim
