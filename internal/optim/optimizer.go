// Package optim implements the gradient descent update rules and the
// epoch schedules that drive them over the dataset.
//
// Update rules (SGD with optional momentum, RMSProp) apply one in-place
// step to the weight vector. Schedules (Batch, PerSample, MiniBatch)
// decide which sample subset feeds each gradient computation and record
// the weight vector after every step.
package optim

// Optimizer applies one gradient update to the weight vector, in place.
//
// Optimizers carry their own accumulator state (momentum velocity,
// squared-gradient average), zero-initialized at construction, so a fresh
// instance is needed per run.
type Optimizer interface {
	Step(w, grad []float64)
}
