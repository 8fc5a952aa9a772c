package optim

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/regression"
	"github.com/descent-ml/descent/internal/trajectory"
)

// Result holds the trajectories of one per-sample or mini-batch run.
type Result struct {
	// Steps records the weight vector after every single update, with the
	// initial vector as its first element.
	Steps *trajectory.Trajectory
	// Epochs records the weight vector at the start of every epoch, plus
	// once more after the final epoch.
	Epochs *trajectory.Trajectory
}

// Batch runs full-dataset gradient descent for the given number of
// epochs. Each epoch computes the gradient over the entire dataset and
// applies one step. There is no convergence check; the epoch count is the
// only terminal condition.
func Batch(d dataset.Dataset, opt Optimizer, epochs int) (*trajectory.Trajectory, error) {
	if err := checkRun(d, epochs); err != nil {
		return nil, err
	}

	w := regression.Init()
	grad := make([]float64, regression.Dim)
	traj := trajectory.New(epochs + 1)
	traj.Record(w)
	for e := 0; e < epochs; e++ {
		regression.Gradient(d, nil, w, grad)
		opt.Step(w, grad)
		traj.Record(w)
	}
	return traj, nil
}

// PerSample runs one-sample-at-a-time descent: each epoch visits every
// sample exactly once in a fresh uniformly random order, applying one
// update per sample. The permutation is re-drawn independently every
// epoch. Plugging in SGD with momentum or RMSProp yields the momentum and
// RMSprop variants; the schedule is identical.
func PerSample(d dataset.Dataset, opt Optimizer, epochs int, rng *rand.Rand) (Result, error) {
	return MiniBatch(d, opt, 1, epochs, rng)
}

// MiniBatch partitions a random permutation of the sample indices into
// consecutive chunks of batchSize and applies one update per chunk. The
// trailing chunk of an epoch may be smaller when the dataset size is not
// a multiple of batchSize; it is still processed as a single update.
// batchSize == 1 degenerates to PerSample and batchSize == Len() to
// Batch.
func MiniBatch(d dataset.Dataset, opt Optimizer, batchSize, epochs int, rng *rand.Rand) (Result, error) {
	if err := checkRun(d, epochs); err != nil {
		return Result{}, err
	}
	if batchSize < 1 {
		return Result{}, errors.Errorf("batch size %d outside allowed range [1, Inf)", batchSize)
	}

	n := d.Len()
	updatesPerEpoch := (n + batchSize - 1) / batchSize
	w := regression.Init()
	grad := make([]float64, regression.Dim)
	res := Result{
		Steps:  trajectory.New(epochs*updatesPerEpoch + 1),
		Epochs: trajectory.New(epochs + 1),
	}
	res.Steps.Record(w)
	for e := 0; e < epochs; e++ {
		res.Epochs.Record(w)
		for _, batch := range batches(n, batchSize, rng) {
			regression.Gradient(d, batch, w, grad)
			opt.Step(w, grad)
			res.Steps.Record(w)
		}
	}
	res.Epochs.Record(w)
	return res, nil
}

// batches returns a fresh random permutation of [0, n) split into
// consecutive index slices of at most size elements.
func batches(n, size int, rng *rand.Rand) [][]int {
	perm := rng.Perm(n)
	out := make([][]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, perm[lo:hi])
	}
	return out
}

func checkRun(d dataset.Dataset, epochs int) error {
	if d.Len() < 1 {
		return errors.New("dataset is empty")
	}
	if epochs < 1 {
		return errors.Errorf("epoch count %d outside allowed range [1, Inf)", epochs)
	}
	return nil
}
