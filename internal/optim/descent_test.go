package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/regression"
)

// exactLine returns a noise-free dataset satisfying y = x + 1 exactly.
func exactLine(t *testing.T, n int) dataset.Dataset {
	t.Helper()
	d, err := dataset.Generate(n, -1, 1, 0, rand.NewSource(1))
	require.NoError(t, err)
	return d
}

func noisyLine(t *testing.T) dataset.Dataset {
	t.Helper()
	d, err := dataset.Generate(21, -1, 1, 0.2, rand.NewSource(42))
	require.NoError(t, err)
	return d
}

func newSGD(t *testing.T, cfg optim.SGDConfig) *optim.SGD {
	t.Helper()
	opt, err := optim.NewSGD(cfg)
	require.NoError(t, err)
	return opt
}

func TestBatch_ConvergesOnExactLine(t *testing.T) {
	d := exactLine(t, 21)

	traj, err := optim.Batch(d, newSGD(t, optim.SGDConfig{LR: 0.01}), 2000)
	require.NoError(t, err)

	w := traj.Final()
	assert.InDelta(t, 1.0, w[0], 1e-6, "intercept")
	assert.InDelta(t, 1.0, w[1], 1e-6, "slope")
	assert.Less(t, regression.Loss(d, nil, w), 1e-10)
}

func TestRuns_StartFromZeroWeights(t *testing.T) {
	d := noisyLine(t)

	batch, err := optim.Batch(d, newSGD(t, optim.SGDConfig{LR: 0.01}), 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, batch.At(0))

	res, err := optim.PerSample(d, newSGD(t, optim.SGDConfig{LR: 0.01}), 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, res.Steps.At(0))
	assert.Equal(t, []float64{0, 0}, res.Epochs.At(0))
}

func TestPerSample_TrajectoryLengths(t *testing.T) {
	const epochs = 12
	d := noisyLine(t)

	res, err := optim.PerSample(d, newSGD(t, optim.SGDConfig{LR: 0.01}), epochs, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, epochs*d.Len()+1, res.Steps.Len())
	assert.Equal(t, epochs+1, res.Epochs.Len())
}

func TestMiniBatch_TrailingChunk(t *testing.T) {
	const epochs = 4
	d := noisyLine(t) // 21 samples

	// 21 = 3 chunks of 7; 21 with batch 8 = 8+8+5, still 3 updates.
	for _, batchSize := range []int{7, 8} {
		res, err := optim.MiniBatch(d, newSGD(t, optim.SGDConfig{LR: 0.01}), batchSize, epochs, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.Equal(t, epochs*3+1, res.Steps.Len(), "batch size %d", batchSize)
		assert.Equal(t, epochs+1, res.Epochs.Len(), "batch size %d", batchSize)
	}
}

// Mini-batch with the batch size equal to the dataset size must take the
// same updates as plain batch descent, up to summation order.
func TestMiniBatch_FullSizeMatchesBatch(t *testing.T) {
	const epochs = 100
	d := noisyLine(t)

	batch, err := optim.Batch(d, newSGD(t, optim.SGDConfig{LR: 0.01}), epochs)
	require.NoError(t, err)

	res, err := optim.MiniBatch(d, newSGD(t, optim.SGDConfig{LR: 0.01}), d.Len(), epochs, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	for e := 0; e <= epochs; e++ {
		assert.InDelta(t, batch.At(e)[0], res.Epochs.At(e)[0], 1e-9, "epoch %d intercept", e)
		assert.InDelta(t, batch.At(e)[1], res.Epochs.At(e)[1], 1e-9, "epoch %d slope", e)
	}
}

// Mini-batch with batch size 1 is the stochastic schedule.
func TestMiniBatch_SizeOneMatchesPerSample(t *testing.T) {
	const epochs = 20
	d := noisyLine(t)

	ps, err := optim.PerSample(d, newSGD(t, optim.SGDConfig{LR: 0.01}), epochs, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	mb, err := optim.MiniBatch(d, newSGD(t, optim.SGDConfig{LR: 0.01}), 1, epochs, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	require.Equal(t, ps.Steps.Len(), mb.Steps.Len())
	for i := 0; i < ps.Steps.Len(); i++ {
		assert.Equal(t, ps.Steps.At(i), mb.Steps.At(i), "step %d", i)
	}
}

func TestPerSample_Deterministic(t *testing.T) {
	const epochs = 50
	d := noisyLine(t)

	run := func() [][]float64 {
		res, err := optim.PerSample(d, newSGD(t, optim.SGDConfig{LR: 0.01, Momentum: 0.9}), epochs, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		out := make([][]float64, res.Steps.Len())
		for i := range out {
			out[i] = res.Steps.At(i)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestBatch_LossDecreases(t *testing.T) {
	d := noisyLine(t)

	traj, err := optim.Batch(d, newSGD(t, optim.SGDConfig{LR: 0.01}), 50)
	require.NoError(t, err)

	losses := make([]float64, traj.Len())
	for i := range losses {
		losses[i] = regression.Loss(d, nil, traj.At(i))
	}
	assert.IsNonIncreasing(t, losses)
	assert.Less(t, losses[len(losses)-1], losses[0])
}

func TestRuns_RejectBadArguments(t *testing.T) {
	d := noisyLine(t)
	opt := newSGD(t, optim.SGDConfig{LR: 0.01})
	rng := rand.New(rand.NewSource(1))

	_, err := optim.Batch(dataset.Dataset{}, opt, 10)
	assert.Error(t, err)

	_, err = optim.Batch(d, opt, 0)
	assert.Error(t, err)

	_, err = optim.MiniBatch(d, opt, 0, 10, rng)
	assert.Error(t, err)
}
