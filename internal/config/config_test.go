package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())

	assert.Equal(t, 21, p.SampleCount)
	assert.Equal(t, []float64{-1, 1}, p.DomainRange)
	assert.Equal(t, 0.01, p.LearningRate)
	assert.Equal(t, 0.9, p.MomentumCoefficient)
	assert.Equal(t, 7, p.BatchSize)
	assert.Equal(t, 10000, p.EpochCount)
	assert.Equal(t, 1e-8, p.RMSPropEpsilon)
	assert.Equal(t, 1e-4, p.RMSPropLearningRate)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
epoch_count = 5
learning_rate = 0.5
domain_range = [0.0, 2.0]
seed = 7
`), 0o600))

	p, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, p.EpochCount)
	assert.Equal(t, 0.5, p.LearningRate)
	assert.Equal(t, []float64{0, 2}, p.DomainRange)
	assert.Equal(t, uint64(7), p.Seed)

	// Untouched fields keep their defaults.
	assert.Equal(t, 21, p.SampleCount)
	assert.Equal(t, 7, p.BatchSize)
	assert.Equal(t, 0.9, p.MomentumCoefficient)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size = 0\n"), 0o600))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Params)
	}{
		{"zero samples", func(p *config.Params) { p.SampleCount = 0 }},
		{"short domain", func(p *config.Params) { p.DomainRange = []float64{0} }},
		{"inverted domain", func(p *config.Params) { p.DomainRange = []float64{1, -1} }},
		{"negative noise", func(p *config.Params) { p.NoiseStd = -0.1 }},
		{"zero lr", func(p *config.Params) { p.LearningRate = 0 }},
		{"momentum one", func(p *config.Params) { p.MomentumCoefficient = 1 }},
		{"zero batch", func(p *config.Params) { p.BatchSize = 0 }},
		{"zero epochs", func(p *config.Params) { p.EpochCount = 0 }},
		{"zero eps", func(p *config.Params) { p.RMSPropEpsilon = 0 }},
		{"zero rmsprop lr", func(p *config.Params) { p.RMSPropLearningRate = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := config.Default()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
