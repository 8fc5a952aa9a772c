// Package config defines the run parameters shared by all optimizer
// variants, with built-in defaults, an optional TOML overlay, and
// fail-fast validation.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Params holds every tunable of a comparison run. Zero configuration is
// needed: Default covers the reference setup, and a TOML file can
// override any subset of fields.
type Params struct {
	SampleCount         int       `toml:"sample_count"`
	DomainRange         []float64 `toml:"domain_range"` // [min, max] for the x values
	NoiseStd            float64   `toml:"noise_std"`
	LearningRate        float64   `toml:"learning_rate"`
	MomentumCoefficient float64   `toml:"momentum_coefficient"`
	BatchSize           int       `toml:"batch_size"`
	EpochCount          int       `toml:"epoch_count"`
	RMSPropEpsilon      float64   `toml:"rmsprop_epsilon"`

	// RMSProp steps are normalized by gradient magnitude, so its stable
	// learning rate is far below LearningRate.
	RMSPropLearningRate float64 `toml:"rmsprop_learning_rate"`

	Seed uint64 `toml:"seed"`
}

// Default returns the reference configuration: 21 samples on [-1, 1]
// with Gaussian noise, eta 0.01, momentum 0.9, batch size 7, 10000
// epochs.
func Default() Params {
	return Params{
		SampleCount:         21,
		DomainRange:         []float64{-1, 1},
		NoiseStd:            0.2,
		LearningRate:        0.01,
		MomentumCoefficient: 0.9,
		BatchSize:           7,
		EpochCount:          10000,
		RMSPropEpsilon:      1e-8,
		RMSPropLearningRate: 1e-4,
		Seed:                42,
	}
}

// Load decodes the TOML file at path over the defaults and validates the
// result. Fields absent from the file keep their default values.
func Load(path string) (Params, error) {
	p := Default()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Params{}, errors.Wrapf(err, "failed to load config %s", path)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects parameter values that would produce silently incorrect
// runs.
func (p Params) Validate() error {
	if p.SampleCount < 1 {
		return errors.Errorf("sample_count %d outside allowed range [1, Inf)", p.SampleCount)
	}
	if len(p.DomainRange) != 2 {
		return errors.Errorf("domain_range must be [min, max], got %v", p.DomainRange)
	}
	if p.DomainRange[1] < p.DomainRange[0] {
		return errors.Errorf("domain_range [%v, %v] is inverted", p.DomainRange[0], p.DomainRange[1])
	}
	if p.NoiseStd < 0 {
		return errors.Errorf("noise_std %v outside allowed range [0, Inf)", p.NoiseStd)
	}
	if p.LearningRate <= 0 {
		return errors.Errorf("learning_rate %v outside allowed range (0, Inf)", p.LearningRate)
	}
	if p.MomentumCoefficient < 0 || p.MomentumCoefficient >= 1 {
		return errors.Errorf("momentum_coefficient %v outside allowed range [0, 1)", p.MomentumCoefficient)
	}
	if p.BatchSize < 1 {
		return errors.Errorf("batch_size %d outside allowed range [1, Inf)", p.BatchSize)
	}
	if p.EpochCount < 1 {
		return errors.Errorf("epoch_count %d outside allowed range [1, Inf)", p.EpochCount)
	}
	if p.RMSPropEpsilon <= 0 {
		return errors.Errorf("rmsprop_epsilon %v outside allowed range (0, Inf)", p.RMSPropEpsilon)
	}
	if p.RMSPropLearningRate <= 0 {
		return errors.Errorf("rmsprop_learning_rate %v outside allowed range (0, Inf)", p.RMSPropLearningRate)
	}
	return nil
}
