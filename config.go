package spindry

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// SpinnerConfig holds the sampling parameters of the [spinner] table.
// Fields left out of the file keep the Spinner defaults
type SpinnerConfig struct {
	StepSize         float64 `toml:"step_size"`
	RotationStepSize float64 `toml:"rotation_step_size"`
	NumConformers    int     `toml:"num_conformers"`
	MaxAttempts      int     `toml:"max_attempts"`
	Beta             float64 `toml:"beta"`
	RandomSeed       int64   `toml:"random_seed"`
	SystemSeed       bool    `toml:"system_seed"`
	NonbondEpsilon   float64 `toml:"nonbond_epsilon"`
	Verbose          bool    `toml:"verbose"`
}

// Config is the TOML run-configuration file. This structure is
// instanced through LoadConfig
type Config struct {
	Spinner SpinnerConfig `toml:"spinner"`
}

// LoadConfig reads and validates the TOML configuration file at
// path. The file must set step_size, rotation_step_size, and
// num_conformers; everything else is optional
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := Config{
		Spinner: SpinnerConfig{
			MaxAttempts:    DefaultMaxAttempts,
			Beta:           DefaultBeta,
			RandomSeed:     DefaultSeed,
			NonbondEpsilon: DefaultNonbondEpsilon,
		},
	}
	if err := toml.NewDecoder(f).Decode(&conf); err != nil {
		return nil, err
	}

	s := conf.Spinner
	switch {
	case s.StepSize <= 0:
		return nil, fmt.Errorf("LoadConfig: step_size %v, want > 0", s.StepSize)
	case s.RotationStepSize <= 0:
		return nil, fmt.Errorf(
			"LoadConfig: rotation_step_size %v, want > 0", s.RotationStepSize,
		)
	case s.NumConformers < 1:
		return nil, fmt.Errorf(
			"LoadConfig: num_conformers %d, want >= 1", s.NumConformers,
		)
	case s.MaxAttempts < 1:
		return nil, fmt.Errorf("LoadConfig: max_attempts %d, want >= 1", s.MaxAttempts)
	case s.RandomSeed < 0:
		return nil, fmt.Errorf("LoadConfig: random_seed %d, want >= 0", s.RandomSeed)
	case s.NonbondEpsilon < 0:
		return nil, fmt.Errorf(
			"LoadConfig: nonbond_epsilon %v, want >= 0", s.NonbondEpsilon,
		)
	}
	return &conf, nil
}

// NewSpinner builds the Spinner described by the configuration
func (c *Config) NewSpinner() *Spinner {
	s := c.Spinner
	opts := []SpinnerOption{
		WithMaxAttempts(s.MaxAttempts),
		WithBeta(s.Beta),
		WithPotential(NewSpdPotential(s.NonbondEpsilon)),
	}
	if s.SystemSeed {
		opts = append(opts, WithSystemSeed())
	} else {
		opts = append(opts, WithSeed(uint64(s.RandomSeed)))
	}
	if s.Verbose {
		opts = append(opts, WithVerbose())
	}
	return NewSpinner(s.StepSize, s.RotationStepSize, s.NumConformers, opts...)
}
