package spindry

import (
	"testing"
)

func TestLoadConfig(t *testing.T) {
	conf, err := LoadConfig("testfiles/spinner.toml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{
		Spinner: SpinnerConfig{
			StepSize:         0.5,
			RotationStepSize: 5,
			NumConformers:    50,
			MaxAttempts:      500,
			Beta:             2,
			RandomSeed:       1000,
			NonbondEpsilon:   5,
			Verbose:          true,
		},
	}
	if *conf != want {
		t.Errorf("got %+v, wanted %+v", *conf, want)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("testfiles/spinner_minimal.toml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	s := conf.Spinner
	if s.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("got max_attempts %d, wanted %d", s.MaxAttempts, DefaultMaxAttempts)
	}
	if s.Beta != DefaultBeta {
		t.Errorf("got beta %v, wanted %v", s.Beta, DefaultBeta)
	}
	if s.RandomSeed != DefaultSeed {
		t.Errorf("got random_seed %d, wanted %d", s.RandomSeed, DefaultSeed)
	}
	if s.NonbondEpsilon != DefaultNonbondEpsilon {
		t.Errorf("got nonbond_epsilon %v, wanted %v",
			s.NonbondEpsilon, DefaultNonbondEpsilon)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	if _, err := LoadConfig("testfiles/spinner_bad.toml"); err == nil {
		t.Error("wanted an error for negative step_size")
	}
	if _, err := LoadConfig("testfiles/does_not_exist.toml"); err == nil {
		t.Error("wanted an error for a missing file")
	}
}

func TestConfigNewSpinner(t *testing.T) {
	conf, err := LoadConfig("testfiles/spinner.toml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	spinner := conf.NewSpinner()
	// The configured chain behaves like one built by hand with the
	// same parameters.
	byHand := NewSpinner(0.5, 5, 50,
		WithMaxAttempts(500),
		WithBeta(2),
		WithPotential(NewSpdPotential(5)),
		WithSeed(1000),
	)
	sm := twoAtomChain(t)
	a := spinner.GetFinalConformer(sm)
	b := byHand.GetFinalConformer(sm)
	if a.Potential() != b.Potential() {
		t.Errorf("got potential %v, wanted %v", a.Potential(), b.Potential())
	}
}
