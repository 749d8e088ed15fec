package spindry

import (
	"math"
	"sync"
)

// An Ensemble runs several independent Spinner chains over the same
// starting SupraMolecule, one goroutine per chain. Each chain gets
// its own generator seeded baseSeed+i, so chains share no state and
// the whole ensemble is reproducible. Within a chain every step
// depends on the previous accepted state, so the parallelism is
// strictly across chains
type Ensemble struct {
	stepSize         float64
	rotationStepSize float64
	numConformers    int
	numChains        int
	baseSeed         uint64
	opts             []SpinnerOption
}

// NewEnsemble returns an Ensemble of numChains chains with the given
// per-chain Spinner settings. Options are applied to every chain;
// seed options are overridden by the per-chain seed. Panics on
// numChains < 1
func NewEnsemble(stepSize, rotationStepSize float64, numConformers, numChains int, baseSeed uint64, opts ...SpinnerOption) *Ensemble {
	if numChains < 1 {
		panic("NewEnsemble: numChains < 1")
	}
	return &Ensemble{
		stepSize:         stepSize,
		rotationStepSize: rotationStepSize,
		numConformers:    numConformers,
		numChains:        numChains,
		baseSeed:         baseSeed,
		opts:             opts,
	}
}

// RunBest runs every chain to completion and returns the final
// conformer with the lowest potential across the ensemble
func (e *Ensemble) RunBest(sm *SupraMolecule, movable ...int) *SupraMolecule {
	finals := make([]*SupraMolecule, e.numChains)
	var wg sync.WaitGroup
	for i := 0; i < e.numChains; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			opts := append([]SpinnerOption{}, e.opts...)
			opts = append(opts, WithSeed(e.baseSeed+uint64(i)))
			spinner := NewSpinner(e.stepSize, e.rotationStepSize, e.numConformers, opts...)
			finals[i] = spinner.GetFinalConformer(sm, movable...)
		}(i)
	}
	wg.Wait()

	best := finals[0]
	for _, f := range finals[1:] {
		if f.Potential() < best.Potential() || math.IsNaN(best.Potential()) {
			best = f
		}
	}
	return best
}
