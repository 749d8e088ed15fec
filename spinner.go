package spindry

import (
	"log"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
)

// Spinner defaults
const (
	DefaultMaxAttempts = 1000
	DefaultBeta        = 2.0
	DefaultSeed        = 1000
)

// A Spinner runs a Metropolis Monte Carlo random walk over rigid
// translations and rotations of one component at a time, producing a
// sequence of accepted SupraMolecule conformers. Each Spinner owns
// its random generator, so independent Spinners with distinct seeds
// form independent, reproducible chains
type Spinner struct {
	stepSize         float64
	rotationStepSize float64
	numConformers    int
	maxAttempts      int
	potential        Potential
	beta             float64
	rng              *rand.Rand
	verbose          bool
}

// A SpinnerOption adjusts a Spinner before its first step
type SpinnerOption func(*Spinner)

// WithMaxAttempts caps the total number of MC proposals per chain.
// Panics on n < 1
func WithMaxAttempts(n int) SpinnerOption {
	if n < 1 {
		panic("WithMaxAttempts: n < 1")
	}
	return func(s *Spinner) { s.maxAttempts = n }
}

// WithBeta sets the inverse-temperature analogue used in the
// acceptance test
func WithBeta(beta float64) SpinnerOption {
	return func(s *Spinner) { s.beta = beta }
}

// WithPotential replaces the default SpdPotential. Panics on nil
func WithPotential(p Potential) SpinnerOption {
	if p == nil {
		panic("WithPotential: nil potential")
	}
	return func(s *Spinner) { s.potential = p }
}

// WithSeed seeds the Spinner's generator for a reproducible chain
func WithSeed(seed uint64) SpinnerOption {
	return func(s *Spinner) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithSystemSeed seeds the generator from the clock, giving a
// non-reproducible chain
func WithSystemSeed() SpinnerOption {
	return func(s *Spinner) {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
}

// WithRand hands the Spinner an explicit generator. Panics on nil
func WithRand(rng *rand.Rand) SpinnerOption {
	if rng == nil {
		panic("WithRand: nil generator")
	}
	return func(s *Spinner) { s.rng = rng }
}

// WithVerbose makes the chain log a summary when it finishes
func WithVerbose() SpinnerOption {
	return func(s *Spinner) { s.verbose = true }
}

// NewSpinner returns a Spinner taking translation steps of up to
// stepSize and rotation steps of up to rotationStepSize radians,
// stopping after numConformers acceptances. Without options it uses
// SpdPotential with the default strength, beta 2, at most 1000
// attempts, and a fixed seed of 1000
func NewSpinner(stepSize, rotationStepSize float64, numConformers int, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		stepSize:         stepSize,
		rotationStepSize: rotationStepSize,
		numConformers:    numConformers,
		maxAttempts:      DefaultMaxAttempts,
		potential:        NewSpdPotential(DefaultNonbondEpsilon),
		beta:             DefaultBeta,
		rng:              rand.New(rand.NewSource(DefaultSeed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ComputePotential evaluates the Spinner's configured potential
func (s *Spinner) ComputePotential(sm *SupraMolecule) float64 {
	return s.potential.ComputePotential(sm)
}

// randVec draws three uniforms in [0, 1)
func (s *Spinner) randVec() r3.Vec {
	return r3.Vec{X: s.rng.Float64(), Y: s.rng.Float64(), Z: s.rng.Float64()}
}

// randScalar draws a uniform in [-1, 1)
func (s *Spinner) randScalar() float64 {
	return (s.rng.Float64() - 0.5) * 2
}

// movableComponents resolves which component indices may move: the
// explicit list when given, otherwise every component except those of
// maximal atom count, or all of them when every component is the same
// size
func movableComponents(comps []*Molecule, explicit []int) []int {
	if len(explicit) > 0 {
		return explicit
	}
	maxSize, uniform := len(comps[0].atoms), true
	for _, c := range comps[1:] {
		if len(c.atoms) != maxSize {
			uniform = false
		}
		if len(c.atoms) > maxSize {
			maxSize = len(c.atoms)
		}
	}
	movable := make([]int, 0, len(comps))
	for i, c := range comps {
		if uniform || len(c.atoms) != maxSize {
			movable = append(movable, i)
		}
	}
	return movable
}

// runStep proposes one rigid move: pick a movable component, translate
// it along a random direction by a random fraction of the step size,
// rotate it about its centroid by a random fraction of the rotation
// step size, and reassemble. Draw order is fixed so chains are
// reproducible under a seed
func (s *Spinner) runStep(sm *SupraMolecule, movable []int) (*SupraMolecule, float64) {
	comps := sm.Components()
	targets := movableComponents(comps, movable)
	target := targets[s.rng.Intn(len(targets))]
	comp := comps[target]

	scalar := s.randScalar()
	dir := s.randVec()
	dir = r3.Scale(1/r3.Norm(dir), dir)
	comp = comp.WithDisplacement(r3.Scale(s.stepSize*scalar, dir))

	angle := s.rotationStepSize * s.randScalar()
	axis := s.randVec()
	comp = comp.Rotated(angle, axis, comp.Centroid())

	comps[target] = comp
	moved := InitFromComponents(comps, -1, math.NaN())
	return moved, s.ComputePotential(moved)
}

// testMove applies the Metropolis criterion: downhill moves always
// pass, uphill moves pass when exp(-beta*delta) beats a fresh uniform
// draw. An Inf or NaN proposal never beats a finite current state
func (s *Spinner) testMove(currPot, newPot float64) bool {
	if newPot < currPot {
		return true
	}
	return math.Exp(-s.beta*(newPot-currPot)) > s.rng.Float64()
}

// Conformers is a single-pass iterator over the accepted conformers
// of one chain, in the bufio.Scanner style:
//
//	confs := spinner.Conformers(sm)
//	for confs.Next() {
//		use(confs.Conformer())
//	}
type Conformers struct {
	spinner  *Spinner
	movable  []int
	current  *SupraMolecule
	pot      float64
	cid      int
	attempts int
	accepted int
	started  bool
	done     bool
}

// Conformers starts a chain from sm. The optional movable arguments
// fix which component indices may move; without them the largest
// component is held stationary as the host whenever component sizes
// differ. The first Next yields sm itself as conformer 0,
// unconditionally
func (s *Spinner) Conformers(sm *SupraMolecule, movable ...int) *Conformers {
	return &Conformers{
		spinner: s,
		movable: movable,
		current: InitFromComponents(sm.Components(), 0, math.NaN()),
	}
}

// Next advances the chain to the next accepted conformer, reporting
// whether one was produced before the conformer and attempt budgets
// ran out
func (c *Conformers) Next() bool {
	if c.done {
		return false
	}
	s := c.spinner
	if !c.started {
		c.started = true
		c.pot = s.ComputePotential(c.current)
		c.current = InitFromComponents(c.current.Components(), 0, c.pot)
		if s.numConformers < 1 {
			c.done = true
		}
		return true
	}
	for c.attempts < s.maxAttempts-1 {
		c.attempts++
		proposal, newPot := s.runStep(c.current, c.movable)
		if !s.testMove(c.pot, newPot) {
			continue
		}
		c.cid++
		c.accepted++
		c.pot = newPot
		c.current = InitFromComponents(proposal.Components(), c.cid, newPot)
		if c.accepted == s.numConformers {
			c.finish()
		}
		return true
	}
	c.finish()
	return false
}

// Conformer returns the conformer produced by the last successful
// Next
func (c *Conformers) Conformer() *SupraMolecule { return c.current }

func (c *Conformers) finish() {
	c.done = true
	if c.spinner.verbose {
		log.Printf("%d conformers generated in %d steps", c.accepted, c.attempts)
	}
}

// GetFinalConformer drains the chain and returns the last accepted
// conformer, or conformer 0 when nothing beyond it is accepted
func (s *Spinner) GetFinalConformer(sm *SupraMolecule, movable ...int) *SupraMolecule {
	confs := s.Conformers(sm, movable...)
	var last *SupraMolecule
	for confs.Next() {
		last = confs.Conformer()
	}
	return last
}
