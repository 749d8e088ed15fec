package spindry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// A Potential scores a SupraMolecule by summing some pairwise
// interaction over every unordered pair of its components. Bonded,
// intra-component terms are never included. Any implementation can be
// plugged into the Spinner
type Potential interface {
	ComputePotential(s *SupraMolecule) float64
}

// lj is the Lennard-Jones shaped term used by all built-in
// potentials. It has no relation to an empirical forcefield. A zero
// distance divides by zero and yields Inf or NaN; that is the
// expected outcome for degenerate overlapping coordinates, not a
// guarded case
func lj(epsilon, sigma, distance float64) float64 {
	x := sigma / distance
	x3 := x * x * x
	x6 := x3 * x3
	return epsilon * (x6*x6 - x6)
}

// rowDistance returns the Euclidean distance between row i of a and
// row j of b
func rowDistance(a, b *mat.Dense, i, j int) float64 {
	dx := a.At(i, 0) - b.At(j, 0)
	dy := a.At(i, 1) - b.At(j, 1)
	dz := a.At(i, 2) - b.At(j, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SpdPotential is the default nonbonded potential: a single global
// epsilon, with the pairwise sigma taken as the arithmetic mean of
// the two atoms' covalent radii (Lorentz-Berthelot mixing)
type SpdPotential struct {
	nonbondEpsilon float64
}

// DefaultNonbondEpsilon is the SpdPotential strength the Spinner uses
// when no potential is supplied
const DefaultNonbondEpsilon = 5

// NewSpdPotential returns an SpdPotential with the given strength
func NewSpdPotential(nonbondEpsilon float64) SpdPotential {
	return SpdPotential{nonbondEpsilon: nonbondEpsilon}
}

// nonbond evaluates the potential term for one atom pair
func (p SpdPotential) nonbond(distance, sigma float64) float64 {
	return lj(p.nonbondEpsilon, sigma, distance)
}

// ComputePotential sums the nonbonded term over every atom pair of
// every unordered component pair
func (p SpdPotential) ComputePotential(s *SupraMolecule) float64 {
	comps := s.Components()
	positions := make([]*mat.Dense, len(comps))
	radii := make([][]float64, len(comps))
	for i, c := range comps {
		positions[i] = c.pos
		radii[i] = make([]float64, len(c.atoms))
		for j, a := range c.atoms {
			radii[i][j] = a.Radius()
		}
	}

	var pot float64
	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			for ai := range radii[i] {
				for aj := range radii[j] {
					d := rowDistance(positions[i], positions[j], ai, aj)
					sigma := (radii[i][ai] + radii[j][aj]) / 2
					pot += p.nonbond(d, sigma)
				}
			}
		}
	}
	return pot
}

// VaryingEpsilonPotential is SpdPotential with per-atom parameters:
// each atom supplies its own sigma and epsilon, mixed per pair by
// arithmetic mean and geometric mean respectively
type VaryingEpsilonPotential struct{}

// nonbond evaluates the potential term for one atom pair
func (VaryingEpsilonPotential) nonbond(distance, sigma, epsilon float64) float64 {
	return lj(epsilon, sigma, distance)
}

// ComputePotential sums the nonbonded term over every atom pair of
// every unordered component pair
func (p VaryingEpsilonPotential) ComputePotential(s *SupraMolecule) float64 {
	comps := s.Components()
	var pot float64
	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			a, b := comps[i], comps[j]
			for ai, atomA := range a.atoms {
				for aj, atomB := range b.atoms {
					d := rowDistance(a.pos, b.pos, ai, aj)
					sigma := (atomA.Sigma() + atomB.Sigma()) / 2
					epsilon := math.Sqrt(atomA.Epsilon() * atomB.Epsilon())
					pot += p.nonbond(d, sigma, epsilon)
				}
			}
		}
	}
	return pot
}

// ScaledGuestPotential is SpdPotential with the radii of every
// non-host component scaled by a constant factor before mixing. The
// host is the component with the most atoms; on a tie the first of
// the largest is taken. A scale above 1 inflates the guests, pushing
// conformers toward looser packings
type ScaledGuestPotential struct {
	guestScale     float64
	nonbondEpsilon float64
}

// NewScaledGuestPotential returns a ScaledGuestPotential with the
// given guest radius scale and strength
func NewScaledGuestPotential(guestScale, nonbondEpsilon float64) ScaledGuestPotential {
	return ScaledGuestPotential{
		guestScale:     guestScale,
		nonbondEpsilon: nonbondEpsilon,
	}
}

// ComputePotential sums the nonbonded term over every atom pair of
// every unordered component pair, with guest radii scaled
func (p ScaledGuestPotential) ComputePotential(s *SupraMolecule) float64 {
	comps := s.Components()
	host := 0
	for i, c := range comps {
		if len(c.atoms) > len(comps[host].atoms) {
			host = i
		}
	}
	radii := make([][]float64, len(comps))
	for i, c := range comps {
		radii[i] = make([]float64, len(c.atoms))
		for j, a := range c.atoms {
			radii[i][j] = a.Radius()
			if i != host {
				radii[i][j] *= p.guestScale
			}
		}
	}

	var pot float64
	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			for ai := range radii[i] {
				for aj := range radii[j] {
					d := rowDistance(comps[i].pos, comps[j].pos, ai, aj)
					sigma := (radii[i][ai] + radii[j][aj]) / 2
					pot += lj(p.nonbondEpsilon, sigma, d)
				}
			}
		}
	}
	return pot
}
