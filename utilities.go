package spindry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AtomDistance returns the Euclidean distance between the atoms with
// ids id1 and id2. Panics when either id is not in the molecule
func AtomDistance(m *Molecule, id1, id2 int) float64 {
	i, ok := m.rowOf(id1)
	if !ok {
		panic(fmt.Sprintf("AtomDistance: no atom with id %d", id1))
	}
	j, ok := m.rowOf(id2)
	if !ok {
		panic(fmt.Sprintf("AtomDistance: no atom with id %d", id2))
	}
	return r3.Norm(r3.Sub(m.position(i), m.position(j)))
}

// MinComponentDistance returns the smallest inter-atomic distance
// between any two components of s, or +Inf when s has fewer than two
// components
func MinComponentDistance(s *SupraMolecule) float64 {
	comps := s.Components()
	min := math.Inf(1)
	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			a, b := comps[i], comps[j]
			for ai := range a.atoms {
				for aj := range b.atoms {
					if d := rowDistance(a.pos, b.pos, ai, aj); d < min {
						min = d
					}
				}
			}
		}
	}
	return min
}

// CentroidDistance returns the distance between the centroids of the
// two components of a 1:1 host-guest complex. Any other component
// count is an error wrapping ErrComponentCount
func CentroidDistance(s *SupraMolecule) (float64, error) {
	comps := s.Components()
	if len(comps) != 2 {
		return 0, fmt.Errorf(
			"CentroidDistance: have %d components, want 2: %w",
			len(comps), ErrComponentCount,
		)
	}
	return r3.Norm(r3.Sub(comps[0].Centroid(), comps[1].Centroid())), nil
}
