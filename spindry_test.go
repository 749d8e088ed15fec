package spindry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// newAtoms builds atoms of the given elements with ids 0..n-1
func newAtoms(t *testing.T, elements ...string) []Atom {
	t.Helper()
	atoms := make([]Atom, len(elements))
	for i, el := range elements {
		a, err := NewAtom(i, el)
		if err != nil {
			t.Fatalf("NewAtom(%d, %q): %v", i, el, err)
		}
		atoms[i] = a
	}
	return atoms
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// sixCarbons is the two-cluster fixture used across the molecule and
// supramolecule tests: two triangles of carbons, bonded 0-1-2 and
// 3-4-5
func sixCarbons(t *testing.T) ([]Atom, []Bond, *mat.Dense) {
	t.Helper()
	atoms := newAtoms(t, "C", "C", "C", "C", "C", "C")
	bonds := []Bond{
		NewBond(0, 0, 1),
		NewBond(1, 1, 2),
		NewBond(2, 3, 4),
		NewBond(3, 4, 5),
	}
	pos := mat.NewDense(6, 3, []float64{
		0, 1, 0,
		1, 1, 0,
		-1, 1, 0,
		0, 10, 0,
		1, 10, 0,
		-1, 10, 0,
	})
	return atoms, bonds, pos
}

// hostGuest is a 4-atom host square around a 2-atom guest
func hostGuest(t *testing.T) *SupraMolecule {
	t.Helper()
	host := NewMolecule(
		newAtoms(t, "C", "C", "C", "C"),
		[]Bond{NewBond(0, 0, 1), NewBond(1, 1, 2), NewBond(2, 2, 3)},
		mat.NewDense(4, 3, []float64{
			1, 1, 0,
			-1, 1, 0,
			1, -1, 0,
			-1, -1, 0,
		}),
	)
	guest := NewMolecule(
		newAtoms(t, "N", "N"),
		[]Bond{NewBond(0, 0, 1)},
		mat.NewDense(2, 3, []float64{
			0, 0.5, 0,
			0, -0.5, 0,
		}),
	)
	return InitFromComponents([]*Molecule{host, guest}, -1, math.NaN())
}
