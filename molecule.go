package spindry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// A Molecule is an immutable collection of atoms, bonds between them,
// and one position per atom. Row i of the position matrix holds the
// coordinates of the i-th stored atom. Transforms never mutate in
// place; they return new Molecules sharing the atom and bond slices
type Molecule struct {
	atoms []Atom
	bonds []Bond
	pos   *mat.Dense // n x 3
}

// NewMolecule returns a Molecule over the given atoms, bonds, and
// position matrix. The matrix must be n x 3 with one row per atom in
// stored order; a shape mismatch is a programming error and panics
func NewMolecule(atoms []Atom, bonds []Bond, positions *mat.Dense) *Molecule {
	r, c := positions.Dims()
	if r != len(atoms) || c != 3 {
		panic(fmt.Sprintf(
			"NewMolecule: position matrix is %dx%d for %d atoms", r, c, len(atoms),
		))
	}
	m := &Molecule{
		atoms: make([]Atom, len(atoms)),
		bonds: make([]Bond, len(bonds)),
	}
	copy(m.atoms, atoms)
	copy(m.bonds, bonds)
	m.pos = mat.DenseCopyOf(positions)
	return m
}

// NumAtoms returns the number of atoms
func (m *Molecule) NumAtoms() int { return len(m.atoms) }

// Atoms returns the atoms in stored order
func (m *Molecule) Atoms() []Atom {
	atoms := make([]Atom, len(m.atoms))
	copy(atoms, m.atoms)
	return atoms
}

// Bonds returns the bonds in stored order
func (m *Molecule) Bonds() []Bond {
	bonds := make([]Bond, len(m.bonds))
	copy(bonds, m.bonds)
	return bonds
}

// PositionMatrix returns a copy of the n x 3 coordinate matrix
func (m *Molecule) PositionMatrix() *mat.Dense {
	return mat.DenseCopyOf(m.pos)
}

// rowOf maps an atom id to its row in the position matrix
func (m *Molecule) rowOf(id int) (int, bool) {
	for i, a := range m.atoms {
		if a.id == id {
			return i, true
		}
	}
	return 0, false
}

// position returns the coordinates stored in row i
func (m *Molecule) position(i int) r3.Vec {
	return r3.Vec{X: m.pos.At(i, 0), Y: m.pos.At(i, 1), Z: m.pos.At(i, 2)}
}

// WithPositionMatrix returns a clone of m with the given coordinates.
// The matrix must have the same shape as the current one; a mismatch
// is a programming error and panics
func (m *Molecule) WithPositionMatrix(positions *mat.Dense) *Molecule {
	n := &Molecule{atoms: m.atoms, bonds: m.bonds}
	r, c := positions.Dims()
	if r != len(m.atoms) || c != 3 {
		panic(fmt.Sprintf(
			"WithPositionMatrix: matrix is %dx%d for %d atoms", r, c, len(m.atoms),
		))
	}
	n.pos = mat.DenseCopyOf(positions)
	return n
}

// WithDisplacement returns a clone of m with every atom shifted by v
func (m *Molecule) WithDisplacement(v r3.Vec) *Molecule {
	n := &Molecule{atoms: m.atoms, bonds: m.bonds}
	rows, _ := m.pos.Dims()
	pos := mat.NewDense(rows, 3, nil)
	for i := 0; i < rows; i++ {
		pos.Set(i, 0, m.pos.At(i, 0)+v.X)
		pos.Set(i, 1, m.pos.At(i, 1)+v.Y)
		pos.Set(i, 2, m.pos.At(i, 2)+v.Z)
	}
	n.pos = pos
	return n
}

// Rotated returns a clone of m rotated by angle radians about the
// axis through origin. The axis does not need to be normalized
func (m *Molecule) Rotated(angle float64, axis, origin r3.Vec) *Molecule {
	n := &Molecule{atoms: m.atoms, bonds: m.bonds}
	rot := r3.NewRotation(angle, axis)
	rows, _ := m.pos.Dims()
	pos := mat.NewDense(rows, 3, nil)
	for i := 0; i < rows; i++ {
		p := rot.Rotate(r3.Sub(m.position(i), origin))
		p = r3.Add(p, origin)
		pos.Set(i, 0, p.X)
		pos.Set(i, 1, p.Y)
		pos.Set(i, 2, p.Z)
	}
	n.pos = pos
	return n
}

// Centroid returns the mean position of the atoms with the given ids,
// or of all atoms when no ids are given. An empty selection is a
// programming error and panics
func (m *Molecule) Centroid(atomIDs ...int) r3.Vec {
	var rows []int
	if len(atomIDs) == 0 {
		rows = make([]int, len(m.atoms))
		for i := range rows {
			rows[i] = i
		}
	} else {
		for _, id := range atomIDs {
			i, ok := m.rowOf(id)
			if !ok {
				panic(fmt.Sprintf("Centroid: no atom with id %d", id))
			}
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		panic("Centroid: empty atom selection")
	}
	var c r3.Vec
	for _, i := range rows {
		c = r3.Add(c, m.position(i))
	}
	return r3.Scale(1/float64(len(rows)), c)
}

// XYZContent returns the molecule serialized in XYZ format with a
// blank comment line
func (m *Molecule) XYZContent() string {
	return xyzContent(m.atoms, m.pos, "")
}

// WriteXYZ writes the molecule to path in XYZ format
func (m *Molecule) WriteXYZ(path string) error {
	return writeFile(path, m.XYZContent())
}
