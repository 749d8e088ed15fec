package spindry

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"
)

// A SupraMolecule is a Molecule together with its decomposition into
// disconnected rigid components, each a Molecule in its own right.
// The decomposition follows the bond graph: atoms connected
// transitively by bonds form one component, isolated atoms form
// singleton components. It may also carry a conformer id and a
// potential as metadata, stamped on by the Spinner
type SupraMolecule struct {
	Molecule
	components []*Molecule
	cid        int     // -1 when unset
	potential  float64 // NaN when unset
}

// NewSupraMolecule builds a SupraMolecule from atoms, bonds, and a
// position matrix, deriving the component partition from the bond
// graph. The partition is derived once here; coordinate updates via
// WithPositionMatrix keep it
func NewSupraMolecule(atoms []Atom, bonds []Bond, positions *mat.Dense) *SupraMolecule {
	s := &SupraMolecule{
		Molecule:  *NewMolecule(atoms, bonds, positions),
		cid:       -1,
		potential: math.NaN(),
	}
	s.defineComponents()
	return s
}

// defineComponents partitions the atoms into connected components of
// the undirected bond graph and slices out one Molecule per
// component. Components are ordered by their smallest atom id so the
// partition is deterministic
func (s *SupraMolecule) defineComponents() {
	g := simple.NewUndirectedGraph()
	for _, a := range s.atoms {
		g.AddNode(simple.Node(a.ID()))
	}
	for _, b := range s.bonds {
		g.SetEdge(g.NewEdge(simple.Node(b.Atom1ID()), simple.Node(b.Atom2ID())))
	}

	var comps []*Molecule
	for _, nodes := range topo.ConnectedComponents(g) {
		ids := make([]int, len(nodes))
		for i, n := range nodes {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		comps = append(comps, s.sliceComponent(ids))
	}
	sort.Slice(comps, func(i, j int) bool {
		return comps[i].atoms[0].ID() < comps[j].atoms[0].ID()
	})
	s.components = comps
}

// sliceComponent builds the component Molecule for the ascending atom
// id set ids: the matching atoms, the bonds fully inside the set, and
// the corresponding position rows
func (s *SupraMolecule) sliceComponent(ids []int) *Molecule {
	in := make(map[int]bool, len(ids))
	for _, id := range ids {
		in[id] = true
	}
	var atoms []Atom
	for _, id := range ids {
		i, ok := s.rowOf(id)
		if !ok {
			panic(fmt.Sprintf("sliceComponent: no atom with id %d", id))
		}
		atoms = append(atoms, s.atoms[i])
	}
	var bonds []Bond
	for _, b := range s.bonds {
		if in[b.Atom1ID()] && in[b.Atom2ID()] {
			bonds = append(bonds, b)
		}
	}
	pos := mat.NewDense(len(ids), 3, nil)
	for i, id := range ids {
		row, _ := s.rowOf(id)
		pos.SetRow(i, s.pos.RawRowView(row))
	}
	return NewMolecule(atoms, bonds, pos)
}

// InitFromComponents concatenates already-disjoint component
// Molecules into one SupraMolecule, assigning fresh contiguous atom
// and bond ids with a running counter and remapping bond endpoints
// through the same mapping. The supplied components are recorded
// verbatim as the partition; no graph traversal is needed since they
// are disjoint by construction. cid < 0 and NaN potential mean unset
func InitFromComponents(components []*Molecule, cid int, potential float64) *SupraMolecule {
	var (
		atoms  []Atom
		bonds  []Bond
		rows   []float64
		atomID int
		bondID int
	)
	for _, comp := range components {
		idMap := make(map[int]int, len(comp.atoms))
		for _, a := range comp.atoms {
			idMap[a.ID()] = atomID
			atoms = append(atoms, a.withID(atomID))
			atomID++
		}
		for _, b := range comp.bonds {
			bonds = append(bonds, NewBond(bondID, idMap[b.Atom1ID()], idMap[b.Atom2ID()]))
			bondID++
		}
		r, _ := comp.pos.Dims()
		for i := 0; i < r; i++ {
			rows = append(rows, comp.pos.RawRowView(i)...)
		}
	}
	comps := make([]*Molecule, len(components))
	copy(comps, components)
	return &SupraMolecule{
		Molecule:   *NewMolecule(atoms, bonds, mat.NewDense(len(atoms), 3, rows)),
		components: comps,
		cid:        cid,
		potential:  potential,
	}
}

// WithPositionMatrix returns a clone with the given coordinates. The
// previously derived component partition is kept as-is: component
// identity is structural, not geometric, so a pure coordinate update
// must not rediscover it. Callers that change the bond graph must
// build a fresh SupraMolecule instead
func (s *SupraMolecule) WithPositionMatrix(positions *mat.Dense) *SupraMolecule {
	return &SupraMolecule{
		Molecule:   *s.Molecule.WithPositionMatrix(positions),
		components: s.components,
		cid:        s.cid,
		potential:  s.potential,
	}
}

// Components returns the component Molecules of the partition
func (s *SupraMolecule) Components() []*Molecule {
	comps := make([]*Molecule, len(s.components))
	copy(comps, s.components)
	return comps
}

// NumComponents returns the number of components in the partition
func (s *SupraMolecule) NumComponents() int { return len(s.components) }

// Cid returns the conformer id, or -1 when none has been assigned
func (s *SupraMolecule) Cid() int { return s.cid }

// Potential returns the stored potential, or NaN when none has been
// assigned
func (s *SupraMolecule) Potential() float64 { return s.potential }

// XYZContent returns the supramolecule serialized in XYZ format, with
// the conformer id and potential on the comment line when present
func (s *SupraMolecule) XYZContent() string {
	var comment string
	if s.cid >= 0 {
		comment = fmt.Sprintf("cid:%d, pot: %f", s.cid, s.potential)
	}
	return xyzContent(s.atoms, s.pos, comment)
}

// WriteXYZ writes the supramolecule to path in XYZ format
func (s *SupraMolecule) WriteXYZ(path string) error {
	return writeFile(path, s.XYZContent())
}
