package spindry

import (
	"errors"
	"fmt"
	"strings"
)

// Errors used throughout
var (
	ErrUnknownElement = errors.New("element not in parameter table")
	ErrAtomMismatch   = errors.New("atom count does not match coordinate lines")
	ErrComponentCount = errors.New("wrong number of components")
)

// elemParams holds the per-element parameters derived at Atom
// construction. radius is the Cordero covalent radius in Angstrom and
// doubles as the default sigma; epsilon defaults to 1 and is only
// meaningful for VaryingEpsilonPotential.
type elemParams struct {
	radius float64
}

var elements = map[string]elemParams{
	"H":  {0.31},
	"He": {0.28},
	"Li": {1.28},
	"Be": {0.96},
	"B":  {0.84},
	"C":  {0.76},
	"N":  {0.71},
	"O":  {0.66},
	"F":  {0.57},
	"Ne": {0.58},
	"Na": {1.66},
	"Mg": {1.41},
	"Al": {1.21},
	"Si": {1.11},
	"P":  {1.07},
	"S":  {1.05},
	"Cl": {1.02},
	"Ar": {1.06},
	"K":  {2.03},
	"Ca": {1.76},
	"Sc": {1.70},
	"Ti": {1.60},
	"V":  {1.53},
	"Cr": {1.39},
	"Mn": {1.39},
	"Fe": {1.32},
	"Co": {1.26},
	"Ni": {1.24},
	"Cu": {1.32},
	"Zn": {1.22},
	"Ga": {1.22},
	"Ge": {1.20},
	"As": {1.19},
	"Se": {1.20},
	"Br": {1.20},
	"Kr": {1.16},
	"Pd": {1.39},
	"Ag": {1.45},
	"Cd": {1.44},
	"Sn": {1.39},
	"I":  {1.39},
	"Xe": {1.40},
	"Pt": {1.36},
	"Au": {1.36},
	"Hg": {1.32},
	"Pb": {1.46},
}

// NormalizeElement converts an element symbol to its canonical
// title-case form, so "c", "C", and "cl" become "C" and "Cl"
func NormalizeElement(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// An Atom is an immutable record of one atom: its id, element symbol,
// and the nonbonded parameters derived from the element at
// construction time
type Atom struct {
	id      int
	element string
	radius  float64
	sigma   float64
	epsilon float64
}

// NewAtom looks up the element in the parameter table and returns an
// Atom with radius and sigma set to the tabulated covalent radius and
// epsilon set to 1. The symbol is normalized to title-case first
func NewAtom(id int, element string) (Atom, error) {
	el := NormalizeElement(element)
	p, ok := elements[el]
	if !ok {
		return Atom{}, fmt.Errorf("NewAtom: %q: %w", element, ErrUnknownElement)
	}
	return Atom{
		id:      id,
		element: el,
		radius:  p.radius,
		sigma:   p.radius,
		epsilon: 1.0,
	}, nil
}

// NewAtomWithParameters is NewAtom with explicit sigma and epsilon,
// for use with VaryingEpsilonPotential
func NewAtomWithParameters(id int, element string, sigma, epsilon float64) (Atom, error) {
	a, err := NewAtom(id, element)
	if err != nil {
		return Atom{}, err
	}
	a.sigma = sigma
	a.epsilon = epsilon
	return a, nil
}

// ID returns the atom id
func (a Atom) ID() int { return a.id }

// Element returns the normalized element symbol
func (a Atom) Element() string { return a.element }

// Radius returns the covalent radius used by SpdPotential
func (a Atom) Radius() float64 { return a.radius }

// Sigma returns the per-atom sigma used by VaryingEpsilonPotential
func (a Atom) Sigma() float64 { return a.sigma }

// Epsilon returns the per-atom epsilon used by
// VaryingEpsilonPotential
func (a Atom) Epsilon() float64 { return a.epsilon }

// withID returns a copy of a with a new id, for the id remapping in
// InitFromComponents
func (a Atom) withID(id int) Atom {
	a.id = id
	return a
}

// A Bond connects two atoms by id; it owns neither of them
type Bond struct {
	id    int
	atom1 int
	atom2 int
}

// NewBond returns a Bond with the given id between the atoms with ids
// atom1 and atom2
func NewBond(id, atom1, atom2 int) Bond {
	return Bond{id: id, atom1: atom1, atom2: atom2}
}

// ID returns the bond id
func (b Bond) ID() int { return b.id }

// Atom1ID returns the id of the first endpoint
func (b Bond) Atom1ID() int { return b.atom1 }

// Atom2ID returns the id of the second endpoint
func (b Bond) Atom2ID() int { return b.atom2 }
