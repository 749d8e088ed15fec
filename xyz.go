package spindry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// xyzContent serializes atoms and coordinates in XYZ format: the atom
// count, a free-form comment line, then one "El x y z" line per atom
// in stored order with fixed-point coordinates
func xyzContent(atoms []Atom, pos *mat.Dense, comment string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%s\n", len(atoms), comment)
	for i, a := range atoms {
		fmt.Fprintf(&b, "%s %f %f %f\n",
			a.Element(), pos.At(i, 0), pos.At(i, 1), pos.At(i, 2))
	}
	return b.String()
}

// writeFile writes content to path, creating or truncating it
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0666)
}

// ReadXYZ parses XYZ content from r, returning the element symbols in
// title-case and the N x 3 coordinate matrix. The declared atom count
// must be at least one and match the number of coordinate lines
// exactly; a disagreement is a structural error wrapping
// ErrAtomMismatch and no partial result is returned
func ReadXYZ(r io.Reader) ([]string, *mat.Dense, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("ReadXYZ: empty input")
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, nil, fmt.Errorf("ReadXYZ: bad atom count line %q", scanner.Text())
	}
	if count < 1 {
		return nil, nil, fmt.Errorf("ReadXYZ: header declares %d atoms, want >= 1", count)
	}
	// Comment line, discarded.
	scanner.Scan()

	var (
		elems  []string
		coords []float64
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, fmt.Errorf("ReadXYZ: malformed coordinate line %q", line)
		}
		for _, f := range fields[1:4] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("ReadXYZ: bad coordinate %q in line %q", f, line)
			}
			coords = append(coords, v)
		}
		elems = append(elems, NormalizeElement(fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(elems) != count {
		return nil, nil, fmt.Errorf(
			"ReadXYZ: header says %d atoms, found %d: %w", count, len(elems), ErrAtomMismatch,
		)
	}
	return elems, mat.NewDense(count, 3, coords), nil
}

// LoadXYZ reads the XYZ file at path
func LoadXYZ(path string) ([]string, *mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadXYZ(f)
}

// MoleculeFromXYZ builds a bondless Molecule from the XYZ file at
// path, with atom ids assigned in file order. Wrapped in a
// SupraMolecule, every atom becomes a singleton component; callers
// with bonding information should construct the Molecule directly
func MoleculeFromXYZ(path string) (*Molecule, error) {
	elems, pos, err := LoadXYZ(path)
	if err != nil {
		return nil, err
	}
	atoms := make([]Atom, len(elems))
	for i, el := range elems {
		atoms[i], err = NewAtom(i, el)
		if err != nil {
			return nil, fmt.Errorf("MoleculeFromXYZ: atom %d: %w", i, err)
		}
	}
	return NewMolecule(atoms, nil, pos), nil
}

// A Trajectory appends accepted conformers to one multi-frame XYZ
// file, so a whole chain can be replayed in a viewer
type Trajectory struct {
	f *os.File
}

// NewTrajectory creates or truncates the trajectory file at path
func NewTrajectory(path string) (*Trajectory, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Trajectory{f: f}, nil
}

// Append writes one conformer as the next frame
func (t *Trajectory) Append(s *SupraMolecule) error {
	_, err := t.f.WriteString(s.XYZContent())
	return err
}

// Close flushes and closes the trajectory file
func (t *Trajectory) Close() error { return t.f.Close() }
