package spindry

import (
	"errors"
	"testing"
)

func TestNewAtom(t *testing.T) {
	tests := []struct {
		element string
		want    string
		radius  float64
	}{
		{"C", "C", 0.76},
		{"c", "C", 0.76},
		{"cl", "Cl", 1.02},
		{"N", "N", 0.71},
		{"P", "P", 1.07},
	}
	for _, test := range tests {
		a, err := NewAtom(7, test.element)
		if err != nil {
			t.Fatalf("NewAtom(%q): %v", test.element, err)
		}
		if a.ID() != 7 {
			t.Errorf("got id %d, wanted 7", a.ID())
		}
		if a.Element() != test.want {
			t.Errorf("got element %q, wanted %q", a.Element(), test.want)
		}
		if a.Radius() != test.radius {
			t.Errorf("got radius %v, wanted %v", a.Radius(), test.radius)
		}
		if a.Sigma() != test.radius || a.Epsilon() != 1 {
			t.Errorf("got sigma %v epsilon %v, wanted %v and 1",
				a.Sigma(), a.Epsilon(), test.radius)
		}
	}
}

func TestNewAtomUnknownElement(t *testing.T) {
	if _, err := NewAtom(0, "Xq"); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("got %v, wanted ErrUnknownElement", err)
	}
}

func TestNewAtomWithParameters(t *testing.T) {
	a, err := NewAtomWithParameters(3, "O", 1.4, 4.5)
	if err != nil {
		t.Fatalf("NewAtomWithParameters: %v", err)
	}
	if a.Sigma() != 1.4 || a.Epsilon() != 4.5 {
		t.Errorf("got sigma %v epsilon %v, wanted 1.4 and 4.5",
			a.Sigma(), a.Epsilon())
	}
	if a.Radius() != 0.66 {
		t.Errorf("got radius %v, wanted 0.66", a.Radius())
	}
}

func TestNormalizeElement(t *testing.T) {
	tests := []struct{ in, want string }{
		{"c", "C"},
		{"CL", "Cl"},
		{" br ", "Br"},
		{"He", "He"},
		{"", ""},
	}
	for _, test := range tests {
		if got := NormalizeElement(test.in); got != test.want {
			t.Errorf("NormalizeElement(%q) = %q, wanted %q", test.in, got, test.want)
		}
	}
}

func TestNewBond(t *testing.T) {
	b := NewBond(2, 5, 9)
	if b.ID() != 2 || b.Atom1ID() != 5 || b.Atom2ID() != 9 {
		t.Errorf("got (%d, %d, %d), wanted (2, 5, 9)",
			b.ID(), b.Atom1ID(), b.Atom2ID())
	}
}
