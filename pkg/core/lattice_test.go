package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestWrapSpinsRejectsNonSquareLengths(t *testing.T) {
	for _, n := range []int{0, 2, 3, 5, 8, 15, 17} {
		if _, err := WrapSpins(make([]int8, n)); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("length %d: expected ErrInvalidSize, got %v", n, err)
		}
	}
}

func TestWrapSpinsDerivesSide(t *testing.T) {
	for _, l := range []int{1, 2, 3, 4, 16, 100} {
		lat, err := WrapSpins(make([]int8, l*l))
		if err != nil {
			t.Fatalf("side %d: unexpected error %v", l, err)
		}
		if lat.Side() != l || lat.Len() != l*l {
			t.Fatalf("side %d: got side=%d len=%d", l, lat.Side(), lat.Len())
		}
	}
}

func TestWrapSpinsSharesBuffer(t *testing.T) {
	buf := []int8{1, 1, 1, 1}
	lat, err := WrapSpins(buf)
	if err != nil {
		t.Fatal(err)
	}
	lat.Flip(lat.Index(1, 0))
	if buf[2] != -1 {
		t.Fatalf("expected host buffer to see the flip, got %v", buf)
	}
}

func TestNewLatticeRejectsNonPositiveSide(t *testing.T) {
	if _, err := NewLattice(0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	lat, err := NewLattice(3)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range lat.Spins() {
		if s != 1 {
			t.Fatalf("site %d = %d, expected all up", i, s)
		}
	}
}

func TestPeriodicAccess(t *testing.T) {
	lat, _ := NewLattice(3)
	lat.Set(0, 0, -1)
	cases := [][2]int{{3, 3}, {-3, 0}, {0, -3}, {6, -6}}
	for _, c := range cases {
		if got := lat.At(c[0], c[1]); got != -1 {
			t.Fatalf("At(%d,%d) = %d, expected wrap to (0,0)", c[0], c[1], got)
		}
	}
	i, j := lat.Wrap(-1, 4)
	if i != 2 || j != 1 {
		t.Fatalf("Wrap(-1,4) = (%d,%d), expected (2,1)", i, j)
	}
}

func TestRandomizeProducesSpins(t *testing.T) {
	lat, _ := NewLattice(32)
	lat.Randomize(NewRNG(7))
	up := 0
	for i, s := range lat.Spins() {
		if s != 1 && s != -1 {
			t.Fatalf("site %d = %d", i, s)
		}
		if s == 1 {
			up++
		}
	}
	if up < 400 || up > 624 {
		t.Fatalf("expected roughly half of 1024 spins up, got %d", up)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	lat, _ := NewLattice(2)
	c := lat.Clone()
	c.Flip(0)
	if lat.Spins()[0] != 1 {
		t.Fatal("clone shares storage with original")
	}
}

func TestViewMatchesWrapSpins(t *testing.T) {
	buf := []int8{1, -1, -1, 1, 1, 1, -1, -1, 1}
	lat, err := View(buf)
	if err != nil {
		t.Fatal(err)
	}
	if lat.Side() != 3 || lat.At(2, 2) != 1 {
		t.Fatalf("unexpected view side=%d corner=%d", lat.Side(), lat.At(2, 2))
	}
	lat.Flip(0)
	if buf[0] != -1 {
		t.Fatal("view should share the host buffer")
	}
	if _, err := View(buf[:5]); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}
