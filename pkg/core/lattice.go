package core

import (
	"math"

	"github.com/pkg/errors"
)

// Lattice stores an L×L grid of Ising spins in row-major order. Site (i, j)
// lives at index i*L+j and every axis wraps around.
type Lattice struct {
	l     int
	spins []int8
}

// NewLattice allocates an L×L lattice with every spin up.
func NewLattice(l int) (*Lattice, error) {
	if l < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "side %d", l)
	}
	lat := &Lattice{l: l, spins: make([]int8, l*l)}
	lat.Fill(1)
	return lat, nil
}

// WrapSpins borrows a caller-owned buffer as a lattice without copying it.
// The side length is derived from len(spins), which must be a perfect square.
// Spin values are not inspected.
func WrapSpins(spins []int8) (*Lattice, error) {
	l, ok := SideFor(len(spins))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidSize, "buffer length %d", len(spins))
	}
	return &Lattice{l: l, spins: spins}, nil
}

// View is WrapSpins returning the lattice by value, so a hot path can keep
// it on the stack and pass its address down without allocating.
func View(spins []int8) (Lattice, error) {
	l, ok := SideFor(len(spins))
	if !ok {
		return Lattice{}, errors.Wrapf(ErrInvalidSize, "buffer length %d", len(spins))
	}
	return Lattice{l: l, spins: spins}, nil
}

// SideFor returns the side length implied by a buffer of n spins and whether
// n is a perfect square of at least one.
func SideFor(n int) (int, bool) {
	if n < 1 {
		return 0, false
	}
	l := int(math.Sqrt(float64(n)))
	for l*l > n {
		l--
	}
	for (l+1)*(l+1) <= n {
		l++
	}
	return l, l*l == n
}

// Side returns L.
func (lat *Lattice) Side() int { return lat.l }

// Len returns the number of sites, L².
func (lat *Lattice) Len() int { return len(lat.spins) }

// Spins exposes the backing slice so callers can read/write spins directly.
func (lat *Lattice) Spins() []int8 { return lat.spins }

// Index returns the linear index for row i, column j.
func (lat *Lattice) Index(i, j int) int { return i*lat.l + j }

// Wrap applies periodic reduction to the provided coordinates.
func (lat *Lattice) Wrap(i, j int) (int, int) {
	i = (i%lat.l + lat.l) % lat.l
	j = (j%lat.l + lat.l) % lat.l
	return i, j
}

// At returns the spin at (i, j) after periodic reduction.
func (lat *Lattice) At(i, j int) int8 {
	i, j = lat.Wrap(i, j)
	return lat.spins[i*lat.l+j]
}

// Set writes the spin at (i, j) after periodic reduction.
func (lat *Lattice) Set(i, j int, s int8) {
	i, j = lat.Wrap(i, j)
	lat.spins[i*lat.l+j] = s
}

// Flip negates the spin stored at linear index idx.
func (lat *Lattice) Flip(idx int) { lat.spins[idx] = -lat.spins[idx] }

// Fill sets every site to s.
func (lat *Lattice) Fill(s int8) {
	for i := range lat.spins {
		lat.spins[i] = s
	}
}

// Randomize draws every spin independently as +1 or -1 with equal odds.
func (lat *Lattice) Randomize(rng *RNG) {
	for i := range lat.spins {
		lat.spins[i] = rng.Spin()
	}
}

// Clone returns a lattice with its own copy of the spins.
func (lat *Lattice) Clone() *Lattice {
	spins := make([]int8, len(lat.spins))
	copy(spins, lat.spins)
	return &Lattice{l: lat.l, spins: spins}
}
