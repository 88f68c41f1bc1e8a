package ising

import (
	"ising-mc/pkg/core"

	"github.com/pkg/errors"
)

// MCMove performs one Monte Carlo sweep: L² proposals, each at a site drawn
// uniformly with replacement (row first, then column). The temperature is
// validated before any site is touched.
func MCMove(lat *core.Lattice, temperature float64, rng *core.RNG) error {
	if lat == nil || lat.Len() == 0 {
		return errors.Wrap(core.ErrInvalidSize, "empty lattice")
	}
	m, err := NewMetropolis(temperature)
	if err != nil {
		return err
	}
	m.Sweep(lat, rng)
	return nil
}

// Sweep is MCMove over a raw row-major spin buffer whose side length is
// derived from its length.
func Sweep(spins []int8, temperature float64, rng *core.RNG) error {
	lat, err := core.View(spins)
	if err != nil {
		return err
	}
	m, err := NewMetropolis(temperature)
	if err != nil {
		return err
	}
	m.Sweep(&lat, rng)
	return nil
}

// Run performs n consecutive sweeps at a fixed temperature.
func Run(lat *core.Lattice, temperature float64, n int, rng *core.RNG) error {
	if lat == nil || lat.Len() == 0 {
		return errors.Wrap(core.ErrInvalidSize, "empty lattice")
	}
	m, err := NewMetropolis(temperature)
	if err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		m.Sweep(lat, rng)
	}
	return nil
}

// Sweep performs L² proposals on lat without validating it.
func (m Metropolis) Sweep(lat *core.Lattice, rng *core.RNG) {
	l := lat.Side()
	for n := l * l; n > 0; n-- {
		i := rng.IntN(l)
		j := rng.IntN(l)
		if m.Accept(DeltaE(lat, i, j), rng) {
			lat.Flip(i*l + j)
		}
	}
}
