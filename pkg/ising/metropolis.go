package ising

import (
	"ising-mc/pkg/core"

	"github.com/pkg/errors"
)

// Metropolis decides single-spin-flip proposals at a fixed inverse
// temperature. The weights for the two positive ΔE values a valid ±1
// lattice can produce are computed once.
type Metropolis struct {
	Beta float64

	w4 float64
	w8 float64
}

// NewMetropolis returns a sampler for the given temperature. The temperature
// must be strictly positive; +Inf is accepted and gives β = 0.
func NewMetropolis(temperature float64) (Metropolis, error) {
	if !(temperature > 0) {
		return Metropolis{}, errors.Wrapf(core.ErrInvalidTemperature, "temperature %v", temperature)
	}
	beta := 1 / temperature
	return Metropolis{
		Beta: beta,
		w4:   boltzmann(-beta * 4),
		w8:   boltzmann(-beta * 8),
	}, nil
}

// Accept reports whether a flip costing dE should be applied. Moves with
// dE <= 0 are accepted without consuming a draw; otherwise one uniform value
// r is drawn and the move is accepted iff r < exp(-β·dE).
func (m Metropolis) Accept(dE int, rng *core.RNG) bool {
	if dE <= 0 {
		return true
	}
	return rng.Float64() < m.Weight(dE)
}

// Weight returns exp(-β·dE).
func (m Metropolis) Weight(dE int) float64 {
	switch dE {
	case 4:
		return m.w4
	case 8:
		return m.w8
	}
	return boltzmann(-m.Beta * float64(dE))
}
