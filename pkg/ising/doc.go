// Package ising implements single-spin-flip Metropolis dynamics for the 2D
// Ising model on a periodic square lattice.
//
// The hot path is MCMove: one call performs exactly L² proposals, each at a
// site drawn uniformly with replacement, and mutates the lattice in place.
// Neither MCMove nor the raw-buffer Sweep allocates, logs, or retains the
// lattice after returning.
// Preconditions (a perfect-square buffer and a positive temperature) are
// checked once on entry so that a rejected call leaves the lattice untouched.
//
// The acceptance weight exp(-βΔE) is evaluated with a portable exponential
// so that native and WebAssembly builds produce bit-identical trajectories
// from the same seed.
package ising
