package core

import "math/rand/v2"

// RNG is a thin wrapper around a math/rand/v2 PCG stream with deterministic
// seeding. An RNG must not be shared between goroutines; use Derive to hand
// each concurrent simulation its own stream.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the seed the stream was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform integer in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Spin returns +1 or -1 with equal probability.
func (r *RNG) Spin() int8 {
	if r.r.IntN(2) == 1 {
		return 1
	}
	return -1
}

// Derive returns an independent stream keyed by the parent seed and a stream
// identifier. Deriving the same identifier twice yields identical streams.
func (r *RNG) Derive(stream uint64) *RNG {
	return NewRNG(DeriveSeed(r.seed, stream))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// DeriveSeed mixes a parent seed and a stream identifier with a SplitMix64
// finalizer so that neighbouring identifiers give uncorrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
