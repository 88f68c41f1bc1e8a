package ising

import (
	"testing"

	"ising-mc/pkg/core"
)

func mod(a, n int) int { return ((a % n) + n) % n }

func latticeOf(t *testing.T, spins ...int8) *core.Lattice {
	t.Helper()
	lat, err := core.WrapSpins(spins)
	if err != nil {
		t.Fatalf("lattice: %v", err)
	}
	return lat
}

func TestNeighborSumWrapsOnTwoByTwo(t *testing.T) {
	// Every 2×2 configuration, every site, against explicit modulo indexing.
	const l = 2
	for mask := 0; mask < 1<<(l*l); mask++ {
		spins := make([]int8, l*l)
		for k := range spins {
			spins[k] = -1
			if mask&(1<<k) != 0 {
				spins[k] = 1
			}
		}
		lat := latticeOf(t, spins...)
		for i := 0; i < l; i++ {
			for j := 0; j < l; j++ {
				want := int(spins[mod(i-1, l)*l+j]) + int(spins[mod(i+1, l)*l+j]) +
					int(spins[i*l+mod(j-1, l)]) + int(spins[i*l+mod(j+1, l)])
				if got := NeighborSum(lat, i, j); got != want {
					t.Fatalf("mask %04b site (%d,%d): NeighborSum=%d want %d", mask, i, j, got, want)
				}
				if got, wantE := DeltaE(lat, i, j), 2*int(spins[i*l+j])*want; got != wantE {
					t.Fatalf("mask %04b site (%d,%d): DeltaE=%d want %d", mask, i, j, got, wantE)
				}
			}
		}
	}
}

func TestDeltaECornerHandComputed(t *testing.T) {
	// [ +1 -1 ]
	// [ -1 -1 ]
	// Corner (1,1): up and down are both (0,1), left and right both (1,0).
	lat := latticeOf(t, 1, -1, -1, -1)
	if s := NeighborSum(lat, 1, 1); s != -4 {
		t.Fatalf("NeighborSum(1,1) = %d, want -4", s)
	}
	if d := DeltaE(lat, 1, 1); d != 8 {
		t.Fatalf("DeltaE(1,1) = %d, want 8", d)
	}
	// Corner (0,0): neighbours (1,0) twice and (0,1) twice, all down.
	if d := DeltaE(lat, 0, 0); d != -8 {
		t.Fatalf("DeltaE(0,0) = %d, want -8", d)
	}
}

func TestDeltaEEdgeOfThreeByThree(t *testing.T) {
	lat, _ := core.NewLattice(3)
	lat.Set(2, 1, -1) // wraps to be the up-neighbour of (0,1)
	lat.Set(0, 2, -1) // right-neighbour of (0,1)
	if s := NeighborSum(lat, 0, 1); s != 0 {
		t.Fatalf("NeighborSum(0,1) = %d, want 0", s)
	}
	lat.Set(0, 0, -1) // (0,2)'s right neighbour through the boundary
	if s := NeighborSum(lat, 0, 2); s != 2 {
		t.Fatalf("NeighborSum(0,2) = %d, want 2", s)
	}
}

func TestEnergyReferenceStates(t *testing.T) {
	for _, l := range []int{2, 3, 4, 8} {
		lat, _ := core.NewLattice(l)
		if e := Energy(lat); e != -2*l*l {
			t.Fatalf("L=%d all up: energy %d, want %d", l, e, -2*l*l)
		}
		if m := Magnetization(lat); m != l*l {
			t.Fatalf("L=%d all up: magnetization %d, want %d", l, m, l*l)
		}
	}
	lat, _ := core.NewLattice(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if (i+j)%2 == 1 {
				lat.Set(i, j, -1)
			}
		}
	}
	if e := Energy(lat); e != 32 {
		t.Fatalf("checkerboard energy %d, want 32", e)
	}
	if m := Magnetization(lat); m != 0 {
		t.Fatalf("checkerboard magnetization %d, want 0", m)
	}
}

func TestDeltaEMatchesEnergyDifference(t *testing.T) {
	rng := core.NewRNG(3)
	for _, l := range []int{2, 3, 5} {
		lat, _ := core.NewLattice(l)
		lat.Randomize(rng)
		for i := 0; i < l; i++ {
			for j := 0; j < l; j++ {
				before := Energy(lat)
				d := DeltaE(lat, i, j)
				lat.Flip(lat.Index(i, j))
				if after := Energy(lat); after-before != d {
					t.Fatalf("L=%d site (%d,%d): energy moved %d, DeltaE said %d", l, i, j, after-before, d)
				}
			}
		}
	}
}
