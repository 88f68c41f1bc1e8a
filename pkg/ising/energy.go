package ising

import "ising-mc/pkg/core"

// NeighborSum returns the sum of the four periodic neighbours of (i, j).
// On a lattice of side 1 every neighbour is the site itself; on side 2 the
// up/down and left/right neighbours coincide.
func NeighborSum(lat *core.Lattice, i, j int) int {
	l := lat.Side()
	s := lat.Spins()
	up := (i + l - 1) % l
	down := (i + 1) % l
	left := (j + l - 1) % l
	right := (j + 1) % l
	return int(s[up*l+j]) + int(s[down*l+j]) + int(s[i*l+left]) + int(s[i*l+right])
}

// DeltaE returns the energy change caused by flipping the spin at (i, j).
func DeltaE(lat *core.Lattice, i, j int) int {
	return 2 * int(lat.Spins()[i*lat.Side()+j]) * NeighborSum(lat, i, j)
}

// Energy returns the total lattice energy with unit coupling, counting every
// bond once.
func Energy(lat *core.Lattice) int {
	l := lat.Side()
	s := lat.Spins()
	total := 0
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			total -= int(s[i*l+j]) * NeighborSum(lat, i, j)
		}
	}
	return total / 2
}

// Magnetization returns the sum of all spins.
func Magnetization(lat *core.Lattice) int {
	total := 0
	for _, s := range lat.Spins() {
		total += int(s)
	}
	return total
}
