// Command isingrun is a headless host loop: it owns a spin buffer and calls
// the same export boundary the shared library and wasm module expose.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"ising-mc/internal/export"
	"ising-mc/pkg/core"
	"ising-mc/pkg/ising"
)

func main() {
	size := flag.Int("n", 64, "lattice side length")
	temperature := flag.Float64("t", ising.CriticalTemperature, "temperature")
	sweeps := flag.Int("sweeps", 1000, "number of sweeps")
	every := flag.Int("every", 100, "report observables every N sweeps")
	seed := flag.Int64("seed", export.DefaultSeed, "RNG seed")
	rate := flag.Int("rate", 0, "sweeps per second (0 = unpaced)")
	flag.Parse()

	lat, err := core.NewLattice(*size)
	if err != nil {
		log.Fatalf("lattice: %v", err)
	}
	lat.Randomize(core.NewRNG(*seed))

	streams := export.NewStreams()
	stream := streams.Open(*seed)
	spins := lat.Spins()

	var pacer *core.Pacer
	if *rate > 0 {
		pacer = core.NewPacer(*rate)
		pacer.Due(time.Now())
	}

	start := time.Now()
	done := 0
	for done < *sweeps {
		batch := 1
		if pacer != nil {
			time.Sleep(time.Millisecond)
			batch = min(pacer.Due(time.Now()), *sweeps-done)
		}
		for k := 0; k < batch; k++ {
			if status := streams.MCMove(spins, *temperature, stream); status != export.StatusOK {
				log.Fatalf("mcmove: %s", status)
			}
			done++
			if *every > 0 && done%*every == 0 {
				n := float64(lat.Len())
				fmt.Printf("sweep %6d  E/site=%9.5f  M/site=%9.5f\n",
					done, float64(ising.Energy(lat))/n, float64(ising.Magnetization(lat))/n)
			}
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("%d sweeps of %dx%d in %s (%.0f sweeps/s)\n",
		done, *size, *size, elapsed.Round(time.Millisecond), float64(done)/elapsed.Seconds())
}
