//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ising-mc/internal/app"
	"ising-mc/pkg/core"
	_ "ising-mc/pkg/ising"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	game := app.New(sim, cfg.Scale, cfg.SPS, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("ising — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
