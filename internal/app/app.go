//go:build ebiten

package app

import (
	"image/color"
	"time"

	"ising-mc/internal/render"
	"ising-mc/internal/ui"
	"ising-mc/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.Pacer

	upColor   color.Color
	downColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation, stepping it sps times
// per second independently of the frame rate.
func New(sim core.Sim, scale, sps int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(sim, hudWidth),
		pacer:     core.NewPacer(sps),
		upColor:   color.RGBA{R: 240, G: 200, B: 80, A: 255},
		downColor: color.RGBA{R: 30, G: 40, B: 90, A: 255},
		scale:     scale,
		seed:      seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.sim.Size().W * g.scale)

	due := g.pacer.Due(time.Now())
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due++
		g.tickOnce = false
	}
	for ; due > 0; due-- {
		g.sim.Step()
	}
	return nil
}

// Draw renders the lattice and the HUD panel to its right.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.upColor, g.downColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
