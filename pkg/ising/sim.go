package ising

import "ising-mc/pkg/core"

const (
	minTemperature   = 0.05
	maxTemperature   = 10
	maxSweepsPerStep = 64
)

// Model adapts the sweep kernel to the core.Sim contract so front-ends can
// drive it like any other registered simulation.
type Model struct {
	cfg    Config
	lat    *core.Lattice
	rng    *core.RNG
	cells  []uint8
	sweeps int
	err    error
}

// New returns a Model with a randomized lattice seeded from cfg.Seed.
// Non-positive sizes and temperatures fall back to the defaults.
func New(cfg Config) *Model {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if !(cfg.Temperature > 0) {
		cfg.Temperature = def.Temperature
	}
	if cfg.SweepsPerStep <= 0 {
		cfg.SweepsPerStep = def.SweepsPerStep
	}
	lat, _ := core.NewLattice(cfg.Size)
	m := &Model{cfg: cfg, lat: lat, cells: make([]uint8, lat.Len())}
	m.Reset(cfg.Seed)
	return m
}

// Name identifies the simulation.
func (m *Model) Name() string { return "ising" }

// Size returns the lattice dimensions.
func (m *Model) Size() core.Size { return core.Size{W: m.lat.Side(), H: m.lat.Side()} }

// Lattice exposes the spin lattice.
func (m *Model) Lattice() *core.Lattice { return m.lat }

// Temperature returns the current temperature.
func (m *Model) Temperature() float64 { return m.cfg.Temperature }

// Sweeps returns the number of sweeps performed since the last reset.
func (m *Model) Sweeps() int { return m.sweeps }

// Reset randomizes every spin using the provided seed.
func (m *Model) Reset(seed int64) {
	m.cfg.Seed = seed
	m.rng = core.NewRNG(seed)
	m.lat.Randomize(m.rng)
	m.sweeps = 0
	m.err = nil
}

// Step advances the lattice by the configured number of sweeps. A rejected
// sweep leaves the lattice untouched and is reported by Err.
func (m *Model) Step() {
	m.err = Run(m.lat, m.cfg.Temperature, m.cfg.SweepsPerStep, m.rng)
	if m.err != nil {
		return
	}
	m.sweeps += m.cfg.SweepsPerStep
}

// Err returns the error from the most recent Step, if any.
func (m *Model) Err() error { return m.err }

// Cells renders up spins as 1 and down spins as 0.
func (m *Model) Cells() []uint8 {
	for i, s := range m.lat.Spins() {
		if s > 0 {
			m.cells[i] = 1
		} else {
			m.cells[i] = 0
		}
	}
	return m.cells
}

// Parameters reports configuration and running observables.
func (m *Model) Parameters() core.ParameterSnapshot {
	n := float64(m.lat.Len())
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				core.IntParam("size", "Size", m.lat.Side()),
				core.Int64Param("seed", "Seed", m.cfg.Seed),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				core.FloatParam("temperature", "Temperature", m.cfg.Temperature),
				core.IntParam("sweeps_per_step", "Sweeps per step", m.cfg.SweepsPerStep),
			},
		},
		{
			Name: "Observables",
			Params: []core.Parameter{
				core.IntParam("sweeps", "Sweeps", m.sweeps),
				core.FloatParam("energy", "Energy/site", float64(Energy(m.lat))/n),
				core.FloatParam("magnetization", "Magnetization/site", float64(Magnetization(m.lat))/n),
			},
		},
	}}
}

// ParameterControls lists the adjustable parameters.
func (m *Model) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat,
			Step: 0.05, Min: minTemperature, Max: maxTemperature, HasMin: true, HasMax: true,
		},
		{
			Key: "sweeps_per_step", Label: "Sweeps per step", Type: core.ParamTypeInt,
			Step: 1, Min: 1, Max: maxSweepsPerStep, HasMin: true, HasMax: true,
		},
	}
}

// SetFloatParameter updates the temperature.
func (m *Model) SetFloatParameter(key string, value float64) bool {
	if key != "temperature" || !(value > 0) {
		return false
	}
	m.cfg.Temperature = value
	return true
}

// SetIntParameter updates the number of sweeps run per Step.
func (m *Model) SetIntParameter(key string, value int) bool {
	if key != "sweeps_per_step" || value < 1 || value > maxSweepsPerStep {
		return false
	}
	m.cfg.SweepsPerStep = value
	return true
}

func init() {
	core.Register("ising", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
