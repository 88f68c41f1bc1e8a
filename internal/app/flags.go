package app

import (
	"flag"
	"strconv"

	"ising-mc/pkg/ising"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Size  int
	Temp  float64
	Scale int
	TPS   int
	SPS   int
	Seed  int64
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Sim: "ising", Size: 128, Temp: ising.CriticalTemperature, Scale: 4, TPS: 60, SPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "n", c.Size, "lattice side length")
	fs.Float64Var(&c.Temp, "t", c.Temp, "initial temperature")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// SimConfig converts the flags into the key/value form sim factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"size": strconv.Itoa(c.Size),
		"t":    strconv.FormatFloat(c.Temp, 'f', -1, 64),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
