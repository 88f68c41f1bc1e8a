package ising

import "strconv"

// CriticalTemperature is Onsager's exact transition temperature for the
// square lattice with unit coupling, 2/ln(1+√2).
const CriticalTemperature = 2.269185314213022

// Config controls the interactive Ising simulation.
type Config struct {
	Size          int
	Temperature   float64
	SweepsPerStep int
	Seed          int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:          128,
		Temperature:   CriticalTemperature,
		SweepsPerStep: 1,
		Seed:          42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["t"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Temperature = parsed
		}
	}
	if v, ok := cfg["sweeps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SweepsPerStep = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
