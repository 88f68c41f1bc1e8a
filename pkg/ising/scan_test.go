package ising

import (
	"context"
	"math"
	"reflect"
	"testing"

	"ising-mc/pkg/core"

	"github.com/pkg/errors"
)

func smallScan() ScanConfig {
	return ScanConfig{
		Size:     4,
		Points:   3,
		TMin:     1,
		TMax:     4,
		EqSweeps: 100,
		MCSweeps: 400,
		Seed:     3,
		Workers:  1,
	}
}

func TestScanTemperatures(t *testing.T) {
	cfg := smallScan()
	if got := cfg.Temperatures(); !reflect.DeepEqual(got, []float64{1, 2.5, 4}) {
		t.Fatalf("unexpected temperatures %v", got)
	}
	cfg.Points = 1
	if got := cfg.Temperatures(); !reflect.DeepEqual(got, []float64{1}) {
		t.Fatalf("single point scan should use TMin, got %v", got)
	}
}

func TestScanValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ScanConfig)
		target error
	}{
		{"size", func(c *ScanConfig) { c.Size = 0 }, core.ErrInvalidSize},
		{"tmin", func(c *ScanConfig) { c.TMin = 0 }, core.ErrInvalidTemperature},
		{"tmax", func(c *ScanConfig) { c.TMax = -2 }, core.ErrInvalidTemperature},
		{"points", func(c *ScanConfig) { c.Points = 0 }, nil},
		{"mc", func(c *ScanConfig) { c.MCSweeps = 0 }, nil},
		{"eq", func(c *ScanConfig) { c.EqSweeps = -1 }, nil},
	}
	for _, tc := range cases {
		cfg := smallScan()
		tc.mutate(&cfg)
		_, err := Scan(context.Background(), cfg)
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		if tc.target != nil && !errors.Is(err, tc.target) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.target, err)
		}
	}
}

func TestScanIndependentOfWorkerCount(t *testing.T) {
	cfg := smallScan()
	serial, err := Scan(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 3
	parallel, err := Scan(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(serial.Points, parallel.Points) {
		t.Fatalf("worker count changed results:\n%v\n%v", serial.Points, parallel.Points)
	}
	if serial.RunID == "" || serial.RunID == parallel.RunID {
		t.Fatalf("expected distinct run ids, got %q and %q", serial.RunID, parallel.RunID)
	}
}

func TestScanPhysics(t *testing.T) {
	report, err := Scan(context.Background(), smallScan())
	if err != nil {
		t.Fatal(err)
	}
	cold, hot := report.Points[0], report.Points[len(report.Points)-1]
	if math.Abs(cold.Magnetization) < 0.8 {
		t.Fatalf("expected an ordered lattice at T=%v, |M|=%v", cold.Temperature, math.Abs(cold.Magnetization))
	}
	if cold.Energy > -1.8 {
		t.Fatalf("expected near ground-state energy at T=%v, got %v", cold.Temperature, cold.Energy)
	}
	if hot.Energy <= cold.Energy {
		t.Fatalf("energy should rise with temperature: %v at T=%v vs %v at T=%v",
			hot.Energy, hot.Temperature, cold.Energy, cold.Temperature)
	}
	for _, p := range report.Points {
		if p.SpecificHeat < -1e-9 || p.Susceptibility < -1e-9 {
			t.Fatalf("negative fluctuation at T=%v: C=%v X=%v", p.Temperature, p.SpecificHeat, p.Susceptibility)
		}
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := smallScan()
	cfg.Workers = 2
	if _, err := Scan(ctx, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
