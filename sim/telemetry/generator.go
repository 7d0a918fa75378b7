// Package telemetry generates synthetic lap telemetry around a stint configuration.
// Output is deterministic for a given seed.
package telemetry

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stintsim/stintsim/sim"
)

// Jitter sets the half-width of the uniform noise band for each signal, as a fraction
// of its nominal value. 0.1 means nominal ±10%.
type Jitter struct {
	Speed float64 `yaml:"speed"`
	Fuel  float64 `yaml:"fuel"`
	Wear  float64 `yaml:"wear"`
}

// DefaultJitter roughly reproduces a 60..70 m/s speed band around 65 m/s,
// 2.3..2.7 kg fuel per lap and 0.01..0.03 wear per lap.
var DefaultJitter = Jitter{Speed: 0.077, Fuel: 0.08, Wear: 0.5}

// Validate rejects negative bands and a speed band that could reach zero.
func (j Jitter) Validate() error {
	if j.Speed < 0 || j.Fuel < 0 || j.Wear < 0 {
		return fmt.Errorf("jitter must be non-negative, got %+v", j)
	}
	if j.Speed >= 1 {
		return fmt.Errorf("speed jitter must be below 1, got %f", j.Speed)
	}
	return nil
}

// Lap is one lap of synthetic telemetry.
type Lap struct {
	Lap      int     `json:"lap"`
	AvgSpeed float64 `json:"avg_speed_ms"`
	LapTime  float64 `json:"lap_time_s"`
	FuelUsed float64 `json:"fuel_used_kg"`
	TireWear float64 `json:"tire_wear"` // cumulative
}

// Generate produces cfg.Laps laps of noisy telemetry around the nominal values of cfg.
func Generate(cfg sim.StintConfig, jitter Jitter, seed int64) ([]Lap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := jitter.Validate(); err != nil {
		return nil, err
	}

	streams := NewStreams(seed)
	speedRNG := streams.For(SignalSpeed)
	fuelRNG := streams.For(SignalFuel)
	wearRNG := streams.For(SignalWear)

	laps := make([]Lap, 0, cfg.Laps)
	for i := 1; i <= cfg.Laps; i++ {
		speed := cfg.AvgSpeed * uniform(speedRNG.Float64(), jitter.Speed)
		lt, err := sim.LapTime(cfg.LapDistance, speed)
		if err != nil {
			return nil, err
		}
		fuel := sim.FuelBurn(cfg.FuelRate, lt) * uniform(fuelRNG.Float64(), jitter.Fuel)
		wear := cfg.GripDegradation * float64(i) * uniform(wearRNG.Float64(), jitter.Wear)
		laps = append(laps, Lap{Lap: i, AvgSpeed: speed, LapTime: lt, FuelUsed: fuel, TireWear: wear})
	}
	logrus.Debugf("Generated %d telemetry laps with seed %d", len(laps), streams.Seed())
	return laps, nil
}

// uniform maps u in [0,1) to a factor in [1-band, 1+band).
func uniform(u, band float64) float64 {
	return 1 - band + 2*band*u
}
