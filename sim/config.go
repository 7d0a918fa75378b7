package sim

import "math"

// StintConfig groups the car, track and stint parameters of one simulation run.
// It is a value type: the simulator copies it and never mutates the caller's copy.
type StintConfig struct {
	LapDistance     float64 `yaml:"lap_distance" json:"lap_distance_m"`       // metres, > 0
	AvgSpeed        float64 `yaml:"avg_speed" json:"avg_speed_ms"`            // m/s, > 0
	FuelRate        float64 `yaml:"fuel_rate" json:"fuel_rate_kgs"`           // kg/s, >= 0
	InitialFuel     float64 `yaml:"initial_fuel" json:"initial_fuel_kg"`      // kg, >= 0
	InitialGrip     float64 `yaml:"initial_grip" json:"initial_grip"`         // unitless, typically 0..1.5
	GripDegradation float64 `yaml:"grip_degradation" json:"grip_degradation"` // grip lost per lap, >= 0
	Laps            int     `yaml:"laps" json:"laps"`                         // > 0
	PitStopTime     float64 `yaml:"pit_stop_time" json:"pit_stop_time_s"`     // seconds, >= 0; chained stints only
}

// NewStintConfig builds a validated StintConfig.
// Any out-of-range field yields a *ConfigError (or *DivisionError for avgSpeed).
func NewStintConfig(lapDistance, avgSpeed, fuelRate, initialFuel, initialGrip, gripDegradation float64,
	laps int, pitStopTime float64) (StintConfig, error) {
	cfg := StintConfig{
		LapDistance:     lapDistance,
		AvgSpeed:        avgSpeed,
		FuelRate:        fuelRate,
		InitialFuel:     initialFuel,
		InitialGrip:     initialGrip,
		GripDegradation: gripDegradation,
		Laps:            laps,
		PitStopTime:     pitStopTime,
	}
	if err := cfg.Validate(); err != nil {
		return StintConfig{}, err
	}
	return cfg, nil
}

// Validate checks every field range. Lap count, distance and speed are checked first,
// in that order, so callers see the most fundamental problem.
func (c StintConfig) Validate() error {
	if c.Laps <= 0 {
		return &ConfigError{Field: "laps", Value: float64(c.Laps), Reason: "must be positive"}
	}
	if err := validateFinitePositive("lap_distance", c.LapDistance); err != nil {
		return err
	}
	if !(c.AvgSpeed > 0) || math.IsInf(c.AvgSpeed, 0) {
		return &DivisionError{Field: "avg_speed", Value: c.AvgSpeed}
	}
	nonNegative := []struct {
		name string
		val  float64
	}{
		{"fuel_rate", c.FuelRate},
		{"initial_fuel", c.InitialFuel},
		{"grip_degradation", c.GripDegradation},
		{"pit_stop_time", c.PitStopTime},
	}
	for _, f := range nonNegative {
		if err := validateFiniteNonNegative(f.name, f.val); err != nil {
			return err
		}
	}
	if math.IsNaN(c.InitialGrip) || math.IsInf(c.InitialGrip, 0) {
		return &ConfigError{Field: "initial_grip", Value: c.InitialGrip, Reason: "must be a finite number"}
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return &ConfigError{Field: name, Value: val, Reason: "must be a finite number"}
	}
	if val <= 0 {
		return &ConfigError{Field: name, Value: val, Reason: "must be positive"}
	}
	return nil
}

func validateFiniteNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return &ConfigError{Field: name, Value: val, Reason: "must be a finite number"}
	}
	if val < 0 {
		return &ConfigError{Field: name, Value: val, Reason: "must be non-negative"}
	}
	return nil
}
