package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario holds stint or race parameters loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" and do not override the base config.
type Scenario struct {
	Track           string   `yaml:"track"`
	LapDistance     *float64 `yaml:"lap_distance"`
	AvgSpeed        *float64 `yaml:"avg_speed"`
	FuelRate        *float64 `yaml:"fuel_rate"`
	InitialFuel     *float64 `yaml:"initial_fuel"`
	InitialGrip     *float64 `yaml:"initial_grip"`
	GripDegradation *float64 `yaml:"grip_degradation"`
	Laps            *int     `yaml:"laps"`
	PitStopTime     *float64 `yaml:"pit_stop_time"`
	Stints          []int    `yaml:"stints"`

	Modifiers `yaml:",inline"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// ApplyTo overwrites the fields of cfg that are set in the scenario.
func (sc *Scenario) ApplyTo(cfg *StintConfig) {
	setFloat(&cfg.LapDistance, sc.LapDistance)
	setFloat(&cfg.AvgSpeed, sc.AvgSpeed)
	setFloat(&cfg.FuelRate, sc.FuelRate)
	setFloat(&cfg.InitialFuel, sc.InitialFuel)
	setFloat(&cfg.InitialGrip, sc.InitialGrip)
	setFloat(&cfg.GripDegradation, sc.GripDegradation)
	setFloat(&cfg.PitStopTime, sc.PitStopTime)
	if sc.Laps != nil {
		cfg.Laps = *sc.Laps
	}
}

// Plan returns the scenario's stint plan, or a single stint of laps when none is set.
func (sc *Scenario) Plan(laps int) []int {
	if sc == nil || len(sc.Stints) == 0 {
		return []int{laps}
	}
	return sc.Stints
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
