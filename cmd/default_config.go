package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/stintsim/stintsim/sim"
)

// TrackPreset describes a circuit preset in defaults.yaml.
type TrackPreset struct {
	LapDistance float64 `yaml:"lap_distance"`
	AvgSpeed    float64 `yaml:"avg_speed"`
	PitStopTime float64 `yaml:"pit_stop_time"`
	RaceLaps    int     `yaml:"race_laps"`
}

// Limits holds the car limits used for sanity warnings.
type Limits struct {
	MaxFuel float64 `yaml:"max_fuel"`
	MaxGrip float64 `yaml:"max_grip"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string                 `yaml:"version"`
	Limits  Limits                 `yaml:"limits"`
	Tracks  map[string]TrackPreset `yaml:"tracks"`
}

// ApplyTo copies the non-zero circuit fields into cfg. RaceLaps is a race length,
// not a stint length, so it is left to the race command.
func (p TrackPreset) ApplyTo(cfg *sim.StintConfig) {
	if p.LapDistance != 0 {
		cfg.LapDistance = p.LapDistance
	}
	if p.AvgSpeed != 0 {
		cfg.AvgSpeed = p.AvgSpeed
	}
	if p.PitStopTime != 0 {
		cfg.PitStopTime = p.PitStopTime
	}
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults YAML: %w", err)
	}
	return cfg, nil
}

// GetTrackPreset looks up a named track in the defaults file.
func GetTrackPreset(name string, defaultsFilePath string) (TrackPreset, error) {
	cfg, err := loadDefaultsConfig(defaultsFilePath)
	if err != nil {
		return TrackPreset{}, err
	}
	preset, ok := cfg.Tracks[name]
	if !ok {
		known := make([]string, 0, len(cfg.Tracks))
		for k := range cfg.Tracks {
			known = append(known, k)
		}
		sort.Strings(known)
		return TrackPreset{}, fmt.Errorf("unknown track %q; valid: %v", name, known)
	}
	return preset, nil
}

// warnLimits logs inputs above the car limits of the defaults file.
// A missing defaults file disables the check.
func warnLimits(cfg sim.StintConfig, defaultsFilePath string) {
	defaults, err := loadDefaultsConfig(defaultsFilePath)
	if err != nil {
		logrus.Debugf("Skipping limit checks: %v", err)
		return
	}
	if defaults.Limits.MaxFuel > 0 && cfg.InitialFuel > defaults.Limits.MaxFuel {
		logrus.Warnf("initial fuel %.1fkg exceeds the %.1fkg limit", cfg.InitialFuel, defaults.Limits.MaxFuel)
	}
	if defaults.Limits.MaxGrip > 0 && cfg.InitialGrip > defaults.Limits.MaxGrip {
		logrus.Warnf("initial grip %.3f exceeds the %.3f limit", cfg.InitialGrip, defaults.Limits.MaxGrip)
	}
}
