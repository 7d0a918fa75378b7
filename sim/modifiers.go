// sim/modifiers.go
package sim

import (
	"fmt"
	"math"
	"sort"
)

// EngineMode selects a power map, which scales the fuel consumption rate.
type EngineMode string

const (
	EngineModeQualifying EngineMode = "qualifying"
	EngineModeRace       EngineMode = "race"
	EngineModeConserve   EngineMode = "conserve"
	EngineModeWet        EngineMode = "wet"
)

var engineFuelFactors = map[EngineMode]float64{
	EngineModeQualifying: 1.20,
	EngineModeRace:       1.00,
	EngineModeConserve:   0.80,
	EngineModeWet:        0.90,
}

// FuelFactor returns the fuel-rate multiplier of the mode. The empty mode is neutral.
func (m EngineMode) FuelFactor() float64 {
	if f, ok := engineFuelFactors[m]; ok {
		return f
	}
	return 1
}

// TrackCondition describes the racing surface, which scales the available grip.
type TrackCondition string

const (
	TrackConditionDry      TrackCondition = "dry"
	TrackConditionWet      TrackCondition = "wet"
	TrackConditionRubbered TrackCondition = "rubbered"
	TrackConditionDusty    TrackCondition = "dusty"
)

var trackGripFactors = map[TrackCondition]float64{
	TrackConditionDry:      1.0,
	TrackConditionWet:      0.6,
	TrackConditionRubbered: 1.1,
	TrackConditionDusty:    0.8,
}

// GripFactor returns the grip multiplier of the condition. The empty condition is neutral.
func (c TrackCondition) GripFactor() float64 {
	if f, ok := trackGripFactors[c]; ok {
		return f
	}
	return 1
}

// Compound is a tyre compound. Its hardness scales the wear rate.
type Compound string

const (
	CompoundSoft   Compound = "soft"
	CompoundMedium Compound = "medium"
	CompoundHard   Compound = "hard"
)

var compoundHardness = map[Compound]float64{
	CompoundSoft:   0.8,
	CompoundMedium: 1.0,
	CompoundHard:   1.2,
}

// Hardness returns the wear-rate multiplier of the compound. The empty compound is medium.
func (c Compound) Hardness() float64 {
	if h, ok := compoundHardness[c]; ok {
		return h
	}
	return 1
}

// baseWearPerKm is the wear of a medium compound per kilometre (0 = new, 1 = fully worn).
const baseWearPerKm = 0.0001

// TyreWear advances a wear level over distanceKm for a compound of the given hardness.
// The result is clamped to [0, 1].
func TyreWear(prevWear, distanceKm, hardness float64) float64 {
	wear := prevWear + baseWearPerKm*hardness*distanceKm
	return math.Min(1, math.Max(0, wear))
}

// MuWithWear reduces a friction coefficient by up to 20% at full wear.
func MuWithWear(baseMu, wear float64) float64 {
	return baseMu * (1 - 0.2*wear)
}

// CombinedGrip applies a track condition and a temperature multiplier to baseGrip.
func CombinedGrip(baseGrip float64, condition TrackCondition, tempFactor float64) float64 {
	return baseGrip * condition.GripFactor() * tempFactor
}

// Modifiers adjust a resolved StintConfig for engine map, surface and tyre choice.
// Zero values leave the config unchanged.
type Modifiers struct {
	EngineMode     EngineMode     `yaml:"engine_mode" json:"engine_mode,omitempty"`
	TrackCondition TrackCondition `yaml:"track_condition" json:"track_condition,omitempty"`
	Compound       Compound       `yaml:"compound" json:"compound,omitempty"`
	GripTempFactor float64        `yaml:"grip_temp_factor" json:"grip_temp_factor,omitempty"` // 0 means 1
}

// Validate rejects unknown names and a non-positive temperature factor.
func (m Modifiers) Validate() error {
	if m.EngineMode != "" {
		if _, ok := engineFuelFactors[m.EngineMode]; !ok {
			return unknownName("engine mode", string(m.EngineMode), engineFuelFactors)
		}
	}
	if m.TrackCondition != "" {
		if _, ok := trackGripFactors[m.TrackCondition]; !ok {
			return unknownName("track condition", string(m.TrackCondition), trackGripFactors)
		}
	}
	if m.Compound != "" {
		if _, ok := compoundHardness[m.Compound]; !ok {
			return unknownName("compound", string(m.Compound), compoundHardness)
		}
	}
	if m.GripTempFactor < 0 || math.IsNaN(m.GripTempFactor) || math.IsInf(m.GripTempFactor, 0) {
		return &ConfigError{Field: "grip_temp_factor", Value: m.GripTempFactor, Reason: "must be a finite positive number"}
	}
	return nil
}

// Apply returns cfg with FuelRate scaled by the engine mode, InitialGrip by the track
// condition and temperature, and GripDegradation by the compound hardness.
func (m Modifiers) Apply(cfg StintConfig) StintConfig {
	temp := m.GripTempFactor
	if temp == 0 {
		temp = 1
	}
	cfg.FuelRate *= m.EngineMode.FuelFactor()
	cfg.InitialGrip = CombinedGrip(cfg.InitialGrip, m.TrackCondition, temp)
	cfg.GripDegradation *= m.Compound.Hardness()
	return cfg
}

func unknownName[K ~string](kind, name string, known map[K]float64) error {
	names := make([]string, 0, len(known))
	for k := range known {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return fmt.Errorf("unknown %s %q; valid: %v: %w", kind, name, names, ErrInvalidConfig)
}
