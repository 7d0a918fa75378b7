// Package dynamics holds single-formula vehicle dynamics estimates.
// All distances are in metres, speeds in m/s, masses in kg and forces in N.
package dynamics

import (
	"math"

	"github.com/stintsim/stintsim/sim"
)

// Gravity is standard gravitational acceleration in m/s².
const Gravity = 9.81

// DefaultReactionTime is the driver reaction time used when none is given, in seconds.
const DefaultReactionTime = 1.5

// BrakingDistance returns the minimum distance to stop from speed with tyre-road
// friction mu and brake efficiency in (0, 1].
func BrakingDistance(speed, mu, efficiency float64) (float64, error) {
	if !(mu > 0) {
		return 0, &sim.ConfigError{Field: "friction_coefficient", Value: mu, Reason: "must be positive"}
	}
	if err := validateEfficiency(efficiency); err != nil {
		return 0, err
	}
	return speed * speed / (2 * mu * efficiency * Gravity), nil
}

// StoppingDistance splits a full stop into reaction and braking phases.
type StoppingDistance struct {
	ReactionDistance      float64 `json:"reaction_distance_m"`
	BrakingDistance       float64 `json:"braking_distance_m"`
	TotalDistance         float64 `json:"total_distance_m"`
	ReactionTime          float64 `json:"reaction_time_s"`
	EffectiveDeceleration float64 `json:"effective_deceleration_g"`
}

// TotalStoppingDistance includes reaction time and a road gradient in percent
// (positive uphill, negative downhill).
func TotalStoppingDistance(speed, mu, reactionTime, efficiency, gradientPercent float64) (StoppingDistance, error) {
	if !(mu > 0) {
		return StoppingDistance{}, &sim.ConfigError{Field: "friction_coefficient", Value: mu, Reason: "must be positive"}
	}
	if err := validateEfficiency(efficiency); err != nil {
		return StoppingDistance{}, err
	}
	if reactionTime < 0 {
		return StoppingDistance{}, &sim.ConfigError{Field: "reaction_time", Value: reactionTime, Reason: "must be non-negative"}
	}

	angle := math.Atan(gradientPercent / 100)
	effectiveG := Gravity * (mu*math.Cos(angle) + math.Sin(angle))
	if !(effectiveG > 0) {
		// Steep downhill beyond what friction can hold: the car never stops.
		return StoppingDistance{}, &sim.DivisionError{Field: "effective_deceleration", Value: effectiveG}
	}

	reaction := speed * reactionTime
	braking := speed * speed / (2 * effectiveG * efficiency)
	return StoppingDistance{
		ReactionDistance:      reaction,
		BrakingDistance:       braking,
		TotalDistance:         reaction + braking,
		ReactionTime:          reactionTime,
		EffectiveDeceleration: effectiveG / Gravity,
	}, nil
}

// LateralAcceleration returns the centripetal acceleration at speed through a turn of radius.
func LateralAcceleration(speed, radius float64) (float64, error) {
	if !(radius > 0) {
		return 0, &sim.DivisionError{Field: "radius", Value: radius}
	}
	return speed * speed / radius, nil
}

// MaxCornerSpeed is the inverse of LateralAcceleration at the grip limit mu·g.
func MaxCornerSpeed(radius, mu float64) (float64, error) {
	if !(radius > 0) {
		return 0, &sim.ConfigError{Field: "radius", Value: radius, Reason: "must be positive"}
	}
	if mu < 0 {
		return 0, &sim.ConfigError{Field: "friction_coefficient", Value: mu, Reason: "must be non-negative"}
	}
	return math.Sqrt(mu * Gravity * radius), nil
}

// LongitudinalWeightTransfer returns the load moved between axles under acceleration
// (negative when braking).
func LongitudinalWeightTransfer(mass, acceleration, cgHeight, wheelbase float64) (float64, error) {
	if !(wheelbase > 0) {
		return 0, &sim.DivisionError{Field: "wheelbase", Value: wheelbase}
	}
	return cgHeight * mass * acceleration / wheelbase, nil
}

func validateEfficiency(efficiency float64) error {
	if !(efficiency > 0) || efficiency > 1 {
		return &sim.ConfigError{Field: "efficiency", Value: efficiency, Reason: "must be in (0, 1]"}
	}
	return nil
}
