// Package trace provides per-lap trace recording for stint and race analysis.
// This package has no dependencies on sim/; it stores plain data types.
package trace

// LapSample captures the car state at the end of a single lap.
type LapSample struct {
	Stint         int // 0-based stint index within a race; 0 for a lone stint
	Lap           int // 1-based lap within the stint
	LapTime       float64
	FuelRemaining float64
	Grip          float64
	FuelDepleted  bool
	GripDepleted  bool
}

// PitSample captures a pit stop between two stints.
type PitSample struct {
	AfterStint int
	Duration   float64
	Fuel       float64 // carried into the next stint
	Grip       float64 // carried into the next stint
}
