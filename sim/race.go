// sim/race.go
package sim

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/stintsim/stintsim/sim/trace"
)

// RaceConfig describes a race split into predefined stints.
//
// Pit policy is carry-over: no refuelling and no tyre change. Each stint starts with the
// fuel and grip the previous stint ended with, and only Base.PitStopTime is added per stop.
// Base.Laps is ignored; Stints gives the lap count of each stint.
type RaceConfig struct {
	Base   StintConfig `json:"base"`
	Stints []int       `json:"stints"`
}

// Validate checks the stint plan and the base config of the first stint.
func (rc RaceConfig) Validate() error {
	if len(rc.Stints) == 0 {
		return &ConfigError{Field: "stints", Value: 0, Reason: "must list at least one stint"}
	}
	for i, laps := range rc.Stints {
		if laps <= 0 {
			return fmt.Errorf("stint[%d]: %w", i, &ConfigError{Field: "laps", Value: float64(laps), Reason: "must be positive"})
		}
	}
	first := rc.Base
	first.Laps = rc.Stints[0]
	return first.Validate()
}

// RaceLap is a LapRecord placed on the race timeline.
type RaceLap struct {
	LapRecord
	Stint       int     `json:"stint"`          // 0-based
	RaceLap     int     `json:"race_lap"`       // 1-based across all stints
	RaceElapsed float64 `json:"race_elapsed_s"` // includes pit stops
}

// RaceResult aggregates a chained multi-stint run.
type RaceResult struct {
	Stints    []StintSummary `json:"stints"`
	Laps      []RaceLap      `json:"laps"`
	PitStops  int            `json:"pit_stops"`
	PitTime   float64        `json:"pit_time_s"`
	TotalLaps int            `json:"total_laps"`
	TotalTime float64        `json:"total_time_s"`
	FinalFuel float64        `json:"final_fuel_kg"`
	FinalGrip float64        `json:"final_grip"`
}

// SimulateRace chains the stints of rc. The trace may be nil.
func SimulateRace(rc RaceConfig, lt *trace.LapTrace) (*RaceResult, error) {
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	lapTime, err := LapTime(rc.Base.LapDistance, rc.Base.AvgSpeed)
	if err != nil {
		return nil, err
	}

	result := &RaceResult{
		Stints: make([]StintSummary, 0, len(rc.Stints)),
		Laps:   make([]RaceLap, 0, lo.Sum(rc.Stints)),
	}
	fuel, grip := rc.Base.InitialFuel, rc.Base.InitialGrip
	offset := 0.0
	raceLap := 0

	for i, laps := range rc.Stints {
		if i > 0 {
			offset += rc.Base.PitStopTime
			lt.RecordPit(trace.PitSample{AfterStint: i - 1, Duration: rc.Base.PitStopTime, Fuel: fuel, Grip: grip})
			logrus.Debugf("[stint %d] pit stop %.1fs, carrying fuel=%.3fkg grip=%.4f", i, rc.Base.PitStopTime, fuel, grip)
		}

		cfg := rc.Base
		cfg.Laps = laps
		cfg.InitialFuel = fuel
		cfg.InitialGrip = grip
		s := newStint(cfg, lapTime)

		for rec := range s.Laps() {
			raceLap++
			lt.RecordLap(rec.Sample(i))
			result.Laps = append(result.Laps, RaceLap{
				LapRecord:   rec,
				Stint:       i,
				RaceLap:     raceLap,
				RaceElapsed: offset + rec.Elapsed,
			})
		}

		summary := s.Summary()
		result.Stints = append(result.Stints, summary)
		offset += summary.TotalTime
		fuel, grip = summary.FinalFuel, summary.FinalGrip
		logrus.Infof("[stint %d] %d laps, %.3fs, fuel=%.3fkg, grip=%.4f", i, summary.Laps, summary.TotalTime, fuel, grip)
	}

	result.PitStops = len(rc.Stints) - 1
	result.PitTime = rc.Base.PitStopTime * float64(result.PitStops)
	result.TotalLaps = raceLap
	result.TotalTime = lo.SumBy(result.Stints, func(s StintSummary) float64 { return s.TotalTime }) + result.PitTime
	result.FinalFuel = fuel
	result.FinalGrip = grip
	return result, nil
}
