// sim/stint.go
package sim

import (
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/stintsim/stintsim/sim/trace"
)

// LapRecord is the state of the car at the end of one simulated lap.
type LapRecord struct {
	Lap           int     `json:"lap"`               // 1..N within the stint
	LapTime       float64 `json:"lap_time_s"`        // constant within a stint
	Elapsed       float64 `json:"elapsed_s"`         // LapTime x Lap
	FuelRemaining float64 `json:"fuel_remaining_kg"` // may be negative when under-fuelled
	Grip          float64 `json:"grip"`              // may be negative, no floor
	FuelDepleted  bool    `json:"fuel_depleted,omitempty"`
	GripDepleted  bool    `json:"grip_depleted,omitempty"`
}

// Sample converts the record into a trace sample tagged with its stint index.
func (r LapRecord) Sample(stint int) trace.LapSample {
	return trace.LapSample{
		Stint:         stint,
		Lap:           r.Lap,
		LapTime:       r.LapTime,
		FuelRemaining: r.FuelRemaining,
		Grip:          r.Grip,
		FuelDepleted:  r.FuelDepleted,
		GripDepleted:  r.GripDepleted,
	}
}

// StintSummary is the terminal artifact of a stint.
type StintSummary struct {
	Laps         int     `json:"laps"`
	TotalTime    float64 `json:"total_time_s"`
	FinalFuel    float64 `json:"final_fuel_kg"`
	FinalGrip    float64 `json:"final_grip"`
	FuelDepleted bool    `json:"fuel_depleted,omitempty"`
	GripDepleted bool    `json:"grip_depleted,omitempty"`
}

// Stint is a validated, replayable stint simulation.
// It holds no mutable state; every call to Laps starts a fresh deterministic pass.
type Stint struct {
	cfg     StintConfig
	lapTime float64
}

// NewStint validates cfg and precomputes the constant lap time.
// Invalid configs fail here, before any lap exists.
func NewStint(cfg StintConfig) (*Stint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lt, err := LapTime(cfg.LapDistance, cfg.AvgSpeed)
	if err != nil {
		return nil, err
	}
	return newStint(cfg, lt), nil
}

// newStint skips validation; race chaining uses it for stints whose carried-over
// fuel or grip already went negative.
func newStint(cfg StintConfig, lapTime float64) *Stint {
	return &Stint{cfg: cfg, lapTime: lapTime}
}

// Config returns a copy of the stint's configuration.
func (s *Stint) Config() StintConfig { return s.cfg }

// LapTime returns the constant lap time of the stint.
func (s *Stint) LapTime() float64 { return s.lapTime }

func (s *Stint) lap(i int) LapRecord {
	fuel := FuelRemaining(s.cfg.InitialFuel, s.cfg.FuelRate, s.lapTime, i)
	grip := GripAfter(s.cfg.InitialGrip, s.cfg.GripDegradation, i)
	return LapRecord{
		Lap:           i,
		LapTime:       s.lapTime,
		Elapsed:       s.lapTime * float64(i),
		FuelRemaining: fuel,
		Grip:          grip,
		FuelDepleted:  fuel < 0,
		GripDepleted:  grip < 0,
	}
}

// Laps yields exactly cfg.Laps records, lap 1 first.
func (s *Stint) Laps() iter.Seq[LapRecord] {
	return func(yield func(LapRecord) bool) {
		warned := false
		for i := 1; i <= s.cfg.Laps; i++ {
			rec := s.lap(i)
			logrus.Debugf("[lap %03d] t=%.3fs fuel=%.3fkg grip=%.4f", rec.Lap, rec.Elapsed, rec.FuelRemaining, rec.Grip)
			if !warned && (rec.FuelDepleted || rec.GripDepleted) {
				logrus.Warnf("[lap %03d] resource depleted (fuel=%.3fkg, grip=%.4f)", rec.Lap, rec.FuelRemaining, rec.Grip)
				warned = true
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Summary derives the stint totals. TotalTime is LapTime x N as a single product.
func (s *Stint) Summary() StintSummary {
	last := s.lap(s.cfg.Laps)
	return StintSummary{
		Laps:         s.cfg.Laps,
		TotalTime:    s.lapTime * float64(s.cfg.Laps),
		FinalFuel:    last.FuelRemaining,
		FinalGrip:    last.Grip,
		FuelDepleted: last.FuelDepleted,
		GripDepleted: last.GripDepleted,
	}
}

// Simulate runs a stint eagerly. On error no records are returned.
func Simulate(cfg StintConfig) ([]LapRecord, StintSummary, error) {
	s, err := NewStint(cfg)
	if err != nil {
		return nil, StintSummary{}, err
	}
	laps := make([]LapRecord, 0, cfg.Laps)
	for rec := range s.Laps() {
		laps = append(laps, rec)
	}
	summary := s.Summary()
	logrus.Infof("Stint complete: %d laps of %.3fs, %.3fs, fuel=%.3fkg, grip=%.4f",
		summary.Laps, s.LapTime(), summary.TotalTime, summary.FinalFuel, summary.FinalGrip)
	return laps, summary, nil
}
