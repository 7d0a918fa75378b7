// Package sim provides the stint simulation engine for race strategy estimates.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - formula.go: closed-form lap time, fuel burn and grip decay
//   - config.go: StintConfig and its validating constructor
//   - stint.go: the lap loop (Stint.Laps) and the stint summary
//   - race.go: stints chained through pit stops with carry-over of fuel and grip
//   - modifiers.go: engine map, track condition and tyre compound adjustments to a config
//
// # Architecture
//
// Supporting sub-packages:
//   - sim/trace/: per-lap trace recording and depletion statistics
//   - sim/telemetry/: seeded synthetic lap telemetry around a StintConfig
//   - sim/dynamics/: single-formula vehicle dynamics (braking, cornering, weight transfer)
//
// # Errors
//
// Invalid input fails before any lap is produced with *ConfigError, or *DivisionError
// for a non-positive average speed. Both match errors.Is(err, ErrInvalidConfig), and a
// *DivisionError also satisfies errors.As with a **ConfigError target.
// Fuel or grip going negative is not an error; it is flagged on each LapRecord.
package sim
