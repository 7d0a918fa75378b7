package trace

// TraceLevel controls the verbosity of lap tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelLaps captures every lap and pit stop.
	TraceLevelLaps TraceLevel = "laps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone: true,
	TraceLevelLaps: true,
	"":             true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether samples should be recorded.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelLaps
}

// LapTrace collects lap and pit samples during a simulation.
type LapTrace struct {
	Config TraceConfig
	Laps   []LapSample
	Pits   []PitSample
}

// NewLapTrace creates a LapTrace ready for recording.
func NewLapTrace(config TraceConfig) *LapTrace {
	return &LapTrace{
		Config: config,
		Laps:   make([]LapSample, 0),
		Pits:   make([]PitSample, 0),
	}
}

// RecordLap appends a lap sample. No-op on a nil trace or when tracing is disabled.
func (lt *LapTrace) RecordLap(sample LapSample) {
	if lt == nil || !lt.Config.Enabled() {
		return
	}
	lt.Laps = append(lt.Laps, sample)
}

// RecordPit appends a pit-stop sample. No-op on a nil trace or when tracing is disabled.
func (lt *LapTrace) RecordPit(sample PitSample) {
	if lt == nil || !lt.Config.Enabled() {
		return
	}
	lt.Pits = append(lt.Pits, sample)
}
