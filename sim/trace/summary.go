package trace

// TraceSummary aggregates statistics from a LapTrace.
type TraceSummary struct {
	TotalLaps        int
	PitStops         int
	PitTime          float64
	FuelDepletedLaps int
	GripDepletedLaps int
	// FirstFuelDepleted and FirstGripDepleted are 1-based race-wide lap numbers; 0 means never.
	FirstFuelDepleted int
	FirstGripDepleted int
	MinFuel           float64
	MinGrip           float64
	MeanLapTime       float64
	LapsPerStint      map[int]int // stint index → lap count
}

// Summarize computes aggregate statistics from a LapTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(lt *LapTrace) *TraceSummary {
	summary := &TraceSummary{
		LapsPerStint: make(map[int]int),
	}
	if lt == nil {
		return summary
	}

	summary.PitStops = len(lt.Pits)
	for _, p := range lt.Pits {
		summary.PitTime += p.Duration
	}

	if len(lt.Laps) == 0 {
		return summary
	}

	summary.TotalLaps = len(lt.Laps)
	summary.MinFuel = lt.Laps[0].FuelRemaining
	summary.MinGrip = lt.Laps[0].Grip
	totalLapTime := 0.0
	for i, l := range lt.Laps {
		raceLap := i + 1
		summary.LapsPerStint[l.Stint]++
		totalLapTime += l.LapTime
		if l.FuelDepleted {
			summary.FuelDepletedLaps++
			if summary.FirstFuelDepleted == 0 {
				summary.FirstFuelDepleted = raceLap
			}
		}
		if l.GripDepleted {
			summary.GripDepletedLaps++
			if summary.FirstGripDepleted == 0 {
				summary.FirstGripDepleted = raceLap
			}
		}
		summary.MinFuel = min(summary.MinFuel, l.FuelRemaining)
		summary.MinGrip = min(summary.MinGrip, l.Grip)
	}
	summary.MeanLapTime = totalLapTime / float64(len(lt.Laps))

	return summary
}
