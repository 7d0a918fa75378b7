// Renders stint and race results as tables and persists them as JSON.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"

	"github.com/stintsim/stintsim/sim/trace"
)

const depletedMark = "!"

// StintReport is the JSON document written for a single stint run.
type StintReport struct {
	Config  StintConfig  `json:"config"`
	Laps    []LapRecord  `json:"laps"`
	Summary StintSummary `json:"summary"`
}

// RaceReport is the JSON document written for a chained race run.
type RaceReport struct {
	Config RaceConfig          `json:"config"`
	Result *RaceResult         `json:"result"`
	Trace  *trace.TraceSummary `json:"trace,omitempty"`
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func mark(v float64, depleted bool) string {
	if depleted {
		return fmt.Sprintf("%.3f%s", v, depletedMark)
	}
	return fmt.Sprintf("%.3f", v)
}

// PrintStint renders the per-lap table followed by the stint summary.
func PrintStint(w io.Writer, laps []LapRecord, summary StintSummary) {
	t := newTable(w)
	t.AppendHeader(table.Row{"LAP", "LAP TIME", "ELAPSED", "FUEL (kg)", "GRIP"})
	for _, l := range laps {
		t.AppendRow(table.Row{
			l.Lap,
			FormatLapTime(l.LapTime),
			FormatRaceTime(l.Elapsed),
			mark(l.FuelRemaining, l.FuelDepleted),
			mark(l.Grip, l.GripDepleted),
		})
	}
	t.AppendFooter(table.Row{
		summary.Laps,
		"",
		FormatRaceTime(summary.TotalTime),
		mark(summary.FinalFuel, summary.FuelDepleted),
		mark(summary.FinalGrip, summary.GripDepleted),
	})
	t.Render()
}

// PrintRace renders one row per stint and the race totals.
func PrintRace(w io.Writer, r *RaceResult) {
	t := newTable(w)
	t.AppendHeader(table.Row{"STINT", "LAPS", "TIME", "FUEL (kg)", "GRIP"})
	for i, s := range r.Stints {
		t.AppendRow(table.Row{
			i + 1,
			s.Laps,
			FormatRaceTime(s.TotalTime),
			mark(s.FinalFuel, s.FuelDepleted),
			mark(s.FinalGrip, s.GripDepleted),
		})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{fmt.Sprintf("PIT x%d", r.PitStops), "", FormatRaceTime(r.PitTime), "", ""})
	t.AppendFooter(table.Row{
		"TOTAL",
		r.TotalLaps,
		FormatRaceTime(r.TotalTime),
		mark(r.FinalFuel, r.FinalFuel < 0),
		mark(r.FinalGrip, r.FinalGrip < 0),
	})
	t.Render()
}

// PrintTraceSummary renders the depletion statistics of a lap trace.
func PrintTraceSummary(w io.Writer, s *trace.TraceSummary) {
	t := newTable(w)
	t.AppendHeader(table.Row{"TRACE", "VALUE"})
	t.AppendRows([]table.Row{
		{"laps", s.TotalLaps},
		{"pit stops", s.PitStops},
		{"mean lap time", FormatLapTime(s.MeanLapTime)},
		{"min fuel (kg)", fmt.Sprintf("%.3f", s.MinFuel)},
		{"min grip", fmt.Sprintf("%.4f", s.MinGrip)},
		{"fuel depleted laps", s.FuelDepletedLaps},
		{"grip depleted laps", s.GripDepletedLaps},
		{"first fuel depleted lap", lapOrDash(s.FirstFuelDepleted)},
		{"first grip depleted lap", lapOrDash(s.FirstGripDepleted)},
	})
	t.Render()
}

func lapOrDash(lap int) string {
	if lap == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", lap)
}

// SaveResults writes v as indented JSON to outputFilePath. An empty path is a no-op.
func SaveResults(outputFilePath string, v any) error {
	if outputFilePath == "" {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	if err := os.WriteFile(outputFilePath, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", outputFilePath, err)
	}
	logrus.Infof("Results written to %s", outputFilePath)
	return nil
}
