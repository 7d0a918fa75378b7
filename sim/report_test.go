package sim

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stintsim/stintsim/sim/trace"
)

func TestPrintStint_RendersLapsAndSummary(t *testing.T) {
	// GIVEN a simulated stint
	laps, summary, err := Simulate(validConfig())
	require.NoError(t, err)

	// WHEN rendered
	var buf bytes.Buffer
	PrintStint(&buf, laps, summary)
	out := buf.String()

	// THEN header, lap times and totals appear
	assert.Contains(t, out, "LAP TIME")
	assert.Contains(t, out, "01:46.000")
	assert.Contains(t, out, "94.100")
	assert.Contains(t, out, "0:05:18.000")
	assert.NotContains(t, out, depletedMark)
}

func TestPrintStint_MarksDepletedLaps(t *testing.T) {
	cfg := validConfig()
	cfg.InitialFuel = 5
	laps, summary, err := Simulate(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintStint(&buf, laps, summary)

	assert.Contains(t, buf.String(), "-0.300"+depletedMark)
}

func TestPrintRace_RendersStintsAndPits(t *testing.T) {
	r, err := SimulateRace(threeStintRace(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintRace(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "PIT x2")
	assert.Contains(t, out, "1:37:54.000")
}

func TestPrintTraceSummary_FirstDepletedLap(t *testing.T) {
	lt := trace.NewLapTrace(trace.TraceConfig{Level: trace.TraceLevelLaps})
	_, err := SimulateRace(threeStintRace(), lt)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintTraceSummary(&buf, trace.Summarize(lt))

	assert.Regexp(t, `first fuel depleted lap\s*│\s*19\s`, buf.String())
}

func TestSaveResults_WritesJSON(t *testing.T) {
	// GIVEN a stint report
	laps, summary, err := Simulate(validConfig())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "out.json")

	// WHEN saved
	require.NoError(t, SaveResults(path, StintReport{Config: validConfig(), Laps: laps, Summary: summary}))

	// THEN the file decodes back with the same totals
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 318.0, got["summary"].(map[string]any)["total_time_s"])
	assert.Len(t, got["laps"], 3)
}

func TestSaveResults_EmptyPath_NoOp(t *testing.T) {
	assert.NoError(t, SaveResults("", StintReport{}))
}

func TestSaveResults_BadPath(t *testing.T) {
	err := SaveResults("/nonexistent/dir/out.json", StintReport{})
	assert.Error(t, err)
}
