package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stintsim/stintsim/sim"
)

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testDefaults = `
version: "1"
limits:
  max_fuel: 110
  max_grip: 1.5
tracks:
  short:
    lap_distance: 2000
    avg_speed: 40
    pit_stop_time: 18
    race_laps: 30
  partial:
    avg_speed: 50
`

func TestLoadDefaultsConfig_ParsesTracksAndLimits(t *testing.T) {
	// GIVEN a defaults file with two tracks
	path := writeDefaults(t, testDefaults)

	// WHEN loaded
	cfg, err := loadDefaultsConfig(path)

	// THEN every section is populated
	require.NoError(t, err)
	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, 110.0, cfg.Limits.MaxFuel)
	assert.Len(t, cfg.Tracks, 2)
	assert.Equal(t, 30, cfg.Tracks["short"].RaceLaps)
}

func TestLoadDefaultsConfig_RejectsUnknownKeys(t *testing.T) {
	// GIVEN a typo in a track field
	path := writeDefaults(t, "tracks:\n  short:\n    lap_distanse: 2000\n")

	// WHEN loaded, THEN strict parsing fails
	_, err := loadDefaultsConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lap_distanse")
}

func TestGetTrackPreset_UnknownTrackListsValidNames(t *testing.T) {
	path := writeDefaults(t, testDefaults)

	_, err := GetTrackPreset("imola", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown track "imola"`)
	assert.Contains(t, err.Error(), "[partial short]")
}

func TestTrackPreset_ApplyTo_OnlyOverridesSetFields(t *testing.T) {
	// GIVEN a preset with only avg_speed
	path := writeDefaults(t, testDefaults)
	preset, err := GetTrackPreset("partial", path)
	require.NoError(t, err)
	cfg := sim.StintConfig{LapDistance: 5300, AvgSpeed: 65, Laps: 20, PitStopTime: 22}

	// WHEN applied
	preset.ApplyTo(&cfg)

	// THEN only the speed changes
	assert.Equal(t, 50.0, cfg.AvgSpeed)
	assert.Equal(t, 5300.0, cfg.LapDistance)
	assert.Equal(t, 20, cfg.Laps)
	assert.Equal(t, 22.0, cfg.PitStopTime)
}

func TestTrackPreset_ApplyTo_LeavesLapsAlone(t *testing.T) {
	// GIVEN a preset with a 30-lap race length
	path := writeDefaults(t, testDefaults)
	preset, err := GetTrackPreset("short", path)
	require.NoError(t, err)
	cfg := sim.StintConfig{Laps: 12}

	// WHEN applied
	preset.ApplyTo(&cfg)

	// THEN the circuit fields change but the stint length does not
	assert.Equal(t, 2000.0, cfg.LapDistance)
	assert.Equal(t, 12, cfg.Laps)
}

func TestBundledDefaults_EveryTrackIsValid(t *testing.T) {
	path := "../defaults.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("defaults.yaml not found, skipping integration test")
	}
	cfg, err := loadDefaultsConfig(path)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Tracks)

	for name, preset := range cfg.Tracks {
		stint := sim.StintConfig{FuelRate: 0.08, InitialFuel: 100, InitialGrip: 1.2, GripDegradation: 0.02, Laps: preset.RaceLaps}
		preset.ApplyTo(&stint)
		assert.NoError(t, stint.Validate(), "track %s", name)
	}
}
