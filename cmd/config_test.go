package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_ConfigValuesFillUnsetFlags(t *testing.T) {
	// GIVEN config-file values for laps and the stint plan
	c := newRaceCmd()
	v := viper.New()
	v.Set("laps", 9)
	v.Set("stints", []any{10, 12})

	// WHEN bound
	bindFlags(c, v)

	// THEN both flags take the config values and count as explicitly set
	assert.Equal(t, 9, laps)
	assert.Equal(t, []int{10, 12}, stintPlan)
	assert.True(t, c.Flags().Changed("laps"))
}

func TestBindFlags_CommandLineWins(t *testing.T) {
	c := newStintCmd()
	require.NoError(t, c.ParseFlags([]string{"--laps", "4"}))
	v := viper.New()
	v.Set("laps", 9)

	bindFlags(c, v)

	assert.Equal(t, 4, laps)
}

func TestBindFlags_EnvVarWithPrefix(t *testing.T) {
	// GIVEN STINTSIM_FUEL_RATE in the environment
	t.Setenv("STINTSIM_FUEL_RATE", "0.1")
	c := newStintCmd()

	// WHEN bound
	bindFlags(c, viper.New())

	// THEN the dashed flag picks it up
	assert.Equal(t, 0.1, fuelRate)
	assert.True(t, c.Flags().Changed("fuel-rate"))
}

func TestFlagValue(t *testing.T) {
	assert.Equal(t, "15,20,20", flagValue([]any{15, 20, 20}))
	assert.Equal(t, "0.08", flagValue(0.08))
	assert.Equal(t, "spa", flagValue("spa"))
}
