package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLapTime_PositiveInputs_DistanceOverSpeed(t *testing.T) {
	tests := []struct {
		distance, speed float64
	}{
		{5300, 50},
		{5300, 65},
		{7004, 61.3},
		{1, 1e-3},
		{0, 10},
	}
	for _, tt := range tests {
		got, err := LapTime(tt.distance, tt.speed)
		require.NoError(t, err)
		assert.InDelta(t, tt.distance/tt.speed, got, 1e-12)
	}
}

func TestLapTime_ExampleTrack_106Seconds(t *testing.T) {
	got, err := LapTime(5300, 50)
	require.NoError(t, err)
	assert.Equal(t, 106.0, got)
}

func TestLapTime_NonPositiveSpeed_DivisionError(t *testing.T) {
	for _, speed := range []float64{0, -1, -50, math.NaN()} {
		_, err := LapTime(5300, speed)
		require.Error(t, err, "speed=%v", speed)

		var divErr *DivisionError
		assert.True(t, errors.As(err, &divErr), "speed=%v: expected *DivisionError, got %T", speed, err)
		assert.ErrorIs(t, err, ErrDivision)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestFuelBurn_MonotoneNonDecreasing(t *testing.T) {
	values := []float64{0, 0.01, 0.05, 0.08, 1, 10, 106, 1000}
	for i := 1; i < len(values); i++ {
		for _, other := range values {
			// in fuel rate
			assert.LessOrEqual(t, FuelBurn(values[i-1], other), FuelBurn(values[i], other))
			// in lap time
			assert.LessOrEqual(t, FuelBurn(other, values[i-1]), FuelBurn(other, values[i]))
		}
	}
}

func TestFuelBurn_NegativeInputs_PassThrough(t *testing.T) {
	assert.InDelta(t, -10.0, FuelBurn(-0.1, 100), 1e-12)
	assert.InDelta(t, -10.0, FuelBurn(0.1, -100), 1e-12)
}

func TestGripAfter_ZeroLaps_Unchanged(t *testing.T) {
	for _, g0 := range []float64{-1, 0, 0.5, 1.0, 1.5} {
		for _, r := range []float64{0, 0.02, 1, 7} {
			assert.Equal(t, g0, GripAfter(g0, r, 0))
		}
	}
}

func TestGripAfter_PositiveRate_StrictlyDecreasing(t *testing.T) {
	for _, r := range []float64{1e-3, 0.02, 0.5} {
		prev := GripAfter(1.0, r, 0)
		for n := 1; n <= 100; n++ {
			cur := GripAfter(1.0, r, n)
			assert.Less(t, cur, prev, "r=%v n=%d", r, n)
			prev = cur
		}
	}
}

func TestGripAfter_NoFloor(t *testing.T) {
	// GIVEN degradation large enough to exhaust grip
	// WHEN more laps than the grip allows are run
	got := GripAfter(1.0, 0.2, 10)

	// THEN grip goes negative instead of clamping at zero
	assert.InDelta(t, -1.0, got, 1e-12)
}

func TestFuelRemaining_ExampleScenario(t *testing.T) {
	assert.InDelta(t, 104.7, FuelRemaining(110, 0.05, 106, 1), 1e-9)
	assert.InDelta(t, 94.1, FuelRemaining(110, 0.05, 106, 3), 1e-9)
	assert.Equal(t, 110.0, FuelRemaining(110, 0.05, 106, 0))
}
