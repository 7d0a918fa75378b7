package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineMode_FuelFactor(t *testing.T) {
	tests := []struct {
		mode EngineMode
		want float64
	}{
		{EngineModeQualifying, 1.2},
		{EngineModeRace, 1.0},
		{EngineModeConserve, 0.8},
		{EngineModeWet, 0.9},
		{"", 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.FuelFactor(), "mode %q", tt.mode)
	}
}

func TestTrackCondition_GripFactor(t *testing.T) {
	assert.Equal(t, 1.0, TrackConditionDry.GripFactor())
	assert.Equal(t, 0.6, TrackConditionWet.GripFactor())
	assert.Equal(t, 1.1, TrackConditionRubbered.GripFactor())
	assert.Equal(t, 0.8, TrackConditionDusty.GripFactor())
	assert.Equal(t, 1.0, TrackCondition("").GripFactor())
}

func TestCombinedGrip_WetAndCool(t *testing.T) {
	// GIVEN base grip 1.2 on a wet track at a 0.95 temperature factor
	// THEN grip = 1.2 x 0.6 x 0.95
	assert.InDelta(t, 0.684, CombinedGrip(1.2, TrackConditionWet, 0.95), 1e-12)
}

func TestTyreWear_ClampedToUnitRange(t *testing.T) {
	// GIVEN five 5 km laps on a medium compound
	wear := 0.0
	for i := 0; i < 5; i++ {
		wear = TyreWear(wear, 5, CompoundMedium.Hardness())
	}
	assert.InDelta(t, 0.0025, wear, 1e-12)

	assert.Equal(t, 1.0, TyreWear(0.99, 1000, CompoundHard.Hardness()))
	assert.Equal(t, 0.0, TyreWear(0, -10, CompoundSoft.Hardness()))
}

func TestMuWithWear(t *testing.T) {
	assert.Equal(t, 1.1, MuWithWear(1.1, 0))
	assert.InDelta(t, 0.88, MuWithWear(1.1, 1), 1e-12)
}

func TestModifiers_Apply_ScalesStintInputs(t *testing.T) {
	// GIVEN conserve mode, a rubbered track and hard tyres
	m := Modifiers{EngineMode: EngineModeConserve, TrackCondition: TrackConditionRubbered, Compound: CompoundHard}
	cfg := validConfig()

	// WHEN applied
	got := m.Apply(cfg)

	// THEN fuel, grip and degradation scale and the input is untouched
	assert.InDelta(t, 0.05*0.8, got.FuelRate, 1e-12)
	assert.InDelta(t, 1.0*1.1, got.InitialGrip, 1e-12)
	assert.InDelta(t, 0.02*1.2, got.GripDegradation, 1e-12)
	assert.Equal(t, cfg.AvgSpeed, got.AvgSpeed)
	assert.Equal(t, 0.05, cfg.FuelRate)
}

func TestModifiers_ZeroValueIsNeutral(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, cfg, Modifiers{}.Apply(cfg))
	assert.NoError(t, Modifiers{}.Validate())
}

func TestModifiers_Validate_UnknownNames(t *testing.T) {
	tests := []struct {
		name string
		mods Modifiers
		want string
	}{
		{"engine", Modifiers{EngineMode: "turbo"}, `unknown engine mode "turbo"; valid: [conserve qualifying race wet]`},
		{"condition", Modifiers{TrackCondition: "icy"}, `unknown track condition "icy"`},
		{"compound", Modifiers{Compound: "inter"}, `unknown compound "inter"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mods.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestModifiers_Validate_NegativeTempFactor(t *testing.T) {
	var cfgErr *ConfigError
	require.True(t, errors.As(Modifiers{GripTempFactor: -0.5}.Validate(), &cfgErr))
	assert.Equal(t, "grip_temp_factor", cfgErr.Field)
}
