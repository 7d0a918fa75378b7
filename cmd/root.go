package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stintsim/stintsim/sim"
)

var (
	logLevel         string // Log verbosity level
	defaultsFilePath string // Track presets and car limits
	outputFilePath   string // Optional JSON results file

	// CLI flags for the car and track
	track           string  // Track preset name from defaults.yaml
	scenarioPath    string  // Optional YAML scenario file
	lapDistance     float64 // Lap length (m)
	avgSpeed        float64 // Average lap speed (m/s)
	fuelRate        float64 // Fuel consumption (kg/s)
	initialFuel     float64 // Fuel at the start of the stint (kg)
	initialGrip     float64 // Grip coefficient at the start of the stint
	gripDegradation float64 // Grip lost per lap
	laps            int     // Laps in the stint
	pitStopTime     float64 // Pit-stop duration between chained stints (s)

	// Stint input modifiers
	engineMode     string  // Engine map scaling the fuel rate
	trackCondition string  // Surface condition scaling the initial grip
	compound       string  // Tyre compound scaling grip degradation
	gripTempFactor float64 // Temperature grip multiplier
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "stintsim",
	Short: "Lap-by-lap stint and race strategy simulator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// stintCmd simulates a single stint using parameters from CLI flags
var stintCmd = newStintCmd()

func newStintCmd() *cobra.Command {
	c := &cobra.Command{
		Use:          "stint",
		Short:        "Simulate one stint lap by lap",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := buildStintConfig(cmd, false)
			if err != nil {
				return err
			}
			logrus.Infof("Starting stint: %d laps of %.0fm at %.2fm/s, fuel=%.1fkg, grip=%.3f",
				cfg.Laps, cfg.LapDistance, cfg.AvgSpeed, cfg.InitialFuel, cfg.InitialGrip)

			lapRecords, summary, err := sim.Simulate(cfg)
			if err != nil {
				return fmt.Errorf("simulating stint: %w", err)
			}
			sim.PrintStint(cmd.OutOrStdout(), lapRecords, summary)
			return sim.SaveResults(outputFilePath, sim.StintReport{Config: cfg, Laps: lapRecords, Summary: summary})
		},
	}
	registerCarFlags(c)
	c.Flags().StringVar(&outputFilePath, "output", "", "Write results as JSON to this file")
	return c
}

// registerCarFlags adds the car and track flags shared by stint, race and telemetry.
// The flags bind package-level variables, so defaults must be identical across commands.
func registerCarFlags(c *cobra.Command) {
	c.Flags().StringVar(&track, "track", "", "Track preset from the defaults file (sets distance, speed, pit time; race length on race only)")
	c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; explicit flags override it")
	c.Flags().Float64Var(&lapDistance, "lap-distance", 5300, "Lap length (m)")
	c.Flags().Float64Var(&avgSpeed, "avg-speed", 65, "Average lap speed (m/s)")
	c.Flags().Float64Var(&fuelRate, "fuel-rate", 0.08, "Fuel consumption (kg/s)")
	c.Flags().Float64Var(&initialFuel, "initial-fuel", 110, "Fuel at the start (kg)")
	c.Flags().Float64Var(&initialGrip, "initial-grip", 1.2, "Grip coefficient at the start")
	c.Flags().Float64Var(&gripDegradation, "grip-degradation", 0.02, "Grip lost per lap")
	c.Flags().Float64Var(&pitStopTime, "pit-stop-time", 22, "Pit-stop duration between stints (s)")
	c.Flags().IntVar(&laps, "laps", 20, "Laps in the stint")
	c.Flags().StringVar(&engineMode, "engine-mode", "", "Engine map scaling the fuel rate (qualifying, race, conserve, wet)")
	c.Flags().StringVar(&trackCondition, "track-condition", "", "Surface scaling the initial grip (dry, wet, rubbered, dusty)")
	c.Flags().StringVar(&compound, "compound", "", "Tyre compound scaling grip degradation (soft, medium, hard)")
	c.Flags().Float64Var(&gripTempFactor, "grip-temp-factor", 1, "Temperature multiplier on the initial grip")
}

// buildStintConfig resolves the stint config with precedence
// flag defaults < track preset < scenario file < explicitly set flags,
// then applies the engine, surface and tyre modifiers.
// raceLength lets the track preset's race_laps set Laps.
func buildStintConfig(cmd *cobra.Command, raceLength bool) (sim.StintConfig, *sim.Scenario, error) {
	cfg := sim.StintConfig{
		LapDistance:     lapDistance,
		AvgSpeed:        avgSpeed,
		FuelRate:        fuelRate,
		InitialFuel:     initialFuel,
		InitialGrip:     initialGrip,
		GripDegradation: gripDegradation,
		Laps:            laps,
		PitStopTime:     pitStopTime,
	}

	var sc *sim.Scenario
	if scenarioPath != "" {
		var err error
		if sc, err = sim.LoadScenario(scenarioPath); err != nil {
			return sim.StintConfig{}, nil, err
		}
	}

	trackName := track
	if trackName == "" && sc != nil {
		trackName = sc.Track
	}
	if trackName != "" {
		preset, err := GetTrackPreset(trackName, defaultsFilePath)
		if err != nil {
			return sim.StintConfig{}, nil, err
		}
		preset.ApplyTo(&cfg)
		if raceLength && preset.RaceLaps > 0 {
			cfg.Laps = preset.RaceLaps
		}
	}
	if sc != nil {
		sc.ApplyTo(&cfg)
	}
	applyChangedFlags(cmd, &cfg)

	mods := resolveModifiers(cmd, sc)
	if err := mods.Validate(); err != nil {
		return sim.StintConfig{}, nil, err
	}
	cfg = mods.Apply(cfg)
	logrus.Debugf("Modifiers %+v: fuel rate %.4fkg/s, grip %.3f, degradation %.4f/lap",
		mods, cfg.FuelRate, cfg.InitialGrip, cfg.GripDegradation)

	warnLimits(cfg, defaultsFilePath)
	return cfg, sc, nil
}

// applyChangedFlags re-applies flags the user set explicitly, so they beat presets and scenarios.
func applyChangedFlags(cmd *cobra.Command, cfg *sim.StintConfig) {
	floats := map[string]struct {
		dst *float64
		val float64
	}{
		"lap-distance":     {&cfg.LapDistance, lapDistance},
		"avg-speed":        {&cfg.AvgSpeed, avgSpeed},
		"fuel-rate":        {&cfg.FuelRate, fuelRate},
		"initial-fuel":     {&cfg.InitialFuel, initialFuel},
		"initial-grip":     {&cfg.InitialGrip, initialGrip},
		"grip-degradation": {&cfg.GripDegradation, gripDegradation},
		"pit-stop-time":    {&cfg.PitStopTime, pitStopTime},
	}
	for name, f := range floats {
		if cmd.Flags().Changed(name) {
			*f.dst = f.val
		}
	}
	if cmd.Flags().Changed("laps") {
		cfg.Laps = laps
	}
}

// resolveModifiers starts from the scenario's modifiers and lets explicit flags override them.
func resolveModifiers(cmd *cobra.Command, sc *sim.Scenario) sim.Modifiers {
	var mods sim.Modifiers
	if sc != nil {
		mods = sc.Modifiers
	}
	if cmd.Flags().Changed("engine-mode") {
		mods.EngineMode = sim.EngineMode(engineMode)
	}
	if cmd.Flags().Changed("track-condition") {
		mods.TrackCondition = sim.TrackCondition(trackCondition)
	}
	if cmd.Flags().Changed("compound") {
		mods.Compound = sim.Compound(compound)
	}
	if cmd.Flags().Changed("grip-temp-factor") {
		mods.GripTempFactor = gripTempFactor
	}
	return mods
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.stintsim.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsFilePath, "defaults", "defaults.yaml", "Track presets and car limits file")

	rootCmd.AddCommand(stintCmd)
	rootCmd.AddCommand(raceCmd)
	rootCmd.AddCommand(telemetryCmd)
	rootCmd.AddCommand(dynamicsCmd)
}
