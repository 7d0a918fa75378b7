package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stintsim/stintsim/sim"
	"github.com/stintsim/stintsim/sim/trace"
)

var (
	stintPlan  []int  // Laps per stint
	traceLevel string // Lap trace verbosity
)

// raceCmd chains several stints with pit stops in between
var raceCmd = newRaceCmd()

func newRaceCmd() *cobra.Command {
	c := &cobra.Command{
		Use:          "race",
		Short:        "Simulate a race as a chain of stints with pit stops",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !trace.IsValidTraceLevel(traceLevel) {
				return fmt.Errorf("invalid --trace-level %q: must be one of none, laps", traceLevel)
			}
			cfg, sc, err := buildStintConfig(cmd, true)
			if err != nil {
				return err
			}

			plan := sc.Plan(cfg.Laps)
			if cmd.Flags().Changed("stints") && len(stintPlan) > 0 {
				plan = stintPlan
			}
			rc := sim.RaceConfig{Base: cfg, Stints: plan}
			logrus.Infof("Starting race: stints=%v, pit stop %.1fs", plan, cfg.PitStopTime)

			lt := trace.NewLapTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
			result, err := sim.SimulateRace(rc, lt)
			if err != nil {
				return fmt.Errorf("simulating race: %w", err)
			}

			out := cmd.OutOrStdout()
			sim.PrintRace(out, result)
			report := sim.RaceReport{Config: rc, Result: result}
			if lt.Config.Enabled() {
				report.Trace = trace.Summarize(lt)
				sim.PrintTraceSummary(out, report.Trace)
			}
			return sim.SaveResults(outputFilePath, report)
		},
	}
	registerCarFlags(c)
	c.Flags().IntSliceVar(&stintPlan, "stints", nil, "Laps per stint, e.g. 15,20,20 (default: one stint of --laps)")
	c.Flags().StringVar(&traceLevel, "trace-level", "none", "Lap trace level (none, laps)")
	c.Flags().StringVar(&outputFilePath, "output", "", "Write results as JSON to this file")
	return c
}
