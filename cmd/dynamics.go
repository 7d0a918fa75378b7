package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stintsim/stintsim/sim"
	"github.com/stintsim/stintsim/sim/dynamics"
)

var (
	speedKmh     float64 // Vehicle speed (km/h)
	frictionMu   float64 // Tyre-road friction coefficient
	efficiency   float64 // Brake efficiency
	reactionTime float64 // Driver reaction time (s)
	gradient     float64 // Road gradient (%)
	radius       float64 // Corner radius (m)
	mass         float64 // Vehicle mass (kg)
	massLbs      float64 // Vehicle mass (lbs), overrides mass when set
	tyreKm       float64 // Distance already run on the tyres (km)
	accel        float64 // Longitudinal acceleration (m/s²)
	cgHeight     float64 // Centre of gravity height (m)
	wheelbase    float64 // Wheelbase (m)
)

// dynamicsCmd prints single-formula vehicle dynamics estimates
var dynamicsCmd = newDynamicsCmd()

func newDynamicsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:          "dynamics",
		Short:        "Braking, cornering and weight-transfer estimates",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			speed := sim.KmhToMs(speedKmh)
			if cmd.Flags().Changed("mass-lbs") {
				mass = sim.LbsToKg(massLbs)
			}
			tyre := sim.Modifiers{Compound: sim.Compound(compound)}
			if err := tyre.Validate(); err != nil {
				return err
			}
			if tyreKm < 0 {
				return &sim.ConfigError{Field: "tyre_km", Value: tyreKm, Reason: "must be non-negative"}
			}
			wear := sim.TyreWear(0, tyreKm, tyre.Compound.Hardness())
			mu := sim.MuWithWear(frictionMu, wear)

			flat, err := dynamics.BrakingDistance(speed, mu, efficiency)
			if err != nil {
				return fmt.Errorf("braking distance: %w", err)
			}
			stop, err := dynamics.TotalStoppingDistance(speed, mu, reactionTime, efficiency, gradient)
			if err != nil {
				return fmt.Errorf("stopping distance: %w", err)
			}
			lateral, err := dynamics.LateralAcceleration(speed, radius)
			if err != nil {
				return fmt.Errorf("lateral acceleration: %w", err)
			}
			vmax, err := dynamics.MaxCornerSpeed(radius, mu)
			if err != nil {
				return fmt.Errorf("max corner speed: %w", err)
			}
			transfer, err := dynamics.LongitudinalWeightTransfer(mass, accel, cgHeight, wheelbase)
			if err != nil {
				return fmt.Errorf("weight transfer: %w", err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"QUANTITY", "VALUE"})
			transferKg := transfer / dynamics.Gravity
			t.AppendRows([]table.Row{
				{"tyre wear", fmt.Sprintf("%.4f", wear)},
				{"effective mu", fmt.Sprintf("%.3f", mu)},
				{"flat braking distance (m)", fmt.Sprintf("%.2f", flat)},
				{"reaction distance (m)", fmt.Sprintf("%.2f", stop.ReactionDistance)},
				{"braking distance (m)", fmt.Sprintf("%.2f", stop.BrakingDistance)},
				{"stopping distance (m)", fmt.Sprintf("%.2f", stop.TotalDistance)},
				{"deceleration (g)", fmt.Sprintf("%.3f", stop.EffectiveDeceleration)},
				{"lateral acceleration (g)", fmt.Sprintf("%.3f", lateral/dynamics.Gravity)},
				{"max corner speed (km/h)", fmt.Sprintf("%.1f", sim.MsToKmh(vmax))},
				{"weight transfer (kg)", fmt.Sprintf("%.1f", transferKg)},
				{"weight transfer (lbs)", fmt.Sprintf("%.1f", sim.KgToLbs(transferKg))},
			})
			t.Render()
			return nil
		},
	}
	c.Flags().Float64Var(&speedKmh, "speed-kmh", 200, "Vehicle speed (km/h)")
	c.Flags().Float64Var(&frictionMu, "mu", 1.2, "Tyre-road friction coefficient")
	c.Flags().Float64Var(&efficiency, "efficiency", 1, "Brake efficiency in (0, 1]")
	c.Flags().Float64Var(&reactionTime, "reaction-time", dynamics.DefaultReactionTime, "Driver reaction time (s)")
	c.Flags().Float64Var(&gradient, "gradient", 0, "Road gradient in percent (positive uphill)")
	c.Flags().Float64Var(&radius, "radius", 100, "Corner radius (m)")
	c.Flags().Float64Var(&mass, "mass", 798, "Vehicle mass (kg)")
	c.Flags().Float64Var(&massLbs, "mass-lbs", 0, "Vehicle mass (lbs); overrides --mass")
	c.Flags().StringVar(&compound, "compound", "", "Tyre compound setting the wear rate (soft, medium, hard)")
	c.Flags().Float64Var(&tyreKm, "tyre-km", 0, "Distance already run on the tyres (km)")
	c.Flags().Float64Var(&accel, "accel", -40, "Longitudinal acceleration (m/s², negative when braking)")
	c.Flags().Float64Var(&cgHeight, "cg-height", 0.3, "Centre of gravity height (m)")
	c.Flags().Float64Var(&wheelbase, "wheelbase", 3.6, "Wheelbase (m)")
	return c
}
