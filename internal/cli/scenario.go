package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/scenario"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Compare baseline risk against a what-if intervention",
	Long: `Build a what-if scenario on top of a baseline profile and compare
the risks.

Examples:
  cardiosim scenario --preset high-risk --quit-smoking
  cardiosim scenario --age 60 --sex male --smoker --quit-smoking --sbp-target 130
  cardiosim scenario --preset high-risk --quit-smoking --save "my plan"`,
	RunE: runScenario,
}

var (
	scenarioProfile profileFlags

	scenarioQuitSmoking bool
	scenarioStartBPMeds bool
	scenarioSBPTarget   float64
	scenarioTCDelta     float64
	scenarioHDLDelta    float64
	scenarioSaveName    string
)

func init() {
	rootCmd.AddCommand(scenarioCmd)
	scenarioProfile.register(scenarioCmd)

	scenarioCmd.Flags().BoolVar(&scenarioQuitSmoking, "quit-smoking", false, "What-if: quit smoking")
	scenarioCmd.Flags().BoolVar(&scenarioStartBPMeds, "start-bp-meds", false, "What-if: start BP medication")
	scenarioCmd.Flags().Float64Var(&scenarioSBPTarget, "sbp-target", 0, "What-if: target systolic BP (mmHg)")
	scenarioCmd.Flags().Float64Var(&scenarioTCDelta, "tc-delta", 0, "What-if: change in total cholesterol (mg/dL)")
	scenarioCmd.Flags().Float64Var(&scenarioHDLDelta, "hdl-delta", 0, "What-if: change in HDL (mg/dL)")
	scenarioCmd.Flags().StringVar(&scenarioSaveName, "save", "", "Save the scenario under this name")
}

func scenarioIntervention(cmd *cobra.Command) scenario.Intervention {
	iv := scenario.Intervention{
		QuitSmoking:           scenarioQuitSmoking,
		StartBPMeds:           scenarioStartBPMeds,
		TotalCholesterolDelta: scenarioTCDelta,
		HDLDelta:              scenarioHDLDelta,
	}
	if cmd.Flags().Changed("sbp-target") {
		target := scenarioSBPTarget
		iv.SBPTarget = &target
	}
	return iv
}

func runScenario(cmd *cobra.Command, args []string) error {
	baseline, err := scenarioProfile.profile(cmd)
	if err != nil {
		return err
	}

	s, err := scenarioIntervention(cmd).Apply(baseline)
	if err != nil {
		return err
	}

	printResult("Baseline      ", s.BaselineResult)
	printResult("Intervention  ", s.InterventionResult)

	c := scenario.Compare(s)
	fmt.Printf("Absolute delta: %+.2f percentage points\n", c.AbsoluteDeltaPercent)
	if c.BaselineZero {
		fmt.Println("Relative delta: undefined (baseline risk is zero)")
	} else {
		fmt.Printf("Relative delta: %+.1f%%\n", c.RelativeDeltaPercent)
	}

	drivers, err := scenario.Drivers(s)
	if err != nil {
		return err
	}
	if len(drivers) > 0 {
		fmt.Println("\nWhat changed the risk the most (approx.):")
		for _, d := range drivers {
			fmt.Printf("  %-18s %+.2f\n", d.Factor, d.DeltaPercent)
		}
	}

	if scenarioSaveName != "" {
		db, repo, err := openRepo()
		if err != nil {
			return err
		}
		defer db.Close()

		saved := &scenario.Saved{
			ID:        uuid.NewString(),
			Name:      scenarioSaveName,
			Scenario:  s,
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Save(context.Background(), saved); err != nil {
			return fmt.Errorf("failed to save scenario: %w", err)
		}
		fmt.Printf("\nSaved scenario %q (%s)\n", saved.Name, saved.ID)
	}

	return nil
}
