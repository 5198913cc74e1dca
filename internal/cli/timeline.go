package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/scenario"
	"github.com/emiliopalmerini/cardiosim/internal/timeline"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Project risk year by year as age advances",
	Long: `Project the risk trajectory for a profile, optionally against a
what-if intervention.

By default each year re-scores the profile with age incremented; projection
stops once age would pass 79. With --months, the trajectory instead
interpolates from baseline to the intervention over that many months at
constant age.

Examples:
  cardiosim timeline --preset high-risk --horizon 15
  cardiosim timeline --preset high-risk --quit-smoking --horizon 10
  cardiosim timeline --preset high-risk --quit-smoking --months 6`,
	RunE: runTimeline,
}

var (
	timelineProfile profileFlags
	timelineHorizon int
	timelineMonths  int

	timelineQuitSmoking bool
	timelineStartBPMeds bool
	timelineSBPTarget   float64
	timelineTCDelta     float64
	timelineHDLDelta    float64
)

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineProfile.register(timelineCmd)

	timelineCmd.Flags().IntVar(&timelineHorizon, "horizon", 10, "Years to project")
	timelineCmd.Flags().IntVar(&timelineMonths, "months", 0, "Interpolate toward the intervention over this many months instead")

	timelineCmd.Flags().BoolVar(&timelineQuitSmoking, "quit-smoking", false, "What-if: quit smoking")
	timelineCmd.Flags().BoolVar(&timelineStartBPMeds, "start-bp-meds", false, "What-if: start BP medication")
	timelineCmd.Flags().Float64Var(&timelineSBPTarget, "sbp-target", 0, "What-if: target systolic BP (mmHg)")
	timelineCmd.Flags().Float64Var(&timelineTCDelta, "tc-delta", 0, "What-if: change in total cholesterol (mg/dL)")
	timelineCmd.Flags().Float64Var(&timelineHDLDelta, "hdl-delta", 0, "What-if: change in HDL (mg/dL)")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	baseline, err := timelineProfile.profile(cmd)
	if err != nil {
		return err
	}

	iv := timelineIntervention(cmd)
	s, err := iv.Apply(baseline)
	if err != nil {
		return err
	}
	hasIntervention := s.Intervention != baseline

	if cmd.Flags().Changed("months") {
		if !hasIntervention {
			return fmt.Errorf("--months requires at least one what-if flag")
		}
		entries, err := timeline.Interpolate(baseline, s.Intervention, timelineMonths)
		if err != nil {
			return err
		}
		fmt.Println("month  risk")
		for _, e := range entries {
			fmt.Printf("%5d  %s\n", e.Month, formatRisk(e.Result.TenYearRiskPercent))
		}
		return nil
	}

	if !hasIntervention {
		tl, err := timeline.Project(baseline, timelineHorizon)
		if err != nil {
			return err
		}
		fmt.Println("year  age  risk")
		for _, e := range tl {
			fmt.Printf("%4d  %3d  %s\n", e.YearOffset, e.Profile.Age, formatRisk(e.Result.TenYearRiskPercent))
		}
		return nil
	}

	pair, err := timeline.ProjectPair(baseline, s.Intervention, timelineHorizon)
	if err != nil {
		return err
	}
	fmt.Println("year  age  baseline  intervention")
	for i, e := range pair.Baseline {
		fmt.Printf("%4d  %3d  %8s  %12s\n",
			e.YearOffset, e.Profile.Age,
			formatRisk(e.Result.TenYearRiskPercent),
			formatRisk(pair.Intervention[i].Result.TenYearRiskPercent))
	}
	return nil
}

func timelineIntervention(cmd *cobra.Command) scenario.Intervention {
	iv := scenario.Intervention{
		QuitSmoking:           timelineQuitSmoking,
		StartBPMeds:           timelineStartBPMeds,
		TotalCholesterolDelta: timelineTCDelta,
		HDLDelta:              timelineHDLDelta,
	}
	if cmd.Flags().Changed("sbp-target") {
		target := timelineSBPTarget
		iv.SBPTarget = &target
	}
	return iv
}
