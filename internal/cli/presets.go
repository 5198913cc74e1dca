package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in example profiles",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	for _, preset := range domain.Presets() {
		p := preset.Profile
		result, err := domain.ComputeRisk(p)
		if err != nil {
			return err
		}
		fmt.Printf("%s: age %d, %s, %s, TC %g, HDL %g, SBP %g", preset.Name,
			p.Age, p.Sex, p.Race, p.TotalCholesterol, p.HDL, p.SystolicBP)
		if p.Smoker {
			fmt.Print(", smoker")
		}
		if p.OnBPMeds {
			fmt.Print(", on BP meds")
		}
		if p.Diabetic {
			fmt.Print(", diabetic")
		}
		fmt.Printf(" -> %s\n", formatRisk(result.TenYearRiskPercent))
	}
	return nil
}
