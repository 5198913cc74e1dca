package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Compute 10-year ASCVD risk for a profile",
	Long: `Compute the 10-year ASCVD risk for a risk-factor profile.

Examples:
  cardiosim risk --age 55 --sex male --total-chol 213 --hdl 50 --sbp 120
  cardiosim risk --preset high-risk
  cardiosim risk --preset typical --smoker`,
	RunE: runRisk,
}

var riskProfile profileFlags

func init() {
	rootCmd.AddCommand(riskCmd)
	riskProfile.register(riskCmd)
}

func runRisk(cmd *cobra.Command, args []string) error {
	p, err := riskProfile.profile(cmd)
	if err != nil {
		return err
	}

	result, err := domain.ComputeRisk(p)
	if err != nil {
		return err
	}

	printResult("10-year ASCVD risk", result)
	fmt.Printf("Coefficient set: %s\n", result.Group)
	return nil
}
