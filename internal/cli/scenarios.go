package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Manage saved scenarios",
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE:  runScenariosList,
}

var scenariosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosDelete,
}

var scenariosClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved scenarios",
	RunE:  runScenariosClear,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosDeleteCmd)
	scenariosCmd.AddCommand(scenariosClearCmd)
}

func runScenariosList(cmd *cobra.Command, args []string) error {
	db, repo, err := openRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := repo.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list scenarios: %w", err)
	}
	if len(list) == 0 {
		fmt.Println("No saved scenarios.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-9s  %-9s  %-7s  %s\n",
		"id", "name", "baseline", "scenario", "delta", "created")
	for _, s := range list {
		c := scenario.Compare(s.Scenario)
		fmt.Printf("%-36s  %-20s  %9s  %9s  %+7.2f  %s\n",
			s.ID, s.Name,
			formatRisk(s.Scenario.BaselineResult.TenYearRiskPercent),
			formatRisk(s.Scenario.InterventionResult.TenYearRiskPercent),
			c.AbsoluteDeltaPercent,
			s.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runScenariosDelete(cmd *cobra.Command, args []string) error {
	db, repo, err := openRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	existing, err := repo.GetByID(ctx, args[0])
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("scenario %q not found", args[0])
	}
	if err := repo.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted scenario %q\n", existing.Name)
	return nil
}

func runScenariosClear(cmd *cobra.Command, args []string) error {
	db, repo, err := openRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("Cleared all saved scenarios.")
	return nil
}
