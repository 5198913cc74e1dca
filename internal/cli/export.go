package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
	"github.com/emiliopalmerini/cardiosim/internal/scenario"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved scenarios to JSON or CSV",
	Long: `Export saved scenarios for external analysis.

Examples:
  cardiosim export --format json --output scenarios.json
  cardiosim export --format csv --output scenarios.csv`,
	RunE: runExport,
}

// Flags
var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

type ExportScenario struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Baseline            domain.Profile `json:"baseline"`
	Intervention        domain.Profile `json:"intervention"`
	BaselineRiskPercent float64        `json:"baseline_risk_percent"`
	ScenarioRiskPercent float64        `json:"scenario_risk_percent"`
	DeltaPercent        float64        `json:"delta_percent"`
	CreatedAt           string         `json:"created_at"`
}

func runExport(cmd *cobra.Command, args []string) error {
	db, repo, err := openRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := repo.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list scenarios: %w", err)
	}

	exportData := make([]ExportScenario, 0, len(list))
	for _, s := range list {
		c := scenario.Compare(s.Scenario)
		exportData = append(exportData, ExportScenario{
			ID:                  s.ID,
			Name:                s.Name,
			Baseline:            s.Scenario.Baseline,
			Intervention:        s.Scenario.Intervention,
			BaselineRiskPercent: s.Scenario.BaselineResult.TenYearRiskPercent,
			ScenarioRiskPercent: s.Scenario.InterventionResult.TenYearRiskPercent,
			DeltaPercent:        c.AbsoluteDeltaPercent,
			CreatedAt:           s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	var output *os.File
	if exportOutput != "" {
		output, err = os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = output.Close() }()
	} else {
		output = os.Stdout
	}

	switch exportFormat {
	case "json":
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(exportData); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "csv":
		writer := csv.NewWriter(output)
		defer writer.Flush()

		header := []string{
			"id", "name",
			"age", "sex", "race", "total_cholesterol", "hdl", "systolic_bp",
			"bp_meds", "smoker", "diabetic",
			"baseline_risk_percent", "scenario_risk_percent", "delta_percent",
			"created_at",
		}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}

		for _, es := range exportData {
			row := []string{
				es.ID, es.Name,
				fmt.Sprintf("%d", es.Baseline.Age), string(es.Baseline.Sex), string(es.Baseline.Race),
				fmt.Sprintf("%g", es.Baseline.TotalCholesterol), fmt.Sprintf("%g", es.Baseline.HDL),
				fmt.Sprintf("%g", es.Baseline.SystolicBP),
				fmt.Sprintf("%t", es.Baseline.OnBPMeds), fmt.Sprintf("%t", es.Baseline.Smoker),
				fmt.Sprintf("%t", es.Baseline.Diabetic),
				fmt.Sprintf("%.4f", es.BaselineRiskPercent), fmt.Sprintf("%.4f", es.ScenarioRiskPercent),
				fmt.Sprintf("%.4f", es.DeltaPercent),
				es.CreatedAt,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	default:
		return fmt.Errorf("unsupported format: %s (use json or csv)", exportFormat)
	}

	if exportOutput != "" {
		fmt.Fprintf(os.Stderr, "Exported %d scenarios to %s\n", len(exportData), exportOutput)
	}

	return nil
}
