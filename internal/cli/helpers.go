package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/adapters/turso"
	"github.com/emiliopalmerini/cardiosim/internal/domain"
	"github.com/emiliopalmerini/cardiosim/internal/infrastructure/config"
	"github.com/emiliopalmerini/cardiosim/internal/ports"
)

// profileFlags holds the baseline-profile flag values a command collected.
type profileFlags struct {
	preset    string
	age       int
	sex       string
	race      string
	totalChol float64
	hdl       float64
	sbp       float64
	bpMeds    bool
	smoker    bool
	diabetic  bool
}

// register adds the shared baseline-profile flags to a command.
func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", `Start from a built-in preset: "typical" or "high-risk"`)
	cmd.Flags().IntVar(&f.age, "age", 55, "Age in years (40-79)")
	cmd.Flags().StringVar(&f.sex, "sex", "female", "Sex: female, male")
	cmd.Flags().StringVar(&f.race, "race", "white_or_other", "Race: white_or_other, black")
	cmd.Flags().Float64Var(&f.totalChol, "total-chol", 213, "Total cholesterol (mg/dL)")
	cmd.Flags().Float64Var(&f.hdl, "hdl", 50, "HDL cholesterol (mg/dL)")
	cmd.Flags().Float64Var(&f.sbp, "sbp", 120, "Systolic blood pressure (mmHg)")
	cmd.Flags().BoolVar(&f.bpMeds, "bp-meds", false, "On blood pressure medication")
	cmd.Flags().BoolVar(&f.smoker, "smoker", false, "Current smoker")
	cmd.Flags().BoolVar(&f.diabetic, "diabetic", false, "Has diabetes")
}

// profile builds the baseline profile from the flags. A preset supplies the
// starting values; explicitly set flags override it.
func (f *profileFlags) profile(cmd *cobra.Command) (domain.Profile, error) {
	p := domain.Profile{
		Age:              f.age,
		Sex:              domain.Sex(f.sex),
		Race:             domain.Race(f.race),
		TotalCholesterol: f.totalChol,
		HDL:              f.hdl,
		SystolicBP:       f.sbp,
		OnBPMeds:         f.bpMeds,
		Smoker:           f.smoker,
		Diabetic:         f.diabetic,
	}

	if f.preset != "" {
		preset, ok := domain.PresetByName(f.preset)
		if !ok {
			return domain.Profile{}, fmt.Errorf("unknown preset %q", f.preset)
		}
		base := preset.Profile
		if cmd.Flags().Changed("age") {
			base.Age = p.Age
		}
		if cmd.Flags().Changed("sex") {
			base.Sex = p.Sex
		}
		if cmd.Flags().Changed("race") {
			base.Race = p.Race
		}
		if cmd.Flags().Changed("total-chol") {
			base.TotalCholesterol = p.TotalCholesterol
		}
		if cmd.Flags().Changed("hdl") {
			base.HDL = p.HDL
		}
		if cmd.Flags().Changed("sbp") {
			base.SystolicBP = p.SystolicBP
		}
		if cmd.Flags().Changed("bp-meds") {
			base.OnBPMeds = p.OnBPMeds
		}
		if cmd.Flags().Changed("smoker") {
			base.Smoker = p.Smoker
		}
		if cmd.Flags().Changed("diabetic") {
			base.Diabetic = p.Diabetic
		}
		p = base
	}

	return p, nil
}

// openRepo connects to the configured database and returns the scenario
// repository. The caller must close the returned DB.
func openRepo() (*sql.DB, ports.ScenarioRepository, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, nil, fmt.Errorf("database not configured: %w", err)
	}
	db, err := turso.NewDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, turso.NewScenarioRepository(db), nil
}

// formatRisk renders a risk percentage at the conventional display precision.
func formatRisk(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

func printResult(title string, result domain.Result) {
	band := domain.BandFor(result.TenYearRiskPercent)
	fmt.Printf("%s: %s  [%s]\n", title, formatRisk(result.TenYearRiskPercent), band.Label())
}
