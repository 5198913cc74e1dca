package timeline

import "github.com/emiliopalmerini/cardiosim/internal/domain"

// MonthEntry is one step of an interpolated trajectory from baseline toward
// an intervention target.
type MonthEntry struct {
	Month   int            `json:"month"`
	Profile domain.Profile `json:"profile"`
	Result  domain.Result  `json:"result"`
}

// Interpolate renders the transition from baseline to intervention over the
// given number of months: numeric factors move linearly, boolean factors flip
// at the halfway point, and age is held constant over the short horizon. It is
// a visualization aid, not a kinetics model.
func Interpolate(baseline, intervention domain.Profile, months int) ([]MonthEntry, error) {
	if err := baseline.Validate(); err != nil {
		return nil, err
	}
	if err := intervention.Validate(); err != nil {
		return nil, err
	}

	entries := make([]MonthEntry, 0, months+1)
	for m := 0; m <= months; m++ {
		t := 1.0
		if months > 0 {
			t = float64(m) / float64(months)
		}

		step := baseline
		step.TotalCholesterol = lerp(baseline.TotalCholesterol, intervention.TotalCholesterol, t)
		step.HDL = lerp(baseline.HDL, intervention.HDL, t)
		step.SystolicBP = lerp(baseline.SystolicBP, intervention.SystolicBP, t)
		if t >= 0.5 {
			step.Smoker = intervention.Smoker
			step.OnBPMeds = intervention.OnBPMeds
			step.Diabetic = intervention.Diabetic
		}

		result, err := domain.ComputeRisk(step)
		if err != nil {
			return nil, err
		}
		entries = append(entries, MonthEntry{Month: m, Profile: step, Result: result})
	}
	return entries, nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
