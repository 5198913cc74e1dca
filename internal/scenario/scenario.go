// Package scenario compares a baseline risk profile against modified
// ("what-if") profiles, producing absolute and relative risk deltas.
package scenario

import (
	"time"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

// Overrides is a partial profile: nil fields keep the baseline value. Age,
// sex and race are deliberately absent — interventions change modifiable
// factors, not who the person is.
type Overrides struct {
	TotalCholesterol *float64 `json:"total_cholesterol_mgdl,omitempty"`
	HDL              *float64 `json:"hdl_mgdl,omitempty"`
	SystolicBP       *float64 `json:"systolic_bp_mmhg,omitempty"`
	OnBPMeds         *bool    `json:"on_bp_meds,omitempty"`
	Smoker           *bool    `json:"smoker,omitempty"`
	Diabetic         *bool    `json:"diabetic,omitempty"`
}

// Scenario pairs a baseline profile with one intervention profile and both
// risk results. The intervention shares every field with the baseline except
// the ones overridden.
type Scenario struct {
	Baseline           domain.Profile `json:"baseline"`
	Intervention       domain.Profile `json:"intervention"`
	BaselineResult     domain.Result  `json:"baseline_result"`
	InterventionResult domain.Result  `json:"intervention_result"`
}

// Build copies the baseline, applies the overrides, and scores both profiles.
// The baseline is never mutated; multiple simultaneous overrides are scored
// together in one pass.
func Build(baseline domain.Profile, o Overrides) (Scenario, error) {
	intervention := baseline
	if o.TotalCholesterol != nil {
		intervention.TotalCholesterol = *o.TotalCholesterol
	}
	if o.HDL != nil {
		intervention.HDL = *o.HDL
	}
	if o.SystolicBP != nil {
		intervention.SystolicBP = *o.SystolicBP
	}
	if o.OnBPMeds != nil {
		intervention.OnBPMeds = *o.OnBPMeds
	}
	if o.Smoker != nil {
		intervention.Smoker = *o.Smoker
	}
	if o.Diabetic != nil {
		intervention.Diabetic = *o.Diabetic
	}

	baseResult, err := domain.ComputeRisk(baseline)
	if err != nil {
		return Scenario{}, err
	}
	intResult, err := domain.ComputeRisk(intervention)
	if err != nil {
		return Scenario{}, err
	}

	return Scenario{
		Baseline:           baseline,
		Intervention:       intervention,
		BaselineResult:     baseResult,
		InterventionResult: intResult,
	}, nil
}

// Comparison holds the risk deltas between intervention and baseline.
// BaselineZero marks the zero-baseline case where a relative delta is
// undefined; RelativeDeltaPercent is 0 in that case and callers must branch
// on the flag instead of dividing.
type Comparison struct {
	AbsoluteDeltaPercent float64 `json:"absolute_delta_percent"`
	RelativeDeltaPercent float64 `json:"relative_delta_percent"`
	BaselineZero         bool    `json:"baseline_zero"`
}

// Compare computes intervention minus baseline deltas for a scenario.
func Compare(s Scenario) Comparison {
	abs := s.InterventionResult.TenYearRiskPercent - s.BaselineResult.TenYearRiskPercent
	c := Comparison{AbsoluteDeltaPercent: abs}
	if s.BaselineResult.TenYearRiskPercent > 0 {
		c.RelativeDeltaPercent = abs / s.BaselineResult.TenYearRiskPercent * 100.0
	} else {
		c.BaselineZero = true
	}
	return c
}

// Saved is a named scenario persisted for later review and export.
type Saved struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Scenario  Scenario  `json:"scenario"`
	CreatedAt time.Time `json:"created_at"`
}
