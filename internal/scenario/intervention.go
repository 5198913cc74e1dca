package scenario

import "github.com/emiliopalmerini/cardiosim/internal/domain"

// Clamp ranges for intervention targets. Targets outside these bounds are
// pulled to the nearest bound rather than rejected, since they come from
// coarse UI controls.
const (
	minSBPTarget = 90
	maxSBPTarget = 200
	minTotalChol = 130
	maxTotalChol = 320
	minHDL       = 20
	maxHDL       = 100
)

// Intervention is a high-level what-if plan expressed the way a user thinks
// about it: quit smoking, start medication, move a number toward a target.
type Intervention struct {
	QuitSmoking bool     `json:"quit_smoking"`
	StartBPMeds bool     `json:"start_bp_meds"`
	SBPTarget   *float64 `json:"sbp_target_mmhg,omitempty"`
	// Deltas are applied to the baseline value, then clamped.
	TotalCholesterolDelta float64 `json:"total_cholesterol_delta,omitempty"`
	HDLDelta              float64 `json:"hdl_delta,omitempty"`
}

// Overrides lowers the plan into the field-level overrides Build consumes.
func (iv Intervention) Overrides(baseline domain.Profile) Overrides {
	var o Overrides

	if iv.QuitSmoking {
		f := false
		o.Smoker = &f
	}
	if iv.StartBPMeds {
		tr := true
		o.OnBPMeds = &tr
	}
	if iv.SBPTarget != nil {
		sbp := clamp(*iv.SBPTarget, minSBPTarget, maxSBPTarget)
		o.SystolicBP = &sbp
	}
	if iv.TotalCholesterolDelta != 0 {
		tc := clamp(baseline.TotalCholesterol+iv.TotalCholesterolDelta, minTotalChol, maxTotalChol)
		o.TotalCholesterol = &tc
	}
	if iv.HDLDelta != 0 {
		hdl := clamp(baseline.HDL+iv.HDLDelta, minHDL, maxHDL)
		o.HDL = &hdl
	}

	return o
}

// Apply builds a scenario directly from an intervention plan.
func (iv Intervention) Apply(baseline domain.Profile) (Scenario, error) {
	return Build(baseline, iv.Overrides(baseline))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
