package scenario

import (
	"sort"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

// Driver attributes part of the risk delta to one changed factor.
type Driver struct {
	Factor       string  `json:"factor"`
	DeltaPercent float64 `json:"delta_percent"`
}

// Drivers estimates which changed factors moved the risk the most, by
// re-scoring the baseline with one change applied at a time. The attribution
// is approximate: single-change deltas need not sum to the combined delta
// because the equations are nonlinear. Sorted by |delta|, largest first.
func Drivers(s Scenario) ([]Driver, error) {
	type change struct {
		factor  string
		changed bool
		apply   func(*domain.Profile)
	}

	b, iv := s.Baseline, s.Intervention
	changes := []change{
		{"smoking", b.Smoker != iv.Smoker, func(p *domain.Profile) { p.Smoker = iv.Smoker }},
		{"systolic_bp", b.SystolicBP != iv.SystolicBP, func(p *domain.Profile) { p.SystolicBP = iv.SystolicBP }},
		{"bp_medication", b.OnBPMeds != iv.OnBPMeds, func(p *domain.Profile) { p.OnBPMeds = iv.OnBPMeds }},
		{"total_cholesterol", b.TotalCholesterol != iv.TotalCholesterol, func(p *domain.Profile) { p.TotalCholesterol = iv.TotalCholesterol }},
		{"hdl", b.HDL != iv.HDL, func(p *domain.Profile) { p.HDL = iv.HDL }},
		{"diabetes", b.Diabetic != iv.Diabetic, func(p *domain.Profile) { p.Diabetic = iv.Diabetic }},
	}

	baseRisk := s.BaselineResult.TenYearRiskPercent

	var drivers []Driver
	for _, c := range changes {
		if !c.changed {
			continue
		}
		probe := b
		c.apply(&probe)
		r, err := domain.ComputeRisk(probe)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, Driver{
			Factor:       c.factor,
			DeltaPercent: r.TenYearRiskPercent - baseRisk,
		})
	}

	sort.Slice(drivers, func(i, j int) bool {
		return abs(drivers[i].DeltaPercent) > abs(drivers[j].DeltaPercent)
	})
	return drivers, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
