package scenario

import (
	"errors"
	"math"
	"testing"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

func baselineProfile() domain.Profile {
	return domain.Profile{
		Age:              60,
		Sex:              domain.SexMale,
		Race:             domain.RaceWhiteOrOther,
		TotalCholesterol: 260,
		HDL:              38,
		SystolicBP:       155,
		Smoker:           true,
	}
}

func TestBuild_NoOverridesIsIdentity(t *testing.T) {
	b := baselineProfile()
	s, err := Build(b, Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Intervention != b {
		t.Errorf("expected intervention == baseline, got %+v", s.Intervention)
	}
	c := Compare(s)
	if c.AbsoluteDeltaPercent != 0 {
		t.Errorf("expected zero delta, got %.4f", c.AbsoluteDeltaPercent)
	}
	if c.BaselineZero {
		t.Error("baseline risk is nonzero, flag must be false")
	}
}

func TestBuild_DoesNotMutateBaseline(t *testing.T) {
	b := baselineProfile()
	want := b
	f := false
	sbp := 120.0
	s, err := Build(b, Overrides{Smoker: &f, SystolicBP: &sbp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != want {
		t.Errorf("baseline mutated: %+v", b)
	}
	if s.Intervention.Smoker || s.Intervention.SystolicBP != 120 {
		t.Errorf("overrides not applied: %+v", s.Intervention)
	}
	// Untouched fields carry over.
	if s.Intervention.TotalCholesterol != b.TotalCholesterol || s.Intervention.Age != b.Age {
		t.Errorf("unrelated fields changed: %+v", s.Intervention)
	}
}

func TestBuild_CombinedOverridesScoredInOnePass(t *testing.T) {
	b := baselineProfile()
	f := false
	tr := true
	sbp := 130.0
	s, err := Build(b, Overrides{Smoker: &f, OnBPMeds: &tr, SystolicBP: &sbp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	combined := b
	combined.Smoker = false
	combined.OnBPMeds = true
	combined.SystolicBP = 130
	want, err := domain.ComputeRisk(combined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.InterventionResult != want {
		t.Errorf("expected combined profile scored directly, got %+v want %+v",
			s.InterventionResult, want)
	}
}

func TestBuild_InvalidBaselinePropagates(t *testing.T) {
	b := baselineProfile()
	b.Age = 30
	_, err := Build(b, Overrides{})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestCompare_Deltas(t *testing.T) {
	b := baselineProfile()
	f := false
	s, err := Build(b, Overrides{Smoker: &f})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := Compare(s)
	// Quitting smoking on the high-risk profile: 27.63% -> 18.01%.
	if math.Abs(c.AbsoluteDeltaPercent-(-9.6190)) > 0.001 {
		t.Errorf("absolute delta: expected about -9.619, got %.4f", c.AbsoluteDeltaPercent)
	}
	wantRel := c.AbsoluteDeltaPercent / s.BaselineResult.TenYearRiskPercent * 100
	if math.Abs(c.RelativeDeltaPercent-wantRel) > 1e-9 {
		t.Errorf("relative delta: expected %.6f, got %.6f", wantRel, c.RelativeDeltaPercent)
	}
}

func TestCompare_ZeroBaselineSetsFlag(t *testing.T) {
	s := Scenario{
		BaselineResult:     domain.Result{TenYearRiskPercent: 0},
		InterventionResult: domain.Result{TenYearRiskPercent: 3},
	}
	c := Compare(s)
	if !c.BaselineZero {
		t.Error("expected BaselineZero flag")
	}
	if c.RelativeDeltaPercent != 0 {
		t.Errorf("expected zero relative delta, got %v", c.RelativeDeltaPercent)
	}
	if math.IsNaN(c.RelativeDeltaPercent) || math.IsInf(c.RelativeDeltaPercent, 0) {
		t.Error("relative delta must not be NaN or Inf")
	}
	if c.AbsoluteDeltaPercent != 3 {
		t.Errorf("absolute delta still defined: expected 3, got %v", c.AbsoluteDeltaPercent)
	}
}

func TestIntervention_Overrides(t *testing.T) {
	b := baselineProfile()
	sbp := 80.0 // below the clamp floor
	iv := Intervention{
		QuitSmoking:           true,
		StartBPMeds:           true,
		SBPTarget:             &sbp,
		TotalCholesterolDelta: -500, // clamps to floor
		HDLDelta:              10,
	}
	o := iv.Overrides(b)

	if o.Smoker == nil || *o.Smoker {
		t.Error("expected smoker override false")
	}
	if o.OnBPMeds == nil || !*o.OnBPMeds {
		t.Error("expected bp meds override true")
	}
	if o.SystolicBP == nil || *o.SystolicBP != minSBPTarget {
		t.Errorf("expected SBP clamped to %d, got %v", minSBPTarget, o.SystolicBP)
	}
	if o.TotalCholesterol == nil || *o.TotalCholesterol != minTotalChol {
		t.Errorf("expected cholesterol clamped to %d, got %v", minTotalChol, o.TotalCholesterol)
	}
	if o.HDL == nil || *o.HDL != b.HDL+10 {
		t.Errorf("expected HDL %v, got %v", b.HDL+10, o.HDL)
	}
	if o.Diabetic != nil {
		t.Error("diabetes is not an intervention target")
	}
}

func TestIntervention_EmptyPlanIsNoop(t *testing.T) {
	b := baselineProfile()
	s, err := Intervention{}.Apply(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Intervention != b {
		t.Errorf("empty plan changed the profile: %+v", s.Intervention)
	}
}

func TestDrivers(t *testing.T) {
	b := baselineProfile()
	f := false
	sbp := 150.0
	s, err := Build(b, Overrides{Smoker: &f, SystolicBP: &sbp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drivers, err := Drivers(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drivers) != 2 {
		t.Fatalf("expected 2 drivers, got %d: %+v", len(drivers), drivers)
	}
	// Quitting smoking dominates a 5 mmHg SBP drop on this profile.
	if drivers[0].Factor != "smoking" {
		t.Errorf("expected smoking first, got %s", drivers[0].Factor)
	}
	if drivers[0].DeltaPercent >= 0 {
		t.Errorf("quitting smoking should lower risk, got %+.4f", drivers[0].DeltaPercent)
	}
	if abs(drivers[0].DeltaPercent) < abs(drivers[1].DeltaPercent) {
		t.Error("drivers not sorted by |delta|")
	}
}

func TestDrivers_NoChangesYieldsEmpty(t *testing.T) {
	b := baselineProfile()
	s, err := Build(b, Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drivers, err := Drivers(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drivers) != 0 {
		t.Errorf("expected no drivers, got %+v", drivers)
	}
}
