package timeline

import (
	"errors"
	"testing"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

func profileAt(age int) domain.Profile {
	return domain.Profile{
		Age:              age,
		Sex:              domain.SexFemale,
		Race:             domain.RaceWhiteOrOther,
		TotalCholesterol: 213,
		HDL:              50,
		SystolicBP:       120,
	}
}

func TestProject_ZeroHorizonMatchesComputeRisk(t *testing.T) {
	p := profileAt(55)
	tl, err := Project(p, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tl) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(tl))
	}
	if tl[0].YearOffset != 0 {
		t.Errorf("expected year offset 0, got %d", tl[0].YearOffset)
	}
	want, err := domain.ComputeRisk(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl[0].Result != want {
		t.Errorf("entry result differs from ComputeRisk: %+v vs %+v", tl[0].Result, want)
	}
}

func TestProject_IncrementsAgePerYear(t *testing.T) {
	p := profileAt(55)
	tl, err := Project(p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tl) != 11 {
		t.Fatalf("expected 11 entries, got %d", len(tl))
	}
	for i, e := range tl {
		if e.YearOffset != i {
			t.Errorf("entry %d: expected offset %d, got %d", i, i, e.YearOffset)
		}
		if e.Profile.Age != 55+i {
			t.Errorf("entry %d: expected age %d, got %d", i, 55+i, e.Profile.Age)
		}
		// Only age moves; the rest of the profile is held constant.
		frozen := e.Profile
		frozen.Age = 55
		if frozen != p {
			t.Errorf("entry %d: risk factors changed: %+v", i, e.Profile)
		}
	}
}

func TestProject_StopsBeforeAgeCeiling(t *testing.T) {
	tl, err := Project(profileAt(75), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Ages 75..79 inclusive, then stop.
	if len(tl) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(tl))
	}
	for _, e := range tl {
		if e.Profile.Age > domain.MaxAge {
			t.Errorf("entry at offset %d has age %d past the ceiling", e.YearOffset, e.Profile.Age)
		}
	}
	if last := tl[len(tl)-1]; last.Profile.Age != domain.MaxAge {
		t.Errorf("expected final entry at age %d, got %d", domain.MaxAge, last.Profile.Age)
	}
}

func TestProject_InvalidProfileRejected(t *testing.T) {
	_, err := Project(profileAt(39), 5)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestProjectPair_AlignedOffsets(t *testing.T) {
	baseline := profileAt(55)
	intervention := baseline
	intervention.SystolicBP = 110

	pair, err := ProjectPair(baseline, intervention, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pair.Baseline) != len(pair.Intervention) {
		t.Fatalf("timelines misaligned: %d vs %d", len(pair.Baseline), len(pair.Intervention))
	}
	for i := range pair.Baseline {
		if pair.Baseline[i].YearOffset != pair.Intervention[i].YearOffset {
			t.Errorf("entry %d: offsets differ", i)
		}
		if pair.Intervention[i].Result.TenYearRiskPercent > pair.Baseline[i].Result.TenYearRiskPercent {
			t.Errorf("entry %d: lower BP scored above baseline", i)
		}
	}
}

func TestInterpolate_EndpointsMatchProfiles(t *testing.T) {
	baseline := profileAt(55)
	baseline.Smoker = true
	intervention := baseline
	intervention.Smoker = false
	intervention.SystolicBP = 110

	entries, err := Interpolate(baseline, intervention, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(entries))
	}
	if entries[0].Profile != baseline {
		t.Errorf("month 0 should equal baseline: %+v", entries[0].Profile)
	}
	if entries[6].Profile != intervention {
		t.Errorf("final month should equal intervention: %+v", entries[6].Profile)
	}
	// Numeric factors move linearly; booleans flip at the halfway point.
	if entries[3].Profile.SystolicBP != 115 {
		t.Errorf("month 3: expected SBP 115, got %g", entries[3].Profile.SystolicBP)
	}
	if entries[2].Profile.Smoker != true || entries[3].Profile.Smoker != false {
		t.Error("smoker flag should flip at t >= 0.5")
	}
	// Age never advances over the month horizon.
	for _, e := range entries {
		if e.Profile.Age != baseline.Age {
			t.Errorf("month %d: age changed to %d", e.Month, e.Profile.Age)
		}
	}
}

func TestInterpolate_ZeroMonths(t *testing.T) {
	baseline := profileAt(55)
	intervention := baseline
	intervention.HDL = 60

	entries, err := Interpolate(baseline, intervention, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single entry, got %d", len(entries))
	}
	// With no transition period the single entry is already at the target.
	if entries[0].Profile != intervention {
		t.Errorf("expected intervention profile, got %+v", entries[0].Profile)
	}
}
