package domain

import (
	"errors"
	"math"
	"testing"
)

// referenceProfile returns the validation profile from the 2013 ACC/AHA
// publication: age 55, total cholesterol 213, HDL 50, untreated SBP 120,
// non-smoker, non-diabetic.
func referenceProfile(sex Sex, race Race) Profile {
	return Profile{
		Age:              55,
		Sex:              sex,
		Race:             race,
		TotalCholesterol: 213,
		HDL:              50,
		SystolicBP:       120,
	}
}

func TestComputeRisk_PublishedReferenceValues(t *testing.T) {
	tests := []struct {
		name      string
		sex       Sex
		race      Race
		wantGroup Group
		wantRisk  float64 // publication rounds these to 5.3, 6.1, 2.1, 3.0
	}{
		{"white male", SexMale, RaceWhiteOrOther, GroupWhiteMale, 5.3786},
		{"black male", SexMale, RaceBlack, GroupBlackMale, 6.0611},
		{"white female", SexFemale, RaceWhiteOrOther, GroupWhiteFemale, 2.0544},
		{"black female", SexFemale, RaceBlack, GroupBlackFemale, 2.9982},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRisk(referenceProfile(tt.sex, tt.race))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Group != tt.wantGroup {
				t.Errorf("group: expected %s, got %s", tt.wantGroup, got.Group)
			}
			if math.Abs(got.TenYearRiskPercent-tt.wantRisk) > 0.1 {
				t.Errorf("risk: expected %.4f%%, got %.4f%%", tt.wantRisk, got.TenYearRiskPercent)
			}
		})
	}
}

func TestComputeRisk_HighRiskProfile(t *testing.T) {
	p := Profile{
		Age:              60,
		Sex:              SexMale,
		Race:             RaceWhiteOrOther,
		TotalCholesterol: 260,
		HDL:              38,
		SystolicBP:       155,
		Smoker:           true,
	}

	got, err := ComputeRisk(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertFloatNear(t, "TenYearRiskPercent", 27.6275, got.TenYearRiskPercent)
	assertFloatNear(t, "LinearPredictor", 62.4657, got.LinearPredictor)
}

func TestComputeRisk_TreatedSBPUsesTreatedCoefficient(t *testing.T) {
	untreated := referenceProfile(SexMale, RaceWhiteOrOther)
	treated := untreated
	treated.OnBPMeds = true

	ru, err := ComputeRisk(untreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt, err := ComputeRisk(treated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The treated coefficient is larger in every stratum, so treated BP at the
	// same pressure scores higher.
	if rt.TenYearRiskPercent <= ru.TenYearRiskPercent {
		t.Errorf("treated %.4f%% should exceed untreated %.4f%%",
			rt.TenYearRiskPercent, ru.TenYearRiskPercent)
	}
}

func TestComputeRisk_Deterministic(t *testing.T) {
	p := referenceProfile(SexFemale, RaceBlack)
	first, err := ComputeRisk(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := ComputeRisk(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("call %d: expected bit-identical result, got %+v vs %+v", i, again, first)
		}
	}
}

func TestComputeRisk_SmokingMonotonicity(t *testing.T) {
	// Quitting smoking must never increase computed risk, in any stratum.
	for _, sex := range []Sex{SexFemale, SexMale} {
		for _, race := range []Race{RaceWhiteOrOther, RaceBlack} {
			smoker := referenceProfile(sex, race)
			smoker.Smoker = true
			quit := smoker
			quit.Smoker = false

			rs, err := ComputeRisk(smoker)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", sex, race, err)
			}
			rq, err := ComputeRisk(quit)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", sex, race, err)
			}
			if rq.TenYearRiskPercent > rs.TenYearRiskPercent {
				t.Errorf("%s/%s: quitting raised risk from %.4f%% to %.4f%%",
					sex, race, rs.TenYearRiskPercent, rq.TenYearRiskPercent)
			}
		}
	}
}

func TestComputeRisk_ClampedToPercentRange(t *testing.T) {
	// Extreme but positive inputs across all strata and ages stay in [0,100].
	extremes := []Profile{
		{Age: 79, Sex: SexMale, Race: RaceBlack, TotalCholesterol: 500, HDL: 10, SystolicBP: 250, OnBPMeds: true, Smoker: true, Diabetic: true},
		{Age: 79, Sex: SexFemale, Race: RaceBlack, TotalCholesterol: 500, HDL: 10, SystolicBP: 250, OnBPMeds: true, Smoker: true, Diabetic: true},
		{Age: 40, Sex: SexFemale, Race: RaceWhiteOrOther, TotalCholesterol: 1, HDL: 200, SystolicBP: 1},
		{Age: 40, Sex: SexMale, Race: RaceWhiteOrOther, TotalCholesterol: 1, HDL: 200, SystolicBP: 1},
	}
	for _, p := range extremes {
		got, err := ComputeRisk(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TenYearRiskPercent < 0 || got.TenYearRiskPercent > 100 {
			t.Errorf("risk %.4f%% outside [0,100] for %+v", got.TenYearRiskPercent, p)
		}
	}
}

func TestComputeRisk_AgeBoundaries(t *testing.T) {
	for _, age := range []int{40, 79} {
		p := referenceProfile(SexMale, RaceWhiteOrOther)
		p.Age = age
		if _, err := ComputeRisk(p); err != nil {
			t.Errorf("age %d: expected success, got %v", age, err)
		}
	}
	for _, age := range []int{39, 80} {
		p := referenceProfile(SexMale, RaceWhiteOrOther)
		p.Age = age
		_, err := ComputeRisk(p)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("age %d: expected *ValidationError, got %v", age, err)
			continue
		}
		if verr.Field != "age" {
			t.Errorf("age %d: expected field \"age\", got %q", age, verr.Field)
		}
	}
}

func assertFloatNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.0001 {
		t.Errorf("%s: expected %.6f, got %.6f", name, expected, actual)
	}
}
