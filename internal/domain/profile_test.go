package domain

import (
	"errors"
	"testing"
)

func validProfile() Profile {
	return Profile{
		Age:              55,
		Sex:              SexFemale,
		Race:             RaceWhiteOrOther,
		TotalCholesterol: 213,
		HDL:              50,
		SystolicBP:       120,
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Profile)
		wantField string // "" means valid
	}{
		{"valid", func(p *Profile) {}, ""},
		{"age below range", func(p *Profile) { p.Age = 39 }, "age"},
		{"age above range", func(p *Profile) { p.Age = 80 }, "age"},
		{"age at lower bound", func(p *Profile) { p.Age = 40 }, ""},
		{"age at upper bound", func(p *Profile) { p.Age = 79 }, ""},
		{"unknown sex", func(p *Profile) { p.Sex = "other" }, "sex"},
		{"unknown race", func(p *Profile) { p.Race = "asian" }, "race"},
		{"zero cholesterol", func(p *Profile) { p.TotalCholesterol = 0 }, "total_cholesterol_mgdl"},
		{"negative cholesterol", func(p *Profile) { p.TotalCholesterol = -1 }, "total_cholesterol_mgdl"},
		{"zero hdl", func(p *Profile) { p.HDL = 0 }, "hdl_mgdl"},
		{"zero sbp", func(p *Profile) { p.SystolicBP = 0 }, "systolic_bp_mmhg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		risk float64
		want Band
	}{
		{0, BandLow},
		{4.99, BandLow},
		{5, BandBorderline},
		{7.49, BandBorderline},
		{7.5, BandIntermediate},
		{19.99, BandIntermediate},
		{20, BandHigh},
		{100, BandHigh},
	}
	for _, tt := range tests {
		if got := BandFor(tt.risk); got != tt.want {
			t.Errorf("BandFor(%.2f): expected %s, got %s", tt.risk, tt.want, got)
		}
	}
}

func TestPresetByName(t *testing.T) {
	p, ok := PresetByName("high-risk")
	if !ok {
		t.Fatal("expected high-risk preset to exist")
	}
	if err := p.Profile.Validate(); err != nil {
		t.Errorf("preset profile invalid: %v", err)
	}
	if _, ok := PresetByName("nonexistent"); ok {
		t.Error("expected lookup miss for unknown preset")
	}
}
