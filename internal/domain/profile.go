package domain

import "fmt"

// Sex is the biological sex category used by the Pooled Cohort Equations.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// Race is the race category used by the Pooled Cohort Equations. The published
// model only stratifies Black vs. White/Other.
type Race string

const (
	RaceWhiteOrOther Race = "white_or_other"
	RaceBlack        Race = "black"
)

// Age range the 2013 ACC/AHA equations were validated for. Values outside the
// range are rejected, never extrapolated.
const (
	MinAge = 40
	MaxAge = 79
)

// Profile is one person's complete set of clinical risk factors at a point in
// time. Profiles are plain values: derived profiles (interventions, projected
// years) are copies, never in-place mutations.
type Profile struct {
	Age  int  `json:"age"`
	Sex  Sex  `json:"sex"`
	Race Race `json:"race"`

	TotalCholesterol float64 `json:"total_cholesterol_mgdl"`
	HDL              float64 `json:"hdl_mgdl"`
	SystolicBP       float64 `json:"systolic_bp_mmhg"`
	OnBPMeds         bool    `json:"on_bp_meds"`

	Smoker   bool `json:"smoker"`
	Diabetic bool `json:"diabetic"`
}

// ValidationError reports a profile field outside the model's domain. It is
// the only error kind the engine raises, and it is always caused by caller
// input, never by internal computation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Reason)
}

// Validate checks every field against its domain. It returns the first
// violation found as a *ValidationError, or nil for a valid profile.
func (p Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return &ValidationError{
			Field:  "age",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinAge, MaxAge, p.Age),
		}
	}
	switch p.Sex {
	case SexFemale, SexMale:
	default:
		return &ValidationError{Field: "sex", Reason: fmt.Sprintf("unsupported category %q", p.Sex)}
	}
	switch p.Race {
	case RaceWhiteOrOther, RaceBlack:
	default:
		return &ValidationError{Field: "race", Reason: fmt.Sprintf("unsupported category %q", p.Race)}
	}
	if p.TotalCholesterol <= 0 {
		return &ValidationError{
			Field:  "total_cholesterol_mgdl",
			Reason: fmt.Sprintf("must be positive, got %g", p.TotalCholesterol),
		}
	}
	if p.HDL <= 0 {
		return &ValidationError{Field: "hdl_mgdl", Reason: fmt.Sprintf("must be positive, got %g", p.HDL)}
	}
	if p.SystolicBP <= 0 {
		return &ValidationError{
			Field:  "systolic_bp_mmhg",
			Reason: fmt.Sprintf("must be positive, got %g", p.SystolicBP),
		}
	}
	return nil
}
