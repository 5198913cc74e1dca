package domain

import "math"

// Group identifies which of the four published coefficient sets scored a
// profile. Returned with every Result for traceability.
type Group string

const (
	GroupWhiteFemale Group = "white_female"
	GroupWhiteMale   Group = "white_male"
	GroupBlackFemale Group = "black_female"
	GroupBlackMale   Group = "black_male"
)

// Result is the output of ComputeRisk. TenYearRiskPercent carries full double
// precision; rounding for display is the caller's concern.
type Result struct {
	TenYearRiskPercent float64 `json:"ten_year_risk_percent"`
	Group              Group   `json:"group"`

	// Intermediates, kept for traceability and testing.
	LinearPredictor  float64 `json:"linear_predictor"`
	BaselineSurvival float64 `json:"baseline_survival"`
	MeanXB           float64 `json:"mean_xb"`
}

// coefficientSet holds the published regression coefficients for one
// (sex, race) stratum of the 2013 ACC/AHA Pooled Cohort Equations.
//
// Pointer fields mark interaction terms that only some strata carry. nil means
// the term does not exist in that stratum's published equation — not that its
// weight is zero — so a term can never leak into the wrong stratum.
type coefficientSet struct {
	group Group

	lnAge           float64
	lnAgeSquared    *float64 // white/other female only
	lnTotalChol     float64
	ageTotalChol    *float64
	lnHDL           float64
	ageHDL          *float64
	treatedSBP      float64
	ageTreatedSBP   *float64 // black female only
	untreatedSBP    float64
	ageUntreatedSBP *float64 // black female only
	smoker          float64
	ageSmoker       *float64
	diabetic        float64

	baselineSurvival float64 // S0 at the 10-year horizon
	meanXB           float64 // population mean of the linear combination
}

func ptr(f float64) *float64 { return &f }

// Coefficients from Goff et al., 2013 ACC/AHA Guideline on the Assessment of
// Cardiovascular Risk (Appendix 7, Pooled Cohort Equations).
var (
	whiteFemale = coefficientSet{
		group:            GroupWhiteFemale,
		lnAge:            -29.799,
		lnAgeSquared:     ptr(4.884),
		lnTotalChol:      13.540,
		ageTotalChol:     ptr(-3.114),
		lnHDL:            -13.578,
		ageHDL:           ptr(3.149),
		treatedSBP:       2.019,
		untreatedSBP:     1.957,
		smoker:           7.574,
		ageSmoker:        ptr(-1.665),
		diabetic:         0.661,
		baselineSurvival: 0.96652,
		meanXB:           -29.1817,
	}

	whiteMale = coefficientSet{
		group:            GroupWhiteMale,
		lnAge:            12.344,
		lnTotalChol:      11.853,
		ageTotalChol:     ptr(-2.664),
		lnHDL:            -7.990,
		ageHDL:           ptr(1.769),
		treatedSBP:       1.797,
		untreatedSBP:     1.764,
		smoker:           7.837,
		ageSmoker:        ptr(-1.795),
		diabetic:         0.658,
		baselineSurvival: 0.91436,
		meanXB:           61.1816,
	}

	blackFemale = coefficientSet{
		group:            GroupBlackFemale,
		lnAge:            17.1141,
		lnTotalChol:      0.9396,
		lnHDL:            -18.9196,
		ageHDL:           ptr(4.4748),
		treatedSBP:       29.2907,
		ageTreatedSBP:    ptr(-6.4321),
		untreatedSBP:     27.8197,
		ageUntreatedSBP:  ptr(-6.0873),
		smoker:           0.6908,
		diabetic:         0.8738,
		baselineSurvival: 0.95334,
		meanXB:           86.6081,
	}

	blackMale = coefficientSet{
		group:            GroupBlackMale,
		lnAge:            2.469,
		lnTotalChol:      0.302,
		lnHDL:            -0.307,
		treatedSBP:       1.916,
		untreatedSBP:     1.809,
		smoker:           0.549,
		diabetic:         0.645,
		baselineSurvival: 0.89536,
		meanXB:           19.5425,
	}
)

func coefficientsFor(sex Sex, race Race) coefficientSet {
	switch {
	case race == RaceBlack && sex == SexFemale:
		return blackFemale
	case race == RaceBlack && sex == SexMale:
		return blackMale
	case sex == SexFemale:
		return whiteFemale
	default:
		return whiteMale
	}
}

// ComputeRisk evaluates the 10-year ASCVD risk for a profile using the
// Pooled Cohort Equations. It is a pure function: identical input yields a
// bit-identical Result. Invalid profiles are rejected with a
// *ValidationError; the engine never substitutes defaults.
func ComputeRisk(p Profile) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	cs := coefficientsFor(p.Sex, p.Race)

	lnAge := math.Log(float64(p.Age))
	lnTC := math.Log(p.TotalCholesterol)
	lnHDL := math.Log(p.HDL)
	lnSBP := math.Log(p.SystolicBP)

	xb := cs.lnAge * lnAge
	if cs.lnAgeSquared != nil {
		xb += *cs.lnAgeSquared * lnAge * lnAge
	}
	xb += cs.lnTotalChol * lnTC
	if cs.ageTotalChol != nil {
		xb += *cs.ageTotalChol * lnAge * lnTC
	}
	xb += cs.lnHDL * lnHDL
	if cs.ageHDL != nil {
		xb += *cs.ageHDL * lnAge * lnHDL
	}

	// Treated and untreated systolic BP use different coefficients within the
	// same stratum.
	if p.OnBPMeds {
		xb += cs.treatedSBP * lnSBP
		if cs.ageTreatedSBP != nil {
			xb += *cs.ageTreatedSBP * lnAge * lnSBP
		}
	} else {
		xb += cs.untreatedSBP * lnSBP
		if cs.ageUntreatedSBP != nil {
			xb += *cs.ageUntreatedSBP * lnAge * lnSBP
		}
	}

	if p.Smoker {
		xb += cs.smoker
		if cs.ageSmoker != nil {
			xb += *cs.ageSmoker * lnAge
		}
	}
	if p.Diabetic {
		xb += cs.diabetic
	}

	risk := 1.0 - math.Pow(cs.baselineSurvival, math.Exp(xb-cs.meanXB))

	return Result{
		TenYearRiskPercent: clampPercent(risk * 100.0),
		Group:              cs.group,
		LinearPredictor:    xb,
		BaselineSurvival:   cs.baselineSurvival,
		MeanXB:             cs.meanXB,
	}, nil
}

// clampPercent guards against pathological inputs pushing the survival model
// outside the probability range.
func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
