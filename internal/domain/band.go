package domain

// Band is the ACC/AHA clinical risk category for a 10-year risk percentage.
type Band string

const (
	BandLow          Band = "low"
	BandBorderline   Band = "borderline"
	BandIntermediate Band = "intermediate"
	BandHigh         Band = "high"
)

// BandFor maps a risk percentage to its clinical category.
func BandFor(riskPercent float64) Band {
	switch {
	case riskPercent < 5:
		return BandLow
	case riskPercent < 7.5:
		return BandBorderline
	case riskPercent < 20:
		return BandIntermediate
	default:
		return BandHigh
	}
}

// Label returns the display label for a band, thresholds included.
func (b Band) Label() string {
	switch b {
	case BandLow:
		return "Low (<5%)"
	case BandBorderline:
		return "Borderline (5-7.4%)"
	case BandIntermediate:
		return "Intermediate (7.5-19.9%)"
	case BandHigh:
		return "High (>=20%)"
	default:
		return string(b)
	}
}
