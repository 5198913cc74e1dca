// Package timeline projects risk trajectories by re-scoring a profile year by
// year as age advances.
package timeline

import "github.com/emiliopalmerini/cardiosim/internal/domain"

// Entry is one projected year: the derived profile and its risk result.
type Entry struct {
	YearOffset int            `json:"year_offset"`
	Profile    domain.Profile `json:"profile"`
	Result     domain.Result  `json:"result"`
}

// Timeline is an ordered year-indexed risk trajectory. Built fresh per
// request, never cached or shared.
type Timeline []Entry

// Project re-scores the profile for each year offset from 0 to horizonYears,
// incrementing age per year. Risk factors are held constant; only age moves.
//
// Upper-boundary policy: the equations are not validated past age 79, so
// projection stops early once the projected age would exceed 79. The returned
// timeline is then shorter than the requested horizon, and no entry ever
// carries an age above 79.
func Project(p domain.Profile, horizonYears int) (Timeline, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tl := make(Timeline, 0, horizonYears+1)
	for offset := 0; offset <= horizonYears; offset++ {
		age := p.Age + offset
		if age > domain.MaxAge {
			break
		}
		year := p
		year.Age = age
		result, err := domain.ComputeRisk(year)
		if err != nil {
			return nil, err
		}
		tl = append(tl, Entry{YearOffset: offset, Profile: year, Result: result})
	}
	return tl, nil
}

// Pair holds aligned baseline and intervention trajectories sharing the same
// year offsets, for plotting both curves on one axis.
type Pair struct {
	Baseline     Timeline `json:"baseline"`
	Intervention Timeline `json:"intervention"`
}

// ProjectPair projects both profiles over the same horizon. Each trajectory
// is a plain re-evaluation per year; the two are aligned by year offset.
func ProjectPair(baseline, intervention domain.Profile, horizonYears int) (Pair, error) {
	base, err := Project(baseline, horizonYears)
	if err != nil {
		return Pair{}, err
	}
	ivn, err := Project(intervention, horizonYears)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Baseline: base, Intervention: ivn}, nil
}
