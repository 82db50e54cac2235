package trainload

import "time"

const (
	readinessWindowPoints     = 7
	highConfidenceWindow      = 14
	highConfidenceMaxDays     = 7
	mediumConfidenceMaxDays   = 21
	raceWeekMaxDays           = 2
	taperPhaseMaxDays         = 14
	finalBuildMaxDays         = 28
)

// ProjectRaceReadiness extrapolates the current TSB trend forward to a race
// date and issues a phase-based recommendation. Requires at least 7 points
// and a race date on or after today; returns nil otherwise. The reference
// date is an explicit parameter so the projection stays pure and testable.
func ProjectRaceReadiness(points []FitnessDataPoint, raceDate, today time.Time) *RaceReadiness {
	if len(points) < readinessWindowPoints {
		return nil
	}
	days := wholeDaysBetween(today, raceDate)
	if days < 0 {
		return nil
	}

	first := points[0]
	last := points[len(points)-1]
	dailyTSBChange := (last.TSB - first.TSB) / float64(len(points)-1)

	confidence := ConfidenceLow
	switch {
	case days <= highConfidenceMaxDays && len(points) >= highConfidenceWindow:
		confidence = ConfidenceHigh
	case days <= mediumConfidenceMaxDays:
		confidence = ConfidenceMedium
	}

	return &RaceReadiness{
		DaysUntilRace:  days,
		ProjectedTSB:   last.TSB + dailyTSBChange*float64(days),
		CurrentForm:    ClassifyForm(last.TSB),
		Recommendation: racePhaseRecommendation(days),
		Confidence:     confidence,
	}
}

func racePhaseRecommendation(daysUntilRace int) string {
	switch {
	case daysUntilRace <= raceWeekMaxDays:
		return "Race week - rest and stay fresh."
	case daysUntilRace <= taperPhaseMaxDays:
		return "Taper phase - reduce volume, maintain intensity."
	case daysUntilRace <= finalBuildMaxDays:
		return "Final build - key workouts then begin taper."
	default:
		return "Continue building fitness with progressive overload."
	}
}

// wholeDaysBetween counts calendar days from a to b, ignoring any time
// component on either date.
func wholeDaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
