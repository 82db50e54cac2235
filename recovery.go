package trainload

// Acute-load bands for fatigue classification. Each boundary value belongs
// to the lower band.
const (
	atlLowCeil      = 40.0
	atlModerateCeil = 70.0
	atlHighCeil     = 90.0

	recoveryWindowPoints = 7
	overreachingRampRate = 7.0
)

// AssessRecovery classifies fatigue and overreaching risk from the supplied
// fitness-point window. Requires at least 7 points; returns nil otherwise.
func AssessRecovery(points []FitnessDataPoint) *RecoveryAssessment {
	if len(points) < recoveryWindowPoints {
		return nil
	}

	latest := points[len(points)-1]
	level := FatigueVeryHigh
	switch {
	case latest.ATL <= atlLowCeil:
		level = FatigueLow
	case latest.ATL <= atlModerateCeil:
		level = FatigueModerate
	case latest.ATL <= atlHighCeil:
		level = FatigueHigh
	}

	rampRate := latest.CTL - points[len(points)-recoveryWindowPoints].CTL

	return &RecoveryAssessment{
		FatigueLevel:          level,
		SuggestedRecoveryDays: recoveryDaysFor(level),
		RampRate:              rampRate,
		IsOverreaching:        rampRate > overreachingRampRate,
	}
}

func recoveryDaysFor(level FatigueLevel) int {
	switch level {
	case FatigueLow:
		return 0
	case FatigueModerate:
		return 1
	case FatigueHigh:
		return 2
	default:
		return 3
	}
}
