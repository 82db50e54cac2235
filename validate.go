package trainload

import "fmt"

// Thresholds holds the tunable limits of the training-load validator. The
// defaults are the observed calibration; they are data, not code, so a
// deployment can recalibrate without touching the rules.
type Thresholds struct {
	RampRateWarning     float64 `json:"ramp_rate_warning" toml:"ramp_rate_warning"`
	RampRateDanger      float64 `json:"ramp_rate_danger" toml:"ramp_rate_danger"`
	MonotonyWarning     float64 `json:"monotony_warning" toml:"monotony_warning"`
	StrainDanger        float64 `json:"strain_danger" toml:"strain_danger"`
	ConsecutiveHardDays int     `json:"consecutive_hard_days" toml:"consecutive_hard_days"`
	OverreachingTSB     float64 `json:"overreaching_tsb" toml:"overreaching_tsb"`
	CriticalTSB         float64 `json:"critical_tsb" toml:"critical_tsb"`
	DemandingTSS        float64 `json:"demanding_tss" toml:"demanding_tss"`
}

// DefaultThresholds returns the observed calibration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RampRateWarning:     8,
		RampRateDanger:      10,
		MonotonyWarning:     2.0,
		StrainDanger:        2000,
		ConsecutiveHardDays: 2,
		OverreachingTSB:     -25,
		CriticalTSB:         -30,
		DemandingTSS:        80,
	}
}

// ValidateTrainingLoad evaluates a proposed workout against recent history
// for overtraining risk using the default thresholds.
func ValidateTrainingLoad(workout ProposedWorkout, history TrainingHistory, consecutiveHardDays int) TrainingLoadValidation {
	return DefaultThresholds().ValidateTrainingLoad(workout, history, consecutiveHardDays)
}

// ValidateTrainingLoad evaluates a proposed workout against recent history.
// Every rule fires independently; a single call may emit several warnings.
// Anything short of critical risk is "allowed with caution".
func (t Thresholds) ValidateTrainingLoad(workout ProposedWorkout, history TrainingHistory, consecutiveHardDays int) TrainingLoadValidation {
	current := ComputeLoadMetrics(history)
	workoutTSS := EstimateTSS(workout)
	projected := projectLoad(current, workoutTSS)
	demanding := workoutTSS >= t.DemandingTSS

	warnings := make([]LoadWarning, 0, 4)

	switch {
	case current.RampRate > t.RampRateDanger:
		warnings = append(warnings, LoadWarning{
			Type:      WarnRampRate,
			Severity:  SeverityDanger,
			Message:   fmt.Sprintf("CTL ramp rate %.1f/week is well past the safe limit; injury risk is elevated", current.RampRate),
			Threshold: floatPtr(t.RampRateDanger),
			Actual:    floatPtr(current.RampRate),
		})
	case current.RampRate > t.RampRateWarning:
		warnings = append(warnings, LoadWarning{
			Type:      WarnRampRate,
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("CTL ramp rate %.1f/week exceeds the sustainable build rate", current.RampRate),
			Threshold: floatPtr(t.RampRateWarning),
			Actual:    floatPtr(current.RampRate),
		})
	}

	if consecutiveHardDays >= t.ConsecutiveHardDays {
		warnings = append(warnings, LoadWarning{
			Type:      WarnConsecutiveHard,
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("%d consecutive hard days already completed before this workout", consecutiveHardDays),
			Threshold: floatPtr(float64(t.ConsecutiveHardDays)),
			Actual:    floatPtr(float64(consecutiveHardDays)),
		})
	}

	if current.Monotony != nil && *current.Monotony > t.MonotonyWarning {
		warnings = append(warnings, LoadWarning{
			Type:      WarnMonotony,
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("training monotony %.2f indicates insufficiently varied daily load", *current.Monotony),
			Threshold: floatPtr(t.MonotonyWarning),
			Actual:    floatPtr(*current.Monotony),
		})
	}

	if current.Strain != nil && *current.Strain > t.StrainDanger {
		warnings = append(warnings, LoadWarning{
			Type:      WarnStrain,
			Severity:  SeverityDanger,
			Message:   fmt.Sprintf("weekly strain %.0f exceeds the overtraining danger threshold", *current.Strain),
			Threshold: floatPtr(t.StrainDanger),
			Actual:    floatPtr(*current.Strain),
		})
	}

	overreaching := false
	if current.TSB <= t.OverreachingTSB && demanding {
		overreaching = true
		warnings = append(warnings, LoadWarning{
			Type:      WarnOverreaching,
			Severity:  SeverityDanger,
			Message:   fmt.Sprintf("TSB %.1f is already in the overtrained band and the proposed workout adds %.0f TSS", current.TSB, workoutTSS),
			Threshold: floatPtr(t.OverreachingTSB),
			Actual:    floatPtr(current.TSB),
		})
	}

	risk := t.loadRisk(warnings, overreaching, current.TSB, demanding)

	return TrainingLoadValidation{
		IsValid:         risk != RiskCritical,
		Risk:            risk,
		CurrentLoad:     current,
		ProjectedLoad:   &projected,
		Warnings:        warnings,
		Recommendations: loadRecommendations(warnings, risk),
	}
}

func (t Thresholds) loadRisk(warnings []LoadWarning, overreaching bool, tsb float64, demanding bool) RiskLevel {
	if overreaching || (tsb < t.CriticalTSB && demanding) {
		return RiskCritical
	}
	dangers := 0
	for _, w := range warnings {
		if w.Severity == SeverityDanger {
			dangers++
		}
	}
	switch {
	case dangers > 0 || len(warnings) >= 3:
		return RiskHigh
	case len(warnings) >= 1:
		return RiskModerate
	default:
		return RiskLow
	}
}

func loadRecommendations(warnings []LoadWarning, risk RiskLevel) []string {
	if len(warnings) == 0 && risk == RiskLow {
		return []string{"Training load is within safe parameters"}
	}

	recs := make([]string, 0, len(warnings)+1)
	for _, w := range warnings {
		switch w.Type {
		case WarnRampRate:
			recs = append(recs, "Reduce the weekly volume growth rate; hold CTL builds under 8 points per week")
		case WarnConsecutiveHard:
			recs = append(recs, "Insert an easy or rest day before the next hard session")
		case WarnMonotony:
			recs = append(recs, "Vary daily intensity; alternate hard days with genuinely easy ones")
		case WarnStrain:
			recs = append(recs, "Cut weekly load this week; combined volume and monotony are in the injury-risk zone")
		case WarnOverreaching:
			recs = append(recs, "Replace this workout with recovery work until TSB returns above the overtrained band")
		}
	}
	if risk == RiskCritical {
		recs = append(recs, "Do not proceed as planned; this workout compounds an already critical load state")
	}
	return recs
}

func floatPtr(v float64) *float64 {
	out := v
	return &out
}
