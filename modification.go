package trainload

import (
	"fmt"
	"sort"
)

// Percent-increase bands shared by the load and duration checks.
const (
	increaseWarningPct = 50.0
	increaseDangerPct  = 100.0

	fatigueTSSIncreasePct = 25.0
	jumpWarningLevels     = 2
	jumpDangerLevels      = 3
	suggestedDurationCap  = 1.25
	hardSessionFloor      = IntensityThreshold
)

// ValidateModification evaluates a user-edited workout against the original
// proposal. Each rule emits at most one warning of its type; decreases in
// intensity, load, or duration never warn. A nil context skips the
// readiness, fatigue, constraint, and recent-activity checks.
func ValidateModification(original, modified ProposedWorkout, ctx *ModificationContext) WorkoutModificationValidation {
	warnings := make([]ModificationWarning, 0, 4)

	intensityDelta := int(modified.Intensity) - int(original.Intensity)
	if w := intensityJumpCheck(intensityDelta); w != nil {
		warnings = append(warnings, *w)
	}

	originalTSS := EstimateTSS(original)
	modifiedTSS := EstimateTSS(modified)
	tssIncreasePct := percentIncrease(originalTSS, modifiedTSS)
	if w := increaseWarning(WarnLoadIncrease, "training load", originalTSS, tssIncreasePct); w != nil {
		warnings = append(warnings, *w)
	}
	if w := increaseWarning(WarnDurationIncrease, "duration", original.DurationMinutes, percentIncrease(original.DurationMinutes, modified.DurationMinutes)); w != nil {
		warnings = append(warnings, *w)
	}

	constraintViolated := false
	if ctx != nil {
		if w := fatigueRiskWarning(ctx, intensityDelta, originalTSS, modifiedTSS, tssIncreasePct); w != nil {
			warnings = append(warnings, *w)
		}
		if w := constraintWarning(ctx.Constraints, original, modified); w != nil {
			constraintViolated = true
			warnings = append(warnings, *w)
		}
		if w := consecutiveHardWarning(ctx.RecentActivities, modified); w != nil {
			warnings = append(warnings, *w)
		}
	}

	risk := modificationRisk(warnings)
	result := WorkoutModificationValidation{
		IsValid:         risk != RiskCritical,
		Risk:            risk,
		Warnings:        warnings,
		Recommendations: modificationRecommendations(warnings, risk),
	}
	if risk == RiskHigh || risk == RiskCritical {
		result.SuggestedModification = suggestSafeModification(original, modified, constraintViolated)
	}
	return result
}

func intensityJumpCheck(delta int) *ModificationWarning {
	if delta < jumpWarningLevels {
		return nil
	}
	severity := SeverityWarning
	if delta >= jumpDangerLevels {
		severity = SeverityDanger
	}
	return &ModificationWarning{
		Type:      WarnIntensityJump,
		Severity:  severity,
		Message:   fmt.Sprintf("intensity raised by %d levels over the proposed workout", delta),
		Threshold: floatPtr(float64(jumpWarningLevels)),
		Actual:    floatPtr(float64(delta)),
	}
}

// percentIncrease is the increase of modified over original in percent. A
// zero or negative original yields zero, so no warning can fire from it.
func percentIncrease(original, modified float64) float64 {
	if original <= 0 {
		return 0
	}
	pct := ((modified / original) - 1.0) * 100.0
	if pct < 0 {
		return 0
	}
	return pct
}

func increaseWarning(warnType ModificationWarningType, what string, original, increasePct float64) *ModificationWarning {
	if original <= 0 || increasePct <= increaseWarningPct {
		return nil
	}
	severity := SeverityWarning
	if increasePct > increaseDangerPct {
		severity = SeverityDanger
	}
	return &ModificationWarning{
		Type:      warnType,
		Severity:  severity,
		Message:   fmt.Sprintf("%s increased by %.0f%% over the proposed workout", what, increasePct),
		Threshold: floatPtr(increaseWarningPct),
		Actual:    floatPtr(increasePct),
	}
}

// fatigueRiskWarning emits at most one fatigue_risk warning. The readiness
// signal takes precedence; the fatigue-level rule only applies when the
// readiness rule stayed silent.
func fatigueRiskWarning(ctx *ModificationContext, intensityDelta int, originalTSS, modifiedTSS, tssIncreasePct float64) *ModificationWarning {
	if intensityDelta > 0 {
		switch ctx.Readiness {
		case ReadinessRed:
			return &ModificationWarning{
				Type:     WarnFatigueRisk,
				Severity: SeverityDanger,
				Message:  "readiness is red; raising intensity today risks deepening fatigue",
			}
		case ReadinessYellow:
			return &ModificationWarning{
				Type:     WarnFatigueRisk,
				Severity: SeverityWarning,
				Message:  "readiness is yellow; an intensity increase is not advised today",
			}
		}
	}

	if modifiedTSS > originalTSS {
		switch {
		case ctx.Fatigue == FatigueStateCritical:
			return &ModificationWarning{
				Type:     WarnFatigueRisk,
				Severity: SeverityDanger,
				Message:  "fatigue is critical; any load increase risks non-functional overreaching",
			}
		case ctx.Fatigue == FatigueStateHigh && tssIncreasePct > fatigueTSSIncreasePct:
			return &ModificationWarning{
				Type:      WarnFatigueRisk,
				Severity:  SeverityWarning,
				Message:   fmt.Sprintf("fatigue is high and the load increase of %.0f%% is substantial", tssIncreasePct),
				Threshold: floatPtr(fatigueTSSIncreasePct),
				Actual:    floatPtr(tssIncreasePct),
			}
		}
	}
	return nil
}

// constraintWarning checks active injury constraints when the sport changed.
// A restriction on the new sport, or a generic high-intensity restriction
// combined with threshold-or-harder work, violates the constraint. Severe
// injuries escalate to danger.
func constraintWarning(constraints []Constraint, original, modified ProposedWorkout) *ModificationWarning {
	if modified.Sport == original.Sport {
		return nil
	}

	var found *ModificationWarning
	for _, c := range constraints {
		if c.Kind != ConstraintInjury || c.Injury == nil {
			continue
		}
		violated := false
		for _, restricted := range c.Injury.RestrictedSports {
			if restricted == modified.Sport {
				violated = true
			}
			if restricted == RestrictionHighIntensity && modified.Intensity >= hardSessionFloor {
				violated = true
			}
		}
		if !violated {
			continue
		}
		severity := SeverityWarning
		if c.Injury.Severity == InjurySevere {
			severity = SeverityDanger
		}
		w := &ModificationWarning{
			Type:     WarnConstraintViolation,
			Severity: severity,
			Message:  fmt.Sprintf("switching to %s conflicts with an active %s injury constraint", modified.Sport, c.Injury.Severity),
		}
		if severity == SeverityDanger {
			return w
		}
		if found == nil {
			found = w
		}
	}
	return found
}

// consecutiveHardWarning fires when the two most recent prior activities
// were both threshold or harder and the proposal is threshold or harder.
func consecutiveHardWarning(recent []CompletedActivity, modified ProposedWorkout) *ModificationWarning {
	if modified.Intensity < hardSessionFloor || len(recent) < 2 {
		return nil
	}
	ordered := make([]CompletedActivity, len(recent))
	copy(ordered, recent)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})
	if ordered[0].Intensity < hardSessionFloor || ordered[1].Intensity < hardSessionFloor {
		return nil
	}
	return &ModificationWarning{
		Type:     WarnConsecutiveHardDays,
		Severity: SeverityDanger,
		Message:  "the last two sessions were already hard; a third consecutive hard day invites overtraining",
	}
}

func modificationRisk(warnings []ModificationWarning) RiskLevel {
	dangers := 0
	for _, w := range warnings {
		if w.Severity == SeverityDanger {
			dangers++
		}
	}
	switch {
	case dangers >= 2:
		return RiskCritical
	case dangers == 1:
		return RiskHigh
	case len(warnings) >= 2:
		return RiskHigh
	case len(warnings) == 1:
		return RiskModerate
	default:
		return RiskLow
	}
}

// suggestSafeModification keeps the edit but caps it: intensity at most one
// level above the original, duration at most 125% of the original, and the
// original sport restored when the change violated a constraint. Each cap
// applies independently and only when the edit exceeded it.
func suggestSafeModification(original, modified ProposedWorkout, constraintViolated bool) *ProposedWorkout {
	suggested := modified
	suggested.EstimatedTSS = nil

	if suggested.Intensity > original.Intensity+1 {
		suggested.Intensity = original.Intensity + 1
	}
	maxDuration := original.DurationMinutes * suggestedDurationCap
	if original.DurationMinutes > 0 && suggested.DurationMinutes > maxDuration {
		suggested.DurationMinutes = maxDuration
	}
	if constraintViolated {
		suggested.Sport = original.Sport
	}
	return &suggested
}

func modificationRecommendations(warnings []ModificationWarning, risk RiskLevel) []string {
	if len(warnings) == 0 && risk == RiskLow {
		return []string{"Modification is within safe limits"}
	}

	recs := make([]string, 0, len(warnings)+1)
	for _, w := range warnings {
		switch w.Type {
		case WarnIntensityJump:
			recs = append(recs, "Limit intensity changes to one level per adjustment")
		case WarnLoadIncrease:
			recs = append(recs, "Grow training load gradually; keep single-session increases under 50%")
		case WarnDurationIncrease:
			recs = append(recs, "Extend duration progressively across weeks rather than within one session")
		case WarnFatigueRisk:
			recs = append(recs, "Honor today's readiness signal; keep the session easy or rest")
		case WarnConstraintViolation:
			recs = append(recs, "Keep the originally planned sport until the injury constraint clears")
		case WarnConsecutiveHardDays:
			recs = append(recs, "Schedule a recovery day; three hard days in a row is counterproductive")
		}
	}
	if risk == RiskCritical {
		recs = append(recs, "Use the suggested fallback workout instead of this modification")
	}
	return recs
}
