package trainload

import (
	"fmt"
	"strings"
)

// Assessment bundles the engine outputs for one athlete evaluation.
type Assessment struct {
	CurrentForm    FormStatus              `json:"current_form"`
	CurrentTSB     float64                 `json:"current_tsb"`
	Trend          *FormTrend              `json:"trend,omitempty"`
	WeeklyLoads    []WeeklyLoadSummary     `json:"weekly_loads,omitempty"`
	Recovery       *RecoveryAssessment     `json:"recovery,omitempty"`
	RaceReadiness  *RaceReadiness          `json:"race_readiness,omitempty"`
	LoadValidation *TrainingLoadValidation `json:"load_validation,omitempty"`
}

// NewAssessment runs the pure analyzers over a fitness-point series and the
// matching activity window. Race readiness and workout validation are
// caller-supplied because they need extra inputs (race date, proposal).
func NewAssessment(points []FitnessDataPoint, activities []ActivityRecord) Assessment {
	a := Assessment{
		WeeklyLoads: AggregateWeeklyLoads(activities),
		Recovery:    AssessRecovery(points),
	}
	if len(points) > 0 {
		a.CurrentTSB = points[len(points)-1].TSB
		a.CurrentForm = ClassifyForm(a.CurrentTSB)
		a.Trend = AnalyzeTrend(trailingWindow(points, trendWindowPoints))
	}
	return a
}

const trendWindowPoints = 7

func trailingWindow(points []FitnessDataPoint, n int) []FitnessDataPoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// BuildLoadReport turns an assessment into a deterministic training summary.
func BuildLoadReport(a *Assessment) string {
	if a == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Form: %s (TSB %+.1f)\n", a.CurrentForm, a.CurrentTSB)
	if a.Trend != nil {
		fmt.Fprintf(
			&b,
			"Trend: %s | TSB %+.1f | CTL %+.1f | ATL %+.1f over the window (avg TSB %+.1f)\n",
			a.Trend.Direction,
			a.Trend.TSBChange,
			a.Trend.CTLChange,
			a.Trend.ATLChange,
			a.Trend.AverageTSB,
		)
	}

	if len(a.WeeklyLoads) > 0 {
		b.WriteString("\nWeekly Load\n")
		for _, w := range a.WeeklyLoads {
			fmt.Fprintf(
				&b,
				"- Week of %s: %.0f TSS across %d activities (%.0f avg, %.0f min total)\n",
				w.WeekStart.Format("2006-01-02"),
				w.TotalTSS,
				w.ActivityCount,
				w.AverageTSSPerActivity,
				w.TotalDuration,
			)
		}
	}

	if a.Recovery != nil {
		b.WriteString("\nRecovery\n")
		fmt.Fprintf(
			&b,
			"- Fatigue %s | ramp rate %+.1f | suggested recovery days: %d\n",
			a.Recovery.FatigueLevel,
			a.Recovery.RampRate,
			a.Recovery.SuggestedRecoveryDays,
		)
		if a.Recovery.IsOverreaching {
			b.WriteString("- Ramp rate indicates overreaching; back off the build this week.\n")
		}
	}

	if a.RaceReadiness != nil {
		b.WriteString("\nRace Readiness\n")
		fmt.Fprintf(
			&b,
			"- %d days to race | projected TSB %+.1f | confidence %s\n",
			a.RaceReadiness.DaysUntilRace,
			a.RaceReadiness.ProjectedTSB,
			a.RaceReadiness.Confidence,
		)
		fmt.Fprintf(&b, "- %s\n", a.RaceReadiness.Recommendation)
	}

	if a.LoadValidation != nil {
		b.WriteString("\nProposed Workout\n")
		verdict := "allowed with caution"
		switch {
		case !a.LoadValidation.IsValid:
			verdict = "not advised"
		case a.LoadValidation.Risk == RiskLow:
			verdict = "cleared"
		}
		fmt.Fprintf(&b, "- Risk %s; %s\n", a.LoadValidation.Risk, verdict)
		for _, w := range a.LoadValidation.Warnings {
			fmt.Fprintf(&b, "- [%s] %s\n", w.Severity, w.Message)
		}
		for _, rec := range a.LoadValidation.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return strings.TrimSpace(b.String())
}
