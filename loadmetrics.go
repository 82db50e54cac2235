package trainload

import (
	"math"
	"time"
)

const (
	monotonyWindowDays = 7
	atlTimeConstant    = 7.0
	minutesPerHour     = 60.0
)

// tssPerHour is the base hourly training-stress rate per intensity level,
// anchored at ~100/h for threshold work.
var tssPerHour = map[WorkoutIntensity]float64{
	IntensityRecovery:  30,
	IntensityEasy:      50,
	IntensityModerate:  70,
	IntensityTempo:     85,
	IntensityThreshold: 100,
	IntensityVO2Max:    120,
	IntensitySprint:    140,
}

// EstimateTSS returns the workout's training stress: the supplied estimate
// as-is when present (including zero), otherwise the intensity's hourly base
// rate scaled by duration.
func EstimateTSS(w ProposedWorkout) float64 {
	if w.EstimatedTSS != nil {
		return *w.EstimatedTSS
	}
	rate, ok := tssPerHour[w.Intensity]
	if !ok {
		rate = tssPerHour[IntensityModerate]
	}
	return rate * (w.DurationMinutes / minutesPerHour)
}

// ComputeLoadMetrics derives the load state the validators reason over from
// the supplied history: weekly TSS summed over the activity window, 7-day
// monotony and strain, and the latest CTL/ATL/TSB/ramp snapshot. An empty
// activity window degrades to zero weekly TSS and zero monotony.
func ComputeLoadMetrics(history TrainingHistory) LoadMetrics {
	weeklyTSS := 0.0
	for _, a := range history.Activities {
		weeklyTSS += a.TSS
	}

	monotony := computeMonotony(history.Activities)
	strain := weeklyTSS * monotony

	return LoadMetrics{
		WeeklyTSS: weeklyTSS,
		CTL:       history.FitnessMetrics.CTL,
		ATL:       history.FitnessMetrics.ATL,
		TSB:       history.FitnessMetrics.TSB,
		RampRate:  history.FitnessMetrics.RampRate,
		Monotony:  &monotony,
		Strain:    &strain,
	}
}

// computeMonotony is mean daily TSS divided by the standard deviation of
// daily TSS over the 7 calendar days ending at the most recent activity.
// Days without activities count as zero-load days. A zero standard
// deviation yields zero rather than dividing.
func computeMonotony(activities []ActivityRecord) float64 {
	if len(activities) == 0 {
		return 0
	}

	daily := make(map[time.Time]float64, len(activities))
	var latest time.Time
	for _, a := range activities {
		day := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, time.UTC)
		daily[day] += a.TSS
		if day.After(latest) {
			latest = day
		}
	}

	loads := make([]float64, 0, monotonyWindowDays)
	for i := monotonyWindowDays - 1; i >= 0; i-- {
		loads = append(loads, daily[latest.AddDate(0, 0, -i)])
	}

	mean := 0.0
	for _, v := range loads {
		mean += v
	}
	mean /= float64(len(loads))

	variance := 0.0
	for _, v := range loads {
		d := v - mean
		variance += d * d
	}
	stdev := math.Sqrt(variance / float64(len(loads)))
	if stdev == 0 {
		return 0
	}
	return mean / stdev
}

// projectLoad applies the proposed workout's stress to the current state:
// the added TSS raises acute load by its 7-day share, drops TSB by the same
// amount, and adds in full to the weekly total.
func projectLoad(current LoadMetrics, addedTSS float64) LoadMetrics {
	acute := addedTSS / atlTimeConstant
	projected := current
	projected.ATL = current.ATL + acute
	projected.TSB = current.TSB - acute
	projected.WeeklyTSS = current.WeeklyTSS + addedTSS
	return projected
}
