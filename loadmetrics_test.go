package trainload

import (
	"math"
	"testing"
)

func TestEstimateTSSFromIntensity(t *testing.T) {
	w := ProposedWorkout{Sport: "bike", DurationMinutes: 90, Intensity: IntensityThreshold}
	if got := EstimateTSS(w); got != 150 {
		t.Fatalf("90 min at threshold should estimate 150 TSS, got %v", got)
	}
	w.DurationMinutes = 60
	w.Intensity = IntensityRecovery
	if got := EstimateTSS(w); got != 30 {
		t.Fatalf("60 min recovery should estimate 30 TSS, got %v", got)
	}
}

func TestEstimateTSSUsesExplicitValueIncludingZero(t *testing.T) {
	w := ProposedWorkout{DurationMinutes: 60, Intensity: IntensityThreshold, EstimatedTSS: floatPtr(0)}
	if got := EstimateTSS(w); got != 0 {
		t.Fatalf("explicit zero TSS must be used as-is, got %v", got)
	}
	w.EstimatedTSS = floatPtr(42)
	if got := EstimateTSS(w); got != 42 {
		t.Fatalf("explicit TSS must be used as-is, got %v", got)
	}
}

func TestComputeLoadMetricsEmptyHistory(t *testing.T) {
	metrics := ComputeLoadMetrics(TrainingHistory{})
	if metrics.WeeklyTSS != 0 {
		t.Fatalf("empty history should report weekly TSS 0, got %v", metrics.WeeklyTSS)
	}
	if metrics.Monotony == nil || *metrics.Monotony != 0 {
		t.Fatalf("empty history should report monotony 0, got %v", metrics.Monotony)
	}
	if metrics.Strain == nil || *metrics.Strain != 0 {
		t.Fatalf("empty history should report strain 0, got %v", metrics.Strain)
	}
}

func TestComputeLoadMetricsMonotonyAndStrain(t *testing.T) {
	// Alternating 100/0 days over a week: mean 400/7, stdev ~49.5.
	activities := []ActivityRecord{
		{Date: day(t, 0), TSS: 100},
		{Date: day(t, 2), TSS: 100},
		{Date: day(t, 4), TSS: 100},
		{Date: day(t, 6), TSS: 100},
	}
	metrics := ComputeLoadMetrics(TrainingHistory{Activities: activities})
	if metrics.WeeklyTSS != 400 {
		t.Fatalf("expected weekly TSS 400, got %v", metrics.WeeklyTSS)
	}

	mean := 400.0 / 7.0
	variance := (4*math.Pow(100-mean, 2) + 3*math.Pow(0-mean, 2)) / 7.0
	wantMonotony := mean / math.Sqrt(variance)
	if metrics.Monotony == nil || math.Abs(*metrics.Monotony-wantMonotony) > 1e-9 {
		t.Fatalf("monotony = %v, want %v", metrics.Monotony, wantMonotony)
	}
	if metrics.Strain == nil || math.Abs(*metrics.Strain-400*wantMonotony) > 1e-9 {
		t.Fatalf("strain = %v, want %v", metrics.Strain, 400*wantMonotony)
	}
}

func TestComputeLoadMetricsZeroVarianceGuards(t *testing.T) {
	// Identical load every day of the window: stdev 0, monotony degrades to 0.
	activities := make([]ActivityRecord, 0, 7)
	for i := 0; i < 7; i++ {
		activities = append(activities, ActivityRecord{Date: day(t, i), TSS: 80})
	}
	metrics := ComputeLoadMetrics(TrainingHistory{Activities: activities})
	if metrics.Monotony == nil || *metrics.Monotony != 0 {
		t.Fatalf("zero-variance monotony must degrade to 0, got %v", metrics.Monotony)
	}
}

func TestComputeLoadMetricsSumsSameDay(t *testing.T) {
	activities := []ActivityRecord{
		{Date: day(t, 0), TSS: 40},
		{Date: day(t, 0), TSS: 30},
		{Date: day(t, 3), TSS: 60},
	}
	metrics := ComputeLoadMetrics(TrainingHistory{Activities: activities})
	if metrics.WeeklyTSS != 130 {
		t.Fatalf("expected weekly TSS 130, got %v", metrics.WeeklyTSS)
	}
}

func TestProjectLoadAppliesAcuteContribution(t *testing.T) {
	current := LoadMetrics{WeeklyTSS: 300, ATL: 70, TSB: -5}
	projected := projectLoad(current, 70)
	if projected.ATL != 80 {
		t.Fatalf("ATL should rise by tss/7, got %v", projected.ATL)
	}
	if projected.TSB != -15 {
		t.Fatalf("TSB should drop by tss/7, got %v", projected.TSB)
	}
	if projected.WeeklyTSS != 370 {
		t.Fatalf("weekly TSS should rise by the full tss, got %v", projected.WeeklyTSS)
	}
}
