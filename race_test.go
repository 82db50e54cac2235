package trainload

import (
	"math"
	"testing"
)

func tsbSeries(t *testing.T, tsbs ...float64) []FitnessDataPoint {
	t.Helper()
	points := make([]FitnessDataPoint, 0, len(tsbs))
	for i, tsb := range tsbs {
		points = append(points, FitnessDataPoint{Date: day(t, i), CTL: 50, ATL: 50 - tsb, TSB: tsb})
	}
	return points
}

func TestProjectRaceReadinessInsufficientData(t *testing.T) {
	points := tsbSeries(t, 0, 1, 2, 3, 4, 5)
	if got := ProjectRaceReadiness(points, day(t, 20), day(t, 6)); got != nil {
		t.Fatalf("expected nil for 6 points, got %+v", got)
	}
}

func TestProjectRaceReadinessPastRaceDate(t *testing.T) {
	points := tsbSeries(t, 0, 1, 2, 3, 4, 5, 6)
	if got := ProjectRaceReadiness(points, day(t, 5), day(t, 6)); got != nil {
		t.Fatalf("expected nil when race date has passed, got %+v", got)
	}
}

func TestProjectRaceReadinessRaceDayToday(t *testing.T) {
	points := tsbSeries(t, -5, -2, 0, 3, 6, 9, 12)
	got := ProjectRaceReadiness(points, day(t, 6), day(t, 6))
	if got == nil {
		t.Fatal("expected non-nil result when race date equals today")
	}
	if got.DaysUntilRace != 0 {
		t.Fatalf("expected 0 days until race, got %d", got.DaysUntilRace)
	}
	if got.ProjectedTSB != 12 {
		t.Fatalf("projection over 0 days should equal current TSB, got %v", got.ProjectedTSB)
	}
	if got.CurrentForm != FormFresh {
		t.Fatalf("expected current form fresh at TSB 12, got %s", got.CurrentForm)
	}
	if got.Recommendation != "Race week - rest and stay fresh." {
		t.Fatalf("unexpected recommendation %q", got.Recommendation)
	}
}

func TestProjectRaceReadinessLinearExtrapolation(t *testing.T) {
	// TSB climbs 2 per point over 7 points, so the daily change is 2.
	points := tsbSeries(t, -6, -4, -2, 0, 2, 4, 6)
	got := ProjectRaceReadiness(points, day(t, 11), day(t, 6))
	if got == nil {
		t.Fatal("expected readiness projection")
	}
	if got.DaysUntilRace != 5 {
		t.Fatalf("expected 5 days until race, got %d", got.DaysUntilRace)
	}
	want := 6 + 2.0*5
	if math.Abs(got.ProjectedTSB-want) > 1e-9 {
		t.Fatalf("projected TSB = %v, want %v", got.ProjectedTSB, want)
	}
}

func TestProjectRaceReadinessRecommendationPhases(t *testing.T) {
	points := tsbSeries(t, 0, 1, 2, 3, 4, 5, 6)
	today := day(t, 6)
	cases := []struct {
		days int
		want string
	}{
		{2, "Race week - rest and stay fresh."},
		{3, "Taper phase - reduce volume, maintain intensity."},
		{14, "Taper phase - reduce volume, maintain intensity."},
		{15, "Final build - key workouts then begin taper."},
		{28, "Final build - key workouts then begin taper."},
		{29, "Continue building fitness with progressive overload."},
	}
	for _, tc := range cases {
		got := ProjectRaceReadiness(points, today.AddDate(0, 0, tc.days), today)
		if got == nil {
			t.Fatalf("expected projection for %d days out", tc.days)
		}
		if got.Recommendation != tc.want {
			t.Fatalf("%d days out: recommendation %q, want %q", tc.days, got.Recommendation, tc.want)
		}
	}
}

func TestProjectRaceReadinessConfidence(t *testing.T) {
	today := day(t, 20)
	short := tsbSeries(t, 0, 1, 2, 3, 4, 5, 6)

	long := make([]FitnessDataPoint, 0, 14)
	for i := 0; i < 14; i++ {
		long = append(long, FitnessDataPoint{Date: day(t, i), TSB: float64(i)})
	}

	if got := ProjectRaceReadiness(long, today.AddDate(0, 0, 5), today); got.Confidence != ConfidenceHigh {
		t.Fatalf("14 points and 5 days out should be high confidence, got %s", got.Confidence)
	}
	if got := ProjectRaceReadiness(short, today.AddDate(0, 0, 5), today); got.Confidence != ConfidenceMedium {
		t.Fatalf("7 points and 5 days out should fall back to medium, got %s", got.Confidence)
	}
	if got := ProjectRaceReadiness(short, today.AddDate(0, 0, 21), today); got.Confidence != ConfidenceMedium {
		t.Fatalf("21 days out should be medium, got %s", got.Confidence)
	}
	if got := ProjectRaceReadiness(short, today.AddDate(0, 0, 22), today); got.Confidence != ConfidenceLow {
		t.Fatalf("22 days out should be low, got %s", got.Confidence)
	}
}
