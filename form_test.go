package trainload

import (
	"math"
	"testing"
	"time"
)

func day(t *testing.T, offset int) time.Time {
	t.Helper()
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	return base.AddDate(0, 0, offset)
}

func TestClassifyFormBoundaries(t *testing.T) {
	cases := []struct {
		tsb  float64
		want FormStatus
	}{
		{20, FormRaceReady},
		{15.01, FormRaceReady},
		{15, FormFresh},
		{10, FormFresh},
		{5.01, FormFresh},
		{5, FormOptimal},
		{0, FormOptimal},
		{-10, FormOptimal},
		{-10.01, FormTired},
		{-24.99, FormTired},
		{-25, FormOvertrained},
		{-40, FormOvertrained},
	}
	for _, tc := range cases {
		if got := ClassifyForm(tc.tsb); got != tc.want {
			t.Fatalf("ClassifyForm(%v) = %s, want %s", tc.tsb, got, tc.want)
		}
	}
}

func TestClassifyFormNonFinite(t *testing.T) {
	if got := ClassifyForm(math.NaN()); got != FormOptimal {
		t.Fatalf("ClassifyForm(NaN) = %s, want optimal", got)
	}
	if got := ClassifyForm(math.Inf(1)); got != FormOptimal {
		t.Fatalf("ClassifyForm(+Inf) = %s, want optimal", got)
	}
	if got := ClassifyForm(math.Inf(-1)); got != FormOptimal {
		t.Fatalf("ClassifyForm(-Inf) = %s, want optimal", got)
	}
}

func TestAnalyzeTrendInsufficientData(t *testing.T) {
	if got := AnalyzeTrend(nil); got != nil {
		t.Fatalf("expected nil trend for empty input, got %+v", got)
	}
	one := []FitnessDataPoint{{Date: day(t, 0), TSB: 5}}
	if got := AnalyzeTrend(one); got != nil {
		t.Fatalf("expected nil trend for single point, got %+v", got)
	}
}

func TestAnalyzeTrendStableAtBoundary(t *testing.T) {
	up := []FitnessDataPoint{
		{Date: day(t, 0), TSB: 0},
		{Date: day(t, 1), TSB: 3},
	}
	if got := AnalyzeTrend(up); got.Direction != TrendStable {
		t.Fatalf("tsbChange +3 should be stable, got %s", got.Direction)
	}
	down := []FitnessDataPoint{
		{Date: day(t, 0), TSB: 0},
		{Date: day(t, 1), TSB: -3},
	}
	if got := AnalyzeTrend(down); got.Direction != TrendStable {
		t.Fatalf("tsbChange -3 should be stable, got %s", got.Direction)
	}
}

func TestAnalyzeTrendDirections(t *testing.T) {
	improving := []FitnessDataPoint{
		{Date: day(t, 0), TSB: -2},
		{Date: day(t, 1), TSB: 4},
	}
	if got := AnalyzeTrend(improving); got.Direction != TrendImproving {
		t.Fatalf("tsbChange +6 should be improving, got %s", got.Direction)
	}
	declining := []FitnessDataPoint{
		{Date: day(t, 0), TSB: 4},
		{Date: day(t, 1), TSB: -2},
	}
	if got := AnalyzeTrend(declining); got.Direction != TrendDeclining {
		t.Fatalf("tsbChange -6 should be declining, got %s", got.Direction)
	}
}

// A week of rising CTL and falling ATL drives TSB from -5 to 12: the trend
// is improving and the resulting form is fresh.
func TestAnalyzeTrendRisingWeek(t *testing.T) {
	points := make([]FitnessDataPoint, 0, 7)
	ctls := []float64{50, 51, 52, 53, 54, 55, 56}
	atls := []float64{55, 53, 51, 49, 47, 45, 44}
	for i := range ctls {
		points = append(points, FitnessDataPoint{
			Date: day(t, i),
			CTL:  ctls[i],
			ATL:  atls[i],
			TSB:  ctls[i] - atls[i],
		})
	}

	trend := AnalyzeTrend(points)
	if trend == nil {
		t.Fatal("expected trend for 7 points")
	}
	if trend.Direction != TrendImproving {
		t.Fatalf("expected improving, got %s", trend.Direction)
	}
	if trend.TSBChange != 17 {
		t.Fatalf("expected tsbChange 17, got %v", trend.TSBChange)
	}
	if trend.CurrentTSB != 12 {
		t.Fatalf("expected current TSB 12, got %v", trend.CurrentTSB)
	}
	if got := ClassifyForm(trend.CurrentTSB); got != FormFresh {
		t.Fatalf("ClassifyForm(12) = %s, want fresh", got)
	}
}
