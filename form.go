package trainload

import "math"

// Form-status TSB boundaries. Lower bounds are exclusive except where the
// classification table in ClassifyForm notes otherwise.
const (
	tsbRaceReadyFloor   = 15.0
	tsbFreshFloor       = 5.0
	tsbOptimalFloor     = -10.0
	tsbOvertrainedCeil  = -25.0
	trendStableBand     = 3.0
	trendMinimumPoints  = 2
)

// ClassifyForm maps a TSB value to a form status. The five bands partition
// the real line; a non-finite TSB classifies as optimal, matching the
// treat-unusable-input-as-zero convention used throughout the calculators.
func ClassifyForm(tsb float64) FormStatus {
	if math.IsNaN(tsb) || math.IsInf(tsb, 0) {
		return FormOptimal
	}
	switch {
	case tsb > tsbRaceReadyFloor:
		return FormRaceReady
	case tsb > tsbFreshFloor:
		return FormFresh
	case tsb >= tsbOptimalFloor:
		return FormOptimal
	case tsb > tsbOvertrainedCeil:
		return FormTired
	default:
		return FormOvertrained
	}
}

// AnalyzeTrend computes the directional trend over the supplied window and
// returns nil when fewer than two points are available. Callers window the
// series themselves (typically the last 7 points).
func AnalyzeTrend(points []FitnessDataPoint) *FormTrend {
	if len(points) < trendMinimumPoints {
		return nil
	}

	first := points[0]
	last := points[len(points)-1]

	tsbChange := last.TSB - first.TSB
	direction := TrendStable
	switch {
	case tsbChange > trendStableBand:
		direction = TrendImproving
	case tsbChange < -trendStableBand:
		direction = TrendDeclining
	}

	sum := 0.0
	for _, p := range points {
		sum += p.TSB
	}

	return &FormTrend{
		Direction:  direction,
		TSBChange:  tsbChange,
		CTLChange:  last.CTL - first.CTL,
		ATLChange:  last.ATL - first.ATL,
		CurrentTSB: last.TSB,
		AverageTSB: sum / float64(len(points)),
	}
}
