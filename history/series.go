package history

import (
	"sort"
	"time"

	"github.com/lucasjlepore/trainload"
)

// EMA time constants for chronic and acute load, in days.
const (
	ctlDays = 42.0
	atlDays = 7.0

	rampWindowDays = 7
)

// BuildFitnessSeries computes the daily CTL/ATL/TSB series from an activity
// log. Same-day activities sum; days without activities count as zero load.
// Each point past the first week carries its 7-day CTL ramp rate.
func BuildFitnessSeries(activities []trainload.ActivityRecord) []trainload.FitnessDataPoint {
	if len(activities) == 0 {
		return nil
	}

	daily := make(map[time.Time]float64, len(activities))
	var first, last time.Time
	for _, a := range activities {
		d := dateOnly(a.Date)
		daily[d] += a.TSS
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	ctlDecay := 2.0 / (ctlDays + 1.0)
	atlDecay := 2.0 / (atlDays + 1.0)

	var ctl, atl float64
	points := make([]trainload.FitnessDataPoint, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		tss := daily[d]
		ctl += ctlDecay * (tss - ctl)
		atl += atlDecay * (tss - atl)

		point := trainload.FitnessDataPoint{
			Date: d,
			CTL:  ctl,
			ATL:  atl,
			TSB:  ctl - atl,
		}
		if n := len(points); n >= rampWindowDays-1 {
			ramp := ctl - points[n-(rampWindowDays-1)].CTL
			point.RampRate = &ramp
		}
		points = append(points, point)
	}
	return points
}

// LatestMetrics snapshots the most recent point of a series. An empty
// series yields zero metrics.
func LatestMetrics(points []trainload.FitnessDataPoint) trainload.FitnessMetrics {
	if len(points) == 0 {
		return trainload.FitnessMetrics{}
	}
	latest := points[len(points)-1]
	metrics := trainload.FitnessMetrics{
		CTL: latest.CTL,
		ATL: latest.ATL,
		TSB: latest.TSB,
	}
	if latest.RampRate != nil {
		metrics.RampRate = *latest.RampRate
	} else if len(points) >= 2 {
		metrics.RampRate = latest.CTL - points[0].CTL
	}
	return metrics
}

// Window bundles the last windowDays of activities with the latest metrics
// into the TrainingHistory the validators consume.
func Window(activities []trainload.ActivityRecord, points []trainload.FitnessDataPoint, windowDays int, today time.Time) trainload.TrainingHistory {
	cutoff := dateOnly(today).AddDate(0, 0, -windowDays)
	recent := make([]trainload.ActivityRecord, 0, len(activities))
	for _, a := range activities {
		if a.Date.After(cutoff) && !a.Date.After(dateOnly(today)) {
			recent = append(recent, a)
		}
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.Before(recent[j].Date)
	})
	return trainload.TrainingHistory{
		Activities:     recent,
		FitnessMetrics: LatestMetrics(points),
	}
}
