package trainload

import (
	"sort"
	"time"
)

// AggregateWeeklyLoads buckets activities into Monday-start calendar weeks
// and summarizes the load per week, sorted ascending by week start. Multiple
// activities on one day sum into the same bucket. Empty input yields empty
// output.
func AggregateWeeklyLoads(activities []ActivityRecord) []WeeklyLoadSummary {
	buckets := make(map[time.Time]*WeeklyLoadSummary)
	for _, a := range activities {
		week := mondayOnOrBefore(a.Date)
		summary, ok := buckets[week]
		if !ok {
			summary = &WeeklyLoadSummary{WeekStart: week}
			buckets[week] = summary
		}
		summary.TotalTSS += a.TSS
		summary.ActivityCount++
		summary.TotalDuration += a.DurationMinutes
	}

	out := make([]WeeklyLoadSummary, 0, len(buckets))
	for _, summary := range buckets {
		if summary.ActivityCount > 0 {
			summary.AverageTSSPerActivity = summary.TotalTSS / float64(summary.ActivityCount)
		}
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WeekStart.Before(out[j].WeekStart)
	})
	return out
}

// mondayOnOrBefore returns the Monday starting the ISO week that contains
// the given date; Sunday belongs to the preceding Monday's week.
func mondayOnOrBefore(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
