// Package history turns raw activity sources into the time series the
// trainload engine consumes: activity records decoded from FIT files or a
// JSON log, and the derived daily CTL/ATL/TSB fitness series.
package history

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tormoder/fit"

	"github.com/lucasjlepore/trainload"
)

const secondsPerHour = 3600.0

// Config controls FIT ingestion.
type Config struct {
	// FTPWatts scales power into training stress. When zero, files without
	// a usable power signal fall back to a duration-based estimate.
	FTPWatts float64
}

// ActivityFromFITFile decodes one activity FIT file into an ActivityRecord.
func ActivityFromFITFile(path string, cfg Config) (trainload.ActivityRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return trainload.ActivityRecord{}, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return trainload.ActivityRecord{}, fmt.Errorf("decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return trainload.ActivityRecord{}, fmt.Errorf("activity FIT expected: %w", err)
	}
	return activityRecord(activity, cfg)
}

// ActivitiesFromDir decodes every .fit file under dir, sorted by date.
func ActivitiesFromDir(dir string, cfg Config) ([]trainload.ActivityRecord, error) {
	records := make([]trainload.ActivityRecord, 0, 64)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".fit") {
			return nil
		}
		rec, err := ActivityFromFITFile(path, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func activityRecord(activity *fit.ActivityFile, cfg Config) (trainload.ActivityRecord, error) {
	if len(activity.Sessions) == 0 {
		return trainload.ActivityRecord{}, fmt.Errorf("activity file has no session message")
	}
	session := activity.Sessions[0]

	start := session.StartTime
	if start.IsZero() || fit.IsBaseTime(start) {
		if len(activity.Records) > 0 && activity.Records[0] != nil {
			start = activity.Records[0].Timestamp
		}
	}
	if start.IsZero() {
		return trainload.ActivityRecord{}, fmt.Errorf("activity file has no usable start time")
	}

	durationSec := safePositive(session.GetTotalTimerTimeScaled())
	if durationSec == 0 {
		durationSec = safePositive(session.GetTotalElapsedTimeScaled())
	}

	rec := trainload.ActivityRecord{
		Date:            dateOnly(start),
		DurationMinutes: durationSec / 60.0,
		TSS:             sessionTSS(session, activity.Records, durationSec, cfg),
		Type:            fmt.Sprint(session.Sport),
	}
	return rec, nil
}

// sessionTSS computes training stress from normalized power and FTP, the
// same IF-squared formula the session analyzer uses. Without power or FTP
// it estimates from duration at a moderate hourly rate.
func sessionTSS(session *fit.SessionMsg, records []*fit.RecordMsg, durationSec float64, cfg Config) float64 {
	np := float64(validUint16(session.NormalizedPower))
	if np == 0 {
		np = float64(validUint16(session.AvgPower))
	}
	if np == 0 {
		np = averagePower(records)
	}

	if cfg.FTPWatts > 0 && np > 0 && durationSec > 0 {
		intensity := np / cfg.FTPWatts
		return (durationSec / secondsPerHour) * intensity * intensity * 100.0
	}

	// No power signal: assume a moderate-intensity hour is ~70 TSS.
	return (durationSec / secondsPerHour) * 70.0
}

func averagePower(records []*fit.RecordMsg) float64 {
	total := 0.0
	count := 0
	for _, rec := range records {
		if rec == nil || rec.Power == math.MaxUint16 {
			continue
		}
		total += float64(rec.Power)
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// ActivitiesFromJSON reads a JSON activity log: an array of objects with
// date, duration_minutes, tss, and type fields. Unrecognized activity type
// strings pass through untouched; they only matter to the caller.
func ActivitiesFromJSON(path string) ([]trainload.ActivityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read activity log: %w", err)
	}
	var records []trainload.ActivityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal activity log: %w", err)
	}
	for i := range records {
		if records[i].TSS < 0 {
			return nil, fmt.Errorf("activity %d: negative tss %v", i, records[i].TSS)
		}
		records[i].Date = dateOnly(records[i].Date)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}

func safePositive(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
