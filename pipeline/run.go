package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lucasjlepore/trainload"
	"github.com/lucasjlepore/trainload/history"
)

// validationWindowDays is the activity window the training-load validator
// reasons over; weekly TSS and monotony both use one week of history.
const validationWindowDays = 7

// Run executes the full assessment pipeline and writes all artifacts.
func Run(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "parquet"
	}
	if format != "parquet" && format != "csv" {
		return nil, fmt.Errorf("unsupported format %q (expected parquet|csv)", format)
	}

	activities, err := loadActivities(opts)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("no activities found")
	}

	thresholds, err := LoadThresholds(opts.Thresholds)
	if err != nil {
		return nil, err
	}

	today := opts.Today
	if today.IsZero() {
		today = activities[len(activities)-1].Date
	}

	points := history.BuildFitnessSeries(activities)

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	dailyPath := filepath.Join(opts.OutDir, "daily_metrics."+format)
	switch format {
	case "csv":
		if err := writeDailyCSV(dailyPath, points); err != nil {
			return nil, fmt.Errorf("write daily csv: %w", err)
		}
	case "parquet":
		if err := writeDailyParquet(dailyPath, points); err != nil {
			return nil, fmt.Errorf("write daily parquet: %w", err)
		}
	}

	assessment := trainload.NewAssessment(points, activities)
	if !opts.RaceDate.IsZero() {
		assessment.RaceReadiness = trainload.ProjectRaceReadiness(points, opts.RaceDate, today)
	}

	validationPath := ""
	if opts.WorkoutDuration > 0 {
		workout := trainload.ProposedWorkout{
			Sport:           opts.WorkoutSport,
			DurationMinutes: opts.WorkoutDuration,
			Intensity:       trainload.IntensityOrModerate(opts.WorkoutIntensity),
		}
		if opts.WorkoutTSS > 0 {
			tss := opts.WorkoutTSS
			workout.EstimatedTSS = &tss
		}

		window := history.Window(activities, points, validationWindowDays, today)
		hardDays := consecutiveDemandingDays(activities, thresholds.DemandingTSS, today)
		validation := thresholds.ValidateTrainingLoad(workout, window, hardDays)
		assessment.LoadValidation = &validation

		validationPath = filepath.Join(opts.OutDir, "validation.json")
		if err := writeJSON(validationPath, validation); err != nil {
			return nil, fmt.Errorf("write validation.json: %w", err)
		}
	}

	weeklyPath := filepath.Join(opts.OutDir, "weekly_loads.json")
	if err := writeJSON(weeklyPath, assessment.WeeklyLoads); err != nil {
		return nil, fmt.Errorf("write weekly_loads.json: %w", err)
	}

	assessmentPath := filepath.Join(opts.OutDir, "assessment.json")
	if err := writeJSON(assessmentPath, assessment); err != nil {
		return nil, fmt.Errorf("write assessment.json: %w", err)
	}

	reportPath := filepath.Join(opts.OutDir, "report.md")
	if err := os.WriteFile(reportPath, []byte(trainload.BuildLoadReport(&assessment)), 0o644); err != nil {
		return nil, fmt.Errorf("write report.md: %w", err)
	}

	return &Result{
		OutputDir:        opts.OutDir,
		DailyMetricsPath: dailyPath,
		WeeklyLoadsPath:  weeklyPath,
		AssessmentPath:   assessmentPath,
		ValidationPath:   validationPath,
		ReportPath:       reportPath,
	}, nil
}

func loadActivities(opts Options) ([]trainload.ActivityRecord, error) {
	hasLog := strings.TrimSpace(opts.ActivityLog) != ""
	hasDir := strings.TrimSpace(opts.FitDir) != ""
	switch {
	case hasLog && hasDir:
		return nil, fmt.Errorf("activity log and fit directory are mutually exclusive")
	case hasLog:
		return history.ActivitiesFromJSON(opts.ActivityLog)
	case hasDir:
		return history.ActivitiesFromDir(opts.FitDir, history.Config{FTPWatts: opts.FTPWatts})
	default:
		return nil, fmt.Errorf("an activity log or a fit directory is required")
	}
}

// consecutiveDemandingDays counts the unbroken run of calendar days ending
// today whose summed TSS meets the demanding threshold.
func consecutiveDemandingDays(activities []trainload.ActivityRecord, demandingTSS float64, today time.Time) int {
	daily := make(map[time.Time]float64, len(activities))
	for _, a := range activities {
		day := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, time.UTC)
		daily[day] += a.TSS
	}

	count := 0
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for daily[day] >= demandingTSS && demandingTSS > 0 {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDailyCSV(path string, points []trainload.FitnessDataPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "ctl", "atl", "tsb", "ramp_rate"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			p.Date.Format("2006-01-02"),
			formatFloat(p.CTL),
			formatFloat(p.ATL),
			formatFloat(p.TSB),
			formatFloatPtr(p.RampRate),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
