package pipeline

import "time"

// Options configures one training-load assessment run. Exactly one of
// ActivityLog or FitDir supplies the history.
type Options struct {
	ActivityLog string // JSON activity log
	FitDir      string // directory of .fit files
	OutDir      string
	FTPWatts    float64
	Format      string // parquet|csv
	Thresholds  string // optional TOML threshold overrides
	RaceDate    time.Time
	Today       time.Time

	// Proposed workout. A positive duration enables validation output.
	WorkoutSport     string
	WorkoutDuration  float64
	WorkoutIntensity string
	WorkoutTSS       float64
}

// Result returns generated artifact paths.
type Result struct {
	OutputDir        string `json:"output_dir"`
	DailyMetricsPath string `json:"daily_metrics_path"`
	WeeklyLoadsPath  string `json:"weekly_loads_path"`
	AssessmentPath   string `json:"assessment_path"`
	ValidationPath   string `json:"validation_path,omitempty"`
	ReportPath       string `json:"report_path"`
}
