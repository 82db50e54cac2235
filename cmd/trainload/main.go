package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasjlepore/trainload/pipeline"
)

func main() {
	var (
		logPath    = flag.String("log", "", "Path to JSON activity log")
		fitDir     = flag.String("fitdir", "", "Directory of .fit files (alternative to --log)")
		outDir     = flag.String("out", "", "Output directory")
		ftp        = flag.Float64("ftp", 0, "FTP in watts for TSS from .fit power data")
		format     = flag.String("format", "parquet", "Daily metrics format: parquet|csv")
		thresholds = flag.String("thresholds", "", "TOML file with validator threshold overrides")
		raceDate   = flag.String("race", "", "Race date (YYYY-MM-DD) for readiness projection")
		today      = flag.String("today", "", "Evaluation date (YYYY-MM-DD, defaults to last activity)")
		sport      = flag.String("sport", "", "Proposed workout sport")
		duration   = flag.Float64("duration", 0, "Proposed workout duration in minutes (enables validation)")
		intensity  = flag.String("intensity", "", "Proposed workout intensity (recovery..sprint)")
		tss        = flag.Float64("tss", 0, "Proposed workout TSS (optional; estimated from intensity when 0)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --log activities.json --out outdir [--race 2026-06-01] [--duration 90 --intensity threshold]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if strings.TrimSpace(*outDir) == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := pipeline.Options{
		ActivityLog:      *logPath,
		FitDir:           *fitDir,
		OutDir:           *outDir,
		FTPWatts:         *ftp,
		Format:           *format,
		Thresholds:       *thresholds,
		WorkoutSport:     *sport,
		WorkoutDuration:  *duration,
		WorkoutIntensity: *intensity,
		WorkoutTSS:       *tss,
	}
	var err error
	if opts.RaceDate, err = parseDate(*raceDate); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --race: %v\n", err)
		os.Exit(2)
	}
	if opts.Today, err = parseDate(*today); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --today: %v\n", err)
		os.Exit(2)
	}

	result, err := pipeline.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trainload failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("trainload complete\n")
	fmt.Printf("Output dir:      %s\n", result.OutputDir)
	fmt.Printf("daily metrics:   %s\n", result.DailyMetricsPath)
	fmt.Printf("weekly loads:    %s\n", result.WeeklyLoadsPath)
	fmt.Printf("assessment:      %s\n", result.AssessmentPath)
	if result.ValidationPath != "" {
		fmt.Printf("validation:      %s\n", result.ValidationPath)
	}
	fmt.Printf("report:          %s\n", result.ReportPath)
}

func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
