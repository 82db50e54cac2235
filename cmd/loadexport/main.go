package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lucasjlepore/trainload"
	"github.com/lucasjlepore/trainload/history"
)

func main() {
	var (
		jsonOut  = flag.Bool("json", false, "Emit the full assessment as JSON")
		raceDate = flag.String("race", "", "Race date (YYYY-MM-DD) for readiness projection")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <path-to-activity-log.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	activities, err := history.ActivitiesFromJSON(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load activities failed: %v\n", err)
		os.Exit(1)
	}
	if len(activities) == 0 {
		fmt.Fprintln(os.Stderr, "no activities in log")
		os.Exit(1)
	}

	points := history.BuildFitnessSeries(activities)
	assessment := trainload.NewAssessment(points, activities)

	if *raceDate != "" {
		race, err := time.Parse("2006-01-02", *raceDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --race: %v\n", err)
			os.Exit(2)
		}
		today := activities[len(activities)-1].Date
		assessment.RaceReadiness = trainload.ProjectRaceReadiness(points, race, today)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessment); err != nil {
			fmt.Fprintf(os.Stderr, "json encode failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Print(trainload.BuildLoadReport(&assessment))
}
