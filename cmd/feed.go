package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"fitfeed/internal/calendar"
	"fitfeed/internal/feed"
	"fitfeed/internal/model"
)

var (
	feedDays int
	feedDemo bool
	feedJSON bool
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Refresh and print the workout feed",
	Args:  cobra.NoArgs,
	RunE:  runFeed,
}

func init() {
	feedCmd.Flags().IntVar(&feedDays, "days", 0, "Days ahead to fetch (default from config)")
	feedCmd.Flags().BoolVar(&feedDemo, "demo", false, "Show the built-in sample feed instead of calendar data")
	feedCmd.Flags().BoolVar(&feedJSON, "json", false, "Print the feed as JSON")
}

func runFeed(cmd *cobra.Command, args []string) error {
	if feedDemo {
		printWorkouts(feed.DemoWorkouts(time.Now()))
		return nil
	}

	workouts, _, err := refreshSession(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printWorkouts(workouts)
	return nil
}

// refreshSession builds the configured session and performs one refresh.
// Shared by the feed, show and delete commands.
func refreshSession(ctx context.Context) ([]model.Workout, *feed.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	source, err := buildSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	session := feed.NewSession(source)
	session.SetHorizonDays(cfg.HorizonDays)
	if feedDays > 0 {
		session.SetHorizonDays(feedDays)
	}

	workouts, err := session.Refresh(ctx)
	if err != nil {
		if errors.Is(err, calendar.ErrPermissionDenied) {
			return nil, nil, errors.New("calendar permission required: grant fitfeed access to your calendar and try again (fitfeed login)")
		}
		return nil, nil, err
	}
	return workouts, session, nil
}

// printWorkouts groups the feed by day, chronologically.
func printWorkouts(workouts []model.Workout) {
	if feedJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(workouts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	if len(workouts) == 0 {
		fmt.Println("No workouts found.")
		return
	}

	sorted := make([]model.Workout, len(workouts))
	copy(sorted, workouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RawDate.Before(sorted[j].RawDate)
	})

	var currentDay string
	for _, w := range sorted {
		if w.Date != currentDay {
			fmt.Println(w.Date)
			currentDay = w.Date
		}
		fmt.Println(formatFeedLine(w))
	}
}

// formatFeedLine renders one feed row, e.g.
// "  8:00 AM  Morning Yoga  45 min  [SoulCycle]  id=cal-7-1742198400000".
func formatFeedLine(w model.Workout) string {
	line := fmt.Sprintf("  %-8s  %s", w.Time, w.Title)
	if w.Duration != "" {
		line += "  " + w.Duration
	}
	if len(w.Platforms) > 0 {
		line += "  ["
		for i, p := range w.Platforms {
			if i > 0 {
				line += ", "
			}
			line += p
		}
		line += "]"
	}
	return line + "  id=" + w.ID
}
