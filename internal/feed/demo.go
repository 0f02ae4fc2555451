package feed

import (
	"strconv"
	"time"

	"fitfeed/internal/model"
	"fitfeed/internal/timecalc"
)

// DemoWorkouts returns the built-in sample feed shown before any calendar
// source is configured. Dates are anchored to today so the feed looks
// alive.
func DemoWorkouts(now time.Time) []model.Workout {
	day := timecalc.StartOfDay(now)
	demo := []struct {
		title     string
		start     time.Time
		minutes   int
		location  string
		platforms []string
		names     []string
	}{
		{
			title:     "Barry's - LIFT x RUN",
			start:     day.Add(14 * time.Hour),
			minutes:   50,
			location:  "Barry's",
			platforms: []string{"Strava", "ClassPass"},
			names:     []string{"Gracie", "Rani", "Shan"},
		},
		{
			title:     "Marina Run Club",
			start:     day.Add(8 * time.Hour),
			minutes:   60,
			location:  "Marina",
			platforms: []string{"Strava"},
			names:     []string{"Aiguo", "Moi", "Rolemodel", "Rani"},
		},
		{
			title:     "Sonora - Pilates II",
			start:     day.Add(8 * time.Hour),
			minutes:   45,
			location:  "Sonora",
			platforms: []string{"MindBody"},
			names:     []string{"Moi"},
		},
	}

	out := make([]model.Workout, 0, len(demo))
	for i, d := range demo {
		participants := make([]model.Participant, 0, len(d.names))
		for j, name := range d.names {
			participants = append(participants, model.Participant{
				ID:     strconv.Itoa(j + 1),
				Name:   name,
				Avatar: "https://i.pravatar.cc/150?img=" + strconv.Itoa(j+1),
			})
		}
		out = append(out, model.Workout{
			ID:           "demo-" + strconv.Itoa(i+1),
			Title:        d.title,
			Time:         timecalc.FormatClock(d.start),
			Date:         timecalc.FormatFeedDate(d.start),
			RawDate:      d.start,
			Location:     d.location,
			Participants: participants,
			Platforms:    d.platforms,
			Type:         "Workout",
			Intensity:    "Moderate",
			Duration:     timecalc.FormatMinutes(d.minutes),
			Description:  d.title + " with friends.",
		})
	}
	return out
}
