// Package extract derives the display fields of a Workout from a raw
// calendar event that has already been classified as a workout. Extract
// is a pure function: malformed input degrades to documented defaults,
// never to an error.
package extract

import (
	"fmt"
	"strings"

	"fitfeed/internal/calendar"
	"fitfeed/internal/model"
	"fitfeed/internal/timecalc"
)

// DefaultPlatform is assigned when no fitness service is detected.
const DefaultPlatform = "Calendar"

// Extract builds a Workout from a raw event.
func Extract(e calendar.RawEvent) model.Workout {
	source := detectPlatform(e)
	location := refineLocation(e, source)

	timeStr := timecalc.FormatClock(e.Start)
	dateStr := timecalc.FormatFeedDate(e.Start)

	workoutType := inferType(e.Title)
	duration := ""
	if !e.Start.IsZero() && !e.End.IsZero() {
		duration = timecalc.FormatMinutes(timecalc.DurationMinutes(e.Start, e.End))
	}
	intensity := inferIntensity(e.Title, e.Notes, workoutType)

	description := e.Notes
	if description == "" {
		description = generateDescription(workoutType, dateStr, intensity, duration)
	}

	platforms := []string{DefaultPlatform}
	if source != "" {
		platforms = []string{source}
	}

	return model.Workout{
		// The event ID alone is not unique across occurrences of a
		// recurring event, so the start timestamp is part of the ID.
		ID:            fmt.Sprintf("cal-%s-%d", e.ID, e.Start.UnixMilli()),
		Title:         e.Title,
		Time:          timeStr,
		Date:          dateStr,
		RawDate:       e.Start,
		Location:      location,
		Participants:  []model.Participant{model.SelfParticipant()},
		Platforms:     platforms,
		Type:          workoutType,
		Intensity:     intensity,
		Duration:      duration,
		Description:   description,
		SourceEventID: e.ID,
	}
}

// detectPlatform scans the combined event text for a known fitness
// service. Returns "" when none matches.
func detectPlatform(e calendar.RawEvent) string {
	text := strings.ToLower(e.Title + " " + e.Notes + " " + e.Location)
	for _, p := range platformIdentifiers {
		for _, kw := range p.keywords {
			if strings.Contains(text, kw) {
				return p.name
			}
		}
	}
	return ""
}

// refineLocation picks the display location. ClassPass bookings embed the
// studio in the title as "<Class> at <Studio> - <Neighborhood>"; the
// studio name overrides the event's own location field.
func refineLocation(e calendar.RawEvent, source string) string {
	location := e.Location
	if location == "" {
		location = "No location"
	}
	if source == "ClassPass" && e.Title != "" {
		if _, rest, ok := strings.Cut(e.Title, " at "); ok {
			// Only the segment up to the next separator is the studio.
			studio, _, _ := strings.Cut(rest, " at ")
			studio, _, _ = strings.Cut(studio, " - ")
			if studio = strings.TrimSpace(studio); studio != "" {
				location = studio
			}
		}
	}
	return location
}

// inferType scans the title for a known workout type, then falls back to
// a coarser keyword check, then to the generic "Workout".
func inferType(title string) string {
	lower := strings.ToLower(title)
	for _, t := range workoutTypes {
		if strings.Contains(lower, strings.ToLower(t)) {
			return t
		}
	}
	switch {
	case strings.Contains(lower, "run"):
		return "Running"
	case strings.Contains(lower, "bike"), strings.Contains(lower, "cycle"):
		return "Cycling"
	case strings.Contains(lower, "swim"):
		return "Swimming"
	case strings.Contains(lower, "lift"), strings.Contains(lower, "weight"):
		return "Strength"
	}
	return "Workout"
}

// inferIntensity checks the keyword buckets against title+notes, then
// falls back to a default based on the workout type.
func inferIntensity(title, notes, workoutType string) string {
	text := strings.ToLower(title + " " + notes)
	for _, bucket := range intensityBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(text, kw) {
				return bucket.label
			}
		}
	}
	for _, t := range intenseTypes {
		if t == workoutType {
			return "Intense"
		}
	}
	for _, t := range lightTypes {
		if t == workoutType {
			return "Light"
		}
	}
	return "Moderate"
}

// generateDescription synthesizes a description for events without notes.
func generateDescription(workoutType, date, intensity, duration string) string {
	s := fmt.Sprintf("%s workout scheduled for %s. This is a %s-intensity session",
		workoutType, date, strings.ToLower(intensity))
	if duration != "" {
		s += " lasting " + duration
	}
	return s + "."
}
