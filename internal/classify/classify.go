// Package classify decides whether a raw calendar event represents a
// workout. The decision is an ordered rule list evaluated top-down; the
// first matching rule wins, and events matching no rule are excluded.
// Ordering matters: the exclusion rules outrank the weaker inclusion
// heuristics below them, so "Lunch run-through" stays out even though it
// contains "run".
package classify

import (
	"strings"

	"fitfeed/internal/calendar"
)

// rule is a single (predicate, verdict) pair.
type rule struct {
	name    string
	include bool
	matches func(e event) bool
}

// event carries the pre-lowercased fields the rules operate on.
type event struct {
	title        string
	location     string
	calendarName string
}

var rules = []rule{
	{"fitness-calendar", true, matchFitnessCalendar},
	{"business-term", false, matchBusinessTerm},
	{"personal-term", false, matchPersonalTerm},
	{"fitness-venue", true, matchFitnessVenue},
	{"workout-term", true, matchWorkoutTerm},
	{"activity-name", true, matchActivityName},
}

// Classify reports whether the event should appear in the workout feed.
func Classify(e calendar.RawEvent) bool {
	include, _ := Decide(e)
	return include
}

// Decide is Classify plus the name of the rule that produced the verdict,
// for per-event trace logging. An empty rule name means no rule matched
// and the conservative default (exclude) applied.
func Decide(e calendar.RawEvent) (bool, string) {
	ev := event{
		title:        strings.ToLower(e.Title),
		location:     strings.ToLower(e.Location),
		calendarName: strings.ToLower(e.CalendarName),
	}
	for _, r := range rules {
		if r.matches(ev) {
			return r.include, r.name
		}
	}
	return false, ""
}

func matchFitnessCalendar(e event) bool {
	return containsAny(e.calendarName, fitnessCalendars)
}

func matchBusinessTerm(e event) bool {
	return containsAny(e.title, businessTerms)
}

func matchPersonalTerm(e event) bool {
	return containsAny(e.title, personalTerms)
}

func matchFitnessVenue(e event) bool {
	for _, venue := range fitnessVenues {
		if strings.Contains(e.title, venue) || strings.Contains(e.location, venue) {
			return true
		}
	}
	return false
}

func matchWorkoutTerm(e event) bool {
	return containsAny(e.title, workoutTerms)
}

func matchActivityName(e event) bool {
	for _, name := range activityNames {
		// Exact match or the title starts with the activity.
		if e.title == name || strings.HasPrefix(e.title, name+" ") {
			return true
		}
		// "morning spin", "evening run" and friends.
		for _, prefix := range timePrefixes {
			if e.title == prefix+" "+name || strings.HasPrefix(e.title, prefix+" "+name+" ") {
				return true
			}
		}
		// Compound phrases like "Upper Body Set".
		if strings.Contains(e.title, name) {
			return true
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
