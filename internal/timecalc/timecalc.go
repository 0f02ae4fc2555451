package timecalc

import (
	"fmt"
	"math"
	"time"
)

// FormatClock formats a time for the feed, e.g. "8:00 AM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatFeedDate formats a date for feed display and grouping,
// e.g. "Mon Mar 17".
func FormatFeedDate(t time.Time) string {
	return t.Format("Mon Jan 2")
}

// DurationMinutes returns the rounded whole-minute span between start and end.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// FormatMinutes formats a minute count as "<N> min".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
