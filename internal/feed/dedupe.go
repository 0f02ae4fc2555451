package feed

import (
	"strings"

	"fitfeed/internal/model"
)

// Key is the composite identity used to collapse duplicate workouts.
// Calendar backends can return the same semantic event from several
// calendars with different event IDs, so the key is built from what the
// user actually sees: title, date and time.
func Key(w model.Workout) string {
	return strings.ToLower(w.Title) + w.Date + w.Time
}

// Dedupe filters workouts in a single left-to-right pass, dropping
// entries whose ID is in deleted and entries whose Key was already seen.
// The first occurrence of a key wins and input order is preserved. A
// deleted entry still claims its key: its duplicates from other
// calendars are the same workout to the user and must stay gone too.
func Dedupe(workouts []model.Workout, deleted map[string]struct{}) []model.Workout {
	seen := make(map[string]struct{}, len(workouts))
	out := make([]model.Workout, 0, len(workouts))
	for _, w := range workouts {
		key := Key(w)
		if _, gone := deleted[w.ID]; gone {
			seen[key] = struct{}{}
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}
