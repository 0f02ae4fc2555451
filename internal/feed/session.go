// Package feed holds the session-scoped workout feed: the last refreshed
// workout list and the set of workouts the user has deleted. State lives
// only for the process lifetime.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fitfeed/internal/calendar"
	"fitfeed/internal/classify"
	"fitfeed/internal/extract"
	appLog "fitfeed/internal/log"
	"fitfeed/internal/model"
)

// ErrRefreshInProgress is returned when Refresh is called while another
// refresh is still running. Overlapping refreshes are rejected rather
// than raced: the session has a single owner.
var ErrRefreshInProgress = errors.New("feed refresh already in progress")

// ErrNotFound is returned by Delete for an unknown workout ID.
var ErrNotFound = errors.New("workout not found in current feed")

// DefaultHorizonDays is how far ahead a refresh looks.
const DefaultHorizonDays = 14

// Session is the feed's only stateful component. It owns the current
// workout list and the deleted-ID set for one running session.
type Session struct {
	source      calendar.Source
	horizonDays int
	now         func() time.Time

	mu         sync.Mutex
	refreshing bool
	current    []model.Workout
	deleted    map[string]struct{}
}

// NewSession creates an empty session over the given calendar source.
func NewSession(source calendar.Source) *Session {
	return &Session{
		source:      source,
		horizonDays: DefaultHorizonDays,
		now:         time.Now,
		deleted:     make(map[string]struct{}),
	}
}

// SetHorizonDays overrides how many days ahead Refresh fetches.
func (s *Session) SetHorizonDays(days int) {
	if days > 0 {
		s.horizonDays = days
	}
}

// Window returns the fetch range for a refresh starting at now: one day
// of slack behind, so "today" is never lost to timezone rounding, through
// the configured horizon ahead.
func Window(now time.Time, horizonDays int) (time.Time, time.Time) {
	return now.AddDate(0, 0, -1), now.AddDate(0, 0, horizonDays)
}

// Refresh fetches the window from the calendar source, classifies,
// extracts and dedupes, then replaces the current list. On any fetch
// error the prior list is left untouched and the error is returned;
// calendar.ErrPermissionDenied stays distinguishable via errors.Is.
func (s *Session) Refresh(ctx context.Context) ([]model.Workout, error) {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return nil, ErrRefreshInProgress
	}
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	from, to := Window(s.now(), s.horizonDays)
	events, err := s.source.ListEvents(ctx, from, to)
	if err != nil {
		if errors.Is(err, calendar.ErrPermissionDenied) {
			return nil, fmt.Errorf("refreshing feed: %w", err)
		}
		return nil, fmt.Errorf("fetching calendar events: %w", err)
	}
	appLog.Debug("fetched calendar events", "count", len(events))

	var workouts []model.Workout
	for _, e := range events {
		include, rule := classify.Decide(e)
		appLog.Debug("classified event", "title", e.Title, "calendar", e.CalendarName, "include", include, "rule", rule)
		if !include {
			continue
		}
		workouts = append(workouts, extract.Extract(e))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Dedupe(workouts, s.deleted)
	appLog.Debug("feed refreshed", "workouts", len(s.current))
	return copyWorkouts(s.current), nil
}

// Current returns a copy of the last refreshed workout list.
func (s *Session) Current() []model.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyWorkouts(s.current)
}

// MarkDeleted records a workout ID as deleted and removes it from the
// current list. The ID stays in the deleted set for the whole session,
// so later refreshes cannot resurrect the workout.
func (s *Session) MarkDeleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted[id] = struct{}{}
	kept := s.current[:0]
	for _, w := range s.current {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.current = kept
}

// Delete removes the workout's backing calendar event and then marks the
// workout deleted. The session is only updated after the source confirms
// the deletion, so a failed delete never hides a workout that is still on
// the calendar.
func (s *Session) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	var eventID string
	found := false
	for _, w := range s.current {
		if w.ID == id {
			eventID = w.SourceEventID
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrNotFound
	}

	ok, err := s.source.DeleteEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("deleting calendar event %s: %w", eventID, err)
	}
	if !ok {
		return fmt.Errorf("calendar refused to delete event %s", eventID)
	}

	s.MarkDeleted(id)
	appLog.Info("workout deleted", "id", id, "event", eventID)
	return nil
}

func copyWorkouts(ws []model.Workout) []model.Workout {
	out := make([]model.Workout, len(ws))
	copy(out, ws)
	return out
}
