package calendar

import (
	"context"
	"errors"
	"time"
)

// ErrPermissionDenied is returned when the backing calendar refuses
// access. Callers must be able to tell this apart from an empty result so
// they can prompt for access instead of showing an empty feed.
var ErrPermissionDenied = errors.New("calendar access denied")

// ErrReadOnly is returned by sources that cannot delete events.
var ErrReadOnly = errors.New("calendar source is read-only")

// RawEvent is an unprocessed calendar entry as returned by a Source.
// The pipeline never mutates it.
type RawEvent struct {
	ID           string
	Title        string
	Notes        string
	Location     string
	Start        time.Time
	End          time.Time
	CalendarName string
}

// Source is a calendar backend the feed can read events from.
type Source interface {
	// ListEvents returns all events overlapping [from, to].
	ListEvents(ctx context.Context, from, to time.Time) ([]RawEvent, error)
	// DeleteEvent removes the event with the given ID from the backing
	// calendar. It reports false when the event could not be deleted.
	DeleteEvent(ctx context.Context, eventID string) (bool, error)
}

// Multi aggregates several sources into one. Listing concatenates the
// events of every source; deleting is routed to the first source that
// accepts the event ID.
type Multi struct {
	sources []Source
}

// NewMulti builds an aggregate source. A Multi over zero sources lists
// nothing and rejects every delete.
func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

// ListEvents fetches from every source. Any source failure fails the
// whole listing: callers must not see a silently partial window.
func (m *Multi) ListEvents(ctx context.Context, from, to time.Time) ([]RawEvent, error) {
	var all []RawEvent
	for _, src := range m.sources {
		events, err := src.ListEvents(ctx, from, to)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}
	return all, nil
}

// Localized wraps a source and converts all event times into a display
// timezone, so derived time and date strings match what the user expects
// to see.
type Localized struct {
	src Source
	loc *time.Location
}

// NewLocalized wraps src so all event times are reported in loc.
func NewLocalized(src Source, loc *time.Location) *Localized {
	return &Localized{src: src, loc: loc}
}

func (l *Localized) ListEvents(ctx context.Context, from, to time.Time) ([]RawEvent, error) {
	events, err := l.src.ListEvents(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if !events[i].Start.IsZero() {
			events[i].Start = events[i].Start.In(l.loc)
		}
		if !events[i].End.IsZero() {
			events[i].End = events[i].End.In(l.loc)
		}
	}
	return events, nil
}

func (l *Localized) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	return l.src.DeleteEvent(ctx, eventID)
}

// DeleteEvent tries each source in order. Read-only sources are skipped;
// the first source that deletes the event wins.
func (m *Multi) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	var lastErr error
	for _, src := range m.sources {
		ok, err := src.DeleteEvent(ctx, eventID)
		if err != nil {
			if errors.Is(err, ErrReadOnly) {
				continue
			}
			lastErr = err
			continue
		}
		if ok {
			return true, nil
		}
	}
	if lastErr != nil {
		return false, lastErr
	}
	return false, nil
}
