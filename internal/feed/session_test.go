package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fitfeed/internal/calendar"
)

// fakeSource is a scriptable calendar.Source for session tests.
type fakeSource struct {
	events  []calendar.RawEvent
	listErr error

	deleteOK  bool
	deleteErr error
	deleted   []string

	// When set, ListEvents signals listStarted and then blocks until
	// release is closed.
	listStarted chan struct{}
	release     chan struct{}
}

func (f *fakeSource) ListEvents(ctx context.Context, from, to time.Time) ([]calendar.RawEvent, error) {
	if f.listStarted != nil {
		close(f.listStarted)
		<-f.release
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeSource) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	f.deleted = append(f.deleted, eventID)
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	return f.deleteOK, nil
}

var testNow = time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)

func testEvents() []calendar.RawEvent {
	yoga := time.Date(2025, 3, 18, 8, 0, 0, 0, time.UTC)
	return []calendar.RawEvent{
		{ID: "e1", Title: "Morning Yoga", Start: yoga, End: yoga.Add(time.Hour), CalendarName: "Personal"},
		{ID: "e2", Title: "Team Sync", Start: yoga.Add(2 * time.Hour), End: yoga.Add(3 * time.Hour), CalendarName: "Work"},
		// The yoga class again, surfaced from a shared calendar.
		{ID: "e3", Title: "Morning Yoga", Start: yoga, End: yoga.Add(time.Hour), CalendarName: "Shared"},
	}
}

func newTestSession(src calendar.Source) *Session {
	s := NewSession(src)
	s.now = func() time.Time { return testNow }
	return s
}

func TestRefreshClassifiesAndDedupes(t *testing.T) {
	s := newTestSession(&fakeSource{events: testEvents()})

	got, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d workouts, want 1 (meeting excluded, duplicate collapsed)", len(got))
	}
	if got[0].Title != "Morning Yoga" || got[0].SourceEventID != "e1" {
		t.Errorf("kept workout = %q from event %q, want Morning Yoga from e1", got[0].Title, got[0].SourceEventID)
	}
	if cur := s.Current(); len(cur) != 1 || cur[0].ID != got[0].ID {
		t.Errorf("Current() = %v, want the refreshed list", cur)
	}
}

func TestRefreshFailureKeepsPriorList(t *testing.T) {
	src := &fakeSource{events: testEvents()}
	s := newTestSession(src)
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	src.listErr = errors.New("network down")
	if _, err := s.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh succeeded, want error")
	}
	if cur := s.Current(); len(cur) != 1 {
		t.Errorf("Current() has %d workouts after failed refresh, want prior 1", len(cur))
	}
}

func TestRefreshPermissionDenied(t *testing.T) {
	src := &fakeSource{listErr: fmt.Errorf("listing: %w", calendar.ErrPermissionDenied)}
	s := newTestSession(src)

	_, err := s.Refresh(context.Background())
	if !errors.Is(err, calendar.ErrPermissionDenied) {
		t.Errorf("Refresh err = %v, want calendar.ErrPermissionDenied", err)
	}
}

func TestRefreshRejectsOverlap(t *testing.T) {
	src := &fakeSource{
		events:      testEvents(),
		listStarted: make(chan struct{}),
		release:     make(chan struct{}),
	}
	s := newTestSession(src)

	done := make(chan error, 1)
	go func() {
		_, err := s.Refresh(context.Background())
		done <- err
	}()

	<-src.listStarted
	if _, err := s.Refresh(context.Background()); !errors.Is(err, ErrRefreshInProgress) {
		t.Errorf("overlapping Refresh err = %v, want ErrRefreshInProgress", err)
	}

	close(src.release)
	if err := <-done; err != nil {
		t.Fatalf("first Refresh: %v", err)
	}

	// The guard resets once the first refresh finishes.
	src.listStarted = nil
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Errorf("follow-up Refresh: %v", err)
	}
}

func TestDeletedWorkoutStaysGoneAcrossRefreshes(t *testing.T) {
	src := &fakeSource{events: testEvents(), deleteOK: true}
	s := newTestSession(src)

	got, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := s.Delete(context.Background(), got[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(src.deleted) != 1 || src.deleted[0] != "e1" {
		t.Errorf("source deleted %v, want [e1]", src.deleted)
	}
	if cur := s.Current(); len(cur) != 0 {
		t.Errorf("Current() = %v after delete, want empty", cur)
	}

	// The backend keeps returning the event; a new refresh must not
	// resurrect the workout.
	got, err = s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("refresh resurrected deleted workout: %v", got)
	}
}

func TestDeleteFailureKeepsWorkout(t *testing.T) {
	src := &fakeSource{events: testEvents(), deleteErr: errors.New("backend unavailable")}
	s := newTestSession(src)

	got, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := s.Delete(context.Background(), got[0].ID); err == nil {
		t.Fatal("Delete succeeded, want error")
	}
	if cur := s.Current(); len(cur) != 1 {
		t.Errorf("Current() = %v after failed delete, want workout kept", cur)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	s := newTestSession(&fakeSource{events: testEvents()})
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if err := s.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete err = %v, want ErrNotFound", err)
	}
}

func TestWindow(t *testing.T) {
	from, to := Window(testNow, 14)
	if want := testNow.AddDate(0, 0, -1); !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := testNow.AddDate(0, 0, 14); !to.Equal(want) {
		t.Errorf("to = %v, want %v", to, want)
	}
}
