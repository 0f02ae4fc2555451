package gcal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"fitfeed/internal/calendar"
)

const calendarListJSON = `{"items":[{"id":"primary","summary":"Personal"}]}`

const eventsJSON = `{"items":[
  {"id":"ok-1","summary":"Morning Yoga","status":"confirmed",
   "start":{"dateTime":"2025-03-17T08:00:00Z"},
   "end":{"dateTime":"2025-03-17T08:45:00Z"}},
  {"id":"bad-1","summary":"Broken clock",
   "start":{"dateTime":"sometime tomorrow"}},
  {"id":"allday-1","summary":"Gym membership renewal",
   "start":{"date":"2025-03-18"}},
  {"id":"gone-1","summary":"Bootcamp","status":"cancelled",
   "start":{"dateTime":"2025-03-19T07:00:00Z"}}
]}`

// newTestSource builds a Source against a fake Calendar API server and
// records every DELETE request path.
func newTestSource(t *testing.T, eventsStatus int) (*Source, *[]string) {
	t.Helper()

	var deletes []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes = append(deletes, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/users/me/calendarList"):
			_, _ = w.Write([]byte(calendarListJSON))
		case strings.Contains(r.URL.Path, "/calendars/primary/events"):
			if eventsStatus != http.StatusOK {
				http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, eventsStatus)
				return
			}
			_, _ = w.Write([]byte(eventsJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	service, err := calendarapi.NewService(context.Background(),
		option.WithoutAuthentication(), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return &Source{service: service, eventCalendars: make(map[string]string)}, &deletes
}

func TestListEventsSkipsUnusableEntries(t *testing.T) {
	src, _ := newTestSource(t, http.StatusOK)

	from := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	events, err := src.ListEvents(context.Background(), from, to)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	// Only the well-formed timed event survives: the malformed start, the
	// all-day entry and the cancelled entry are all skipped.
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(events), events)
	}
	e := events[0]
	if e.ID != "ok-1" || e.Title != "Morning Yoga" || e.CalendarName != "Personal" {
		t.Errorf("event = %+v", e)
	}
	if want := time.Date(2025, 3, 17, 8, 0, 0, 0, time.UTC); !e.Start.Equal(want) {
		t.Errorf("start = %v, want %v", e.Start, want)
	}
	if want := time.Date(2025, 3, 17, 8, 45, 0, 0, time.UTC); !e.End.Equal(want) {
		t.Errorf("end = %v, want %v", e.End, want)
	}
}

func TestDeleteEventRoutesToOwningCalendar(t *testing.T) {
	src, deletes := newTestSource(t, http.StatusOK)

	from := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	if _, err := src.ListEvents(context.Background(), from, to); err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	ok, err := src.DeleteEvent(context.Background(), "ok-1")
	if err != nil || !ok {
		t.Fatalf("DeleteEvent = (%v, %v), want (true, nil)", ok, err)
	}
	if len(*deletes) != 1 || !strings.HasSuffix((*deletes)[0], "/calendars/primary/events/ok-1") {
		t.Errorf("delete requests = %v, want one against calendars/primary/events/ok-1", *deletes)
	}
}

func TestListEventsMapsForbiddenToPermissionDenied(t *testing.T) {
	src, _ := newTestSource(t, http.StatusForbidden)

	_, err := src.ListEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	if !errors.Is(err, calendar.ErrPermissionDenied) {
		t.Errorf("err = %v, want calendar.ErrPermissionDenied", err)
	}
}
