// Package gcal implements the calendar source backed by the Google
// Calendar API. Events are read from every calendar on the account; the
// owning calendar's summary is carried along for classification.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"fitfeed/internal/calendar"
	appLog "fitfeed/internal/log"
)

// Source reads and deletes events through the Google Calendar API.
type Source struct {
	service *calendarapi.Service

	mu sync.Mutex
	// eventCalendars remembers which calendar each listed event came
	// from, so deletes can be routed without a second listing.
	eventCalendars map[string]string
}

// NewSource creates a Google Calendar source over an authenticated HTTP
// client (see GetHTTPClient).
func NewSource(ctx context.Context, client *http.Client) (*Source, error) {
	service, err := calendarapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Source{
		service:        service,
		eventCalendars: make(map[string]string),
	}, nil
}

// ListEvents fetches events overlapping [from, to] from every calendar on
// the account. All-day and cancelled entries are skipped.
func (s *Source) ListEvents(ctx context.Context, from, to time.Time) ([]calendar.RawEvent, error) {
	calList, err := s.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError("failed to list calendars", err)
	}

	var result []calendar.RawEvent
	for _, cal := range calList.Items {
		events, err := s.service.Events.List(cal.Id).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("failed to list events for calendar %s", cal.Id), err)
		}

		for _, item := range events.Items {
			if item.Status == "cancelled" {
				continue
			}
			if item.Start == nil || item.Start.DateTime == "" {
				// All-day events carry a date-only start.
				continue
			}
			start, err := time.Parse(time.RFC3339, item.Start.DateTime)
			if err != nil {
				appLog.Error("skipping event with unparseable start time", err, "event", item.Id, "calendar", cal.Id)
				continue
			}
			var end time.Time
			if item.End != nil && item.End.DateTime != "" {
				if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
					end = t
				}
			}

			result = append(result, calendar.RawEvent{
				ID:           item.Id,
				Title:        item.Summary,
				Notes:        item.Description,
				Location:     item.Location,
				Start:        start,
				End:          end,
				CalendarName: cal.Summary,
			})

			s.mu.Lock()
			s.eventCalendars[item.Id] = cal.Id
			s.mu.Unlock()
		}
	}

	appLog.Debug("google calendar listing complete", "calendars", len(calList.Items), "events", len(result))
	return result, nil
}

// DeleteEvent removes an event. The owning calendar is resolved from the
// last listing; events never seen by this source fall back to the primary
// calendar.
func (s *Source) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, errors.New("no event ID provided")
	}

	s.mu.Lock()
	calID, ok := s.eventCalendars[eventID]
	s.mu.Unlock()
	if !ok {
		calID = "primary"
	}

	if err := s.service.Events.Delete(calID, eventID).Context(ctx).Do(); err != nil {
		return false, wrapAPIError("failed to delete event", err)
	}
	return true, nil
}

// wrapAPIError maps Google API authorization failures to the calendar
// package's permission sentinel so callers can prompt for access.
func wrapAPIError(msg string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == http.StatusForbidden || gerr.Code == http.StatusUnauthorized) {
		return fmt.Errorf("%s: %w", msg, calendar.ErrPermissionDenied)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
