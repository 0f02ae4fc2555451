// Package ics implements a read-only calendar source over ICS
// subscription feeds. Each feed is fetched over HTTP, parsed, and its
// recurring events are expanded into concrete occurrences inside the
// requested window.
package ics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"fitfeed/internal/calendar"
	appLog "fitfeed/internal/log"
)

// Feed is a single ICS subscription.
type Feed struct {
	URL string
	// Name is used as the calendar name when the feed does not declare
	// one via X-WR-CALNAME.
	Name string
}

// Source reads events from one or more ICS feeds. It cannot delete
// events: subscriptions are one-way.
type Source struct {
	feeds  []Feed
	client *http.Client
}

// NewSource creates an ICS source over the given feeds.
func NewSource(feeds ...Feed) *Source {
	return &Source{
		feeds: feeds,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ListEvents fetches every feed and returns the concrete occurrences
// overlapping [from, to]. All-day and cancelled entries are skipped;
// recurring events are expanded per their RRULE with EXDATEs honored.
func (s *Source) ListEvents(ctx context.Context, from, to time.Time) ([]calendar.RawEvent, error) {
	var all []calendar.RawEvent
	for _, feed := range s.feeds {
		body, err := s.fetch(ctx, feed.URL)
		if err != nil {
			return nil, fmt.Errorf("fetching ICS feed %s: %w", feed.Name, err)
		}

		calName, events, err := parseFeed(feed, body)
		if err != nil {
			return nil, fmt.Errorf("parsing ICS feed %s: %w", feed.Name, err)
		}

		expanded := expand(events, calName, from, to)
		appLog.Debug("ics feed processed", "name", feed.Name, "events", len(events), "occurrences", len(expanded))
		all = append(all, expanded...)
	}
	return all, nil
}

// DeleteEvent always fails: ICS subscriptions are read-only.
func (s *Source) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	return false, calendar.ErrReadOnly
}

func (s *Source) fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("feed URL is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parsedEvent is the normalized representation of a VEVENT before
// recurrence expansion.
type parsedEvent struct {
	uid         string
	summary     string
	description string
	location    string
	start       time.Time
	end         time.Time
	allDay      bool
	cancelled   bool
	rawRRule    string
	exDates     []time.Time
}

// parseFeed parses an ICS payload. The returned calendar name comes from
// X-WR-CALNAME, falling back to the feed's configured name.
func parseFeed(feed Feed, body []byte) (string, []parsedEvent, error) {
	if len(body) == 0 {
		return "", nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}

	calName := feed.Name
	for _, prop := range cal.CalendarProperties {
		if prop.IANAToken == "X-WR-CALNAME" && prop.Value != "" {
			calName = prop.Value
		}
	}

	var events []parsedEvent
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			// Skip the broken VEVENT but keep parsing the rest.
			appLog.Error("ics vevent parse failed", err, "feed", feed.Name)
			continue
		}
		events = append(events, ev)
	}
	return calName, events, nil
}

func parseVEvent(ve *ical.VEvent) (parsedEvent, error) {
	var out parsedEvent

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("missing UID")
	}
	out.uid = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil {
		out.cancelled = strings.EqualFold(p.Value, "CANCELLED")
	}

	start, _ := ve.GetStartAt()
	end, _ := ve.GetEndAt()
	out.start = start
	out.end = end

	// All-day events carry VALUE=DATE or a date-only DTSTART.
	if dtStart := ve.GetProperty(ical.ComponentPropertyDtStart); dtStart != nil {
		if params := dtStart.ICalParameters; params != nil {
			if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
				out.allDay = true
			}
		}
		if !strings.Contains(dtStart.Value, "T") {
			out.allDay = true
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.rawRRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				out.exDates = append(out.exDates, t)
			}
		}
	}

	return out, nil
}

// expand turns parsed events into concrete occurrences inside [from, to].
func expand(events []parsedEvent, calName string, from, to time.Time) []calendar.RawEvent {
	var out []calendar.RawEvent
	for _, ev := range events {
		if ev.allDay || ev.cancelled {
			continue
		}

		if ev.rawRRule == "" {
			if overlaps(ev.start, ev.end, from, to) {
				out = append(out, makeRawEvent(ev, calName, ev.start, ev.end))
			}
			continue
		}

		r, err := rrule.StrToRRule(ev.rawRRule)
		if err != nil {
			appLog.Error("ics rrule parse failed", err, "uid", ev.uid, "rrule", ev.rawRRule)
			continue
		}
		r.DTStart(ev.start)

		duration := ev.end.Sub(ev.start)
		for _, start := range r.Between(from, to, true) {
			if isExcluded(start, ev.exDates) {
				continue
			}
			out = append(out, makeRawEvent(ev, calName, start, start.Add(duration)))
		}
	}
	return out
}

// makeRawEvent keeps the UID as the event ID for every occurrence; the
// feed pipeline derives per-occurrence workout IDs from UID plus start
// time.
func makeRawEvent(ev parsedEvent, calName string, start, end time.Time) calendar.RawEvent {
	return calendar.RawEvent{
		ID:           ev.uid,
		Title:        ev.summary,
		Notes:        ev.description,
		Location:     ev.location,
		Start:        start,
		End:          end,
		CalendarName: calName,
	}
}

func overlaps(start, end, from, to time.Time) bool {
	if end.IsZero() {
		end = start
	}
	return !end.Before(from) && !start.After(to)
}

func isExcluded(t time.Time, exDates []time.Time) bool {
	for _, ex := range exDates {
		if ex.Equal(t) {
			return true
		}
	}
	return false
}

// parseICSTime parses a basic ICS date/date-time string.
func parseICSTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.Local)
	}
	return time.ParseInLocation("20060102", v, time.Local)
}
