package model

import "time"

// Participant is a person attached to a workout in the feed.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Workout is the normalized, display-ready representation of a fitness
// event. All string fields are derived once at extraction time; RawDate
// keeps the original start timestamp for chronological sorting.
type Workout struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Time          string        `json:"time"`
	Date          string        `json:"date"`
	RawDate       time.Time     `json:"raw_date"`
	Location      string        `json:"location"`
	Participants  []Participant `json:"participants"`
	Platforms     []string      `json:"platforms"`
	Type          string        `json:"type"`
	Intensity     string        `json:"intensity"`
	Duration      string        `json:"duration"`
	Description   string        `json:"description"`
	SourceEventID string        `json:"source_event_id"`
}

// SelfParticipant is the default participant assigned to imported
// calendar workouts that carry no attendee information.
func SelfParticipant() Participant {
	return Participant{ID: "1", Name: "You", Avatar: "https://i.pravatar.cc/150?img=1"}
}
