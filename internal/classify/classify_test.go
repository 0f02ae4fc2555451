package classify_test

import (
	"testing"

	"fitfeed/internal/calendar"
	"fitfeed/internal/classify"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		event    calendar.RawEvent
		included bool
	}{
		{
			name:     "exact activity name",
			event:    calendar.RawEvent{Title: "Yoga"},
			included: true,
		},
		{
			name:     "activity name with time prefix",
			event:    calendar.RawEvent{Title: "Morning Spin"},
			included: true,
		},
		{
			name:     "compound activity phrase",
			event:    calendar.RawEvent{Title: "Upper Body Set"},
			included: true,
		},
		{
			name:     "fitness calendar includes anything",
			event:    calendar.RawEvent{Title: "Quarterly budget", CalendarName: "My Fitness"},
			included: true,
		},
		{
			name:     "known venue in title",
			event:    calendar.RawEvent{Title: "SoulCycle Ride"},
			included: true,
		},
		{
			name:     "known venue in location",
			event:    calendar.RawEvent{Title: "Session w/ Jordan", Location: "Planet Fitness Downtown"},
			included: true,
		},
		{
			name:     "explicit workout term",
			event:    calendar.RawEvent{Title: "Solo workout"},
			included: true,
		},
		{
			name:     "business term outranks workout word",
			event:    calendar.RawEvent{Title: "Weekly Standup Run"},
			included: false,
		},
		{
			name:     "personal term outranks workout word",
			event:    calendar.RawEvent{Title: "Lunch run-through"},
			included: false,
		},
		{
			name:     "plain business meeting",
			event:    calendar.RawEvent{Title: "Team Sync", CalendarName: "Work"},
			included: false,
		},
		{
			name:     "training reads as business onboarding",
			event:    calendar.RawEvent{Title: "Strength Training Review"},
			included: false,
		},
		{
			name:     "generic event excluded by default",
			event:    calendar.RawEvent{Title: "Pick up dry cleaning"},
			included: false,
		},
		{
			name:     "matching is case-insensitive",
			event:    calendar.RawEvent{Title: "YOGA FLOW"},
			included: true,
		},
		{
			name:     "empty title excluded",
			event:    calendar.RawEvent{},
			included: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify.Classify(tt.event); got != tt.included {
				t.Errorf("Classify(%q) = %v, want %v", tt.event.Title, got, tt.included)
			}
		})
	}
}

func TestDecideReportsRule(t *testing.T) {
	tests := []struct {
		title    string
		calendar string
		rule     string
	}{
		{"Anything at all", "Gym Schedule", "fitness-calendar"},
		{"Sprint planning", "", "business-term"},
		{"Dinner with Sam", "", "personal-term"},
		{"Barry's - LIFT x RUN", "", "fitness-venue"},
		{"Solo workout", "", "workout-term"},
		{"Morning run", "", "activity-name"},
		{"Buy groceries", "", ""},
	}

	for _, tt := range tests {
		_, rule := classify.Decide(calendar.RawEvent{Title: tt.title, CalendarName: tt.calendar})
		if rule != tt.rule {
			t.Errorf("Decide(%q) rule = %q, want %q", tt.title, rule, tt.rule)
		}
	}
}

func TestExclusionRulesShortCircuit(t *testing.T) {
	// A title matching both an exclusion term and a stronger-looking
	// inclusion word must be excluded: rules are ordered.
	included, rule := classify.Decide(calendar.RawEvent{Title: "Client dinner then gym"})
	if included {
		t.Fatalf("expected exclusion, got inclusion via rule %q", rule)
	}
	if rule != "business-term" {
		t.Errorf("rule = %q, want business-term", rule)
	}
}
