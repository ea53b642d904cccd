package testutil

import (
	"family-brief-service/internal/domain"
)

// SampleCompletedEvent returns a finished home game fixture at the given timestamp.
func SampleCompletedEvent(date string) domain.Event {
	return domain.Event{
		Name: "Atlanta Falcons at Carolina Panthers",
		Date: date,
		Status: domain.EventStatus{
			State:     domain.StatePost,
			Completed: true,
		},
		Competitors: []domain.Competitor{
			{Name: "Carolina Panthers", ShortName: "Panthers", Abbreviation: "CAR", Score: "24", HomeAway: "home"},
			{Name: "Atlanta Falcons", ShortName: "Falcons", Abbreviation: "ATL", Score: "17", HomeAway: "away"},
		},
	}
}

// SampleScheduledEvent returns an upcoming away game fixture at the given timestamp.
func SampleScheduledEvent(date string) domain.Event {
	return domain.Event{
		Name: "Carolina Panthers at New Orleans Saints",
		Date: date,
		Status: domain.EventStatus{
			State: domain.StatePre,
		},
		Competitors: []domain.Competitor{
			{Name: "New Orleans Saints", ShortName: "Saints", Abbreviation: "NO", HomeAway: "home"},
			{Name: "Carolina Panthers", ShortName: "Panthers", Abbreviation: "CAR", HomeAway: "away"},
		},
	}
}

// SampleScoreboardResult wraps the provided events in a successful result.
func SampleScoreboardResult(events ...domain.Event) domain.ScoreboardResult {
	if events == nil {
		events = []domain.Event{}
	}
	return domain.ScoreboardResult{
		RequestURL: "https://example.test/scoreboard",
		Events:     events,
	}
}
