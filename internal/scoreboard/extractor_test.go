package scoreboard

import (
	"testing"
	"time"

	"family-brief-service/internal/domain"
)

var panthersQuery = domain.TeamQuery{Name: "Carolina Panthers", Abbreviation: "CAR"}

func panthersEvent(date string, status domain.EventStatus, opponent string) domain.Event {
	return domain.Event{
		Name:   "Carolina Panthers vs " + opponent,
		Date:   date,
		Status: status,
		Competitors: []domain.Competitor{
			{Name: "Carolina Panthers", ShortName: "Panthers", Abbreviation: "CAR", HomeAway: "home"},
			{Name: opponent, HomeAway: "away"},
		},
	}
}

func TestExtractGamesSelectsLatestCompletedAndNearestUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		panthersEvent("2024-06-01T17:00Z", domain.EventStatus{State: "post", Completed: true}, "Older Opponent"),
		panthersEvent("2024-06-12T23:30Z", domain.EventStatus{State: "post", Completed: true}, "Atlanta Falcons"),
		panthersEvent("2024-06-28T17:00Z", domain.EventStatus{State: "pre"}, "Later Opponent"),
		panthersEvent("2024-06-20T17:00Z", domain.EventStatus{State: "pre"}, "New Orleans Saints"),
	}

	recent, next, matched := ExtractGames(events, panthersQuery, now)

	if matched != 4 {
		t.Fatalf("expected 4 matched events, got %d", matched)
	}
	if recent == nil || recent.Date != "2024-06-12T23:30Z" {
		t.Fatalf("expected latest completed game, got %+v", recent)
	}
	if next == nil || next.Date != "2024-06-20T17:00Z" {
		t.Fatalf("expected nearest upcoming game, got %+v", next)
	}
}

func TestExtractGamesCountsUnparsableDatesWithoutSelectingThem(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		panthersEvent("not-a-date", domain.EventStatus{State: "post", Completed: true}, "Mystery Opponent"),
		panthersEvent("", domain.EventStatus{State: "pre"}, "Another Mystery"),
	}

	recent, next, matched := ExtractGames(events, panthersQuery, now)

	if matched != 2 {
		t.Fatalf("expected unparsable events to still count, got %d", matched)
	}
	if recent != nil || next != nil {
		t.Fatalf("expected no selection from unparsable dates, got recent=%v next=%v", recent, next)
	}
}

func TestExtractGamesSkipsEventsWithoutCompetitors(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{Name: "Empty Event", Date: "2024-06-12T23:30Z", Status: domain.EventStatus{State: "post"}},
	}

	recent, next, matched := ExtractGames(events, panthersQuery, now)

	if matched != 0 {
		t.Fatalf("expected no matches for competitor-less event, got %d", matched)
	}
	if recent != nil || next != nil {
		t.Fatal("expected no selection from competitor-less event")
	}
}

func TestExtractGamesIgnoresOtherTeams(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{
			Name:   "Falcons vs Saints",
			Date:   "2024-06-12T23:30Z",
			Status: domain.EventStatus{State: "post", Completed: true},
			Competitors: []domain.Competitor{
				{Name: "Atlanta Falcons", Abbreviation: "ATL", HomeAway: "home"},
				{Name: "New Orleans Saints", Abbreviation: "NO", HomeAway: "away"},
			},
		},
	}

	recent, _, matched := ExtractGames(events, panthersQuery, now)
	if matched != 0 || recent != nil {
		t.Fatalf("expected no match for other teams, got matched=%d recent=%v", matched, recent)
	}
}

func TestExtractGamesExcludesPastScheduledGames(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		panthersEvent("2024-06-10T17:00Z", domain.EventStatus{State: "pre"}, "Slipped Opponent"),
	}

	_, next, matched := ExtractGames(events, panthersQuery, now)
	if matched != 1 {
		t.Fatalf("expected past scheduled game to count, got %d", matched)
	}
	if next != nil {
		t.Fatalf("expected past scheduled game to be excluded from selection, got %+v", next)
	}
}

func TestExtractGamesKeepsGameStartingExactlyNow(t *testing.T) {
	now := time.Date(2024, 6, 20, 17, 0, 0, 0, time.UTC)
	events := []domain.Event{
		panthersEvent("2024-06-20T17:00Z", domain.EventStatus{State: "pre"}, "On Time Opponent"),
	}

	_, next, _ := ExtractGames(events, panthersQuery, now)
	if next == nil {
		t.Fatal("expected a game starting exactly now to be selectable")
	}
}

func TestExtractGamesIgnoresInProgressForSelection(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		panthersEvent("2024-06-15T11:00Z", domain.EventStatus{State: "in"}, "Live Opponent"),
	}

	recent, next, matched := ExtractGames(events, panthersQuery, now)
	if matched != 1 {
		t.Fatalf("expected live game to count toward matched, got %d", matched)
	}
	if recent != nil || next != nil {
		t.Fatal("expected live game to be excluded from recent/next selection")
	}
}

func TestExtractGamesFirstEncounteredWinsTimestampTies(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	first := panthersEvent("2024-06-12T23:30Z", domain.EventStatus{State: "post", Completed: true}, "First Opponent")
	second := panthersEvent("2024-06-12T23:30Z", domain.EventStatus{State: "post", Completed: true}, "Second Opponent")

	recent, _, _ := ExtractGames([]domain.Event{first, second}, panthersQuery, now)
	if recent == nil || recent.Name != first.Name {
		t.Fatalf("expected first event to win the tie, got %+v", recent)
	}
}

func TestExtractGamesCompletedFlagAloneMarksCompleted(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		panthersEvent("2024-06-12T23:30Z", domain.EventStatus{State: "other", Completed: true}, "Flagged Opponent"),
	}

	recent, _, _ := ExtractGames(events, panthersQuery, now)
	if recent == nil {
		t.Fatal("expected completed flag to classify the event as completed")
	}
}
