package teststubs

import (
	"context"
	"errors"
	"testing"

	"family-brief-service/internal/domain"
)

func TestStubForecastProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubForecastProvider{Err: err}
	if _, got := p.FetchForecast(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubScoreboardProviderReturnsPerSportResults(t *testing.T) {
	p := &StubScoreboardProvider{Results: map[string]domain.ScoreboardResult{
		"nfl": {RequestURL: "https://example.test/nfl"},
	}}

	got := p.FetchScoreboard(context.Background(), "nfl", "20240101-20240201")
	if got.RequestURL != "https://example.test/nfl" {
		t.Fatalf("expected configured result, got %+v", got)
	}

	if zero := p.FetchScoreboard(context.Background(), "mlb", ""); zero.RequestURL != "" {
		t.Fatalf("expected zero result for unknown sport, got %+v", zero)
	}
	if p.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", p.Calls.Load())
	}
}
