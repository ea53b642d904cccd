package weather

import (
	"testing"

	"family-brief-service/internal/domain"
)

func TestForecastTableBuildsRowPerDay(t *testing.T) {
	daily := domain.DailyForecast{
		Dates:        []string{"2024-06-14", "2024-06-15", "2024-06-16"},
		WeatherCodes: []int{0, 61, 95},
		HighsF:       []float64{88.4, 79.1, 82.6},
		LowsF:        []float64{68.2, 65.5, 66.9},
	}

	rows := ForecastTable(daily)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := domain.ForecastRow{Date: "Fri, Jun 14", HighF: 88.4, LowF: 68.2, Condition: "Clear sky"}
	if rows[0] != want {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Date != "Sat, Jun 15" || rows[1].Condition != "Slight rain" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].Date != "Sun, Jun 16" || rows[2].Condition != "Thunderstorm" {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}
}

func TestForecastTableEmptyDaily(t *testing.T) {
	rows := ForecastTable(domain.DailyForecast{})
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}
}

func TestForecastTableStopsAtShortestArray(t *testing.T) {
	daily := domain.DailyForecast{
		Dates:        []string{"2024-06-14", "2024-06-15", "2024-06-16"},
		WeatherCodes: []int{0, 61, 95},
		HighsF:       []float64{88.4, 79.1},
		LowsF:        []float64{68.2, 65.5, 66.9},
	}

	rows := ForecastTable(daily)
	if len(rows) != 2 {
		t.Fatalf("expected table truncated to 2 rows, got %d", len(rows))
	}
}

func TestForecastTableKeepsRawDateWhenUnparsable(t *testing.T) {
	daily := domain.DailyForecast{
		Dates:        []string{"soon"},
		WeatherCodes: []int{2},
		HighsF:       []float64{80},
		LowsF:        []float64{60},
	}

	rows := ForecastTable(daily)
	if len(rows) != 1 || rows[0].Date != "soon" {
		t.Fatalf("expected raw date fallback, got %+v", rows)
	}
}

func TestSummarizeCurrentConditions(t *testing.T) {
	code := 2
	got := Summarize(domain.CurrentConditions{TemperatureF: 84.2, HumidityPct: 58, WeatherCode: &code})
	want := domain.CurrentSummary{TemperatureF: 84.2, HumidityPct: 58, Condition: "Partly cloudy"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSummarizeMissingCode(t *testing.T) {
	got := Summarize(domain.CurrentConditions{TemperatureF: 70})
	if got.Condition != "Unknown" {
		t.Fatalf("expected Unknown condition, got %q", got.Condition)
	}
}
