package providers

import (
	"context"

	"family-brief-service/internal/domain"
)

// ForecastProvider fetches the normalized weather forecast for the configured
// home location.
type ForecastProvider interface {
	FetchForecast(ctx context.Context) (domain.WeatherReport, error)
}

// AirQualityProvider fetches current air-quality readings for the configured
// home location.
type AirQualityProvider interface {
	FetchAirQuality(ctx context.Context) (domain.AirReport, error)
}

// HeadlineProvider fetches ordered top headlines.
type HeadlineProvider interface {
	FetchTopHeadlines(ctx context.Context) ([]domain.Article, error)
}

// ScoreboardProvider fetches a raw scoreboard for one sport over a
// YYYYMMDD-YYYYMMDD date window. Upstream failures are reported inside the
// result, never as an error, so one broken feed cannot take down the brief.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, sport, dates string) domain.ScoreboardResult
}
