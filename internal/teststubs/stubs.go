// Package teststubs provides shared test doubles for the provider interfaces.
package teststubs

import (
	"context"
	"sync/atomic"

	"family-brief-service/internal/domain"
)

// StubForecastProvider is a test double for providers.ForecastProvider.
type StubForecastProvider struct {
	Report domain.WeatherReport
	Err    error
	Calls  atomic.Int32
}

// FetchForecast returns the configured report and error while tracking calls.
func (s *StubForecastProvider) FetchForecast(ctx context.Context) (domain.WeatherReport, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Report, s.Err
}

// StubAirProvider is a test double for providers.AirQualityProvider.
type StubAirProvider struct {
	Report domain.AirReport
	Err    error
	Calls  atomic.Int32
}

// FetchAirQuality returns the configured report and error while tracking calls.
func (s *StubAirProvider) FetchAirQuality(ctx context.Context) (domain.AirReport, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Report, s.Err
}

// StubHeadlineProvider is a test double for providers.HeadlineProvider.
type StubHeadlineProvider struct {
	Articles []domain.Article
	Err      error
	Calls    atomic.Int32
}

// FetchTopHeadlines returns the configured articles and error while tracking calls.
func (s *StubHeadlineProvider) FetchTopHeadlines(ctx context.Context) ([]domain.Article, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Articles, s.Err
}

// StubScoreboardProvider is a test double for providers.ScoreboardProvider.
// Results are keyed by sport; unknown sports return a zero result.
type StubScoreboardProvider struct {
	Results map[string]domain.ScoreboardResult
	Calls   atomic.Int32
}

// FetchScoreboard returns the configured result for the sport while tracking calls.
func (s *StubScoreboardProvider) FetchScoreboard(ctx context.Context, sport, dates string) domain.ScoreboardResult {
	_ = ctx
	_ = dates
	s.Calls.Add(1)
	return s.Results[sport]
}
