package server

import (
	"log/slog"
	"net/http"

	"family-brief-service/internal/config"
	"family-brief-service/internal/providers"
	"family-brief-service/internal/providers/espn"
	"family-brief-service/internal/providers/newsapi"
	"family-brief-service/internal/providers/openmeteo"
)

// providerSet groups the upstream clients the brief service consumes.
type providerSet struct {
	forecasts  providers.ForecastProvider
	air        providers.AirQualityProvider
	headlines  providers.HeadlineProvider
	scoreboard providers.ScoreboardProvider
}

// buildProviders assembles the upstream clients with one shared HTTP client.
func buildProviders(cfg config.Config, logger *slog.Logger) *providerSet {
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	meteo := openmeteo.NewClient(openmeteo.Config{
		BaseURL:    cfg.Weather.BaseURL,
		AirBaseURL: cfg.Weather.AirBaseURL,
		HTTPClient: client,
		Latitude:   cfg.Location.Latitude,
		Longitude:  cfg.Location.Longitude,
		Timezone:   cfg.Location.Timezone,
	})

	news := newsapi.NewClient(newsapi.Config{
		BaseURL:    cfg.News.BaseURL,
		APIKey:     cfg.News.APIKey,
		Country:    cfg.News.Country,
		PageSize:   cfg.News.PageSize,
		HTTPClient: client,
	})

	scores := espn.NewClient(espn.Config{
		BaseURL:    cfg.Scoreboard.BaseURL,
		HTTPClient: client,
	})

	return &providerSet{
		forecasts: meteo,
		air:       meteo,
		headlines: news,
		scoreboard: &providers.LoggingScoreboardProvider{
			Name:   "espn",
			Inner:  scores,
			Logger: logger,
		},
	}
}
