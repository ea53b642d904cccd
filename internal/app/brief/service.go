package brief

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"family-brief-service/internal/cache"
	"family-brief-service/internal/config"
	"family-brief-service/internal/domain"
	"family-brief-service/internal/logging"
	"family-brief-service/internal/metrics"
	"family-brief-service/internal/providers"
	"family-brief-service/internal/scoreboard"
	"family-brief-service/internal/timeutil"
	"family-brief-service/internal/weather"
)

// Section cache keys, also used as the metric labels for hits/misses.
const (
	sectionWeather = "weather"
	sectionAir     = "air"
	sectionNews    = "news"
	sectionScores  = "scoreboard"
)

// Provider labels for metrics.
const (
	providerWeatherName = "openmeteo"
	providerNewsName    = "newsapi"
	providerScoresName  = "espn"
)

// WeatherSection is the display-ready weather block.
type WeatherSection struct {
	Current  domain.CurrentSummary `json:"current"`
	Forecast []domain.ForecastRow  `json:"forecast"`
}

// Deps carries the collaborators the service needs.
type Deps struct {
	Forecasts  providers.ForecastProvider
	Air        providers.AirQualityProvider
	Headlines  providers.HeadlineProvider
	Scoreboard providers.ScoreboardProvider
	Memo       *cache.Memo
	Metrics    *metrics.Recorder
	Logger     *slog.Logger
}

// Config sets the section TTLs, the scoreboard window, and the teams the
// dashboard follows. Weather and air quality share one TTL.
type Config struct {
	WeatherTTL    time.Duration
	NewsTTL       time.Duration
	ScoreboardTTL time.Duration
	PastDays      int
	FutureDays    int
	Teams         []config.TeamEntry
	Location      *time.Location
}

// Service assembles the dashboard sections, memoizing upstream responses so
// repeated renders inside a section's freshness window reuse one fetch.
// Failed fetches are memoized under the same TTL, which caps upstream
// attempts at one per window.
type Service struct {
	forecasts providers.ForecastProvider
	air       providers.AirQualityProvider
	headlines providers.HeadlineProvider
	scores    providers.ScoreboardProvider

	memo     *cache.Memo
	recorder *metrics.Recorder
	logger   *slog.Logger
	builder  *scoreboard.Builder

	cfg Config
	now func() time.Time
}

// New constructs a Service with the provided collaborators and configuration.
func New(deps Deps, cfg Config) *Service {
	if cfg.PastDays <= 0 {
		cfg.PastDays = 30
	}
	if cfg.FutureDays <= 0 {
		cfg.FutureDays = 60
	}
	memo := deps.Memo
	if memo == nil {
		memo = cache.NewMemo()
	}
	return &Service{
		forecasts: deps.Forecasts,
		air:       deps.Air,
		headlines: deps.Headlines,
		scores:    deps.Scoreboard,
		memo:      memo,
		recorder:  deps.Metrics,
		logger:    deps.Logger,
		builder:   scoreboard.NewBuilder(cfg.Location),
		cfg:       cfg,
		now:       time.Now,
	}
}

type weatherEntry struct {
	section WeatherSection
	ok      bool
}

type airEntry struct {
	report domain.AirReport
	ok     bool
}

type newsEntry struct {
	articles []domain.Article
	ok       bool
}

// Weather returns the current conditions and forecast table. ok is false
// when the upstream payload is unavailable; callers render the section's
// unavailable state instead of failing the whole brief.
func (s *Service) Weather(ctx context.Context) (WeatherSection, bool) {
	if cached, hit := s.memo.Get(sectionWeather); hit {
		if entry, valid := cached.(weatherEntry); valid {
			s.recorder.RecordCacheHit(sectionWeather)
			return entry.section, entry.ok
		}
	}
	s.recorder.RecordCacheMiss(sectionWeather)

	start := time.Now()
	report, err := s.forecasts.FetchForecast(ctx)
	s.recorder.RecordProviderAttempt(providerWeatherName, time.Since(start), err)

	var entry weatherEntry
	if err != nil {
		logging.Warn(s.logger, "weather fetch failed", "error", err)
	} else {
		entry = weatherEntry{
			section: WeatherSection{
				Current:  weather.Summarize(report.Current),
				Forecast: weather.ForecastTable(report.Daily),
			},
			ok: true,
		}
	}
	s.memo.Set(sectionWeather, entry, s.cfg.WeatherTTL)
	return entry.section, entry.ok
}

// AirQuality returns the current air readings. ok is false when unavailable.
func (s *Service) AirQuality(ctx context.Context) (domain.AirReport, bool) {
	if cached, hit := s.memo.Get(sectionAir); hit {
		if entry, valid := cached.(airEntry); valid {
			s.recorder.RecordCacheHit(sectionAir)
			return entry.report, entry.ok
		}
	}
	s.recorder.RecordCacheMiss(sectionAir)

	start := time.Now()
	report, err := s.air.FetchAirQuality(ctx)
	s.recorder.RecordProviderAttempt(providerWeatherName, time.Since(start), err)

	var entry airEntry
	if err != nil {
		logging.Warn(s.logger, "air quality fetch failed", "error", err)
	} else {
		entry = airEntry{report: report, ok: true}
	}
	s.memo.Set(sectionAir, entry, s.cfg.WeatherTTL)
	return entry.report, entry.ok
}

// Headlines returns the ordered top headlines. ok is false when the feed is
// unavailable, including when no API key is configured. An empty list with
// ok true means the feed answered with no articles.
func (s *Service) Headlines(ctx context.Context) ([]domain.Article, bool) {
	if cached, hit := s.memo.Get(sectionNews); hit {
		if entry, valid := cached.(newsEntry); valid {
			s.recorder.RecordCacheHit(sectionNews)
			return entry.articles, entry.ok
		}
	}
	s.recorder.RecordCacheMiss(sectionNews)

	start := time.Now()
	articles, err := s.headlines.FetchTopHeadlines(ctx)
	s.recorder.RecordProviderAttempt(providerNewsName, time.Since(start), err)

	var entry newsEntry
	if err != nil {
		logging.Warn(s.logger, "headlines fetch failed", "error", err)
	} else {
		entry = newsEntry{articles: articles, ok: true}
	}
	s.memo.Set(sectionNews, entry, s.cfg.NewsTTL)
	return entry.articles, entry.ok
}

// Sports returns one snapshot per configured team. It never fails: feeds
// that are down surface as default snapshots carrying their diagnostics.
// Teams sharing a sport share one scoreboard fetch.
func (s *Service) Sports(ctx context.Context) []domain.Snapshot {
	dates := timeutil.DateWindow(s.now(), s.cfg.PastDays, s.cfg.FutureDays)

	snapshots := make([]domain.Snapshot, 0, len(s.cfg.Teams))
	for _, team := range s.cfg.Teams {
		result := s.scoreboardResult(ctx, team.Sport, dates)
		query := domain.TeamQuery{Name: team.Name, Abbreviation: team.Abbreviation}
		snapshots = append(snapshots, s.builder.Build(team.Sport, result, query))
	}
	return snapshots
}

func (s *Service) scoreboardResult(ctx context.Context, sport, dates string) domain.ScoreboardResult {
	key := fmt.Sprintf("%s|%s|%s", sectionScores, sport, dates)
	if cached, hit := s.memo.Get(key); hit {
		if result, valid := cached.(domain.ScoreboardResult); valid {
			s.recorder.RecordCacheHit(sectionScores)
			return result
		}
	}
	s.recorder.RecordCacheMiss(sectionScores)

	start := time.Now()
	result := s.scores.FetchScoreboard(ctx, sport, dates)

	var err error
	if result.Error != "" {
		err = errors.New(result.Error)
	}
	s.recorder.RecordProviderAttempt(providerScoresName, time.Since(start), err)
	if err != nil {
		logging.Warn(s.logger, "scoreboard fetch failed",
			logging.FieldSport, sport,
			"error", result.Error,
		)
	}

	s.memo.Set(key, result, s.cfg.ScoreboardTTL)
	return result
}
