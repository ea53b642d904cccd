package providers

import (
	"context"
	"log/slog"

	"family-brief-service/internal/domain"
)

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}

// LoggingScoreboardProvider wraps a ScoreboardProvider with structured logs
// for each fetch. Failures are logged at warn because the caller only sees
// them as snapshot diagnostics.
type LoggingScoreboardProvider struct {
	Name   string
	Inner  ScoreboardProvider
	Logger *slog.Logger
}

func (p LoggingScoreboardProvider) FetchScoreboard(ctx context.Context, sport, dates string) domain.ScoreboardResult {
	result := p.Inner.FetchScoreboard(ctx, sport, dates)
	if result.Error != "" {
		logWithProvider(ctx, p.Logger, slog.LevelWarn, p.Name, "scoreboard fetch failed",
			slog.String("sport", sport),
			slog.String("dates", dates),
			slog.String("error", result.Error),
		)
		return result
	}
	logWithProvider(ctx, p.Logger, slog.LevelDebug, p.Name, "scoreboard fetched",
		slog.String("sport", sport),
		slog.String("dates", dates),
		slog.Int("events", len(result.Events)),
	)
	return result
}
