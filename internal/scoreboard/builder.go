package scoreboard

import (
	"fmt"
	"strings"
	"time"

	"family-brief-service/internal/domain"
	"family-brief-service/internal/timeutil"
)

const (
	noRecentGames      = "No recent games in the selected window"
	detailsUnavailable = "Game details unavailable"
	unknownOpponent    = "Unknown"
)

// Builder renders per-team snapshots from scoreboard results. Game times are
// displayed in the configured location.
type Builder struct {
	now func() time.Time
	loc *time.Location
}

// NewBuilder constructs a Builder that renders game times in loc.
func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.Local
	}
	return &Builder{
		now: time.Now,
		loc: loc,
	}
}

// Build converts a scoreboard result into a display-ready snapshot for one
// team. It always returns a well-formed snapshot: upstream failures and empty
// windows surface as default text plus the result's diagnostics, never as an
// error.
func (b *Builder) Build(sport string, result domain.ScoreboardResult, query domain.TeamQuery) domain.Snapshot {
	snap := domain.Snapshot{
		Sport:       sport,
		Team:        query.Name,
		RecentScore: noRecentGames,
		NextGame:    offseasonMessage(sport),
		EventsSeen:  len(result.Events),
		RequestURL:  result.RequestURL,
		Error:       result.Error,
	}

	if len(result.Events) == 0 {
		return snap
	}

	recent, next, matched := ExtractGames(result.Events, query, b.now())
	snap.EventsMatched = matched

	if recent != nil {
		team, opponent := splitCompetitors(recent.Competitors, query)
		location := locationLabel(team)
		opponentName := unknownOpponent
		if opponent != nil && opponent.Name != "" {
			opponentName = opponent.Name
		}
		if opponent != nil {
			snap.RecentScore = fmt.Sprintf("%s %s - %s %s", teamLabel(team, query), team.Score, opponent.Score, opponentName)
		} else {
			snap.RecentScore = detailsUnavailable
		}
		snap.RecentDetail = fmt.Sprintf("%s vs %s • %s", location, opponentName, b.formatEventDate(recent.Date))
	}

	if next != nil {
		team, opponent := splitCompetitors(next.Competitors, query)
		opponentName := unknownOpponent
		if opponent != nil && opponent.Name != "" {
			opponentName = opponent.Name
		}
		snap.NextGame = fmt.Sprintf("%s vs %s", locationLabel(team), opponentName)
		snap.NextDetail = b.formatEventDate(next.Date)
	}

	return snap
}

// splitCompetitors resolves the query-matching competitor and the first
// competitor that is not it. The opponent is nil when the event carries fewer
// than two competitors.
func splitCompetitors(competitors []domain.Competitor, query domain.TeamQuery) (team, opponent *domain.Competitor) {
	for i := range competitors {
		if Matches(competitors[i], query) {
			team = &competitors[i]
			break
		}
	}
	if team == nil {
		return nil, nil
	}
	for i := range competitors {
		if &competitors[i] != team {
			opponent = &competitors[i]
			break
		}
	}
	return team, opponent
}

// teamLabel prefers the feed's display name and falls back to the query, so a
// fragment query still renders the full team name when the feed provides it.
func teamLabel(team *domain.Competitor, query domain.TeamQuery) string {
	if team != nil && team.Name != "" {
		return team.Name
	}
	return query.Name
}

func locationLabel(team *domain.Competitor) string {
	if team != nil && strings.EqualFold(team.HomeAway, "home") {
		return "Home"
	}
	return "Away"
}

// formatEventDate renders the event timestamp in the builder's location,
// falling back to the raw feed string when it cannot be parsed.
func (b *Builder) formatEventDate(raw string) string {
	when, err := timeutil.ParseEventTime(raw)
	if err != nil {
		return raw
	}
	return timeutil.FormatDisplayDateTime(when.In(b.loc))
}

func offseasonMessage(sport string) string {
	switch strings.ToLower(sport) {
	case "nfl":
		return "NFL offseason. No games scheduled."
	case "nba":
		return "NBA offseason. No games scheduled."
	default:
		return "Offseason. No games scheduled."
	}
}
