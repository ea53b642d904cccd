package scoreboard

import (
	"strings"

	"family-brief-service/internal/domain"
)

// Matches reports whether a competitor entry represents the queried team.
// The query's name fragment matches by case-insensitive substring against the
// competitor's display name or short name; the query's abbreviation matches by
// case-insensitive equality. Missing competitor fields compare as empty
// strings, and an empty query field never matches on its own.
func Matches(c domain.Competitor, q domain.TeamQuery) bool {
	if fragment := strings.ToLower(strings.TrimSpace(q.Name)); fragment != "" {
		if strings.Contains(strings.ToLower(c.Name), fragment) {
			return true
		}
		if strings.Contains(strings.ToLower(c.ShortName), fragment) {
			return true
		}
	}

	abbr := strings.TrimSpace(q.Abbreviation)
	return abbr != "" && strings.EqualFold(c.Abbreviation, abbr)
}
