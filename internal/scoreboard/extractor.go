package scoreboard

import (
	"strings"
	"time"

	"family-brief-service/internal/domain"
	"family-brief-service/internal/timeutil"
)

// ExtractGames scans events once and selects the most recent completed game
// and the nearest upcoming scheduled game for the queried team, along with the
// total number of events whose competitor set matched the query.
//
// Malformed events never abort the scan: an event with no competitors is
// skipped outright, and an event with an unparsable timestamp still counts
// toward matched but is excluded from selection. The now instant is fixed for
// the whole scan so the scheduled/past boundary cannot drift mid-pass.
// Selection uses strict inequalities, so the first event encountered wins
// timestamp ties.
func ExtractGames(events []domain.Event, query domain.TeamQuery, now time.Time) (recent, next *domain.Event, matched int) {
	var recentTime, nextTime time.Time

	for i := range events {
		event := &events[i]
		if len(event.Competitors) == 0 {
			continue
		}
		if !anyCompetitorMatches(event.Competitors, query) {
			continue
		}
		matched++

		when, err := timeutil.ParseEventTime(event.Date)
		if err != nil {
			continue
		}

		switch {
		case isCompleted(event.Status):
			if recent == nil || when.After(recentTime) {
				recent = event
				recentTime = when
			}
		case isScheduled(event.Status):
			if when.Before(now) {
				continue
			}
			if next == nil || when.Before(nextTime) {
				next = event
				nextTime = when
			}
		}
	}

	return recent, next, matched
}

func anyCompetitorMatches(competitors []domain.Competitor, query domain.TeamQuery) bool {
	for _, c := range competitors {
		if Matches(c, query) {
			return true
		}
	}
	return false
}

func isCompleted(s domain.EventStatus) bool {
	return s.Completed || strings.EqualFold(s.State, domain.StatePost)
}

func isScheduled(s domain.EventStatus) bool {
	return strings.EqualFold(s.State, domain.StatePre)
}
