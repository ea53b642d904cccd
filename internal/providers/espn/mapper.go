package espn

import "family-brief-service/internal/domain"

// mapEvent flattens one feed event into the domain shape. Only the first
// competition is considered; scoreboard events carry exactly one.
func mapEvent(e eventResponse) domain.Event {
	event := domain.Event{
		Name: e.Name,
		Date: e.Date,
		Status: domain.EventStatus{
			State:     e.Status.Type.State,
			Completed: e.Status.Type.Completed,
		},
	}
	if len(e.Competitions) == 0 {
		return event
	}

	competitors := e.Competitions[0].Competitors
	event.Competitors = make([]domain.Competitor, 0, len(competitors))
	for _, c := range competitors {
		event.Competitors = append(event.Competitors, domain.Competitor{
			Name:         c.Team.DisplayName,
			ShortName:    c.Team.ShortDisplayName,
			Abbreviation: c.Team.Abbreviation,
			Score:        c.Score,
			HomeAway:     c.HomeAway,
		})
	}
	return event
}
