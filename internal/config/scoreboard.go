package config

import (
	"fmt"
	"strings"
	"time"
)

// ScoreboardConfig controls how we talk to the ESPN scoreboard API and which
// teams the dashboard follows.
type ScoreboardConfig struct {
	BaseURL    string        `envconfig:"ESPN_BASE_URL" default:"https://site.api.espn.com/apis/site/v2/sports"`
	PastDays   int           `envconfig:"SCOREBOARD_PAST_DAYS" default:"30"`
	FutureDays int           `envconfig:"SCOREBOARD_FUTURE_DAYS" default:"60"`
	TTL        time.Duration `envconfig:"SCOREBOARD_CACHE_TTL" default:"15m"`
	Teams      TeamList      `envconfig:"SCOREBOARD_TEAMS" default:"nfl:Carolina Panthers:CAR;nba:Charlotte Hornets:CHA"`
}

// TeamEntry names one tracked team and the sport feed it belongs to.
type TeamEntry struct {
	Sport        string
	Name         string
	Abbreviation string
}

// TeamList is the set of tracked teams, decoded from a semicolon-separated
// list of sport:name:abbreviation entries.
type TeamList []TeamEntry

// Decode implements envconfig.Decoder.
func (t *TeamList) Decode(value string) error {
	var entries []TeamEntry
	for _, raw := range strings.Split(value, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			return fmt.Errorf("team entry %q: want sport:name:abbreviation", raw)
		}
		entry := TeamEntry{
			Sport:        strings.ToLower(strings.TrimSpace(parts[0])),
			Name:         strings.TrimSpace(parts[1]),
			Abbreviation: strings.TrimSpace(parts[2]),
		}
		if entry.Sport == "" || entry.Name == "" {
			return fmt.Errorf("team entry %q: sport and name are required", raw)
		}
		entries = append(entries, entry)
	}
	*t = entries
	return nil
}
