package espn

import "time"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 15 * time.Second
)

// sportPaths maps the short sport keys used in configuration to the ESPN
// scoreboard path segments.
var sportPaths = map[string]string{
	"nfl": "football/nfl",
	"nba": "basketball/nba",
}
