package espn

import (
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// sportPath resolves a short sport key to its scoreboard path segment. Keys
// outside the map pass through verbatim, so configuration can name feeds like
// "baseball/mlb" directly.
func sportPath(sport string) string {
	key := strings.ToLower(strings.TrimSpace(sport))
	if path, ok := sportPaths[key]; ok {
		return path
	}
	return strings.Trim(strings.TrimSpace(sport), "/")
}
