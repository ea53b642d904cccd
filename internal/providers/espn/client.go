package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"family-brief-service/internal/domain"
)

// Config controls how the scoreboard client reaches the ESPN site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches scoreboards from ESPN's public site API and maps them to
// domain events.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an ESPN scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchScoreboard retrieves the scoreboard for one sport over a
// YYYYMMDD-YYYYMMDD date window. It never returns an error: failures are
// captured in the result so the snapshot layer renders defaults plus
// diagnostics, and RequestURL is always populated for troubleshooting.
func (c *Client) FetchScoreboard(ctx context.Context, sport, dates string) domain.ScoreboardResult {
	result := domain.ScoreboardResult{Events: []domain.Event{}}

	endpoint := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, sportPath(sport))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		result.RequestURL = endpoint
		result.Error = err.Error()
		return result
	}

	if dates != "" {
		q := req.URL.Query()
		q.Set("dates", dates)
		req.URL.RawQuery = q.Encode()
	}
	result.RequestURL = req.URL.String()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		result.Error = fmt.Sprintf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
		return result
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		result.Error = err.Error()
		return result
	}

	events := make([]domain.Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		events = append(events, mapEvent(e))
	}
	result.Events = events
	return result
}
