package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"family-brief-service/internal/domain"
)

// ErrMissingAPIKey is returned when the client has no credential. The caller
// treats it like any other fetch failure: the news section degrades to its
// unavailable state.
var ErrMissingAPIKey = errors.New("newsapi: missing API key")

// Config controls how the client reaches NewsAPI.
type Config struct {
	BaseURL    string
	APIKey     string
	Country    string
	PageSize   int
	HTTPClient *http.Client
}

// Client fetches top headlines from NewsAPI and maps them to domain articles.
type Client struct {
	baseURL    string
	apiKey     string
	country    string
	pageSize   int
	httpClient httpDoer
}

// NewClient constructs a NewsAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		country:    resolveCountry(cfg.Country),
		pageSize:   resolvePageSize(cfg.PageSize),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchTopHeadlines retrieves the ordered top headlines for the configured
// country.
func (c *Client) FetchTopHeadlines(ctx context.Context) ([]domain.Article, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/top-headlines", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("country", c.country)
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	q.Set("apiKey", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, mapArticle(a))
	}
	return articles, nil
}
