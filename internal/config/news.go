package config

import "time"

// NewsConfig controls how we talk to NewsAPI. The key has no default; the
// news section degrades gracefully when it is absent.
type NewsConfig struct {
	BaseURL  string        `envconfig:"NEWSAPI_BASE_URL" default:"https://newsapi.org/v2"`
	APIKey   string        `envconfig:"NEWS_API_KEY"`
	Country  string        `envconfig:"NEWS_COUNTRY" default:"us"`
	PageSize int           `envconfig:"NEWS_PAGE_SIZE" default:"10"`
	TTL      time.Duration `envconfig:"NEWS_CACHE_TTL" default:"20m"`
}
