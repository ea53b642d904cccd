package newsapi

import "time"

const (
	defaultBaseURL     = "https://newsapi.org/v2"
	defaultCountry     = "us"
	defaultPageSize    = 10
	defaultHTTPTimeout = 15 * time.Second
)
