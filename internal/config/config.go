package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string        `envconfig:"PORT" default:"4000"`
	Title       string        `envconfig:"BRIEF_TITLE" default:"Charlotte Daily Family Brief"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	Location    LocationConfig
	Weather     WeatherConfig
	News        NewsConfig
	Scoreboard  ScoreboardConfig
	Lists       ListsConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
