package config

import "time"

// LocationConfig pins the dashboard to one home location. Defaults are
// Charlotte, NC.
type LocationConfig struct {
	Latitude  float64 `envconfig:"HOME_LATITUDE" default:"35.2271"`
	Longitude float64 `envconfig:"HOME_LONGITUDE" default:"-80.8431"`
	Timezone  string  `envconfig:"HOME_TIMEZONE" default:"America/New_York"`
}

// WeatherConfig controls how we talk to the Open-Meteo APIs.
type WeatherConfig struct {
	BaseURL    string        `envconfig:"OPEN_METEO_BASE_URL" default:"https://api.open-meteo.com/v1"`
	AirBaseURL string        `envconfig:"OPEN_METEO_AIR_BASE_URL" default:"https://air-quality-api.open-meteo.com/v1"`
	TTL        time.Duration `envconfig:"WEATHER_CACHE_TTL" default:"30m"`
}
