package openmeteo

import "time"

const (
	defaultBaseURL     = "https://api.open-meteo.com/v1"
	defaultAirBaseURL  = "https://air-quality-api.open-meteo.com/v1"
	defaultHTTPTimeout = 15 * time.Second

	currentWeatherFields = "temperature_2m,relative_humidity_2m,weather_code"
	dailyWeatherFields   = "weather_code,temperature_2m_max,temperature_2m_min"
	currentAirFields     = "us_aqi,pm2_5,pm10"
)
