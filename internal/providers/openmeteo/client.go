package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"family-brief-service/internal/domain"
)

// Config controls how the client reaches the Open-Meteo APIs and which
// location it reports on.
type Config struct {
	BaseURL    string
	AirBaseURL string
	HTTPClient *http.Client
	Latitude   float64
	Longitude  float64
	Timezone   string
}

// Client fetches forecast and air-quality data from Open-Meteo and maps them
// to domain models. Open-Meteo requires no credentials.
type Client struct {
	baseURL    string
	airBaseURL string
	httpClient httpDoer
	latitude   float64
	longitude  float64
	timezone   string
}

// NewClient constructs an Open-Meteo client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		airBaseURL: normalizeBaseURL(cfg.AirBaseURL, defaultAirBaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		latitude:   cfg.Latitude,
		longitude:  cfg.Longitude,
		timezone:   cfg.Timezone,
	}
}

// FetchForecast retrieves current conditions and the daily forecast in
// Fahrenheit.
func (c *Client) FetchForecast(ctx context.Context) (domain.WeatherReport, error) {
	req, err := c.buildRequest(ctx, c.baseURL+"/forecast", map[string]string{
		"current":          currentWeatherFields,
		"daily":            dailyWeatherFields,
		"temperature_unit": "fahrenheit",
	})
	if err != nil {
		return domain.WeatherReport{}, err
	}

	var payload forecastResponse
	if err := c.doJSON(req, &payload); err != nil {
		return domain.WeatherReport{}, err
	}
	return mapForecast(payload), nil
}

// FetchAirQuality retrieves the current air-quality readings.
func (c *Client) FetchAirQuality(ctx context.Context) (domain.AirReport, error) {
	req, err := c.buildRequest(ctx, c.airBaseURL+"/air-quality", map[string]string{
		"current": currentAirFields,
	})
	if err != nil {
		return domain.AirReport{}, err
	}

	var payload airResponse
	if err := c.doJSON(req, &payload); err != nil {
		return domain.AirReport{}, err
	}
	return mapAir(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, params map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	if c.timezone != "" {
		q.Set("timezone", c.timezone)
	}
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
	return req, nil
}

func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
