package openmeteo

const providerName = "openmeteo"

type forecastResponse struct {
	Current currentResponse `json:"current"`
	Daily   dailyResponse   `json:"daily"`
}

type currentResponse struct {
	Temperature2M      float64 `json:"temperature_2m"`
	RelativeHumidity2M float64 `json:"relative_humidity_2m"`
	WeatherCode        *int    `json:"weather_code"`
}

type dailyResponse struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
}

type airResponse struct {
	Current airCurrentResponse `json:"current"`
}

type airCurrentResponse struct {
	USAQI float64 `json:"us_aqi"`
	PM25  float64 `json:"pm2_5"`
	PM10  float64 `json:"pm10"`
}
