package openmeteo

import "family-brief-service/internal/domain"

func mapForecast(resp forecastResponse) domain.WeatherReport {
	return domain.WeatherReport{
		Current: domain.CurrentConditions{
			TemperatureF: resp.Current.Temperature2M,
			HumidityPct:  resp.Current.RelativeHumidity2M,
			WeatherCode:  resp.Current.WeatherCode,
		},
		Daily: domain.DailyForecast{
			Dates:        resp.Daily.Time,
			WeatherCodes: resp.Daily.WeatherCode,
			HighsF:       resp.Daily.Temperature2MMax,
			LowsF:        resp.Daily.Temperature2MMin,
		},
	}
}

func mapAir(resp airResponse) domain.AirReport {
	return domain.AirReport{
		USAQI: resp.Current.USAQI,
		PM25:  resp.Current.PM25,
		PM10:  resp.Current.PM10,
	}
}
