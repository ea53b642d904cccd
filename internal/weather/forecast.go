package weather

import (
	"family-brief-service/internal/domain"
	"family-brief-service/internal/timeutil"
)

// ForecastTable reshapes the provider's parallel daily arrays into one
// display row per day. Rows stop at the shortest array, so a truncated
// payload degrades to fewer rows instead of an error.
func ForecastTable(daily domain.DailyForecast) []domain.ForecastRow {
	n := len(daily.Dates)
	if len(daily.WeatherCodes) < n {
		n = len(daily.WeatherCodes)
	}
	if len(daily.HighsF) < n {
		n = len(daily.HighsF)
	}
	if len(daily.LowsF) < n {
		n = len(daily.LowsF)
	}

	rows := make([]domain.ForecastRow, 0, n)
	for i := 0; i < n; i++ {
		code := daily.WeatherCodes[i]
		rows = append(rows, domain.ForecastRow{
			Date:      displayDate(daily.Dates[i]),
			HighF:     daily.HighsF[i],
			LowF:      daily.LowsF[i],
			Condition: CodeText(&code),
		})
	}
	return rows
}

// Summarize renders the live conditions block for display.
func Summarize(current domain.CurrentConditions) domain.CurrentSummary {
	return domain.CurrentSummary{
		TemperatureF: current.TemperatureF,
		HumidityPct:  current.HumidityPct,
		Condition:    CodeText(current.WeatherCode),
	}
}

func displayDate(raw string) string {
	day, err := timeutil.ParseDate(raw)
	if err != nil {
		return raw
	}
	return timeutil.FormatDisplayDate(day)
}
