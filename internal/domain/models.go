package domain

// Scoreboard feed states used for classifying events.
const (
	StatePre  = "pre"
	StatePost = "post"
)

// EventStatus carries the lifecycle flags the scoreboard provider reports for a game.
type EventStatus struct {
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

// Competitor is one team's participation record within an event.
// Score stays string-typed because that is how the upstream feed ships it.
type Competitor struct {
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Abbreviation string `json:"abbreviation"`
	Score        string `json:"score"`
	HomeAway     string `json:"homeAway"`
}

// Event is one scheduled or completed game from the scoreboard feed.
// Date is kept as the raw feed string; parsing happens on demand so events
// with unparsable timestamps can still be counted.
type Event struct {
	Name        string       `json:"name"`
	Date        string       `json:"date"`
	Status      EventStatus  `json:"status"`
	Competitors []Competitor `json:"competitors"`
}

// TeamQuery identifies the team a caller cares about: a display-name fragment
// plus an abbreviation. Used only for matching, never stored.
type TeamQuery struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// ScoreboardResult is the outcome of one scoreboard fetch. Upstream failures
// are captured in Error with an empty event list; RequestURL is always set.
type ScoreboardResult struct {
	RequestURL string  `json:"requestUrl"`
	Events     []Event `json:"events"`
	Error      string  `json:"error,omitempty"`
}

// Snapshot summarizes a team's most recent and next game for display.
type Snapshot struct {
	Sport         string `json:"sport"`
	Team          string `json:"team"`
	RecentScore   string `json:"recentScore"`
	RecentDetail  string `json:"recentDetail"`
	NextGame      string `json:"nextGame"`
	NextDetail    string `json:"nextDetail"`
	EventsSeen    int    `json:"eventsSeen"`
	EventsMatched int    `json:"eventsMatched"`
	RequestURL    string `json:"requestUrl"`
	Error         string `json:"error,omitempty"`
}

// CurrentConditions holds the live weather block from the forecast provider.
// WeatherCode is a pointer so an absent code renders as "Unknown" rather than
// clear sky.
type CurrentConditions struct {
	TemperatureF float64 `json:"temperatureF"`
	HumidityPct  float64 `json:"humidityPct"`
	WeatherCode  *int    `json:"weatherCode"`
}

// DailyForecast holds the provider's parallel per-day arrays, index-aligned.
type DailyForecast struct {
	Dates        []string  `json:"dates"`
	WeatherCodes []int     `json:"weatherCodes"`
	HighsF       []float64 `json:"highsF"`
	LowsF        []float64 `json:"lowsF"`
}

// WeatherReport is the normalized forecast payload.
type WeatherReport struct {
	Current CurrentConditions `json:"current"`
	Daily   DailyForecast     `json:"daily"`
}

// ForecastRow is one day of the display-ready forecast table.
type ForecastRow struct {
	Date      string  `json:"date"`
	HighF     float64 `json:"highF"`
	LowF      float64 `json:"lowF"`
	Condition string  `json:"condition"`
}

// CurrentSummary is the display-ready current-conditions row.
type CurrentSummary struct {
	TemperatureF float64 `json:"temperatureF"`
	HumidityPct  float64 `json:"humidityPct"`
	Condition    string  `json:"condition"`
}

// AirReport holds the current air-quality readings.
type AirReport struct {
	USAQI float64 `json:"usAqi"`
	PM25  float64 `json:"pm25"`
	PM10  float64 `json:"pm10"`
}

// Article is one news headline record, passed through to the display layer.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
}
