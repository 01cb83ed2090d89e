package types

type WeatherCurrent struct {
	Temperature              float64 `json:"temperature"`
	PrecipitationProbability float64 `json:"precipitationProbability"`
	WindSpeed                float64 `json:"windSpeed"`
	UVIndex                  float64 `json:"uvIndex,omitempty"`
	Condition                string  `json:"condition"`
}

type WeatherForecast struct {
	Date                     string  `json:"date"`
	Temperature              float64 `json:"temperature"`
	PrecipitationProbability float64 `json:"precipitationProbability"`
	WindSpeed                float64 `json:"windSpeed"`
	UVIndex                  float64 `json:"uvIndex,omitempty"`
	Condition                string  `json:"condition"`
}

// WeatherSafetyResult is the weather provider payload: current conditions,
// a short forecast, and advisories derived for the traveller's age group.
type WeatherSafetyResult struct {
	Current         WeatherCurrent    `json:"current"`
	Forecast        []WeatherForecast `json:"forecast"`
	SafetyAdvice    []string          `json:"safetyAdvice"`
	BestTimeToVisit string            `json:"bestTimeToVisit"`
	PlaceName       string            `json:"placeName"`
}
