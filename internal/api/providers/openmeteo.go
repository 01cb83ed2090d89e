package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// OpenMeteoClient fetches current conditions and a short forecast, and
// derives age-aware safety advisories from them.
type OpenMeteoClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOpenMeteoClient(baseURL string) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com"
	}
	return &OpenMeteoClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
	Hourly struct {
		Time                     []string  `json:"time"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
		UVIndex                  []float64 `json:"uv_index"`
	} `json:"hourly"`
	Daily struct {
		Time                        []string  `json:"time"`
		TemperatureMax              []float64 `json:"temperature_2m_max"`
		TemperatureMin              []float64 `json:"temperature_2m_min"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		WindSpeedMax                []float64 `json:"windspeed_10m_max"`
		UVIndexMax                  []float64 `json:"uv_index_max"`
		WeatherCode                 []int     `json:"weathercode"`
	} `json:"daily"`
}

func (c *OpenMeteoClient) GetWeatherSafety(ctx context.Context, lat, lon float64, placeName, visitDate string, ageGroup types.AgeGroup) (*types.WeatherSafetyResult, error) {
	start, err := time.Parse("2006-01-02", visitDate)
	if err != nil {
		start = time.Now()
	}
	end := start.AddDate(0, 0, 3)

	endpoint := fmt.Sprintf(
		"%s/v1/forecast?latitude=%f&longitude=%f&current_weather=true&hourly=temperature_2m,precipitation_probability,windspeed_10m,uv_index&daily=temperature_2m_max,temperature_2m_min,precipitation_probability_max,windspeed_10m_max,uv_index_max,weathercode&start_date=%s&end_date=%s&timezone=auto",
		c.baseURL, lat, lon, start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	var data openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if data.CurrentWeather.Time == "" {
		return nil, fmt.Errorf("weather response has no current conditions")
	}

	// Align the hourly series to the current observation.
	timeIndex := 0
	for i, t := range data.Hourly.Time {
		if t == data.CurrentWeather.Time {
			timeIndex = i
			break
		}
	}

	var precipitation, uvIndex float64
	if timeIndex < len(data.Hourly.PrecipitationProbability) {
		precipitation = data.Hourly.PrecipitationProbability[timeIndex]
	}
	if timeIndex < len(data.Hourly.UVIndex) {
		uvIndex = data.Hourly.UVIndex[timeIndex]
	} else if len(data.Daily.UVIndexMax) > 0 {
		uvIndex = data.Daily.UVIndexMax[0]
	}

	current := types.WeatherCurrent{
		Temperature:              math.Round(data.CurrentWeather.Temperature),
		PrecipitationProbability: math.Round(precipitation),
		WindSpeed:                math.Round(data.CurrentWeather.WindSpeed),
		UVIndex:                  math.Round(uvIndex),
		Condition:                weatherCondition(data.CurrentWeather.WeatherCode),
	}

	forecast := make([]types.WeatherForecast, 0, 3)
	for i := 0; i < len(data.Daily.Time) && i < 3; i++ {
		f := types.WeatherForecast{
			Date:        data.Daily.Time[i],
			Temperature: math.Round((data.Daily.TemperatureMax[i] + data.Daily.TemperatureMin[i]) / 2),
		}
		if i < len(data.Daily.PrecipitationProbabilityMax) {
			f.PrecipitationProbability = math.Round(data.Daily.PrecipitationProbabilityMax[i])
		}
		if i < len(data.Daily.WindSpeedMax) {
			f.WindSpeed = math.Round(data.Daily.WindSpeedMax[i])
		}
		if i < len(data.Daily.UVIndexMax) {
			f.UVIndex = math.Round(data.Daily.UVIndexMax[i])
		}
		if i < len(data.Daily.WeatherCode) {
			f.Condition = weatherCondition(data.Daily.WeatherCode[i])
		}
		forecast = append(forecast, f)
	}

	return &types.WeatherSafetyResult{
		Current:         current,
		Forecast:        forecast,
		SafetyAdvice:    safetyAdvice(current, ageGroup),
		BestTimeToVisit: bestTimeToVisit(forecast, visitDate),
		PlaceName:       placeName,
	}, nil
}

// weatherCondition maps WMO weather interpretation codes to display text.
func weatherCondition(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code <= 3:
		return "Partly cloudy"
	case code <= 48:
		return "Foggy"
	case code <= 67:
		return "Rainy"
	case code <= 77:
		return "Snowy"
	case code <= 82:
		return "Rain showers"
	case code <= 86:
		return "Snow showers"
	default:
		return "Thunderstorm"
	}
}

func safetyAdvice(weather types.WeatherCurrent, ageGroup types.AgeGroup) []string {
	advice := []string{}
	vulnerable := ageGroup == types.AgeGroupUnder18 || ageGroup == types.AgeGroup60Plus

	if weather.UVIndex >= 8 {
		advice = append(advice, "High UV index - seek shade and use sunscreen")
		if vulnerable {
			advice = append(advice, "Avoid midday sun exposure")
		}
	} else if weather.UVIndex >= 6 {
		advice = append(advice, "Moderate UV - use sunscreen")
	}

	if weather.PrecipitationProbability > 70 {
		advice = append(advice, "High chance of rain - carry an umbrella")
		if ageGroup == types.AgeGroup60Plus {
			advice = append(advice, "Wet conditions - be cautious on slippery surfaces")
		}
	}

	if weather.WindSpeed > 20 {
		advice = append(advice, "Strong winds expected - secure loose items")
	}

	if weather.Temperature < 5 {
		advice = append(advice, "Very cold - dress warmly")
		if ageGroup == types.AgeGroup60Plus {
			advice = append(advice, "Cold weather - take extra precautions")
		}
	} else if weather.Temperature > 35 {
		advice = append(advice, "Very hot - stay hydrated and seek shade")
		if vulnerable {
			advice = append(advice, "Extreme heat - limit outdoor activities during peak hours")
		}
	}

	return advice
}

func bestTimeToVisit(forecast []types.WeatherForecast, visitDate string) string {
	if len(forecast) == 0 {
		return "Check weather conditions before visiting"
	}

	var visitDay *types.WeatherForecast
	for i := range forecast {
		if forecast[i].Date == visitDate {
			visitDay = &forecast[i]
			break
		}
	}
	if visitDay == nil {
		return "Weather looks favorable for your visit"
	}

	if visitDay.PrecipitationProbability < 30 && visitDay.Temperature >= 15 && visitDay.Temperature <= 30 {
		return "Perfect weather conditions expected for your visit"
	}
	if visitDay.PrecipitationProbability > 60 {
		return "Rain expected - consider indoor activities or rescheduling"
	}
	return "Weather conditions are acceptable for your visit"
}
