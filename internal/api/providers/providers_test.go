package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

func TestNominatimSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Springfield", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "Tourism-Multi-Agent-System/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"lat": "39.7817", "lon": "-89.6501", "display_name": "Springfield, Illinois, USA", "importance": 0.72, "place_id": 12345},
			{"lat": "not-a-number", "lon": "0", "display_name": "Broken Entry", "importance": 0.5, "place_id": 2}
		]`))
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	candidates, err := client.Search(context.Background(), "Springfield", 5)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.InDelta(t, 39.7817, candidates[0].Latitude, 0.0001)
	assert.InDelta(t, -89.6501, candidates[0].Longitude, 0.0001)
	assert.Equal(t, "Springfield, Illinois, USA", candidates[0].DisplayName)
	assert.InDelta(t, 0.72, candidates[0].Importance, 0.001)
	assert.Equal(t, "12345", candidates[0].PlaceID)
}

func TestNominatimSearch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	_, err := client.Search(context.Background(), "Paris", 5)
	assert.Error(t, err)
}

func TestNominatimReverseCountryCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address": {"country_code": "fr"}}`))
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	code, err := client.ReverseCountryCode(context.Background(), 48.8566, 2.3522)

	require.NoError(t, err)
	assert.Equal(t, "FR", code)
}

func TestOpenMeteoGetWeatherSafety(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v1/forecast")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current_weather": {"temperature": 38.4, "windspeed": 12.0, "weathercode": 0, "time": "2026-09-01T12:00"},
			"hourly": {
				"time": ["2026-09-01T11:00", "2026-09-01T12:00"],
				"precipitation_probability": [10, 80],
				"uv_index": [5, 9]
			},
			"daily": {
				"time": ["2026-09-01", "2026-09-02", "2026-09-03"],
				"temperature_2m_max": [39, 30, 25],
				"temperature_2m_min": [25, 20, 15],
				"precipitation_probability_max": [80, 20, 10],
				"windspeed_10m_max": [15, 10, 8],
				"uv_index_max": [9, 6, 4],
				"weathercode": [0, 2, 61]
			}
		}`))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(server.URL)
	result, err := client.GetWeatherSafety(context.Background(), 48.85, 2.35, "Paris, France", "2026-09-01", types.AgeGroup60Plus)

	require.NoError(t, err)
	assert.Equal(t, "Paris, France", result.PlaceName)
	assert.InDelta(t, 38, result.Current.Temperature, 0.001)
	assert.Equal(t, "Clear sky", result.Current.Condition)
	assert.InDelta(t, 80, result.Current.PrecipitationProbability, 0.001)
	assert.InDelta(t, 9, result.Current.UVIndex, 0.001)

	require.Len(t, result.Forecast, 3)
	assert.Equal(t, "2026-09-01", result.Forecast[0].Date)
	assert.InDelta(t, 32, result.Forecast[0].Temperature, 0.001)
	assert.Equal(t, "Partly cloudy", result.Forecast[1].Condition)
	assert.Equal(t, "Rainy", result.Forecast[2].Condition)

	// Hot day, high UV, rain likely, vulnerable age group.
	assert.Contains(t, result.SafetyAdvice, "High UV index - seek shade and use sunscreen")
	assert.Contains(t, result.SafetyAdvice, "Avoid midday sun exposure")
	assert.Contains(t, result.SafetyAdvice, "High chance of rain - carry an umbrella")
	assert.Contains(t, result.SafetyAdvice, "Very hot - stay hydrated and seek shade")

	// Visit day has 80% precipitation.
	assert.Equal(t, "Rain expected - consider indoor activities or rescheduling", result.BestTimeToVisit)
}

func TestWeatherCondition(t *testing.T) {
	assert.Equal(t, "Clear sky", weatherCondition(0))
	assert.Equal(t, "Partly cloudy", weatherCondition(3))
	assert.Equal(t, "Foggy", weatherCondition(45))
	assert.Equal(t, "Rainy", weatherCondition(61))
	assert.Equal(t, "Snowy", weatherCondition(71))
	assert.Equal(t, "Rain showers", weatherCondition(80))
	assert.Equal(t, "Snow showers", weatherCondition(85))
	assert.Equal(t, "Thunderstorm", weatherCondition(95))
}

func TestOverpassGetPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		query := r.PostFormValue("data")
		w.Header().Set("Content-Type", "application/json")

		// Each category query gets a themed payload.
		switch {
		case strings.Contains(query, "tourism"):
			w.Write([]byte(`{"elements": [
				{"lat": 48.86, "lon": 2.33, "tags": {"name": "Famous Museum", "tourism": "museum", "popularity": "0.9"}},
				{"lat": 48.87, "lon": 2.34, "tags": {"name": "Quiet Gallery", "tourism": "gallery", "popularity": "0.2"}},
				{"lat": 48.88, "lon": 2.35, "tags": {"description": "nameless place"}},
				{"center": {"lat": 48.89, "lon": 2.36}, "tags": {"name": "Old Fort", "tourism": "attraction"}}
			]}`))
		case strings.Contains(query, "restaurant"):
			w.Write([]byte(`{"elements": [
				{"lat": 48.86, "lon": 2.33, "tags": {"name": "Le Bistro", "amenity": "restaurant", "cuisine": "french"}}
			]}`))
		default:
			w.Write([]byte(`{"elements": []}`))
		}
	}))
	defer server.Close()

	client := NewOverpassClient(server.URL)
	result, err := client.GetPlaces(context.Background(), 48.85, 2.35, "Paris, France")

	require.NoError(t, err)
	assert.Equal(t, "Paris, France", result.PlaceName)

	require.Len(t, result.Attractions, 1)
	assert.Equal(t, "Famous Museum", result.Attractions[0].Name)
	assert.Equal(t, "museum", result.Attractions[0].Type)

	// Low or missing popularity lands in hidden gems, way elements use center coords.
	require.Len(t, result.HiddenGems, 2)
	for _, gem := range result.HiddenGems {
		assert.Equal(t, types.CategoryHiddenGem, gem.Category)
	}

	require.Len(t, result.Restaurants, 1)
	assert.Equal(t, "french", result.Restaurants[0].Cuisine)
	assert.Empty(t, result.Pubs)
}

func TestOverpassGetTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements": [
			{"lat": 48.86, "lon": 2.33, "tags": {"name": "Central Station", "ref": "Line 1"}}
		]}`))
	}))
	defer server.Close()

	client := NewOverpassClient(server.URL)
	// 2026-09-01 is a Tuesday; date-only input parses to midnight, outside rush hours.
	result, err := client.GetTransport(context.Background(), 48.85, 2.35, "Paris, France", "2026-09-01")

	require.NoError(t, err)
	assert.True(t, result.HasData)
	require.Len(t, result.MetroStations, 1)
	assert.Equal(t, "Central Station", result.MetroStations[0].Name)
	assert.Equal(t, "Line 1", result.MetroStations[0].Line)
	require.NotNil(t, result.TrafficAdvisory)
	assert.Equal(t, "medium", result.TrafficAdvisory.Severity)
}

func TestTrafficAdvisoryRules(t *testing.T) {
	t.Run("Weekday morning rush", func(t *testing.T) {
		advisory := trafficAdvisoryFor("2026-09-01T08:00:00Z")
		assert.Equal(t, "high", advisory.Severity)
		assert.Equal(t, "7:00 AM - 9:00 AM", advisory.RushHourTimes)
	})

	t.Run("Weekday evening rush", func(t *testing.T) {
		advisory := trafficAdvisoryFor("2026-09-01T18:00:00Z")
		assert.Equal(t, "high", advisory.Severity)
		assert.Equal(t, "5:00 PM - 7:00 PM", advisory.RushHourTimes)
	})

	t.Run("Weekday off-peak", func(t *testing.T) {
		advisory := trafficAdvisoryFor("2026-09-01T13:00:00Z")
		assert.Equal(t, "medium", advisory.Severity)
	})

	t.Run("Weekend", func(t *testing.T) {
		advisory := trafficAdvisoryFor("2026-09-05T13:00:00Z")
		assert.Equal(t, "low", advisory.Severity)
	})
}

func TestOverpassGetRentals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements": [
			{"lat": 48.86, "lon": 2.33, "tags": {"name": "City Cars", "amenity": "car_rental", "phone": "+33 1 23 45"}},
			{"lat": 48.87, "lon": 2.34, "tags": {"name": "Velo Shop", "shop": "bicycle"}}
		]}`))
	}))
	defer server.Close()

	client := NewOverpassClient(server.URL)
	result, err := client.GetRentals(context.Background(), 48.85, 2.35, "Paris, France")

	require.NoError(t, err)
	assert.True(t, result.HasData)
	require.Len(t, result.Rentals, 2)
	assert.Equal(t, "car", result.Rentals[0].Type)
	assert.Equal(t, "$30-50/day", result.Rentals[0].EstimatedPrice)
	assert.Equal(t, "bicycle", result.Rentals[1].Type)
	assert.Equal(t, "$5-15/day or $1-3/hour", result.Rentals[1].EstimatedPrice)
}

func TestEventbriteWithoutKeyReturnsFallback(t *testing.T) {
	client := NewEventbriteClient("http://localhost:1", "")
	result, err := client.GetEvents(context.Background(), 48.85, 2.35, "Paris, France", "2026-09-01", "")

	require.NoError(t, err)
	assert.False(t, result.HasData)
	assert.Equal(t, "fallback", result.Source)
	assert.Empty(t, result.Events)
}

func TestEventbriteGetEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events": [
			{
				"name": {"text": "Wine Festival"},
				"description": {"text": "A festival of wine"},
				"start": {"local": "2026-09-02T18:30:00"},
				"venue": {"name": "Expo Hall"},
				"category_id": "110",
				"url": "https://example.com/e/1"
			},
			{"name": {}, "start": {}}
		]}`))
	}))
	defer server.Close()

	client := NewEventbriteClient(server.URL, "test-key")
	result, err := client.GetEvents(context.Background(), 48.85, 2.35, "Paris, France", "2026-09-01", "2026-09-07")

	require.NoError(t, err)
	assert.True(t, result.HasData)
	assert.Equal(t, "eventbrite", result.Source)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "Wine Festival", result.Events[0].Name)
	assert.Equal(t, "2026-09-02", result.Events[0].Date)
	assert.Equal(t, "18:30", result.Events[0].Time)
	assert.Equal(t, "Expo Hall", result.Events[0].Venue)
	assert.Equal(t, "Untitled Event", result.Events[1].Name)
	assert.Equal(t, "2026-09-01", result.Events[1].Date)
}

func TestEventbriteAPIFailureDegradesToFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewEventbriteClient(server.URL, "test-key")
	result, err := client.GetEvents(context.Background(), 48.85, 2.35, "Paris, France", "2026-09-01", "")

	require.NoError(t, err)
	assert.False(t, result.HasData)
	assert.Equal(t, "fallback", result.Source)
}

type stubReverseGeocoder struct {
	code string
	err  error
}

func (s stubReverseGeocoder) ReverseCountryCode(ctx context.Context, lat, lon float64) (string, error) {
	return s.code, s.err
}

func TestHelplineService(t *testing.T) {
	t.Run("Known country", func(t *testing.T) {
		svc := NewHelplineService(stubReverseGeocoder{code: "FR"})
		result, err := svc.GetHelplines(context.Background(), 48.85, 2.35)

		require.NoError(t, err)
		assert.Equal(t, "FR", result.Country)
		assert.True(t, result.HasData)
		require.Len(t, result.Helplines, 5)
		assert.Equal(t, "112", result.Helplines[0].Number)
		assert.Equal(t, "Tourism Helpline", result.Helplines[4].Name)
	})

	t.Run("Unknown country falls back to US numbers", func(t *testing.T) {
		svc := NewHelplineService(stubReverseGeocoder{code: "ZZ"})
		result, err := svc.GetHelplines(context.Background(), 0, 0)

		require.NoError(t, err)
		assert.Equal(t, "ZZ", result.Country)
		assert.Equal(t, "911", result.Helplines[0].Number)
	})

	t.Run("Reverse lookup failure defaults to US", func(t *testing.T) {
		svc := NewHelplineService(stubReverseGeocoder{err: context.DeadlineExceeded})
		result, err := svc.GetHelplines(context.Background(), 0, 0)

		require.NoError(t, err)
		assert.Equal(t, "US", result.Country)
		assert.Equal(t, "911", result.Helplines[0].Number)
	})
}
