package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// EventbriteClient fetches events near a location. Without an API key, or
// when the API yields nothing, it degrades to an empty fallback result
// instead of an error.
type EventbriteClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewEventbriteClient(baseURL, apiKey string) *EventbriteClient {
	if baseURL == "" {
		baseURL = "https://www.eventbriteapi.com/v3"
	}
	return &EventbriteClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type eventbriteSearchResponse struct {
	Events []struct {
		Name struct {
			Text string `json:"text"`
		} `json:"name"`
		Description struct {
			Text string `json:"text"`
		} `json:"description"`
		Start struct {
			Local string `json:"local"`
		} `json:"start"`
		Venue struct {
			Name string `json:"name"`
		} `json:"venue"`
		CategoryID string `json:"category_id"`
		URL        string `json:"url"`
	} `json:"events"`
}

func (c *EventbriteClient) GetEvents(ctx context.Context, lat, lon float64, placeName, startDate, endDate string) (*types.EventsResult, error) {
	fallback := &types.EventsResult{
		Events:    []types.Event{},
		PlaceName: placeName,
		HasData:   false,
		Source:    "fallback",
	}

	if c.apiKey == "" {
		return fallback, nil
	}

	events, err := c.searchEvents(ctx, lat, lon, startDate, endDate)
	if err != nil || len(events) == 0 {
		return fallback, nil
	}

	return &types.EventsResult{
		Events:    events,
		PlaceName: placeName,
		HasData:   true,
		Source:    "eventbrite",
	}, nil
}

func (c *EventbriteClient) searchEvents(ctx context.Context, lat, lon float64, startDate, endDate string) ([]types.Event, error) {
	if endDate == "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			start = time.Now()
		}
		endDate = start.AddDate(0, 0, 7).Format("2006-01-02")
	}

	endpoint := fmt.Sprintf(
		"%s/events/search/?location.latitude=%f&location.longitude=%f&start_date.range_start=%sT00:00:00&start_date.range_end=%sT23:59:59&expand=venue",
		c.baseURL, lat, lon, startDate, endDate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build events request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events request returned status %d", resp.StatusCode)
	}

	var data eventbriteSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}

	events := make([]types.Event, 0, 10)
	for i, raw := range data.Events {
		if i >= 10 {
			break
		}
		name := raw.Name.Text
		if name == "" {
			name = "Untitled Event"
		}
		description := raw.Description.Text
		if len(description) > 200 {
			description = description[:200]
		}

		date := startDate
		var eventTime string
		if parts := strings.SplitN(raw.Start.Local, "T", 2); len(parts) == 2 {
			date = parts[0]
			if len(parts[1]) >= 5 {
				eventTime = parts[1][:5]
			}
		}

		events = append(events, types.Event{
			Name:        name,
			Description: description,
			Date:        date,
			Time:        eventTime,
			Venue:       raw.Venue.Name,
			Category:    raw.CategoryID,
			URL:         raw.URL,
		})
	}
	return events, nil
}
