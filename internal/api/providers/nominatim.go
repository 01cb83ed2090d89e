package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

const nominatimUserAgent = "Tourism-Multi-Agent-System/1.0"

// NominatimClient is the geocoding collaborator. It also answers reverse
// lookups for country inference.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &NominatimClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Nominatim encodes lat/lon as strings but importance and place_id as
// numbers.
type nominatimPlace struct {
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	DisplayName string      `json:"display_name"`
	Importance  json.Number `json:"importance"`
	PlaceID     json.Number `json:"place_id"`
}

// Search returns up to limit ranked matches for the query.
func (c *NominatimClient) Search(ctx context.Context, query string, limit int) ([]types.GeocodingCandidate, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=%d&addressdetails=1",
		c.baseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	candidates := make([]types.GeocodingCandidate, 0, len(places))
	for _, p := range places {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lon, lonErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		importance, _ := p.Importance.Float64()
		displayName := p.DisplayName
		if displayName == "" {
			displayName = query
		}
		candidates = append(candidates, types.GeocodingCandidate{
			Latitude:    lat,
			Longitude:   lon,
			DisplayName: displayName,
			Importance:  importance,
			PlaceID:     p.PlaceID.String(),
		})
	}
	return candidates, nil
}

type nominatimReverse struct {
	Address struct {
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// ReverseCountryCode resolves coordinates to an uppercase ISO country code.
func (c *NominatimClient) ReverseCountryCode(ctx context.Context, lat, lon float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json", c.baseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding request returned status %d", resp.StatusCode)
	}

	var reverse nominatimReverse
	if err := json.NewDecoder(resp.Body).Decode(&reverse); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocoding response: %w", err)
	}
	if reverse.Address.CountryCode == "" {
		return "", fmt.Errorf("reverse geocoding response has no country code")
	}
	return strings.ToUpper(reverse.Address.CountryCode), nil
}
