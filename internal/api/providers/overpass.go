package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// OverpassClient queries the Overpass API for OpenStreetMap data. It backs
// three provider contracts: places, transport and rentals.
type OverpassClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOverpassClient(baseURL string) *OverpassClient {
	if baseURL == "" {
		baseURL = "https://overpass-api.de/api/interpreter"
	}
	return &OverpassClient{
		httpClient: &http.Client{Timeout: 25 * time.Second},
		baseURL:    baseURL,
	}
}

type overpassElement struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

func (e overpassElement) coords() (float64, float64) {
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon
	}
	return 0, 0
}

// GetPlaces fetches every place category concurrently and partitions
// attractions into main attractions and hidden gems.
func (c *OverpassClient) GetPlaces(ctx context.Context, lat, lon float64, placeName string) (*types.PlacesResult, error) {
	queries := map[types.PlaceCategory]string{
		types.CategoryAttraction: attractionsQuery(lat, lon),
		types.CategoryRestaurant: restaurantsQuery(lat, lon),
		types.CategoryPub:        pubsQuery(lat, lon),
		types.CategoryCinema:     cinemasQuery(lat, lon),
		types.CategoryRental:     rentalPlacesQuery(lat, lon),
	}

	results := make(map[types.PlaceCategory][]types.Place, len(queries))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for category, query := range queries {
		wg.Add(1)
		go func(category types.PlaceCategory, query string) {
			defer wg.Done()
			// Category failures degrade to an empty slice.
			places, err := c.queryPlaces(ctx, query, category)
			if err != nil {
				places = nil
			}
			mu.Lock()
			results[category] = places
			mu.Unlock()
		}(category, query)
	}
	wg.Wait()

	var mainAttractions, hiddenGems []types.Place
	for _, p := range results[types.CategoryAttraction] {
		if p.Popularity >= 0.5 {
			if len(mainAttractions) < 5 {
				mainAttractions = append(mainAttractions, p)
			}
		} else if len(hiddenGems) < 5 {
			p.Category = types.CategoryHiddenGem
			hiddenGems = append(hiddenGems, p)
		}
	}

	return &types.PlacesResult{
		Attractions: mainAttractions,
		HiddenGems:  hiddenGems,
		Restaurants: truncatePlaces(results[types.CategoryRestaurant], 10),
		Pubs:        truncatePlaces(results[types.CategoryPub], 10),
		Cinemas:     truncatePlaces(results[types.CategoryCinema], 5),
		Rentals:     truncatePlaces(results[types.CategoryRental], 10),
		PlaceName:   placeName,
	}, nil
}

// GetTransport returns nearby metro stations and a rule-based traffic
// advisory for the visit date.
func (c *OverpassClient) GetTransport(ctx context.Context, lat, lon float64, placeName, visitDate string) (*types.TransportResult, error) {
	stations, err := c.queryMetroStations(ctx, lat, lon)
	if err != nil {
		stations = nil
	}
	if len(stations) > 10 {
		stations = stations[:10]
	}

	return &types.TransportResult{
		MetroStations:   stations,
		TrafficAdvisory: trafficAdvisoryFor(visitDate),
		PlaceName:       placeName,
		HasData:         len(stations) > 0,
	}, nil
}

// GetRentals returns bike and car rental locations with rough price
// estimates.
func (c *OverpassClient) GetRentals(ctx context.Context, lat, lon float64, placeName string) (*types.RentalResult, error) {
	data, err := c.query(ctx, rentalPlacesQuery(lat, lon))
	if err != nil {
		return nil, err
	}

	var rentals []types.Rental
	for _, el := range data.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		elat, elon := el.coords()
		if elat == 0 && elon == 0 {
			continue
		}

		isCar := el.Tags["amenity"] == "car_rental"
		rentalType := "bicycle"
		price := "$5-15/day or $1-3/hour"
		if isCar {
			rentalType = "car"
			price = "$30-50/day"
		}

		rentals = append(rentals, types.Rental{
			Name:           name,
			Type:           rentalType,
			Latitude:       elat,
			Longitude:      elon,
			Contact:        el.Tags["phone"],
			Website:        el.Tags["website"],
			EstimatedPrice: price,
		})
	}
	if len(rentals) > 10 {
		rentals = rentals[:10]
	}

	return &types.RentalResult{
		Rentals:   rentals,
		PlaceName: placeName,
		HasData:   len(rentals) > 0,
	}, nil
}

func (c *OverpassClient) query(ctx context.Context, query string) (*overpassResponse, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass request returned status %d", resp.StatusCode)
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}
	return &data, nil
}

func (c *OverpassClient) queryPlaces(ctx context.Context, query string, category types.PlaceCategory) ([]types.Place, error) {
	data, err := c.query(ctx, query)
	if err != nil {
		return nil, err
	}

	var places []types.Place
	for _, el := range data.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		lat, lon := el.coords()
		if lat == 0 && lon == 0 {
			continue
		}

		placeType := el.Tags["tourism"]
		if placeType == "" {
			placeType = el.Tags["amenity"]
		}
		if placeType == "" {
			placeType = el.Tags["shop"]
		}
		if placeType == "" {
			placeType = string(category)
		}

		description := el.Tags["description"]
		if description == "" {
			description = el.Tags["wikipedia"]
		}

		var popularity float64
		if raw := el.Tags["popularity"]; raw != "" {
			fmt.Sscanf(raw, "%f", &popularity)
		}

		places = append(places, types.Place{
			Name:         name,
			Type:         placeType,
			Category:     category,
			Latitude:     lat,
			Longitude:    lon,
			Description:  description,
			Cuisine:      el.Tags["cuisine"],
			OpeningHours: el.Tags["opening_hours"],
			Contact:      el.Tags["phone"],
			Popularity:   popularity,
		})
	}
	return places, nil
}

func (c *OverpassClient) queryMetroStations(ctx context.Context, lat, lon float64) ([]types.MetroStation, error) {
	data, err := c.query(ctx, metroStationsQuery(lat, lon))
	if err != nil {
		return nil, err
	}

	var stations []types.MetroStation
	for _, el := range data.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		elat, elon := el.coords()
		if elat == 0 && elon == 0 {
			continue
		}
		line := el.Tags["ref"]
		if line == "" {
			line = el.Tags["route"]
		}
		stations = append(stations, types.MetroStation{
			Name:      name,
			Line:      line,
			Latitude:  elat,
			Longitude: elon,
		})
	}
	return stations, nil
}

// trafficAdvisoryFor derives a rule-based advisory from the visit date:
// weekday rush hours score high, other weekday hours medium, weekends low.
func trafficAdvisoryFor(visitDate string) *types.TrafficAdvisory {
	visit, err := time.Parse(time.RFC3339, visitDate)
	if err != nil {
		visit, err = time.Parse("2006-01-02", visitDate)
		if err != nil {
			visit = time.Now()
		}
	}

	day := visit.Weekday()
	hour := visit.Hour()
	isWeekday := day >= time.Monday && day <= time.Friday
	isRushHour := (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)

	if isWeekday && isRushHour {
		window := "5-7 PM"
		rushTimes := "5:00 PM - 7:00 PM"
		if hour < 12 {
			window = "7-9 AM"
			rushTimes = "7:00 AM - 9:00 AM"
		}
		return &types.TrafficAdvisory{
			Message:       fmt.Sprintf("High traffic expected between %s", window),
			Severity:      "high",
			RushHourTimes: rushTimes,
			Alternatives: []string{
				"Consider using metro/subway to avoid traffic",
				"Bike rental available for short distances",
				"Plan to travel outside rush hours if possible",
			},
		}
	}

	if isWeekday {
		return &types.TrafficAdvisory{
			Message:  "Moderate traffic expected on weekdays",
			Severity: "medium",
			Alternatives: []string{
				"Metro/subway recommended for city center",
				"Check real-time traffic before traveling",
			},
		}
	}

	return &types.TrafficAdvisory{
		Message:  "Traffic conditions should be normal",
		Severity: "low",
		Alternatives: []string{
			"Public transport available",
			"Consider walking for short distances",
		},
	}
}

func truncatePlaces(places []types.Place, limit int) []types.Place {
	if len(places) > limit {
		return places[:limit]
	}
	return places
}

func attractionsQuery(lat, lon float64) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["tourism"~"^(attraction|museum|gallery|zoo|theme_park)$"](around:10000,%f,%f);
  way["tourism"~"^(attraction|museum|gallery|zoo|theme_park)$"](around:10000,%f,%f);
);
out body;
>;
out skel qt;`, lat, lon, lat, lon)
}

func restaurantsQuery(lat, lon float64) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"="restaurant"](around:10000,%f,%f);
  way["amenity"="restaurant"](around:10000,%f,%f);
);
out body;
>;
out skel qt;`, lat, lon, lat, lon)
}

func pubsQuery(lat, lon float64) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"~"^(pub|bar|nightclub)$"](around:10000,%f,%f);
  way["amenity"~"^(pub|bar|nightclub)$"](around:10000,%f,%f);
);
out body;
>;
out skel qt;`, lat, lon, lat, lon)
}

func cinemasQuery(lat, lon float64) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"="cinema"](around:10000,%f,%f);
  way["amenity"="cinema"](around:10000,%f,%f);
);
out body;
>;
out skel qt;`, lat, lon, lat, lon)
}

func rentalPlacesQuery(lat, lon float64) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"~"^(bicycle_rental|car_rental)$"](around:10000,%f,%f);
  way["amenity"~"^(bicycle_rental|car_rental)$"](around:10000,%f,%f);
  node["shop"="bicycle"](around:10000,%f,%f);
  way["shop"="bicycle"](around:10000,%f,%f);
);
out body;
>;
out skel qt;`, lat, lon, lat, lon, lat, lon, lat, lon)
}

func metroStationsQuery(lat, lon float64) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["public_transport"="station"](around:10000,%f,%f);
  node["railway"="station"]["subway"="yes"](around:10000,%f,%f);
  node["railway"="station"]["station"="subway"](around:10000,%f,%f);
  way["public_transport"="station"](around:10000,%f,%f);
);
out body;
>;
out skel qt;`, lat, lon, lat, lon, lat, lon, lat, lon)
}
