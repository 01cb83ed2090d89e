package types

// GeocodingCandidate is one ranked match for a place name.
type GeocodingCandidate struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
	Importance  float64 `json:"importance"`
	PlaceID     string  `json:"placeId"`
}

// GeocodingResult carries the ranked candidates, the chosen primary, and
// fuzzy suggestions. Primary and suggestions are mutually exclusive: a
// resolved primary never carries suggestions.
type GeocodingResult struct {
	Candidates  []GeocodingCandidate `json:"candidates"`
	Primary     *GeocodingCandidate  `json:"primary"`
	Suggestions []string             `json:"suggestions"`
}

// EmptyGeocodingResult is the degraded value returned on any lookup failure.
func EmptyGeocodingResult() GeocodingResult {
	return GeocodingResult{
		Candidates:  []GeocodingCandidate{},
		Primary:     nil,
		Suggestions: []string{},
	}
}
