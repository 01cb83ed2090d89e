package types

// TimeOfDay is an itinerary slot bucket.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// ItinerarySlot is one scheduled entry for a specific date and time bucket.
// Built fresh per request, never persisted.
type ItinerarySlot struct {
	Date       string    `json:"date"`
	Time       TimeOfDay `json:"time"`
	Activities []string  `json:"activities"`
	Dining     string    `json:"dining,omitempty"`
	TravelTime string    `json:"travelTime,omitempty"`
}

// QueryRequest is the caller-facing request body for /api/v1/query.
type QueryRequest struct {
	QueryText    string          `json:"queryText"`
	AgeGroup     AgeGroup        `json:"ageGroup"`
	VisitDate    string          `json:"visitDate"`
	VisitDateEnd string          `json:"visitDateEnd,omitempty"`
	Personas     []TravelPersona `json:"personas,omitempty"`
}

// EnhancedTourismResponse is the unified result envelope. Immutable once
// constructed. On failure only Success, Error and possibly Geocoding
// (for suggestions) are populated.
type EnhancedTourismResponse struct {
	Success   bool                 `json:"success"`
	RequestID string               `json:"requestId,omitempty"`
	PlaceName string               `json:"placeName,omitempty"`
	Intent    Intent               `json:"intent,omitempty"`
	Geocoding *GeocodingResult     `json:"geocoding,omitempty"`
	Weather   *WeatherSafetyResult `json:"weather"`
	Places    *PlacesResult        `json:"places"`
	Events    *EventsResult        `json:"events"`
	Transport *TransportResult     `json:"transport"`
	Rentals   *RentalResult        `json:"rentals"`
	Helplines *HelplineResult      `json:"helplines"`
	Itinerary []ItinerarySlot      `json:"itinerary,omitempty"`
	Error     string               `json:"error,omitempty"`
}
