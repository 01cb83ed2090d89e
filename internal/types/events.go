package types

// Event is a dated happening near the resolved place.
type Event struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"` // YYYY-MM-DD after normalization
	Time        string `json:"time,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Category    string `json:"category,omitempty"`
	URL         string `json:"url,omitempty"`
}

type EventsResult struct {
	Events    []Event `json:"events"`
	PlaceName string  `json:"placeName"`
	HasData   bool    `json:"hasData"`
	Source    string  `json:"source"`
}
