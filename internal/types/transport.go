package types

type MetroStation struct {
	Name      string  `json:"name"`
	Line      string  `json:"line,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type TrafficAdvisory struct {
	Message       string   `json:"message"`
	Severity      string   `json:"severity"` // low, medium, high
	RushHourTimes string   `json:"rushHourTimes,omitempty"`
	Alternatives  []string `json:"alternatives"`
}

type TransportResult struct {
	MetroStations   []MetroStation   `json:"metroStations"`
	TrafficAdvisory *TrafficAdvisory `json:"trafficAdvisory"`
	PlaceName       string           `json:"placeName"`
	HasData         bool             `json:"hasData"`
}

type Rental struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"` // bicycle or car
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Contact        string  `json:"contact,omitempty"`
	Website        string  `json:"website,omitempty"`
	EstimatedPrice string  `json:"estimatedPrice,omitempty"`
}

type RentalResult struct {
	Rentals   []Rental `json:"rentals"`
	PlaceName string   `json:"placeName"`
	HasData   bool     `json:"hasData"`
}

type Helpline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Type        string `json:"type"` // emergency, police, medical, fire, tourism
	Description string `json:"description,omitempty"`
}

type HelplineResult struct {
	Helplines []Helpline `json:"helplines"`
	Country   string     `json:"country"`
	HasData   bool       `json:"hasData"`
}
