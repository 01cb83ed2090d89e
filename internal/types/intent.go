package types

// Intent is the category of information a query asks for.
type Intent string

const (
	IntentWeather Intent = "weather"
	IntentPlaces  Intent = "places"
	IntentBoth    Intent = "both"
	IntentFull    Intent = "full"
)

// Valid reports whether the intent is one of the four known values.
func (i Intent) Valid() bool {
	switch i {
	case IntentWeather, IntentPlaces, IntentBoth, IntentFull:
		return true
	}
	return false
}

// ParsedInput is the outcome of query understanding. Confidence is advisory
// only; nothing downstream gates on it.
type ParsedInput struct {
	PlaceName  string  `json:"placeName"`
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}
