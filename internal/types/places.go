package types

// PlaceCategory partitions provider records for downstream scheduling.
type PlaceCategory string

const (
	CategoryAttraction PlaceCategory = "attraction"
	CategoryHiddenGem  PlaceCategory = "hidden-gem"
	CategoryRestaurant PlaceCategory = "restaurant"
	CategoryPub        PlaceCategory = "pub"
	CategoryCinema     PlaceCategory = "cinema"
	CategoryRental     PlaceCategory = "rental"
)

// Place is a named, geolocated record coming from a places provider.
// Category hidden-gem vs attraction is derived during aggregation
// (popularity below 0.5), not by the provider.
type Place struct {
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Category     PlaceCategory `json:"category"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	Description  string        `json:"description,omitempty"`
	Cuisine      string        `json:"cuisine,omitempty"`
	OpeningHours string        `json:"openingHours,omitempty"`
	Contact      string        `json:"contact,omitempty"`
	Popularity   float64       `json:"popularity,omitempty"`
}

// PlacesResult is the category-partitioned payload of the places provider.
type PlacesResult struct {
	Attractions []Place `json:"attractions"`
	HiddenGems  []Place `json:"hiddenGems"`
	Restaurants []Place `json:"restaurants"`
	Pubs        []Place `json:"pubs"`
	Cinemas     []Place `json:"cinemas"`
	Rentals     []Place `json:"rentals"`
	PlaceName   string  `json:"placeName"`
}
