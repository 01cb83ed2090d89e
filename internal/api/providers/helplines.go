package providers

import (
	"context"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// emergencyNumbers is the static per-country helpline table, keyed by
// uppercase ISO country code.
var emergencyNumbers = map[string][]types.Helpline{
	"US": {
		{Name: "Emergency", Number: "911", Type: "emergency"},
		{Name: "Police", Number: "911", Type: "police"},
		{Name: "Medical", Number: "911", Type: "medical"},
		{Name: "Fire", Number: "911", Type: "fire"},
	},
	"IN": {
		{Name: "Emergency", Number: "112", Type: "emergency"},
		{Name: "Police", Number: "100", Type: "police"},
		{Name: "Medical", Number: "102", Type: "medical"},
		{Name: "Fire", Number: "101", Type: "fire"},
	},
	"GB": {
		{Name: "Emergency", Number: "999", Type: "emergency"},
		{Name: "Police", Number: "999", Type: "police"},
		{Name: "Medical", Number: "999", Type: "medical"},
		{Name: "Fire", Number: "999", Type: "fire"},
	},
	"FR": {
		{Name: "Emergency", Number: "112", Type: "emergency"},
		{Name: "Police", Number: "17", Type: "police"},
		{Name: "Medical", Number: "15", Type: "medical"},
		{Name: "Fire", Number: "18", Type: "fire"},
	},
	"DE": {
		{Name: "Emergency", Number: "112", Type: "emergency"},
		{Name: "Police", Number: "110", Type: "police"},
		{Name: "Medical", Number: "112", Type: "medical"},
		{Name: "Fire", Number: "112", Type: "fire"},
	},
	"JP": {
		{Name: "Emergency", Number: "110", Type: "emergency"},
		{Name: "Police", Number: "110", Type: "police"},
		{Name: "Medical", Number: "119", Type: "medical"},
		{Name: "Fire", Number: "119", Type: "fire"},
	},
	"CN": {
		{Name: "Emergency", Number: "110", Type: "emergency"},
		{Name: "Police", Number: "110", Type: "police"},
		{Name: "Medical", Number: "120", Type: "medical"},
		{Name: "Fire", Number: "119", Type: "fire"},
	},
	"AU": {
		{Name: "Emergency", Number: "000", Type: "emergency"},
		{Name: "Police", Number: "000", Type: "police"},
		{Name: "Medical", Number: "000", Type: "medical"},
		{Name: "Fire", Number: "000", Type: "fire"},
	},
}

// reverseGeocoder resolves coordinates to an uppercase country code.
type reverseGeocoder interface {
	ReverseCountryCode(ctx context.Context, lat, lon float64) (string, error)
}

// HelplineService serves emergency numbers from the static table, detecting
// the country by reverse geocoding and defaulting to US.
type HelplineService struct {
	geocoder reverseGeocoder
}

func NewHelplineService(geocoder reverseGeocoder) *HelplineService {
	return &HelplineService{geocoder: geocoder}
}

func (s *HelplineService) GetHelplines(ctx context.Context, lat, lon float64) (*types.HelplineResult, error) {
	country := "US"
	if s.geocoder != nil {
		if code, err := s.geocoder.ReverseCountryCode(ctx, lat, lon); err == nil && code != "" {
			country = code
		}
	}

	base, ok := emergencyNumbers[country]
	if !ok {
		base = emergencyNumbers["US"]
	}

	helplines := make([]types.Helpline, 0, len(base)+1)
	helplines = append(helplines, base...)
	helplines = append(helplines, types.Helpline{
		Name:        "Tourism Helpline",
		Number:      "Check local tourism office",
		Type:        "tourism",
		Description: "Contact local tourism information center for assistance",
	})

	return &types.HelplineResult{
		Helplines: helplines,
		Country:   country,
		HasData:   len(helplines) > 0,
	}, nil
}
