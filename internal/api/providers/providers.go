// Package providers holds the outbound data-provider collaborators. Every
// provider speaks the same shape of contract: coordinates plus request
// context in, a typed result or an error out. Errors are isolated by the
// orchestrator's fan-out; a failing provider degrades its response field to
// null instead of failing the request.
package providers

import (
	"context"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

type WeatherProvider interface {
	GetWeatherSafety(ctx context.Context, lat, lon float64, placeName, visitDate string, ageGroup types.AgeGroup) (*types.WeatherSafetyResult, error)
}

type PlacesProvider interface {
	GetPlaces(ctx context.Context, lat, lon float64, placeName string) (*types.PlacesResult, error)
}

type EventsProvider interface {
	GetEvents(ctx context.Context, lat, lon float64, placeName, startDate, endDate string) (*types.EventsResult, error)
}

type TransportProvider interface {
	GetTransport(ctx context.Context, lat, lon float64, placeName, visitDate string) (*types.TransportResult, error)
}

type RentalProvider interface {
	GetRentals(ctx context.Context, lat, lon float64, placeName string) (*types.RentalResult, error)
}

type HelplineProvider interface {
	GetHelplines(ctx context.Context, lat, lon float64) (*types.HelplineResult, error)
}
