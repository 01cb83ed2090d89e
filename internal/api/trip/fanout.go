package trip

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/MdAdnan73/WanderMind-AI/app/observability/metrics"
	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// fanoutResult carries the settled payloads of one provider fan-out. A
// branch that failed or was skipped for the intent leaves its field nil.
type fanoutResult struct {
	Weather   *types.WeatherSafetyResult
	Places    *types.PlacesResult
	Events    *types.EventsResult
	Transport *types.TransportResult
	Rentals   *types.RentalResult
	Helplines *types.HelplineResult
}

// fanOut issues the provider calls selected by the intent concurrently and
// joins all of them. Branch failures degrade to nil fields; fanOut itself
// never fails.
func (s *ServiceImpl) fanOut(ctx context.Context, intent types.Intent, primary types.GeocodingCandidate, visitDate, endDate string, ageGroup types.AgeGroup) fanoutResult {
	lat, lon := primary.Latitude, primary.Longitude
	displayName := primary.DisplayName

	wantWeather := intent == types.IntentWeather || intent == types.IntentBoth || intent == types.IntentFull
	wantPlaces := intent == types.IntentPlaces || intent == types.IntentBoth || intent == types.IntentFull
	wantFull := intent == types.IntentFull

	var result fanoutResult
	g, gctx := errgroup.WithContext(ctx)

	if wantWeather {
		g.Go(func() error {
			result.Weather = settle(gctx, s.logger, "weather", func() (*types.WeatherSafetyResult, error) {
				return s.weather.GetWeatherSafety(gctx, lat, lon, displayName, visitDate, ageGroup)
			})
			return nil
		})
	}
	if wantPlaces {
		g.Go(func() error {
			result.Places = settle(gctx, s.logger, "places", func() (*types.PlacesResult, error) {
				return s.places.GetPlaces(gctx, lat, lon, displayName)
			})
			return nil
		})
	}
	if wantFull {
		g.Go(func() error {
			result.Events = settle(gctx, s.logger, "events", func() (*types.EventsResult, error) {
				return s.events.GetEvents(gctx, lat, lon, displayName, visitDate, endDate)
			})
			return nil
		})
		g.Go(func() error {
			result.Transport = settle(gctx, s.logger, "transport", func() (*types.TransportResult, error) {
				return s.transport.GetTransport(gctx, lat, lon, displayName, visitDate)
			})
			return nil
		})
		g.Go(func() error {
			result.Rentals = settle(gctx, s.logger, "rentals", func() (*types.RentalResult, error) {
				return s.rentals.GetRentals(gctx, lat, lon, displayName)
			})
			return nil
		})
		g.Go(func() error {
			result.Helplines = settle(gctx, s.logger, "helplines", func() (*types.HelplineResult, error) {
				return s.helplines.GetHelplines(gctx, lat, lon)
			})
			return nil
		})
	}

	// Branches always return nil; Wait only joins them.
	_ = g.Wait()
	return result
}

// settle runs one provider call, records call and error metrics, and
// converts a failure into a nil payload.
func settle[T any](ctx context.Context, logger *slog.Logger, provider string, call func() (*T, error)) *T {
	attrs := metric.WithAttributes(attribute.String("provider", provider))
	metrics.Get().ProviderCallsTotal.Add(ctx, 1, attrs)

	payload, err := call()
	if err != nil {
		metrics.Get().ProviderErrorsTotal.Add(ctx, 1, attrs)
		logger.WarnContext(ctx, "Provider call failed, degrading to empty result",
			slog.String("provider", provider),
			slog.Any("error", err))
		return nil
	}
	return payload
}
