// Package trip composes query understanding, geocoding, provider fan-out,
// personalization and itinerary building into one request/response cycle.
package trip

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/MdAdnan73/WanderMind-AI/app/observability/metrics"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/geocoding"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/itinerary"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/parser"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/personalization"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/providers"
	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

const (
	errPlaceNotFound  = "I'm not sure this place exists."
	errProcessingFail = "An error occurred while processing your query. Please try again."
)

var (
	trailingPunctuationRe = regexp.MustCompile(`[.,!?;:]+$`)
	trailingCommonWordRe  = regexp.MustCompile(`(?i)\s+(what|where|when|how|let'?s|lets|plan|the|is|there|are|can|will|and|or)$`)
	whitespaceRe          = regexp.MustCompile(`\s+`)
)

// Service processes one tourism query end to end.
type Service interface {
	ProcessQuery(ctx context.Context, req types.QueryRequest) types.EnhancedTourismResponse
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger       *slog.Logger
	parser       parser.Service
	geocoder     geocoding.Service
	personalizer personalization.Service
	itinerary    itinerary.Service

	weather   providers.WeatherProvider
	places    providers.PlacesProvider
	events    providers.EventsProvider
	transport providers.TransportProvider
	rentals   providers.RentalProvider
	helplines providers.HelplineProvider
}

// Providers bundles the outbound collaborators for the fan-out step.
type Providers struct {
	Weather   providers.WeatherProvider
	Places    providers.PlacesProvider
	Events    providers.EventsProvider
	Transport providers.TransportProvider
	Rentals   providers.RentalProvider
	Helplines providers.HelplineProvider
}

func NewService(
	logger *slog.Logger,
	parserSvc parser.Service,
	geocoder geocoding.Service,
	personalizer personalization.Service,
	itinerarySvc itinerary.Service,
	p Providers,
) *ServiceImpl {
	return &ServiceImpl{
		logger:       logger,
		parser:       parserSvc,
		geocoder:     geocoder,
		personalizer: personalizer,
		itinerary:    itinerarySvc,
		weather:      p.Weather,
		places:       p.Places,
		events:       p.Events,
		transport:    p.Transport,
		rentals:      p.Rentals,
		helplines:    p.Helplines,
	}
}

// ProcessQuery runs extract -> resolve -> fan out -> personalize -> build
// itinerary. It never returns an error; failures are expressed through the
// response envelope.
func (s *ServiceImpl) ProcessQuery(ctx context.Context, req types.QueryRequest) (response types.EnhancedTourismResponse) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "ProcessQuery")
	defer span.End()

	requestID := uuid.New().String()
	l := s.logger.With(
		slog.String("service", "ProcessQuery"),
		slog.String("request_id", requestID),
	)

	start := time.Now()
	metrics.Get().QueryRequestsTotal.Add(ctx, 1)
	defer func() {
		metrics.Get().QueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "Panic while processing query", slog.Any("panic", r))
			span.SetStatus(codes.Error, "panic in query pipeline")
			response = types.EnhancedTourismResponse{
				Success:   false,
				RequestID: requestID,
				Error:     errProcessingFail,
			}
		}
	}()

	parsed := s.parser.Extract(ctx, req.QueryText)
	placeName := sanitizePlaceName(parsed.PlaceName)
	span.SetAttributes(
		attribute.String("query.place", placeName),
		attribute.String("query.intent", string(parsed.Intent)),
	)

	if len(placeName) < 2 {
		l.InfoContext(ctx, "No usable place name extracted", slog.String("query", req.QueryText))
		return types.EnhancedTourismResponse{
			Success:   false,
			RequestID: requestID,
			Error:     errPlaceNotFound,
		}
	}

	geo := s.geocoder.Resolve(ctx, placeName)
	if geo.Primary == nil {
		l.InfoContext(ctx, "Place did not resolve",
			slog.String("place", placeName),
			slog.Int("suggestions", len(geo.Suggestions)))
		return types.EnhancedTourismResponse{
			Success:   false,
			RequestID: requestID,
			Geocoding: &geo,
			Error:     errPlaceNotFound,
		}
	}

	endDate := req.VisitDateEnd
	if endDate == "" {
		endDate = req.VisitDate
	}

	gathered := s.fanOut(ctx, parsed.Intent, *geo.Primary, req.VisitDate, endDate, req.AgeGroup)

	filteredPlaces := s.personalizer.PersonalizePlaces(gathered.Places, req.AgeGroup, req.Personas)
	filteredEvents := s.personalizer.PersonalizeEvents(gathered.Events, req.AgeGroup)

	var plan []types.ItinerarySlot
	if parsed.Intent == types.IntentFull {
		plan = s.itinerary.Build(filteredPlaces, gathered.Events, req.VisitDate, endDate, req.AgeGroup)
	}

	l.InfoContext(ctx, "Query processed",
		slog.String("place", geo.Primary.DisplayName),
		slog.String("intent", string(parsed.Intent)),
		slog.Int("itinerary_slots", len(plan)))

	return types.EnhancedTourismResponse{
		Success:   true,
		RequestID: requestID,
		PlaceName: geo.Primary.DisplayName,
		Intent:    parsed.Intent,
		Geocoding: &geo,
		Weather:   gathered.Weather,
		Places:    filteredPlaces,
		Events:    filteredEvents,
		Transport: gathered.Transport,
		Rentals:   gathered.Rentals,
		Helplines: gathered.Helplines,
		Itinerary: plan,
	}
}

// sanitizePlaceName normalizes whitespace and strips trailing punctuation
// and a trailing query word regardless of which extraction path produced
// the name.
func sanitizePlaceName(placeName string) string {
	placeName = whitespaceRe.ReplaceAllString(strings.TrimSpace(placeName), " ")
	placeName = strings.TrimSpace(trailingPunctuationRe.ReplaceAllString(placeName, ""))
	placeName = strings.TrimSpace(trailingCommonWordRe.ReplaceAllString(placeName, ""))
	return placeName
}
