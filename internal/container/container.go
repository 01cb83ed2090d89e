package container

import (
	"context"
	"log/slog"

	"github.com/MdAdnan73/WanderMind-AI/config"
	generativeAI "github.com/MdAdnan73/WanderMind-AI/internal/api/generative_ai"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/geocoding"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/itinerary"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/parser"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/personalization"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/providers"
	"github.com/MdAdnan73/WanderMind-AI/internal/api/trip"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *slog.Logger
	TripHandler *trip.HandlerImpl
}

// NewContainer initializes and returns a new dependency container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	// LLM collaborators are optional; the parser falls back to rules when
	// none are configured.
	var generators []parser.TextGenerator
	if gemini, err := generativeAI.NewAIClient(ctx); err != nil {
		logger.Warn("Gemini client unavailable, continuing without it", slog.Any("error", err))
	} else {
		generators = append(generators, gemini)
	}
	if openAI := generativeAI.NewOpenAIClient(cfg.LLM.OpenAIURL, cfg.LLM.OpenAIModel); openAI.Configured() {
		generators = append(generators, openAI)
	}

	nominatim := providers.NewNominatimClient(cfg.Providers.NominatimURL)
	overpass := providers.NewOverpassClient(cfg.Providers.OverpassURL)

	parserService := parser.NewService(logger, generators...)
	geocodingService := geocoding.NewService(nominatim, cfg.Geocoding.FuzzyThreshold, logger)
	personalizationService := personalization.NewService(logger)
	itineraryService := itinerary.NewService(logger)

	tripService := trip.NewService(
		logger,
		parserService,
		geocodingService,
		personalizationService,
		itineraryService,
		trip.Providers{
			Weather:   providers.NewOpenMeteoClient(cfg.Providers.OpenMeteoURL),
			Places:    overpass,
			Events:    providers.NewEventbriteClient(cfg.Providers.EventbriteURL, cfg.Providers.EventbriteKey),
			Transport: overpass,
			Rentals:   overpass,
			Helplines: providers.NewHelplineService(nominatim),
		},
	)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		TripHandler: trip.NewHandlerImpl(tripService, logger),
	}, nil
}
