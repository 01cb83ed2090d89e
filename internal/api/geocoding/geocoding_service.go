package geocoding

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MdAdnan73/WanderMind-AI/app/observability/metrics"
	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// Provider is the external geocoding collaborator contract. It returns up
// to limit ranked matches, or an error on transport/parse failure.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]types.GeocodingCandidate, error)
}

// Service resolves a free-text place name to coordinates.
type Service interface {
	Resolve(ctx context.Context, placeName string) types.GeocodingResult
}

// ServiceImpl resolves through the curated city table first, then the
// provider, with a fuzzy-suggestion fallback. Results are memoized by
// lowercase-trimmed input for the lifetime of the service; the cache is
// safe for concurrent in-flight requests.
type ServiceImpl struct {
	logger         *slog.Logger
	provider       Provider
	cache          *cache.Cache
	fuzzyThreshold float64
}

func NewService(provider Provider, fuzzyThreshold float64, logger *slog.Logger) *ServiceImpl {
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = 0.4
	}
	return &ServiceImpl{
		logger:         logger,
		provider:       provider,
		cache:          cache.New(cache.NoExpiration, 0),
		fuzzyThreshold: fuzzyThreshold,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func (s *ServiceImpl) Resolve(ctx context.Context, placeName string) types.GeocodingResult {
	ctx, span := otel.Tracer("GeocodingService").Start(ctx, "Resolve", trace.WithAttributes(
		attribute.String("place.name", placeName),
	))
	defer span.End()

	l := s.logger.With(slog.String("service", "geocoding"), slog.String("place", placeName))

	cacheKey := strings.ToLower(strings.TrimSpace(placeName))
	if cached, found := s.cache.Get(cacheKey); found {
		metrics.Get().GeocodeCacheHitsTotal.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(types.GeocodingResult)
	}

	cleanPlaceName := whitespaceRe.ReplaceAllString(strings.TrimSpace(placeName), " ")

	// Curated table first: well-known cities never hit the network.
	if city := findCityByName(cleanPlaceName); city != nil {
		primary := types.GeocodingCandidate{
			Latitude:    city.Lat,
			Longitude:   city.Lon,
			DisplayName: curatedDisplayName(city),
			Importance:  0.9,
			PlaceID:     fmt.Sprintf("popular_%s", strings.ReplaceAll(strings.ToLower(city.Name), " ", "_")),
		}
		result := types.GeocodingResult{
			Candidates:  []types.GeocodingCandidate{primary},
			Primary:     &primary,
			Suggestions: []string{},
		}
		s.cache.Set(cacheKey, result, cache.NoExpiration)
		span.SetAttributes(attribute.Bool("curated.hit", true))
		return result
	}

	candidates, err := s.provider.Search(ctx, cleanPlaceName, 5)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Geocoding lookup failed")
		l.ErrorContext(ctx, "Geocoding lookup failed", slog.Any("error", err))
		return types.EmptyGeocodingResult()
	}

	if len(candidates) == 0 {
		suggestions := s.fuzzySuggestions(ctx, placeName)
		span.SetAttributes(attribute.Int("suggestions.count", len(suggestions)))
		return types.GeocodingResult{
			Candidates:  []types.GeocodingCandidate{},
			Primary:     nil,
			Suggestions: suggestions,
		}
	}

	// Exact substring matches of the query outrank raw importance.
	lowerClean := strings.ToLower(cleanPlaceName)
	sort.SliceStable(candidates, func(i, j int) bool {
		iExact := strings.Contains(strings.ToLower(candidates[i].DisplayName), lowerClean)
		jExact := strings.Contains(strings.ToLower(candidates[j].DisplayName), lowerClean)
		if iExact != jExact {
			return iExact
		}
		return candidates[i].Importance > candidates[j].Importance
	})

	result := types.GeocodingResult{
		Candidates:  candidates,
		Primary:     &candidates[0],
		Suggestions: []string{},
	}
	s.cache.Set(cacheKey, result, cache.NoExpiration)
	span.SetAttributes(attribute.Int("candidates.count", len(candidates)))
	return result
}

// fuzzySuggestions queries the provider more broadly and ranks the results
// by edit-distance similarity against the original input.
func (s *ServiceImpl) fuzzySuggestions(ctx context.Context, placeName string) []string {
	candidates, err := s.provider.Search(ctx, placeName, 10)
	if err != nil {
		s.logger.DebugContext(ctx, "Fuzzy suggestion lookup failed", slog.Any("error", err))
		return []string{}
	}
	if len(candidates) == 0 {
		return []string{}
	}

	displayNames := make([]string, 0, len(candidates))
	for _, c := range candidates {
		displayNames = append(displayNames, c.DisplayName)
	}
	return rankFuzzyMatches(placeName, displayNames, s.fuzzyThreshold)
}

func curatedDisplayName(city *cityEntry) string {
	if city.Country == "" {
		return city.Name
	}
	return city.Name + ", " + city.Country
}
