package geocoding

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// MockProvider is a mock implementation of the Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Search(ctx context.Context, query string, limit int) ([]types.GeocodingCandidate, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.GeocodingCandidate), args.Error(1)
}

func newTestService(provider Provider) *ServiceImpl {
	return NewService(provider, 0.4, slog.Default())
}

func TestResolve_CuratedCitySkipsProvider(t *testing.T) {
	provider := new(MockProvider)
	svc := newTestService(provider)

	result := svc.Resolve(context.Background(), "Paris")

	require.NotNil(t, result.Primary)
	assert.InDelta(t, 48.8566, result.Primary.Latitude, 0.0001)
	assert.InDelta(t, 2.3522, result.Primary.Longitude, 0.0001)
	assert.Equal(t, "Paris, France", result.Primary.DisplayName)
	assert.InDelta(t, 0.9, result.Primary.Importance, 0.001)
	assert.Equal(t, "popular_paris", result.Primary.PlaceID)
	assert.Empty(t, result.Suggestions)
	provider.AssertNotCalled(t, "Search")
}

func TestResolve_CuratedCityCaseInsensitive(t *testing.T) {
	provider := new(MockProvider)
	svc := newTestService(provider)

	result := svc.Resolve(context.Background(), "  LONDON  ")

	require.NotNil(t, result.Primary)
	assert.Equal(t, "London, United Kingdom", result.Primary.DisplayName)
	provider.AssertNotCalled(t, "Search")
}

func TestResolve_ProviderRanking(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Search", mock.Anything, "Springfield", 5).Return([]types.GeocodingCandidate{
		{DisplayName: "Somewhere Else", Importance: 0.95},
		{DisplayName: "Springfield, Illinois, USA", Importance: 0.5},
		{DisplayName: "Springfield, Missouri, USA", Importance: 0.7},
	}, nil)

	svc := newTestService(provider)
	result := svc.Resolve(context.Background(), "Springfield")

	require.NotNil(t, result.Primary)
	// Exact substring matches outrank higher importance, then sort by importance.
	assert.Equal(t, "Springfield, Missouri, USA", result.Primary.DisplayName)
	assert.Equal(t, "Springfield, Illinois, USA", result.Candidates[1].DisplayName)
	assert.Equal(t, "Somewhere Else", result.Candidates[2].DisplayName)
	assert.Empty(t, result.Suggestions)
	provider.AssertExpectations(t)
}

func TestResolve_MemoizesByNormalizedInput(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Search", mock.Anything, "Quahog", 5).Return([]types.GeocodingCandidate{
		{DisplayName: "Quahog, Rhode Island", Importance: 0.4},
	}, nil).Once()

	svc := newTestService(provider)

	first := svc.Resolve(context.Background(), "Quahog")
	second := svc.Resolve(context.Background(), "  quahog ")

	require.NotNil(t, first.Primary)
	require.NotNil(t, second.Primary)
	assert.Equal(t, first.Primary.DisplayName, second.Primary.DisplayName)
	provider.AssertExpectations(t)
	provider.AssertNumberOfCalls(t, "Search", 1)
}

func TestResolve_ProviderErrorDegradesToEmpty(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Search", mock.Anything, mock.Anything, 5).
		Return(nil, errors.New("network down"))

	svc := newTestService(provider)
	result := svc.Resolve(context.Background(), "Atlantis City")

	assert.Nil(t, result.Primary)
	assert.Empty(t, result.Candidates)
	assert.Empty(t, result.Suggestions)
}

func TestResolve_NoMatchesYieldsFuzzySuggestions(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Search", mock.Anything, "Pariis", 5).
		Return([]types.GeocodingCandidate{}, nil)
	provider.On("Search", mock.Anything, "Pariis", 10).
		Return([]types.GeocodingCandidate{
			{DisplayName: "Paris, Ile-de-France, France"},
			{DisplayName: "Parys, Free State, South Africa"},
			{DisplayName: "Llanfairpwllgwyngyll, Wales"},
		}, nil)

	svc := newTestService(provider)
	result := svc.Resolve(context.Background(), "Pariis")

	assert.Nil(t, result.Primary)
	assert.Contains(t, result.Suggestions, "Paris")
	assert.NotContains(t, result.Suggestions, "Llanfairpwllgwyngyll")
	assert.LessOrEqual(t, len(result.Suggestions), 3)
	provider.AssertExpectations(t)
}

func TestResolve_SuggestionPathNotCached(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Search", mock.Anything, "Nowhere Town", 5).
		Return([]types.GeocodingCandidate{}, nil).Twice()
	provider.On("Search", mock.Anything, "Nowhere Town", 10).
		Return([]types.GeocodingCandidate{}, nil).Twice()

	svc := newTestService(provider)
	svc.Resolve(context.Background(), "Nowhere Town")
	svc.Resolve(context.Background(), "Nowhere Town")

	provider.AssertExpectations(t)
}

func TestFindCityByName(t *testing.T) {
	t.Run("Direct key", func(t *testing.T) {
		city := findCityByName("paris")
		require.NotNil(t, city)
		assert.Equal(t, "Paris", city.Name)
	})

	t.Run("Substring containment", func(t *testing.T) {
		city := findCityByName("Paris France")
		require.NotNil(t, city)
		assert.Equal(t, "Paris", city.Name)
	})

	t.Run("Unknown place", func(t *testing.T) {
		assert.Nil(t, findCityByName("Unknownzzzplace123"))
	})
}

func TestRankFuzzyMatches(t *testing.T) {
	t.Run("Ranks by similarity and dedupes", func(t *testing.T) {
		names := []string{
			"Lisbon, Portugal",
			"Lisbon, Ohio, USA",
			"Lisburn, Northern Ireland",
		}
		got := rankFuzzyMatches("Lisbona", names, 0.4)
		require.NotEmpty(t, got)
		assert.Equal(t, "Lisbon", got[0])
		// The two Lisbon entries collapse into one suggestion.
		assert.LessOrEqual(t, len(got), 2)
	})

	t.Run("Short input never matches", func(t *testing.T) {
		assert.Empty(t, rankFuzzyMatches("ab", []string{"Abu Dhabi, UAE"}, 0.4))
	})
}

func TestFuzzySimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, fuzzySimilarity("Paris", "paris"), 0.001)
	assert.InDelta(t, 0.8, fuzzySimilarity("paris", "parij"), 0.001)
	assert.Zero(t, fuzzySimilarity("", "paris"))
}
