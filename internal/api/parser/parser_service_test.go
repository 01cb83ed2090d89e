package parser

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// MockTextGenerator is a mock implementation of the TextGenerator interface
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestExtractWithRules_TriggerPhrases(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPlace string
	}{
		{"going to", "I'm going to Paris, let's plan my trip", "Paris"},
		{"going to go to", "I am going to go to London next month", "London Next Month"},
		{"visiting", "We are visiting Tokyo, what should we see?", "Tokyo"},
		{"visit with stop word", "I want to visit Barcelona what are the attractions", "Barcelona"},
		{"multi word place", "I'm going to New York, help me plan", "New York"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := extractWithRules(tt.query)
			assert.Equal(t, tt.wantPlace, parsed.PlaceName)
			assert.InDelta(t, 0.7, parsed.Confidence, 0.001)
		})
	}
}

func TestExtractWithRules_FallbackPatterns(t *testing.T) {
	t.Run("Preposition pattern", func(t *testing.T) {
		parsed := extractWithRules("What's the weather in Tokyo?")
		assert.Equal(t, "Tokyo", parsed.PlaceName)
	})

	t.Run("Topic keyword suffix", func(t *testing.T) {
		parsed := extractWithRules("Paris weather")
		assert.Equal(t, "Paris", parsed.PlaceName)
	})

	t.Run("No place at all", func(t *testing.T) {
		parsed := extractWithRules("tell me something")
		assert.Empty(t, parsed.PlaceName)
		assert.InDelta(t, 0.3, parsed.Confidence, 0.001)
	})
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.Intent
	}{
		{"Plan keyword wins", "let's plan my trip to Rome", types.IntentFull},
		{"Weather and places means full", "weather and attractions in Rome", types.IntentFull},
		{"Weather only", "how cold is it in Oslo", types.IntentWeather},
		{"Places only", "tourist attractions in Lisbon", types.IntentPlaces},
		{"No keywords defaults to full", "I'm going to Madrid", types.IntentFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIntent(tt.query))
		})
	}
}

func TestCleanPlaceName(t *testing.T) {
	assert.Equal(t, "Paris", cleanPlaceName("paris."))
	assert.Equal(t, "New York", cleanPlaceName("new york what"))
	assert.Equal(t, "Hyderabad", cleanPlaceName("HYDERABAD,"))
	assert.Empty(t, cleanPlaceName("  "))
}

func TestExtract_UsesModelWhenAvailable(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.Anything).
		Return(`{"placeName": "Paris", "intent": "weather", "confidence": 0.95}`, nil)

	svc := NewService(testLogger(), gen)
	parsed := svc.Extract(ctx, "weather in Paris")

	assert.Equal(t, "Paris", parsed.PlaceName)
	assert.Equal(t, types.IntentWeather, parsed.Intent)
	assert.InDelta(t, 0.95, parsed.Confidence, 0.001)
	gen.AssertExpectations(t)
}

func TestExtract_ModelResponseWithMarkdownFences(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.Anything).
		Return("```json\n{\"placeName\": \"Tokyo\", \"intent\": \"full\"}\n```", nil)

	svc := NewService(testLogger(), gen)
	parsed := svc.Extract(ctx, "plan my trip to Tokyo")

	assert.Equal(t, "Tokyo", parsed.PlaceName)
	assert.Equal(t, types.IntentFull, parsed.Intent)
	// Confidence missing from the model defaults to 0.8
	assert.InDelta(t, 0.8, parsed.Confidence, 0.001)
}

func TestExtract_TriesNextGeneratorOnFailure(t *testing.T) {
	ctx := context.Background()
	broken := new(MockTextGenerator)
	broken.On("Generate", ctx, mock.Anything).Return("", errors.New("connection refused"))

	working := new(MockTextGenerator)
	working.On("Generate", ctx, mock.Anything).
		Return(`{"placeName": "Berlin", "intent": "places", "confidence": 0.9}`, nil)

	svc := NewService(testLogger(), broken, working)
	parsed := svc.Extract(ctx, "attractions in Berlin")

	assert.Equal(t, "Berlin", parsed.PlaceName)
	assert.Equal(t, types.IntentPlaces, parsed.Intent)
	broken.AssertExpectations(t)
	working.AssertExpectations(t)
}

func TestExtract_FallsBackToRulesWhenAllModelsFail(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("not json at all", nil)

	svc := NewService(testLogger(), gen)
	parsed := svc.Extract(ctx, "I'm going to Paris, let's plan my trip")

	assert.Equal(t, "Paris", parsed.PlaceName)
	assert.Equal(t, types.IntentFull, parsed.Intent)
	assert.InDelta(t, 0.7, parsed.Confidence, 0.001)
}

func TestExtract_RejectsModelOutputWithInvalidIntent(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.Anything).
		Return(`{"placeName": "Paris", "intent": "bogus"}`, nil)

	svc := NewService(testLogger(), gen)
	parsed := svc.Extract(ctx, "weather in Paris")

	// Falls through to rules, which classify weather.
	assert.Equal(t, types.IntentWeather, parsed.Intent)
	assert.Equal(t, "Paris", parsed.PlaceName)
}

func TestCleanJSONResponse(t *testing.T) {
	t.Run("Plain JSON untouched", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, cleanJSONResponse(`{"a":1}`))
	})

	t.Run("Surrounding prose stripped", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, cleanJSONResponse(`Here you go: {"a":1} hope that helps`))
	})

	t.Run("Markdown fences stripped", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, cleanJSONResponse("```json\n{\"a\":1}\n```"))
	})
}
