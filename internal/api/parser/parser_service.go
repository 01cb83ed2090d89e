package parser

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// TextGenerator is the language-model collaborator contract. Implementations
// return the raw model text or an error; the parser treats any error as a
// signal to try the next generator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service extracts a place name and intent from free-form query text.
type Service interface {
	Extract(ctx context.Context, query string) types.ParsedInput
}

// ServiceImpl tries each configured language model in preference order and
// falls back to deterministic rules. Extract never fails.
type ServiceImpl struct {
	logger     *slog.Logger
	generators []TextGenerator
}

func NewService(logger *slog.Logger, generators ...TextGenerator) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		generators: generators,
	}
}

func (s *ServiceImpl) Extract(ctx context.Context, query string) types.ParsedInput {
	ctx, span := otel.Tracer("ParserService").Start(ctx, "Extract", trace.WithAttributes(
		attribute.Int("query.length", len(query)),
	))
	defer span.End()

	l := s.logger.With(slog.String("service", "parser"))

	prompt := getIntentExtractionPrompt(query)
	for i, g := range s.generators {
		parsed, ok := s.extractWithModel(ctx, g, prompt)
		if !ok {
			continue
		}
		span.SetAttributes(
			attribute.String("parse.path", "llm"),
			attribute.Int("parse.generator", i),
			attribute.String("parse.intent", string(parsed.Intent)),
		)
		l.DebugContext(ctx, "Query parsed via language model",
			slog.Int("generator", i),
			slog.String("place", parsed.PlaceName),
			slog.String("intent", string(parsed.Intent)))
		return parsed
	}

	parsed := extractWithRules(query)
	span.SetAttributes(
		attribute.String("parse.path", "rules"),
		attribute.String("parse.intent", string(parsed.Intent)),
	)
	l.DebugContext(ctx, "Query parsed via rules",
		slog.String("place", parsed.PlaceName),
		slog.String("intent", string(parsed.Intent)))
	return parsed
}

// extractWithModel runs one generator and validates its JSON. Any failure
// (transport, malformed JSON, missing fields) reports not-ok so the chain
// can move on.
func (s *ServiceImpl) extractWithModel(ctx context.Context, g TextGenerator, prompt string) (types.ParsedInput, bool) {
	txt, err := g.Generate(ctx, prompt)
	if err != nil {
		s.logger.DebugContext(ctx, "Language model unavailable for parsing", slog.Any("error", err))
		return types.ParsedInput{}, false
	}

	cleaned := cleanJSONResponse(txt)
	var parsed types.ParsedInput
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		s.logger.DebugContext(ctx, "Failed to parse model response JSON", slog.Any("error", err))
		return types.ParsedInput{}, false
	}

	parsed.PlaceName = strings.TrimSpace(parsed.PlaceName)
	if parsed.PlaceName == "" || !parsed.Intent.Valid() {
		return types.ParsedInput{}, false
	}
	if parsed.Confidence == 0 {
		parsed.Confidence = 0.8
	}
	return parsed, true
}

// cleanJSONResponse strips markdown fences and surrounding prose, keeping the
// first balanced-looking JSON object in the model output.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}
	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response
	}
	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}
