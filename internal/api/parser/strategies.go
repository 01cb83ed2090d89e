package parser

import (
	"regexp"
	"strings"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// A strategy inspects the raw query and either yields a place-name fragment
// or passes. Strategies are pure and tried in declaration order; the first
// hit wins.
type strategy func(query string) (string, bool)

var strategies = []strategy{
	extractAfterTriggerPhrase,
	extractAfterPreposition,
	extractBeforeTopicKeyword,
	extractAfterTriggerToken,
}

// Trigger phrases checked in priority order; "going to go to" must be tested
// before its substring "going to".
var triggerPhrases = []string{"going to go to", "going to", "visiting", " visit "}

// Captures text after a trigger phrase up to a comma, period, question mark
// or stop word.
var afterTriggerRe = regexp.MustCompile(`(?i)^([^,.?]+?)(?:\s*[,.]|\s+(?:what|where|when|how|let'?s|lets|plan|is|there|are|can|will|the)|\s*$)`)

var prepositionRe = regexp.MustCompile(`(?i)(?:in|at|to|near|around)\s+([a-zA-Z\s]+?)(?:\s|,|\.|$|\?|what|where)`)

var topicKeywordRe = regexp.MustCompile(`(?i)([a-zA-Z\s]+?)\s+(?:weather|temperature|temp|places|attractions)`)

var trailingPunctRe = regexp.MustCompile(`[.,!?;:]+$`)

var trailingStopWordRe = regexp.MustCompile(`(?i)\s+(what|where|when|how|let'?s|lets|plan|the|is|there|are|can|will|and|or)$`)

var punctRe = regexp.MustCompile(`[.,!?]`)

var multiSpaceRe = regexp.MustCompile(`\s+`)

// Words that can never be part of a place name in the token-scan fallback.
var commonWords = map[string]bool{
	"what": true, "where": true, "when": true, "how": true, "tell": true,
	"me": true, "about": true, "the": true, "and": true, "or": true,
	"but": true, "can": true, "will": true, "should": true, "plan": true,
	"my": true, "trip": true, "going": true, "to": true, "go": true,
	"am": true, "i": true, "is": true, "are": true, "lets": true,
	"let's": true, "a": true, "an": true, "there": true, "visiting": true,
	"visit": true,
}

func extractAfterTriggerPhrase(query string) (string, bool) {
	lower := strings.ToLower(query)
	for _, trigger := range triggerPhrases {
		idx := strings.Index(lower, trigger)
		if idx == -1 {
			continue
		}
		after := strings.TrimSpace(query[idx+len(trigger):])
		if m := afterTriggerRe.FindStringSubmatch(after); m != nil {
			place := strings.TrimSpace(m[1])
			if place != "" {
				return place, true
			}
		}
	}
	return "", false
}

func extractAfterPreposition(query string) (string, bool) {
	if m := prepositionRe.FindStringSubmatch(query); m != nil {
		place := strings.TrimSpace(punctRe.ReplaceAllString(m[1], ""))
		place = multiSpaceRe.ReplaceAllString(place, " ")
		if len(place) > 1 {
			return place, true
		}
	}
	return "", false
}

func extractBeforeTopicKeyword(query string) (string, bool) {
	if m := topicKeywordRe.FindStringSubmatch(query); m != nil {
		place := strings.TrimSpace(punctRe.ReplaceAllString(m[1], ""))
		place = multiSpaceRe.ReplaceAllString(place, " ")
		if len(place) > 1 {
			return place, true
		}
	}
	return "", false
}

// extractAfterTriggerToken scans token by token: once a trigger word is seen,
// it collects the following run of tokens longer than two characters that are
// not common words, stopping at the first common word after the run begins.
func extractAfterTriggerToken(query string) (string, bool) {
	words := strings.Fields(query)
	var collected []string
	foundTrigger := false

	for _, raw := range words {
		word := strings.ToLower(punctRe.ReplaceAllString(raw, ""))
		if word == "going" || word == "to" || word == "visiting" || word == "visit" {
			foundTrigger = true
			continue
		}
		if !foundTrigger {
			continue
		}
		if len(word) > 2 && !commonWords[word] {
			collected = append(collected, word)
		} else if len(collected) > 0 && commonWords[word] {
			break
		}
	}

	if len(collected) == 0 {
		return "", false
	}
	return strings.Join(collected, " "), true
}

// cleanPlaceName strips trailing punctuation and trailing stop words, then
// title-cases each token.
func cleanPlaceName(place string) string {
	place = strings.TrimSpace(place)
	place = trailingPunctRe.ReplaceAllString(place, "")
	place = strings.TrimSpace(trailingStopWordRe.ReplaceAllString(place, ""))
	if place == "" {
		return ""
	}
	tokens := strings.Fields(place)
	for i, tok := range tokens {
		tokens[i] = strings.ToUpper(tok[:1]) + strings.ToLower(tok[1:])
	}
	return strings.Join(tokens, " ")
}

var weatherKeywords = []string{"weather", "temperature", "temp", "rain", "precipitation", "forecast", "hot", "cold"}

var placesKeywords = []string{"places", "attractions", "visit", "see", "tourist", "sightseeing", "things to do", "where to go"}

var planKeywords = []string{"plan", "planning", "itinerary", "trip", "let's plan", "lets plan", "help me plan"}

func containsAny(haystack string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}

// classifyIntent applies the keyword decision table. Defaults to full
// planning when nothing matches.
func classifyIntent(query string) types.Intent {
	lower := strings.ToLower(query)

	hasWeather := containsAny(lower, weatherKeywords)
	hasPlaces := containsAny(lower, placesKeywords)
	hasPlan := containsAny(lower, planKeywords)

	switch {
	case hasPlan || (hasWeather && hasPlaces):
		return types.IntentFull
	case hasWeather && !hasPlaces:
		return types.IntentWeather
	case hasPlaces && !hasWeather:
		return types.IntentPlaces
	case hasWeather && hasPlaces:
		// Shadowed by the first case; retained so the table reads in full.
		return types.IntentBoth
	default:
		return types.IntentFull
	}
}

// extractWithRules is the deterministic fallback when no language model is
// reachable. It never fails; an empty place name simply lowers confidence.
func extractWithRules(query string) types.ParsedInput {
	var place string
	for _, s := range strategies {
		if candidate, ok := s(query); ok {
			place = cleanPlaceName(candidate)
			if place != "" {
				break
			}
		}
	}

	confidence := 0.3
	if place != "" {
		confidence = 0.7
	}

	return types.ParsedInput{
		PlaceName:  place,
		Intent:     classifyIntent(query),
		Confidence: confidence,
	}
}
