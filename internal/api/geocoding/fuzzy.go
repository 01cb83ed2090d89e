package geocoding

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const minFuzzyMatchLength = 3

// fuzzySimilarity scores two strings in [0,1], 1 being identical, using
// normalized edit distance.
func fuzzySimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// rankFuzzyMatches orders display names by similarity of their first
// comma-segment to the input and returns up to three segments clearing the
// threshold. Inputs and segments shorter than three characters never match.
func rankFuzzyMatches(input string, displayNames []string, threshold float64) []string {
	if len(strings.TrimSpace(input)) < minFuzzyMatchLength {
		return []string{}
	}

	type scored struct {
		segment    string
		similarity float64
	}
	var matches []scored
	for _, name := range displayNames {
		segment := strings.TrimSpace(strings.SplitN(name, ",", 2)[0])
		if len(segment) < minFuzzyMatchLength {
			continue
		}
		if sim := fuzzySimilarity(input, segment); sim >= 1-threshold {
			matches = append(matches, scored{segment: segment, similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})

	suggestions := []string{}
	seen := map[string]bool{}
	for _, m := range matches {
		if seen[m.segment] {
			continue
		}
		seen[m.segment] = true
		suggestions = append(suggestions, m.segment)
		if len(suggestions) == 3 {
			break
		}
	}
	return suggestions
}
