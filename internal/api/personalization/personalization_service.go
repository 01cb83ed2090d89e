// Package personalization filters aggregated place and event data by
// age-group rules and travel personas. All filtering is pure, no I/O.
package personalization

import (
	"log/slog"
	"strings"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

// Service reshapes provider payloads for a user profile.
type Service interface {
	PersonalizePlaces(places *types.PlacesResult, ageGroup types.AgeGroup, personas []types.TravelPersona) *types.PlacesResult
	PersonalizeEvents(events *types.EventsResult, ageGroup types.AgeGroup) *types.EventsResult
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// PersonalizePlaces applies the age-rule table first, then a persona
// overlay. Personas are checked in a fixed precedence: Family, then
// Budget, then Luxury; the first selected persona governs.
func (s *ServiceImpl) PersonalizePlaces(places *types.PlacesResult, ageGroup types.AgeGroup, personas []types.TravelPersona) *types.PlacesResult {
	if places == nil {
		return nil
	}

	rules := types.AgeRulesFor(ageGroup)
	filtered := *places

	if !rules.IncludeNightlife {
		filtered.Pubs = []types.Place{}
	}

	if rules.ChildFriendly {
		attractions := make([]types.Place, 0, len(filtered.Attractions))
		for _, p := range filtered.Attractions {
			if !strings.Contains(strings.ToLower(p.Type), "adult") {
				attractions = append(attractions, p)
			}
		}
		filtered.Attractions = attractions
	}

	switch {
	case hasPersona(personas, types.PersonaFamily):
		filtered.Pubs = []types.Place{}
		restaurants := make([]types.Place, 0, len(filtered.Restaurants))
		for _, p := range filtered.Restaurants {
			if !strings.Contains(strings.ToLower(p.Cuisine), "bar") {
				restaurants = append(restaurants, p)
			}
		}
		filtered.Restaurants = restaurants
	case hasPersona(personas, types.PersonaBudget):
		if len(filtered.Attractions) > 5 {
			filtered.Attractions = filtered.Attractions[:5]
		}
	case hasPersona(personas, types.PersonaLuxury):
		// Reserved for future ranking.
	}

	return &filtered
}

// PersonalizeEvents drops nightlife and party events when the age rules
// exclude nightlife.
func (s *ServiceImpl) PersonalizeEvents(events *types.EventsResult, ageGroup types.AgeGroup) *types.EventsResult {
	if events == nil {
		return nil
	}

	rules := types.AgeRulesFor(ageGroup)
	if rules.IncludeNightlife {
		return events
	}

	filtered := *events
	kept := make([]types.Event, 0, len(filtered.Events))
	for _, e := range filtered.Events {
		category := strings.ToLower(e.Category)
		name := strings.ToLower(e.Name)
		if strings.Contains(category, "nightlife") || strings.Contains(name, "party") {
			continue
		}
		kept = append(kept, e)
	}
	filtered.Events = kept
	return &filtered
}

func hasPersona(personas []types.TravelPersona, want types.TravelPersona) bool {
	for _, p := range personas {
		if p == want {
			return true
		}
	}
	return false
}
