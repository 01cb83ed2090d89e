// Package itinerary deterministically slots places and events into
// day-partitioned time blocks. Pure, no I/O.
package itinerary

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

type Service interface {
	Build(places *types.PlacesResult, events *types.EventsResult, visitDate, visitDateEnd string, ageGroup types.AgeGroup) []types.ItinerarySlot
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// Build emits up to four slots per day in the range. Attractions are
// consumed two per day, hidden gems, restaurants and pubs one per day.
// A slot is emitted only when it collected at least one activity; night
// slots additionally require the age rules to allow nightlife.
func (s *ServiceImpl) Build(places *types.PlacesResult, events *types.EventsResult, visitDate, visitDateEnd string, ageGroup types.AgeGroup) []types.ItinerarySlot {
	start, err := time.Parse("2006-01-02", visitDate)
	if err != nil {
		return nil
	}
	end := start
	if visitDateEnd != "" {
		if parsed, err := time.Parse("2006-01-02", visitDateEnd); err == nil && !parsed.Before(start) {
			end = parsed
		}
	}

	if places == nil {
		places = &types.PlacesResult{}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	rules := types.AgeRulesFor(ageGroup)

	var itinerary []types.ItinerarySlot
	for day := 0; day < days; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		dayEvents := eventsOn(events, date)
		attractionIndex := day * 2

		var morning []string
		if a, ok := placeAt(places.Attractions, attractionIndex); ok {
			morning = append(morning, "Visit "+a.Name)
		}
		if g, ok := placeAt(places.HiddenGems, day); ok {
			morning = append(morning, "Explore "+g.Name)
		}
		if len(morning) == 0 {
			if a, ok := placeAt(places.Attractions, 0); ok {
				morning = append(morning, "Visit "+a.Name)
			}
		}

		var afternoon []string
		if a, ok := placeAt(places.Attractions, attractionIndex+1); ok {
			afternoon = append(afternoon, "Visit "+a.Name)
		}
		if len(dayEvents) > 0 {
			afternoon = append(afternoon, formatEvent(dayEvents[0]))
		}
		if len(afternoon) == 0 {
			if a, ok := placeAt(places.Attractions, 1); ok {
				afternoon = append(afternoon, "Visit "+a.Name)
			}
		}

		var evening []string
		if r, ok := placeAt(places.Restaurants, day); ok {
			evening = append(evening, "Dine at "+r.Name)
		}
		if a, ok := placeAt(places.Attractions, attractionIndex+2); ok {
			evening = append(evening, "Visit "+a.Name)
		}

		var night []string
		if rules.IncludeNightlife {
			if p, ok := placeAt(places.Pubs, day); ok {
				night = append(night, "Enjoy nightlife at "+p.Name)
			}
		}

		if len(morning) > 0 {
			itinerary = append(itinerary, types.ItinerarySlot{
				Date:       date,
				Time:       types.TimeMorning,
				Activities: morning,
				Dining:     diningAt(places.Restaurants, "Local breakfast spot", day),
				TravelTime: "15-20 min walking",
			})
		}
		if len(afternoon) > 0 {
			itinerary = append(itinerary, types.ItinerarySlot{
				Date:       date,
				Time:       types.TimeAfternoon,
				Activities: afternoon,
				Dining:     diningAt(places.Restaurants, "Local lunch spot", day+1, 0),
				TravelTime: "20-30 min",
			})
		}
		if len(evening) > 0 {
			itinerary = append(itinerary, types.ItinerarySlot{
				Date:       date,
				Time:       types.TimeEvening,
				Activities: evening,
				Dining:     diningAt(places.Restaurants, "Local dinner spot", day+2, day),
				TravelTime: "10-15 min",
			})
		}
		if len(night) > 0 {
			itinerary = append(itinerary, types.ItinerarySlot{
				Date:       date,
				Time:       types.TimeNight,
				Activities: night,
				TravelTime: "10-15 min",
			})
		}
	}

	return itinerary
}

func placeAt(places []types.Place, index int) (types.Place, bool) {
	if index >= 0 && index < len(places) {
		return places[index], true
	}
	return types.Place{}, false
}

// diningAt tries each restaurant index in order, falling back to the
// placeholder when none resolve.
func diningAt(restaurants []types.Place, placeholder string, indexes ...int) string {
	for _, i := range indexes {
		if r, ok := placeAt(restaurants, i); ok {
			return r.Name
		}
	}
	return placeholder
}

func eventsOn(events *types.EventsResult, date string) []types.Event {
	if events == nil {
		return nil
	}
	var matched []types.Event
	for _, e := range events.Events {
		if normalizeDate(e.Date) == date {
			matched = append(matched, e)
		}
	}
	return matched
}

func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	if i := strings.IndexByte(raw, 'T'); i > 0 {
		raw = raw[:i]
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed.Format("2006-01-02")
	}
	return raw
}

func formatEvent(e types.Event) string {
	if e.Time != "" {
		return fmt.Sprintf("Attend: %s (%s)", e.Name, e.Time)
	}
	return "Attend: " + e.Name
}
