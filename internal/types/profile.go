package types

// AgeGroup buckets used for personalization rules.
type AgeGroup string

const (
	AgeGroupUnder18 AgeGroup = "under-18"
	AgeGroup18To25  AgeGroup = "18-25"
	AgeGroup26To40  AgeGroup = "26-40"
	AgeGroup41To60  AgeGroup = "41-60"
	AgeGroup60Plus  AgeGroup = "60+"
)

// TravelPersona is a caller-selected travel style.
type TravelPersona string

const (
	PersonaAdventure TravelPersona = "Adventure"
	PersonaFamily    TravelPersona = "Family"
	PersonaRomantic  TravelPersona = "Romantic"
	PersonaParty     TravelPersona = "Party"
	PersonaBudget    TravelPersona = "Budget"
	PersonaLuxury    TravelPersona = "Luxury"
)

// UserProfile is passed by value into the orchestrator on every request.
// There is no ambient per-user state; persistence, if ever needed, would be
// an injected repository collaborator.
type UserProfile struct {
	AgeGroup     AgeGroup        `json:"ageGroup"`
	VisitDate    string          `json:"visitDate"` // YYYY-MM-DD
	VisitDateEnd string          `json:"visitDateEnd,omitempty"`
	Personas     []TravelPersona `json:"personas,omitempty"`
}

// AgeBasedRules drive place/event filtering and the night itinerary slot.
type AgeBasedRules struct {
	IncludeNightlife  bool
	IncludeAdventure  bool
	PrioritizeComfort bool
	ChildFriendly     bool
}

// AgeRulesFor returns the filtering rules for an age group. Unknown or empty
// groups get the most permissive rules.
func AgeRulesFor(ageGroup AgeGroup) AgeBasedRules {
	switch ageGroup {
	case AgeGroupUnder18:
		return AgeBasedRules{
			IncludeNightlife:  false,
			IncludeAdventure:  true,
			PrioritizeComfort: false,
			ChildFriendly:     true,
		}
	case AgeGroup18To25, AgeGroup26To40:
		return AgeBasedRules{
			IncludeNightlife:  true,
			IncludeAdventure:  true,
			PrioritizeComfort: false,
			ChildFriendly:     false,
		}
	case AgeGroup41To60, AgeGroup60Plus:
		return AgeBasedRules{
			IncludeNightlife:  false,
			IncludeAdventure:  false,
			PrioritizeComfort: true,
			ChildFriendly:     false,
		}
	default:
		return AgeBasedRules{
			IncludeNightlife:  true,
			IncludeAdventure:  true,
			PrioritizeComfort: false,
			ChildFriendly:     false,
		}
	}
}
