// internal/profile/models.go
// Preference profile collected by the survey flow

package profile

// Preferences is a user's stated travel preferences. Interests and
// activities share the destination tag vocabulary but are independent
// survey facets. All fields are optional: the engines treat missing
// facets as contributing nothing.
type Preferences struct {
	Interests   []string `json:"interests,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Activities  []string `json:"activities,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Budget      string   `json:"budget,omitempty" validate:"omitempty,oneof=budget mid-range luxury ultra-luxury"`
	TravelStyle string   `json:"travelStyle,omitempty" validate:"omitempty,max=50"`
	Companions  string   `json:"companions,omitempty" validate:"omitempty,max=50"`
	Duration    string   `json:"duration,omitempty" validate:"omitempty,max=50"`
}

// IsEmpty reports whether no facet is set at all.
func (p Preferences) IsEmpty() bool {
	return len(p.Interests) == 0 &&
		len(p.Activities) == 0 &&
		p.Budget == "" &&
		p.TravelStyle == "" &&
		p.Companions == "" &&
		p.Duration == ""
}

// Merge overlays update onto p and returns the result. Only fields the
// update actually sets are overwritten; everything else is preserved.
// This mirrors the merge-not-overwrite contract of the durable store, so
// a survey variant that never asks about travel style cannot erase it.
func (p Preferences) Merge(update Preferences) Preferences {
	merged := p
	if update.Interests != nil {
		merged.Interests = update.Interests
	}
	if update.Activities != nil {
		merged.Activities = update.Activities
	}
	if update.Budget != "" {
		merged.Budget = update.Budget
	}
	if update.TravelStyle != "" {
		merged.TravelStyle = update.TravelStyle
	}
	if update.Companions != "" {
		merged.Companions = update.Companions
	}
	if update.Duration != "" {
		merged.Duration = update.Duration
	}
	return merged
}
