// internal/recommend/weights.go
// Scoring coefficients for the recommendation engine.

package recommend

// Weights defines the contribution of each preference facet to the
// composite score. Interests and activities are independent facets over
// the same tag vocabulary: a tag the user selected in both facets counts
// once per facet.
type Weights struct {
	// InterestMatch is added per destination tag found in the profile's
	// interests.
	InterestMatch float64 `json:"interest_match"`
	// ActivityMatch is added per destination tag found in the profile's
	// activities.
	ActivityMatch float64 `json:"activity_match"`
	// BudgetMatch is added once when the destination's price tier equals
	// the profile's budget. Equivalent to one full tag match by default.
	BudgetMatch float64 `json:"budget_match"`
}

// DefaultWeights are the stable production constants. Changing them
// changes every ranking, so they are fixed here rather than configured.
func DefaultWeights() Weights {
	return Weights{
		InterestMatch: 1.0,
		ActivityMatch: 1.0,
		BudgetMatch:   1.0,
	}
}
