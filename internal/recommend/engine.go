// internal/recommend/engine.go
// Pure preference-to-destination scoring. No I/O, no clock, no
// randomness: identical inputs always produce the identical ranking.

package recommend

import (
	"sort"
	"strings"

	"github.com/Kontukunal/geodarshan-api/internal/catalog"
	"github.com/Kontukunal/geodarshan-api/internal/profile"
)

// ScoredDestination is a catalog entry annotated with its composite
// match score for one profile.
type ScoredDestination struct {
	catalog.Destination
	Score float64 `json:"matchScore"`
}

type Engine struct {
	weights Weights
}

func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Recommend ranks the entire catalog against a profile. Every input
// destination appears in the result exactly once: zero-match entries rank
// last instead of disappearing, so an unusual preference combination can
// never produce an empty page. An all-empty profile yields the neutral
// ordering (rating desc, id asc).
func (e *Engine) Recommend(destinations []catalog.Destination, prefs profile.Preferences) []ScoredDestination {
	interests := toSet(prefs.Interests)
	activities := toSet(prefs.Activities)
	budget, budgetSet := catalog.ParseTier(prefs.Budget)

	scored := make([]ScoredDestination, 0, len(destinations))
	for _, d := range destinations {
		var score float64
		for _, tag := range d.Tags {
			if interests[tag] {
				score += e.weights.InterestMatch
			}
			if activities[tag] {
				score += e.weights.ActivityMatch
			}
		}
		if budgetSet && d.Price == budget {
			score += e.weights.BudgetMatch
		}
		scored = append(scored, ScoredDestination{Destination: d, Score: score})
	}

	// Score desc, then rating desc, then id asc. The id key makes the
	// order total, which pagination and tests rely on.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Rating != scored[j].Rating {
			return scored[i].Rating > scored[j].Rating
		}
		return scored[i].ID < scored[j].ID
	})

	return scored
}

// toSet builds a lookup set, normalized the same way catalog tags are.
func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = true
		}
	}
	return set
}
