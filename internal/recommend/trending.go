// internal/recommend/trending.go
// Popularity ranking over the static catalog.

package recommend

import (
	"math"
	"sort"

	"github.com/Kontukunal/geodarshan-api/internal/catalog"
)

// PopularityScore combines rating with review volume. The log damping
// keeps one destination with an enormous review count from drowning out
// better-rated places: rating * ln(1 + reviewCount).
func PopularityScore(d catalog.Destination) float64 {
	return d.Rating * math.Log1p(float64(d.ReviewCount))
}

// Trending returns the top-N destinations by popularity score. The
// result always has min(topN, len(destinations)) entries; topN <= 0
// yields an empty slice. Ties fall back to rating desc, then id asc.
func Trending(destinations []catalog.Destination, topN int) []catalog.Destination {
	if topN <= 0 {
		return []catalog.Destination{}
	}

	ranked := make([]catalog.Destination, len(destinations))
	copy(ranked, destinations)

	sort.Slice(ranked, func(i, j int) bool {
		si, sj := PopularityScore(ranked[i]), PopularityScore(ranked[j])
		if si != sj {
			return si > sj
		}
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].ID < ranked[j].ID
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
