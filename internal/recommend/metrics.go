package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_rankings_total",
			Help: "Total number of recommendation rankings computed",
		},
	)

	matchScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_match_scores",
			Help:    "Distribution of top composite match scores per ranking",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)

	trendingRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_trending_requests_total",
			Help: "Total number of trending lists served",
		},
	)

	emptyProfileRankings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_empty_profile_rankings_total",
			Help: "Rankings computed for users with no stated preferences",
		},
	)
)

func recordRanking(results []ScoredDestination, profileEmpty bool) {
	recommendationsTotal.Inc()
	if profileEmpty {
		emptyProfileRankings.Inc()
	}
	if len(results) > 0 {
		matchScores.Observe(results[0].Score)
	}
}

func recordTrending() {
	trendingRequestsTotal.Inc()
}
