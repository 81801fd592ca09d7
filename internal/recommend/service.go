// internal/recommend/service.go

package recommend

import (
	"context"

	"github.com/Kontukunal/geodarshan-api/internal/catalog"
	"github.com/Kontukunal/geodarshan-api/internal/profile"
)

const DefaultTrendingLimit = 10

type Service interface {
	// RecommendForUser ranks the catalog against the user's stored
	// profile. A user with no saved survey gets the neutral ordering.
	RecommendForUser(ctx context.Context, userID int64) ([]ScoredDestination, error)
	// Recommend ranks the catalog against an explicit profile snapshot.
	Recommend(ctx context.Context, prefs profile.Preferences) []ScoredDestination
	Trending(ctx context.Context, limit int) []catalog.Destination
}

type service struct {
	catalog       catalog.Repository
	profiles      profile.Service
	engine        *Engine
	trendingLimit int
}

// NewService wires the engine to its catalog and profile sources.
// trendingLimit is the list size served when the client asks for none;
// values below 1 fall back to DefaultTrendingLimit.
func NewService(catalogRepo catalog.Repository, profiles profile.Service, engine *Engine, trendingLimit int) Service {
	if trendingLimit < 1 {
		trendingLimit = DefaultTrendingLimit
	}
	return &service{
		catalog:       catalogRepo,
		profiles:      profiles,
		engine:        engine,
		trendingLimit: trendingLimit,
	}
}

func (s *service) RecommendForUser(ctx context.Context, userID int64) ([]ScoredDestination, error) {
	prefs, err := s.profiles.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Recommend(ctx, prefs), nil
}

func (s *service) Recommend(ctx context.Context, prefs profile.Preferences) []ScoredDestination {
	results := s.engine.Recommend(s.catalog.All(), prefs)
	recordRanking(results, prefs.IsEmpty())
	return results
}

func (s *service) Trending(ctx context.Context, limit int) []catalog.Destination {
	if limit <= 0 {
		limit = s.trendingLimit
	}
	recordTrending()
	return Trending(s.catalog.All(), limit)
}
