// internal/selections/service.go

package selections

import (
	"context"
	"fmt"

	"github.com/Kontukunal/geodarshan-api/internal/catalog"
)

type Service interface {
	// ListFavorites resolves the user's favorites to full catalog
	// entries, skipping ids that no longer exist in the catalog.
	ListFavorites(ctx context.Context, userID int64) ([]catalog.Destination, error)
	// ToggleFavorite flips membership and reports the new state.
	ToggleFavorite(ctx context.Context, userID, destinationID int64) (favorited bool, err error)

	ListCompare(ctx context.Context, userID int64) ([]catalog.Destination, error)
	// ToggleCompare flips membership under the CompareLimit bound.
	// Adding a fourth destination returns ErrCompareLimitReached with
	// the set unchanged.
	ToggleCompare(ctx context.Context, userID, destinationID int64) (added bool, err error)
	ClearCompare(ctx context.Context, userID int64) error
}

type service struct {
	repo    Repository
	compare CompareStore
	catalog catalog.Repository
}

func NewService(repo Repository, compare CompareStore, catalogRepo catalog.Repository) Service {
	return &service{
		repo:    repo,
		compare: compare,
		catalog: catalogRepo,
	}
}

func (s *service) ListFavorites(ctx context.Context, userID int64) ([]catalog.Destination, error) {
	ids, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ids), nil
}

func (s *service) ToggleFavorite(ctx context.Context, userID, destinationID int64) (bool, error) {
	if _, err := s.catalog.ByID(destinationID); err != nil {
		return false, err
	}

	favorited, err := s.repo.IsFavorite(ctx, userID, destinationID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	if favorited {
		return false, s.repo.RemoveFavorite(ctx, userID, destinationID)
	}
	return true, s.repo.AddFavorite(ctx, userID, destinationID)
}

func (s *service) ListCompare(ctx context.Context, userID int64) ([]catalog.Destination, error) {
	ids, err := s.compare.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ids), nil
}

func (s *service) ToggleCompare(ctx context.Context, userID, destinationID int64) (bool, error) {
	if _, err := s.catalog.ByID(destinationID); err != nil {
		return false, err
	}

	current, err := s.compare.List(ctx, userID)
	if err != nil {
		return false, err
	}

	_, added, err := ToggleCompare(current, destinationID)
	if err != nil {
		return false, err
	}

	if added {
		return true, s.compare.Add(ctx, userID, destinationID)
	}
	return false, s.compare.Remove(ctx, userID, destinationID)
}

func (s *service) ClearCompare(ctx context.Context, userID int64) error {
	return s.compare.Clear(ctx, userID)
}

// resolve maps ids to catalog entries. A stale id (catalog shrank since
// the selection was stored) is dropped rather than surfaced as an error.
func (s *service) resolve(ids []int64) []catalog.Destination {
	out := make([]catalog.Destination, 0, len(ids))
	for _, id := range ids {
		d, err := s.catalog.ByID(id)
		if err != nil {
			continue
		}
		out = append(out, *d)
	}
	return out
}
