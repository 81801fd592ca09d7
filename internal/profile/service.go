// internal/profile/service.go

package profile

import (
	"context"
	"errors"
)

type Service interface {
	// GetPreferences returns the user's profile, or an empty profile when
	// the user has never completed a survey. Absence is not an error.
	GetPreferences(ctx context.Context, userID int64) (Preferences, error)
	// SavePreferences merges a survey snapshot into the stored profile
	// and returns the merged result.
	SavePreferences(ctx context.Context, userID int64, prefs Preferences) (Preferences, error)
	ResetPreferences(ctx context.Context, userID int64) error
}

type service struct {
	repo  Repository
	cache *Cache
}

func NewService(repo Repository, cache *Cache) Service {
	return &service{repo: repo, cache: cache}
}

func (s *service) GetPreferences(ctx context.Context, userID int64) (Preferences, error) {
	if prefs, ok := s.cache.Get(ctx, userID); ok {
		return prefs, nil
	}

	prefs, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		return Preferences{}, nil
	}
	if err != nil {
		return Preferences{}, err
	}

	s.cache.Set(ctx, userID, prefs)
	return prefs, nil
}

func (s *service) SavePreferences(ctx context.Context, userID int64, prefs Preferences) (Preferences, error) {
	merged, err := s.repo.Save(ctx, userID, prefs)
	if err != nil {
		return Preferences{}, err
	}

	s.cache.Set(ctx, userID, merged)
	return merged, nil
}

func (s *service) ResetPreferences(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, userID)
	return nil
}
