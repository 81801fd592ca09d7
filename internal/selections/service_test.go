package selections

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kontukunal/geodarshan-api/internal/catalog"
)

// memoryFavorites is a Repository fake with the same set semantics as
// the Postgres implementation.
type memoryFavorites struct {
	sets map[int64][]int64
}

func newMemoryFavorites() *memoryFavorites {
	return &memoryFavorites{sets: make(map[int64][]int64)}
}

func (m *memoryFavorites) ListFavorites(ctx context.Context, userID int64) ([]int64, error) {
	return m.sets[userID], nil
}

func (m *memoryFavorites) AddFavorite(ctx context.Context, userID, destinationID int64) error {
	if Contains(m.sets[userID], destinationID) {
		return nil
	}
	m.sets[userID] = append(m.sets[userID], destinationID)
	return nil
}

func (m *memoryFavorites) RemoveFavorite(ctx context.Context, userID, destinationID int64) error {
	if !Contains(m.sets[userID], destinationID) {
		return nil
	}
	out, _ := Toggle(m.sets[userID], destinationID)
	m.sets[userID] = out
	return nil
}

func (m *memoryFavorites) IsFavorite(ctx context.Context, userID, destinationID int64) (bool, error) {
	return Contains(m.sets[userID], destinationID), nil
}

func newTestService(t *testing.T) Service {
	t.Helper()

	repo, err := catalog.NewMemoryRepository([]catalog.Destination{
		{ID: 1, Name: "Bali", Country: "Indonesia", Rating: 4.8, Price: catalog.TierMidRange},
		{ID: 2, Name: "Kyoto", Country: "Japan", Rating: 4.9, Price: catalog.TierLuxury},
		{ID: 3, Name: "Marrakech", Country: "Morocco", Rating: 4.5, Price: catalog.TierBudget},
		{ID: 4, Name: "Banff", Country: "Canada", Rating: 4.8, Price: catalog.TierMidRange},
	})
	require.NoError(t, err)

	return NewService(newMemoryFavorites(), NewMemoryCompareStore(), repo)
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	const user = int64(42)

	favorited, err := svc.ToggleFavorite(ctx, user, 1)
	require.NoError(t, err)
	assert.True(t, favorited)

	favs, err := svc.ListFavorites(ctx, user)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Bali", favs[0].Name)

	favorited, err = svc.ToggleFavorite(ctx, user, 1)
	require.NoError(t, err)
	assert.False(t, favorited)

	favs, err = svc.ListFavorites(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestToggleFavoriteUnknownDestination(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ToggleFavorite(context.Background(), 42, 999)
	assert.ErrorIs(t, err, catalog.ErrDestinationNotFound)
}

func TestFavoritesAreUnbounded(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	const user = int64(42)

	for _, id := range []int64{1, 2, 3, 4} {
		_, err := svc.ToggleFavorite(ctx, user, id)
		require.NoError(t, err)
	}

	favs, err := svc.ListFavorites(ctx, user)
	require.NoError(t, err)
	assert.Len(t, favs, 4, "favorites carry no size bound")
}

func TestToggleCompareEnforcesLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	const user = int64(42)

	for _, id := range []int64{1, 2, 3} {
		added, err := svc.ToggleCompare(ctx, user, id)
		require.NoError(t, err)
		assert.True(t, added)
	}

	_, err := svc.ToggleCompare(ctx, user, 4)
	require.ErrorIs(t, err, ErrCompareLimitReached)

	// The refused add must leave the stored set untouched.
	set, err := svc.ListCompare(ctx, user)
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, int64(1), set[0].ID)
	assert.Equal(t, int64(3), set[2].ID)
}

func TestToggleCompareRemoveThenAdd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	const user = int64(42)

	for _, id := range []int64{1, 2, 3} {
		_, err := svc.ToggleCompare(ctx, user, id)
		require.NoError(t, err)
	}

	added, err := svc.ToggleCompare(ctx, user, 2)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = svc.ToggleCompare(ctx, user, 4)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestClearCompare(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	const user = int64(42)

	_, err := svc.ToggleCompare(ctx, user, 1)
	require.NoError(t, err)

	require.NoError(t, svc.ClearCompare(ctx, user))

	set, err := svc.ListCompare(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestSelectionsIsolatedPerUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, 1, 1)
	require.NoError(t, err)
	_, err = svc.ToggleCompare(ctx, 1, 2)
	require.NoError(t, err)

	favs, err := svc.ListFavorites(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, favs)

	set, err := svc.ListCompare(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, set)
}
