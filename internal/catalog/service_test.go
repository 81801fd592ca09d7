package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	repo, err := NewMemoryRepository([]Destination{
		{ID: 1, Name: "Bali", Country: "Indonesia", Tags: []string{"beach", "culture"}, Rating: 4.8, ReviewCount: 12000, Price: TierMidRange},
		{ID: 2, Name: "Reykjavik", Country: "Iceland", Tags: []string{"nature", "adventure"}, Rating: 4.7, ReviewCount: 5400, Price: TierLuxury},
		{ID: 3, Name: "Marrakech", Country: "Morocco", Tags: []string{"culture", "food"}, Rating: 4.5, ReviewCount: 8800, Price: TierBudget},
		{ID: 4, Name: "Banff", Country: "Canada", Tags: []string{"nature", "hiking"}, Rating: 4.8, ReviewCount: 7000, Price: TierMidRange},
	})
	require.NoError(t, err)
	return NewService(repo)
}

func TestListNoFilters(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.List(context.Background(), ListParams{})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Total)
	assert.Len(t, res.Items, 4)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, DefaultPageSize, res.PageSize)
}

func TestListQueryMatchesNameAndCountry(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.List(context.Background(), ListParams{Query: "bali"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, int64(1), res.Items[0].ID)

	res, err = svc.List(context.Background(), ListParams{Query: "ICELAND"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, int64(2), res.Items[0].ID)
}

func TestListBudgetFilter(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.List(context.Background(), ListParams{Budget: "mid-range"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	// Symbol form selects the same tier.
	bySymbol, err := svc.List(context.Background(), ListParams{Budget: "$$"})
	require.NoError(t, err)
	assert.Equal(t, res.Total, bySymbol.Total)
}

func TestListMinRatingFilter(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.List(context.Background(), ListParams{MinRating: 4.8})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestListTagFilterMatchesAny(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.List(context.Background(), ListParams{Tags: []string{"beach", "hiking"}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	ids := []int64{res.Items[0].ID, res.Items[1].ID}
	assert.Contains(t, ids, int64(1))
	assert.Contains(t, ids, int64(4))
}

func TestListPagination(t *testing.T) {
	svc := newTestService(t)

	page1, err := svc.List(context.Background(), ListParams{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 3)
	assert.Equal(t, 2, page1.TotalPages)

	page2, err := svc.List(context.Background(), ListParams{Page: 2, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page2.Items, 1)

	// A page past the end is empty, not an error.
	page9, err := svc.List(context.Background(), ListParams{Page: 9, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, page9.Items)
	assert.Equal(t, 4, page9.Total)
}

func TestListNoMatches(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.List(context.Background(), ListParams{Query: "atlantis"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Items)
}

func TestGetUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrDestinationNotFound)
}
