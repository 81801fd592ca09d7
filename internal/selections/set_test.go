package selections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleAddsWhenAbsent(t *testing.T) {
	out, added := Toggle([]int64{1, 2}, 3)

	assert.True(t, added)
	assert.Equal(t, []int64{1, 2, 3}, out)
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	out, added := Toggle([]int64{1, 2, 3}, 2)

	assert.False(t, added)
	assert.Equal(t, []int64{1, 3}, out)
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	ids := []int64{4, 7}

	once, added := Toggle(ids, 9)
	require.True(t, added)

	twice, added := Toggle(once, 9)
	require.False(t, added)
	assert.Equal(t, ids, twice)
}

func TestToggleEmptySet(t *testing.T) {
	out, added := Toggle(nil, 5)

	assert.True(t, added)
	assert.Equal(t, []int64{5}, out)
}

func TestToggleCompareAddUpToLimit(t *testing.T) {
	var ids []int64
	var err error
	for _, id := range []int64{1, 2, 3} {
		ids, _, err = ToggleCompare(ids, id)
		require.NoError(t, err)
	}
	assert.Len(t, ids, CompareLimit)
}

func TestToggleCompareRefusesFourth(t *testing.T) {
	full := []int64{1, 2, 3}

	out, added, err := ToggleCompare(full, 4)

	require.ErrorIs(t, err, ErrCompareLimitReached)
	assert.False(t, added)
	assert.Equal(t, full, out, "a refused add must leave the set unchanged")
}

func TestToggleCompareRemovalAlwaysAllowed(t *testing.T) {
	full := []int64{1, 2, 3}

	out, added, err := ToggleCompare(full, 2)

	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []int64{1, 3}, out)
}

func TestToggleCompareRoomAfterRemoval(t *testing.T) {
	ids := []int64{1, 2, 3}

	ids, _, err := ToggleCompare(ids, 1)
	require.NoError(t, err)

	ids, added, err := ToggleCompare(ids, 4)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []int64{2, 3, 4}, ids)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]int64{1, 2, 3}, 2))
	assert.False(t, Contains([]int64{1, 2, 3}, 9))
	assert.False(t, Contains(nil, 1))
}
