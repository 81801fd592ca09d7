// internal/selections/set.go
// Pure toggle semantics for favorites and the bounded comparison set.
// These functions never touch storage, so the service layer can replay
// them against whatever the store currently holds.

package selections

import "errors"

// CompareLimit is the maximum number of destinations a user can compare
// side by side.
const CompareLimit = 3

var ErrCompareLimitReached = errors.New("comparison set is full: remove a destination before adding another")

// Contains reports set membership.
func Contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle returns the set with id removed if present, added if absent.
// Applying it twice with the same id restores the original membership.
func Toggle(ids []int64, id int64) ([]int64, bool) {
	if Contains(ids, id) {
		out := make([]int64, 0, len(ids)-1)
		for _, v := range ids {
			if v != id {
				out = append(out, v)
			}
		}
		return out, false
	}

	out := make([]int64, 0, len(ids)+1)
	out = append(out, ids...)
	out = append(out, id)
	return out, true
}

// ToggleCompare applies Toggle under the comparison bound. Adding a new
// id to a full set is refused: the set comes back unchanged along with
// ErrCompareLimitReached. Removal is always allowed.
func ToggleCompare(ids []int64, id int64) ([]int64, bool, error) {
	if !Contains(ids, id) && len(ids) >= CompareLimit {
		return ids, false, ErrCompareLimitReached
	}
	out, added := Toggle(ids, id)
	return out, added, nil
}
