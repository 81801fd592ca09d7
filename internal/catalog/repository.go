// internal/catalog/repository.go
// In-memory, read-only destination store. The catalog is loaded once at
// startup and never mutated, so reads need no locking.

package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var ErrDestinationNotFound = errors.New("destination not found")

type Repository interface {
	// All returns every destination in catalog order. The returned slice
	// is a copy and safe for callers to reorder.
	All() []Destination
	ByID(id int64) (*Destination, error)
	// Tags returns the sorted union of all destination tags.
	Tags() []string
	Count() int
}

type memoryRepository struct {
	entries []Destination
	byID    map[int64]int
	tags    []string
}

// NewMemoryRepository validates and indexes a loaded catalog.
func NewMemoryRepository(destinations []Destination) (Repository, error) {
	repo := &memoryRepository{
		entries: make([]Destination, len(destinations)),
		byID:    make(map[int64]int, len(destinations)),
	}
	copy(repo.entries, destinations)

	tagSet := make(map[string]bool)
	for i := range repo.entries {
		d := &repo.entries[i]
		d.normalize()
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if _, dup := repo.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate destination id %d", d.ID)
		}
		repo.byID[d.ID] = i
		for _, t := range d.Tags {
			tagSet[t] = true
		}
	}

	repo.tags = make([]string, 0, len(tagSet))
	for t := range tagSet {
		repo.tags = append(repo.tags, t)
	}
	sort.Strings(repo.tags)

	return repo, nil
}

func (r *memoryRepository) All() []Destination {
	out := make([]Destination, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *memoryRepository) ByID(id int64) (*Destination, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrDestinationNotFound
	}
	d := r.entries[i]
	return &d, nil
}

func (r *memoryRepository) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

func (r *memoryRepository) Count() int {
	return len(r.entries)
}
