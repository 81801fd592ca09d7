// internal/catalog/service.go

package catalog

import (
	"context"
	"strings"
)

// ListParams are the browse filters the UI exposes over the catalog.
// Zero values mean "no filter".
type ListParams struct {
	Query     string
	Budget    string
	MinRating float64
	Tags      []string
	Page      int
	PageSize  int
}

const DefaultPageSize = 6

// ListResult is one page of filtered destinations.
type ListResult struct {
	Items      []Destination `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id int64) (*Destination, error)
	Tags(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	budget, budgetSet := ParseTier(params.Budget)

	var matched []Destination
	for _, d := range s.repo.All() {
		if !matchesQuery(&d, params.Query) {
			continue
		}
		if budgetSet && d.Price != budget {
			continue
		}
		if params.MinRating > 0 && d.Rating < params.MinRating {
			continue
		}
		if len(params.Tags) > 0 && !matchesAnyTag(&d, params.Tags) {
			continue
		}
		matched = append(matched, d)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &ListResult{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Destination, error) {
	return s.repo.ByID(id)
}

func (s *service) Tags(ctx context.Context) ([]string, error) {
	return s.repo.Tags(), nil
}

// matchesQuery does case-insensitive substring search over name and country.
func matchesQuery(d *Destination, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Country), q)
}

// matchesAnyTag is satisfied when the destination carries at least one of
// the requested tags.
func matchesAnyTag(d *Destination, tags []string) bool {
	for _, t := range tags {
		if d.HasTag(strings.ToLower(strings.TrimSpace(t))) {
			return true
		}
	}
	return false
}
