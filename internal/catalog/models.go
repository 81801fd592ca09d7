// internal/catalog/models.go
// Destination catalog data model and invariants

package catalog

import (
	"fmt"
	"strings"
)

// PriceTier is the closed set of budget tiers a destination can belong to.
type PriceTier string

const (
	TierBudget      PriceTier = "budget"
	TierMidRange    PriceTier = "mid-range"
	TierLuxury      PriceTier = "luxury"
	TierUltraLuxury PriceTier = "ultra-luxury"
)

// Tiers lists all valid price tiers in ascending order of cost.
func Tiers() []PriceTier {
	return []PriceTier{TierBudget, TierMidRange, TierLuxury, TierUltraLuxury}
}

// Symbol returns the user-facing representation of the tier ($ .. $$$$).
func (t PriceTier) Symbol() string {
	switch t {
	case TierBudget:
		return "$"
	case TierMidRange:
		return "$$"
	case TierLuxury:
		return "$$$"
	case TierUltraLuxury:
		return "$$$$"
	}
	return ""
}

// Valid reports whether t is one of the known tiers.
func (t PriceTier) Valid() bool {
	switch t {
	case TierBudget, TierMidRange, TierLuxury, TierUltraLuxury:
		return true
	}
	return false
}

// ParseTier resolves a tier from either its name or its symbol.
// The empty string is not a tier; callers treat it as "no preference".
func ParseTier(s string) (PriceTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "budget", "$":
		return TierBudget, true
	case "mid-range", "$$":
		return TierMidRange, true
	case "luxury", "$$$":
		return TierLuxury, true
	case "ultra-luxury", "$$$$":
		return TierUltraLuxury, true
	}
	return "", false
}

// Coordinates is an optional latitude/longitude pair. Some catalog
// entries legitimately have none.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination is a single immutable catalog entry.
type Destination struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Country         string       `json:"country"`
	Description     string       `json:"description"`
	Tags            []string     `json:"tags"`
	Attractions     []string     `json:"attractions"`
	Rating          float64      `json:"rating"`
	ReviewCount     int          `json:"reviewCount"`
	Price           PriceTier    `json:"price"`
	PriceSymbol     string       `json:"priceSymbol,omitempty"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	BestTimeToVisit string       `json:"bestTimeToVisit,omitempty"`
	Image           string       `json:"image,omitempty"`
}

// Validate checks the catalog invariants for a single entry. A missing
// tag list is tolerated (it only degrades match scores), everything else
// here is a hard data error.
func (d *Destination) Validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("destination %q: id must be positive", d.Name)
	}
	if d.Name == "" {
		return fmt.Errorf("destination %d: name is required", d.ID)
	}
	if d.Rating < 0 || d.Rating > 5 {
		return fmt.Errorf("destination %d: rating %.2f outside [0,5]", d.ID, d.Rating)
	}
	if d.ReviewCount < 0 {
		return fmt.Errorf("destination %d: negative review count %d", d.ID, d.ReviewCount)
	}
	if !d.Price.Valid() {
		return fmt.Errorf("destination %d: unknown price tier %q", d.ID, d.Price)
	}
	return nil
}

// HasTag reports whether the destination carries the given tag.
func (d *Destination) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// normalize trims, lowercases and dedupes the tag set and fills in the
// derived price symbol. Tag order is preserved for display.
func (d *Destination) normalize() {
	seen := make(map[string]bool, len(d.Tags))
	tags := d.Tags[:0]
	for _, t := range d.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	d.Tags = tags
	d.PriceSymbol = d.Price.Symbol()
}
