// Package query implements the pure filter predicate over a sport's market
// list. Filtering never re-sorts: output preserves the input's relative
// order, and display ordering is a separate later pass.
package query

import (
	"strings"

	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// Status filters markets by their active flag.
type Status string

const (
	// StatusAll matches every market.
	StatusAll Status = "all"
	// StatusActive matches only active markets.
	StatusActive Status = "active"
	// StatusInactive matches only inactive markets.
	StatusInactive Status = "inactive"
)

// CategoryAll disables the category criterion.
const CategoryAll = "all"

// Criteria is the conjunction of the three market filters. Zero values are
// equivalent to their "all" forms, so an empty Criteria matches everything.
type Criteria struct {
	SearchTerm string
	Status     Status
	Category   string
}

// Filter returns the markets matching every criterion, in input order.
// The search term matches case-insensitively against the original name,
// the external type, and the suggested category.
func Filter(markets []model.Market, c Criteria) []model.Market {
	term := strings.ToLower(c.SearchTerm)

	out := make([]model.Market, 0, len(markets))
	for i := range markets {
		m := &markets[i]
		if !matchesSearch(m, term) || !matchesStatus(m, c.Status) || !matchesCategory(m, c.Category) {
			continue
		}
		out = append(out, *m)
	}
	return out
}

func matchesSearch(m *model.Market, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.OriginalName), term) ||
		strings.Contains(strings.ToLower(m.ExternalType), term) ||
		strings.Contains(strings.ToLower(m.SuggestedCategory), term)
}

func matchesStatus(m *model.Market, status Status) bool {
	switch status {
	case StatusActive:
		return m.Active
	case StatusInactive:
		return !m.Active
	default:
		return true
	}
}

func matchesCategory(m *model.Market, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return m.SuggestedCategory == category
}
