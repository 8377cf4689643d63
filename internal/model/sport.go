// Package model defines the value types of the market taxonomy: sports,
// markets, and category configurations.
package model

import "fmt"

// Sport is a top-level partition of markets and categories. The position of
// a market in Markets is semantically meaningful: it is the within-category
// display order and the final tie-break everywhere markets are sorted.
//
// SuggestedCategories is the mutable, operator-curated taxonomy.
// CurrentCategories is the upstream classification, shown for comparison
// only; nothing in this package or its consumers mutates it.
type Sport struct {
	Key                 string          `json:"key"`
	Name                string          `json:"name"`
	Icon                string          `json:"icon"`
	Markets             []Market        `json:"markets"`
	SuggestedCategories CategoryConfigs `json:"suggestedCategories"`
	CurrentCategories   CategoryConfigs `json:"currentCategories"`
}

// FindMarket returns a pointer to the market with the given id, or nil.
func (s *Sport) FindMarket(id string) *Market {
	for i := range s.Markets {
		if s.Markets[i].ID == id {
			return &s.Markets[i]
		}
	}
	return nil
}

// CurrentCategory resolves the comparison-side category for a market: the
// current-category entry matching the market's external type, or the raw
// external type when the upstream list has no entry for it.
func (s *Sport) CurrentCategory(m *Market) string {
	if cat := s.CurrentCategories.Find(m.ExternalType); cat != nil {
		return cat.Name
	}
	return m.ExternalType
}

// Clone returns a deep copy of the sport. Mutations cascade across markets
// and category configs, so the store edits a clone and swaps it in whole.
func (s *Sport) Clone() *Sport {
	out := &Sport{
		Key:  s.Key,
		Name: s.Name,
		Icon: s.Icon,
	}
	if s.Markets != nil {
		out.Markets = append([]Market(nil), s.Markets...)
	}
	out.SuggestedCategories = s.SuggestedCategories.Clone()
	out.CurrentCategories = s.CurrentCategories.Clone()
	return out
}

// Validate ensures the sport and everything it owns has valid data.
func (s *Sport) Validate() error {
	if s.Key == "" {
		return fmt.Errorf("sport key is required")
	}
	ids := make(map[string]struct{}, len(s.Markets))
	for i := range s.Markets {
		m := &s.Markets[i]
		if err := m.Validate(); err != nil {
			return fmt.Errorf("sport %q: %w", s.Key, err)
		}
		if _, dup := ids[m.ID]; dup {
			return fmt.Errorf("sport %q: duplicate market id %q", s.Key, m.ID)
		}
		ids[m.ID] = struct{}{}
	}
	names := make(map[string]struct{}, len(s.SuggestedCategories))
	for i := range s.SuggestedCategories {
		c := &s.SuggestedCategories[i]
		if err := c.Validate(); err != nil {
			return fmt.Errorf("sport %q: %w", s.Key, err)
		}
		if _, dup := names[c.Name]; dup {
			return fmt.Errorf("sport %q: duplicate category %q", s.Key, c.Name)
		}
		names[c.Name] = struct{}{}
	}
	return nil
}

// CompetitorTaxonomy is a read-only reference taxonomy from a third party,
// keyed by sport. Used for comparison views, never mutated.
type CompetitorTaxonomy map[string]CategoryConfigs
