package taxonomy

import (
	"sort"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// Stats summarizes one sport for the host UI's stats bar.
type Stats struct {
	TotalMarkets    int
	ActiveMarkets   int
	InactiveMarkets int
	Categories      int
}

// Stats counts the sport's markets and its distinct non-empty suggested
// categories as referenced by markets.
func (s *Store) Stats(sportKey string) (Stats, error) {
	sp, err := s.sport(sportKey)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	st.TotalMarkets = len(sp.Markets)
	seen := make(map[string]struct{})
	for i := range sp.Markets {
		if sp.Markets[i].Active {
			st.ActiveMarkets++
		}
		if cat := sp.Markets[i].SuggestedCategory; cat != "" {
			seen[cat] = struct{}{}
		}
	}
	st.InactiveMarkets = st.TotalMarkets - st.ActiveMarkets
	st.Categories = len(seen)
	return st, nil
}

// CategoryNames returns the sorted distinct non-empty suggested categories
// referenced by the sport's markets, for filter dropdowns.
func (s *Store) CategoryNames(sportKey string) ([]string, error) {
	sp, err := s.sport(sportKey)
	if err != nil {
		return nil, err
	}
	return distinct(sp.Markets, func(m *model.Market) string { return m.SuggestedCategory }), nil
}

// ExternalTypes returns the sorted distinct upstream types seen across the
// sport's markets.
func (s *Store) ExternalTypes(sportKey string) ([]string, error) {
	sp, err := s.sport(sportKey)
	if err != nil {
		return nil, err
	}
	return distinct(sp.Markets, func(m *model.Market) string { return m.ExternalType }), nil
}

func distinct(markets []model.Market, key func(*model.Market) string) []string {
	seen := make(map[string]struct{})
	for i := range markets {
		if v := key(&markets[i]); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// SubcategoriesOf returns a copy of the configured subcategories for one
// suggested category.
func (s *Store) SubcategoriesOf(sportKey, categoryName string) ([]string, error) {
	sp, err := s.sport(sportKey)
	if err != nil {
		return nil, err
	}
	cat := sp.SuggestedCategories.Find(categoryName)
	if cat == nil {
		return nil, common.NotFoundf("category %q", categoryName)
	}
	return append([]string(nil), cat.Subcategories...), nil
}

// CurrentCategory resolves the comparison-side category for a market: the
// current-category entry matching its external type, or the raw external
// type when the upstream list has no match. It never fails on the fallback.
func (s *Store) CurrentCategory(sportKey, marketID string) (string, error) {
	sp, err := s.sport(sportKey)
	if err != nil {
		return "", err
	}
	m := sp.FindMarket(marketID)
	if m == nil {
		return "", common.NotFoundf("market %q", marketID)
	}
	return sp.CurrentCategory(m), nil
}

// Comparison holds the three taxonomies a comparison view lays side by
// side. Competitor is nil when no data exists for the sport, which is not
// an error.
type Comparison struct {
	Current    model.CategoryConfigs
	Suggested  model.CategoryConfigs
	Competitor model.CategoryConfigs
}

// Compare returns deep copies of the sport's current and suggested category
// lists alongside the named competitor's, when one is registered.
func (s *Store) Compare(sportKey, competitorKey string) (*Comparison, error) {
	sp, err := s.sport(sportKey)
	if err != nil {
		return nil, err
	}
	cmp := &Comparison{
		Current:   sp.CurrentCategories.Clone(),
		Suggested: sp.SuggestedCategories.Clone(),
	}
	if taxonomy, ok := s.competitors[competitorKey]; ok {
		if cats, ok := taxonomy[sportKey]; ok {
			cmp.Competitor = cats.Clone()
		}
	}
	return cmp, nil
}
