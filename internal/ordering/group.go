package ordering

import (
	"sort"

	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// GroupMode selects which taxonomy keys the grouping.
type GroupMode string

const (
	// GroupBySuggested groups by the operator-curated category; every
	// suggested category appears even when its group is empty.
	GroupBySuggested GroupMode = "suggested"
	// GroupByCurrent groups by the upstream classification; empty groups
	// are omitted.
	GroupByCurrent GroupMode = "current"
)

// Group is one displayable bucket of markets.
type Group struct {
	Category string
	Markets  []model.Market
}

// SortMarkets orders markets of a single category for display: pinned
// markets first in rule order, then markets without a subcategory, then
// alphabetically by subcategory, with the underlying sequence position as
// the stable final tie-break. The input is not modified.
func (r *Registry) SortMarkets(sportKey, category string, markets []model.Market) []model.Market {
	out := append([]model.Market(nil), markets...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := r.rank(sportKey, category, &out[i]), r.rank(sportKey, category, &out[j])
		if ri != rj {
			return ri < rj
		}
		si, sj := out[i].SuggestedSubcategory, out[j].SuggestedSubcategory
		if (si == "") != (sj == "") {
			return si == ""
		}
		return si < sj
	})
	return out
}

// Group buckets the given markets of one sport by suggested or current
// category and sorts each bucket for display. The markets argument is
// typically the output of a filter pass; relative input order is the final
// tie-break within each bucket.
func (r *Registry) Group(sp *model.Sport, markets []model.Market, mode GroupMode) []Group {
	if mode == GroupByCurrent {
		return r.groupByCurrent(sp, markets)
	}
	return r.groupBySuggested(sp, markets)
}

func (r *Registry) groupBySuggested(sp *model.Sport, markets []model.Market) []Group {
	buckets := make(map[string][]model.Market)
	names := make([]string, 0, len(sp.SuggestedCategories)+1)

	// Every configured category gets a group, markets or not, in the
	// normalized order-key sequence.
	configured := sp.SuggestedCategories.Clone()
	configured.Materialize()
	sort.Stable(configured)
	for i := range configured {
		buckets[configured[i].Name] = nil
		names = append(names, configured[i].Name)
	}

	for i := range markets {
		name := markets[i].SuggestedCategory
		if name == "" {
			name = model.Uncategorized
		}
		if _, ok := buckets[name]; !ok {
			names = append(names, name)
		}
		buckets[name] = append(buckets[name], markets[i])
	}

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{
			Category: name,
			Markets:  r.SortMarkets(sp.Key, name, buckets[name]),
		})
	}
	return groups
}

func (r *Registry) groupByCurrent(sp *model.Sport, markets []model.Market) []Group {
	buckets := make(map[string][]model.Market)
	names := make([]string, 0, len(markets))

	for i := range markets {
		name := sp.CurrentCategory(&markets[i])
		if _, ok := buckets[name]; !ok {
			names = append(names, name)
		}
		buckets[name] = append(buckets[name], markets[i])
	}

	// Groups follow the upstream list's order; types unknown upstream
	// trail in first-seen order.
	ordered := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for i := range sp.CurrentCategories {
		name := sp.CurrentCategories[i].Name
		if _, ok := buckets[name]; ok {
			ordered = append(ordered, name)
			seen[name] = struct{}{}
		}
	}
	for _, name := range names {
		if _, ok := seen[name]; !ok {
			ordered = append(ordered, name)
		}
	}

	groups := make([]Group, 0, len(ordered))
	for _, name := range ordered {
		groups = append(groups, Group{
			Category: name,
			Markets:  r.SortMarkets(sp.Key, name, buckets[name]),
		})
	}
	return groups
}
