// Package ordering provides the read-only display ordering for markets:
// grouping by suggested or current category and the tie-break comparator,
// driven by a declarative registry of pin rules. Rules are data, not code;
// a sport with no registered rules falls through to the generic comparator.
package ordering

import (
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// PinRule pins matching markets to the front of their category. Exactly one
// of the two selectors is set: Subcategory matches every market carrying
// that subcategory value, MarketName matches one market by original name.
type PinRule struct {
	Subcategory string `mapstructure:"subcategory" json:"subcategory,omitempty"`
	MarketName  string `mapstructure:"market"      json:"market,omitempty"`
}

func (r PinRule) matches(m *model.Market) bool {
	if r.Subcategory != "" {
		return m.SuggestedSubcategory == r.Subcategory
	}
	if r.MarketName != "" {
		return m.OriginalName == r.MarketName
	}
	return false
}

// RuleKey addresses one category of one sport in the registry.
type RuleKey struct {
	SportKey string
	Category string
}

// Registry maps (sport, category) pairs to ordered pin-rule lists. Earlier
// rules pin harder: a market matching rule 0 sorts before one matching
// rule 1, which sorts before every unpinned market.
type Registry struct {
	rules map[RuleKey][]PinRule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[RuleKey][]PinRule)}
}

// Add appends pin rules for one sport and category.
func (r *Registry) Add(sportKey, category string, rules ...PinRule) {
	key := RuleKey{SportKey: sportKey, Category: category}
	r.rules[key] = append(r.rules[key], rules...)
}

// Rules returns the registered rules for one sport and category, in pin
// order. The slice is shared; callers must not mutate it.
func (r *Registry) Rules(sportKey, category string) []PinRule {
	return r.rules[RuleKey{SportKey: sportKey, Category: category}]
}

// rank returns the index of the first rule matching the market, or
// len(rules) when nothing pins it.
func (r *Registry) rank(sportKey, category string, m *model.Market) int {
	rules := r.Rules(sportKey, category)
	for i, rule := range rules {
		if rule.matches(m) {
			return i
		}
	}
	return len(rules)
}
