package taxonomy

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// sportIDPrefixes maps sport keys to the short prefixes used in market ids.
// Sports without an entry fall back to the first two letters of their key.
var sportIDPrefixes = map[string]string{
	"football":   "fb",
	"basketball": "bb",
	"soccer":     "sc",
	"hockey":     "hk",
	"tennis":     "tn",
	"baseball":   "bs",
}

func marketIDPrefix(sportKey string) string {
	if p, ok := sportIDPrefixes[sportKey]; ok {
		return p
	}
	if len(sportKey) >= 2 {
		return sportKey[:2]
	}
	return sportKey
}

// nextMarketID generates a fresh id of the form <prefix>_<n>. The counter is
// one past the highest suffix ever handed out for this sport, so ids are
// never reused within a session even though markets are never deleted.
func nextMarketID(sp *model.Sport) string {
	max := 0
	for i := range sp.Markets {
		parts := strings.Split(sp.Markets[i].ID, "_")
		if len(parts) < 2 {
			continue
		}
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s_%d", marketIDPrefix(sp.Key), max+1)
}

// upsertCategory makes sure a category config exists for the given name,
// creating an empty one when it does not. Market writes that reference a
// brand-new category go through here so the reference never dangles.
func upsertCategory(sp *model.Sport, name string) {
	if name == "" {
		return
	}
	if sp.SuggestedCategories.Find(name) == nil {
		sp.SuggestedCategories = append(sp.SuggestedCategories, model.CategoryConfig{
			Name:          name,
			Subcategories: []string{},
		})
	}
}

// AddMarket appends a new market with a freshly generated id. The category
// is upserted into the suggested list when it is new; a subcategory that is
// not configured for the category is dropped rather than left dangling.
func (s *Store) AddMarket(sportKey, name, externalType, category, subcategory string, active bool) (*model.Market, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.Validationf("market name is required")
	}

	var added model.Market
	err := s.update(sportKey, func(sp *model.Sport) error {
		upsertCategory(sp, category)
		if cat := sp.SuggestedCategories.Find(category); cat == nil || !cat.HasSubcategory(subcategory) {
			subcategory = ""
		}
		added = model.Market{
			ID:                   nextMarketID(sp),
			OriginalName:         strings.TrimSpace(name),
			ExternalType:         externalType,
			SuggestedCategory:    category,
			SuggestedSubcategory: subcategory,
			Active:               active,
		}
		sp.Markets = append(sp.Markets, added)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("added market", "sport", sportKey, "id", added.ID, "category", category)
	return &added, nil
}

// SetMarketField writes one mutable field of a market.
//
// Writing suggestedCategory upserts a config for a new category name and
// resets the subcategory when the new category does not contain it. Writing
// suggestedSubcategory upserts the value into the market's category config,
// so the subcategory list is the single source of truth for valid values.
func (s *Store) SetMarketField(sportKey, marketID string, field model.MarketField, value any) error {
	if !field.Valid() {
		return common.Validationf("unknown market field %q", field)
	}

	err := s.update(sportKey, func(sp *model.Sport) error {
		m := sp.FindMarket(marketID)
		if m == nil {
			return common.NotFoundf("market %q", marketID)
		}

		switch field {
		case model.FieldSuggestedCategory:
			v, err := stringValue(field, value)
			if err != nil {
				return err
			}
			upsertCategory(sp, v)
			m.SuggestedCategory = v
			if cat := sp.SuggestedCategories.Find(v); cat == nil || !cat.HasSubcategory(m.SuggestedSubcategory) {
				m.SuggestedSubcategory = ""
			}
		case model.FieldSuggestedSubcategory:
			v, err := stringValue(field, value)
			if err != nil {
				return err
			}
			if v != "" {
				cat := sp.SuggestedCategories.Find(m.SuggestedCategory)
				if cat == nil {
					return common.Validationf("market %q has no category to hold subcategory %q", marketID, v)
				}
				if !cat.HasSubcategory(v) {
					cat.Subcategories = append(cat.Subcategories, v)
				}
			}
			m.SuggestedSubcategory = v
		case model.FieldDisplayName:
			v, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.DisplayName = v
		case model.FieldActive:
			v, err := boolValue(field, value)
			if err != nil {
				return err
			}
			m.Active = v
		case model.FieldNeedsReview:
			v, err := boolValue(field, value)
			if err != nil {
				return err
			}
			m.NeedsReview = v
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("set market field", "sport", sportKey, "id", marketID, "field", field)
	return nil
}

// ToggleMarketActive flips the market's active flag and returns the new value.
func (s *Store) ToggleMarketActive(sportKey, marketID string) (bool, error) {
	var active bool
	err := s.update(sportKey, func(sp *model.Sport) error {
		m := sp.FindMarket(marketID)
		if m == nil {
			return common.NotFoundf("market %q", marketID)
		}
		m.Active = !m.Active
		active = m.Active
		return nil
	})
	return active, err
}

func stringValue(field model.MarketField, value any) (string, error) {
	v, ok := value.(string)
	if !ok {
		return "", common.Validationf("field %q expects a string, got %T", field, value)
	}
	return v, nil
}

func boolValue(field model.MarketField, value any) (bool, error) {
	v, ok := value.(bool)
	if !ok {
		return false, common.Validationf("field %q expects a bool, got %T", field, value)
	}
	return v, nil
}
