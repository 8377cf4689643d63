package taxonomy

import (
	"log/slog"
	"strings"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// AddCategory adds a new top-level category, or, when parentName is given,
// appends name to the parent's subcategory list. Adding an existing
// category or subcategory is a no-op.
func (s *Store) AddCategory(sportKey, name, parentName string) error {
	if strings.TrimSpace(name) == "" {
		return common.Validationf("category name is required")
	}
	name = strings.TrimSpace(name)

	err := s.update(sportKey, func(sp *model.Sport) error {
		if parentName == "" {
			upsertCategory(sp, name)
			return nil
		}
		parent := sp.SuggestedCategories.Find(parentName)
		if parent == nil {
			return common.NotFoundf("category %q", parentName)
		}
		if !parent.HasSubcategory(name) {
			parent.Subcategories = append(parent.Subcategories, name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("added category", "sport", sportKey, "name", name, "parent", parentName)
	return nil
}

// RenameCategory renames a category config and reclassifies every market
// that referenced the old name, as one atomic cascade. Renaming a category
// to itself is a no-op; renaming onto another existing category is rejected
// so names stay unique.
func (s *Store) RenameCategory(sportKey, oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return common.Validationf("category name is required")
	}
	if newName == oldName {
		return nil
	}

	err := s.update(sportKey, func(sp *model.Sport) error {
		cat := sp.SuggestedCategories.Find(oldName)
		if cat == nil {
			return common.NotFoundf("category %q", oldName)
		}
		if sp.SuggestedCategories.Find(newName) != nil {
			return common.Validationf("category %q already exists", newName)
		}
		cat.Name = newName
		for i := range sp.Markets {
			if sp.Markets[i].SuggestedCategory == oldName {
				sp.Markets[i].SuggestedCategory = newName
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("renamed category", "sport", sportKey, "from", oldName, "to", newName)
	return nil
}

// DeleteCategory removes a category config and reassigns its markets to the
// Uncategorized sentinel, clearing their subcategories. The sentinel config
// is created only when markets were actually moved, with an order key that
// sorts it last.
func (s *Store) DeleteCategory(sportKey, name string) error {
	var moved int
	err := s.update(sportKey, func(sp *model.Sport) error {
		idx := -1
		for i := range sp.SuggestedCategories {
			if sp.SuggestedCategories[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return common.NotFoundf("category %q", name)
		}

		for i := range sp.Markets {
			if sp.Markets[i].SuggestedCategory == name {
				sp.Markets[i].SuggestedCategory = model.Uncategorized
				sp.Markets[i].SuggestedSubcategory = ""
				moved++
			}
		}

		sp.SuggestedCategories = append(sp.SuggestedCategories[:idx], sp.SuggestedCategories[idx+1:]...)
		sp.SuggestedCategories.Normalize()

		if moved > 0 && sp.SuggestedCategories.Find(model.Uncategorized) == nil {
			last := len(sp.SuggestedCategories)
			sp.SuggestedCategories = append(sp.SuggestedCategories, model.CategoryConfig{
				Name:          model.Uncategorized,
				Subcategories: []string{},
				Order:         &last,
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("deleted category", "sport", sportKey, "name", name, "markets_moved", moved)
	return nil
}

// RenameSubcategory renames a subcategory within one category config and
// every market classified under it, as one atomic cascade.
func (s *Store) RenameSubcategory(sportKey, categoryName, oldSub, newSub string) error {
	if strings.TrimSpace(newSub) == "" {
		return common.Validationf("subcategory name is required")
	}
	if newSub == oldSub {
		return nil
	}

	err := s.update(sportKey, func(sp *model.Sport) error {
		cat := sp.SuggestedCategories.Find(categoryName)
		if cat == nil {
			return common.NotFoundf("category %q", categoryName)
		}
		idx := -1
		for i, sub := range cat.Subcategories {
			if sub == oldSub {
				idx = i
				break
			}
		}
		if idx < 0 {
			return common.NotFoundf("subcategory %q in category %q", oldSub, categoryName)
		}
		if cat.HasSubcategory(newSub) {
			return common.Validationf("subcategory %q already exists in category %q", newSub, categoryName)
		}
		cat.Subcategories[idx] = newSub
		for i := range sp.Markets {
			m := &sp.Markets[i]
			if m.SuggestedCategory == categoryName && m.SuggestedSubcategory == oldSub {
				m.SuggestedSubcategory = newSub
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("renamed subcategory", "sport", sportKey, "category", categoryName, "from", oldSub, "to", newSub)
	return nil
}
