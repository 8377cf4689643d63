package taxonomy

import (
	"log/slog"
	"sort"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// MoveMarket reclassifies a market into destCategory and re-inserts it
// immediately before or after the reference market in the sport's market
// sequence. The set of market ids is unchanged; only the ordering and the
// moved market's category are. Dropping a market onto itself is a no-op.
func (s *Store) MoveMarket(sportKey, marketID, destCategory, referenceID string, placeAfter bool) error {
	if marketID == referenceID {
		return nil
	}

	err := s.update(sportKey, func(sp *model.Sport) error {
		from := -1
		for i := range sp.Markets {
			if sp.Markets[i].ID == marketID {
				from = i
				break
			}
		}
		if from < 0 {
			return common.NotFoundf("market %q", marketID)
		}
		if sp.FindMarket(referenceID) == nil {
			return common.NotFoundf("reference market %q", referenceID)
		}

		moved := sp.Markets[from]
		upsertCategory(sp, destCategory)
		moved.SuggestedCategory = destCategory
		if cat := sp.SuggestedCategories.Find(destCategory); cat == nil || !cat.HasSubcategory(moved.SuggestedSubcategory) {
			moved.SuggestedSubcategory = ""
		}

		sp.Markets = append(sp.Markets[:from], sp.Markets[from+1:]...)

		// The reference may have shifted when the moved market came out.
		ref := -1
		for i := range sp.Markets {
			if sp.Markets[i].ID == referenceID {
				ref = i
				break
			}
		}
		at := ref
		if placeAfter {
			at = ref + 1
		}
		sp.Markets = append(sp.Markets, model.Market{})
		copy(sp.Markets[at+1:], sp.Markets[at:])
		sp.Markets[at] = moved
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("moved market", "sport", sportKey, "id", marketID, "category", destCategory,
		"reference", referenceID, "after", placeAfter)
	return nil
}

// MoveCategory re-inserts the dragged category immediately before or after
// the target in order-key sequence, then renumbers every order key to its
// final position. Renumbering keeps repeated drags from accumulating drift;
// dragging a category onto itself is a no-op.
func (s *Store) MoveCategory(sportKey, draggedName, targetName string, placeAfter bool) error {
	if draggedName == targetName {
		return nil
	}

	err := s.update(sportKey, func(sp *model.Sport) error {
		if sp.SuggestedCategories.Find(draggedName) == nil {
			return common.NotFoundf("category %q", draggedName)
		}
		if sp.SuggestedCategories.Find(targetName) == nil {
			return common.NotFoundf("category %q", targetName)
		}

		// Unordered entries get their current positional index first so the
		// visual order they had survives the sort.
		sp.SuggestedCategories.Materialize()
		sort.Stable(sp.SuggestedCategories)

		working := sp.SuggestedCategories
		from := 0
		for i := range working {
			if working[i].Name == draggedName {
				from = i
				break
			}
		}
		dragged := working[from]
		working = append(working[:from], working[from+1:]...)

		target := 0
		for i := range working {
			if working[i].Name == targetName {
				target = i
				break
			}
		}
		at := target
		if placeAfter {
			at = target + 1
		}
		working = append(working, model.CategoryConfig{})
		copy(working[at+1:], working[at:])
		working[at] = dragged

		for i := range working {
			o := i
			working[i].Order = &o
		}
		sp.SuggestedCategories = working
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("moved category", "sport", sportKey, "dragged", draggedName,
		"target", targetName, "after", placeAfter)
	return nil
}

// NormalizeCategoryOrder materializes missing order keys, sorts the
// suggested list, and renumbers to 0..n-1. The serializer runs this before
// every export so the emitted order is total and reproducible.
func (s *Store) NormalizeCategoryOrder(sportKey string) error {
	return s.update(sportKey, func(sp *model.Sport) error {
		sp.SuggestedCategories.Normalize()
		return nil
	})
}
