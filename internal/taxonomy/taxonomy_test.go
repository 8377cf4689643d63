package taxonomy

import (
	"testing"

	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

func intPtr(n int) *int { return &n }

// Helper function to create a store seeded with one football sport.
func createTestStore(t *testing.T) *Store {
	t.Helper()

	sport := &model.Sport{
		Key:  "football",
		Name: "Football",
		Icon: "🏈",
		Markets: []model.Market{
			{ID: "fb_1", OriginalName: "Anytime TD Scorer", ExternalType: "player_props", SuggestedCategory: "Player Props", SuggestedSubcategory: "Scoring", Active: true},
			{ID: "fb_2", OriginalName: "Passing Yards O/U", ExternalType: "player_props", SuggestedCategory: "Player Props", SuggestedSubcategory: "Passing", Active: true},
			{ID: "fb_3", OriginalName: "Total Points", ExternalType: "totals", SuggestedCategory: "Totals", Active: true},
			{ID: "fb_4", OriginalName: "First Half Total", ExternalType: "totals", SuggestedCategory: "Totals", Active: false},
			{ID: "fb_5", OriginalName: "Coin Toss Winner", ExternalType: "specials", SuggestedCategory: "Specials", Active: false},
		},
		SuggestedCategories: model.CategoryConfigs{
			{Name: "Totals", Order: intPtr(0), Subcategories: []string{}},
			{Name: "Player Props", Order: intPtr(1), Subcategories: []string{"Passing", "Rushing", "Scoring"}},
			{Name: "Specials", Order: intPtr(2), Subcategories: []string{}},
		},
		CurrentCategories: model.CategoryConfigs{
			{Name: "player_props", Subcategories: []string{}},
			{Name: "totals", Subcategories: []string{}},
		},
	}

	store, err := NewStore(sport)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func marketIDs(t *testing.T, store *Store, sportKey string) []string {
	t.Helper()
	sp, err := store.Snapshot(sportKey)
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", sportKey, err)
	}
	ids := make([]string, len(sp.Markets))
	for i := range sp.Markets {
		ids[i] = sp.Markets[i].ID
	}
	return ids
}

func categoryNames(t *testing.T, store *Store, sportKey string) []string {
	t.Helper()
	sp, err := store.Snapshot(sportKey)
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", sportKey, err)
	}
	names := make([]string, len(sp.SuggestedCategories))
	for i := range sp.SuggestedCategories {
		names[i] = sp.SuggestedCategories[i].Name
	}
	return names
}
