package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

func testMarkets() []model.Market {
	return []model.Market{
		{ID: "fb_1", OriginalName: "Total Over/Under", ExternalType: "totals", SuggestedCategory: "Totals", Active: true},
		{ID: "fb_2", OriginalName: "First Half Over", ExternalType: "totals", SuggestedCategory: "Totals", Active: false},
		{ID: "fb_3", OriginalName: "Anytime TD", ExternalType: "player_props", SuggestedCategory: "Player Props", Active: true},
		{ID: "fb_4", OriginalName: "Coin Toss", ExternalType: "specials", SuggestedCategory: "Specials", Active: false},
	}
}

func TestFilter(t *testing.T) {
	t.Run("empty criteria matches everything in order", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{})
		require.Len(t, out, 4)
		assert.Equal(t, "fb_1", out[0].ID)
		assert.Equal(t, "fb_4", out[3].ID)
	})

	t.Run("search over name and status active", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{SearchTerm: "over", Status: StatusActive, Category: CategoryAll})
		require.Len(t, out, 1)
		assert.Equal(t, "Total Over/Under", out[0].OriginalName)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{SearchTerm: "ANYTIME"})
		require.Len(t, out, 1)
		assert.Equal(t, "fb_3", out[0].ID)
	})

	t.Run("search matches external type", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{SearchTerm: "player_props"})
		require.Len(t, out, 1)
		assert.Equal(t, "fb_3", out[0].ID)
	})

	t.Run("search matches suggested category", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{SearchTerm: "specials"})
		require.Len(t, out, 1)
		assert.Equal(t, "fb_4", out[0].ID)
	})

	t.Run("status inactive", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{Status: StatusInactive})
		require.Len(t, out, 2)
		assert.Equal(t, "fb_2", out[0].ID)
		assert.Equal(t, "fb_4", out[1].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{Category: "Totals"})
		require.Len(t, out, 2)
	})

	t.Run("criteria are conjunctive", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{SearchTerm: "over", Status: StatusInactive, Category: "Totals"})
		require.Len(t, out, 1)
		assert.Equal(t, "fb_2", out[0].ID)
	})

	t.Run("no matches yields empty, not nil panic", func(t *testing.T) {
		out := Filter(testMarkets(), Criteria{SearchTerm: "nothing matches this"})
		assert.Empty(t, out)
	})

	t.Run("does not re-sort the input", func(t *testing.T) {
		// fb_4 before fb_1 on input stays that way on output.
		markets := testMarkets()
		markets[0], markets[3] = markets[3], markets[0]
		out := Filter(markets, Criteria{Status: StatusAll})
		assert.Equal(t, "fb_4", out[0].ID)
		assert.Equal(t, "fb_1", out[3].ID)
	})
}
