package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
	"github.com/Veraticus/the-markets-must-flow/internal/ordering"
	"github.com/Veraticus/the-markets-must-flow/internal/query"
	"github.com/Veraticus/the-markets-must-flow/internal/taxonomy"
)

func intPtr(n int) *int { return &n }

func createTestSession(t *testing.T) *Session {
	t.Helper()

	football := &model.Sport{
		Key:  "football",
		Name: "Football",
		Markets: []model.Market{
			{ID: "fb_1", OriginalName: "Total Points", ExternalType: "totals", SuggestedCategory: "Totals", Active: true},
			{ID: "fb_2", OriginalName: "Anytime TD", ExternalType: "player_props", SuggestedCategory: "Player Props", Active: true},
			{ID: "fb_3", OriginalName: "Passing Yards", ExternalType: "player_props", SuggestedCategory: "Player Props", Active: false},
		},
		SuggestedCategories: model.CategoryConfigs{
			{Name: "Totals", Order: intPtr(0), Subcategories: []string{}},
			{Name: "Player Props", Order: intPtr(1), Subcategories: []string{}},
		},
	}
	soccer := &model.Sport{
		Key:  "soccer",
		Name: "Soccer",
		Markets: []model.Market{
			{ID: "sc_1", OriginalName: "Both Teams To Score", ExternalType: "goals", SuggestedCategory: "Goals", Active: true},
		},
		SuggestedCategories: model.CategoryConfigs{
			{Name: "Goals", Order: intPtr(0), Subcategories: []string{}},
		},
	}

	store, err := taxonomy.NewStore(football, soccer)
	require.NoError(t, err)

	s, err := New(store, ordering.NewRegistry(), "football")
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := createTestSession(t)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "football", s.SportKey())
	assert.Equal(t, ViewCards, s.View())

	store := s.Store()
	_, err := New(store, ordering.NewRegistry(), "cricket")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSelectSport(t *testing.T) {
	s := createTestSession(t)
	s.SetCriteria(query.Criteria{Category: "Totals"})

	require.NoError(t, s.SelectSport("soccer"))
	assert.Equal(t, "soccer", s.SportKey())
	assert.Equal(t, query.CategoryAll, s.Criteria().Category, "category filter resets across sports")

	assert.ErrorIs(t, s.SelectSport("cricket"), common.ErrNotFound)
	assert.Equal(t, "soccer", s.SportKey(), "failed switch keeps the active sport")
}

func TestVisibleMarkets(t *testing.T) {
	s := createTestSession(t)
	s.SetCriteria(query.Criteria{Status: query.StatusActive})

	markets, err := s.VisibleMarkets()
	require.NoError(t, err)
	require.Len(t, markets, 2)
	assert.Equal(t, "fb_1", markets[0].ID)
	assert.Equal(t, "fb_2", markets[1].ID)
}

func TestGroups(t *testing.T) {
	s := createTestSession(t)

	groups, err := s.Groups(ordering.GroupBySuggested)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Totals", groups[0].Category)
	assert.Equal(t, "Player Props", groups[1].Category)
	assert.Len(t, groups[1].Markets, 2)
}

func TestStats(t *testing.T) {
	s := createTestSession(t)

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalMarkets)
	assert.Equal(t, 2, st.ActiveMarkets)
	assert.Equal(t, 1, st.InactiveMarkets)
	assert.Equal(t, 2, st.Categories)
}

func TestDragProtocol(t *testing.T) {
	t.Run("begin and hover change no state", func(t *testing.T) {
		s := createTestSession(t)
		before, err := s.VisibleMarkets()
		require.NoError(t, err)

		require.NoError(t, s.BeginDrag(DragMarket, "fb_3"))
		require.NoError(t, s.Hover("fb_1", false))

		after, err := s.VisibleMarkets()
		require.NoError(t, err)
		assert.Equal(t, before, after)

		kind, id, ok := s.Dragging()
		assert.True(t, ok)
		assert.Equal(t, DragMarket, kind)
		assert.Equal(t, "fb_3", id)
	})

	t.Run("drop moves the market relative to the hovered one", func(t *testing.T) {
		s := createTestSession(t)

		require.NoError(t, s.BeginDrag(DragMarket, "fb_3"))
		require.NoError(t, s.Hover("fb_1", false))
		require.NoError(t, s.Drop())

		markets, err := s.VisibleMarkets()
		require.NoError(t, err)
		assert.Equal(t, "fb_3", markets[0].ID)
		// Landed in the hovered market's category.
		assert.Equal(t, "Totals", markets[0].SuggestedCategory)

		_, _, ok := s.Dragging()
		assert.False(t, ok, "drop is terminal")
	})

	t.Run("drop of a category reorders cards", func(t *testing.T) {
		s := createTestSession(t)

		require.NoError(t, s.BeginDrag(DragCategory, "Player Props"))
		require.NoError(t, s.Hover("Totals", false))
		require.NoError(t, s.Drop())

		groups, err := s.Groups(ordering.GroupBySuggested)
		require.NoError(t, err)
		assert.Equal(t, "Player Props", groups[0].Category)
	})

	t.Run("cancel is a no-op", func(t *testing.T) {
		s := createTestSession(t)
		before, err := s.VisibleMarkets()
		require.NoError(t, err)

		require.NoError(t, s.BeginDrag(DragMarket, "fb_3"))
		require.NoError(t, s.Hover("fb_1", true))
		s.Cancel()

		after, err := s.VisibleMarkets()
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.ErrorIs(t, s.Drop(), ErrNoDrag)
	})

	t.Run("drop without hover acts like a cancel", func(t *testing.T) {
		s := createTestSession(t)
		before, err := s.VisibleMarkets()
		require.NoError(t, err)

		require.NoError(t, s.BeginDrag(DragMarket, "fb_3"))
		require.NoError(t, s.Drop())

		after, err := s.VisibleMarkets()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("drop on a category body reclassifies without reordering", func(t *testing.T) {
		s := createTestSession(t)

		require.NoError(t, s.BeginDrag(DragMarket, "fb_1"))
		require.NoError(t, s.DropOnCategory("Player Props"))

		markets, err := s.VisibleMarkets()
		require.NoError(t, err)
		assert.Equal(t, "fb_1", markets[0].ID, "sequence position unchanged")
		assert.Equal(t, "Player Props", markets[0].SuggestedCategory)
	})

	t.Run("category drag cannot drop on a category body", func(t *testing.T) {
		s := createTestSession(t)

		require.NoError(t, s.BeginDrag(DragCategory, "Totals"))
		assert.ErrorIs(t, s.DropOnCategory("Player Props"), common.ErrValidation)
	})

	t.Run("begin with empty id", func(t *testing.T) {
		s := createTestSession(t)
		assert.ErrorIs(t, s.BeginDrag(DragMarket, ""), common.ErrValidation)
	})
}
