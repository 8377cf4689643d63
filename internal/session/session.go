// Package session holds the per-operator view context that the original
// tool kept in module-scope globals: the active sport, the view mode, the
// filter criteria, and any in-flight drag. A session owns no taxonomy
// state; it reads snapshots from the store and maps gestures onto the
// store's mutation API.
package session

import (
	"github.com/google/uuid"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
	"github.com/Veraticus/the-markets-must-flow/internal/ordering"
	"github.com/Veraticus/the-markets-must-flow/internal/query"
	"github.com/Veraticus/the-markets-must-flow/internal/taxonomy"
)

// ViewMode selects how the host UI lays out the active sport.
type ViewMode string

const (
	// ViewCards shows markets grouped into category cards.
	ViewCards ViewMode = "cards"
	// ViewTable shows markets as a flat editable table.
	ViewTable ViewMode = "table"
	// ViewComparison shows taxonomies side by side.
	ViewComparison ViewMode = "comparison"
)

// Session is the explicit context passed to every store, query, and command
// call on behalf of one operator.
type Session struct {
	ID       string
	store    *taxonomy.Store
	registry *ordering.Registry

	sportKey string
	view     ViewMode
	criteria query.Criteria
	drag     *dragState
}

// New creates a session over the store with the given sport active.
func New(store *taxonomy.Store, registry *ordering.Registry, sportKey string) (*Session, error) {
	s := &Session{
		ID:       uuid.NewString(),
		store:    store,
		registry: registry,
		view:     ViewCards,
		criteria: query.Criteria{Status: query.StatusAll, Category: query.CategoryAll},
	}
	if err := s.SelectSport(sportKey); err != nil {
		return nil, err
	}
	return s, nil
}

// Store exposes the mutation API for the active session.
func (s *Session) Store() *taxonomy.Store {
	return s.store
}

// SelectSport switches the active sport, resetting the category filter
// since category names do not carry across sports.
func (s *Session) SelectSport(sportKey string) error {
	if _, err := s.store.Snapshot(sportKey); err != nil {
		return err
	}
	s.sportKey = sportKey
	s.criteria.Category = query.CategoryAll
	s.drag = nil
	return nil
}

// SportKey returns the active sport.
func (s *Session) SportKey() string {
	return s.sportKey
}

// SetView switches the view mode.
func (s *Session) SetView(view ViewMode) {
	s.view = view
}

// View returns the current view mode.
func (s *Session) View() ViewMode {
	return s.view
}

// SetCriteria replaces the filter criteria.
func (s *Session) SetCriteria(c query.Criteria) {
	s.criteria = c
}

// Criteria returns the current filter criteria.
func (s *Session) Criteria() query.Criteria {
	return s.criteria
}

// VisibleMarkets returns the active sport's markets after the session's
// filter pass, in underlying sequence order.
func (s *Session) VisibleMarkets() ([]model.Market, error) {
	sp, err := s.store.Snapshot(s.sportKey)
	if err != nil {
		return nil, err
	}
	return query.Filter(sp.Markets, s.criteria), nil
}

// Groups returns the filtered markets of the active sport bucketed for the
// cards view, in the requested grouping mode.
func (s *Session) Groups(mode ordering.GroupMode) ([]ordering.Group, error) {
	sp, err := s.store.Snapshot(s.sportKey)
	if err != nil {
		return nil, err
	}
	return s.registry.Group(sp, query.Filter(sp.Markets, s.criteria), mode), nil
}

// Stats summarizes the active sport.
func (s *Session) Stats() (taxonomy.Stats, error) {
	return s.store.Stats(s.sportKey)
}

// Compare lays the active sport's taxonomies alongside a competitor's.
func (s *Session) Compare(competitorKey string) (*taxonomy.Comparison, error) {
	return s.store.Compare(s.sportKey, competitorKey)
}

// ErrNoDrag is reported when a hover or drop arrives without a begun drag.
var ErrNoDrag = common.Validationf("no drag in progress")
