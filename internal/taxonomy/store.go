// Package taxonomy implements the in-memory store that owns the multi-sport
// market collection. All mutations go through the store; cascading writes
// (renames, deletes, moves) are applied to a copy of the sport and swapped
// in whole, so a failed operation is never partially observable.
package taxonomy

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// Store holds the taxonomy state for every sport in the session, plus any
// read-only competitor taxonomies loaded for comparison.
type Store struct {
	sports      map[string]*model.Sport
	competitors map[string]model.CompetitorTaxonomy
}

// NewStore creates a store from the given sports. Every sport is validated;
// a store is never constructed around inconsistent data.
func NewStore(sports ...*model.Sport) (*Store, error) {
	s := &Store{
		sports:      make(map[string]*model.Sport, len(sports)),
		competitors: make(map[string]model.CompetitorTaxonomy),
	}
	for _, sp := range sports {
		if err := sp.Validate(); err != nil {
			return nil, fmt.Errorf("invalid sport: %w", err)
		}
		if _, dup := s.sports[sp.Key]; dup {
			return nil, common.Validationf("duplicate sport key %q", sp.Key)
		}
		s.sports[sp.Key] = sp.Clone()
	}
	return s, nil
}

// AddCompetitor registers a read-only competitor taxonomy under a key such
// as "draftkings". Comparison queries look sports up in it; nothing ever
// writes to it.
func (s *Store) AddCompetitor(key string, taxonomy model.CompetitorTaxonomy) {
	s.competitors[key] = taxonomy
}

// SportKeys returns the keys of all sports in the store, sorted.
func (s *Store) SportKeys() []string {
	keys := make([]string, 0, len(s.sports))
	for k := range s.sports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a deep copy of the sport for the view layer. Callers may
// do anything with the copy; the store's state is unreachable through it.
func (s *Store) Snapshot(sportKey string) (*model.Sport, error) {
	sp, err := s.sport(sportKey)
	if err != nil {
		return nil, err
	}
	return sp.Clone(), nil
}

// SnapshotAll returns deep copies of every sport, keyed by sport key.
func (s *Store) SnapshotAll() map[string]*model.Sport {
	out := make(map[string]*model.Sport, len(s.sports))
	for k, sp := range s.sports {
		out[k] = sp.Clone()
	}
	return out
}

// Overlay replaces each sport present in the given collection wholesale,
// keeping sports the collection does not mention. Every incoming sport is
// cloned and validated before any of them is applied, so the store is either
// fully overlaid or untouched and the caller's sports are never written to.
func (s *Store) Overlay(sports map[string]*model.Sport) error {
	clones := make(map[string]*model.Sport, len(sports))
	for key, sp := range sports {
		if sp == nil {
			return common.Validationf("sport %q is null", key)
		}
		clone := sp.Clone()
		if clone.Key == "" {
			clone.Key = key
		}
		if err := clone.Validate(); err != nil {
			return fmt.Errorf("invalid sport %q: %w", key, err)
		}
		clones[key] = clone
	}
	for key, clone := range clones {
		s.sports[key] = clone
	}
	slog.Info("replaced sports", "count", len(clones))
	return nil
}

func (s *Store) sport(sportKey string) (*model.Sport, error) {
	sp, ok := s.sports[sportKey]
	if !ok {
		return nil, common.NotFoundf("sport %q", sportKey)
	}
	return sp, nil
}

// update runs fn against a copy of the sport and swaps the copy in when fn
// succeeds. This is the store's transaction boundary: an error from fn
// leaves no trace.
func (s *Store) update(sportKey string, fn func(*model.Sport) error) error {
	sp, err := s.sport(sportKey)
	if err != nil {
		return err
	}
	working := sp.Clone()
	if err := fn(working); err != nil {
		return err
	}
	s.sports[sportKey] = working
	return nil
}
