// Package snapshot serializes the taxonomy store: full JSON snapshots that
// round-trip the ordering state exactly, a tabular CSV export for offline
// inspection, and the atomic replace-or-reject JSON import.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
	"github.com/Veraticus/the-markets-must-flow/internal/taxonomy"
)

// Snapshot is the wire form of a full export.
type Snapshot struct {
	ExportDate string                  `json:"exportDate"`
	Sports     map[string]*model.Sport `json:"sports"`
}

// Serializer reads and replaces the store's multi-sport collection.
type Serializer struct {
	store *taxonomy.Store
	now   func() time.Time
}

// New creates a serializer over the given store.
func New(store *taxonomy.Store) *Serializer {
	return &Serializer{store: store, now: time.Now}
}

// ExportJSON normalizes every sport's category order keys, then emits the
// whole collection as indented JSON. Normalization runs against the store
// itself so the exported order and the live order cannot disagree.
func (s *Serializer) ExportJSON() ([]byte, error) {
	for _, key := range s.store.SportKeys() {
		if err := s.store.NormalizeCategoryOrder(key); err != nil {
			return nil, fmt.Errorf("failed to normalize sport %q: %w", key, err)
		}
	}

	snap := Snapshot{
		ExportDate: s.now().UTC().Format(time.RFC3339),
		Sports:     s.store.SnapshotAll(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	common.LogInfo("exported snapshot", common.Fields{"sports": len(snap.Sports), "bytes": len(data)})
	return data, nil
}
