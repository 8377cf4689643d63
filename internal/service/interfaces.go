// Package service defines the interfaces the host UI consumes. The view
// layer reads snapshots and invokes mutations through these contracts; it
// never touches taxonomy entities directly.
package service

import (
	"context"
	"io"

	"github.com/Veraticus/the-markets-must-flow/internal/model"
	"github.com/Veraticus/the-markets-must-flow/internal/ordering"
	"github.com/Veraticus/the-markets-must-flow/internal/snapshot"
	"github.com/Veraticus/the-markets-must-flow/internal/taxonomy"
)

// TaxonomyStore is the full query and mutation surface of the in-memory
// store. Implemented by taxonomy.Store.
type TaxonomyStore interface {
	// Queries. Snapshots are deep copies; mutating them changes nothing.
	SportKeys() []string
	Snapshot(sportKey string) (*model.Sport, error)
	Stats(sportKey string) (taxonomy.Stats, error)
	CategoryNames(sportKey string) ([]string, error)
	SubcategoriesOf(sportKey, categoryName string) ([]string, error)
	ExternalTypes(sportKey string) ([]string, error)
	CurrentCategory(sportKey, marketID string) (string, error)
	Compare(sportKey, competitorKey string) (*taxonomy.Comparison, error)

	// Market mutations.
	AddMarket(sportKey, name, externalType, category, subcategory string, active bool) (*model.Market, error)
	SetMarketField(sportKey, marketID string, field model.MarketField, value any) error
	ToggleMarketActive(sportKey, marketID string) (bool, error)

	// Category mutations. Renames and deletes cascade to markets atomically.
	AddCategory(sportKey, name, parentName string) error
	RenameCategory(sportKey, oldName, newName string) error
	DeleteCategory(sportKey, name string) error
	RenameSubcategory(sportKey, categoryName, oldSub, newSub string) error

	// Reordering.
	MoveMarket(sportKey, marketID, destCategory, referenceID string, placeAfter bool) error
	MoveCategory(sportKey, draggedName, targetName string, placeAfter bool) error
	NormalizeCategoryOrder(sportKey string) error
}

// Serializer reads and replaces the whole multi-sport collection.
// Implemented by snapshot.Serializer.
type Serializer interface {
	ExportJSON() ([]byte, error)
	ExportCSV(sportKey string) ([]byte, error)
	Import(ctx context.Context, r io.Reader) error
	ImportFile(ctx context.Context, path string) error
}

// Grouper produces the display ordering for market lists. Implemented by
// ordering.Registry.
type Grouper interface {
	SortMarkets(sportKey, category string, markets []model.Market) []model.Market
	Group(sp *model.Sport, markets []model.Market, mode ordering.GroupMode) []ordering.Group
}

var (
	_ TaxonomyStore = (*taxonomy.Store)(nil)
	_ Serializer    = (*snapshot.Serializer)(nil)
	_ Grouper       = (*ordering.Registry)(nil)
)
