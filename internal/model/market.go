package model

import "fmt"

// Market represents a single bettable proposition within a sport.
type Market struct {
	ID                   string `json:"id"`
	OriginalName         string `json:"originalName"`
	DisplayName          string `json:"displayName,omitempty"`
	ExternalType         string `json:"externalType"`
	SuggestedCategory    string `json:"suggestedCategory"`
	SuggestedSubcategory string `json:"suggestedSubcategory"`
	Active               bool   `json:"active"`
	NeedsReview          bool   `json:"needsReview,omitempty"`
}

// EffectiveName returns the operator-facing name: the display override when
// set, otherwise the immutable upstream name.
func (m *Market) EffectiveName() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.OriginalName
}

// Validate ensures the Market has valid data.
func (m *Market) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("market id is required")
	}
	if m.OriginalName == "" {
		return fmt.Errorf("market original name is required")
	}
	return nil
}

// MarketField names a mutable Market field for SetMarketField-style writes.
type MarketField string

const (
	// FieldSuggestedCategory reclassifies the market within the suggested taxonomy.
	FieldSuggestedCategory MarketField = "suggestedCategory"
	// FieldSuggestedSubcategory moves the market within its category.
	FieldSuggestedSubcategory MarketField = "suggestedSubcategory"
	// FieldActive toggles whether the market is offered.
	FieldActive MarketField = "active"
	// FieldDisplayName overrides the upstream name for display.
	FieldDisplayName MarketField = "displayName"
	// FieldNeedsReview flags the market for later operator attention.
	FieldNeedsReview MarketField = "needsReview"
)

// Valid reports whether f is one of the writable market fields.
func (f MarketField) Valid() bool {
	switch f {
	case FieldSuggestedCategory, FieldSuggestedSubcategory, FieldActive, FieldDisplayName, FieldNeedsReview:
		return true
	}
	return false
}
