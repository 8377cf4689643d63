package session

import (
	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// DragKind says what a drag gesture is carrying.
type DragKind string

const (
	// DragMarket moves one market between or within categories.
	DragMarket DragKind = "market"
	// DragCategory reorders the category cards themselves.
	DragCategory DragKind = "category"
)

// dragState records an in-flight gesture. Begin and hover change nothing in
// the store; only the terminal drop does.
type dragState struct {
	kind       DragKind
	id         string
	hoverID    string
	placeAfter bool
	hovering   bool
}

// BeginDrag records the dragged id. No store state changes until a drop;
// beginning a new drag abandons any previous one.
func (s *Session) BeginDrag(kind DragKind, id string) error {
	if id == "" {
		return common.Validationf("dragged id is required")
	}
	s.drag = &dragState{kind: kind, id: id}
	return nil
}

// Hover records the current drop target. Purely advisory: the view layer
// uses it for indicators, and the eventual drop resolves against it.
func (s *Session) Hover(targetID string, placeAfter bool) error {
	if s.drag == nil {
		return ErrNoDrag
	}
	s.drag.hoverID = targetID
	s.drag.placeAfter = placeAfter
	s.drag.hovering = true
	return nil
}

// Cancel ends the drag without touching the store, e.g. a drop outside any
// valid target.
func (s *Session) Cancel() {
	s.drag = nil
}

// Drop is the terminal phase of a drag over another item: a dragged market
// is re-inserted relative to the hovered market (landing in that market's
// category), a dragged category relative to the hovered category. The drag
// is finished afterwards whether or not the move succeeded.
func (s *Session) Drop() error {
	drag := s.drag
	s.drag = nil
	if drag == nil {
		return ErrNoDrag
	}
	if !drag.hovering {
		// Nothing was ever hovered; treat like a cancel.
		return nil
	}

	switch drag.kind {
	case DragCategory:
		return s.store.MoveCategory(s.sportKey, drag.id, drag.hoverID, drag.placeAfter)
	default:
		sp, err := s.store.Snapshot(s.sportKey)
		if err != nil {
			return err
		}
		ref := sp.FindMarket(drag.hoverID)
		if ref == nil {
			return common.NotFoundf("reference market %q", drag.hoverID)
		}
		return s.store.MoveMarket(s.sportKey, drag.id, ref.SuggestedCategory, drag.hoverID, drag.placeAfter)
	}
}

// DropOnCategory terminates a market drag released on a category card body
// rather than on a specific market: the market is reclassified without
// reordering, the way dropping into an empty card works.
func (s *Session) DropOnCategory(categoryName string) error {
	drag := s.drag
	s.drag = nil
	if drag == nil {
		return ErrNoDrag
	}
	if drag.kind != DragMarket {
		return common.Validationf("only markets can be dropped on a category body")
	}
	return s.store.SetMarketField(s.sportKey, drag.id, model.FieldSuggestedCategory, categoryName)
}

// Dragging reports the in-flight drag, if any, for view-layer feedback.
func (s *Session) Dragging() (DragKind, string, bool) {
	if s.drag == nil {
		return "", "", false
	}
	return s.drag.kind, s.drag.id, true
}
