package circuit

import (
	"context"

	"github.com/logiksim/circuitcore/history"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/selection"
)

// applyInverse reverses one history entry's effect (the Undo
// direction). Recreating a deleted element, or deleting a recreated
// one, may allocate a different id than the one the entry names if the
// slot was reused in between: fine for the single-operation-group
// involution spec section 8 requires, since nothing intervenes there.
func (c *CircuitData) applyInverse(ctx context.Context, e history.Entry) {
	switch e.Kind {
	case history.ElementCreated:
		c.discard(e.Key, e.Placed)

	case history.ElementDeleted:
		c.recreate(e.Key, e.Placed)

	case history.ElementMoved:
		if e.Key.Kind == history.ElementLogicItem {
			_ = c.editor.MoveLogicItem(e.Key.LogicItem, e.Move.From)
		}

	case history.ElementAttributeChanged:
		if e.Key.Kind == history.ElementLogicItem {
			c.editor.SetAttribute(e.Key.LogicItem, e.Placed.AttributeKey, e.Placed.FromValue)
		}

	case history.VisibleSelectionCleared:
		c.visible.SetInitial(e.SelectionBefore)

	case history.VisibleSelectionSet:
		c.visible.SetInitial(e.SelectionBefore)

	case history.VisibleSelectionAddOperation:
		c.visible.PopLast()

	case history.VisibleSelectionUpdateLast:
		c.visible.UpdateLast(e.Rects.Before)

	case history.VisibleSelectionPopLast:
		c.visible.AddOperation(selection.Operation{Function: e.Function, Rect: e.Rects.Before})
	}
}

// applyForward replays one history entry's effect again (the Redo
// direction).
func (c *CircuitData) applyForward(ctx context.Context, e history.Entry) {
	switch e.Kind {
	case history.ElementCreated:
		c.recreate(e.Key, e.Placed)

	case history.ElementDeleted:
		c.discard(e.Key, e.Placed)

	case history.ElementMoved:
		if e.Key.Kind == history.ElementLogicItem {
			_ = c.editor.MoveLogicItem(e.Key.LogicItem, e.Move.To)
		}

	case history.ElementAttributeChanged:
		if e.Key.Kind == history.ElementLogicItem {
			c.editor.SetAttribute(e.Key.LogicItem, e.Placed.AttributeKey, e.Placed.ToValue)
		}

	case history.VisibleSelectionCleared:
		c.visible.Clear()

	case history.VisibleSelectionSet:
		c.visible.SetInitial(e.SelectionAfter)

	case history.VisibleSelectionAddOperation:
		c.visible.AddOperation(selection.Operation{Function: e.Function, Rect: e.Rects.After})

	case history.VisibleSelectionUpdateLast:
		c.visible.UpdateLast(e.Rects.After)

	case history.VisibleSelectionPopLast:
		c.visible.PopLast()
	}
}

func (c *CircuitData) discard(key history.ElementKey, placed history.PlacedElement) {
	switch key.Kind {
	case history.ElementLogicItem:
		_ = c.editor.DeleteLogicItem(key.LogicItem)
	case history.ElementDecoration:
		_ = c.editor.DeleteDecoration(key.Decoration)
	case history.ElementWireSegment:
		_ = c.editor.DeleteWireSegment(key.Segment)
	}
}

func (c *CircuitData) recreate(key history.ElementKey, placed history.PlacedElement) {
	switch key.Kind {
	case history.ElementLogicItem:
		_, _ = c.editor.AddLogicItem(placed.LogicItemDef, placed.Position, layout.ModeInsertOrDiscard)
	case history.ElementDecoration:
		_, _ = c.editor.AddDecoration(placed.DecorationDef, placed.Position, layout.ModeInsertOrDiscard)
	case history.ElementWireSegment:
		_, _ = c.editor.AddWireSegment(placed.Line, placed.P0Type, placed.P1Type, layout.ModeInsertOrDiscard)
	}
}
