// Package history implements the grouped, coalescing undo/redo stack
// spec section 4.7 describes: a sequence of HistoryEntry discriminators
// delimited by new_group markers, with every entry's payload carried in
// a handful of side vectors popped in lock-step with the discriminator
// they belong to. This Go expression collapses the source's several
// parallel vectors-of-primitives into one slice of a single entry
// struct (same lock-step pop/push shape, same "popping the wrong kind
// is a programming error" contract) rather than hand-rolling seven
// separate slices, which the source needs to avoid a tagged union but
// Go's struct-with-union-of-pointers shape does not.
package history

import (
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/selection"
	"github.com/logiksim/circuitcore/vocabulary"
)

// ElementKind tags which store an ElementKey names.
type ElementKind int

const (
	ElementLogicItem ElementKind = iota
	ElementDecoration
	ElementWireSegment
)

// ElementKey names the element (and, for a selection-membership entry,
// the selection) one history entry concerns. This generalizes spec
// section 4.7's decoration_key_t to every entity kind the editing
// surface covers (logic items and wire segments undo exactly the way
// decorations do), and additionally carries the target SelectionResource
// for the two selection-membership entry kinds, since undoing
// "add id to selection S" needs to know which S.
type ElementKey struct {
	Kind       ElementKind
	LogicItem  vocabulary.LogicItemID
	Decoration vocabulary.DecorationID
	Segment    vocabulary.Segment
	Target     selection.SelectionResource
}

// PlacedElement is the payload recreating or discarding an element:
// enough to undo a delete (recreate it) or undo a create (delete it
// again), and to carry the old/new value of a mode-change or
// attribute-change entry sharing the same payload slot.
type PlacedElement struct {
	Position      vocabulary.Grid
	LogicItemDef  layout.LogicItemDefinition
	DecorationDef layout.DecorationDefinition
	Line          vocabulary.OrderedLine
	P0Type, P1Type vocabulary.SegmentPointType

	FromState, ToState layout.DisplayState

	AttributeKey        string
	FromValue, ToValue   string
}

// MoveDelta records a move entry's old and new position.
type MoveDelta struct {
	From, To vocabulary.Grid
}

// RectPair records a VisibleSelection rect-carrying entry's old and new
// rect: add_operation only ever has an After (no prior rect at that
// slot), update_last has both.
type RectPair struct {
	Before, After layoutindex.Rect
}

// Kind discriminates one HistoryEntry.
type Kind int

const (
	// NewGroup delimits a user-visible transaction boundary.
	NewGroup Kind = iota

	ElementCreated
	ElementDeleted
	ElementModeChanged
	ElementMoved
	ElementAttributeChanged

	SelectionAdded
	SelectionRemoved

	VisibleSelectionCleared
	VisibleSelectionSet
	VisibleSelectionAddOperation
	VisibleSelectionUpdateLast
	VisibleSelectionPopLast
)

func (k Kind) String() string {
	names := [...]string{
		"new_group",
		"element_created", "element_deleted", "element_mode_changed",
		"element_moved", "element_attribute_changed",
		"selection_added", "selection_removed",
		"visible_selection_cleared", "visible_selection_set",
		"visible_selection_add_operation", "visible_selection_update_last",
		"visible_selection_pop_last",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "invalid"
}

// entry is one row of the history stack: the discriminator plus every
// side-vector slot, only the slots relevant to Kind ever populated.
type entry struct {
	kind Kind
	key  ElementKey

	placed PlacedElement
	move   MoveDelta

	selectionBefore *selection.Selection
	selectionAfter  *selection.Selection
	rects           RectPair
	function        selection.Function
}
