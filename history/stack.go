package history

import (
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/selection"
	"github.com/logiksim/circuitcore/vocabulary"
)

// Stack is the grouped, coalescing history described in spec section
// 4.7. Every PushXxx method runs its entry past the coalescing rules
// in coalesce.go before appending, so the stack never holds two
// adjacent entries a rule would merge or cancel.
type Stack struct {
	entries []entry
}

// NewStack returns an empty history stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len reports how many entries (including new_group markers) the
// stack currently holds.
func (s *Stack) Len() int {
	return len(s.entries)
}

// TopKind reports the discriminator of the most recently pushed entry,
// or NewGroup on an empty stack (an empty stack behaves like one that
// just opened a group, for BeginGroup's idempotence check).
func (s *Stack) TopKind() Kind {
	if len(s.entries) == 0 {
		return NewGroup
	}
	return s.entries[len(s.entries)-1].kind
}

// HasUngroupedEntries reports whether the top of the stack is a real
// entry rather than a new_group marker: true means the in-progress
// group already has content worth keeping.
func (s *Stack) HasUngroupedEntries() bool {
	return len(s.entries) > 0 && s.entries[len(s.entries)-1].kind != NewGroup
}

// BeginGroup closes off the current transaction by pushing a new_group
// marker, unless the stack is already empty or already sitting on one
// (no duplicate empty groups).
func (s *Stack) BeginGroup() {
	if len(s.entries) == 0 || s.entries[len(s.entries)-1].kind == NewGroup {
		return
	}
	s.entries = append(s.entries, entry{kind: NewGroup})
}

// ReopenGroup pops trailing new_group markers so the next push joins
// the previous group instead of starting a new one (used when an
// editing gesture that looked finished turns out to continue, e.g. a
// second click extending a rubber-band selection).
func (s *Stack) ReopenGroup() {
	for len(s.entries) > 0 && s.entries[len(s.entries)-1].kind == NewGroup {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

func (s *Stack) top() *entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) pop() entry {
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e
}

func (s *Stack) push(e entry) {
	s.entries = append(s.entries, e)
}

// PopGroup pops every entry down to and including the next new_group
// marker (or to the bottom of the stack, if no marker remains),
// returning the popped entries in push order (oldest first) so a
// caller can replay their inverse in reverse.
func (s *Stack) PopGroup() []Entry {
	var out []Entry
	for len(s.entries) > 0 {
		e := s.pop()
		if e.kind == NewGroup {
			break
		}
		out = append(out, toPublic(e))
	}
	reverse(out)
	return out
}

func reverse(es []Entry) {
	for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
		es[i], es[j] = es[j], es[i]
	}
}

// Entry is the read-only, exported view of one history row a caller
// (the circuit package) interprets to drive undo/redo.
type Entry struct {
	Kind Kind
	Key  ElementKey

	Placed PlacedElement
	Move   MoveDelta

	SelectionBefore *selection.Selection
	SelectionAfter  *selection.Selection
	Rects           RectPair
	Function        selection.Function
}

// PushRaw appends e verbatim, bypassing every coalescing rule: used by
// undo/redo to move an already-coalesced entry between the undo and
// redo stacks without re-running the rules meant for live editing.
func (s *Stack) PushRaw(e Entry) {
	s.push(fromPublic(e))
}

func fromPublic(e Entry) entry {
	return entry{
		kind:            e.Kind,
		key:             e.Key,
		placed:          e.Placed,
		move:            e.Move,
		selectionBefore: e.SelectionBefore,
		selectionAfter:  e.SelectionAfter,
		rects:           e.Rects,
		function:        e.Function,
	}
}

func toPublic(e entry) Entry {
	return Entry{
		Kind:            e.kind,
		Key:             e.key,
		Placed:          e.placed,
		Move:            e.move,
		SelectionBefore: e.selectionBefore,
		SelectionAfter:  e.selectionAfter,
		Rects:           e.rects,
		Function:        e.function,
	}
}

// --- decoration/element entries (create, delete, mode-change, attribute-change) ---

// PushCreated records that key was just created with payload placed.
// A create immediately following a delete of the same key cancels both
// (spec section 4.7).
func (s *Stack) PushCreated(key ElementKey, placed PlacedElement) {
	if t := s.top(); t != nil && t.kind == ElementDeleted && t.key == key {
		s.pop()
		return
	}
	s.push(entry{kind: ElementCreated, key: key, placed: placed})
}

// PushDeleted records that key was just deleted, placed holding enough
// to recreate it. A delete immediately following a create of the same
// key cancels both.
func (s *Stack) PushDeleted(key ElementKey, placed PlacedElement) {
	if t := s.top(); t != nil && t.kind == ElementCreated && t.key == key {
		s.pop()
		return
	}
	s.push(entry{kind: ElementDeleted, key: key, placed: placed})
}

// PushModeChanged records a display-state transition. An inverse
// transition immediately following cancels both; a transition chaining
// through StateColliding collapses the intermediate step away.
func (s *Stack) PushModeChanged(key ElementKey, from, to layout.DisplayState) {
	if t := s.top(); t != nil && t.kind == ElementModeChanged && t.key == key {
		if t.placed.FromState == to && t.placed.ToState == from {
			s.pop()
			return
		}
		if t.placed.ToState == from && collapsesModeChange(t.placed.ToState, to) {
			merged := *t
			merged.placed.ToState = to
			s.pop()
			s.push(merged)
			return
		}
	}
	s.push(entry{kind: ElementModeChanged, key: key, placed: PlacedElement{FromState: from, ToState: to}})
}

// PushMoved records a position change. A move immediately following
// another move of the same key within the same group is coalesced: the
// stack keeps the original From and adopts the new To, rather than
// growing by one entry per pointer-move event.
func (s *Stack) PushMoved(key ElementKey, from, to vocabulary.Grid) {
	if t := s.top(); t != nil && t.kind == ElementMoved && t.key == key {
		t.move.To = to
		return
	}
	s.push(entry{kind: ElementMoved, key: key, move: MoveDelta{From: from, To: to}})
}

// PushAttributeChanged records an attribute edit. A change_attributes
// immediately following another one on the same key and attribute is
// suppressed: the existing entry's ToValue is updated in place so a
// burst of edits collapses to a single undo step.
func (s *Stack) PushAttributeChanged(key ElementKey, attrKey, from, to string) {
	if t := s.top(); t != nil && t.kind == ElementAttributeChanged && t.key == key && t.placed.AttributeKey == attrKey {
		t.placed.ToValue = to
		return
	}
	s.push(entry{kind: ElementAttributeChanged, key: key, placed: PlacedElement{AttributeKey: attrKey, FromValue: from, ToValue: to}})
}

// --- selection-membership entries ---

// PushSelectionAdded records that key.LogicItem/Decoration/Segment was
// added to the selection named by key.Target.
func (s *Stack) PushSelectionAdded(key ElementKey) {
	s.push(entry{kind: SelectionAdded, key: key})
}

// PushSelectionRemoved records removal, the inverse of PushSelectionAdded.
func (s *Stack) PushSelectionRemoved(key ElementKey) {
	s.push(entry{kind: SelectionRemoved, key: key})
}

// --- visible-selection entries ---

// PushVisibleSelectionCleared records a visible_selection_clear, prior
// holding a materialized snapshot of what the VisibleSelection
// represented immediately before clearing (the simplification spec
// section 4.7 leaves open: the source's full initial+operations state
// is not reconstructible from one PartSelection-level snapshot, so undo
// restores the clear to a pure initial selection with no operations,
// which is observably identical once ApplyAllOperations would have run
// anyway).
func (s *Stack) PushVisibleSelectionCleared(prior *selection.Selection) {
	s.push(entry{kind: VisibleSelectionCleared, selectionBefore: prior})
}

// PushVisibleSelectionSet records a visible_selection_set, before
// holding the pre-call snapshot (for undo) and after holding sel
// itself (for redo).
func (s *Stack) PushVisibleSelectionSet(before, after *selection.Selection) {
	s.push(entry{kind: VisibleSelectionSet, selectionBefore: before, selectionAfter: after})
}

// PushVisibleSelectionAddOperation records one add_operation call. If
// it is immediately preceded by a pop_last (with only update_last
// entries intervening), the pop_last and every intervening update_last
// are cancelled instead of appending a new entry: this is the common
// "extend the rubber-band, then click again to commit it" sequence,
// which should read back as one continuous operation rather than
// pop-then-recreate. Cancelling only removes the pop_last/update_last
// noise; the surviving add_operation entry underneath still names the
// operation that was popped, so it is rewritten to op's Rect/Function
// here, or the stack would redo back to the discarded operation
// instead of the one actually live now.
func (s *Stack) PushVisibleSelectionAddOperation(op selection.Operation) {
	i := len(s.entries)
	for i > 0 && s.entries[i-1].kind == VisibleSelectionUpdateLast {
		i--
	}
	if i > 0 && s.entries[i-1].kind == VisibleSelectionPopLast {
		s.entries = s.entries[:i-1]
		if t := s.top(); t != nil && t.kind == VisibleSelectionAddOperation {
			t.rects.After = op.Rect
			t.function = op.Function
		}
		return
	}
	s.push(entry{kind: VisibleSelectionAddOperation, rects: RectPair{After: op.Rect}, function: op.Function})
}

// PushVisibleSelectionUpdateLast records one update_last call. An
// update_last immediately following another one in the same group is
// suppressed: the existing entry keeps its original Before and adopts
// the new After.
func (s *Stack) PushVisibleSelectionUpdateLast(before, after layoutindex.Rect) {
	if t := s.top(); t != nil && t.kind == VisibleSelectionUpdateLast {
		t.rects.After = after
		return
	}
	s.push(entry{kind: VisibleSelectionUpdateLast, rects: RectPair{Before: before, After: after}})
}

// PushVisibleSelectionPopLast records one pop_last call, popped holding
// the operation that was removed (so undo can re-add it).
func (s *Stack) PushVisibleSelectionPopLast(popped selection.Operation) {
	s.push(entry{kind: VisibleSelectionPopLast, rects: RectPair{Before: popped.Rect}, function: popped.Function})
}
