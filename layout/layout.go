package layout

import (
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

// Layout is the authoritative store (spec section 4.1): logic items,
// decorations, and one segment tree per wire id, including the two
// reserved uninserted aggregates. It has no knowledge of LayoutIndex,
// selections, or history; package editing orchestrates those against
// the messages Layout's mutators return.
//
// Layout is not safe for concurrent use (spec section 5): the core is
// single-threaded cooperative, and callers that want to use a Layout
// from multiple goroutines must synchronize externally.
type Layout struct {
	logicItems  []LogicItem
	decorations []Decoration

	wires      map[vocabulary.WireID]*segmenttree.Tree
	nextWireID int32
}

// New creates an empty Layout with both uninserted wire aggregates
// already present.
func New() *Layout {
	l := &Layout{
		wires: make(map[vocabulary.WireID]*segmenttree.Tree),
	}
	l.wires[vocabulary.TemporaryWireID] = segmenttree.NewTree(vocabulary.TemporaryWireID)
	l.wires[vocabulary.CollidingWireID] = segmenttree.NewTree(vocabulary.CollidingWireID)
	return l
}

// CreateLogicItem validates def at position and, if well-formed, stores
// it in StateTemporary, returning its id and an ElementCreated message.
// This is the raw store primitive behind the spec's add_logicitem;
// InsertionMode evaluation (collision checks, display-state
// transitions) is package editing's responsibility since it needs
// LayoutIndex, which Layout intentionally does not depend on.
func (l *Layout) CreateLogicItem(def LogicItemDefinition, position vocabulary.Grid) (vocabulary.LogicItemID, message.InfoMessage, error) {
	if err := def.IsWellFormed(position); err != nil {
		return 0, message.InfoMessage{}, err
	}
	id := l.addLogicItemRaw(LogicItem{Definition: def, Position: position, DisplayState: StateTemporary})
	return id, message.InfoMessage{Kind: message.ElementCreated, Class: message.ClassLogicItem, LogicItemID: id, ItemType: def.Type}, nil
}

// DeleteLogicItem removes id, which must be in StateTemporary (spec
// section 3: deletion from temporary is the only way ids are freed).
// It returns the ElementDeleted message and, if another item moved into
// id's slot, an InsertedLogicItemIdUpdated-shaped follow-up message the
// caller must also submit.
func (l *Layout) DeleteLogicItem(id vocabulary.LogicItemID) (deleted message.InfoMessage, moved *message.InfoMessage, err error) {
	if !l.IsLogicItemValid(id) {
		return message.InfoMessage{}, nil, vocabulary.New("DeleteLogicItem", vocabulary.InvalidID, "logic item %s", id)
	}
	if l.logicItems[id].DisplayState != StateTemporary {
		return message.InfoMessage{}, nil, vocabulary.New("DeleteLogicItem", vocabulary.InvalidState, "logic item %s is not temporary", id)
	}
	deleted = message.InfoMessage{Kind: message.ElementDeleted, Class: message.ClassLogicItem, LogicItemID: id}
	movedFrom, ok := l.deleteLogicItemRaw(id)
	if ok {
		m := message.InfoMessage{Kind: message.InsertedLogicItemIDUpdated, Class: message.ClassLogicItem, OldLogicItemID: movedFrom, LogicItemID: id}
		moved = &m
	}
	return deleted, moved, nil
}

// CreateDecoration is the decoration analogue of CreateLogicItem.
func (l *Layout) CreateDecoration(def DecorationDefinition, position vocabulary.Grid) (vocabulary.DecorationID, message.InfoMessage, error) {
	if err := def.IsWellFormed(position); err != nil {
		return 0, message.InfoMessage{}, err
	}
	id := l.addDecorationRaw(Decoration{Definition: def, Position: position, DisplayState: StateTemporary})
	return id, message.InfoMessage{Kind: message.ElementCreated, Class: message.ClassDecoration, DecorationID: id}, nil
}

// DeleteDecoration is the decoration analogue of DeleteLogicItem.
func (l *Layout) DeleteDecoration(id vocabulary.DecorationID) (deleted message.InfoMessage, moved *message.InfoMessage, err error) {
	if !l.IsDecorationValid(id) {
		return message.InfoMessage{}, nil, vocabulary.New("DeleteDecoration", vocabulary.InvalidID, "decoration %s", id)
	}
	if l.decorations[id].DisplayState != StateTemporary {
		return message.InfoMessage{}, nil, vocabulary.New("DeleteDecoration", vocabulary.InvalidState, "decoration %s is not temporary", id)
	}
	deleted = message.InfoMessage{Kind: message.ElementDeleted, Class: message.ClassDecoration, DecorationID: id}
	movedFrom, ok := l.deleteDecorationRaw(id)
	if ok {
		m := message.InfoMessage{Kind: message.InsertedLogicItemIDUpdated, Class: message.ClassDecoration, OldDecorationID: movedFrom, DecorationID: id}
		moved = &m
	}
	return deleted, moved, nil
}

// WireTree returns the segment tree for id, creating an empty one on
// first access for any non-reserved id so callers can lazily allocate
// new inserted wire ids.
func (l *Layout) WireTree(id vocabulary.WireID) *segmenttree.Tree {
	t, ok := l.wires[id]
	if !ok {
		t = segmenttree.NewTree(id)
		l.wires[id] = t
	}
	return t
}

// HasWire reports whether id has a tree at all (lazily-created trees
// for not-yet-used ids don't count until WireTree has been called).
func (l *Layout) HasWire(id vocabulary.WireID) bool {
	_, ok := l.wires[id]
	return ok
}

// AllocateWireID returns a fresh, never-before-used inserted wire id and
// creates its (empty) tree.
func (l *Layout) AllocateWireID() vocabulary.WireID {
	id := vocabulary.WireID(l.nextWireID)
	l.nextWireID++
	l.wires[id] = segmenttree.NewTree(id)
	return id
}

// WireIDs returns every inserted (non-reserved) wire id that currently
// has a non-empty tree.
func (l *Layout) WireIDs() []vocabulary.WireID {
	var ids []vocabulary.WireID
	for id, tree := range l.wires {
		if id.IsInserted() && tree.Len() > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// DeleteWire discards id's tree entirely (used once a wire's last
// segment is removed).
func (l *Layout) DeleteWire(id vocabulary.WireID) {
	delete(l.wires, id)
}
