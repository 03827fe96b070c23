// Package editing implements the collision-aware editing operations
// spec section 4.3 describes: add/delete/move for logic items,
// decorations, and wire segments, each governed by an InsertionMode
// that decides whether a candidate placement is checked for
// collisions at all, checked and left previewable, or checked and
// either committed or discarded outright.
//
// Editor is the orchestrator spec.md implies but Layout deliberately
// does not provide: Layout exposes only raw store primitives (see
// layout.Layout's doc comment) since InsertionMode evaluation needs
// LayoutIndex's collision data, and Layout must not depend on
// LayoutIndex. Editor depends on both.
package editing

import (
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/message"
)

// Editor mutates a Layout through collision-aware operations, keeping
// a LayoutIndex and a message Bus synchronized with every change.
type Editor struct {
	Layout *layout.Layout
	Index  *layoutindex.LayoutIndex
	Bus    *message.Bus
}

// New creates an Editor over l and idx, subscribing idx to bus so
// every message Editor submits updates the derived indices before
// Submit returns (spec section 5: the core is synchronous).
func New(l *layout.Layout, idx *layoutindex.LayoutIndex, bus *message.Bus) *Editor {
	bus.Subscribe(func(msg message.InfoMessage) { idx.Apply(msg, l) })
	return &Editor{Layout: l, Index: idx, Bus: bus}
}

// submit dispatches msg (and, if non-nil, a follow-up id-moved
// message) through the bus in commit order.
func (e *Editor) submit(msg message.InfoMessage, moved *message.InfoMessage) {
	e.Bus.Submit(msg)
	if moved != nil {
		e.Bus.Submit(*moved)
	}
}
