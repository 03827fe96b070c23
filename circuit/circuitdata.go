// Package circuit is the external-facing surface spec section 6
// describes: CircuitData aggregates a Layout, its derived LayoutIndex,
// the message bus, the selection registry, the active VisibleSelection,
// and the history stack, and exposes the editing/selection/history
// operations a GUI or fuzzer collaborator calls. It owns no rendering,
// simulation, or persistence concerns (spec section 1's Non-goals).
package circuit

import (
	"github.com/go-logr/logr"

	"github.com/logiksim/circuitcore/editing"
	"github.com/logiksim/circuitcore/history"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/selection"
)

// CircuitData is not safe for concurrent use: like the teacher's
// ticking components, it assumes a single-threaded cooperative caller
// (spec section 5) rather than locking itself.
type CircuitData struct {
	layout *layout.Layout
	index  *layoutindex.LayoutIndex
	bus    *message.Bus
	editor *editing.Editor

	registry *selection.Registry
	visible  *selection.VisibleSelection

	undoStack *history.Stack
	redoStack *history.Stack

	validator *Validator
	log       logr.Logger
}

// Option configures a CircuitData at construction, the functional-
// options analogue of the teacher's config.DeviceBuilder fluent
// builder (here a CircuitData has fixed identity, not a product
// assembled once from many sub-builders, so options replace builder
// methods).
type Option func(*CircuitData)

// WithLogger wires a logr.Logger sink; the default is logr.Discard().
func WithLogger(l logr.Logger) Option {
	return func(c *CircuitData) { c.log = l }
}

// WithValidator enables the shadow-replay message validator (spec
// section 4.8's consistency check): every committed message is
// replayed from scratch against a fresh LayoutIndex and diffed against
// the live one, aborting via vocabulary.Fatal on any divergence. This
// is expensive (O(n) per message) and meant for tests and the fuzzer,
// not production use.
func WithValidator() Option {
	return func(c *CircuitData) {
		c.validator = newValidator(c.layout, c.index, c.log)
		c.bus.Subscribe(c.validator.observe)
	}
}

// New creates an empty CircuitData: an empty Layout, a freshly
// initialized LayoutIndex subscribed to the bus, an empty selection
// registry, an empty VisibleSelection, and an empty history stack.
func New(opts ...Option) *CircuitData {
	l := layout.New()
	idx := layoutindex.New()
	bus := message.NewBus()

	c := &CircuitData{
		layout:    l,
		index:     idx,
		bus:       bus,
		editor:    editing.New(l, idx, bus),
		registry:  selection.NewRegistry(),
		visible:   selection.NewVisibleSelection(nil),
		undoStack: history.NewStack(),
		redoStack: history.NewStack(),
		log:       logr.Discard(),
	}
	bus.Subscribe(func(msg message.InfoMessage) {
		c.registry.Apply(msg)
		c.visible.Apply(msg)
	})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Layout exposes the authoritative layout read-only (spec section 6's
// layout()/layout_index() accessors).
func (c *CircuitData) Layout() *layout.Layout {
	return c.layout
}

// Index exposes the derived LayoutIndex read-only.
func (c *CircuitData) Index() *layoutindex.LayoutIndex {
	return c.index
}

// Bus exposes the message bus so a GUI collaborator can subscribe its
// own observers (e.g. a renderer) without CircuitData taking ownership
// of them (spec section 6).
func (c *CircuitData) Bus() *message.Bus {
	return c.bus
}

// Registry exposes the selection registry for Create/Clone/Release/Get
// calls (spec section 4.6's external ref-counted handle API).
func (c *CircuitData) Registry() *selection.Registry {
	return c.registry
}

// VisibleSelection exposes the single active visible selection (spec
// section 3 and 6: there is exactly one per CircuitData).
func (c *CircuitData) VisibleSelection() *selection.VisibleSelection {
	return c.visible
}
