package selection

import (
	"sync"

	"github.com/rs/xid"

	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

// SelectionResource is an opaque, reference-counted handle into a
// Registry (spec section 4.6). Cloning a handle (Registry.Clone)
// increments the refcount; Release decrements it, freeing the backing
// Selection once it reaches zero. A zero-value SelectionResource
// names no entry.
type SelectionResource struct {
	id xid.ID
}

// IsValid reports whether h names an entry at all (the zero value
// never does).
func (h SelectionResource) IsValid() bool {
	return h.id != xid.NilID()
}

type entry struct {
	selection *Selection
	refcount  int
}

// Registry owns the storage for every live selection and hands out
// SelectionResource handles. It subscribes to the message bus via
// Editor's conventions (see Apply) so every registered Selection stays
// valid under id renumbering without its owner needing to do anything.
type Registry struct {
	mu      sync.Mutex
	entries map[xid.ID]*entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[xid.ID]*entry)}
}

// Create allocates a new, empty Selection and returns a handle to it
// with a refcount of one.
func (r *Registry) Create() SelectionResource {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := xid.New()
	r.entries[id] = &entry{selection: New(), refcount: 1}
	return SelectionResource{id: id}
}

// Clone increments h's refcount and returns h unchanged, mirroring the
// RAII handle-copy spec section 4.6 describes.
func (r *Registry) Clone(h SelectionResource) SelectionResource {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[h.id]
	if !ok {
		vocabulary.Fatal("Registry.Clone", map[string]string{"handle": h.id.String()}, "cloning an unknown or already-released selection handle")
	}
	e.refcount++
	return h
}

// Release decrements h's refcount, freeing its storage once it reaches
// zero. Releasing an unknown handle is a programming error.
func (r *Registry) Release(h SelectionResource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[h.id]
	if !ok {
		vocabulary.Fatal("Registry.Release", map[string]string{"handle": h.id.String()}, "releasing an unknown or already-released selection handle")
	}
	e.refcount--
	if e.refcount <= 0 {
		delete(r.entries, h.id)
	}
}

// Get returns the live Selection behind h. The returned pointer must
// not be retained past the next Release of h.
func (r *Registry) Get(h SelectionResource) *Selection {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[h.id]
	if !ok {
		vocabulary.Fatal("Registry.Get", map[string]string{"handle": h.id.String()}, "dereferencing an unknown or already-released selection handle")
	}
	return e.selection
}

// RefCount reports h's current reference count, or 0 if h is unknown.
func (r *Registry) RefCount(h SelectionResource) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[h.id]
	if !ok {
		return 0
	}
	return e.refcount
}

// Apply fans msg out to every live selection in the registry, keeping
// every outstanding handle's Selection valid under id renumbering
// (spec section 4.6).
func (r *Registry) Apply(msg message.InfoMessage) {
	r.mu.Lock()
	selections := make([]*Selection, 0, len(r.entries))
	for _, e := range r.entries {
		selections = append(selections, e.selection)
	}
	r.mu.Unlock()

	for _, sel := range selections {
		sel.Apply(msg)
	}
}
