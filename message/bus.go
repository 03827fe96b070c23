package message

import (
	"sync"

	"github.com/rs/xid"
)

// Observer receives every InfoMessage the bus dispatches, in the order
// the owning CircuitData commits mutations.
type Observer func(InfoMessage)

// Subscription is the opaque handle returned by Bus.Subscribe. A caller
// that wants to stop receiving messages passes it to Unsubscribe; the
// bus takes no ownership of the callback itself (spec section 6), so
// Unsubscribe only removes the bus's reference, it never touches
// whatever resource the callback closed over.
type Subscription xid.ID

// Bus fans a message out synchronously to every subscribed Observer,
// plus whatever sub-indices, selection stores, and optional validator
// CircuitData has wired to it directly. It holds no message history of
// its own; package circuit's CircuitData.Messages log is the optional
// recorder spec section 4.8 describes.
type Bus struct {
	mu        sync.Mutex
	observers map[xid.ID]Observer
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{observers: make(map[xid.ID]Observer)}
}

// Subscribe registers fn and returns a token to unsubscribe it later.
func (b *Bus) Subscribe(fn Observer) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := xid.New()
	b.observers[id] = fn
	return Subscription(id)
}

// Unsubscribe removes a previously subscribed Observer. It is a no-op
// if sub is unknown (already unsubscribed, or zero value).
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.observers, xid.ID(sub))
}

// Submit dispatches msg to every subscribed observer, in registration
// order is not guaranteed (map iteration); callers that need ordering
// guarantees across observers should not depend on relative observer
// order, only on the stream being delivered strictly in commit order
// per observer (spec section 5).
func (b *Bus) Submit(msg InfoMessage) {
	b.mu.Lock()
	observers := make([]Observer, 0, len(b.observers))
	for _, fn := range b.observers {
		observers = append(observers, fn)
	}
	b.mu.Unlock()

	for _, fn := range observers {
		fn(msg)
	}
}
