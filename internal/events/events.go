// Package events carries domain change notifications from the record stores
// to the real-time gateway. Stores publish after each successful mutation and
// a single subscriber turns the events into wire-level broadcasts, so
// mutations entering over HTTP and over the websocket converge on one fan-out
// path.
package events

import "sync"

// Type identifies what changed. The values double as the websocket broadcast
// event names.
type Type string

const (
	ScoreboardCreated Type = "scoreboard:created"
	ScoreboardDeleted Type = "scoreboard:deleted"
	MatchCreated      Type = "tennis:match:created"
	MatchUpdated      Type = "tennis:match:updated"
	MatchDeleted      Type = "tennis:match:deleted"
)

// Event is one domain change with its canonical payload: the full record for
// creates and updates, an id reference for deletes.
type Event struct {
	Type    Type
	Payload any
}

// Publisher is the write side consumed by the stores.
type Publisher interface {
	Publish(Event)
}

// Bus fans events out synchronously to every subscriber, in subscription
// order. Delivery is fire-and-forget: subscribers get no way to reject or
// acknowledge an event.
type Bus struct {
	mu   sync.RWMutex
	subs []func(Event)
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for every subsequently published event.
func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish delivers e to all subscribers on the caller's goroutine.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}

// Discard is a Publisher that drops every event. Useful for stores running
// without a gateway attached, like the seeder.
type Discard struct{}

func (Discard) Publish(Event) {}
