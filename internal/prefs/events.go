package prefs

import (
	"sync"

	"github.com/dapsigames/game-hub/internal/catalog"
)

// EventKind identifies which preference surface changed.
type EventKind string

const (
	EventFavorites   EventKind = "favorites"
	EventRecents     EventKind = "recents"
	EventPreferences EventKind = "preferences"
)

// Event is the typed change notification delivered to subscribers.
// Exactly one of Favorites, Recents, or Preferences is populated,
// matching Kind, and carries the full post-change state.
type Event struct {
	Kind   EventKind
	Action string // "add", "remove", "clear", "update"

	// Tool is the entry involved in an add/remove, when applicable.
	Tool *catalog.Tool

	Favorites   []catalog.Tool
	Recents     []RecentTool
	Preferences *Preferences
}

// Subscriber receives change events. Callbacks run synchronously on the
// mutating goroutine and must not block.
type Subscriber func(Event)

// Broadcaster is a small typed pub-sub hub. Multiple independent
// consumers (CLI surfaces, HTTP handlers) subscribe to stay consistent
// without coupling to each other.
type Broadcaster struct {
	mu   sync.RWMutex
	next int
	subs map[int]Subscriber
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]Subscriber)}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Broadcaster) Subscribe(fn Subscriber) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// publish delivers e to every subscriber.
func (b *Broadcaster) publish(e Event) {
	b.mu.RLock()
	subs := make([]Subscriber, 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}
