/*
Package prefs enforces the user-preference invariants on top of the
key-value store: favorites are a set, recents are deduplicated and
recency-ordered with a hard cap, and every mutation broadcasts a typed
change event.

Storage failures degrade to empty state silently; there is no retry.
The next successful write re-establishes correct state.
*/
package prefs

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/store"
)

const (
	// recentWriteCap bounds what is persisted on each visit.
	recentWriteCap = 15
	// recentReadCap bounds what a read returns after the defensive re-sort.
	recentReadCap = 20
)

// RecentTool pairs a tool with the moment it was last visited.
// Timestamp is milliseconds since the Unix epoch.
type RecentTool struct {
	Tool      catalog.Tool `json:"tool"`
	Timestamp int64        `json:"timestamp"`
}

// Preferences is the sparse display/behavior settings record.
type Preferences struct {
	PreferredTheme  string `json:"preferredTheme,omitempty"`
	ShowRecentTools bool   `json:"showRecentTools"`
	MaxRecentTools  int    `json:"maxRecentTools"`
}

// PreferencesPatch is a partial update; nil fields are left unchanged.
type PreferencesPatch struct {
	PreferredTheme  *string
	ShowRecentTools *bool
	MaxRecentTools  *int
}

func defaultPreferences() Preferences {
	return Preferences{
		ShowRecentTools: true,
		MaxRecentTools:  10,
	}
}

// Manager owns the favorites set, the recent-tools list, and the
// preference record. All methods are safe for silent storage failure.
type Manager struct {
	store *store.Store
	bus   *Broadcaster
	log   *zap.Logger
	now   func() time.Time
}

// NewManager wires a manager over the given store.
func NewManager(s *store.Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store: s,
		bus:   NewBroadcaster(),
		log:   log,
		now:   time.Now,
	}
}

// Subscribe registers a change listener; the returned func removes it.
func (m *Manager) Subscribe(fn Subscriber) func() {
	return m.bus.Subscribe(fn)
}

// Favorites returns the current favorites set in insertion order.
func (m *Manager) Favorites() []catalog.Tool {
	var favorites []catalog.Tool
	m.store.ReadJSON(store.KeyFavorites, &favorites)
	return favorites
}

// IsFavorite reports membership of a tool in the favorites set.
func (m *Manager) IsFavorite(toolID string) bool {
	for _, t := range m.Favorites() {
		if t.ID == toolID {
			return true
		}
	}
	return false
}

// AddFavorite inserts a tool into the favorites set. Adding a tool that
// is already present is a no-op and broadcasts nothing.
func (m *Manager) AddFavorite(tool catalog.Tool) {
	favorites := m.Favorites()
	for _, t := range favorites {
		if t.ID == tool.ID {
			return
		}
	}

	favorites = append(favorites, tool)
	m.store.WriteJSON(store.KeyFavorites, favorites)
	m.bus.publish(Event{
		Kind:      EventFavorites,
		Action:    "add",
		Tool:      &tool,
		Favorites: favorites,
	})
}

// RemoveFavorite deletes a tool from the favorites set. Removing an
// absent tool is a no-op and broadcasts nothing.
func (m *Manager) RemoveFavorite(toolID string) {
	favorites := m.Favorites()

	kept := favorites[:0]
	var removed *catalog.Tool
	for _, t := range favorites {
		if t.ID == toolID {
			tt := t
			removed = &tt
			continue
		}
		kept = append(kept, t)
	}
	if removed == nil {
		return
	}

	m.store.WriteJSON(store.KeyFavorites, kept)
	m.bus.publish(Event{
		Kind:      EventFavorites,
		Action:    "remove",
		Tool:      removed,
		Favorites: kept,
	})
}

// Recent returns the recent-tools list, most recent first. The list is
// re-sorted on read so externally corrupted ordering never leaks out.
func (m *Manager) Recent() []RecentTool {
	var recent []RecentTool
	m.store.ReadJSON(store.KeyRecentTools, &recent)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp > recent[j].Timestamp
	})
	if len(recent) > recentReadCap {
		recent = recent[:recentReadCap]
	}
	return recent
}

// AddRecent records a visit to a tool: any existing entry for the same
// tool is replaced, the new entry goes first, and the list is truncated
// to the write cap (oldest entries dropped).
func (m *Manager) AddRecent(tool catalog.Tool) {
	recent := m.Recent()

	filtered := make([]RecentTool, 0, len(recent)+1)
	filtered = append(filtered, RecentTool{
		Tool:      tool,
		Timestamp: m.now().UnixMilli(),
	})
	for _, r := range recent {
		if r.Tool.ID != tool.ID {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) > recentWriteCap {
		filtered = filtered[:recentWriteCap]
	}

	m.store.WriteJSON(store.KeyRecentTools, filtered)
	m.bus.publish(Event{
		Kind:    EventRecents,
		Action:  "add",
		Tool:    &tool,
		Recents: filtered,
	})
}

// ClearRecent removes the whole recent-tools list.
func (m *Manager) ClearRecent() {
	m.store.Remove(store.KeyRecentTools)
	m.bus.publish(Event{
		Kind:    EventRecents,
		Action:  "clear",
		Recents: []RecentTool{},
	})
}

// Preferences returns the stored settings, with defaults applied when
// nothing (or garbage) is stored.
func (m *Manager) Preferences() Preferences {
	prefs := defaultPreferences()
	if !m.store.ReadJSON(store.KeyPreferences, &prefs) {
		return defaultPreferences()
	}
	if prefs.MaxRecentTools <= 0 {
		prefs.MaxRecentTools = defaultPreferences().MaxRecentTools
	}
	return prefs
}

// UpdatePreferences merges a partial update into the stored settings.
// Nil patch fields leave the current value in place.
func (m *Manager) UpdatePreferences(patch PreferencesPatch) {
	prefs := m.Preferences()

	if patch.PreferredTheme != nil {
		prefs.PreferredTheme = *patch.PreferredTheme
	}
	if patch.ShowRecentTools != nil {
		prefs.ShowRecentTools = *patch.ShowRecentTools
	}
	if patch.MaxRecentTools != nil {
		prefs.MaxRecentTools = *patch.MaxRecentTools
	}

	m.store.WriteJSON(store.KeyPreferences, prefs)
	m.bus.publish(Event{
		Kind:        EventPreferences,
		Action:      "update",
		Preferences: &prefs,
	})
}
