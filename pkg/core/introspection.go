package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes         int    `json:"notes"`
	NextID        int    `json:"next_id"`
	LegacyIDs     bool   `json:"legacy_ids"`
	Subscribers   int    `json:"subscribers"`
	Watchers      int    `json:"watchers"`
	EventBuffer   int    `json:"event_buffer"`
	DroppedEvents uint64 `json:"dropped_events"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	notes, next := len(s.notes), s.nextID()
	s.mu.RUnlock()

	subscribers, watchers := s.events.counts()

	return StoreState{
		Notes:         notes,
		NextID:        next,
		LegacyIDs:     s.legacyIDs,
		Subscribers:   subscribers,
		Watchers:      watchers,
		EventBuffer:   s.events.bufferSize,
		DroppedEvents: s.events.dropped.Load(),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
