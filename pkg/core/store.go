package core

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Store holds the notes in insertion order.
// It is safe for concurrent use; subscribers are notified after the lock is released.
type Store struct {
	mu        sync.RWMutex
	notes     []Note
	lastID    int
	legacyIDs bool

	events *broker
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLegacyIDs makes Add assign len(notes)+1 as the new id.
// This reproduces the historical behavior, including duplicate ids after a removal.
func WithLegacyIDs(enabled bool) StoreOption {
	return func(s *Store) {
		s.legacyIDs = enabled
	}
}

// WithEventBuffer sets the channel buffer used by Watch.
// Zero or negative means default (100).
func WithEventBuffer(size int) StoreOption {
	return func(s *Store) {
		if size > 0 {
			s.events.bufferSize = size
		}
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{events: newBroker()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates the fields and appends a new note.
// On a validation error the store is left untouched.
func (s *Store) Add(title, text string) (Note, error) {
	if err := Validate(title, text).Err(); err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	n := Note{ID: s.nextID(), Title: title, Text: text}
	s.notes = append(s.notes, n)
	if n.ID > s.lastID {
		s.lastID = n.ID
	}
	s.mu.Unlock()

	s.events.publish(Event{Type: EventCreate, ID: n.ID, Timestamp: time.Now().Unix()})
	return n, nil
}

// Edit replaces the title and text of the note with the given id.
// Fields are validated before the lookup, so invalid input wins over ErrNotFound.
func (s *Store) Edit(id int, title, text string) error {
	if err := Validate(title, text).Err(); err != nil {
		return err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.notes[i].Title = title
	s.notes[i].Text = text
	s.mu.Unlock()

	s.events.publish(Event{Type: EventModify, ID: id, Timestamp: time.Now().Unix()})
	return nil
}

// Remove deletes the note with the given id.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.mu.Unlock()

	s.events.publish(Event{Type: EventDelete, ID: id, Timestamp: time.Now().Unix()})
	return nil
}

// Get returns the note with the given id.
func (s *Store) Get(id int) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.notes[i], nil
}

// ListAll returns a copy of all notes, most recently added first.
func (s *Store) ListAll() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	for i, n := range s.notes {
		out[len(s.notes)-1-i] = n
	}
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Subscribe registers fn to be called after every successful mutation.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	return s.events.subscribe(fn)
}

// nextID must be called with mu held.
func (s *Store) nextID() int {
	if s.legacyIDs {
		return len(s.notes) + 1
	}
	return s.lastID + 1
}

// indexOf returns the position of the first note with id, or -1.
// Must be called with mu held.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}
