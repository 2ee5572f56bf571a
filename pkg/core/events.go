package core

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
)

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the store.
type Event struct {
	Type      EventType
	ID        int
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %d", e.Type, e.ID)
}

const defaultEventBuffer = 100

// broker fans events out to callbacks and watch channels.
type broker struct {
	mu         sync.RWMutex
	nextKey    int
	subs       map[int]func(Event)
	watchers   int
	bufferSize int
	dropped    atomic.Uint64
}

func newBroker() *broker {
	return &broker{
		subs:       make(map[int]func(Event)),
		bufferSize: defaultEventBuffer,
	}
}

func (b *broker) subscribe(fn func(Event)) func() {
	return b.add(fn, false)
}

func (b *broker) add(fn func(Event), isWatcher bool) func() {
	b.mu.Lock()
	key := b.nextKey
	b.nextKey++
	b.subs[key] = fn
	if isWatcher {
		b.watchers++
	}
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, key)
			if isWatcher {
				b.watchers--
			}
			b.mu.Unlock()
		})
	}
}

// publish calls every subscriber in registration order on the caller's goroutine.
// The list is copied first so callbacks may subscribe or unsubscribe.
func (b *broker) publish(e Event) {
	b.mu.RLock()
	keys := slices.Sorted(maps.Keys(b.subs))
	fns := make([]func(Event), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, b.subs[k])
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

func (b *broker) counts() (subscribers, watchers int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs) - b.watchers, b.watchers
}

// watcher is a buffered, pattern-filtered view over the broker.
type watcher struct {
	mu      sync.Mutex
	ch      chan Event
	pattern string
	closed  bool
}

func (w *watcher) deliver(e Event, dropped *atomic.Uint64) {
	ok, err := doublestar.Match(w.pattern, strconv.Itoa(e.ID))
	if err != nil || !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.ch <- e:
	default:
		dropped.Add(1)
	}
}

func (w *watcher) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	close(w.ch)
}

// Watch returns a channel of events whose note id matches pattern
// (doublestar syntax over the decimal id, "*" for everything).
// The channel is buffered; when the consumer falls behind, events are dropped
// rather than blocking the store. It is closed once ctx is done.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	b := s.events
	w := &watcher{ch: make(chan Event, b.bufferSize), pattern: pattern}

	unsubscribe := b.add(func(e Event) { w.deliver(e, &b.dropped) }, true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		unsubscribe()
		w.close()
		return nil
	})

	return w.ch, nil
}
