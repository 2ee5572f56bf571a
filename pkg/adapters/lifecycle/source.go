package lifecycle

import (
	"context"
	"log/slog"
	"slices"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

type storeSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	types  []core.EventType
	logger *slog.Logger
}

// SourceOption configures a store Source.
type SourceOption func(*storeSource)

// WithTypes limits the source to the given event types.
// Without it every event is forwarded.
func WithTypes(types ...core.EventType) SourceOption {
	return func(s *storeSource) {
		s.types = append(s.types, types...)
	}
}

// WithLogger logs forwarded and skipped events at debug level.
func WithLogger(logger *slog.Logger) SourceOption {
	return func(s *storeSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSource creates a lifecycle.Source that emits note store events.
// Feed it the channel returned by core.Store.Watch.
func NewSource(events <-chan core.Event, opts ...SourceOption) lifecycle.Source {
	s := &storeSource{
		events: events,
		out:    make(chan lifecycle.Event),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *storeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					s.logger.Debug("store event stream closed")
					return nil
				}
				if !s.wants(e) {
					s.logger.Debug("note event skipped", "type", e.Type, "id", e.ID)
					continue
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
					s.logger.Debug("note event forwarded", "type", e.Type, "id", e.ID)
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

func (s *storeSource) wants(e core.Event) bool {
	return len(s.types) == 0 || slices.Contains(s.types, e.Type)
}
