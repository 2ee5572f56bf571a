package platform

import (
	"log/slog"

	"github.com/aretw0/jot/pkg/core"
)

// options holds the internal configuration for the jot store.
type options struct {
	logger      *slog.Logger
	legacyIDs   bool
	eventBuffer int
	seed        []Draft
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// Draft is a note that has not been admitted to the store yet.
type Draft struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// DemoNotes are the notes the application historically started with.
var DemoNotes = []Draft{
	{Title: "Test 1", Text: "argh"},
	{Title: "Test 2", Text: "argh"},
	{Title: "Test 3", Text: "argh"},
	{Title: "Test 4", Text: "argh"},
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used by the composition root.
// The store itself never logs.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLegacyIDs assigns ids as store size + 1, reproducing the historical
// collisions after a removal. By default ids come from a monotonic counter.
func WithLegacyIDs(enabled bool) Option {
	return func(o *options) {
		o.legacyIDs = enabled
	}
}

// WithEventBuffer sets the buffer of channels returned by Store.Watch.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithSeed appends notes that are added, in order, when the store is created.
func WithSeed(notes ...Draft) Option {
	return func(o *options) {
		o.seed = append(o.seed, notes...)
	}
}

func (o *options) storeOptions() []core.StoreOption {
	return []core.StoreOption{
		core.WithLegacyIDs(o.legacyIDs),
		core.WithEventBuffer(o.eventBuffer),
	}
}
