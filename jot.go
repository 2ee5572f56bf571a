package jot

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Store is a public alias for the note store.
type Store = core.Store

// Note is a public alias for the note entity.
type Note = core.Note

// Draft is a note waiting to be added, used for seeding.
type Draft = platform.Draft

// Config is the YAML configuration of the CLI.
type Config = platform.Config

// DemoNotes are the four notes the application historically started with.
var DemoNotes = platform.DemoNotes

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithLogger sets the logger for the composition root.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithLegacyIDs switches id assignment to store size + 1.
func WithLegacyIDs(enabled bool) Option {
	return platform.WithLegacyIDs(enabled)
}

// WithEventBuffer sets the buffer size of watch channels.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithSeed adds notes when the store is created.
func WithSeed(notes ...Draft) Option {
	return platform.WithSeed(notes...)
}

// --- Factory ---

// New creates a new note store.
func New(opts ...Option) (*Store, error) {
	return platform.New(opts...)
}

// LoadConfig reads a YAML configuration file. An empty path yields defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// ErrNoConfig is returned by FindConfig when no .jot.yaml exists.
var ErrNoConfig = platform.ErrNoConfig

// FindConfig looks upwards from startDir for a .jot.yaml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}
