package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration of the jot CLI.
type Config struct {
	LogLevel    string  `yaml:"log_level"`
	LegacyIDs   bool    `yaml:"legacy_ids"`
	EventBuffer int     `yaml:"event_buffer"`
	Seed        []Draft `yaml:"seed"`
}

// LoadConfig reads a YAML configuration file.
// An empty path yields the zero Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseConfig(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML configuration. Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if cfg.EventBuffer < 0 {
		return Config{}, fmt.Errorf("event_buffer must not be negative: %d", cfg.EventBuffer)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. Empty means info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return level, nil
}

// Options converts the file settings into functional options.
func (c Config) Options() []Option {
	opts := []Option{
		WithLegacyIDs(c.LegacyIDs),
		WithEventBuffer(c.EventBuffer),
	}
	if len(c.Seed) > 0 {
		opts = append(opts, WithSeed(c.Seed...))
	}
	return opts
}
