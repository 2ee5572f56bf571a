package platform

import (
	"fmt"

	"github.com/aretw0/jot/pkg/core"
)

// New builds the note store and adds any seed notes.
// A seed note that fails validation aborts construction.
func New(opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := core.NewStore(o.storeOptions()...)

	for i, d := range o.seed {
		n, err := store.Add(d.Title, d.Text)
		if err != nil {
			return nil, fmt.Errorf("seed note %d (%q): %w", i+1, d.Title, err)
		}
		o.logger.Debug("seeded note", "id", n.ID, "title", n.Title)
	}

	o.logger.Info("note store ready",
		"notes", store.Len(),
		"legacy_ids", o.legacyIDs,
	)
	return store, nil
}
