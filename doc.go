// Package jot is the Composition Root for the jot note keeper.
//
// It wires the in-memory note store (Domain Layer) with its configuration
// and exposes the options used by the CLI and by embedding applications.
//
// Notes live only for the lifetime of the process. Each note has an integer
// id, a title of 3 to 50 characters and a text of at most 150 characters.
// Invalid notes are rejected before they reach the store.
//
// Usage:
//
//	store, err := jot.New(
//		jot.WithLogger(logger),
//		jot.WithSeed(jot.DemoNotes...),
//	)
//
//	note, err := store.Add("Groceries", "milk, eggs")
//	if errors.Is(err, core.ErrTitleTooShort) {
//		// tell the user
//	}
//
// Presentation layers observe changes through Store.Subscribe or Store.Watch
// instead of polling the list.
package jot
