// Package stickies is the composition root of the sticky-note board store.
//
// A board holds freeform notes (content, position, size, color, minimized
// flag and stacking order) and persists a full snapshot after every
// mutation. The domain lives in pkg/core; storage is pluggable through
// core.Repository with adapters for files, memory, Redis and SQLite.
//
// Usage:
//
//	store, err := stickies.Open(ctx, ".stickies")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	note, err := store.Create(ctx, "buy milk", core.Position{X: 40, Y: 40}, core.ColorYellow)
//	err = store.BringToFront(ctx, note.ID)
package stickies
