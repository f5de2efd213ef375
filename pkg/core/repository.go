package core

import "context"

// Repository is the persistence port of the board: a key-value blob store
// holding a single serialized snapshot.
// Adhering to this interface keeps the board independent of the
// underlying storage medium (file, Redis, SQLite, memory).
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g. create directories, create tables).
	Initialize(ctx context.Context) error

	// Load returns the last saved snapshot.
	// It returns ErrSnapshotNotFound when nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, data []byte) error
}

// Watchable defines an interface for repositories that can report changes
// made to the snapshot by other processes.
type Watchable interface {
	// Watch emits an event each time the stored snapshot changes externally.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
