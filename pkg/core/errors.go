package core

import "errors"

// Common errors.
var (
	// ErrNotInitialized is returned when a Board is used before Initialize.
	ErrNotInitialized = errors.New("board is not initialized")

	// ErrInvalidColor is returned for colors outside the palette.
	ErrInvalidColor = errors.New("invalid note color")

	// ErrPersist wraps snapshot write failures. The in-memory change that
	// triggered the write is kept.
	ErrPersist = errors.New("failed to persist snapshot")

	// ErrSnapshotNotFound is returned by repositories that hold no snapshot yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrReadOnly is returned by repositories opened in read-only mode.
	ErrReadOnly = errors.New("repository is in read-only mode")
)
