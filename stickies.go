package stickies

import (
	"context"
	"log/slog"

	"github.com/aretw0/stickies/internal/platform"
	"github.com/aretw0/stickies/pkg/codec"
	"github.com/aretw0/stickies/pkg/core"
)

// --- Types ---

// Board is the note store.
type Board = core.Board

// Note is a single sticky note.
type Note = core.Note

// NotePatch is a partial update of a note.
type NotePatch = core.NotePatch

// Store is an opened board together with its repository.
type Store = platform.Store

// --- Configuration ---

// Option defines a functional option for opening a board.
type Option = platform.Option

// WithLogger sets the logger for the board and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository injects a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithCodec forces the snapshot format.
func WithCodec(c codec.Codec) Option {
	return platform.WithCodec(c)
}

// WithKey sets the snapshot key for redis and sqlite stores.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithReadOnly rejects every save.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist requires the board directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithEventBuffer sets the per-subscriber event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// Open resolves uri to a storage adapter and returns an initialized board.
// See platform.Open for the accepted URI forms.
func Open(ctx context.Context, uri string, opts ...Option) (*Store, error) {
	return platform.Open(ctx, uri, opts...)
}

// FindBoardRoot looks upwards for a directory holding a .stickies board.
func FindBoardRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
