package platform

import (
	"log/slog"

	"github.com/aretw0/stickies/pkg/codec"
	"github.com/aretw0/stickies/pkg/core"
)

// options holds the configuration used to open a board.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	codec        codec.Codec
	key          string
	readOnly     bool
	mustExist    bool
	eventBuffer  int
	errorHandler func(error)
}

// Option defines a functional option for opening a board.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger shared by the board and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRepository injects a storage adapter, bypassing URI resolution.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithCodec forces the snapshot format.
// By default the file extension decides for the filesystem adapter and
// JSON is used everywhere else.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithKey sets the key the snapshot is stored under (redis and sqlite).
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithReadOnly rejects every save with core.ErrReadOnly (filesystem only).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist requires the board directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithEventBuffer sets the per-subscriber event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
