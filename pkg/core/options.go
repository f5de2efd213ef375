package core

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultEventBuffer is the per-subscriber buffer used when none is configured.
const DefaultEventBuffer = 100

// boardOptions holds the internal configuration of a Board.
type boardOptions struct {
	logger      *slog.Logger
	codec       Codec
	now         func() time.Time
	newID       func() string
	eventBuffer int
}

// BoardOption defines a functional option for configuring a Board.
type BoardOption func(*boardOptions)

func defaultBoardOptions() *boardOptions {
	return &boardOptions{
		logger:      slog.Default(),
		codec:       nil, // JSON
		now:         time.Now,
		newID:       uuid.NewString,
		eventBuffer: DefaultEventBuffer,
	}
}

// WithLogger sets the logger for the board.
func WithLogger(logger *slog.Logger) BoardOption {
	return func(o *boardOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCodec selects the snapshot format.
func WithCodec(c Codec) BoardOption {
	return func(o *boardOptions) {
		o.codec = c
	}
}

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) BoardOption {
	return func(o *boardOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator overrides note id generation (useful for testing).
func WithIDGenerator(fn func() string) BoardOption {
	return func(o *boardOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithEventBuffer sets the buffer size of each subscription channel.
// Zero or negative means DefaultEventBuffer.
func WithEventBuffer(size int) BoardOption {
	return func(o *boardOptions) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
