package core

import (
	"github.com/aretw0/introspection"
)

// BoardState exposes internal state for observability.
type BoardState struct {
	Initialized     bool   `json:"initialized"`
	NoteCount       int    `json:"note_count"`
	MaxZIndex       int    `json:"max_z_index"`
	Codec           string `json:"codec"`
	Subscribers     int    `json:"subscribers"`
	EventBufferSize int    `json:"event_buffer_size"`
	RepositoryType  string `json:"repository_type"`
	LastPersistErr  string `json:"last_persist_error,omitempty"`
}

// State implements introspection.Introspectable.
func (b *Board) State() any {
	b.mu.RLock()
	defer b.mu.RUnlock()

	repoType := "unknown"
	if b.repo != nil {
		repoType = "repository"
		if comp, ok := b.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	codecName := "json"
	if b.codec != nil {
		codecName = b.codec.Name()
	}

	state := BoardState{
		Initialized:     b.initialized,
		NoteCount:       len(b.notes),
		MaxZIndex:       b.maxZIndex(),
		Codec:           codecName,
		Subscribers:     b.broker.len(),
		EventBufferSize: b.eventBuffer,
		RepositoryType:  repoType,
	}
	if b.lastPersist != nil {
		state.LastPersistErr = b.lastPersist.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (b *Board) ComponentType() string {
	return "board"
}

var _ introspection.Introspectable = (*Board)(nil)
var _ introspection.Component = (*Board)(nil)
