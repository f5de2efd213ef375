// Package memory provides an in-process snapshot store.
// Boards backed by it live only as long as the process.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/stickies/pkg/core"
)

// Repository implements core.Repository in memory.
type Repository struct {
	mu    sync.RWMutex
	data  []byte
	saves int
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{}
}

// NewRepositoryWith creates a repository preloaded with a snapshot.
func NewRepositoryWith(snapshot []byte) *Repository {
	return &Repository{data: slices.Clone(snapshot)}
}

func (r *Repository) Initialize(ctx context.Context) error { return nil }

func (r *Repository) Load(ctx context.Context) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return nil, core.ErrSnapshotNotFound
	}
	return slices.Clone(r.data), nil
}

func (r *Repository) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = slices.Clone(data)
	r.saves++
	return nil
}

// Snapshot returns the last saved bytes, or nil.
func (r *Repository) Snapshot() []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.data)
}

// Saves returns how many times Save succeeded.
func (r *Repository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	SnapshotBytes int `json:"snapshot_bytes"`
	Saves         int `json:"saves"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return RepositoryState{SnapshotBytes: len(r.data), Saves: r.saves}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "memory"
}

var _ core.Repository = (*Repository)(nil)
var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
