package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	Pattern       string     `json:"pattern"`
	ReadOnly      bool       `json:"read_only"`
	Saves         int        `json:"saves"`
	WatcherActive bool       `json:"watcher_active"`
	LastExternal  *time.Time `json:"last_external_change,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Path,
		Pattern:       r.config.Pattern,
		ReadOnly:      r.config.ReadOnly,
		Saves:         r.saves,
		WatcherActive: r.watcherActive,
		LastExternal:  r.lastExternal,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordExternal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastExternal = &now
}
