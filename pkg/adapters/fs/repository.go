// Package fs stores a board snapshot as a single file.
package fs

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/stickies/pkg/core"
)

// DefaultFileName is the snapshot file created inside a board directory.
const DefaultFileName = "board.json"

// Repository implements core.Repository on top of a snapshot file.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	lastDigest    [sha256.Size]byte
	hasDigest     bool
	saves         int
	watcherActive bool
	lastExternal  *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string // Snapshot file, e.g. ".stickies/board.json".
	MustExist bool   // Fail Initialize when the parent directory is missing.
	ReadOnly  bool   // Reject Save with core.ErrReadOnly.
	// Pattern filters watcher events by file name (doublestar syntax).
	// Defaults to the base name of Path.
	Pattern string
	// Debounce coalesces bursts of watcher events. Defaults to 50ms.
	Debounce     time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Pattern == "" {
		config.Pattern = filepath.Base(config.Path)
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the directory holding the snapshot exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.Path == "" {
		return errors.New("snapshot path is empty")
	}
	if !doublestar.ValidatePattern(r.config.Pattern) {
		return fmt.Errorf("invalid watch pattern: %s", r.config.Pattern)
	}

	dir := filepath.Dir(r.Path)
	if r.config.MustExist || r.config.ReadOnly {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("board directory does not exist: %s", dir)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("board path is not a directory: %s", dir)
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create board directory: %w", err)
	}
	return nil
}

// Load reads the snapshot file.
func (r *Repository) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save replaces the snapshot file atomically.
func (r *Repository) Save(ctx context.Context, data []byte) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeFileAtomic(r.Path, data, 0644); err != nil {
		return err
	}
	r.lastDigest = sha256.Sum256(data)
	r.hasDigest = true
	r.saves++
	return nil
}

// Watch reports changes to the snapshot made by other processes.
// Writes performed through this repository are not reported.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event)
	w := newWatchWorker(r, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// isOwnWrite reports whether the file on disk is what this repository last wrote.
func (r *Repository) isOwnWrite() bool {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasDigest && sha256.Sum256(data) == r.lastDigest
}

// matches reports whether a watcher event concerns the snapshot.
func (r *Repository) matches(name string) bool {
	if isTempFile(name) {
		return false
	}
	ok, err := doublestar.Match(r.config.Pattern, filepath.Base(name))
	return err == nil && ok
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
