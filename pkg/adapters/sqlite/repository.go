// Package sqlite stores board snapshots in a key/value table of an
// embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/introspection"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/aretw0/stickies/pkg/core"
)

// DefaultKey is the row key the snapshot is stored under.
const DefaultKey = "sticky-notes"

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    data       BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`

const upsertSnapshot = `
INSERT INTO snapshots (key, data, updated_at)
VALUES (:key, :data, :updated_at)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

type snapshotRow struct {
	Key       string `db:"key"`
	Data      []byte `db:"data"`
	UpdatedAt string `db:"updated_at"`
}

// Repository implements core.Repository on a SQLite table.
type Repository struct {
	db     *sqlx.DB
	path   string
	key    string
	logger *slog.Logger
}

// Open opens (or creates) the database file at path.
// The schema is created by Initialize.
func Open(path, key string, logger *slog.Logger) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return NewRepository(db, path, key, logger), nil
}

// NewRepository wraps an existing connection.
func NewRepository(db *sqlx.DB, path, key string, logger *slog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, path: path, key: key, logger: logger}
}

// Initialize verifies the connection and creates the snapshots table.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) ([]byte, error) {
	var row snapshotRow
	err := r.db.GetContext(ctx, &row, `SELECT key, data, updated_at FROM snapshots WHERE key = ?`, r.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", r.key, err)
	}
	return row.Data, nil
}

func (r *Repository) Save(ctx context.Context, data []byte) error {
	row := snapshotRow{
		Key:       r.key,
		Data:      data,
		UpdatedAt: time.Now().UTC().Format(core.TimeLayout),
	}
	if _, err := r.db.NamedExecContext(ctx, upsertSnapshot, row); err != nil {
		r.logger.Error("failed to save snapshot", "key", r.key, "error", err)
		return fmt.Errorf("failed to save snapshot %s: %w", r.key, err)
	}
	return nil
}

// Keys lists every board stored in the database.
func (r *Repository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, `SELECT key FROM snapshots ORDER BY key`); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return keys, nil
}

// Close closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path      string `json:"path"`
	Key       string `json:"key"`
	OpenConns int    `json:"open_connections"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	return RepositoryState{
		Path:      r.path,
		Key:       r.key,
		OpenConns: r.db.Stats().OpenConnections,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "sqlite"
}

var _ core.Repository = (*Repository)(nil)
var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
