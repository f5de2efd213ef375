// Package redis stores a board snapshot under a single Redis key.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/introspection"
	"github.com/redis/go-redis/v9"

	"github.com/aretw0/stickies/pkg/core"
)

// DefaultKey is the key the snapshot is stored under.
const DefaultKey = "sticky-notes"

// Config holds the connection settings for the Redis repository.
type Config struct {
	Addr         string
	Password     string
	DB           int
	Key          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Logger       *slog.Logger
}

// Repository implements core.Repository on a Redis string key.
type Repository struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRepository connects a repository using cfg.
// The connection is verified by Initialize.
func NewRepository(cfg Config) *Repository {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	return NewRepositoryWithClient(client, cfg.Key, cfg.Logger)
}

// ParseURL builds a repository from a redis:// or rediss:// URL,
// e.g. "redis://:secret@localhost:6379/2".
func ParseURL(rawURL, key string, logger *slog.Logger) (*Repository, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRepositoryWithClient(redis.NewClient(opts), key, logger), nil
}

// NewRepositoryWithClient wraps an existing client.
func NewRepositoryWithClient(client *redis.Client, key string, logger *slog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{client: client, key: key, logger: logger}
}

// Initialize checks that the server is reachable.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, core.ErrSnapshotNotFound
	}
	if err != nil {
		r.logger.Error("failed to get snapshot from redis", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to get snapshot from redis: %w", err)
	}
	return data, nil
}

func (r *Repository) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("failed to set snapshot in redis", "key", r.key, "error", err)
		return fmt.Errorf("failed to set snapshot in redis: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (r *Repository) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}
	return nil
}

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Addr string `json:"addr"`
	DB   int    `json:"db"`
	Key  string `json:"key"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	opts := r.client.Options()
	return RepositoryState{Addr: opts.Addr, DB: opts.DB, Key: r.key}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "redis"
}

var _ core.Repository = (*Repository)(nil)
var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
