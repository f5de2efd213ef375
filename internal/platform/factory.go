package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/stickies/pkg/adapters/fs"
	"github.com/aretw0/stickies/pkg/adapters/memory"
	"github.com/aretw0/stickies/pkg/adapters/redis"
	"github.com/aretw0/stickies/pkg/adapters/sqlite"
	"github.com/aretw0/stickies/pkg/codec"
	"github.com/aretw0/stickies/pkg/core"
)

// Store is an initialized board together with the repository behind it.
type Store struct {
	*core.Board
	Repository core.Repository
}

// Close releases the connections held by the repository, if any.
func (s *Store) Close() error {
	if c, ok := s.Repository.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Open resolves uri to a repository, builds a board on it and initializes it.
//
// Supported forms:
//
//	memory://                    in-process, nothing persisted
//	redis://[:pass@]host:port/db Redis key (see WithKey)
//	sqlite://path/to/boards.db   SQLite table row (see WithKey)
//	file://path or plain path    snapshot file; a directory gets board.json
func Open(ctx context.Context, uri string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, c, err := resolve(uri, o)
	if err != nil {
		return nil, err
	}

	boardOpts := []core.BoardOption{
		core.WithLogger(o.logger),
		core.WithCodec(c),
	}
	if o.eventBuffer > 0 {
		boardOpts = append(boardOpts, core.WithEventBuffer(o.eventBuffer))
	}
	board := core.NewBoard(repo, boardOpts...)

	s := &Store{Board: board, Repository: repo}
	if err := board.Initialize(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func resolve(uri string, o *options) (core.Repository, codec.Codec, error) {
	c := o.codec
	if o.repository != nil {
		if c == nil {
			c = codec.JSON{Indent: true}
		}
		return o.repository, c, nil
	}

	scheme, rest, hasScheme := strings.Cut(uri, "://")
	if !hasScheme {
		scheme, rest = "file", uri
	}
	if c == nil && scheme != "file" {
		c = codec.JSON{Indent: true}
	}

	switch strings.ToLower(scheme) {
	case "memory":
		return memory.NewRepository(), c, nil
	case "redis", "rediss":
		repo, err := redis.ParseURL(uri, o.key, o.logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, c, nil
	case "sqlite", "sqlite3":
		if rest == "" {
			return nil, nil, errors.New("sqlite uri requires a database path")
		}
		repo, err := sqlite.Open(rest, o.key, o.logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, c, nil
	case "file":
		path, err := snapshotPath(rest)
		if err != nil {
			return nil, nil, err
		}
		if c == nil {
			c = codec.ForPath(path)
		}
		repo := fs.NewRepository(fs.Config{
			Path:         path,
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
		})
		return repo, c, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store scheme %q", scheme)
	}
}

// snapshotPath maps a board location to its snapshot file.
// Existing directories and extension-less paths get DefaultFileName appended.
func snapshotPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty board path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return filepath.Join(abs, fs.DefaultFileName), nil
	}
	if filepath.Ext(abs) == "" {
		return filepath.Join(abs, fs.DefaultFileName), nil
	}
	return abs, nil
}
