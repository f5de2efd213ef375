package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stickies/pkg/adapters/fs"
	"github.com/aretw0/stickies/pkg/core"
)

func newRepo(t *testing.T, cfg fs.Config) *fs.Repository {
	t.Helper()
	if cfg.Path == "" {
		cfg.Path = filepath.Join(t.TempDir(), ".stickies", fs.DefaultFileName)
	}
	repo := fs.NewRepository(cfg)
	require.NoError(t, repo.Initialize(context.Background()))
	return repo
}

func TestRepository_Initialize(t *testing.T) {
	t.Run("Creates Board Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", ".stickies")
		repo := fs.NewRepository(fs.Config{Path: filepath.Join(dir, "board.json")})
		require.NoError(t, repo.Initialize(context.Background()))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("MustExist Fails if Directory Missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "board.json")
		repo := fs.NewRepository(fs.Config{Path: path, MustExist: true})
		assert.Error(t, repo.Initialize(context.Background()))
	})

	t.Run("Rejects Invalid Pattern", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "board.json")
		repo := fs.NewRepository(fs.Config{Path: path, Pattern: "[board"})
		assert.Error(t, repo.Initialize(context.Background()))
	})
}

func TestRepository_LoadSave(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, fs.Config{})

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, core.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, []byte(`[]`)))
	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	state, ok := repo.State().(fs.RepositoryState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Saves)
	assert.Equal(t, "board.json", state.Pattern)
}

func TestRepository_ReadOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	repo := newRepo(t, fs.Config{Path: path, ReadOnly: true})
	assert.ErrorIs(t, repo.Save(ctx, []byte(`[1]`)), core.ErrReadOnly)

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRepository_BoardRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), ".stickies", "board.json")

	first := core.NewBoard(fs.NewRepository(fs.Config{Path: path}))
	require.NoError(t, first.Initialize(ctx))
	n, err := first.Create(ctx, "on disk", core.Position{X: 3, Y: 4}, core.ColorGreen)
	require.NoError(t, err)
	require.NoError(t, first.BringToFront(ctx, n.ID))

	second := core.NewBoard(fs.NewRepository(fs.Config{Path: path}))
	require.NoError(t, second.Initialize(ctx))
	assert.Equal(t, first.Notes(), second.Notes())
}

func TestRepository_CorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("<<<garbage"), 0644))

	board := core.NewBoard(fs.NewRepository(fs.Config{Path: path}))
	require.NoError(t, board.Initialize(ctx))
	assert.Zero(t, board.Len())
}

func TestRepository_Watch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo := newRepo(t, fs.Config{Debounce: 20 * time.Millisecond})
	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return repo.State().(fs.RepositoryState).WatcherActive
	}, time.Second, 10*time.Millisecond)

	// Own writes are not reported.
	require.NoError(t, repo.Save(ctx, []byte(`[]`)))
	select {
	case e := <-events:
		t.Fatalf("unexpected event for own write: %v", e)
	case <-time.After(300 * time.Millisecond):
	}

	// Unrelated files are filtered out.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(repo.Path), "notes.txt"), []byte("x"), 0644))

	// External writes are.
	require.NoError(t, os.WriteFile(repo.Path, []byte(`[ ]`), 0644))
	select {
	case e := <-events:
		assert.Equal(t, core.EventModify, e.Type)
	case <-ctx.Done():
		t.Fatal("timed out waiting for external change")
	}

	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, open := <-events:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("events channel was not closed")
		}
	}
}

func TestRepository_BoardFollowsExternalChanges(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	path := filepath.Join(t.TempDir(), ".stickies", "board.json")

	viewer := core.NewBoard(fs.NewRepository(fs.Config{Path: path, Debounce: 20 * time.Millisecond}))
	require.NoError(t, viewer.Initialize(ctx))
	feed := viewer.Subscribe(ctx)
	require.NoError(t, viewer.WatchStorage(ctx))
	time.Sleep(100 * time.Millisecond)

	editor := core.NewBoard(fs.NewRepository(fs.Config{Path: path}))
	require.NoError(t, editor.Initialize(ctx))
	n, err := editor.Create(ctx, "shared", core.Position{}, core.ColorBlue)
	require.NoError(t, err)

	select {
	case e := <-feed:
		assert.Equal(t, core.EventReload, e.Type)
	case <-ctx.Done():
		t.Fatal("timed out waiting for reload")
	}
	got, ok := viewer.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "shared", got.Content)
}
