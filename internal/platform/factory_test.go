package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stickies/internal/platform"
	"github.com/aretw0/stickies/pkg/adapters/fs"
	"github.com/aretw0/stickies/pkg/adapters/memory"
	"github.com/aretw0/stickies/pkg/adapters/redis"
	"github.com/aretw0/stickies/pkg/adapters/sqlite"
	"github.com/aretw0/stickies/pkg/codec"
	"github.com/aretw0/stickies/pkg/core"
)

func open(t *testing.T, uri string, opts ...platform.Option) *platform.Store {
	t.Helper()
	s, err := platform.Open(context.Background(), uri, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_Filesystem(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), ".stickies")

	s := open(t, dir)
	repo, ok := s.Repository.(*fs.Repository)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, fs.DefaultFileName), repo.Path)

	n, err := s.Create(ctx, "persisted", core.Position{X: 1, Y: 2}, "")
	require.NoError(t, err)

	reopened := open(t, dir)
	got, ok := reopened.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "persisted", got.Content)
}

func TestOpen_CodecFromExtension(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.yaml")

	s := open(t, path)
	_, err := s.Create(ctx, "yaml note", core.Position{}, core.ColorPink)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "content: yaml note")
	assert.Contains(t, string(data), "color: pink")
}

func TestOpen_ExplicitCodecWins(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.json")

	s := open(t, path, platform.WithCodec(codec.YAML{}))
	_, err := s.Create(ctx, "x", core.Position{}, "")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "content: x")
}

func TestOpen_ReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := open(t, dir, platform.WithReadOnly(true))
	_, err := s.Create(ctx, "x", core.Position{}, "")
	require.ErrorIs(t, err, core.ErrPersist)
	assert.ErrorIs(t, err, core.ErrReadOnly)
	assert.Equal(t, 1, s.Len())
}

func TestOpen_MustExist(t *testing.T) {
	_, err := platform.Open(context.Background(),
		filepath.Join(t.TempDir(), "missing", "board.json"),
		platform.WithMustExist(true))
	assert.Error(t, err)
}

func TestOpen_Memory(t *testing.T) {
	s := open(t, "memory://")
	_, ok := s.Repository.(*memory.Repository)
	assert.True(t, ok)

	_, err := s.Create(context.Background(), "ephemeral", core.Position{}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestOpen_Redis(t *testing.T) {
	srv, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	s := open(t, "redis://"+srv.Addr()+"/0", platform.WithKey("team-board"))
	_, ok := s.Repository.(*redis.Repository)
	require.True(t, ok)

	_, err = s.Create(context.Background(), "shared", core.Position{}, "")
	require.NoError(t, err)
	assert.True(t, srv.Exists("team-board"))
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "boards.db")

	s := open(t, "sqlite://"+db)
	_, ok := s.Repository.(*sqlite.Repository)
	require.True(t, ok)

	n, err := s.Create(ctx, "row", core.Position{}, core.ColorGreen)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened := open(t, "sqlite://"+db)
	got, ok := reopened.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, core.ColorGreen, got.Color)
}

func TestOpen_WithRepository(t *testing.T) {
	repo := memory.NewRepository()
	s := open(t, "ignored", platform.WithRepository(repo), platform.WithEventBuffer(4))

	_, err := s.Create(context.Background(), "x", core.Position{}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Saves())
}

func TestOpen_Errors(t *testing.T) {
	for _, uri := range []string{"ftp://host/board", "sqlite://", "redis://host:port:bad/x", ""} {
		t.Run(uri, func(t *testing.T) {
			_, err := platform.Open(context.Background(), uri)
			assert.Error(t, err)
		})
	}
}
