package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stickies/pkg/adapters/memory"
	"github.com/aretw0/stickies/pkg/core"
)

func TestRepository_LoadSave(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	require.NoError(t, repo.Initialize(ctx))

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, core.ErrSnapshotNotFound)

	data := []byte(`[]`)
	require.NoError(t, repo.Save(ctx, data))
	data[0] = 'x'

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
	assert.Equal(t, 1, repo.Saves())
	assert.Equal(t, memory.RepositoryState{SnapshotBytes: 2, Saves: 1}, repo.State())
}

func TestRepository_CanceledSave(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := memory.NewRepository()
	assert.ErrorIs(t, repo.Save(ctx, []byte("[]")), context.Canceled)
	assert.Nil(t, repo.Snapshot())
}

func TestRepository_Preloaded(t *testing.T) {
	ctx := context.Background()
	seed, err := core.EncodeSnapshot(nil, []core.Note{{
		ID: "seed", Content: "hello", Color: core.ColorGreen, Size: core.DefaultSize, ZIndex: 4,
	}})
	require.NoError(t, err)

	board := core.NewBoard(memory.NewRepositoryWith(seed))
	require.NoError(t, board.Initialize(ctx))

	n, ok := board.Get("seed")
	require.True(t, ok)
	assert.Equal(t, "hello", n.Content)

	created, err := board.Create(ctx, "next", core.Position{}, "")
	require.NoError(t, err)
	assert.Equal(t, 5, created.ZIndex)
}
