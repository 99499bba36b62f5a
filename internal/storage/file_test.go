package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-psi-bot/internal/models"
)

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cache.json"), zap.NewNop())

	data, err := store.Load(context.Background())

	assert.ErrorIs(t, err, models.ErrSnapshotNotFound)
	assert.Nil(t, data)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.json")
	store := NewFileStore(path, zap.NewNop())

	require.NoError(t, store.Save(context.Background(), []byte(`{"a":1}`)))
	require.NoError(t, store.Save(context.Background(), []byte(`{"b":2}`)))

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, string(data))
	assert.Equal(t, path, store.Path())

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_CanceledContext(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cache.json"), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, []byte(`{}`)), context.Canceled)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_SaveIntoFileFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := NewFileStore(filepath.Join(blocker, "cache.json"), zap.NewNop())

	assert.Error(t, store.Save(context.Background(), []byte(`{}`)))
}
