package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"skillbridge/internal/platform/kv"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v"))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", value)

	// Empty value is distinct from an absent key.
	require.NoError(t, store.Set(ctx, "k", ""))
	value, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "data", "skillbridge.db")

	store, err := kv.NewSQLiteStore(dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "a", "2")) // upsert
	require.NoError(t, store.Set(ctx, "b", "3"))
	require.NoError(t, store.Delete(ctx, "b"))
	require.NoError(t, store.Delete(ctx, "never-existed"))
	require.NoError(t, store.Close())

	reopened, err := kv.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	value, ok, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", value)

	_, ok, err = reopened.Get(ctx, "b")
	require.NoError(t, err)
	require.False(t, ok)
}
