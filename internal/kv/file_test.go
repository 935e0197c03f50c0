package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "kv.json"))
	ctx := context.Background()

	_, found, err := store.Get(ctx, "wallet")
	require.NoError(t, err)
	assert.False(t, found, "missing key should report absent")

	require.NoError(t, store.Set(ctx, "wallet", `{"id":"abc"}`))

	v, found, err := store.Get(ctx, "wallet")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":"abc"}`, v)

	require.NoError(t, store.Delete(ctx, "wallet"))

	_, found, err = store.Get(ctx, "wallet")
	require.NoError(t, err)
	assert.False(t, found, "deleted key should report absent")
}

func TestFileStore_DeleteMissingKey(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "kv.json"))

	// Deleting a key that was never set is not an error
	require.NoError(t, store.Delete(context.Background(), "wallet"))
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	ctx := context.Background()

	require.NoError(t, NewFileStore(path).Set(ctx, "walletId", "w-123"))

	// A fresh store over the same file sees the value
	v, found, err := NewFileStore(path).Get(ctx, "walletId")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "w-123", v)
}

func TestFileStore_MultipleKeys(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "kv.json"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Delete(ctx, "a"))

	_, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)

	v, found, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2", v, "deleting one key must not disturb others")
}
