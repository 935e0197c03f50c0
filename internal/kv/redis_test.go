package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_SetGetDelete(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRedisStore(client)
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

func TestRedisStore_NoExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "walletId", "w-123"))

	// Wallet data is durable state, not a cache entry
	assert.Zero(t, s.TTL("walletId"), "stored values must not expire")
}
