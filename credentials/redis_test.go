package credentials

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "test:credentials")
}

func TestRedisStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	pair := Pair{Access: "access-token", Refresh: "refresh-token"}
	require.NoError(t, store.Set(ctx, pair))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	require.NoError(t, store.Set(ctx, Pair{Access: "old", Refresh: "old-refresh"}))
	require.NoError(t, store.Set(ctx, Pair{Access: "new", Refresh: "new-refresh"}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Pair{Access: "new", Refresh: "new-refresh"}, got)
}

func TestRedisStoreDefaultKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client, "")
	require.NoError(t, store.Set(context.Background(), Pair{Access: "a"}))
	assert.True(t, mr.Exists(DefaultRedisKey))
}

func TestNewRedisStoreFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := NewRedisStoreFromURL(context.Background(), "redis://"+mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Set(context.Background(), Pair{Access: "a", Refresh: "r"}))
	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", got.Access)
}

func TestNewRedisStoreFromURLBadURL(t *testing.T) {
	_, err := NewRedisStoreFromURL(context.Background(), "not-a-url", "")
	assert.Error(t, err)
}
