package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb), mr
}

func TestStore_SetGet(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "units:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "units:a", []byte(`{"total":1}`), 5*time.Minute))

	got, ok, err := store.Get(ctx, "units:a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"total":1}`), got)
}

func TestStore_TTLExpiry(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "unit:1", []byte("x"), 10*time.Minute))

	mr.FastForward(9 * time.Minute)
	_, ok, err := store.Get(ctx, "unit:1")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)
	_, ok, err = store.Get(ctx, "unit:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "unit:1", []byte("x"), time.Minute))
	require.NoError(t, store.Delete(ctx, "unit:1"))

	_, ok, err := store.Get(ctx, "unit:1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "unit:1"))
}

func TestStore_DeleteByPrefix(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "units:{}", []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, `units:{"bedrooms":2}`, []byte("b"), time.Minute))
	require.NoError(t, store.Set(ctx, "unit:1", []byte("c"), time.Minute))

	require.NoError(t, store.DeleteByPrefix(ctx, "units:"))

	_, ok, _ := store.Get(ctx, "units:{}")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, `units:{"bedrooms":2}`)
	assert.False(t, ok)

	// Keys outside the prefix survive a coarse invalidation.
	_, ok, _ = store.Get(ctx, "unit:1")
	assert.True(t, ok)

	// Purging an empty prefix space is a no-op.
	require.NoError(t, store.DeleteByPrefix(ctx, "units:"))
}
