package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-client/pkg/cache"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "ava", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, "ava", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)

	var got payload
	err := c.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "ava"}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var got payload
	assert.ErrorIs(t, c.Get(ctx, "k", &got), cache.ErrMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "ava"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var got payload
	assert.ErrorIs(t, c.Get(ctx, "k", &got), cache.ErrMiss)
}

func TestMemoryCache_GetReturnsACopy(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "ava", Count: 1}, time.Minute))

	var first payload
	require.NoError(t, c.Get(ctx, "k", &first))
	first.Count = 99

	var second payload
	require.NoError(t, c.Get(ctx, "k", &second))
	assert.Equal(t, 1, second.Count, "mutating a read must not touch the stored value")
}
