package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisMatrixCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisMatrixCache(client, time.Hour)
}

func TestRedisMatrixCacheRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	matrix := domain.NewDistanceMatrix(domain.ModeTransit, []domain.TravelTime{
		{Origin: "a", Destination: "b", Minutes: 18},
		{Origin: "b", Destination: "c", Minutes: 24},
	})

	require.NoError(t, c.Put(ctx, "transit|a,b,c", matrix))

	got, ok, err := c.Get(ctx, "transit|a,b,c")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.ModeTransit, got.Mode)
	assert.InDelta(t, 18.0, got.Lookup("b", "a", 0), 1e-9)
	assert.InDelta(t, 24.0, got.Lookup("c", "b", 0), 1e-9)
}

func TestRedisMatrixCacheMiss(t *testing.T) {
	c := newTestRedisCache(t)

	_, ok, err := c.Get(context.Background(), "walk|nothing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryMatrixCacheRoundTrip(t *testing.T) {
	c := NewMemoryMatrixCache()
	ctx := context.Background()

	matrix := domain.NewDistanceMatrix(domain.ModeWalk, []domain.TravelTime{
		{Origin: "a", Destination: "b", Minutes: 10},
	})

	require.NoError(t, c.Put(ctx, "walk|a,b", matrix))

	got, ok, err := c.Get(ctx, "walk|a,b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 10.0, got.Lookup("a", "b", 0), 1e-9)

	_, ok, err = c.Get(ctx, "walk|other")
	require.NoError(t, err)
	assert.False(t, ok)
}
