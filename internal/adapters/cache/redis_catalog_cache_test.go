package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCatalogCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCatalogCache(client, ttl), mr
}

func TestRedisCatalogCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	lat, lon := 37.5665, 126.9780
	entries := []CatalogEntry{
		{ID: "l1", Name: "Palace", RawType: "sight", Lat: &lat, Lon: &lon, PriceTier: 1, Tags: []string{"history", "palace"}},
		{ID: "l2", Name: "Noodle Bar", RawType: "restaurant", PriceTier: 2, Tags: []string{"food"}},
	}

	require.NoError(t, c.Put(ctx, "Seoul", entries))

	got, ok, err := c.Get(ctx, "seoul")
	require.NoError(t, err)
	require.True(t, ok, "destination lookup must be case-insensitive")
	require.Equal(t, entries, got)
}

func TestRedisCatalogCacheMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	got, ok, err := c.Get(context.Background(), "busan")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestRedisCatalogCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "seoul", []CatalogEntry{{ID: "l1", Name: "Palace", RawType: "sight"}}))

	mr.FastForward(time.Minute + time.Second)

	_, ok, err := c.Get(ctx, "seoul")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCatalogCacheDefaultTTL(t *testing.T) {
	c, _ := newTestCache(t, 0)
	require.Equal(t, time.Hour, c.TTL)
}
