package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCatalogTTL = time.Hour

// CatalogEntry is the cached shape of a destination's raw catalog rows,
// before scoring and category normalization.
type CatalogEntry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	RawType   string   `json:"type"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	PriceTier int      `json:"price_tier"`
	Tags      []string `json:"tags"`
}

// RedisCatalogCache keeps per-destination catalog rows in Redis with a TTL,
// so repeated trip requests for the same city skip the database.
type RedisCatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &RedisCatalogCache{Client: client, TTL: ttl}
}

func cacheKey(destination string) string {
	return "catalog:" + strings.ToLower(strings.TrimSpace(destination))
}

func (c *RedisCatalogCache) Get(ctx context.Context, destination string) ([]CatalogEntry, bool, error) {
	raw, err := c.Client.Get(ctx, cacheKey(destination)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("catalog cache get %q: %w", destination, err)
	}

	var entries []CatalogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode %q: %w", destination, err)
	}
	return entries, true, nil
}

func (c *RedisCatalogCache) Put(ctx context.Context, destination string, entries []CatalogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("catalog cache encode %q: %w", destination, err)
	}
	if err := c.Client.Set(ctx, cacheKey(destination), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("catalog cache put %q: %w", destination, err)
	}
	return nil
}
