package services

import (
	"fmt"
	"sync"

	"trip-itinerary-service/internal/domain"
)

// estimateCache is a bounded cache of distance estimates keyed by rounded
// endpoint coordinates and travel mode. Eviction is strict insertion order:
// once full, the oldest inserted entry is dropped regardless of how often it
// was read. The mutex only guards map/slice integrity; concurrent misses on
// the same key may each recompute and both store (last write wins).
type estimateCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]domain.DistanceEstimate
	order   []string
}

func newEstimateCache(max int) *estimateCache {
	return &estimateCache{
		max:     max,
		entries: make(map[string]domain.DistanceEstimate, max),
		order:   make([]string, 0, max),
	}
}

// estimateKey rounds both endpoints to 4 decimal degrees (~11 m) so nearby
// queries share an entry.
func estimateKey(origin, dest domain.Coordinates, mode domain.TravelMode) string {
	return fmt.Sprintf("%.4f,%.4f|%.4f,%.4f|%s", origin.Lat, origin.Lon, dest.Lat, dest.Lon, mode)
}

func (c *estimateCache) get(key string) (domain.DistanceEstimate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return e, ok
}

func (c *estimateCache) put(key string, e domain.DistanceEstimate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = e
		return
	}

	if len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = e
	c.order = append(c.order, key)
}

func (c *estimateCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
