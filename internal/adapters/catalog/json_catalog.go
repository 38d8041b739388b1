package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// SeedLocation is one row of the JSON seed catalog.
type SeedLocation struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	PriceTier   int      `json:"price_tier"`
	Tags        []string `json:"tags"`
}

// JSONCatalog serves candidates from a seed file, for local runs without a
// database.
type JSONCatalog struct {
	byDestination map[string][]cache.CatalogEntry
}

func NewJSONCatalog(path string) (*JSONCatalog, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("json catalog: read %q: %w", path, err)
	}

	var seeds []SeedLocation
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, fmt.Errorf("json catalog: parse %q: %w", path, err)
	}

	byDestination := make(map[string][]cache.CatalogEntry)
	for i, seed := range seeds {
		dest := strings.ToLower(strings.TrimSpace(seed.Destination))
		if dest == "" {
			return nil, fmt.Errorf("json catalog: item at index %d: destination cannot be empty", i+1)
		}
		byDestination[dest] = append(byDestination[dest], cache.CatalogEntry{
			ID:        seed.ID,
			Name:      seed.Name,
			RawType:   seed.Type,
			Lat:       seed.Lat,
			Lon:       seed.Lon,
			PriceTier: seed.PriceTier,
			Tags:      seed.Tags,
		})
	}

	return &JSONCatalog{byDestination: byDestination}, nil
}

func (c *JSONCatalog) SearchCandidates(_ context.Context, q ports.CandidateQuery) ([]*domain.Location, error) {
	entries := c.byDestination[strings.ToLower(strings.TrimSpace(q.Destination))]
	return scoreAndFilter(entries, q), nil
}
