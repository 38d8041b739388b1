package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

const defaultPriceCeiling = 2

// Postgres-backed implementation of the CandidateSource port. An optional
// Redis cache sits in front of the locations table, keyed per destination.
type PostgresCatalog struct {
	DB    *sql.DB
	Cache *cache.RedisCatalogCache
}

func NewPostgresCatalog(db *sql.DB, c *cache.RedisCatalogCache) *PostgresCatalog {
	return &PostgresCatalog{DB: db, Cache: c}
}

// Return scored, category-normalized candidates for a destination. Rows
// scoring below the threshold or failing the price ceiling are dropped.
func (p *PostgresCatalog) SearchCandidates(ctx context.Context, q ports.CandidateQuery) (_ []*domain.Location, err error) {
	defer obs.Time("catalog.SearchCandidates")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres catalog: DB is nil")
	}

	entries, err := p.loadDestination(ctx, q.Destination)
	if err != nil {
		return nil, err
	}

	return scoreAndFilter(entries, q), nil
}

// Convert raw rows into scored candidates, dropping rows with unknown
// categories, rows above the price ceiling, and rows below the score
// threshold. Results are ordered by score, best first.
func scoreAndFilter(entries []cache.CatalogEntry, q ports.CandidateQuery) []*domain.Location {
	ceiling := q.PriceCeiling
	if ceiling <= 0 {
		ceiling = defaultPriceCeiling
	}

	candidates := make([]*domain.Location, 0, len(entries))
	for _, entry := range entries {
		cat, ok := domain.NormalizeCategory(entry.RawType)
		if !ok {
			continue
		}
		if entry.PriceTier > ceiling {
			continue
		}
		score := scoreTags(entry.Tags, q.Styles, q.Requirements)
		if score < minScore {
			continue
		}

		loc := &domain.Location{
			ID:        entry.ID,
			Name:      entry.Name,
			Category:  cat,
			Score:     score,
			PriceTier: entry.PriceTier,
		}
		if entry.Lat != nil && entry.Lon != nil {
			loc.Coords = &domain.Coordinates{Lat: *entry.Lat, Lon: *entry.Lon}
		}
		candidates = append(candidates, loc)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Fetch a destination's raw rows, preferring the Redis cache. Cache failures
// are logged and fall through to the database.
func (p *PostgresCatalog) loadDestination(ctx context.Context, destination string) ([]cache.CatalogEntry, error) {
	if p.Cache != nil {
		entries, ok, err := p.Cache.Get(ctx, destination)
		if err != nil {
			log.Printf("level=warn msg=\"catalog cache read failed\" destination=%q err=%q", destination, err)
		} else if ok {
			return entries, nil
		}
	}

	entries, err := p.queryDestination(ctx, destination)
	if err != nil {
		return nil, err
	}

	if p.Cache != nil {
		if err := p.Cache.Put(ctx, destination, entries); err != nil {
			log.Printf("level=warn msg=\"catalog cache write failed\" destination=%q err=%q", destination, err)
		}
	}

	return entries, nil
}

func (p *PostgresCatalog) queryDestination(ctx context.Context, destination string) ([]cache.CatalogEntry, error) {
	query := `
	SELECT
		id,
		name,
		type,
		lat,
		lon,
		price_tier,
		tags
	FROM locations
	WHERE lower(destination) = lower($1)
	ORDER BY id;
	`
	rows, err := p.DB.QueryContext(ctx, query, strings.TrimSpace(destination))
	if err != nil {
		return nil, fmt.Errorf("search candidates: query locations table: %w", err)
	}
	defer rows.Close()

	entries := make([]cache.CatalogEntry, 0, 64)
	for rows.Next() {
		var entry cache.CatalogEntry
		var lat, lon sql.NullFloat64
		var tags string
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.RawType, &lat, &lon, &entry.PriceTier, &tags); err != nil {
			return nil, fmt.Errorf("search candidates: scan row: %w", err)
		}
		if lat.Valid && lon.Valid {
			entry.Lat = &lat.Float64
			entry.Lon = &lon.Float64
		}
		entry.Tags = splitTags(tags)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search candidates: row iteration: %w", err)
	}

	return entries, nil
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
