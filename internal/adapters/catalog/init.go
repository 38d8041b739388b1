package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the locations table used by the Postgres catalog.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		id TEXT PRIMARY KEY,
		destination TEXT NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		price_tier INTEGER NOT NULL DEFAULT 1,
		tags TEXT NOT NULL DEFAULT ''
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_locations_destination
	ON locations(lower(destination));
	`

	statements := []string{
		createLocationsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the locations table from a JSON seed file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	var data []SeedLocation
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed locations: parse json: %w", err)
	}

	rows := make([]SeedLocation, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("seed locations: item at index %d: id cannot be empty", i+1)
		}
		dest := strings.TrimSpace(item.Destination)
		if dest == "" {
			return fmt.Errorf("seed locations: item at index %d: destination cannot be empty", i+1)
		}
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed locations: item at index %d: name cannot be empty", i+1)
		}
		item.ID, item.Destination, item.Name = id, dest, name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO locations (
		id,
		destination,
		name,
		type,
		lat,
		lon,
		price_tier,
		tags
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		destination = EXCLUDED.destination,
		name = EXCLUDED.name,
		type = EXCLUDED.type,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		price_tier = EXCLUDED.price_tier,
		tags = EXCLUDED.tags;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		var lat, lon any
		if l.Lat != nil && l.Lon != nil {
			lat, lon = *l.Lat, *l.Lon
		}
		tags := strings.Join(l.Tags, ",")
		if _, err := stmt.Exec(l.ID, l.Destination, l.Name, l.Type, lat, lon, l.PriceTier, tags); err != nil {
			return fmt.Errorf("seed locations: insert id=%s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
