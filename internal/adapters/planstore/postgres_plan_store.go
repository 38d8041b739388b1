package planstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// Postgres-backed implementation of the PlanStore port. Plans are stored as
// a JSON document per row.
type PostgresPlanStore struct{ DB *sql.DB }

func NewPostgresPlanStore(db *sql.DB) *PostgresPlanStore {
	return &PostgresPlanStore{DB: db}
}

func (s *PostgresPlanStore) SavePlan(ctx context.Context, ownerID string, record ports.PlanRecord) (_ string, err error) {
	defer obs.Time("planstore.SavePlan")(&err)

	if s.DB == nil {
		return "", errors.New("postgres plan store: DB is nil")
	}

	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		owner = "anonymous"
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("save plan: encode record: %w", err)
	}

	planID := uuid.NewString()
	query := `
	INSERT INTO user_plans (
		plan_id,
		owner_id,
		destination,
		duration_days,
		plan
	)
	VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := s.DB.ExecContext(ctx, query, planID, owner, record.Destination, record.DurationDays, payload); err != nil {
		return "", fmt.Errorf("save plan: insert owner=%s: %w", owner, err)
	}

	return planID, nil
}

// Initialize the user_plans table.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS user_plans (
		plan_id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		destination TEXT NOT NULL,
		duration_days INTEGER NOT NULL,
		plan TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create user_plans: %w", err)
	}

	return nil
}
