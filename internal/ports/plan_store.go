package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// PlanRecord is a finished itinerary document handed to the persistence
// collaborator.
type PlanRecord struct {
	Destination  string            `json:"destination"`
	DurationDays int               `json:"duration_days"`
	Itinerary    *domain.Itinerary `json:"itinerary"`
}

// Port: a boundary to the persistence collaborator. It accepts a finished
// plan document and returns an opaque identifier.
type PlanStore interface {
	SavePlan(ctx context.Context, ownerID string, record PlanRecord) (string, error)
}
