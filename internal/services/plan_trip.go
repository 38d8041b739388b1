package services

import (
	"context"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// ErrNoEligibleLocations reports that the catalog had nothing matching the
// requested destination, styles and budget.
var ErrNoEligibleLocations = errors.New("no eligible locations")

// Candidates selected per trip day; the next reserveCount ranked candidates
// become the substitute pool.
const (
	candidatesPerDay = 5
	reserveCount     = 20
)

type PlanTripRequest struct {
	OwnerID      string
	Destination  string
	DurationDays int
	Styles       []string
	Requirements []string
	BudgetTier   int
	Diagnostics  bool
	Save         bool
}

// PlanTripResult is the itinerary document returned to the surrounding
// service layer.
type PlanTripResult struct {
	PlanID       string                  `json:"plan_id,omitempty"`
	Destination  string                  `json:"destination"`
	DurationDays int                     `json:"duration_days"`
	TotalPlaces  int                     `json:"total_places"`
	Itinerary    *domain.Itinerary       `json:"itinerary"`
	Diagnostics  *domain.TripDiagnostics `json:"diagnostics,omitempty"`
}

// PlanTrip generates a full trip: search candidates through the catalog
// port, select the top ranked locations for the trip length, plan the
// itinerary, and optionally persist the finished document.
func PlanTrip(ctx context.Context, req PlanTripRequest, source ports.CandidateSource, store ports.PlanStore, planner *Planner) (*PlanTripResult, error) {
	if req.DurationDays <= 0 {
		return nil, fmt.Errorf("plan trip: duration must be positive, got %d", req.DurationDays)
	}

	candidates, err := source.SearchCandidates(ctx, ports.CandidateQuery{
		Destination:  req.Destination,
		Styles:       req.Styles,
		Requirements: req.Requirements,
		PriceCeiling: req.BudgetTier,
	})
	if err != nil {
		return nil, fmt.Errorf("plan trip: search candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("plan trip: destination %q: %w", req.Destination, ErrNoEligibleLocations)
	}

	maxSelected := req.DurationDays * candidatesPerDay
	selected := candidates
	if len(selected) > maxSelected {
		selected = selected[:maxSelected]
	}

	reserve := candidates[len(selected):]
	if len(reserve) > reserveCount {
		reserve = reserve[:reserveCount]
	}

	itinerary, err := planner.BuildItinerary(ctx, selected, req.DurationDays, reserve, req.Diagnostics)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	result := &PlanTripResult{
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		TotalPlaces:  len(selected),
		Itinerary:    itinerary,
	}

	if req.Diagnostics {
		result.Diagnostics = &domain.TripDiagnostics{
			TotalCandidates: len(candidates),
			SelectedCount:   len(selected),
			ReserveCount:    len(reserve),
			Selected:        snapshots(selected),
			Reserve:         snapshots(reserve),
		}
	}

	if req.Save && store != nil {
		id, err := store.SavePlan(ctx, req.OwnerID, ports.PlanRecord{
			Destination:  req.Destination,
			DurationDays: req.DurationDays,
			Itinerary:    itinerary,
		})
		if err != nil {
			return nil, fmt.Errorf("plan trip: save plan: %w", err)
		}
		result.PlanID = id
	}

	return result, nil
}

func snapshots(locs []*domain.Location) []domain.CandidateSnapshot {
	out := make([]domain.CandidateSnapshot, 0, len(locs))
	for _, l := range locs {
		out = append(out, snapshot(l))
	}
	return out
}
