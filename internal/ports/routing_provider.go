package ports

import (
	"context"
	"errors"

	"trip-itinerary-service/internal/domain"
)

// RouteResult is the raw provider answer for one origin/destination/mode query.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// ErrNoRoute reports that the provider answered but found no route.
var ErrNoRoute = errors.New("no route found")

// RoutingProvider is the contract for the external routing service. It is an
// unreliable, rate-limited, network-bound dependency; callers must be
// prepared to fall back on approximate estimates when it fails.
type RoutingProvider interface {
	// Return travel distance and duration between two coordinate pairs.
	GetRoute(ctx context.Context, origin, dest domain.Coordinates, mode domain.TravelMode) (RouteResult, error)
}
