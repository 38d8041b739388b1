package services

import (
	"context"
	"math"

	"trip-itinerary-service/internal/domain"
)

// SequenceRoute orders one day's locations into a visiting sequence with a
// greedy nearest-neighbor walk.
//
// When anchor is non-nil it is the first stop and is excluded from the
// unvisited pool; otherwise the highest-scoring location starts the route.
// An empty location set yields an empty sequence even when an anchor is
// supplied; there is nothing to route. Each greedy step uses a full oracle
// estimate rather than the pure great-circle distance, so a configured
// provider influences the ordering the same way it influences the
// timetable. The algorithm minimizes immediate travel distance at each
// step; it does not attempt global route optimization.
func SequenceRoute(ctx context.Context, oracle *DistanceOracle, locs []*domain.Location, anchor *domain.Location) []*domain.Location {
	if len(locs) == 0 {
		return nil
	}

	unvisited := make([]*domain.Location, len(locs))
	copy(unvisited, locs)

	route := make([]*domain.Location, 0, len(locs)+1)

	var current *domain.Location
	if anchor != nil {
		current = anchor
	} else {
		best := 0
		for i, l := range unvisited {
			if l.Score > unvisited[best].Score {
				best = i
			}
		}
		current = unvisited[best]
		unvisited = append(unvisited[:best], unvisited[best+1:]...)
	}
	route = append(route, current)

	for len(unvisited) > 0 {
		nearest := 0
		minKm := math.Inf(1)

		for i, l := range unvisited {
			est := oracle.Estimate(ctx, current.Coords, l.Coords, domain.ModeTransit)
			if est.DistanceKm < minKm {
				minKm = est.DistanceKm
				nearest = i
			}
		}

		current = unvisited[nearest]
		unvisited = append(unvisited[:nearest], unvisited[nearest+1:]...)
		route = append(route, current)
	}

	return route
}
