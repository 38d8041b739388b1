package services

import (
	"math"

	"trip-itinerary-service/internal/domain"
)

const clusterIterations = 10

// ClusterByDay partitions locations into dayCount groups by geographic
// proximity using iterative centroid relocation (k-means style).
//
// Centroids seed from the first dayCount locations, so clustering is
// deterministic for a given input order; this is a deliberate simplification,
// not a statistical one. Ties in centroid distance resolve to the
// lowest-index centroid. The assignment after the iteration cap is returned
// as-is; convergence is not checked.
func ClusterByDay(oracle *DistanceOracle, locs []*domain.Location, dayCount int) [][]*domain.Location {
	if len(locs) == 0 || dayCount <= 0 {
		return nil
	}

	// Fewer locations than days: one singleton cluster per location.
	if len(locs) <= dayCount {
		clusters := make([][]*domain.Location, 0, len(locs))
		for _, l := range locs {
			clusters = append(clusters, []*domain.Location{l})
		}
		return clusters
	}

	centroids := make([]domain.Coordinates, dayCount)
	for i := 0; i < dayCount; i++ {
		centroids[i] = coordsOrZero(locs[i])
	}

	var clusters [][]*domain.Location
	for iter := 0; iter < clusterIterations; iter++ {
		next := make([][]*domain.Location, dayCount)

		for _, l := range locs {
			p := coordsOrZero(l)

			best := 0
			minDist := math.Inf(1)
			for i, c := range centroids {
				if d := oracle.GreatCircleKm(p, c); d < minDist {
					minDist = d
					best = i
				}
			}

			next[best] = append(next[best], l)
		}

		for i, cluster := range next {
			if len(cluster) == 0 {
				continue // empty cluster keeps its previous centroid
			}

			var sumLat, sumLon float64
			for _, l := range cluster {
				p := coordsOrZero(l)
				sumLat += p.Lat
				sumLon += p.Lon
			}
			centroids[i] = domain.Coordinates{
				Lat: sumLat / float64(len(cluster)),
				Lon: sumLon / float64(len(cluster)),
			}
		}

		clusters = next
	}

	return clusters
}

func coordsOrZero(l *domain.Location) domain.Coordinates {
	if l.Coords == nil {
		return domain.Coordinates{}
	}
	return *l.Coords
}
