package services

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

const (
	earthRadiusKm = 6371.0

	// Straight-line distances under this threshold are never worth a
	// provider round-trip.
	providerMinKm = 1.5

	providerTimeout = 10 * time.Second

	// Fixed overhead added to every approximate leg: waiting, transfers,
	// finding the entrance.
	bufferMinutes = 10

	defaultCacheSize = 5000
)

// modeSpeedKmh is the average speed profile for a travel mode.
// Unknown modes fall back to the transit profile.
func modeSpeedKmh(mode domain.TravelMode) float64 {
	switch mode {
	case domain.ModeWalk:
		return 4.0
	case domain.ModeVehicle:
		return 30.0
	default:
		return 20.0
	}
}

// DistanceOracle answers point-to-point distance/time queries with a
// two-stage resolution: a provider-backed estimate when one is configured
// and worth the round-trip, otherwise a great-circle approximation. Results
// are held in a process-lifetime FIFO cache owned by the oracle, so a single
// instance should be constructed at startup and shared by all planning
// calls. Estimate may be invoked concurrently for independent pairs.
type DistanceOracle struct {
	provider ports.RoutingProvider // nil disables provider queries
	cache    *estimateCache
}

// NewDistanceOracle builds an oracle around an optional routing provider.
// A nil provider restricts all estimates to great-circle approximations.
func NewDistanceOracle(provider ports.RoutingProvider, cacheSize int) *DistanceOracle {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	return &DistanceOracle{
		provider: provider,
		cache:    newEstimateCache(cacheSize),
	}
}

// GreatCircleKm returns the haversine distance in kilometers between two
// points. Pure computation: no cache, no provider.
func (o *DistanceOracle) GreatCircleKm(a, b domain.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Estimate resolves a travel estimate between two points for the given mode.
// Missing coordinates on either end yield a zero estimate tagged none,
// bypassing both cache and provider. Provider failures fall back to the
// approximate estimate and are never surfaced to the caller.
func (o *DistanceOracle) Estimate(ctx context.Context, origin, dest *domain.Coordinates, mode domain.TravelMode) domain.DistanceEstimate {
	if origin == nil || dest == nil {
		return domain.DistanceEstimate{Method: domain.MethodNone}
	}

	key := estimateKey(*origin, *dest, mode)
	if hit, ok := o.cache.get(key); ok {
		hit.Method = domain.MethodCacheHit
		return hit
	}

	straightKm := o.GreatCircleKm(*origin, *dest)

	var est domain.DistanceEstimate
	if o.provider == nil || straightKm < providerMinKm || mode == domain.ModeWalk {
		est = o.approximate(straightKm, mode)
	} else {
		est = o.fromProvider(ctx, *origin, *dest, mode, straightKm)
	}

	o.cache.put(key, est)
	return est
}

// approximate derives distance/time from the great-circle distance and the
// mode's average speed.
func (o *DistanceOracle) approximate(straightKm float64, mode domain.TravelMode) domain.DistanceEstimate {
	km := math.Round(straightKm*100) / 100
	minutes := int(math.Round(km/modeSpeedKmh(mode)*60)) + bufferMinutes

	return domain.DistanceEstimate{
		DistanceKm:  km,
		TimeMinutes: minutes,
		Method:      domain.MethodDirectLine,
	}
}

// fromProvider queries the routing provider under a hard timeout, falling
// back to the approximate estimate on any failure.
func (o *DistanceOracle) fromProvider(ctx context.Context, origin, dest domain.Coordinates, mode domain.TravelMode, straightKm float64) domain.DistanceEstimate {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	res, err := o.provider.GetRoute(ctx, origin, dest, mode)
	if err != nil {
		if !errors.Is(err, ports.ErrNoRoute) {
			log.Printf("op=oracle.route mode=%s err=%v fallback=direct-line", mode, err)
		}
		return o.approximate(straightKm, mode)
	}

	return domain.DistanceEstimate{
		DistanceKm:  math.Round(float64(res.DistanceMeters)/10) / 100,
		TimeMinutes: int(math.Round(float64(res.DurationSeconds) / 60)),
		Method:      domain.MethodProvider,
	}
}
