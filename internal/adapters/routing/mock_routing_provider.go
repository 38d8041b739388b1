package routing

import (
	"context"
	"fmt"
	"sync/atomic"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

type MockRoute struct {
	From, To domain.Coordinates
	Mode     domain.TravelMode
	Meters   int
	Seconds  int
}

// MockRoutingProvider serves canned route results for tests. Pairs with no
// configured result answer ErrNoRoute, exercising the fallback path.
type MockRoutingProvider struct {
	m     map[string]ports.RouteResult
	calls atomic.Int64
}

func NewMockRoutingProvider(routes []MockRoute) *MockRoutingProvider {
	m := make(map[string]ports.RouteResult, len(routes))
	for _, r := range routes {
		m[mockKey(r.From, r.To, r.Mode)] = ports.RouteResult{
			DistanceMeters:  r.Meters,
			DurationSeconds: r.Seconds,
		}
	}
	return &MockRoutingProvider{m: m}
}

func mockKey(origin, dest domain.Coordinates, mode domain.TravelMode) string {
	return fmt.Sprintf("%.4f,%.4f|%.4f,%.4f|%s", origin.Lat, origin.Lon, dest.Lat, dest.Lon, mode)
}

func (p *MockRoutingProvider) GetRoute(ctx context.Context, origin, dest domain.Coordinates, mode domain.TravelMode) (ports.RouteResult, error) {
	p.calls.Add(1)

	r, ok := p.m[mockKey(origin, dest, mode)]
	if !ok {
		return ports.RouteResult{}, ports.ErrNoRoute
	}
	return r, nil
}

// Calls reports how many times the provider was queried.
func (p *MockRoutingProvider) Calls() int {
	return int(p.calls.Load())
}
