package services

import (
	"context"
	"testing"

	"trip-itinerary-service/internal/domain"
)

func TestSequenceRouteGreedyOrder(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	// Four stops in a straight west-to-east line. Starting at the western
	// end, the greedy walk must visit them in line order.
	west := loc("west", domain.CategorySight, 37.5665, 126.9780, 95)
	l2 := loc("l2", domain.CategorySight, 37.5665, 126.9880, 60)
	l3 := loc("l3", domain.CategorySight, 37.5665, 126.9980, 80)
	east := loc("east", domain.CategorySight, 37.5665, 127.0080, 70)

	route := SequenceRoute(context.Background(), o, []*domain.Location{l3, east, west, l2}, nil)

	want := []string{"west", "l2", "l3", "east"}
	if len(route) != len(want) {
		t.Fatalf("route length = %d, want %d", len(route), len(want))
	}
	for i, id := range want {
		if route[i].ID != id {
			t.Fatalf("route[%d] = %s, want %s", i, route[i].ID, id)
		}
	}
}

func TestSequenceRouteStartsAtHighestScore(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	a := loc("a", domain.CategorySight, 37.5665, 126.9780, 50)
	b := loc("b", domain.CategorySight, 37.5665, 127.0080, 99)

	route := SequenceRoute(context.Background(), o, []*domain.Location{a, b}, nil)
	if route[0].ID != "b" {
		t.Fatalf("route starts at %s, want the highest-scoring stop", route[0].ID)
	}
}

func TestSequenceRouteAnchorFirst(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	hotel := loc("hotel", domain.CategoryLodging, 37.5665, 127.0180, 99)
	stops := []*domain.Location{
		loc("near", domain.CategorySight, 37.5665, 127.0080, 10),
		loc("far", domain.CategorySight, 37.5665, 126.9780, 90),
	}

	route := SequenceRoute(context.Background(), o, stops, hotel)
	if len(route) != 3 {
		t.Fatalf("route length = %d, want 3", len(route))
	}
	if route[0].ID != "hotel" {
		t.Fatalf("route starts at %s, want the anchor", route[0].ID)
	}
	if route[1].ID != "near" {
		t.Fatalf("route[1] = %s, want the stop nearest the anchor", route[1].ID)
	}
}

func TestSequenceRouteEmpty(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	if got := SequenceRoute(context.Background(), o, nil, nil); got != nil {
		t.Fatalf("expected nil route, got %v", got)
	}

	// An anchor with nothing to visit is not a route.
	anchor := loc("hotel", domain.CategoryLodging, 37.5665, 126.9780, 99)
	if got := SequenceRoute(context.Background(), o, nil, anchor); got != nil {
		t.Fatalf("expected nil route for an empty day, got %v", got)
	}
}
