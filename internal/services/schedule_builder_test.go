package services

import (
	"context"
	"math"
	"reflect"
	"testing"

	"trip-itinerary-service/internal/domain"
)

func TestBuildDayPlanTimetable(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	ordered := []*domain.Location{
		loc("a", domain.CategorySight, 37.5665, 126.9780, 90),
		loc("b", domain.CategoryDining, 37.5665, 126.9880, 85),
		loc("c", domain.CategorySight, 37.5665, 126.9980, 80),
	}

	plan, err := BuildDayPlan(context.Background(), o, 1, ordered, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Day != 1 {
		t.Fatalf("day = %d, want 1", plan.Day)
	}
	if len(plan.Schedule) != 3 {
		t.Fatalf("schedule length = %d, want 3", len(plan.Schedule))
	}

	first := plan.Schedule[0]
	if first.StartTime != "09:00" || first.EndTime != "10:30" {
		t.Fatalf("first stop %s-%s, want 09:00-10:30", first.StartTime, first.EndTime)
	}
	if first.TimeSlot != "morning" {
		t.Fatalf("first slot = %q, want morning", first.TimeSlot)
	}
	if first.TravelFromPrev != nil {
		t.Fatal("first stop must have no inbound travel segment")
	}

	// Each later stop starts one leg plus one visit after the previous start.
	clock := 9 * 60
	for i, item := range plan.Schedule {
		if i > 0 {
			if item.TravelFromPrev == nil {
				t.Fatalf("stop %d missing travel segment", i+1)
			}
			clock += item.TravelFromPrev.Estimate.TimeMinutes
		}
		if item.StartTime != formatClock(clock) {
			t.Fatalf("stop %d starts %s, want %s", i+1, item.StartTime, formatClock(clock))
		}
		if item.DurationMinutes != 90 {
			t.Fatalf("stop %d duration = %d, want 90", i+1, item.DurationMinutes)
		}
		if item.Order != i+1 {
			t.Fatalf("stop %d order = %d", i+1, item.Order)
		}
		clock += 90
	}

	var wantKm float64
	var wantMinutes int
	for _, item := range plan.Schedule[1:] {
		wantKm += item.TravelFromPrev.Estimate.DistanceKm
		wantMinutes += item.TravelFromPrev.Estimate.TimeMinutes
	}
	if plan.Summary.TotalDistanceKm != math.Round(wantKm*100)/100 {
		t.Fatalf("total distance = %f, want %f", plan.Summary.TotalDistanceKm, wantKm)
	}
	if plan.Summary.TotalTravelMinutes != wantMinutes {
		t.Fatalf("total minutes = %d, want %d", plan.Summary.TotalTravelMinutes, wantMinutes)
	}
}

func TestBuildDayPlanLegModes(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	ordered := []*domain.Location{
		loc("a", domain.CategorySight, 37.5665, 126.9780, 90),
		loc("b", domain.CategorySight, 37.5665, 126.9880, 85), // ~0.9 km: walk
		loc("c", domain.CategorySight, 37.5512, 127.0074, 80), // ~3 km: transit
	}

	plan, err := BuildDayPlan(context.Background(), o, 1, ordered, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	short := plan.Schedule[1].TravelFromPrev
	if short.Mode != domain.ModeWalk {
		t.Fatalf("short leg mode = %q, want walk", short.Mode)
	}
	long := plan.Schedule[2].TravelFromPrev
	if long.Mode != domain.ModeTransit {
		t.Fatalf("long leg mode = %q, want transit", long.Mode)
	}

	for _, seg := range []*domain.TravelSegment{short, long} {
		for _, mode := range []domain.TravelMode{domain.ModeWalk, domain.ModeTransit} {
			if _, ok := seg.Options[mode]; !ok {
				t.Fatalf("segment missing %q option", mode)
			}
		}
		if seg.Estimate != seg.Options[seg.Mode] {
			t.Fatal("segment estimate does not match its chosen mode option")
		}
	}
}

func TestBuildDayPlanTimeSlots(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{9, "morning"},
		{11, "morning"},
		{12, "lunch"},
		{13, "lunch"},
		{14, "afternoon"},
		{16, "afternoon"},
		{17, "dinner"},
		{18, "dinner"},
		{19, "night"},
		{23, "night"},
	}
	for _, c := range cases {
		if got := timeSlot(c.hour); got != c.want {
			t.Fatalf("timeSlot(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestBuildDayPlanSubstitutes(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	ordered := []*domain.Location{
		loc("a", domain.CategorySight, 37.5665, 126.9780, 90),
		loc("b", domain.CategoryDining, 37.5665, 126.9880, 85),
	}

	pool := make([]*domain.Location, 0, 8)
	for i := 0; i < 7; i++ {
		pool = append(pool, loc(string(rune('p'+i)), domain.CategorySight, 37.5665, 126.9800, 50))
	}
	pool = append(pool, loc("alt-dining", domain.CategoryDining, 37.5665, 126.9890, 55))

	plan, err := BuildDayPlan(context.Background(), o, 1, ordered, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subs := plan.Schedule[0].Substitutes
	if len(subs) != 5 {
		t.Fatalf("first stop has %d substitutes, want 5", len(subs))
	}
	for _, s := range subs {
		if s.Location.Category != domain.CategorySight {
			t.Fatalf("substitute %s has category %q, want sight", s.Location.ID, s.Location.Category)
		}
		if s.TravelFromPrev != nil {
			t.Fatal("first stop substitutes must have no inbound segment")
		}
	}

	diningSubs := plan.Schedule[1].Substitutes
	if len(diningSubs) != 1 || diningSubs[0].Location.ID != "alt-dining" {
		t.Fatalf("dining substitutes = %v, want only alt-dining", diningSubs)
	}
	if diningSubs[0].TravelFromPrev == nil {
		t.Fatal("later substitutes must carry a segment from the previous stop")
	}
}

func TestBuildDayPlanIdempotent(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	ordered := []*domain.Location{
		loc("a", domain.CategorySight, 37.5665, 126.9780, 90),
		loc("b", domain.CategoryDining, 37.5665, 126.9880, 85),
		loc("c", domain.CategorySight, 37.5512, 127.0074, 80),
	}
	pool := []*domain.Location{
		loc("alt", domain.CategorySight, 37.5600, 126.9800, 60),
	}

	// Warm the estimate cache, then compare two runs over identical state.
	if _, err := BuildDayPlan(context.Background(), o, 1, ordered, pool); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := BuildDayPlan(context.Background(), o, 1, ordered, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildDayPlan(context.Background(), o, 1, ordered, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("runs differ:\n%+v\n%+v", first, second)
	}
}

func TestBuildDayPlanEmptySequence(t *testing.T) {
	o := NewDistanceOracle(nil, 0)

	plan, err := BuildDayPlan(context.Background(), o, 2, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Schedule) != 0 {
		t.Fatalf("schedule length = %d, want 0", len(plan.Schedule))
	}
	if plan.Summary.TotalDistanceKm != 0 || plan.Summary.TotalTravelMinutes != 0 {
		t.Fatalf("expected zero summary, got %+v", plan.Summary)
	}
}
