package services

import (
	"context"
	"fmt"
	"sort"

	"trip-itinerary-service/internal/domain"
)

// Planner builds multi-day itineraries on top of a shared DistanceOracle.
type Planner struct {
	Oracle *DistanceOracle
}

// BuildItinerary plans the whole trip from ranked candidates.
//
// Candidates are partitioned into category buckets, the highest-scoring
// lodging becomes the anchor for every day, and the non-lodging buckets are
// interleaved into one pool that is clustered into day groups exactly once
// and reused for all days. Each day is sequenced from its cluster, closed at
// the anchor on every day but the last, and scheduled. An empty candidate
// list yields an itinerary with zero day plans, which callers must treat as
// a valid degenerate outcome.
func (p *Planner) BuildItinerary(ctx context.Context, candidates []*domain.Location, days int, substitutePool []*domain.Location, withDiagnostics bool) (*domain.Itinerary, error) {
	if days <= 0 || len(candidates) == 0 {
		return &domain.Itinerary{Days: []domain.DayPlan{}}, nil
	}

	var sights, dining, cafes, lodgings []*domain.Location
	for _, c := range candidates {
		switch c.Category {
		case domain.CategoryDining:
			dining = append(dining, c)
		case domain.CategoryCafe:
			cafes = append(cafes, c)
		case domain.CategoryLodging:
			lodgings = append(lodgings, c)
		default:
			sights = append(sights, c)
		}
	}

	sort.SliceStable(lodgings, func(i, j int) bool { return lodgings[i].Score > lodgings[j].Score })
	var anchor *domain.Location
	if len(lodgings) > 0 {
		anchor = lodgings[0]
	}

	pool := interleave(sights, dining, cafes)
	clusters := ClusterByDay(p.Oracle, pool, days)

	itinerary := &domain.Itinerary{Days: make([]domain.DayPlan, 0, days)}

	for day := 1; day <= days; day++ {
		var daily []*domain.Location
		if day <= len(clusters) {
			daily = clusters[day-1]
		}

		ordered := SequenceRoute(ctx, p.Oracle, daily, anchor)

		// Close the loop back at the lodging every night but the last.
		if anchor != nil && day < days {
			ordered = append(ordered, anchor)
		}

		plan, err := BuildDayPlan(ctx, p.Oracle, day, ordered, substitutePool)
		if err != nil {
			return nil, fmt.Errorf("build itinerary: day %d: %w", day, err)
		}

		itinerary.Days = append(itinerary.Days, *plan)
	}

	if withDiagnostics && len(itinerary.Days) > 0 {
		itinerary.Days[0].Clusters = clusterReport(clusters)
	}

	return itinerary, nil
}

// interleave merges the category buckets into a single pool with a fixed
// 2:2:1 sight/dining/cafe ratio per cycle, preserving rank order inside each
// bucket. Exhausted buckets are skipped until every bucket is drained.
func interleave(sights, dining, cafes []*domain.Location) []*domain.Location {
	pool := make([]*domain.Location, 0, len(sights)+len(dining)+len(cafes))

	take := func(bucket *[]*domain.Location) {
		if len(*bucket) == 0 {
			return
		}
		pool = append(pool, (*bucket)[0])
		*bucket = (*bucket)[1:]
	}

	for len(sights)+len(dining)+len(cafes) > 0 {
		take(&sights)
		take(&dining)
		take(&sights)
		take(&cafes)
		take(&dining)
	}

	return pool
}

func clusterReport(clusters [][]*domain.Location) *domain.ClusterReport {
	report := &domain.ClusterReport{
		NumClusters: len(clusters),
		Days:        make([]domain.ClusterDay, 0, len(clusters)),
	}

	for i, cluster := range clusters {
		day := domain.ClusterDay{
			Day:     i + 1,
			Members: make([]domain.CandidateSnapshot, 0, len(cluster)),
		}
		for _, l := range cluster {
			report.TotalLocations++
			day.Members = append(day.Members, snapshot(l))
		}
		report.Days = append(report.Days, day)
	}

	return report
}

func snapshot(l *domain.Location) domain.CandidateSnapshot {
	return domain.CandidateSnapshot{
		Name:      l.Name,
		Category:  l.Category,
		Score:     l.Score,
		Coords:    l.Coords,
		PriceTier: l.PriceTier,
	}
}
