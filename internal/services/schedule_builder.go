package services

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"trip-itinerary-service/internal/domain"
)

const (
	dayStartMinutes = 9 * 60
	dwellMinutes    = 90
	walkThresholdKm = 1.5
	maxSubstitutes  = 5
)

// legModes are the alternative estimates offered for every travel segment.
var legModes = []domain.TravelMode{domain.ModeWalk, domain.ModeTransit}

// BuildDayPlan turns an ordered day sequence into a timetable.
//
// Travel segments between consecutive stops depend only on their two
// endpoints, so all of a day's legs are computed concurrently and joined
// into stop order before assembly; the emitted schedule always follows the
// input order. A failure in any leg surfaces as an error for the whole day
// rather than a silently truncated plan.
func BuildDayPlan(ctx context.Context, oracle *DistanceOracle, day int, ordered []*domain.Location, substitutePool []*domain.Location) (*domain.DayPlan, error) {
	legs := make([]*domain.TravelSegment, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	for i := 1; i < len(ordered); i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("leg %d: %w", i, err)
			}
			legs[i] = buildSegment(gctx, oracle, ordered[i-1], ordered[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build day plan: day %d: %w", day, err)
	}

	clock := dayStartMinutes
	totalKm := 0.0
	totalMinutes := 0

	items := make([]domain.ScheduleItem, 0, len(ordered))
	for i, loc := range ordered {
		var seg *domain.TravelSegment
		var prev *domain.Location
		if i > 0 {
			seg = legs[i]
			prev = ordered[i-1]

			clock += seg.Estimate.TimeMinutes
			totalKm += seg.Estimate.DistanceKm
			totalMinutes += seg.Estimate.TimeMinutes
		}

		start := clock
		clock += dwellMinutes

		items = append(items, domain.ScheduleItem{
			Order:           i + 1,
			TimeSlot:        timeSlot(start / 60),
			StartTime:       formatClock(start),
			EndTime:         formatClock(clock),
			DurationMinutes: dwellMinutes,
			Location:        loc,
			TravelFromPrev:  seg,
			Substitutes:     substitutes(ctx, oracle, loc, prev, substitutePool),
		})
	}

	return &domain.DayPlan{
		Day:      day,
		Schedule: items,
		Summary: domain.DaySummary{
			TotalDistanceKm:    math.Round(totalKm*100) / 100,
			TotalTravelMinutes: totalMinutes,
		},
	}, nil
}

// buildSegment computes the default-mode estimate for one leg plus the full
// set of alternative-mode options for the same pair.
func buildSegment(ctx context.Context, oracle *DistanceOracle, from, to *domain.Location) *domain.TravelSegment {
	mode := classifyMode(oracle, from, to)

	options := make(map[domain.TravelMode]domain.DistanceEstimate, len(legModes))
	for _, m := range legModes {
		options[m] = oracle.Estimate(ctx, from.Coords, to.Coords, m)
	}

	est, ok := options[mode]
	if !ok {
		est = oracle.Estimate(ctx, from.Coords, to.Coords, mode)
	}

	return &domain.TravelSegment{
		Mode:     mode,
		Estimate: est,
		Options:  options,
	}
}

// classifyMode picks the default leg mode from the straight-line distance:
// short hops are walked, everything else defaults to transit.
func classifyMode(oracle *DistanceOracle, from, to *domain.Location) domain.TravelMode {
	if from.Coords == nil || to.Coords == nil {
		return domain.ModeWalk
	}
	if oracle.GreatCircleKm(*from.Coords, *to.Coords) < walkThresholdKm {
		return domain.ModeWalk
	}
	return domain.ModeTransit
}

// substitutes picks up to maxSubstitutes same-category locations from the
// pool, each with its own travel segment from the previous stop.
func substitutes(ctx context.Context, oracle *DistanceOracle, current, prev *domain.Location, pool []*domain.Location) []domain.Substitute {
	var subs []domain.Substitute
	for _, alt := range pool {
		if alt.Category != current.Category {
			continue
		}

		s := domain.Substitute{Location: alt}
		if prev != nil {
			s.TravelFromPrev = buildSegment(ctx, oracle, prev, alt)
		}

		subs = append(subs, s)
		if len(subs) == maxSubstitutes {
			break
		}
	}
	return subs
}

// timeSlot labels a visit by its start hour.
func timeSlot(hour int) string {
	switch {
	case hour < 12:
		return "morning"
	case hour < 14:
		return "lunch"
	case hour < 17:
		return "afternoon"
	case hour < 19:
		return "dinner"
	default:
		return "night"
	}
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
