package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// CandidateQuery scopes a catalog search.
type CandidateQuery struct {
	Destination  string
	Styles       []string
	Requirements []string
	PriceCeiling int
}

// Port: a boundary to the search collaborator. Implementations return
// candidate locations ranked by relevance score, best first, with category
// tags already normalized to the canonical set.
type CandidateSource interface {
	SearchCandidates(ctx context.Context, q CandidateQuery) ([]*domain.Location, error)
}
