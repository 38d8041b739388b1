package domain

// Location is one scored candidate supplied by the search collaborator.
// Instances are immutable once handed to the planner.
type Location struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  Category     `json:"category"`
	Coords    *Coordinates `json:"coords,omitempty"` // nil when the catalog has no geometry for the row
	Score     float64      `json:"score"`
	PriceTier int          `json:"price_tier"`
}
