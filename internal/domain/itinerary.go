package domain

// TravelSegment describes moving from the previous visited location to the
// current one. Options carries the alternative-mode estimates computed for
// the same pair so the chosen mode can be swapped without replanning.
type TravelSegment struct {
	Mode     TravelMode                      `json:"mode"`
	Estimate DistanceEstimate                `json:"estimate"`
	Options  map[TravelMode]DistanceEstimate `json:"options,omitempty"`
}

// Substitute is a same-category replacement suggestion for one slot.
type Substitute struct {
	Location       *Location      `json:"location"`
	TravelFromPrev *TravelSegment `json:"travel_from_previous,omitempty"` // nil on the first stop of a day
}

// ScheduleItem is one visit entry in a day plan. Items are emitted in
// visiting order; Order is 1-based.
type ScheduleItem struct {
	Order           int            `json:"order"`
	TimeSlot        string         `json:"time_slot"`
	StartTime       string         `json:"start_time"` // "HH:MM"
	EndTime         string         `json:"end_time"`
	DurationMinutes int            `json:"duration_minutes"`
	Location        *Location      `json:"location"`
	TravelFromPrev  *TravelSegment `json:"travel_from_previous,omitempty"` // nil for the first item of a day
	Substitutes     []Substitute   `json:"substitutes,omitempty"`
}

// DaySummary aggregates the default-mode travel legs of one day.
type DaySummary struct {
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalTravelMinutes int     `json:"total_travel_time_minutes"`
}

// DayPlan is the timetable for one calendar day.
type DayPlan struct {
	Day      int            `json:"day"`
	Schedule []ScheduleItem `json:"schedule"`
	Summary  DaySummary     `json:"summary"`
	Clusters *ClusterReport `json:"clustering,omitempty"` // diagnostics, day 1 only
}

// Itinerary is the finished multi-day plan document.
type Itinerary struct {
	Days []DayPlan `json:"days"`
}

// CandidateSnapshot records one candidate's scoring inputs for diagnostics.
type CandidateSnapshot struct {
	Name      string       `json:"name"`
	Category  Category     `json:"category"`
	Score     float64      `json:"score"`
	Coords    *Coordinates `json:"coords,omitempty"`
	PriceTier int          `json:"price_tier"`
}

// ClusterDay lists the candidates assigned to one calendar day.
type ClusterDay struct {
	Day     int                 `json:"day"`
	Members []CandidateSnapshot `json:"members"`
}

// ClusterReport exposes the day-clustering composition for inspection.
type ClusterReport struct {
	TotalLocations int          `json:"total_locations"`
	NumClusters    int          `json:"num_clusters"`
	Days           []ClusterDay `json:"clusters"`
}

// TripDiagnostics exposes candidate selection internals for inspection.
type TripDiagnostics struct {
	TotalCandidates int                 `json:"total_candidates"`
	SelectedCount   int                 `json:"selected_count"`
	ReserveCount    int                 `json:"reserve_count"`
	Selected        []CandidateSnapshot `json:"selected"`
	Reserve         []CandidateSnapshot `json:"reserve"`
}
