package domain

// TravelMode selects the speed and routing profile for an estimate.
type TravelMode string

const (
	ModeWalk    TravelMode = "walk"
	ModeVehicle TravelMode = "vehicle"
	ModeTransit TravelMode = "transit"
)

// EstimateMethod tags how a DistanceEstimate was produced.
type EstimateMethod string

const (
	MethodDirectLine EstimateMethod = "direct-line"
	MethodProvider   EstimateMethod = "external-provider"
	MethodCacheHit   EstimateMethod = "cache-hit"
	MethodNone       EstimateMethod = "none"
)

// DistanceEstimate is a point-to-point travel estimate.
// Produced fresh per query and never mutated afterwards.
type DistanceEstimate struct {
	DistanceKm  float64        `json:"distance_km"`
	TimeMinutes int            `json:"time_minutes"`
	Method      EstimateMethod `json:"method"`
}
