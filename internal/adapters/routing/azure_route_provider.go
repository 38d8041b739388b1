package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// AzureRouteProvider implements RoutingProvider using the Azure Maps Route
// Directions API. The provider is safe for concurrent use.
type AzureRouteProvider struct {
	session *http.Client
	key     string
	baseURL string
}

func NewAzureRouteProvider(subscriptionKey string) (*AzureRouteProvider, error) {
	if subscriptionKey == "" {
		return nil, errors.New("azure maps subscription key is empty")
	}

	return &AzureRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		key:     subscriptionKey,
		baseURL: "https://atlas.microsoft.com",
	}, nil
}

// travelModeParam maps engine modes onto Azure Maps travelMode values.
func travelModeParam(mode domain.TravelMode) string {
	switch mode {
	case domain.ModeWalk:
		return "pedestrian"
	case domain.ModeTransit:
		return "publicTransit"
	default:
		return "car"
	}
}

type routeResponse struct {
	Routes []struct {
		Summary struct {
			LengthInMeters      int `json:"lengthInMeters"`
			TravelTimeInSeconds int `json:"travelTimeInSeconds"`
		} `json:"summary"`
	} `json:"routes"`
}

// GetRoute queries route directions for one origin/destination pair.
// ErrNoRoute is returned when the provider answers with no routes.
func (a *AzureRouteProvider) GetRoute(ctx context.Context, origin, dest domain.Coordinates, mode domain.TravelMode) (_ ports.RouteResult, err error) {
	defer obs.Time("azure.GetRoute")(&err)

	endpoint := a.baseURL + "/route/directions/json"

	resp, err := a.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		q := req.URL.Query()
		q.Set("api-version", "1.0")
		q.Set("subscription-key", a.key)
		q.Set("query", fmt.Sprintf("%f,%f:%f,%f", origin.Lat, origin.Lon, dest.Lat, dest.Lon))
		q.Set("travelMode", travelModeParam(mode))
		q.Set("traffic", "true")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("Accept", "application/json")

		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route request: %w", err)
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("decode route response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return ports.RouteResult{}, ports.ErrNoRoute
	}

	s := decoded.Routes[0].Summary
	return ports.RouteResult{
		DistanceMeters:  s.LengthInMeters,
		DurationSeconds: s.TravelTimeInSeconds,
	}, nil
}
