package maps

import (
	"context"
	"errors"
)

var ErrMissingAPIKey = errors.New("maps api key is not configured")

// Provider resolves free text to a coordinate and routes between two
// coordinates.
type Provider interface {
	// SearchTop returns the best match for query, or nil when nothing matched.
	SearchTop(ctx context.Context, query string) (*Place, error)
	// CalculateRoute returns a traffic-aware driving route summary, or nil
	// when no route exists.
	CalculateRoute(ctx context.Context, origin, destination Location) (*RouteSummary, error)
}

type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type Place struct {
	ID       string   `json:"id,omitempty"`
	Address  string   `json:"address"`
	Position Location `json:"position"`
	Score    float64  `json:"score,omitempty"`
}

type RouteSummary struct {
	LengthInMeters        int    `json:"lengthInMeters"`
	TravelTimeInSeconds   int    `json:"travelTimeInSeconds"`
	TrafficDelayInSeconds int    `json:"trafficDelayInSeconds"`
	DepartureTime         string `json:"departureTime"`
	ArrivalTime           string `json:"arrivalTime"`
}
