package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carbooking/pkg/logger"
	"carbooking/pkg/maps"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const metersPerMile = 1609.344

type RouteEstimate struct {
	Origin      *maps.Place   `json:"origin"`
	Destination *maps.Place   `json:"destination"`
	Route       *RouteDetails `json:"route"`
}

type RouteDetails struct {
	DistanceMeters      int     `json:"distanceMeters"`
	DistanceKm          float64 `json:"distanceKm"`
	DistanceMiles       float64 `json:"distanceMiles"`
	DurationSeconds     int     `json:"durationSeconds"`
	DurationText        string  `json:"durationText"`
	TrafficDelaySeconds int     `json:"trafficDelaySeconds"`
	DepartureTime       string  `json:"departureTime"`
	ArrivalTime         string  `json:"arrivalTime"`
}

type RouteService interface {
	// Estimate geocodes both addresses concurrently and routes between them.
	// A leg that cannot be resolved is left nil.
	Estimate(ctx context.Context, from, to string) (*RouteEstimate, error)
}

type routeService struct {
	provider maps.Provider
	logger   *logger.Logger
}

func NewRouteService(provider maps.Provider, log *logger.Logger) RouteService {
	return &routeService{provider: provider, logger: log}
}

func (s *routeService) Estimate(ctx context.Context, from, to string) (*RouteEstimate, error) {
	estimate := &RouteEstimate{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		place, err := s.search(gctx, from)
		estimate.Origin = place
		return err
	})
	g.Go(func() error {
		place, err := s.search(gctx, to)
		estimate.Destination = place
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if estimate.Origin == nil || estimate.Destination == nil {
		return estimate, nil
	}

	summary, err := s.provider.CalculateRoute(ctx, estimate.Origin.Position, estimate.Destination.Position)
	if err != nil {
		if errors.Is(err, maps.ErrMissingAPIKey) {
			return nil, err
		}
		s.logger.WithError(err).Warn("Route calculation failed")
		return estimate, nil
	}
	if summary != nil {
		estimate.Route = newRouteDetails(summary)
	}

	return estimate, nil
}

// search only reports configuration errors; lookup failures yield nil.
func (s *routeService) search(ctx context.Context, query string) (*maps.Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	place, err := s.provider.SearchTop(ctx, query)
	if err != nil {
		if errors.Is(err, maps.ErrMissingAPIKey) {
			return nil, err
		}
		s.logger.WithField("query", query).WithError(err).Warn("Geocoding failed")
		return nil, nil
	}
	return place, nil
}

func newRouteDetails(summary *maps.RouteSummary) *RouteDetails {
	meters := decimal.NewFromInt(int64(summary.LengthInMeters))
	return &RouteDetails{
		DistanceMeters:      summary.LengthInMeters,
		DistanceKm:          meters.Div(decimal.NewFromInt(1000)).Round(2).InexactFloat64(),
		DistanceMiles:       meters.Div(decimal.NewFromFloat(metersPerMile)).Round(2).InexactFloat64(),
		DurationSeconds:     summary.TravelTimeInSeconds,
		DurationText:        FormatDuration(summary.TravelTimeInSeconds),
		TrafficDelaySeconds: summary.TrafficDelayInSeconds,
		DepartureTime:       summary.DepartureTime,
		ArrivalTime:         summary.ArrivalTime,
	}
}

// FormatDuration renders seconds as "1 hour 5 mins". Zero units are omitted
// and anything under a minute is "0 mins".
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	var parts []string
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "min"))
	}
	if len(parts) == 0 {
		return "0 mins"
	}
	return strings.Join(parts, " ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
