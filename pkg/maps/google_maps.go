package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

type GoogleMapsProvider struct {
	client *maps.Client
	now    func() time.Time
}

func NewGoogleMapsProvider(apiKey string) (*GoogleMapsProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleMapsProvider{
		client: client,
		now:    time.Now,
	}, nil
}

func (g *GoogleMapsProvider) SearchTop(ctx context.Context, query string) (*Place, error) {
	resp, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}

	if len(resp) == 0 {
		return nil, nil
	}

	top := resp[0]
	return &Place{
		ID:      top.PlaceID,
		Address: top.FormattedAddress,
		Position: Location{
			Latitude:  top.Geometry.Location.Lat,
			Longitude: top.Geometry.Location.Lng,
		},
	}, nil
}

func (g *GoogleMapsProvider) CalculateRoute(ctx context.Context, origin, destination Location) (*RouteSummary, error) {
	departure := g.now()

	req := &maps.DirectionsRequest{
		Origin:        fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude),
		Destination:   fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude),
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
		TrafficModel:  maps.TrafficModelBestGuess,
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, nil
	}

	var (
		meters   int
		duration time.Duration
		traffic  time.Duration
	)
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		duration += leg.Duration
		if leg.DurationInTraffic > 0 {
			traffic += leg.DurationInTraffic
		} else {
			traffic += leg.Duration
		}
	}

	delay := traffic - duration
	if delay < 0 {
		delay = 0
	}

	return &RouteSummary{
		LengthInMeters:        meters,
		TravelTimeInSeconds:   int(traffic.Seconds()),
		TrafficDelayInSeconds: int(delay.Seconds()),
		DepartureTime:         departure.Format(time.RFC3339),
		ArrivalTime:           departure.Add(traffic).Format(time.RFC3339),
	}, nil
}
