package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTomTomProvider_SearchTop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/search/2/search/"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"results":[{"id":"p1","score":9.1,"address":{"freeformAddress":"Airport, Nice"},"position":{"lat":43.66,"lon":7.21}}]}`))
	}))
	defer srv.Close()

	p := NewTomTomProvider("test-key", srv.URL, time.Second)

	place, err := p.SearchTop(context.Background(), "Nice airport")
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Airport, Nice", place.Address)
	assert.InDelta(t, 43.66, place.Position.Latitude, 1e-9)
	assert.InDelta(t, 7.21, place.Position.Longitude, 1e-9)
}

func TestTomTomProvider_SearchTopNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	place, err := NewTomTomProvider("k", srv.URL, time.Second).SearchTop(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestTomTomProvider_CalculateRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/routing/1/calculateRoute/43.660000,7.210000:43.700000,7.260000/json", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("traffic"))
		_, _ = w.Write([]byte(`{"routes":[{"summary":{"lengthInMeters":12500,"travelTimeInSeconds":1260,"trafficDelayInSeconds":120,"departureTime":"2024-05-01T10:00:00+02:00","arrivalTime":"2024-05-01T10:21:00+02:00"}}]}`))
	}))
	defer srv.Close()

	p := NewTomTomProvider("k", srv.URL, time.Second)

	route, err := p.CalculateRoute(context.Background(),
		Location{Latitude: 43.66, Longitude: 7.21},
		Location{Latitude: 43.70, Longitude: 7.26})
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, 12500, route.LengthInMeters)
	assert.Equal(t, 1260, route.TravelTimeInSeconds)
	assert.Equal(t, 120, route.TrafficDelayInSeconds)
	assert.Equal(t, "2024-05-01T10:21:00+02:00", route.ArrivalTime)
}

func TestTomTomProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer srv.Close()

	_, err := NewTomTomProvider("k", srv.URL, time.Second).SearchTop(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestTomTomProvider_MissingKey(t *testing.T) {
	_, err := NewTomTomProvider("", "", 0).SearchTop(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

type memoryCache struct {
	items map[string]Place
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	p, ok := m.items[key]
	if !ok {
		return assert.AnError
	}
	*(dest.(*Place)) = p
	return nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.items[key] = *(value.(*Place))
	return nil
}

type countingProvider struct {
	calls int
}

func (c *countingProvider) SearchTop(_ context.Context, query string) (*Place, error) {
	c.calls++
	return &Place{Address: query}, nil
}

func (c *countingProvider) CalculateRoute(context.Context, Location, Location) (*RouteSummary, error) {
	return nil, nil
}

func TestCachedProvider_SearchTop(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachedProvider(inner, &memoryCache{items: map[string]Place{}}, time.Minute)

	first, err := p.SearchTop(context.Background(), "Nice")
	require.NoError(t, err)
	second, err := p.SearchTop(context.Background(), " nice ")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first.Address, second.Address)
}
