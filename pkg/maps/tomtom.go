package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type TomTomProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewTomTomProvider(apiKey, baseURL string, timeout time.Duration) *TomTomProvider {
	if baseURL == "" {
		baseURL = "https://api.tomtom.com"
	}
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &TomTomProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (t *TomTomProvider) SearchTop(ctx context.Context, query string) (*Place, error) {
	if t.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("key", t.apiKey)
	params.Set("limit", "1")
	apiURL := fmt.Sprintf("%s/search/2/search/%s.json?%s", t.baseURL, url.PathEscape(query), params.Encode())

	var searchResp struct {
		Results []struct {
			ID       string  `json:"id"`
			Score    float64 `json:"score"`
			Address  struct {
				FreeformAddress string `json:"freeformAddress"`
			} `json:"address"`
			Position struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"position"`
		} `json:"results"`
	}

	if err := t.get(ctx, apiURL, &searchResp); err != nil {
		return nil, err
	}

	if len(searchResp.Results) == 0 {
		return nil, nil
	}

	top := searchResp.Results[0]
	return &Place{
		ID:      top.ID,
		Address: top.Address.FreeformAddress,
		Position: Location{
			Latitude:  top.Position.Lat,
			Longitude: top.Position.Lon,
		},
		Score: top.Score,
	}, nil
}

func (t *TomTomProvider) CalculateRoute(ctx context.Context, origin, destination Location) (*RouteSummary, error) {
	if t.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	locations := fmt.Sprintf("%f,%f:%f,%f",
		origin.Latitude, origin.Longitude,
		destination.Latitude, destination.Longitude)

	params := url.Values{}
	params.Set("key", t.apiKey)
	params.Set("traffic", "true")
	params.Set("travelMode", "car")
	params.Set("routeType", "fastest")
	apiURL := fmt.Sprintf("%s/routing/1/calculateRoute/%s/json?%s", t.baseURL, locations, params.Encode())

	var routeResp struct {
		Routes []struct {
			Summary RouteSummary `json:"summary"`
		} `json:"routes"`
	}

	if err := t.get(ctx, apiURL, &routeResp); err != nil {
		return nil, err
	}

	if len(routeResp.Routes) == 0 {
		return nil, nil
	}

	summary := routeResp.Routes[0].Summary
	return &summary, nil
}

func (t *TomTomProvider) get(ctx context.Context, apiURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TomTom API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
