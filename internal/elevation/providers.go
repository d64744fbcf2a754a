package elevation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"backend-routeforge/internal/shared/geo"
)

// Provider is one elevation data backend. Errors are soft; the service
// falls back to the synthetic generator when every provider fails.
type Provider interface {
	Name() string
	AttemptElevations(ctx context.Context, coords []geo.Coordinate) ([]float64, error)
}

type terrainProvider struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewTerrainProvider(baseURL, token string, client *http.Client) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &terrainProvider{baseURL: baseURL, token: token, client: client}
}

func (p *terrainProvider) Name() string { return "mapbox-terrain" }

func (p *terrainProvider) AttemptElevations(ctx context.Context, coords []geo.Coordinate) ([]float64, error) {
	if p.token == "" {
		return nil, errors.New("mapbox token not set")
	}

	points := make([]string, len(coords))
	for i, c := range coords {
		points[i] = fmt.Sprintf("%f,%f", c.Lng, c.Lat)
	}
	url := fmt.Sprintf("%s/v4/mapbox.terrain-rgb/%s.json?access_token=%s",
		p.baseURL, strings.Join(points, ","), p.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mapbox terrain http %d", resp.StatusCode)
	}

	var data struct {
		Features []struct {
			Properties struct {
				Ele float64 `json:"ele"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if len(data.Features) != len(coords) {
		return nil, fmt.Errorf("mapbox terrain returned %d features for %d points", len(data.Features), len(coords))
	}

	elevations := make([]float64, len(coords))
	for i, f := range data.Features {
		elevations[i] = f.Properties.Ele
	}
	return elevations, nil
}

// googleProvider never got an API key budget and stays permanently
// unavailable, keeping the chain shape stable.
type googleProvider struct{}

func NewGoogleProvider() Provider { return googleProvider{} }

func (googleProvider) Name() string { return "google" }

func (googleProvider) AttemptElevations(ctx context.Context, coords []geo.Coordinate) ([]float64, error) {
	return nil, errors.New("google elevation not available")
}
