package snap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"backend-routeforge/internal/shared/geo"

	"github.com/paulmach/orb"
)

type osrmProvider struct {
	baseURL string
	client  *http.Client
}

func NewOSRMProvider(baseURL string, client *http.Client) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &osrmProvider{baseURL: baseURL, client: client}
}

func (p *osrmProvider) Name() string { return "osrm" }

func (p *osrmProvider) AttemptRoute(ctx context.Context, coords []geo.Coordinate, profile Profile) ([]geo.Coordinate, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson",
		p.baseURL, profile, joinLngLat(coords))
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
		return nil, fmt.Errorf("osrm http %d", resp.StatusCode)
	}

	var data directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if len(data.Routes) == 0 {
		return nil, errors.New("osrm response has no routes")
	}
	line, ok := data.Routes[0].Geometry.Geometry().(orb.LineString)
	if !ok || len(line) == 0 {
		return nil, errors.New("osrm response has no line geometry")
	}
	return lineToCoords(line), nil
}

// graphhopperProvider is a placeholder for a backend that never became
// available. It stays in the chain so the fallback order matches the
// other clients of the routing pipeline.
type graphhopperProvider struct{}

func NewGraphHopperProvider() Provider { return graphhopperProvider{} }

func (graphhopperProvider) Name() string { return "graphhopper" }

func (graphhopperProvider) AttemptRoute(ctx context.Context, coords []geo.Coordinate, profile Profile) ([]geo.Coordinate, error) {
	return nil, errors.New("graphhopper routing not available")
}
