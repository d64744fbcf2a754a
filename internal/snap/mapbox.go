package snap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"backend-routeforge/internal/shared/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type mapboxProvider struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewMapboxProvider(baseURL, token string, client *http.Client) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &mapboxProvider{baseURL: baseURL, token: token, client: client}
}

func (p *mapboxProvider) Name() string { return "mapbox" }

type directionsResponse struct {
	Routes []struct {
		Geometry geojson.Geometry `json:"geometry"`
	} `json:"routes"`
}

func (p *mapboxProvider) AttemptRoute(ctx context.Context, coords []geo.Coordinate, profile Profile) ([]geo.Coordinate, error) {
	if p.token == "" {
		return nil, errors.New("mapbox token not set")
	}

	url := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s?geometries=geojson&access_token=%s",
		p.baseURL, profile, joinLngLat(coords), p.token)
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
		return nil, fmt.Errorf("mapbox http %d", resp.StatusCode)
	}

	var data directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if len(data.Routes) == 0 {
		return nil, errors.New("mapbox response has no routes")
	}
	line, ok := data.Routes[0].Geometry.Geometry().(orb.LineString)
	if !ok || len(line) == 0 {
		return nil, errors.New("mapbox response has no line geometry")
	}
	return lineToCoords(line), nil
}

func joinLngLat(coords []geo.Coordinate) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("%f,%f", c.Lng, c.Lat)
	}
	return strings.Join(parts, ";")
}
