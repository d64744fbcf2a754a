package snap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"backend-routeforge/internal/shared/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// orsProvider calls the openrouteservice directions API. It only
// serves the walking profile; the service keeps it out of the chain
// for other profiles.
type orsProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewORSProvider(baseURL, apiKey string, client *http.Client) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &orsProvider{baseURL: baseURL, apiKey: apiKey, client: client}
}

func (p *orsProvider) Name() string { return "ors" }

func (p *orsProvider) AttemptRoute(ctx context.Context, coords []geo.Coordinate, profile Profile) ([]geo.Coordinate, error) {
	if p.apiKey == "" {
		return nil, errors.New("ors api key not set")
	}

	lnglat := make([][2]float64, len(coords))
	for i, c := range coords {
		lnglat[i] = [2]float64{c.Lng, c.Lat}
	}
	body, err := json.Marshal(map[string]any{
		"coordinates": lnglat,
		"format":      "geojson",
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", p.baseURL, profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ors http %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, err
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("ors response has no features")
	}
	line, ok := fc.Features[0].Geometry.(orb.LineString)
	if !ok || len(line) == 0 {
		return nil, errors.New("ors response has no line geometry")
	}
	return lineToCoords(line), nil
}

func lineToCoords(line orb.LineString) []geo.Coordinate {
	coords := make([]geo.Coordinate, len(line))
	for i, pt := range line {
		coords[i] = geo.Coordinate{Lat: pt.Lat(), Lng: pt.Lon()}
	}
	return coords
}
