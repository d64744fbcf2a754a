package snap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend-routeforge/internal/shared/geo"
)

const lineJSON = `{"type":"LineString","coordinates":[[-122.41,37.77],[-122.405,37.775],[-122.40,37.78]]}`

func testCoords() []geo.Coordinate {
	return []geo.Coordinate{
		{Lat: 37.77, Lng: -122.41},
		{Lat: 37.78, Lng: -122.40},
	}
}

func TestORSProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "/v2/directions/walking/geojson") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("missing authorization header")
		}
		w.Write([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":` + lineJSON + `}]}`))
	}))
	defer srv.Close()

	p := NewORSProvider(srv.URL, "test-key", srv.Client())
	coords, err := p.AttemptRoute(context.Background(), testCoords(), ProfileWalking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 3 {
		t.Fatalf("expected 3 coordinates, got %d", len(coords))
	}
	if coords[0].Lat != 37.77 || coords[0].Lng != -122.41 {
		t.Fatalf("lat/lng swapped: %+v", coords[0])
	}
}

func TestORSProviderRequiresKey(t *testing.T) {
	p := NewORSProvider("http://localhost", "", nil)
	if _, err := p.AttemptRoute(context.Background(), testCoords(), ProfileWalking); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestMapboxProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/directions/v5/mapbox/cycling/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("access_token") != "pk.test" {
			t.Errorf("missing access token")
		}
		w.Write([]byte(`{"routes":[{"geometry":` + lineJSON + `}]}`))
	}))
	defer srv.Close()

	p := NewMapboxProvider(srv.URL, "pk.test", srv.Client())
	coords, err := p.AttemptRoute(context.Background(), testCoords(), ProfileCycling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 3 {
		t.Fatalf("expected 3 coordinates, got %d", len(coords))
	}
}

func TestMapboxProviderRequiresToken(t *testing.T) {
	p := NewMapboxProvider("http://localhost", "", nil)
	if _, err := p.AttemptRoute(context.Background(), testCoords(), ProfileWalking); err == nil {
		t.Fatalf("expected error without token")
	}
}

func TestOSRMProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/route/v1/driving/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("geometries") != "geojson" {
			t.Errorf("expected geojson geometries")
		}
		w.Write([]byte(`{"routes":[{"geometry":` + lineJSON + `}]}`))
	}))
	defer srv.Close()

	p := NewOSRMProvider(srv.URL, srv.Client())
	coords, err := p.AttemptRoute(context.Background(), testCoords(), ProfileDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 3 {
		t.Fatalf("expected 3 coordinates, got %d", len(coords))
	}
}

func TestOSRMProviderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewOSRMProvider(srv.URL, srv.Client())
	if _, err := p.AttemptRoute(context.Background(), testCoords(), ProfileDriving); err == nil {
		t.Fatalf("expected error on http 502")
	}
}

func TestOSRMProviderEmptyRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	p := NewOSRMProvider(srv.URL, srv.Client())
	if _, err := p.AttemptRoute(context.Background(), testCoords(), ProfileDriving); err == nil {
		t.Fatalf("expected error on empty routes")
	}
}

func TestGraphHopperAlwaysUnavailable(t *testing.T) {
	p := NewGraphHopperProvider()
	if _, err := p.AttemptRoute(context.Background(), testCoords(), ProfileDriving); err == nil {
		t.Fatalf("expected graphhopper to be unavailable")
	}
}

func TestSmoothRouteShortInput(t *testing.T) {
	in := testCoords()
	out := smoothRoute(in)
	if len(out) != 2 {
		t.Fatalf("short routes must pass through")
	}
}

func TestGridSnapAlignsToGrid(t *testing.T) {
	in := []geo.Coordinate{
		{Lat: 37.77012, Lng: -122.41043},
		{Lat: 37.77154, Lng: -122.40921},
		{Lat: 37.77301, Lng: -122.40812},
	}
	out := gridSnap(in, ProfileDriving)
	for i, c := range out {
		// jitter for driving is at most 0.05 grid cells
		if diff := c.Lat - in[i].Lat; diff > gridSizeDeg || diff < -gridSizeDeg {
			t.Fatalf("point %d moved more than one grid cell", i)
		}
	}
}
