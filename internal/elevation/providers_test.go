package elevation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTerrainProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/v4/mapbox.terrain-rgb/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("access_token") != "pk.test" {
			t.Errorf("missing access token")
		}
		w.Write([]byte(`{"features":[{"properties":{"ele":12.5}},{"properties":{"ele":14}}]}`))
	}))
	defer srv.Close()

	p := NewTerrainProvider(srv.URL, "pk.test", srv.Client())
	elevations, err := p.AttemptElevations(context.Background(), routeCoords(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elevations) != 2 || elevations[0] != 12.5 {
		t.Fatalf("unexpected elevations %v", elevations)
	}
}

func TestTerrainProviderRequiresToken(t *testing.T) {
	p := NewTerrainProvider("http://localhost", "", nil)
	if _, err := p.AttemptElevations(context.Background(), routeCoords(2)); err == nil {
		t.Fatalf("expected error without token")
	}
}

func TestTerrainProviderLengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[{"properties":{"ele":12.5}}]}`))
	}))
	defer srv.Close()

	p := NewTerrainProvider(srv.URL, "pk.test", srv.Client())
	if _, err := p.AttemptElevations(context.Background(), routeCoords(3)); err == nil {
		t.Fatalf("expected error on feature count mismatch")
	}
}

func TestTerrainProviderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewTerrainProvider(srv.URL, "pk.test", srv.Client())
	if _, err := p.AttemptElevations(context.Background(), routeCoords(2)); err == nil {
		t.Fatalf("expected error on http 401")
	}
}

func TestGoogleProviderUnavailable(t *testing.T) {
	p := NewGoogleProvider()
	if _, err := p.AttemptElevations(context.Background(), routeCoords(2)); err == nil {
		t.Fatalf("expected google provider to be unavailable")
	}
}
