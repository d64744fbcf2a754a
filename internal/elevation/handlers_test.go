package elevation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func TestElevationHandler(t *testing.T) {
	app := fiber.New()
	svc := NewService([]Provider{&stubProvider{name: "mapbox-terrain", elevations: []float64{10, 20, 30}}}, 10, nil)
	RegisterRoutes(app.Group("/elevation"), svc)

	resp := postJSON(t, app, "/elevation/", map[string]any{
		"coordinates": routeCoords(3),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Elevations []float64 `json:"elevations"`
		Stats      Stats     `json:"stats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(body.Elevations) != 3 {
		t.Fatalf("expected 3 elevations, got %d", len(body.Elevations))
	}
	if body.Stats.Gain != 20 {
		t.Fatalf("expected gain 20, got %f", body.Stats.Gain)
	}
}

func TestElevationHandlerBadBody(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/elevation"), NewService(nil, 10, nil))

	req := httptest.NewRequest(http.MethodPost, "/elevation/", bytes.NewReader([]byte("nope")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestElevationCustomHandler(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/elevation"), NewService(nil, 10, nil))

	resp := postJSON(t, app, "/elevation/custom", map[string]any{
		"coordinates": routeCoords(20),
		"options":     map[string]any{"base_elevation": 150, "hill_count": 2},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Elevations []float64 `json:"elevations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(body.Elevations) != 20 {
		t.Fatalf("expected 20 elevations, got %d", len(body.Elevations))
	}
}

func TestElevationCacheEndpoints(t *testing.T) {
	app := fiber.New()
	svc := NewService([]Provider{&stubProvider{name: "mapbox-terrain", elevations: []float64{10, 20}}}, 10, nil)
	RegisterRoutes(app.Group("/elevation"), svc)

	resp := postJSON(t, app, "/elevation/", map[string]any{"coordinates": routeCoords(2)})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("elevation request failed: %d", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/elevation/cache", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	var stats struct {
		Size int `json:"size"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if stats.Size != 1 {
		t.Fatalf("expected one cached profile, got %d", stats.Size)
	}

	req = httptest.NewRequest(http.MethodDelete, "/elevation/cache", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
}
