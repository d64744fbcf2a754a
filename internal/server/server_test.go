package server

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"backend-routeforge/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		ServerPort:         ":0",
		SnapCacheSize:      10,
		ElevationCacheSize: 10,
		SettingsPath:       filepath.Join(t.TempDir(), "settings.json"),
	}
}

func TestHealthRoute(t *testing.T) {
	s := NewServer(testConfig(t))

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestRoutesRegistered(t *testing.T) {
	s := NewServer(testConfig(t))

	for _, path := range []string{
		"/shapes/circle?lat=37.77&lng=-122.41",
		"/routes/loop-types",
		"/routes/templates",
		"/settings/offsets",
	} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := s.App.Test(req)
		if err != nil {
			t.Fatalf("test request %s: %v", path, err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("expected 200 for %s, got %d", path, resp.StatusCode)
		}
	}
}
