package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.OSRMBaseURL == "" {
		t.Fatalf("expected default osrm base url")
	}
	if cfg.SnapCacheSize != 500 {
		t.Fatalf("expected default snap cache size, got %d", cfg.SnapCacheSize)
	}
	if cfg.ElevationCacheSize != 1000 {
		t.Fatalf("expected default elevation cache size, got %d", cfg.ElevationCacheSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("MAPBOX_TOKEN", "pk.test")
	t.Setenv("ORS_API_KEY", "ors-key")
	t.Setenv("OSRM_BASE_URL", "http://localhost:5000")

	cfg := Load()
	if cfg.ServerPort != ":9000" {
		t.Fatalf("expected override port")
	}
	if cfg.MapboxToken != "pk.test" {
		t.Fatalf("expected override mapbox token")
	}
	if cfg.ORSAPIKey != "ors-key" {
		t.Fatalf("expected override ors key")
	}
	if cfg.OSRMBaseURL != "http://localhost:5000" {
		t.Fatalf("expected override osrm base url")
	}
}
