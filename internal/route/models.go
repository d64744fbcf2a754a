package route

import "backend-routeforge/internal/shared/geo"

// LoopConfig governs lap expansion. Read from the UI at expansion time,
// never persisted.
type LoopConfig struct {
	LapCount     int     `json:"lap_count"`
	GapDistanceM float64 `json:"gap_distance_m"`
}

// Template is a named, reusable base route.
type Template struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Coordinates []geo.Coordinate `json:"coordinates"`
	DistanceKm  float64          `json:"distance_km"`
	Difficulty  string           `json:"difficulty"`
	Surface     string           `json:"surface"`
	Tags        []string         `json:"tags"`
}

// LoopType is a display label for the loop selector. All types expand
// through the same alternating-lap algorithm.
type LoopType struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Stats summarizes a route at a given pace.
type Stats struct {
	DistanceKm       float64 `json:"distance_km"`
	DurationSec      float64 `json:"duration_sec"`
	ElevationGainM   float64 `json:"elevation_gain_m"`
	PaceMinPerKm     float64 `json:"pace_min_per_km"`
	Points           int     `json:"points"`
	DistanceDisplay  string  `json:"distance_display"`
	DurationDisplay  string  `json:"duration_display"`
	ElevationDisplay string  `json:"elevation_display"`
}
