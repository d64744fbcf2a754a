package route

import (
	"math"

	"backend-routeforge/internal/shared/geo"
)

// Elevation gain heuristic used when no elevation profile has been fetched.
const estimatedGainPerKm = 50.0

// ComputeStats derives distance, duration at pace, and an estimated
// elevation gain for the active route.
func ComputeStats(coords []geo.Coordinate, paceMinPerKm float64) Stats {
	if paceMinPerKm <= 0 {
		paceMinPerKm = DefaultPaceMinPerKm
	}

	distanceKm := geo.RouteDistanceKm(coords)
	durationSec := distanceKm * paceMinPerKm * 60
	gain := math.Floor(distanceKm * estimatedGainPerKm)

	return Stats{
		DistanceKm:       distanceKm,
		DurationSec:      durationSec,
		ElevationGainM:   gain,
		PaceMinPerKm:     paceMinPerKm,
		Points:           len(coords),
		DistanceDisplay:  geo.FormatDistance(distanceKm),
		DurationDisplay:  geo.FormatDuration(durationSec),
		ElevationDisplay: geo.FormatElevation(gain),
	}
}
