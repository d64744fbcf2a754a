package snap

import (
	"math"
	"math/rand"

	"backend-routeforge/internal/shared/geo"
)

const gridSizeDeg = 0.001

// fallbackRoute approximates road snapping locally when every remote
// provider fails. Walking routes are only smoothed; other profiles are
// snapped to a coarse grid with profile-scaled jitter first.
func fallbackRoute(coords []geo.Coordinate, profile Profile) []geo.Coordinate {
	if profile == ProfileWalking {
		return smoothRoute(coords)
	}
	return smoothRoute(gridSnap(coords, profile))
}

func gridSnap(coords []geo.Coordinate, profile Profile) []geo.Coordinate {
	if len(coords) < 2 {
		return coords
	}

	jitterScale := 0.1
	switch profile {
	case ProfileWalking:
		jitterScale = 0.5
	case ProfileCycling:
		jitterScale = 0.3
	}

	snapped := make([]geo.Coordinate, len(coords))
	for i, c := range coords {
		lat := math.Round(c.Lat/gridSizeDeg) * gridSizeDeg
		lng := math.Round(c.Lng/gridSizeDeg) * gridSizeDeg
		variation := (rand.Float64() - 0.5) * gridSizeDeg * jitterScale
		snapped[i] = geo.Coordinate{Lat: lat + variation, Lng: lng + variation}
	}
	return snapped
}

// smoothRoute applies a 3-point weighted average with weight 0.3 on the
// neighbors, keeping both endpoints fixed.
func smoothRoute(coords []geo.Coordinate) []geo.Coordinate {
	if len(coords) < 3 {
		return coords
	}

	const weight = 0.3
	smoothed := make([]geo.Coordinate, 0, len(coords))
	smoothed = append(smoothed, coords[0])
	for i := 1; i < len(coords)-1; i++ {
		prev, curr, next := coords[i-1], coords[i], coords[i+1]
		smoothed = append(smoothed, geo.Coordinate{
			Lat: curr.Lat*(1-2*weight) + prev.Lat*weight + next.Lat*weight,
			Lng: curr.Lng*(1-2*weight) + prev.Lng*weight + next.Lng*weight,
		})
	}
	return append(smoothed, coords[len(coords)-1])
}
