package route

import (
	"errors"

	"backend-routeforge/internal/shared/geo"
)

var ErrInvalidInput = errors.New("invalid lap expansion input")

const gapSteps = 3

// ExpandLaps replicates the base sequence cfg.LapCount times with
// alternating direction, bridging consecutive laps with interpolated gap
// points when a gap distance is configured. With GapDistanceM == 0 laps are
// concatenated directly, which may leave a jump between lap boundaries.
func ExpandLaps(base []geo.Coordinate, cfg LoopConfig) ([]geo.Coordinate, error) {
	if cfg.LapCount < 1 || len(base) == 0 {
		return nil, ErrInvalidInput
	}

	expanded := make([]geo.Coordinate, 0, cfg.LapCount*(len(base)+gapSteps))
	for i := 0; i < cfg.LapCount; i++ {
		if i > 0 && cfg.GapDistanceM > 0 {
			// Odd laps run the base in reverse, so they enter at its last point.
			entry := base[0]
			if i%2 != 0 {
				entry = base[len(base)-1]
			}
			expanded = append(expanded, gapCoords(expanded[len(expanded)-1], entry)...)
		}

		if i%2 == 0 {
			expanded = append(expanded, base...)
		} else {
			expanded = append(expanded, reversed(base)...)
		}
	}
	return expanded, nil
}

// gapCoords bridges start to end with three evenly interpolated points.
func gapCoords(start, end geo.Coordinate) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, gapSteps)
	for i := 1; i <= gapSteps; i++ {
		ratio := float64(i) / float64(gapSteps+1)
		coords = append(coords, geo.Coordinate{
			Lat: geo.Interpolate(start.Lat, end.Lat, ratio),
			Lng: geo.Interpolate(start.Lng, end.Lng, ratio),
		})
	}
	return coords
}

func reversed(coords []geo.Coordinate) []geo.Coordinate {
	out := make([]geo.Coordinate, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}
	return out
}
