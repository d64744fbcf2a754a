package route

import (
	"time"

	"backend-routeforge/internal/shared/geo"
)

// DefaultPaceMinPerKm matches the UI's assumed running pace.
const DefaultPaceMinPerKm = 5.5

// Timestamps derives one wall-clock timestamp per coordinate from a pace in
// minutes per kilometer. The first timestamp equals start (now when start is
// zero); each subsequent one adds the segment's haversine distance times the
// pace. The sequence is monotonically non-decreasing by construction.
func Timestamps(coords []geo.Coordinate, paceMinPerKm float64, start time.Time) []time.Time {
	if len(coords) == 0 {
		return nil
	}
	if paceMinPerKm <= 0 {
		paceMinPerKm = DefaultPaceMinPerKm
	}
	if start.IsZero() {
		start = time.Now().UTC()
	}

	stamps := make([]time.Time, 0, len(coords))
	stamps = append(stamps, start)

	elapsed := 0.0
	for i := 1; i < len(coords); i++ {
		segKm := geo.DistanceKm(coords[i-1], coords[i])
		elapsed += segKm * paceMinPerKm * 60
		stamps = append(stamps, start.Add(time.Duration(elapsed*float64(time.Second))))
	}
	return stamps
}
