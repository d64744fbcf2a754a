package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid reports whether the coordinate lies inside the WGS84 bounds.
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func Deg2Rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func Rad2Deg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// HaversineKm returns the great-circle distance in kilometers between two
// points given as flat lat/lng pairs.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := Deg2Rad(lat2 - lat1)
	dLon := Deg2Rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(Deg2Rad(lat1))*math.Cos(Deg2Rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceKm returns the great-circle distance in kilometers between a and b.
func DistanceKm(a, b Coordinate) float64 {
	return HaversineKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

// RouteDistanceKm sums the segment distances along an ordered path.
func RouteDistanceKm(coords []Coordinate) float64 {
	if len(coords) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(coords)-1; i++ {
		total += DistanceKm(coords[i], coords[i+1])
	}
	return total
}

// BearingDegrees returns the initial bearing from a to b, normalized to
// [0, 360).
func BearingDegrees(a, b Coordinate) float64 {
	dLon := Deg2Rad(b.Lng - a.Lng)
	lat1 := Deg2Rad(a.Lat)
	lat2 := Deg2Rad(b.Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := Rad2Deg(math.Atan2(y, x))
	return math.Mod(bearing+360, 360)
}

// Interpolate linearly interpolates between start and end at factor in [0,1].
func Interpolate(start, end, factor float64) float64 {
	return start + (end-start)*factor
}

// SmoothArray applies a centered moving average. Windows shrink at the
// edges so the output always has the same length as the input.
func SmoothArray(values []float64, windowSize int) []float64 {
	if len(values) < windowSize {
		return values
	}

	smoothed := make([]float64, 0, len(values))
	half := windowSize / 2

	for i := range values {
		sum := 0.0
		count := 0
		for j := max(0, i-half); j <= min(len(values)-1, i+half); j++ {
			sum += values[j]
			count++
		}
		smoothed = append(smoothed, sum/float64(count))
	}
	return smoothed
}

// ElevationGain sums the positive elevation deltas along a profile.
func ElevationGain(elevations []float64) float64 {
	if len(elevations) < 2 {
		return 0
	}
	gain := 0.0
	for i := 1; i < len(elevations); i++ {
		if diff := elevations[i] - elevations[i-1]; diff > 0 {
			gain += diff
		}
	}
	return gain
}

// FormatDistance renders a distance in kilometers as "834 m" or "1.21 km".
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.2f km", km)
}

// FormatDuration renders seconds as MM:SS, or HH:MM:SS above an hour.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatElevation renders meters as a whole-meter string.
func FormatElevation(meters float64) string {
	return fmt.Sprintf("%.0f m", meters)
}
