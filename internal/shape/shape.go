package shape

import (
	"fmt"
	"math"

	"backend-routeforge/internal/shared/geo"
)

// Local equirectangular scaling: 1 degree latitude ~ 111,320 m, with the
// same constant reused for longitude. Valid only for small radii (< ~1 km);
// latitude-dependent longitude compression is ignored on purpose.
const (
	latDegPerMeter = 0.00000899
	lngDegPerMeter = 0.00001141
)

// Generate produces a closed coordinate ring approximating the named shape.
// For star, points is the spike count; for square it is ignored.
func Generate(name string, center geo.Coordinate, radiusM float64, points int) ([]geo.Coordinate, error) {
	switch name {
	case "circle":
		return Circle(center, radiusM, points), nil
	case "heart":
		return Heart(center, radiusM, points), nil
	case "star":
		return Star(center, radiusM, points), nil
	case "square":
		return Square(center, radiusM), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// Circle returns points on a ring of the given radius, closed by repeating
// the first point as the last.
func Circle(center geo.Coordinate, radiusM float64, points int) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, points+1)
	for i := 0; i < points; i++ {
		angle := 2 * math.Pi * float64(i) / float64(points)
		coords = append(coords, geo.Coordinate{
			Lat: center.Lat + radiusM*math.Cos(angle)*latDegPerMeter,
			Lng: center.Lng + radiusM*math.Sin(angle)*lngDegPerMeter,
		})
	}
	return closeRing(coords)
}

// Heart traces the classic cardioid-style heart curve.
func Heart(center geo.Coordinate, radiusM float64, points int) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, points+1)
	for i := 0; i < points; i++ {
		t := 2 * math.Pi * float64(i) / float64(points)

		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)

		coords = append(coords, geo.Coordinate{
			Lat: center.Lat + y*radiusM*latDegPerMeter,
			Lng: center.Lng + x*radiusM*lngDegPerMeter,
		})
	}
	return closeRing(coords)
}

// Star alternates between the outer radius and half radius over 2*spikes
// vertices, closing with its start point.
func Star(center geo.Coordinate, radiusM float64, spikes int) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, 2*spikes+1)
	step := math.Pi / float64(spikes)
	for i := 0; i < 2*spikes; i++ {
		r := radiusM
		if i%2 != 0 {
			r = radiusM / 2
		}
		angle := float64(i) * step
		coords = append(coords, geo.Coordinate{
			Lat: center.Lat + r*math.Cos(angle)*latDegPerMeter,
			Lng: center.Lng + r*math.Sin(angle)*lngDegPerMeter,
		})
	}
	return closeRing(coords)
}

// Square is the five-point closed rectangle around the center.
func Square(center geo.Coordinate, radiusM float64) []geo.Coordinate {
	dLat := radiusM * latDegPerMeter
	dLng := radiusM * lngDegPerMeter
	return []geo.Coordinate{
		{Lat: center.Lat - dLat, Lng: center.Lng - dLng},
		{Lat: center.Lat - dLat, Lng: center.Lng + dLng},
		{Lat: center.Lat + dLat, Lng: center.Lng + dLng},
		{Lat: center.Lat + dLat, Lng: center.Lng - dLng},
		{Lat: center.Lat - dLat, Lng: center.Lng - dLng},
	}
}

func closeRing(coords []geo.Coordinate) []geo.Coordinate {
	if len(coords) == 0 {
		return coords
	}
	return append(coords, coords[0])
}
