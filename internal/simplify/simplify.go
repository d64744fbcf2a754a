// Package simplify bounds route point counts. Douglas-Peucker works in raw
// coordinate-degree space: callers pre-scale the tolerance to degrees.
package simplify

import (
	"math"

	"backend-routeforge/internal/shared/geo"
)

// DouglasPeucker discards points within tolerance of the chord between a
// segment's endpoints. When preserveEndpoints is false a fully collapsed
// segment keeps only its start point.
func DouglasPeucker(points []geo.Coordinate, tolerance float64, preserveEndpoints bool) []geo.Coordinate {
	if len(points) <= 2 {
		return points
	}

	maxDist := 0.0
	maxIdx := 0
	end := len(points) - 1

	for i := 1; i < end; i++ {
		d := perpendicularDistance(points[i], points[0], points[end])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > tolerance {
		first := DouglasPeucker(points[:maxIdx+1], tolerance, preserveEndpoints)
		second := DouglasPeucker(points[maxIdx:], tolerance, preserveEndpoints)

		// maxIdx appears at the end of first and the start of second.
		result := make([]geo.Coordinate, 0, len(first)+len(second)-1)
		result = append(result, first[:len(first)-1]...)
		result = append(result, second...)
		return result
	}

	if preserveEndpoints {
		return []geo.Coordinate{points[0], points[end]}
	}
	return []geo.Coordinate{points[0]}
}

// Decimate selects points at a uniform index stride so the result has
// exactly maxPoints entries, always including the first and last index.
func Decimate(points []geo.Coordinate, maxPoints int) []geo.Coordinate {
	if maxPoints < 2 || len(points) <= maxPoints {
		return points
	}

	step := float64(len(points)-1) / float64(maxPoints-1)
	out := make([]geo.Coordinate, 0, maxPoints)
	for i := 0; i < maxPoints; i++ {
		idx := int(math.Round(float64(i) * step))
		out = append(out, points[idx])
	}
	return out
}

// perpendicularDistance is the planar point-to-segment distance in degree
// units, with the projection clamped to the segment.
func perpendicularDistance(p, start, end geo.Coordinate) float64 {
	a := p.Lat - start.Lat
	b := p.Lng - start.Lng
	c := end.Lat - start.Lat
	d := end.Lng - start.Lng

	lenSq := c*c + d*d
	param := -1.0
	if lenSq != 0 {
		param = (a*c + b*d) / lenSq
	}

	var xx, yy float64
	switch {
	case param < 0:
		xx, yy = start.Lat, start.Lng
	case param > 1:
		xx, yy = end.Lat, end.Lng
	default:
		xx = start.Lat + param*c
		yy = start.Lng + param*d
	}

	dx := p.Lat - xx
	dy := p.Lng - yy
	return math.Sqrt(dx*dx + dy*dy)
}
