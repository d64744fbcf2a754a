package shape

import (
	"math"
	"testing"

	"backend-routeforge/internal/shared/geo"
)

var center = geo.Coordinate{Lat: 37.7749, Lng: -122.4194}

func TestCircleRadius(t *testing.T) {
	coords := Circle(center, 500, 100)
	if len(coords) != 101 {
		t.Fatalf("expected 101 points including closure, got %d", len(coords))
	}

	// Under the fixed equirectangular scaling the ring is only approximately
	// round; allow 15% tolerance on the target radius.
	for i, c := range coords {
		dKm := geo.DistanceKm(center, c)
		if math.Abs(dKm*1000-500) > 75 {
			t.Fatalf("point %d at %.1f m from center, want ~500 m", i, dKm*1000)
		}
	}
}

func TestClosedShapes(t *testing.T) {
	for _, name := range []string{"circle", "heart", "star", "square"} {
		coords, err := Generate(name, center, 400, 40)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(coords) < 4 {
			t.Fatalf("%s: too few points", name)
		}
		if coords[0] != coords[len(coords)-1] {
			t.Fatalf("%s: expected closed ring", name)
		}
		for _, c := range coords {
			if !c.IsValid() {
				t.Fatalf("%s: invalid coordinate %+v", name, c)
			}
		}
	}
}

func TestStarVertexCount(t *testing.T) {
	coords := Star(center, 500, 5)
	if len(coords) != 11 {
		t.Fatalf("expected 2*spikes+1 points, got %d", len(coords))
	}
	// Outer and inner vertices alternate.
	outer := geo.DistanceKm(center, coords[0])
	inner := geo.DistanceKm(center, coords[1])
	if inner >= outer {
		t.Fatalf("expected alternating radii, outer %.4f inner %.4f", outer, inner)
	}
}

func TestSquareCorners(t *testing.T) {
	coords := Square(center, 500)
	if len(coords) != 5 {
		t.Fatalf("expected 5 points, got %d", len(coords))
	}
	if coords[1].Lat != coords[0].Lat {
		t.Fatalf("expected first edge along constant latitude")
	}
	if coords[2].Lng != coords[1].Lng {
		t.Fatalf("expected second edge along constant longitude")
	}
}

func TestGenerateUnknownShape(t *testing.T) {
	if _, err := Generate("triangle", center, 500, 10); err == nil {
		t.Fatalf("expected error for unknown shape")
	}
}
