/*
Copyright © 2026 the Traverse authors.
This file is part of Traverse.

Traverse is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Traverse is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Traverse.  If not, see <http://www.gnu.org/licenses/>.
*/

package traverse

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestOrientation(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 10, Y: 0}
	if o := orientation(p0, p1, geom.Point{X: 5, Y: 1}); o <= 0 {
		t.Errorf("point above the line: want positive but have %g", o)
	}
	if o := orientation(p0, p1, geom.Point{X: 5, Y: -1}); o >= 0 {
		t.Errorf("point below the line: want negative but have %g", o)
	}
	if o := orientation(p0, p1, geom.Point{X: 20, Y: 0}); o != 0 {
		t.Errorf("collinear point: want 0 but have %g", o)
	}
}

func TestIsBetween(t *testing.T) {
	cases := []struct {
		a, x, b float64
		want    bool
	}{
		{0, 5, 10, true},
		{10, 5, 0, true},
		{0, 0, 10, true},
		{0, 10, 10, true},
		{0, -1, 10, false},
		{0, 11, 10, false},
		{3, 3, 3, true},
	}
	for _, c := range cases {
		if have := isBetween(c.a, c.x, c.b); have != c.want {
			t.Errorf("isBetween(%g, %g, %g): want %v but have %v", c.a, c.x, c.b, c.want, have)
		}
	}
}

func TestSegmentsCross(t *testing.T) {
	pt := func(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }
	cases := []struct {
		name           string
		p0, p1, p2, p3 geom.Point
		want           bool
	}{
		{"proper crossing", pt(0, 0), pt(10, 10), pt(0, 10), pt(10, 0), true},
		{"disjoint parallel", pt(0, 0), pt(10, 0), pt(0, 1), pt(10, 1), false},
		{"disjoint collinear", pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0), false},
		{"collinear overlap", pt(0, 0), pt(5, 0), pt(3, 0), pt(8, 0), true},
		{"shared endpoint", pt(0, 0), pt(5, 5), pt(5, 5), pt(10, 0), true},
		{"endpoint on segment", pt(0, 0), pt(10, 0), pt(5, 0), pt(5, 5), true},
		{"T touch from above", pt(0, 0), pt(10, 0), pt(5, 5), pt(5, 0), true},
		{"near miss", pt(0, 0), pt(10, 0), pt(5, 0.001), pt(5, 5), false},
		{"degenerate on segment", pt(0, 0), pt(10, 0), pt(5, 0), pt(5, 0), true},
		{"degenerate off segment", pt(0, 0), pt(10, 0), pt(5, 1), pt(5, 1), false},
	}
	for _, c := range cases {
		if have := segmentsCross(c.p0, c.p1, c.p2, c.p3); have != c.want {
			t.Errorf("%s: want %v but have %v", c.name, c.want, have)
		}
		// Swapping the two segments must not change the answer.
		if have := segmentsCross(c.p2, c.p3, c.p0, c.p1); have != c.want {
			t.Errorf("%s swapped: want %v but have %v", c.name, c.want, have)
		}
	}
}

// rayCastInRing is a brute-force even-odd reference: count crossings of
// a rightward horizontal ray, treating each edge as half-open in y to
// avoid double-counting vertices.
func rayCastInRing(p geom.Point, ring geom.Path) bool {
	in := false
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x > p.X {
			in = !in
		}
	}
	return in
}

func TestPointInRingMatchesRayCasting(t *testing.T) {
	rings := []geom.Path{
		// Square.
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
		// Concave L shape.
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
		// Clockwise triangle.
		{{X: 0, Y: 0}, {X: 2, Y: 8}, {X: 9, Y: 1}, {X: 0, Y: 0}},
	}
	for ri, ring := range rings {
		bounds := ringBounds(ring)
		// Probe off-lattice points so none land exactly on an edge.
		for x := -1.5; x < 12; x++ {
			for y := -1.5; y < 12; y++ {
				p := geom.Point{X: x, Y: y}
				want := rayCastInRing(p, ring)
				have := pointInRing(p, ring, bounds)
				if want != have {
					t.Errorf("ring %d point %v: want %v but have %v", ri, p, want, have)
				}
			}
		}
	}
}

func TestPointInRingBoundsRejection(t *testing.T) {
	ring := geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}
	bounds := ringBounds(ring)
	if pointInRing(geom.Point{X: 50, Y: 50}, ring, bounds) {
		t.Error("point outside the bounding box should not be in the ring")
	}
}

// The half-open edge convention classifies a boundary point by the edge
// it touches: bottom and left edges of the square count inside, top and
// right edges outside. The explicit on-ring test recognizes all of
// them, which is what the legality checks rely on.
func TestBoundaryPointConvention(t *testing.T) {
	ring := geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}
	bounds := ringBounds(ring)
	boundary := []struct {
		p      geom.Point
		inside bool
	}{
		{geom.Point{X: 5, Y: 0}, true},    // bottom edge
		{geom.Point{X: 0, Y: 5}, true},    // left edge
		{geom.Point{X: 0, Y: 0}, true},    // bottom-left vertex
		{geom.Point{X: 5, Y: 10}, false},  // top edge
		{geom.Point{X: 10, Y: 5}, false},  // right edge
		{geom.Point{X: 10, Y: 0}, false},  // bottom-right vertex
		{geom.Point{X: 10, Y: 10}, false}, // top-right vertex
		{geom.Point{X: 0, Y: 10}, false},  // top-left vertex
	}
	for _, c := range boundary {
		if have := pointInRing(c.p, ring, bounds); have != c.inside {
			t.Errorf("boundary point %v: want winding inside %v but have %v", c.p, c.inside, have)
		}
		if !pointOnRing(c.p, ring) {
			t.Errorf("boundary point %v: want on ring but have not", c.p)
		}
	}
	if pointOnRing(geom.Point{X: 5, Y: 5}, ring) {
		t.Error("interior point should not be on the ring")
	}
	if pointOnRing(geom.Point{X: 5, Y: -3}, ring) {
		t.Error("exterior point should not be on the ring")
	}
}
