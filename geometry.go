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
	"math"

	"github.com/ctessum/geom"
)

// orientation tests whether p2 is left, on, or right of the infinite line
// through p0 and p1. The result is positive if p2 is to the left, zero if
// the three points are collinear, and negative if p2 is to the right.
// It is the cross product of p0→p1 and p0→p2, i.e. twice the signed area
// of the triangle p0,p1,p2.
func orientation(p0, p1, p2 geom.Point) float64 {
	return (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
}

// isBetween reports whether x lies in the closed interval bounded by a and
// b, where a may be lesser or greater than b.
func isBetween(a, x, b float64) bool {
	return x == a || x == b || (a-x > 0) == (x-b > 0)
}

// onSegment reports whether p, which must already be known to be collinear
// with a and b, lies on the closed segment from a to b.
func onSegment(a, p, b geom.Point) bool {
	return isBetween(a.X, p.X, b.X) && isBetween(a.Y, p.Y, b.Y)
}

// segmentsCross reports whether the closed segments p0–p1 and p2–p3 touch
// or cross. Collinear overlap and shared endpoints count as intersections.
// When any of the four orientation values is exactly zero an endpoint may
// lie on the other segment, which the betweenness checks detect; otherwise
// the segments intersect iff each separates the other's endpoints.
func segmentsCross(p0, p1, p2, p3 geom.Point) bool {
	left012 := orientation(p0, p1, p2)
	left013 := orientation(p0, p1, p3)
	left230 := orientation(p2, p3, p0)
	left231 := orientation(p2, p3, p1)

	if !p0.Equals(p1) {
		if left012 == 0 && onSegment(p0, p2, p1) {
			return true // p2 is on the segment p0–p1.
		}
		if left013 == 0 && onSegment(p0, p3, p1) {
			return true // p3 is on the segment p0–p1.
		}
	}
	if !p2.Equals(p3) {
		if left230 == 0 && onSegment(p2, p0, p3) {
			return true // p0 is on the segment p2–p3.
		}
		if left231 == 0 && onSegment(p2, p1, p3) {
			return true // p1 is on the segment p2–p3.
		}
	}
	if (left012 > 0) == (left013 > 0) ||
		(left230 > 0) == (left231 > 0) {
		return p1.Equals(p2)
	}
	return true
}

// pointInRing reports whether p is inside ring using the winding number:
// each upward edge crossing with p strictly to the left counts +1, each
// downward crossing with p strictly to the right counts -1, and p is
// inside iff the total is nonzero. Edges are half-open, so a point
// exactly on the boundary classifies by the edge it touches: on an
// axis-aligned ring the bottom and left edges count inside, the top and
// right edges outside. Callers needing exact boundary detection pair
// this with pointOnRing.
// The ring must be closed (last vertex repeating the first).
// bounds is the precomputed envelope of the ring; points outside it are
// rejected without visiting the edges.
func pointInRing(p geom.Point, ring geom.Path, bounds *geom.Bounds) bool {
	if p.X < bounds.Min.X || p.X > bounds.Max.X ||
		p.Y < bounds.Min.Y || p.Y > bounds.Max.Y {
		return false
	}
	winding := 0
	for i := 0; i < len(ring)-1; i++ {
		if ring[i].Y <= p.Y {
			if ring[i+1].Y > p.Y && orientation(ring[i], ring[i+1], p) > 0 {
				winding++
			}
		} else {
			if ring[i+1].Y <= p.Y && orientation(ring[i], ring[i+1], p) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// pointOnRing reports whether p lies exactly on an edge of the closed
// ring, including at a vertex.
func pointOnRing(p geom.Point, ring geom.Path) bool {
	for i := 0; i < len(ring)-1; i++ {
		if orientation(ring[i], ring[i+1], p) == 0 && onSegment(ring[i], p, ring[i+1]) {
			return true
		}
	}
	return false
}

// ringBounds returns the envelope of ring.
func ringBounds(ring geom.Path) *geom.Bounds {
	b := geom.NewBounds()
	for _, p := range ring {
		b.Extend(p.Bounds())
	}
	return b
}

func dist(a, b geom.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
