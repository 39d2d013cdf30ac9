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
	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// A Starter has a representative first point. Anything the tool visits
// during a job can be ordered through this interface: a bare location,
// a cut path, or a planned travel move.
type Starter interface {
	StartPoint() geom.Point
}

// Waypoint adapts a bare point for ordering.
type Waypoint geom.Point

// StartPoint returns the point itself.
func (w Waypoint) StartPoint() geom.Point { return geom.Point(w) }

// Route adapts a point sequence for ordering by its first point. It
// must not be empty.
type Route geom.LineString

// StartPoint returns the first point of the route.
func (r Route) StartPoint() geom.Point { return r[0] }

// Order chooses a visiting order over items that keeps the total travel
// between them short. It builds a tour greedily, visiting the nearest
// unvisited item first starting from origin, then improves it with
// 2-opt segment reversals until no reversal shortens the travel. The
// returned slice is a permutation of item indices. Distances are
// measured between representative points; the tour is open, ending at
// the last item visited.
func Order(items []Starter, origin geom.Point) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	if len(items) < 2 {
		return order
	}

	// Greedy nearest-neighbor construction.
	prev := origin
	for i := 0; i < len(order); i++ {
		best := i
		bestDist := dist(prev, items[order[i]].StartPoint())
		for j := i + 1; j < len(order); j++ {
			if d := dist(prev, items[order[j]].StartPoint()); d < bestDist {
				best, bestDist = j, d
			}
		}
		order[i], order[best] = order[best], order[i]
		prev = items[order[i]].StartPoint()
	}

	// 2-opt improvement: reversing order[i:j+1] replaces the legs into
	// order[i] and out of order[j] with their crossed counterparts.
	point := func(k int) geom.Point { return items[order[k]].StartPoint() }
	improved := true
	for improved {
		improved = false
		for i := 0; i < len(order)-1; i++ {
			before := origin
			if i > 0 {
				before = point(i - 1)
			}
			for j := i + 1; j < len(order); j++ {
				delta := dist(before, point(j)) - dist(before, point(i))
				if j < len(order)-1 {
					delta += dist(point(i), point(j+1)) - dist(point(j), point(j+1))
				}
				if delta < 0 {
					for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
						order[lo], order[hi] = order[hi], order[lo]
					}
					improved = true
				}
			}
		}
	}
	return order
}

// TravelLength reports the total travel distance of visiting items in
// the given order starting from origin.
func TravelLength(items []Starter, order []int, origin geom.Point) float64 {
	legs := make([]float64, len(order))
	prev := origin
	for i, idx := range order {
		p := items[idx].StartPoint()
		legs[i] = dist(prev, p)
		prev = p
	}
	return floats.Sum(legs)
}
