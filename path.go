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
	"container/heap"

	"github.com/ctessum/geom"
)

// FindPath searches for a collision-free path from start to goal over
// the surface and returns it as an ordered point sequence, beginning
// with start and ending with goal. The search is A* over the implicit
// visibility graph whose nodes are ring vertices plus start and goal;
// the straight-line distance to the goal is the heuristic, so returned
// paths are shortest among those the limiter permits. limit may be nil;
// when present it is consulted for every candidate before it is
// explored. A nil result means no path was found, either because none
// exists or because the limiter suppressed every remaining option; it
// is a routine outcome, not an error. If start equals goal the result
// is the single-point path.
func (s *Surface) FindPath(start, goal geom.Point, limit PathLimiter) geom.LineString {
	if start.Equals(goal) {
		return geom.LineString{start}
	}

	gScore := map[geom.Point]float64{start: 0}
	cameFrom := make(map[geom.Point]geom.Point)
	closed := make(map[geom.Point]bool)

	frontier := &pathQueue{}
	heap.Init(frontier)
	pushed := 0
	push := func(p geom.Point, f float64) {
		heap.Push(frontier, &pathNode{point: p, f: f, order: pushed})
		pushed++
	}
	push(start, dist(start, goal))

	for frontier.Len() > 0 {
		n := heap.Pop(frontier).(*pathNode)
		if closed[n.point] {
			continue // a stale frontier entry; the point was reached more cheaply
		}
		closed[n.point] = true
		if n.point.Equals(goal) {
			return reconstruct(cameFrom, start, goal)
		}
		sig, ok := s.containmentSignature(n.point)
		if !ok {
			continue
		}
		g := gScore[n.point]
		it := s.neighbors(n.point, goal, sig, g, limit)
		for p, ok := it.next(); ok; p, ok = it.next() {
			tentative := g + dist(n.point, p)
			if old, seen := gScore[p]; !seen || tentative < old {
				gScore[p] = tentative
				cameFrom[p] = n.point
				push(p, tentative+dist(p, goal))
			}
		}
	}
	return nil
}

func reconstruct(cameFrom map[geom.Point]geom.Point, start, goal geom.Point) geom.LineString {
	var rev geom.LineString
	for p := goal; ; {
		rev = append(rev, p)
		if p.Equals(start) {
			break
		}
		p = cameFrom[p]
	}
	path := make(geom.LineString, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// A pathNode is a frontier entry: a point and the estimated total path
// length through it. order records insertion sequence so equal
// estimates pop in first-found order, keeping the search deterministic.
type pathNode struct {
	point geom.Point
	f     float64
	order int
}

type pathQueue []*pathNode

func (q pathQueue) Len() int { return len(q) }

func (q pathQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].order < q[j].order
}

func (q pathQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pathQueue) Push(x interface{}) {
	*q = append(*q, x.(*pathNode))
}

func (q *pathQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
