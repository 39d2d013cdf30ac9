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

import "github.com/ctessum/geom"

// A PathLimiter is consulted before the search explores toward target
// along a path whose total length would be length. Returning false
// abandons that candidate, letting the caller bound search effort with
// information the geometry does not have, such as the length of an
// already-known alternative. It must be a pure function of its
// arguments: the search may call it any number of times, in any order,
// with the same candidate.
type PathLimiter func(target geom.Point, length float64) bool

// A neighborIter lazily enumerates the legal visibility-graph neighbors
// of the point currently being expanded: the goal, then every vertex of
// every ring named in the containment signature. Candidates the limiter
// declines or that cannot be reached by a legal straight segment are
// skipped. The iterator is finite and restartable via reset.
type neighborIter struct {
	s        *Surface
	current  geom.Point
	goal     geom.Point
	sig      ringIndices
	gCurrent float64
	limit    PathLimiter

	rings []int // catalogue indices of the rings named in sig
	// ringIndex 0 offers the goal; ringIndex i >= 1 walks rings[i-1].
	ringIndex  int
	pointIndex int
}

// neighbors returns an iterator over the legal next hops from current,
// whose containment signature is sig and whose accumulated path length
// from the search start is gCurrent. limit may be nil.
func (s *Surface) neighbors(current, goal geom.Point, sig ringIndices, gCurrent float64, limit PathLimiter) *neighborIter {
	n := 0
	for _, g := range sig {
		n += 1 + len(g.inners)
	}
	rings := make([]int, 0, n)
	for _, g := range sig {
		rings = append(rings, g.outer)
		rings = append(rings, g.inners...)
	}
	return &neighborIter{
		s:        s,
		current:  current,
		goal:     goal,
		sig:      sig,
		gCurrent: gCurrent,
		limit:    limit,
		rings:    rings,
	}
}

func (it *neighborIter) reset() {
	it.ringIndex = 0
	it.pointIndex = 0
}

// next returns the next legal neighbor, or false when the candidates are
// exhausted.
func (it *neighborIter) next() (geom.Point, bool) {
	for {
		p, ok := it.candidate()
		if !ok {
			return geom.Point{}, false
		}
		it.advance()
		if p.Equals(it.current) {
			continue
		}
		if it.limit != nil && !it.limit(p, it.gCurrent+dist(it.current, p)) {
			continue
		}
		if !it.s.segmentLegal(it.current, p, it.sig) {
			continue
		}
		return p, true
	}
}

// candidate returns the next raw candidate without filtering, advancing
// past exhausted rings. Ring vertex walks stop before the closing
// vertex, which repeats the first.
func (it *neighborIter) candidate() (geom.Point, bool) {
	for {
		if it.ringIndex == 0 {
			return it.goal, true
		}
		if it.ringIndex-1 >= len(it.rings) {
			return geom.Point{}, false
		}
		ring := it.s.vertices[it.rings[it.ringIndex-1]]
		if it.pointIndex < len(ring)-1 {
			return ring[it.pointIndex], true
		}
		it.ringIndex++
		it.pointIndex = 0
	}
}

func (it *neighborIter) advance() {
	if it.ringIndex == 0 {
		it.ringIndex = 1
		return
	}
	it.pointIndex++
}
