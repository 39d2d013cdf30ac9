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

// ringIndices is the containment signature of a point: the groups of
// rings that bound it. A path leaving the point can only be blocked by,
// and therefore only needs to bend around, rings named here.
type ringIndices []ringGroup

// segmentKey identifies a segment by its two endpoints regardless of
// their order, so a–b and b–a share one cache entry.
type segmentKey struct {
	ax, ay, bx, by float64
}

func newSegmentKey(a, b geom.Point) segmentKey {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return segmentKey{a.X, a.Y, b.X, b.Y}
}

// containmentSignature classifies p against the nested surface
// structure. For a legal point it returns the ring groups bounding it:
// the keep-in group whose region holds p plus every keep-out group
// nested in that region (every top-level keep-out group when the
// surface is unbounded). The second return is false when p is not in
// the legal surface: outside every keep-in region, inside a keep-in
// hole, or strictly inside a keep-out shape. Points exactly on a
// boundary are legal; a path may hug any ring.
func (s *Surface) containmentSignature(p geom.Point) (ringIndices, bool) {
	var sig ringIndices
	if s.bounded {
		var found *nestedPolygon
		for _, item := range s.index.SearchIntersect(p.Bounds()) {
			np := item.(*nestedPolygon)
			outer := np.keepIn.outer
			if !pointInRing(p, s.vertices[outer], s.ringBox[outer]) &&
				!pointOnRing(p, s.vertices[outer]) {
				continue
			}
			inHole := false
			for _, inner := range np.keepIn.inners {
				if pointInRing(p, s.vertices[inner], s.ringBox[inner]) &&
					!pointOnRing(p, s.vertices[inner]) {
					inHole = true
					break
				}
			}
			if inHole {
				continue
			}
			found = np
			break
		}
		if found == nil {
			return nil, false
		}
		sig = append(sig, found.keepIn)
		if !s.appendKeepOuts(&sig, found, p) {
			return nil, false
		}
		if s.free != nil && !s.appendKeepOuts(&sig, s.free, p) {
			return nil, false
		}
		return sig, true
	}
	if s.free != nil && !s.appendKeepOuts(&sig, s.free, p) {
		return nil, false
	}
	return sig, true
}

// appendKeepOuts adds the keep-out groups of np to the signature,
// returning false if p turns out to be strictly inside one of the
// keep-out shapes (and not inside one of its holes or on its boundary).
func (s *Surface) appendKeepOuts(sig *ringIndices, np *nestedPolygon, p geom.Point) bool {
	for _, ko := range np.keepOuts {
		*sig = append(*sig, ko)
		if !np.bounds.Overlaps(p.Bounds()) {
			continue
		}
		if !pointInRing(p, s.vertices[ko.outer], s.ringBox[ko.outer]) ||
			pointOnRing(p, s.vertices[ko.outer]) {
			continue
		}
		inHole := false
		for _, inner := range ko.inners {
			if pointInRing(p, s.vertices[inner], s.ringBox[inner]) ||
				pointOnRing(p, s.vertices[inner]) {
				inHole = true
				break
			}
		}
		if !inHole {
			return false
		}
	}
	return true
}

// segmentLegal reports whether the straight segment a–b stays in the
// legal surface bounded by the rings in sig. Results are memoized in
// the segment visibility cache under the unordered endpoint pair; the
// underlying geometry never changes, so entries are never invalidated.
func (s *Surface) segmentLegal(a, b geom.Point, sig ringIndices) bool {
	if a.Equals(b) {
		return true
	}
	key := newSegmentKey(a, b)
	s.mu.RLock()
	legal, ok := s.memo[key]
	s.mu.RUnlock()
	if ok {
		return legal
	}
	legal = s.segmentLegalUncached(a, b, sig)
	s.mu.Lock()
	s.memo[key] = legal
	s.mu.Unlock()
	return legal
}

func (s *Surface) segmentLegalUncached(a, b geom.Point, sig ringIndices) bool {
	for _, g := range sig {
		if !s.segmentClearsRing(a, b, g.outer) {
			return false
		}
		for _, inner := range g.inners {
			if !s.segmentClearsRing(a, b, inner) {
				return false
			}
		}
	}
	// A segment may touch ring vertices without properly crossing any
	// edge yet still cut through forbidden area, e.g. the diagonal of a
	// square obstacle between two opposite corners. Testing the midpoint
	// catches the cut-through.
	mid := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return s.pointLegalIn(mid, sig)
}

// segmentClearsRing reports whether the segment a–b can coexist with the
// ring at catalogue index ri. Proper crossings are illegal. Touches are
// not: an intersection at a ring vertex that is also a segment endpoint
// (the path bending at an obstacle corner), a segment endpoint resting
// on an edge, or the segment grazing a ring vertex.
func (s *Surface) segmentClearsRing(a, b geom.Point, ri int) bool {
	ring := s.vertices[ri]
	bb := s.ringBox[ri]
	sb := geom.LineString{a, b}.Bounds()
	if !bb.Overlaps(sb) {
		return true
	}
	for i := 0; i < len(ring)-1; i++ {
		e0, e1 := ring[i], ring[i+1]
		if !segmentsCross(a, b, e0, e1) {
			continue
		}
		if a.Equals(e0) || a.Equals(e1) || b.Equals(e0) || b.Equals(e1) {
			continue
		}
		if orientation(e0, e1, a) == 0 && onSegment(e0, a, e1) {
			continue
		}
		if orientation(e0, e1, b) == 0 && onSegment(e0, b, e1) {
			continue
		}
		if orientation(a, b, e0) == 0 && onSegment(a, e0, b) {
			continue
		}
		if orientation(a, b, e1) == 0 && onSegment(a, e1, b) {
			continue
		}
		return false
	}
	return true
}

// pointLegalIn reports whether p is in legal surface with respect to the
// rings named in sig only. Boundary points count as legal.
func (s *Surface) pointLegalIn(p geom.Point, sig ringIndices) bool {
	for _, g := range sig {
		outerRing := s.vertices[g.outer]
		inOuter := pointInRing(p, outerRing, s.ringBox[g.outer])
		onOuter := pointOnRing(p, outerRing)
		if g.keepIn {
			if !inOuter && !onOuter {
				return false
			}
			for _, inner := range g.inners {
				if pointInRing(p, s.vertices[inner], s.ringBox[inner]) &&
					!pointOnRing(p, s.vertices[inner]) {
					return false
				}
			}
			continue
		}
		if !inOuter || onOuter {
			continue
		}
		inHole := false
		for _, inner := range g.inners {
			if pointInRing(p, s.vertices[inner], s.ringBox[inner]) ||
				pointOnRing(p, s.vertices[inner]) {
				inHole = true
				break
			}
		}
		if !inHole {
			return false
		}
	}
	return true
}
