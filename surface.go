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
	"fmt"
	"math"
	"sync"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// A ringGroup names the rings of one polygon by their indices in the
// vertex catalogue: the outer ring followed by any holes. keepIn
// distinguishes keep-in boundaries from keep-out (obstacle) boundaries.
type ringGroup struct {
	keepIn bool
	outer  int
	inners []int
}

// A nestedPolygon pairs one grown keep-in polygon with the shrunk
// keep-out polygons that lie inside it. When hasKeepIn is false the
// group holds keep-outs that are not nested inside any keep-in region.
// The embedded MultiPolygon holds the group's shapes and makes the
// group a geom.Geom the r-tree can index.
type nestedPolygon struct {
	geom.MultiPolygon

	keepIn    ringGroup
	hasKeepIn bool
	keepOuts  []ringGroup
	bounds    *geom.Bounds
}

// Bounds returns the precomputed envelope of the group.
func (np *nestedPolygon) Bounds() *geom.Bounds { return np.bounds }

// A Surface is the legal region a tool may travel in: inside the keep-in
// area (if one was given) and outside every keep-out area, each offset by
// a clearance tolerance. It is built once by NewSurface and may then
// serve any number of FindPath queries. All fields except the segment
// visibility cache are immutable after construction; the cache is
// guarded by a lock so a single Surface can serve concurrent queries.
type Surface struct {
	groups  []*nestedPolygon // one group per keep-in polygon
	free    *nestedPolygon   // keep-outs under no keep-in; may be nil
	bounded bool             // false means the surface is the whole plane minus keep-outs
	index   *rtree.Rtree     // spatial index over groups

	// vertices holds every ring of every group in construction order,
	// outer ring before holes, keep-in rings before the keep-outs nested
	// in them. Rings are closed: the last vertex repeats the first.
	vertices []geom.Path
	ringBox  []*geom.Bounds // envelope of each ring in vertices

	mu   sync.RWMutex
	memo map[segmentKey]bool
}

// NewSurface creates a surface for path finding. Travel is legal within
// keepIn and outside every polygon of keepOut. A nil keepIn leaves the
// surface unbounded. The keep-in area is grown and the keep-out areas
// are shrunk by tolerance, which must be positive, so that paths hugging
// a boundary keep geometric clearance from the original shapes. Rings
// that are not closed are closed here; rings with fewer than three
// distinct vertices are an error.
func NewSurface(keepIn, keepOut geom.MultiPolygon, tolerance float64) (*Surface, error) {
	if !(tolerance > 0) {
		return nil, fmt.Errorf("traverse: tolerance must be positive but is %g", tolerance)
	}
	keepIn, err := normalizeMultiPolygon(keepIn, "keep-in")
	if err != nil {
		return nil, err
	}
	keepOut, err = normalizeMultiPolygon(keepOut, "keep-out")
	if err != nil {
		return nil, err
	}

	grown := make([]geom.Polygon, len(keepIn))
	for i, p := range keepIn {
		grown[i] = offsetPolygon(p, tolerance)
	}
	shrunk := make([]geom.Polygon, len(keepOut))
	for i, p := range keepOut {
		shrunk[i] = offsetPolygon(p, -tolerance)
	}
	return assembleSurface(grown, shrunk), nil
}

// assembleSurface indexes already-offset keep-in and keep-out polygons
// into a surface.
func assembleSurface(grown, shrunk []geom.Polygon) *Surface {
	// Partition the keep-outs by the keep-in polygon that contains them,
	// so containment queries only consult the obstacles that share a
	// region with the query point. Unmatched keep-outs go in a top-level
	// group that every query consults.
	groupOf := make([]int, len(shrunk))
	for i, ko := range shrunk {
		groupOf[i] = -1
		for j, ki := range grown {
			if pointInRing(ko[0][0], ki[0], ringBounds(ki[0])) {
				groupOf[i] = j
				break
			}
		}
	}

	s := &Surface{
		bounded: len(grown) > 0,
		index:   rtree.NewTree(25, 50),
		memo:    make(map[segmentKey]bool),
	}
	for j, ki := range grown {
		np := &nestedPolygon{hasKeepIn: true, bounds: geom.NewBounds()}
		np.keepIn = s.addRings(ki, true, np.bounds)
		np.MultiPolygon = geom.MultiPolygon{ki}
		for i, ko := range shrunk {
			if groupOf[i] == j {
				np.keepOuts = append(np.keepOuts, s.addRings(ko, false, np.bounds))
				np.MultiPolygon = append(np.MultiPolygon, ko)
			}
		}
		s.groups = append(s.groups, np)
		s.index.Insert(np)
	}
	free := &nestedPolygon{bounds: geom.NewBounds()}
	for i, ko := range shrunk {
		if groupOf[i] == -1 {
			free.keepOuts = append(free.keepOuts, s.addRings(ko, false, free.bounds))
			free.MultiPolygon = append(free.MultiPolygon, ko)
		}
	}
	if len(free.keepOuts) > 0 {
		s.free = free
	}
	return s
}

// addRings flattens the rings of p into the vertex catalogue, outer ring
// first, and extends the group envelope to cover them.
func (s *Surface) addRings(p geom.Polygon, keepIn bool, groupBounds *geom.Bounds) ringGroup {
	g := ringGroup{keepIn: keepIn, outer: len(s.vertices)}
	for i, ring := range p {
		if i > 0 {
			g.inners = append(g.inners, len(s.vertices))
		}
		b := ringBounds(ring)
		s.vertices = append(s.vertices, ring)
		s.ringBox = append(s.ringBox, b)
		groupBounds.Extend(b)
	}
	return g
}

// Vertices returns the flattened vertex catalogue: one closed ring per
// entry, in construction order with each outer ring before its holes.
// It is intended for diagnostics and visualization; the contents must
// not be modified.
func (s *Surface) Vertices() []geom.Path {
	return s.vertices
}

func normalizeMultiPolygon(mp geom.MultiPolygon, role string) (geom.MultiPolygon, error) {
	out := make(geom.MultiPolygon, len(mp))
	for i, p := range mp {
		out[i] = make(geom.Polygon, len(p))
		for j, ring := range p {
			r, err := normalizeRing(ring)
			if err != nil {
				return nil, fmt.Errorf("traverse: %s polygon %d ring %d: %v", role, i, j, err)
			}
			out[i][j] = r
		}
	}
	return out, nil
}

// normalizeRing closes ring if its last vertex does not repeat the
// first, and rejects rings too small to bound an area.
func normalizeRing(ring geom.Path) (geom.Path, error) {
	distinct := len(ring)
	if distinct > 0 && ring[0].Equals(ring[len(ring)-1]) {
		distinct--
	}
	if distinct < 3 {
		return nil, fmt.Errorf("ring has %d distinct vertices; need at least 3", distinct)
	}
	if !ring[0].Equals(ring[len(ring)-1]) {
		closed := make(geom.Path, len(ring)+1)
		copy(closed, ring)
		closed[len(ring)] = ring[0]
		return closed, nil
	}
	return ring, nil
}

// offsetPolygon moves every boundary of p by d: positive d grows the
// area covered by the polygon and negative d shrinks it. Holes move
// opposite to the outer ring so that growing the polygon shrinks its
// holes.
func offsetPolygon(p geom.Polygon, d float64) geom.Polygon {
	out := make(geom.Polygon, len(p))
	out[0] = offsetRing(p[0], d)
	for i, hole := range p[1:] {
		out[i+1] = offsetRing(hole, -d)
	}
	return out
}

// offsetRing offsets every edge of the closed ring by d away from the
// enclosed area (toward it for negative d), joining the offset edges
// with miters. The ring winding direction is detected from its signed
// area, so either orientation is accepted.
func offsetRing(ring geom.Path, d float64) geom.Path {
	n := len(ring) - 1 // skip the closing vertex
	ccw := signedArea(ring) > 0
	out := make(geom.Path, 0, len(ring))
	for i := 0; i < n; i++ {
		prev := ring[(i+n-1)%n]
		cur := ring[i]
		next := ring[i+1]
		n1x, n1y := outwardNormal(prev, cur, ccw)
		n2x, n2y := outwardNormal(cur, next, ccw)
		mx, my := n1x+n2x, n1y+n2y
		m := math.Hypot(mx, my)
		if m == 0 {
			// A spike vertex: the two edges double back on each other, so
			// there is no bisector. Move along the incoming edge normal.
			out = append(out, geom.Point{X: cur.X + n1x*d, Y: cur.Y + n1y*d})
			continue
		}
		mx, my = mx/m, my/m
		// Scale the miter so each adjacent edge moves by exactly d. Cap
		// the scale at very sharp corners to keep the join bounded.
		cosHalf := mx*n1x + my*n1y
		if cosHalf < 0.1 {
			cosHalf = 0.1
		}
		out = append(out, geom.Point{X: cur.X + mx*d/cosHalf, Y: cur.Y + my*d/cosHalf})
	}
	out = append(out, out[0])
	return out
}

// outwardNormal returns the unit normal of the edge from a to b that
// points away from the area enclosed by the ring the edge belongs to.
func outwardNormal(a, b geom.Point, ccw bool) (x, y float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	if ccw {
		return dy / l, -dx / l
	}
	return -dy / l, dx / l
}

// signedArea computes the shoelace area of the closed ring: positive for
// counterclockwise winding.
func signedArea(ring geom.Path) float64 {
	var a float64
	for i := 0; i < len(ring)-1; i++ {
		a += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return a / 2
}
