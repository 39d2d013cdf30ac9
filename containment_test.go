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

func TestContainmentSignatureUnbounded(t *testing.T) {
	s := testSurface(nil, []geom.Polygon{{square(4, -2, 6, 2)}})

	sig, ok := s.containmentSignature(geom.Point{X: 0, Y: 0})
	if !ok {
		t.Fatal("free point: want in surface")
	}
	if len(sig) != 1 || sig[0].keepIn || sig[0].outer != 0 {
		t.Errorf("free point: want the keep-out group in the signature but have %v", sig)
	}

	if _, ok := s.containmentSignature(geom.Point{X: 5, Y: 0}); ok {
		t.Error("point inside the keep-out: want not in surface")
	}

	// Boundary points are legal: a path may hug the obstacle.
	if _, ok := s.containmentSignature(geom.Point{X: 4, Y: 0}); !ok {
		t.Error("point on the keep-out edge: want in surface")
	}
	if _, ok := s.containmentSignature(geom.Point{X: 4, Y: 2}); !ok {
		t.Error("point at a keep-out vertex: want in surface")
	}
}

func TestContainmentSignatureKeepOutHole(t *testing.T) {
	donut := geom.Polygon{square(0, 0, 10, 10), square(4, 4, 6, 6)}
	s := testSurface(nil, []geom.Polygon{donut})

	if _, ok := s.containmentSignature(geom.Point{X: 2, Y: 2}); ok {
		t.Error("point in the obstacle body: want not in surface")
	}
	if _, ok := s.containmentSignature(geom.Point{X: 5, Y: 5}); !ok {
		t.Error("point in the obstacle hole: want in surface")
	}
}

func TestContainmentSignatureBounded(t *testing.T) {
	keepIn := []geom.Polygon{{square(0, 0, 100, 100), square(70, 70, 80, 80)}}
	s := testSurface(keepIn, []geom.Polygon{{square(10, 10, 20, 20)}})

	sig, ok := s.containmentSignature(geom.Point{X: 50, Y: 50})
	if !ok {
		t.Fatal("interior point: want in surface")
	}
	if len(sig) != 2 {
		t.Fatalf("want keep-in and keep-out groups but have %v", sig)
	}
	if !sig[0].keepIn || sig[1].keepIn {
		t.Errorf("want the keep-in group first: %v", sig)
	}

	if _, ok := s.containmentSignature(geom.Point{X: -5, Y: 50}); ok {
		t.Error("point outside the keep-in: want not in surface")
	}
	if _, ok := s.containmentSignature(geom.Point{X: 75, Y: 75}); ok {
		t.Error("point in a keep-in hole: want not in surface")
	}
	if _, ok := s.containmentSignature(geom.Point{X: 15, Y: 15}); ok {
		t.Error("point in the nested keep-out: want not in surface")
	}
	if _, ok := s.containmentSignature(geom.Point{X: 0, Y: 50}); !ok {
		t.Error("point on the keep-in edge: want in surface")
	}
}

func TestSegmentLegal(t *testing.T) {
	s := testSurface(nil, []geom.Polygon{{square(4, -2, 6, 2)}})
	sig, ok := s.containmentSignature(geom.Point{X: 0, Y: 0})
	if !ok {
		t.Fatal("start not in surface")
	}

	cases := []struct {
		name string
		a, b geom.Point
		want bool
	}{
		{"clear of the obstacle", geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 10}, true},
		{"through the obstacle", geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, false},
		{"to a near corner", geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 2}, true},
		{"to a far corner", geom.Point{X: 0, Y: 0}, geom.Point{X: 6, Y: 2}, false},
		{"hugging an edge", geom.Point{X: 4, Y: 2}, geom.Point{X: 6, Y: 2}, true},
		{"between opposite corners", geom.Point{X: 4, Y: 2}, geom.Point{X: 6, Y: -2}, false},
		{"past the corner", geom.Point{X: 0, Y: 2}, geom.Point{X: 10, Y: 2}, true},
	}
	for _, c := range cases {
		if have := s.segmentLegal(c.a, c.b, sig); have != c.want {
			t.Errorf("%s: want %v but have %v", c.name, c.want, have)
		}
	}
}

func TestSegmentLegalCached(t *testing.T) {
	s := testSurface(nil, []geom.Polygon{{square(4, -2, 6, 2)}})
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	sig, _ := s.containmentSignature(a)

	first := s.segmentLegal(a, b, sig)
	if first {
		t.Fatal("segment through the obstacle: want illegal")
	}
	key := newSegmentKey(a, b)
	if _, ok := s.memo[key]; !ok {
		t.Fatal("want a cache entry after the first query")
	}
	if second := s.segmentLegal(a, b, sig); second != first {
		t.Errorf("want %v on the second query but have %v", first, second)
	}
	// Reversing the endpoints hits the same entry.
	if reflectKey := newSegmentKey(b, a); reflectKey != key {
		t.Errorf("want a symmetric cache key: %v != %v", reflectKey, key)
	}
	// Prove the second query is served from the cache rather than
	// recomputed: poison the entry and query again.
	s.memo[key] = true
	if !s.segmentLegal(a, b, sig) {
		t.Error("want the poisoned cache value, so the result must come from the cache")
	}
}

func TestSegmentLegalEmptySignature(t *testing.T) {
	s := testSurface(nil, nil)
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	sig, ok := s.containmentSignature(a)
	if !ok || len(sig) != 0 {
		t.Fatalf("empty surface: want empty signature but have %v, %v", sig, ok)
	}
	if !s.segmentLegal(a, b, sig) {
		t.Error("want any segment legal on an empty surface")
	}
}
