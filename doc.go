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

// Package traverse plans collision-free travel moves for a cutting tool.
//
// A Surface describes where the tool may go: inside an optional keep-in
// area and outside a set of keep-out areas, both polygonal and possibly
// nested, offset by a clearance tolerance at construction. FindPath then
// runs A* over the visibility graph spanned by the polygon vertices and
// returns the shortest legal point sequence between two locations, or
// nil when no legal route exists. A caller-supplied PathLimiter can
// prune the search using cost information the geometry does not have.
//
// Order arranges a set of such moves into a short overall tour using a
// nearest-neighbor construction refined by 2-opt.
package traverse

// Version gives the version number.
const Version = "0.1.0"
