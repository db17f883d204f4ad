// seehuhn.de/go/clip - line and polygon clipping on a raster grid
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package clip

import "seehuhn.de/go/geom/vec"

// boundary identifies one edge of the clip window.
type boundary int

// Sutherland-Hodgeman passes, in the order they are applied.
const (
	boundaryLeft boundary = iota
	boundaryTop
	boundaryRight
	boundaryBottom
)

// SutherlandHodgeman clips p against w by successively cutting away the
// outside of each of the four window edges.
//
// The result is always a single polygon, which is empty if p and w do not
// overlap. The algorithm relies on the clip region being convex, which is
// always the case for a [Window]. If the part of a concave polygon inside w
// consists of several pieces, these are joined by zero-width bridges along
// the window boundary; use [WeilerAtherton] to obtain separate contours.
func SutherlandHodgeman(p Polygon, w Window) Polygon {
	if len(p) == 0 {
		return nil
	}
	out := p.Clone()
	for _, b := range []boundary{boundaryLeft, boundaryTop, boundaryRight, boundaryBottom} {
		out = clipBoundary(out, w, b)
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

// clipBoundary performs one Sutherland-Hodgeman pass.
func clipBoundary(in Polygon, w Window, b boundary) Polygon {
	if len(in) == 0 {
		return nil
	}
	out := make(Polygon, 0, len(in)+2)
	s := in[len(in)-1]
	sInside := w.insideBoundary(s, b)
	for _, p := range in {
		pInside := w.insideBoundary(p, b)
		if pInside {
			if !sInside {
				out = append(out, w.intersectBoundary(s, p, b))
			}
			out = append(out, p)
		} else if sInside {
			out = append(out, w.intersectBoundary(s, p, b))
		}
		s, sInside = p, pInside
	}
	return out
}

// insideBoundary reports whether p lies on the inner side of boundary b.
// Points on the boundary count as inside.
func (w Window) insideBoundary(p vec.Vec2, b boundary) bool {
	switch b {
	case boundaryLeft:
		return p.X >= w.Min.X
	case boundaryTop:
		return p.Y <= w.Max.Y
	case boundaryRight:
		return p.X <= w.Max.X
	case boundaryBottom:
		return p.Y >= w.Min.Y
	}
	return false
}

// intersectBoundary returns the point where the edge p1-p2 meets the line
// through boundary b. If the edge is parallel to the boundary, the
// coordinate of p1 is used.
func (w Window) intersectBoundary(p1, p2 vec.Vec2, b boundary) vec.Vec2 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	var x, y float64
	switch b {
	case boundaryLeft, boundaryRight:
		x = w.Min.X
		if b == boundaryRight {
			x = w.Max.X
		}
		y = p1.Y
		if dx != 0 {
			y = p1.Y + dy*(x-p1.X)/dx
		}
	case boundaryTop, boundaryBottom:
		y = w.Max.Y
		if b == boundaryBottom {
			y = w.Min.Y
		}
		x = p1.X
		if dy != 0 {
			x = p1.X + dx*(y-p1.Y)/dy
		}
	}
	return vec.Vec2{X: x, Y: y}
}
