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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Code classifies the position of a point relative to the four half-planes
// of a window.
type Code uint8

// Outcode bits. At most one of Left/Right and one of Bottom/Top is set.
const (
	Inside Code = 0
	Left   Code = 1
	Right  Code = 2
	Bottom Code = 4
	Top    Code = 8
)

// OutCode computes the Cohen-Sutherland outcode of p with respect to w.
func OutCode(p vec.Vec2, w Window) Code {
	code := Inside
	if p.X < w.Min.X {
		code |= Left
	} else if p.X > w.Max.X {
		code |= Right
	}
	if p.Y < w.Min.Y {
		code |= Bottom
	} else if p.Y > w.Max.Y {
		code |= Top
	}
	return code
}

// CohenSutherland clips s against w using outcodes.
// If any part of s lies inside w, the clipped segment is returned together
// with true. The direction of the segment is preserved.
func CohenSutherland(s Segment, w Window) (Segment, bool) {
	x1, y1 := s.A.X, s.A.Y
	x2, y2 := s.B.X, s.B.Y
	code1 := OutCode(s.A, w)
	code2 := OutCode(s.B, w)

	for range maxOutcodeClips + 1 {
		if code1|code2 == Inside {
			return Segment{A: vec.Vec2{X: x1, Y: y1}, B: vec.Vec2{X: x2, Y: y2}}, true
		}
		if code1&code2 != 0 {
			// both endpoints on the same outer side
			return Segment{}, false
		}

		out := code1
		if out == Inside {
			out = code2
		}

		dx := x2 - x1
		dy := y2 - y1
		var x, y float64
		switch {
		case out&Top != 0:
			x, y = x1, w.Max.Y
			if dy != 0 {
				x = x1 + dx*(w.Max.Y-y1)/dy
			}
		case out&Bottom != 0:
			x, y = x1, w.Min.Y
			if dy != 0 {
				x = x1 + dx*(w.Min.Y-y1)/dy
			}
		case out&Right != 0:
			x, y = w.Max.X, y1
			if dx != 0 {
				y = y1 + dy*(w.Max.X-x1)/dx
			}
		default: // Left
			x, y = w.Min.X, y1
			if dx != 0 {
				y = y1 + dy*(w.Min.X-x1)/dx
			}
		}

		if out == code1 {
			x1, y1 = x, y
			code1 = OutCode(vec.Vec2{X: x1, Y: y1}, w)
		} else {
			x2, y2 = x, y
			code2 = OutCode(vec.Vec2{X: x2, Y: y2}, w)
		}
	}
	return Segment{}, false
}

// LiangBarsky clips s against w using the parametric form of the segment.
// The results agree with [CohenSutherland] up to rounding.
func LiangBarsky(s Segment, w Window) (Segment, bool) {
	x1, y1 := s.A.X, s.A.Y
	dx := s.B.X - x1
	dy := s.B.Y - y1

	tEnter, tExit := 0.0, 1.0
	if !clipTest(-dx, x1-w.Min.X, &tEnter, &tExit) || // left
		!clipTest(dx, w.Max.X-x1, &tEnter, &tExit) || // right
		!clipTest(-dy, y1-w.Min.Y, &tEnter, &tExit) || // bottom
		!clipTest(dy, w.Max.Y-y1, &tEnter, &tExit) { // top
		return Segment{}, false
	}

	tEnter = max(tEnter, 0)
	tExit = min(tExit, 1)

	res := s
	if tEnter > 0 {
		res.A = vec.Vec2{X: x1 + tEnter*dx, Y: y1 + tEnter*dy}
	}
	if tExit < 1 {
		res.B = vec.Vec2{X: x1 + tExit*dx, Y: y1 + tExit*dy}
	}
	return res, true
}

// clipTest updates the parameter interval [tEnter, tExit] for one window
// boundary. It returns false if the segment lies completely outside.
//
// p is the component of the direction vector pointing out of the window,
// q is the signed distance of the start point from the boundary.
func clipTest(p, q float64, tEnter, tExit *float64) bool {
	if math.Abs(p) < parallelEpsilon {
		return q >= 0
	}
	t := q / p
	if p < 0 {
		if t > *tExit {
			return false
		}
		*tEnter = max(*tEnter, t)
	} else {
		if t < *tEnter {
			return false
		}
		*tExit = min(*tExit, t)
	}
	return true
}
