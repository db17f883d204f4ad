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

package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single clipping scenario.
type TestCase struct {
	Name    string    // lowercase a-z and _ only
	Window  rect.Rect // the clip window, in grid coordinates
	Subject Subject   // the geometry to clip
	Want    Want      // properties of the correct result
}

// Subject is the geometry a test case clips.
type Subject interface {
	isSubject()
}

// Lines is a set of line segments, clipped with the line algorithms.
type Lines struct {
	Segments [][2]vec.Vec2
}

func (Lines) isSubject() {}

// Shape is a closed polygon, clipped with the polygon algorithms.
type Shape struct {
	Vertices []vec.Vec2
}

func (Shape) isSubject() {}

// Want describes the expected outcome of a test case.
// Fields which do not apply to the subject type are zero.
type Want struct {
	Accepted int     // segments which survive line clipping
	Contours int     // number of Weiler-Atherton output contours
	Area     float64 // total area of the clipped polygon
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// seg is a helper to create a line segment.
func seg(x1, y1, x2, y2 float64) [2]vec.Vec2 {
	return [2]vec.Vec2{pt(x1, y1), pt(x2, y2)}
}

// window returns the square window [-r, r]×[-r, r].
func window(r float64) rect.Rect {
	return rect.Rect{LLx: -r, LLy: -r, URx: r, URy: r}
}

// box returns the corners of an axis-aligned rectangle in
// counter-clockwise order, starting at the lower left.
func box(x0, y0, x1, y1 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1)}
}

// rectangle returns the window spanned by (x0, y0) and (x1, y1).
func rectangle(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}
