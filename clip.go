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

// Package clip implements the classical algorithms for clipping line
// segments and polygons against an axis-aligned rectangular window.
//
// Two line clippers are provided, [CohenSutherland] and [LiangBarsky], and
// two polygon clippers, [SutherlandHodgeman] and [WeilerAtherton]. All of
// them are pure functions: inputs are never modified and results never share
// memory with the inputs.
//
// Coordinates are grid-logical: the origin is in the centre of the drawing
// area and the y-axis points up.
package clip

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Window is an axis-aligned clip rectangle.
// The invariant Min.X <= Max.X and Min.Y <= Max.Y holds for all windows
// constructed by [NewWindow] or [WindowFromRect].
type Window struct {
	Min, Max vec.Vec2
}

// NewWindow returns the window spanned by two arbitrary opposite corners.
func NewWindow(a, b vec.Vec2) Window {
	return Window{
		Min: vec.Vec2{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: vec.Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// WindowFromRect converts a rectangle to a clip window.
func WindowFromRect(r rect.Rect) Window {
	return NewWindow(vec.Vec2{X: r.LLx, Y: r.LLy}, vec.Vec2{X: r.URx, Y: r.URy})
}

// Rect returns the window as a rectangle.
func (w Window) Rect() rect.Rect {
	return rect.Rect{LLx: w.Min.X, LLy: w.Min.Y, URx: w.Max.X, URy: w.Max.Y}
}

// Contains reports whether p lies inside the window or on its boundary.
func (w Window) Contains(p vec.Vec2) bool {
	return p.X >= w.Min.X && p.X <= w.Max.X && p.Y >= w.Min.Y && p.Y <= w.Max.Y
}

// IsEmpty reports whether the window has zero area.
func (w Window) IsEmpty() bool {
	return w.Min.X >= w.Max.X || w.Min.Y >= w.Max.Y
}

// Center returns the centre point of the window.
func (w Window) Center() vec.Vec2 {
	return vec.Vec2{X: (w.Min.X + w.Max.X) / 2, Y: (w.Min.Y + w.Max.Y) / 2}
}

// Corners returns the four corners in window traversal order: lower left,
// lower right, upper right, upper left. This is counter-clockwise in
// grid coordinates.
func (w Window) Corners() Polygon {
	return Polygon{
		w.Min,
		{X: w.Max.X, Y: w.Min.Y},
		w.Max,
		{X: w.Min.X, Y: w.Max.Y},
	}
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B vec.Vec2
}

// Polygon is a closed polygon. The last vertex connects back to the first.
// The order of the vertices gives the winding direction.
type Polygon []vec.Vec2

// Clone returns a copy of p which does not share memory with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Path returns the polygon as a closed path.
// Polygons with fewer than two vertices give an empty path.
func (p Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p) < 2 {
		return res
	}
	res = res.MoveTo(p[0])
	for _, v := range p[1:] {
		res = res.LineTo(v)
	}
	return res.Close()
}

// signedArea returns twice the signed area of p.
// The result is positive for counter-clockwise polygons.
func (p Polygon) signedArea() float64 {
	var sum float64
	n := len(p)
	for i := range n {
		a := p[i]
		b := p[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// Numerical tolerances shared by the clippers.
const (
	// parallelEpsilon is the smallest |p| for which the Liang-Barsky clip
	// test divides by p. Smaller values mean the segment is parallel to
	// the boundary.
	parallelEpsilon = 1e-6

	// determinantEpsilon is the smallest determinant for which two edges
	// are considered to be non-parallel in Weiler-Atherton.
	determinantEpsilon = 1e-9

	// boundsEpsilon widens segment bounding boxes when checking whether a
	// line intersection lies on both segments.
	boundsEpsilon = 1e-6

	// matchEpsilon is the distance below which two intersection points
	// are considered to be the same node.
	matchEpsilon = 1e-6

	// rayEpsilon keeps the ray casting test from dividing by zero on
	// horizontal edges.
	rayEpsilon = 1e-12

	// maxOutcodeClips is a safety cap on the Cohen-Sutherland iteration.
	// In exact arithmetic at most four boundary clips are needed, two per
	// endpoint; the extra room absorbs rounding at window corners.
	maxOutcodeClips = 8
)
