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

// Package scene keeps track of the geometry entered on a raster grid and
// runs clipping operations on it.
//
// A [Scene] collects clicked grid cells, turns them into line segments, a
// polygon or a clip window, and clips the committed geometry with one of the
// algorithms from package clip. Everything the scene draws is sent to a
// [Canvas] as individual grid cells. Before every clip the committed
// geometry is saved, so that [Scene.ResetClip] can undo one clip
// operation.
//
// Actions never fail. If the preconditions for an action are not met, the
// scene is left unchanged and the returned [Status] explains why.
package scene

import (
	"image"
	"image/color"
	"slices"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/grid"
)

// Scene holds the state of one drawing area.
// A Scene is not safe for concurrent use.
type Scene struct {
	canvas Canvas
	mapper grid.Mapper

	clicks    []image.Point
	polygon   clip.Polygon
	segments  []clip.Segment
	window    clip.Window
	windowSet bool

	result   *clip.Result
	snapshot *snapshot

	requests []DrawRequest
}

// snapshot holds private copies of the committed geometry, taken just
// before a clip operation.
type snapshot struct {
	polygon  clip.Polygon
	segments []clip.Segment
}

// New returns an empty scene which draws onto canvas, using grid cells of
// the given size in pixels.
func New(canvas Canvas, cellSize int) *Scene {
	s := &Scene{canvas: canvas}
	s.ResetGrid(cellSize)
	return s
}

// Click records a click at the given pixel position and returns the grid
// cell which was hit.
func (s *Scene) Click(pixel image.Point) (image.Point, Status) {
	cell := s.mapper.ToGrid(pixel)
	return cell, s.ClickGrid(cell)
}

// ClickGrid records a click on the given grid cell.
func (s *Scene) ClickGrid(cell image.Point) Status {
	s.clicks = append(s.clicks, cell)
	s.draw(CellShape{Cell: cell}, ClickColor)

	st := done(1, 0, "Added point (%d, %d). Total clicks: %d", cell.X, cell.Y, len(s.clicks))
	Logger().Debug("scene: click", "x", cell.X, "y", cell.Y, "clicks", len(s.clicks))
	return st
}

// CommitLine turns the last two clicks into a line segment.
// Earlier clicks are discarded.
func (s *Scene) CommitLine() Status {
	n := len(s.clicks)
	if n < 2 {
		return refused("Need at least 2 points for a line.")
	}

	seg := clip.Segment{A: grid.Vec(s.clicks[n-2]), B: grid.Vec(s.clicks[n-1])}
	s.segments = append(s.segments, seg)
	s.draw(SegmentShape{seg}, LineColor)
	s.clicks = nil

	Logger().Debug("scene: line added", "segment", seg, "lines", len(s.segments))
	return done(2, n-2, "Line added. Total lines: %d. Ready to clip.", len(s.segments))
}

// CommitPolygon turns all clicks into the polygon, replacing any previous
// polygon.
func (s *Scene) CommitPolygon() Status {
	n := len(s.clicks)
	if n < 3 {
		return refused("Need at least 3 points for a polygon.")
	}

	p := make(clip.Polygon, n)
	for i, c := range s.clicks {
		p[i] = grid.Vec(c)
	}
	s.polygon = p
	s.draw(PolygonShape{p}, PolygonColor)
	s.clicks = nil

	Logger().Debug("scene: polygon drawn", "vertices", n)
	return done(n, 0, "Polygon drawn. Ready to clip.")
}

// SetWindow uses the last two clicks as opposite corners of the clip
// window. Earlier clicks are discarded.
func (s *Scene) SetWindow() Status {
	n := len(s.clicks)
	if n < 2 {
		return refused("Need 2 corner points for a window.")
	}

	s.window = clip.NewWindow(grid.Vec(s.clicks[n-2]), grid.Vec(s.clicks[n-1]))
	s.windowSet = true
	s.drawFrame(WindowColor)
	s.clicks = nil

	Logger().Debug("scene: clip window set", "min", s.window.Min, "max", s.window.Max)
	return done(2, n-2, "Clip window set.")
}

// RunClip clips the committed geometry against the clip window.
//
// The line algorithms clip all committed segments, the polygon algorithms
// clip the polygon. The committed geometry itself is not changed: the
// output is stored as the result of the scene and drawn on top of the
// original geometry, which is shown in a lighter color. A copy of the
// geometry is saved for [Scene.ResetClip].
func (s *Scene) RunClip(alg clip.Algorithm) Status {
	if !slices.Contains(clip.Algorithms, alg) {
		return refused("Unknown clipping algorithm.")
	}
	if alg.IsLine() {
		if len(s.segments) == 0 || !s.windowSet {
			return refused("Add at least one line and set a clip window first!")
		}
	} else if len(s.polygon) < 3 || !s.windowSet {
		return refused("Draw a polygon and set a clip window first!")
	}

	s.snapshot = &snapshot{
		polygon:  s.polygon.Clone(),
		segments: slices.Clone(s.segments),
	}

	in := clip.Input{Segments: s.segments, Polygon: s.polygon}
	res := clip.Run(alg, in, s.window)
	s.result = &res

	s.redraw()
	s.drawFrame(WindowColor)

	var st Status
	switch alg {
	case clip.AlgCohenSutherland, clip.AlgLiangBarsky:
		for _, seg := range s.segments {
			s.draw(SegmentShape{seg}, OriginalColor)
		}
		c := LineColor
		if alg == clip.AlgLiangBarsky {
			c = LBColor
		}
		for _, seg := range res.Segments {
			s.draw(SegmentShape{seg}, c)
		}
		st = done(len(res.Segments), res.Rejected,
			"%s: %d clipped, %d rejected.", alg, len(res.Segments), res.Rejected)

	case clip.AlgSutherlandHodgeman:
		s.draw(PolygonShape{s.polygon}, OriginalColor)
		for _, p := range res.Polygons {
			s.draw(PolygonShape{p}, PolygonColor)
		}
		if len(res.Polygons) > 0 {
			st = done(len(res.Polygons), 0, "Polygon clipped with Sutherland-Hodgeman.")
		} else {
			st = done(0, 0, "Polygon is outside. Rejected.")
		}

	case clip.AlgWeilerAtherton:
		s.draw(PolygonShape{s.polygon}, OriginalColor)
		for _, p := range res.Polygons {
			s.draw(PolygonShape{p}, PolygonColor)
		}
		n := len(res.Polygons)
		switch {
		case res.Relation == clip.Contained:
			st = done(n, 0, "Polygon is fully inside window.")
		case res.Relation == clip.Surrounds:
			st = done(n, 0, "Weiler-Atherton: Window lies inside polygon, colored with polygon color.")
		case res.Relation == clip.Disjoint:
			st = done(0, 0, "Polygon is fully outside window.")
		case n > 0:
			st = done(n, 0, "Polygon clipped with Weiler-Atherton.")
		default:
			st = done(0, 0, "Polygon is outside or clipped to nothing.")
		}
	}

	Logger().Debug("scene: clip", "algorithm", alg.String(),
		"accepted", st.Accepted, "rejected", st.Ignored, "status", st.Message)
	return st
}

// ResetClip restores the committed geometry saved by the last call to
// [Scene.RunClip] and discards the clip result. The saved copy is kept, so
// that ResetClip can be called repeatedly.
func (s *Scene) ResetClip() Status {
	if s.snapshot == nil {
		return refused("Nothing to reset.")
	}

	s.polygon = s.snapshot.polygon.Clone()
	s.segments = slices.Clone(s.snapshot.segments)
	s.result = nil

	s.redraw()
	s.drawFrame(WindowColor)
	if len(s.polygon) >= 3 {
		s.draw(PolygonShape{s.polygon}, PolygonColor)
	}
	for _, seg := range s.segments {
		s.draw(SegmentShape{seg}, LineColor)
	}

	Logger().Debug("scene: clip reset", "vertices", len(s.polygon), "lines", len(s.segments))
	return done(len(s.polygon)+len(s.segments), 0, "Restored shapes to the state before last clip.")
}

// ResetGrid discards all geometry, the clip window and the saved
// pre-clip state, and starts again with the given cell size.
func (s *Scene) ResetGrid(cellSize int) Status {
	s.mapper = grid.NewMapper(s.canvas.Bounds(), cellSize)
	s.polygon = nil
	s.segments = nil
	s.window = clip.Window{}
	s.windowSet = false
	s.snapshot = nil
	s.result = nil
	s.redraw()

	Logger().Debug("scene: grid reset", "cellSize", s.mapper.CellSize())
	return done(0, 0, "Grid reset. Click to add points.")
}

// redraw clears the canvas and draws the axes. Pending clicks are
// discarded, since their markers are erased.
func (s *Scene) redraw() {
	s.clicks = nil
	s.requests = s.requests[:0]
	s.canvas.Clear(s.mapper)

	ext := s.mapper.Extent()
	s.draw(SegmentShape{clip.Segment{
		A: grid.Vec(image.Point{X: -ext.X}),
		B: grid.Vec(image.Point{X: ext.X}),
	}}, AxisColor)
	s.draw(SegmentShape{clip.Segment{
		A: grid.Vec(image.Point{Y: -ext.Y}),
		B: grid.Vec(image.Point{Y: ext.Y}),
	}}, AxisColor)
}

// drawFrame draws the outline of the clip window, if one is set.
func (s *Scene) drawFrame(c color.Color) {
	if !s.windowSet {
		return
	}
	s.draw(PolygonShape{s.window.Corners()}, c)
}

func (s *Scene) draw(shape Shape, c color.Color) {
	s.requests = append(s.requests, DrawRequest{Shape: shape, Color: c})
	for cell := range shape.Cells() {
		s.canvas.Plot(cell, c)
	}
}

// Points returns the pending clicks.
func (s *Scene) Points() []image.Point {
	return slices.Clone(s.clicks)
}

// Polygon returns a copy of the committed polygon.
func (s *Scene) Polygon() clip.Polygon {
	return s.polygon.Clone()
}

// Segments returns a copy of the committed line segments.
func (s *Scene) Segments() []clip.Segment {
	return slices.Clone(s.segments)
}

// Window returns the clip window. The second return value is false if no
// window has been set.
func (s *Scene) Window() (clip.Window, bool) {
	return s.window, s.windowSet
}

// Result returns the output of the last clip operation. The second return
// value is false if there was no clip since the last reset.
func (s *Scene) Result() (clip.Result, bool) {
	if s.result == nil {
		return clip.Result{}, false
	}
	res := *s.result
	res.Segments = slices.Clone(res.Segments)
	res.Polygons = nil
	for _, p := range s.result.Polygons {
		res.Polygons = append(res.Polygons, p.Clone())
	}
	return res, true
}

// Mapper returns the mapping between pixels and grid cells.
func (s *Scene) Mapper() grid.Mapper {
	return s.mapper
}

// Requests returns everything drawn since the canvas was last cleared,
// in drawing order.
func (s *Scene) Requests() []DrawRequest {
	return slices.Clone(s.requests)
}
