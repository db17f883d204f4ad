package scene

import (
	"image"
	"image/color"
	"iter"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/grid"
)

// Colors used for the different kinds of geometry.
var (
	ClickColor    color.Color = colornames.Magenta
	PolygonColor  color.Color = colornames.Blue
	LineColor     color.Color = colornames.Darkgreen
	LBColor       color.Color = colornames.Darkcyan // Liang-Barsky output
	WindowColor   color.Color = colornames.Red
	OriginalColor color.Color = colornames.Lightgray // geometry before clipping
	AxisColor     color.Color = colornames.Black
)

// Canvas receives the cells plotted by a scene.
type Canvas interface {
	// Bounds returns the size of the drawing area in pixels.
	Bounds() image.Rectangle

	// Clear erases the drawing area and draws the grid lines for m.
	Clear(m grid.Mapper)

	// Plot fills one grid cell.
	Plot(cell image.Point, c color.Color)
}

// A Shape is a piece of geometry which can be drawn onto the grid.
// The possible types are [SegmentShape], [PolygonShape] and [CellShape].
type Shape interface {
	// Cells returns the grid cells covered by the shape.
	Cells() iter.Seq[image.Point]

	isShape()
}

// SegmentShape draws a line segment. Endpoints are rounded to the nearest
// grid cell.
type SegmentShape struct {
	clip.Segment
}

func (s SegmentShape) Cells() iter.Seq[image.Point] {
	return grid.Line(grid.Round(s.A), grid.Round(s.B))
}

func (SegmentShape) isShape() {}

// PolygonShape draws the outline of a closed polygon. Vertices are rounded
// to the nearest grid cell.
type PolygonShape struct {
	clip.Polygon
}

func (p PolygonShape) Cells() iter.Seq[image.Point] {
	vertices := make([]image.Point, len(p.Polygon))
	for i, v := range p.Polygon {
		vertices[i] = grid.Round(v)
	}
	return grid.Outline(vertices)
}

func (PolygonShape) isShape() {}

// CellShape draws a single grid cell.
type CellShape struct {
	Cell image.Point
}

func (c CellShape) Cells() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		yield(c.Cell)
	}
}

func (CellShape) isShape() {}

// DrawRequest is a shape together with the color used to draw it.
type DrawRequest struct {
	Shape Shape
	Color color.Color
}
