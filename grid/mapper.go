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

// Package grid maps between pixel positions and the cells of a square
// raster grid, and rasterizes lines onto the grid.
//
// Grid coordinates have their origin in the centre of the drawing area, with
// the y-axis pointing up. Pixel coordinates have their origin in the top
// left corner, with the y-axis pointing down.
package grid

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Mapper converts between pixel positions and grid cells.
type Mapper struct {
	origin   image.Point // pixel position of the grid origin
	cellSize int
	bounds   image.Rectangle
}

// NewMapper returns a mapper for a drawing area with the given pixel bounds.
// The grid origin is placed at the centre of the area.
// Cell sizes smaller than 1 are treated as 1.
func NewMapper(bounds image.Rectangle, cellSize int) Mapper {
	cellSize = max(cellSize, 1)
	return Mapper{
		origin: image.Point{
			X: bounds.Min.X + bounds.Dx()/2,
			Y: bounds.Min.Y + bounds.Dy()/2,
		},
		cellSize: cellSize,
		bounds:   bounds,
	}
}

// CellSize returns the edge length of a grid cell, in pixels.
func (m Mapper) CellSize() int {
	return m.cellSize
}

// Bounds returns the pixel bounds of the drawing area.
func (m Mapper) Bounds() image.Rectangle {
	return m.bounds
}

// Origin returns the pixel position of the grid origin.
func (m Mapper) Origin() image.Point {
	return m.origin
}

// ToGrid returns the grid cell for the given pixel position.
// Both axes are rounded towards negative infinity, so that pixels left of
// or below the origin map to negative cells.
//
// A pixel row exactly k cells above the origin maps to cell k, while
// [Mapper.CellRect] draws that row as part of cell k-1. Inside a cell
// (away from its top row) the two functions agree.
func (m Mapper) ToGrid(pixel image.Point) image.Point {
	return image.Point{
		X: floorDiv(pixel.X-m.origin.X, m.cellSize),
		Y: floorDiv(m.origin.Y-pixel.Y, m.cellSize),
	}
}

// CellRect returns the pixels covered by the given grid cell.
func (m Mapper) CellRect(cell image.Point) image.Rectangle {
	x0 := m.origin.X + cell.X*m.cellSize
	y0 := m.origin.Y - (cell.Y+1)*m.cellSize
	return image.Rect(x0, y0, x0+m.cellSize, y0+m.cellSize)
}

// CellCenter returns the pixel position of the centre of a grid point,
// as a floating point value.
func (m Mapper) CellCenter(p vec.Vec2) vec.Vec2 {
	size := float64(m.cellSize)
	return vec.Vec2{
		X: float64(m.origin.X) + (p.X+0.5)*size,
		Y: float64(m.origin.Y) - (p.Y+0.5)*size,
	}
}

// Extent returns the number of whole cells between the origin and the
// left and top edges of the drawing area.
// Axes drawn from -Extent to +Extent stay inside the area.
func (m Mapper) Extent() image.Point {
	return image.Point{
		X: (m.origin.X - m.bounds.Min.X) / m.cellSize,
		Y: (m.origin.Y - m.bounds.Min.Y) / m.cellSize,
	}
}

// Visible returns the range of grid cells which are at least partially
// inside the drawing area.
func (m Mapper) Visible() image.Rectangle {
	c := m.cellSize
	return image.Rectangle{
		Min: image.Point{
			X: floorDiv(m.bounds.Min.X-m.origin.X, c),
			Y: floorDiv(m.origin.Y-m.bounds.Max.Y, c),
		},
		Max: image.Point{
			X: -floorDiv(m.origin.X-m.bounds.Max.X, c),
			Y: -floorDiv(m.bounds.Min.Y-m.origin.Y, c),
		},
	}
}

// Round returns the grid cell nearest to p.
// Halfway cases are rounded away from zero.
func Round(p vec.Vec2) image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Vec converts a grid cell to a point.
func Vec(cell image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(cell.X), Y: float64(cell.Y)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
