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

package grid

import (
	"image"
	"iter"
)

// Line returns the cells of the Bresenham line from p0 to p1.
// Both endpoints are included, and a line with p0 == p1 consists of a
// single cell. Cells are generated lazily, in order from p0 to p1, and the
// sequence can be iterated any number of times.
func Line(p0, p1 image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx := abs(p1.X - p0.X)
		dy := -abs(p1.Y - p0.Y)
		sx := 1
		if p0.X > p1.X {
			sx = -1
		}
		sy := 1
		if p0.Y > p1.Y {
			sy = -1
		}

		err := dx + dy
		x, y := p0.X, p0.Y
		for {
			if !yield(image.Point{X: x, Y: y}) {
				return
			}
			if x == p1.X && y == p1.Y {
				return
			}
			e2 := 2 * err
			if e2 > dy {
				err += dy
				x += sx
			}
			if e2 < dx {
				err += dx
				y += sy
			}
		}
	}
}

// Outline returns the cells on the boundary of the closed polygon with the
// given vertices. Each edge is rasterized with [Line]; cells where two
// edges meet may be produced more than once.
func Outline(vertices []image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		n := len(vertices)
		if n == 1 {
			yield(vertices[0])
			return
		}
		if n == 2 {
			// an open line, not a degenerate closed one
			for c := range Line(vertices[0], vertices[1]) {
				if !yield(c) {
					return
				}
			}
			return
		}
		for i := range n {
			for c := range Line(vertices[i], vertices[(i+1)%n]) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
