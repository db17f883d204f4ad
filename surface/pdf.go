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

package surface

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/grid"
)

// PDF is a canvas which records the plotted cells and writes them as a
// single page PDF file. One pixel of the drawing area corresponds to one
// PDF point. Colors are converted to grey levels.
type PDF struct {
	bounds   image.Rectangle
	mapper   grid.Mapper
	cells    []plotted
	overlays []overlay
}

type plotted struct {
	cell image.Point
	gray float64
}

type overlay struct {
	outline *path.Data
	gray    float64
}

// NewPDF returns an empty PDF canvas with the given size in pixels.
func NewPDF(bounds image.Rectangle) *PDF {
	return &PDF{bounds: bounds}
}

// Bounds implements the scene.Canvas interface.
func (p *PDF) Bounds() image.Rectangle {
	return p.bounds
}

// Clear implements the scene.Canvas interface.
// All recorded cells and overlays are discarded.
func (p *PDF) Clear(m grid.Mapper) {
	p.mapper = m
	p.cells = p.cells[:0]
	p.overlays = p.overlays[:0]
}

// Plot implements the scene.Canvas interface.
func (p *PDF) Plot(cell image.Point, c color.Color) {
	if p.mapper.CellSize() == 0 || !cell.In(p.mapper.Visible()) {
		return
	}
	p.cells = append(p.cells, plotted{cell: cell, gray: luminance(c)})
}

// Overlay adds the exact outline of a polygon, given in grid coordinates,
// on top of the plotted cells.
func (p *PDF) Overlay(poly clip.Polygon, c color.Color) {
	if len(poly) < 2 {
		return
	}
	p.overlays = append(p.overlays, overlay{outline: poly.Path(), gray: luminance(c)})
}

// NumCells returns the number of cells plotted since the last call to Clear.
func (p *PDF) NumCells() int {
	return len(p.cells)
}

// WriteFile writes the page to the named file.
func (p *PDF) WriteFile(fname string) error {
	width := float64(p.bounds.Dx())
	height := float64(p.bounds.Dy())
	paper := &pdf.Rectangle{URx: width, URy: height}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left; pixel coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	for _, c := range p.cells {
		r := p.mapper.CellRect(c.cell).Sub(p.bounds.Min)
		page.SetFillColor(pdfcolor.DeviceGray(c.gray))
		page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		page.Fill()
	}

	if len(p.overlays) > 0 {
		// From here on, coordinates are grid coordinates.
		size := float64(p.mapper.CellSize())
		o := p.mapper.CellCenter(vec.Vec2{})
		o.X -= float64(p.bounds.Min.X)
		o.Y -= float64(p.bounds.Min.Y)
		page.Transform(matrix.Matrix{size, 0, 0, -size, o.X, o.Y})
		page.SetLineWidth(1.5 / size)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for _, ov := range p.overlays {
			page.SetStrokeColor(pdfcolor.DeviceGray(ov.gray))
			drawPath(page, ov.outline)
			page.Stroke()
		}
	}

	return page.Close()
}

// pathBuilder is the subset of the page methods needed to draw an outline.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func drawPath(page pathBuilder, p *path.Data) {
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[i].X, p.Coords[i].Y)
			i++
		case path.CmdLineTo:
			page.LineTo(p.Coords[i].X, p.Coords[i].Y)
			i++
		case path.CmdQuadTo:
			i += 2
		case path.CmdCubeTo:
			i += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// luminance returns the grey level of c, between 0 (black) and 1 (white).
func luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	y, _, _ := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	return float64(y) / 255
}
