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

// Command genpdf draws reference pictures for the clipping test cases.
// For every test case and every applicable algorithm, a PDF file is written
// which shows the window, the unclipped subject and the clipped result.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/testcases"
)

const (
	refDir = "testdata/reference"
	unit   = 16.0 // PDF points per grid unit
	margin = 2.0  // grid units around the picture
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			_, isLines := tc.Subject.(testcases.Lines)
			for _, alg := range clip.Algorithms {
				if alg.IsLine() != isLines {
					continue
				}
				name := category + "_" + tc.Name + "_" + alg.Abbrev()
				pdfPath := filepath.Join(refDir, name+".pdf")
				if err := generatePDF(tc, alg, pdfPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, alg clip.Algorithm, pdfPath string) error {
	in := clip.ExampleInput(tc)
	res := clip.RunExample(tc, alg)

	bbox := extent(tc.Window, in)
	paper := &pdf.Rectangle{
		URx: (bbox.URx - bbox.LLx + 2*margin) * unit,
		URy: (bbox.URy - bbox.LLy + 2*margin) * unit,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Grid coordinates from here on, y pointing up.
	page.Transform(matrix.Matrix{
		unit, 0, 0, unit,
		(margin - bbox.LLx) * unit, (margin - bbox.LLy) * unit,
	})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// clipped polygons are filled first, so that all outlines stay visible
	page.SetFillColor(color.DeviceGray(0.85))
	if outline(page, nil, res.Polygons) {
		page.Fill()
	}

	// the unclipped subject
	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(1 / unit)
	if outline(page, in.Segments, []clip.Polygon{in.Polygon}) {
		page.Stroke()
	}

	// the window
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.5 / unit)
	page.SetLineDash([]float64{4 / unit, 2 / unit}, 0)
	w := clip.WindowFromRect(tc.Window)
	page.Rectangle(w.Min.X, w.Min.Y, w.Max.X-w.Min.X, w.Max.Y-w.Min.Y)
	page.Stroke()

	// the result
	page.SetLineDash(nil, 0)
	page.SetLineWidth(3 / unit)
	if outline(page, res.Segments, res.Polygons) {
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the part of the page interface used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// outline adds segments and polygon outlines to the current path.
// The return value tells whether anything was added.
func outline(page pathBuilder, segs []clip.Segment, polys []clip.Polygon) bool {
	n := 0
	for _, s := range segs {
		page.MoveTo(s.A.X, s.A.Y)
		page.LineTo(s.B.X, s.B.Y)
		n++
	}
	for _, p := range polys {
		if len(p) > 0 {
			polygon(page, p)
			n++
		}
	}
	return n > 0
}

func polygon(page pathBuilder, p clip.Polygon) {
	page.MoveTo(p[0].X, p[0].Y)
	for _, v := range p[1:] {
		page.LineTo(v.X, v.Y)
	}
	page.ClosePath()
}

// extent returns the smallest rectangle containing the window and all
// input geometry.
func extent(win rect.Rect, in clip.Input) rect.Rect {
	b := win
	add := func(v vec.Vec2) {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	for _, s := range in.Segments {
		add(s.A)
		add(s.B)
	}
	for _, v := range in.Polygon {
		add(v)
	}
	return b
}
