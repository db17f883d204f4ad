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

// Package surface provides canvases which a scene can draw onto: raster
// images, text for a terminal, and PDF documents.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/clip/grid"
)

// GridColor is used for the lines between grid cells.
var GridColor color.Color = colornames.Gainsboro

// Image is a canvas backed by an RGBA image.
type Image struct {
	img    *image.RGBA
	mapper grid.Mapper
}

// NewImage allocates a white image with the given size in pixels.
func NewImage(width, height int) *Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Image{img: img}
}

// Bounds implements the scene.Canvas interface.
func (s *Image) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Clear implements the scene.Canvas interface.
// The image is painted white and grid lines are drawn along the left and
// top edge of every cell.
func (s *Image) Clear(m grid.Mapper) {
	s.mapper = m
	b := s.img.Bounds()
	draw.Draw(s.img, b, image.NewUniform(color.White), image.Point{}, draw.Src)

	size := m.CellSize()
	if size < 3 {
		// the lines would cover most of the picture
		return
	}
	line := image.NewUniform(GridColor)
	vis := m.Visible()
	for x := vis.Min.X; x < vis.Max.X; x++ {
		r := m.CellRect(image.Point{X: x})
		col := image.Rect(r.Min.X, b.Min.Y, r.Min.X+1, b.Max.Y).Intersect(b)
		draw.Draw(s.img, col, line, image.Point{}, draw.Src)
	}
	for y := vis.Min.Y; y < vis.Max.Y; y++ {
		r := m.CellRect(image.Point{Y: y})
		row := image.Rect(b.Min.X, r.Min.Y, b.Max.X, r.Min.Y+1).Intersect(b)
		draw.Draw(s.img, row, line, image.Point{}, draw.Src)
	}
}

// Plot implements the scene.Canvas interface.
// Cells outside the image are ignored.
func (s *Image) Plot(cell image.Point, c color.Color) {
	r := s.mapper.CellRect(cell)
	if s.mapper.CellSize() >= 3 {
		r.Min = r.Min.Add(image.Point{X: 1, Y: 1})
	}
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Caption writes a line of text into the bottom left corner of the image.
func (s *Image) Caption(msg string) {
	if msg == "" {
		return
	}
	b := s.img.Bounds()
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	width := d.MeasureString(msg).Ceil()
	band := image.Rect(b.Min.X, b.Max.Y-face.Height-4, b.Min.X+width+8, b.Max.Y).Intersect(b)
	draw.Draw(s.img, band, image.NewUniform(color.White), image.Point{}, draw.Src)

	d.Dot = fixed.P(b.Min.X+4, b.Max.Y-face.Descent-2)
	d.DrawString(msg)
}

// Image returns the underlying image.
func (s *Image) Image() *image.RGBA {
	return s.img
}

// Scaled returns a copy of the image, enlarged by the factor k using
// nearest neighbour interpolation. For k <= 1 the image itself is returned.
func (s *Image) Scaled(k int) *image.RGBA {
	if k <= 1 {
		return s.img
	}
	src := s.img.Bounds()
	rect := image.Rect(0, 0, src.Dx()*k, src.Dy()*k)
	dst := image.NewRGBA(rect)
	draw.NearestNeighbor.Scale(dst, rect, s.img, src, draw.Src, nil)
	return dst
}

// Format is an image file format.
type Format int

// These are the supported image file formats.
const (
	PNG Format = iota
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case TIFF:
		return "TIFF"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned when a file name has no recognised image
// extension.
var ErrUnknownFormat = errors.New("output extension must be PNG or TIFF")

// FormatFromExt determines the image format from the extension of a
// file name.
func FormatFromExt(fname string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%q: %w", fname, ErrUnknownFormat)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return ErrUnknownFormat
}
