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
	"bufio"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/term"

	"seehuhn.de/go/clip/grid"
)

// Terminal is a canvas which renders the grid as text, one character per
// cell. Each character is printed twice, so that cells look roughly
// square in a terminal.
type Terminal struct {
	bounds image.Rectangle
	vis    image.Rectangle // visible grid cells
	rows   [][]byte        // rows[0] is the bottom row of the grid
}

// NewTerminal returns a text canvas emulating a drawing area of the given
// size in pixels.
func NewTerminal(bounds image.Rectangle) *Terminal {
	return &Terminal{bounds: bounds}
}

// Bounds implements the scene.Canvas interface.
func (t *Terminal) Bounds() image.Rectangle {
	return t.bounds
}

// Clear implements the scene.Canvas interface.
func (t *Terminal) Clear(m grid.Mapper) {
	t.vis = m.Visible()
	t.rows = make([][]byte, t.vis.Dy())
	for i := range t.rows {
		row := make([]byte, t.vis.Dx())
		for j := range row {
			row[j] = emptyGlyph
		}
		t.rows[i] = row
	}
}

// Plot implements the scene.Canvas interface.
func (t *Terminal) Plot(cell image.Point, c color.Color) {
	if !cell.In(t.vis) {
		return
	}
	t.rows[cell.Y-t.vis.Min.Y][cell.X-t.vis.Min.X] = Glyph(c)
}

// Print writes the grid to w, top row first.
func (t *Terminal) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := len(t.rows) - 1; i >= 0; i-- {
		for _, g := range t.rows[i] {
			bw.WriteByte(g)
			bw.WriteByte(g)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String returns the text which [Terminal.Print] would write.
func (t *Terminal) String() string {
	var sb strings.Builder
	_ = t.Print(&sb)
	return sb.String()
}

const emptyGlyph = '.'

var glyphTable = []struct {
	c color.Color
	g byte
}{
	{colornames.Black, '+'},
	{colornames.Red, '#'},
	{colornames.Blue, 'o'},
	{colornames.Darkgreen, '*'},
	{colornames.Darkcyan, '='},
	{colornames.Magenta, '@'},
	{colornames.Lightgray, ':'},
	{color.White, emptyGlyph},
}

// asciiRamp orders characters from dark to light.
const asciiRamp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// Glyph returns the character used to show a cell of color c.
// Colors used by the scene have fixed glyphs, other colors are mapped to
// a character of matching brightness.
func Glyph(c color.Color) byte {
	r, g, b, a := c.RGBA()
	for _, e := range glyphTable {
		er, eg, eb, ea := e.c.RGBA()
		if r == er && g == eg && b == eb && a == ea {
			return e.g
		}
	}
	y, _, _ := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	idx := int(float64(y)/255.0*float64(len(asciiRamp)-1) + 0.5)
	return asciiRamp[idx]
}

// ErrNotTerminal is returned by [TerminalSize] if the file descriptor is
// not connected to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// TerminalSize returns the number of columns and rows of the terminal
// attached to fd.
func TerminalSize(fd int) (cols, rows int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	return term.GetSize(fd)
}

// FitTerminal returns pixel bounds for a drawing area which, at the given
// cell size, fits into a terminal with the given number of columns and
// rows. One row is left free for the status line.
// The number of cells in each direction is even, so that the grid origin
// falls on a cell corner.
func FitTerminal(cols, rows, cellSize int) image.Rectangle {
	cellSize = max(cellSize, 1)
	nx := max(cols/2, 2) &^ 1
	ny := max(rows-1, 2) &^ 1
	return image.Rect(0, 0, nx*cellSize, ny*cellSize)
}
