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

// Gridclip loads a scene from a GeoJSON file, clips it and shows the
// result on a raster grid.
//
// The picture is written to a PNG, TIFF or PDF file, or printed to the
// terminal if no output file is given.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/scene"
	"seehuhn.de/go/clip/surface"
)

type Clip struct {
	Input     string `short:"i" desc:"Scene file (GeoJSON)"`
	Algorithm string `short:"a" default:"wa" desc:"Clipping algorithm (cs, lb, sh, wa)"`
	CellSize  int    `short:"c" default:"20" desc:"Grid cell size in pixels"`
	Width     int    `short:"W" default:"800" desc:"Canvas width in pixels"`
	Height    int    `short:"H" default:"600" desc:"Canvas height in pixels"`
	Output    string `short:"o" desc:"Output file (.png, .tif, .pdf), terminal if empty or -"`
	Scale     int    `short:"s" default:"1" desc:"Image scale"`
	Verbose   bool   `short:"v" desc:"Log scene actions to stderr"`
}

type List struct{}

func main() {
	root := argp.NewCmd(&Clip{}, "Line and polygon clipping on a raster grid")
	root.AddCmd(&List{}, "list", "List the clipping algorithms")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Clip) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		scene.SetLogger(slog.New(h))
	}

	alg, err := clip.ParseAlgorithm(cmd.Algorithm)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}

	out, err := newOutput(cmd)
	if err != nil {
		return err
	}

	s := scene.New(out.canvas, cmd.CellSize)
	status, err := scene.LoadGeoJSON(s, data)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}
	if status.Ignored > 0 {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cmd.Input, status)
	}

	status = s.RunClip(alg)
	if !status.OK {
		return fmt.Errorf("%s: %s", cmd.Input, status)
	}
	return out.write(s, status)
}

// output is the destination of the picture.
type output struct {
	fname  string
	canvas scene.Canvas
	scale  int
}

func newOutput(cmd *Clip) (*output, error) {
	out := &output{fname: cmd.Output, scale: cmd.Scale}
	bounds := image.Rect(0, 0, cmd.Width, cmd.Height)

	if cmd.Output == "" || cmd.Output == "-" {
		if cols, rows, err := surface.TerminalSize(int(os.Stdout.Fd())); err == nil {
			bounds = surface.FitTerminal(cols, rows, cmd.CellSize)
		}
		out.canvas = surface.NewTerminal(bounds)
		return out, nil
	}

	if strings.ToLower(filepath.Ext(cmd.Output)) == ".pdf" {
		out.canvas = surface.NewPDF(bounds)
		return out, nil
	}

	if _, err := surface.FormatFromExt(cmd.Output); err != nil {
		return nil, err
	}
	out.canvas = surface.NewImage(cmd.Width, cmd.Height)
	return out, nil
}

func (out *output) write(s *scene.Scene, status scene.Status) error {
	switch c := out.canvas.(type) {
	case *surface.Terminal:
		if err := c.Print(os.Stdout); err != nil {
			return err
		}
		fmt.Println(status)
		return nil

	case *surface.PDF:
		for _, req := range s.Requests() {
			if p, ok := req.Shape.(scene.PolygonShape); ok {
				c.Overlay(p.Polygon, req.Color)
			}
		}
		fmt.Fprintln(os.Stderr, status)
		return c.WriteFile(out.fname)

	case *surface.Image:
		c.Caption(status.Message)
		return writeImage(out.fname, c, out.scale)
	}
	return fmt.Errorf("unsupported canvas %T", out.canvas)
}

func writeImage(fname string, img *surface.Image, scale int) (err error) {
	format, err := surface.FormatFromExt(fname)
	if err != nil {
		return err
	}

	w, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := w.Close()
		if err == nil {
			err = closeErr
		}
	}()

	return surface.Encode(w, img.Scaled(scale), format)
}

func (cmd *List) Run() error {
	for _, alg := range clip.Algorithms {
		kind := "polygons"
		if alg.IsLine() {
			kind = "lines"
		}
		fmt.Printf("%s  %-20s %s\n", alg.Abbrev(), alg, kind)
	}
	return nil
}
