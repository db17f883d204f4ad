package surface

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/clip/grid"
)

func TestTerminalPrint(t *testing.T) {
	term := NewTerminal(image.Rect(0, 0, 80, 60))
	term.Clear(grid.NewMapper(term.Bounds(), 10))

	term.Plot(image.Point{}, colornames.Red)
	term.Plot(image.Point{X: -4, Y: 2}, colornames.Blue)
	term.Plot(image.Point{X: 3, Y: -3}, colornames.Black)
	term.Plot(image.Point{X: 4, Y: 0}, colornames.Red) // not visible

	empty := strings.Repeat("..", 8)
	want := []string{
		"oo" + empty[2:],
		empty,
		empty[:8] + "##" + empty[10:],
		empty,
		empty,
		empty[:14] + "++",
	}
	test.String(t, term.String(), strings.Join(want, "\n")+"\n")
}

func TestTerminalClear(t *testing.T) {
	term := NewTerminal(image.Rect(0, 0, 40, 40))
	m := grid.NewMapper(term.Bounds(), 10)
	term.Clear(m)
	term.Plot(image.Point{X: 1, Y: 1}, colornames.Blue)
	term.Clear(m)
	test.That(t, !strings.ContainsRune(term.String(), 'o'))
}

func TestTerminalBeforeClear(t *testing.T) {
	term := NewTerminal(image.Rect(0, 0, 40, 40))
	term.Plot(image.Point{}, colornames.Blue)
	test.String(t, term.String(), "")
}

func TestGlyph(t *testing.T) {
	test.T(t, Glyph(colornames.Red), byte('#'))
	test.T(t, Glyph(colornames.Blue), byte('o'))
	test.T(t, Glyph(color.Black), byte('+'))
	test.T(t, Glyph(color.White), byte('.'))

	// colors without a fixed glyph use the brightness ramp
	test.T(t, Glyph(color.RGBA{A: 255, B: 1}), byte('$'))
	test.T(t, Glyph(color.Gray{Y: 254}), byte(' '))
}

func TestFitTerminal(t *testing.T) {
	test.T(t, FitTerminal(80, 25, 10), image.Rect(0, 0, 400, 240))
	test.T(t, FitTerminal(81, 26, 1), image.Rect(0, 0, 40, 24))
	test.T(t, FitTerminal(0, 0, 0), image.Rect(0, 0, 2, 2))

	// the grid fits exactly
	b := FitTerminal(100, 31, 7)
	m := grid.NewMapper(b, 7)
	test.T(t, m.Visible().Dx(), 50)
	test.T(t, m.Visible().Dy(), 30)
}

func TestTerminalSizeNoTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	test.Error(t, err)
	defer f.Close()

	_, _, err = TerminalSize(int(f.Fd()))
	test.T(t, err, ErrNotTerminal)
}
