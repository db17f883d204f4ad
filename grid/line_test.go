package grid

import (
	"image"
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

func TestLineEndpoints(t *testing.T) {
	origin := image.Point{}
	targets := []image.Point{
		{X: 7, Y: 3}, {X: 3, Y: 7}, {X: -3, Y: 7}, {X: -7, Y: 3},
		{X: -7, Y: -3}, {X: -3, Y: -7}, {X: 3, Y: -7}, {X: 7, Y: -3},
		{X: 5, Y: 0}, {X: 0, Y: -5}, {X: 4, Y: 4},
	}
	for _, p := range targets {
		cells := slices.Collect(Line(origin, p))
		test.T(t, cells[0], origin, p)
		test.T(t, cells[len(cells)-1], p, p)
		test.T(t, len(cells), max(abs(p.X), abs(p.Y))+1, p)

		// consecutive cells are 8-neighbours
		for i := 1; i < len(cells); i++ {
			d := cells[i].Sub(cells[i-1])
			test.That(t, abs(d.X) <= 1 && abs(d.Y) <= 1 && d != image.Point{}, p, cells)
		}

		// the reverse line covers the same number of cells
		back := slices.Collect(Line(p, origin))
		test.T(t, len(back), len(cells), p)
	}
}

func TestLineSinglePoint(t *testing.T) {
	p := image.Point{X: -4, Y: 9}
	test.T(t, slices.Collect(Line(p, p)), []image.Point{p})
}

func TestLineHorizontal(t *testing.T) {
	got := slices.Collect(Line(image.Point{X: 2, Y: 1}, image.Point{X: -1, Y: 1}))
	test.T(t, got, []image.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1}})
}

// TestLineTies pins the cells chosen where the error term sits exactly
// halfway between two candidates.
func TestLineTies(t *testing.T) {
	cases := []struct {
		p1   image.Point
		want []image.Point
	}{
		{
			p1: image.Point{X: -6, Y: -3},
			want: []image.Point{
				{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: -1}, {X: -3, Y: -1},
				{X: -4, Y: -2}, {X: -5, Y: -2}, {X: -6, Y: -3},
			},
		},
		{
			p1: image.Point{X: 6, Y: 3},
			want: []image.Point{
				{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1},
				{X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 3},
			},
		},
	}
	for _, c := range cases {
		got := slices.Collect(Line(image.Point{}, c.p1))
		test.T(t, got, c.want, c.p1)
	}
}

func TestLineRestart(t *testing.T) {
	seq := Line(image.Point{X: -3, Y: 1}, image.Point{X: 6, Y: 4})
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	test.T(t, second, first)

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	test.T(t, n, 3)
}

func TestOutline(t *testing.T) {
	square := []image.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}}
	cells := map[image.Point]bool{}
	for c := range Outline(square) {
		cells[c] = true
	}
	test.T(t, len(cells), 12)
	test.That(t, !cells[image.Point{X: 1, Y: 1}], "interior cell on the outline")

	test.T(t, slices.Collect(Outline(square[:1])), []image.Point{{X: 0, Y: 0}})
	test.T(t, len(slices.Collect(Outline(square[:2]))), 4)
	test.T(t, len(slices.Collect(Outline(nil))), 0)
}
