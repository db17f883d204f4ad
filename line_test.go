package clip

import (
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestOutCode(t *testing.T) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	cases := []struct {
		p    vec.Vec2
		want Code
	}{
		{vec.Vec2{X: 0, Y: 0}, Inside},
		{vec.Vec2{X: 5, Y: -5}, Inside},
		{vec.Vec2{X: -6, Y: 0}, Left},
		{vec.Vec2{X: 6, Y: 0}, Right},
		{vec.Vec2{X: 0, Y: -6}, Bottom},
		{vec.Vec2{X: 0, Y: 6}, Top},
		{vec.Vec2{X: -6, Y: 6}, Left | Top},
		{vec.Vec2{X: 6, Y: -6}, Right | Bottom},
	}
	for _, c := range cases {
		if got := OutCode(c.p, w); got != c.want {
			t.Errorf("OutCode(%v) = %04b, want %04b", c.p, got, c.want)
		}
	}
}

func TestDiagonalSegment(t *testing.T) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	s := Segment{A: vec.Vec2{X: -15, Y: -15}, B: vec.Vec2{X: 15, Y: 15}}
	want := Segment{A: vec.Vec2{X: -5, Y: -5}, B: vec.Vec2{X: 5, Y: 5}}

	for name, clipper := range map[string]func(Segment, Window) (Segment, bool){
		"CohenSutherland": CohenSutherland,
		"LiangBarsky":     LiangBarsky,
	} {
		got, ok := clipper(s, w)
		if !ok {
			t.Errorf("%s: segment rejected", name)
			continue
		}
		if !nearSegment(got, want, 1e-9) {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
}

// TestFourBoundaryClips covers a segment whose endpoints both lie in
// corner regions, so that each endpoint is clipped twice.
func TestFourBoundaryClips(t *testing.T) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	s := Segment{A: vec.Vec2{X: -16, Y: -6}, B: vec.Vec2{X: 12, Y: 8}}
	want := Segment{A: vec.Vec2{X: -5, Y: -0.5}, B: vec.Vec2{X: 5, Y: 4.5}}

	if OutCode(s.A, w) != Left|Bottom || OutCode(s.B, w) != Right|Top {
		t.Fatal("endpoints are not in corner regions")
	}
	got, ok := CohenSutherland(s, w)
	if !ok || !nearSegment(got, want, 1e-9) {
		t.Errorf("got %v, %t, want %v", got, ok, want)
	}
}

func TestSegmentDirection(t *testing.T) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	s := Segment{A: vec.Vec2{X: 20, Y: 1}, B: vec.Vec2{X: -20, Y: 1}}

	cs, ok1 := CohenSutherland(s, w)
	lb, ok2 := LiangBarsky(s, w)
	if !ok1 || !ok2 {
		t.Fatal("segment rejected")
	}
	if cs.A.X != 5 || cs.B.X != -5 {
		t.Errorf("Cohen-Sutherland reversed the segment: %v", cs)
	}
	if lb.A.X != 5 || lb.B.X != -5 {
		t.Errorf("Liang-Barsky reversed the segment: %v", lb)
	}
}

func TestLineClipIdempotent(t *testing.T) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	s := Segment{A: vec.Vec2{X: -4.25, Y: 1.5}, B: vec.Vec2{X: 3.125, Y: -2}}

	if got, ok := CohenSutherland(s, w); !ok || got != s {
		t.Errorf("Cohen-Sutherland changed an inside segment: %v", got)
	}
	if got, ok := LiangBarsky(s, w); !ok || got != s {
		t.Errorf("Liang-Barsky changed an inside segment: %v", got)
	}

	// clipping twice gives the same result as clipping once
	long := Segment{A: vec.Vec2{X: -13, Y: 2}, B: vec.Vec2{X: 9, Y: -7}}
	once, _ := LiangBarsky(long, w)
	twice, ok := LiangBarsky(once, w)
	if !ok || !nearSegment(once, twice, 1e-9) {
		t.Errorf("second clip changed %v to %v", once, twice)
	}
}

func TestParallelOutside(t *testing.T) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	for _, s := range []Segment{
		{A: vec.Vec2{X: -10, Y: 7}, B: vec.Vec2{X: 10, Y: 7}},
		{A: vec.Vec2{X: -6, Y: -10}, B: vec.Vec2{X: -6, Y: 10}},
	} {
		if _, ok := CohenSutherland(s, w); ok {
			t.Errorf("Cohen-Sutherland accepted %v", s)
		}
		if _, ok := LiangBarsky(s, w); ok {
			t.Errorf("Liang-Barsky accepted %v", s)
		}
	}
}

// TestLineClippersAgree checks that both line clippers give the same
// result on random input.
func TestLineClippersAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 {
		return math.Round((rng.Float64()*40-20)*4) / 4
	}

	for i := range 5000 {
		w := NewWindow(vec.Vec2{X: coord(), Y: coord()}, vec.Vec2{X: coord(), Y: coord()})
		s := Segment{
			A: vec.Vec2{X: coord(), Y: coord()},
			B: vec.Vec2{X: coord(), Y: coord()},
		}

		cs, ok1 := CohenSutherland(s, w)
		lb, ok2 := LiangBarsky(s, w)
		if ok1 != ok2 {
			// Both answers are acceptable if the segment only grazes the
			// window.
			if ok1 && segmentLength(cs) < 1e-6 || ok2 && segmentLength(lb) < 1e-6 {
				continue
			}
			t.Fatalf("%d: %v vs %v: accept %t vs %t", i, s, w, ok1, ok2)
		}
		if ok1 && !nearSegment(cs, lb, 1e-6) {
			t.Errorf("%d: %v vs %v: got %v and %v", i, s, w, cs, lb)
		}
		if ok1 && (!near(w, cs.A) || !near(w, cs.B)) {
			t.Errorf("%d: clipped segment %v leaves window %v", i, cs, w)
		}
	}
}

func nearSegment(a, b Segment, eps float64) bool {
	return a.A.Sub(b.A).Length() <= eps && a.B.Sub(b.B).Length() <= eps
}

func segmentLength(s Segment) float64 {
	return s.B.Sub(s.A).Length()
}

// near reports whether p lies in w, allowing for rounding errors.
func near(w Window, p vec.Vec2) bool {
	const eps = 1e-9
	return p.X >= w.Min.X-eps && p.X <= w.Max.X+eps &&
		p.Y >= w.Min.Y-eps && p.Y <= w.Max.Y+eps
}

func BenchmarkLiangBarsky(b *testing.B) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	s := Segment{A: vec.Vec2{X: -13, Y: 2}, B: vec.Vec2{X: 9, Y: -7}}
	for b.Loop() {
		LiangBarsky(s, w)
	}
}

func BenchmarkCohenSutherland(b *testing.B) {
	w := NewWindow(vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 5, Y: 5})
	s := Segment{A: vec.Vec2{X: -13, Y: 2}, B: vec.Vec2{X: 9, Y: -7}}
	for b.Loop() {
		CohenSutherland(s, w)
	}
}
