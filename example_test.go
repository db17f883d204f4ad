package clip

import (
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/clip/testcases"
)

func TestExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				switch tc.Subject.(type) {
				case testcases.Lines:
					checkLineExample(t, tc)
				case testcases.Shape:
					checkPolygonExample(t, tc)
				default:
					t.Fatalf("unknown subject type %T", tc.Subject)
				}
			})
		}
	}
}

func checkLineExample(t *testing.T, tc testcases.TestCase) {
	in := ExampleInput(tc)
	cs := RunExample(tc, AlgCohenSutherland)
	lb := RunExample(tc, AlgLiangBarsky)

	for _, res := range []Result{cs, lb} {
		if len(res.Segments) != tc.Want.Accepted {
			t.Errorf("%s: %d segments accepted, want %d",
				res.Algorithm, len(res.Segments), tc.Want.Accepted)
		}
		if len(res.Segments)+res.Rejected != len(in.Segments) {
			t.Errorf("%s: %d accepted + %d rejected != %d input segments",
				res.Algorithm, len(res.Segments), res.Rejected, len(in.Segments))
		}
	}
	if len(cs.Segments) != len(lb.Segments) {
		return
	}
	for i := range cs.Segments {
		if !nearSegment(cs.Segments[i], lb.Segments[i], 1e-9) {
			t.Errorf("segment %d: %v vs %v", i, cs.Segments[i], lb.Segments[i])
		}
	}

	// polygon algorithms ignore line input
	if res := RunExample(tc, AlgWeilerAtherton); len(res.Polygons) != 0 {
		t.Errorf("Weiler-Atherton produced output for line input")
	}
}

func checkPolygonExample(t *testing.T, tc testcases.TestCase) {
	wa := RunExample(tc, AlgWeilerAtherton)
	if len(wa.Polygons) != tc.Want.Contours {
		t.Errorf("Weiler-Atherton: %d contours, want %d", len(wa.Polygons), tc.Want.Contours)
	}
	if got := area(wa.Polygons); math.Abs(got-tc.Want.Area) > 1e-9 {
		t.Errorf("Weiler-Atherton: area %g, want %g", got, tc.Want.Area)
	}

	sh := RunExample(tc, AlgSutherlandHodgeman)
	if len(sh.Polygons) > 1 {
		t.Errorf("Sutherland-Hodgeman: %d contours", len(sh.Polygons))
	}
	if got := area(sh.Polygons); math.Abs(got-tc.Want.Area) > 1e-9 {
		t.Errorf("Sutherland-Hodgeman: area %g, want %g", got, tc.Want.Area)
	}

	// the input is left alone
	in := ExampleInput(tc)
	if shape := tc.Subject.(testcases.Shape); !slices.Equal(in.Polygon, Polygon(shape.Vertices)) {
		t.Errorf("test case geometry was modified")
	}
}

func TestAlgorithmNames(t *testing.T) {
	for _, alg := range Algorithms {
		got, err := ParseAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", alg.String(), got, err)
		}
		got, err = ParseAlgorithm(alg.Abbrev())
		if err != nil || got != alg {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", alg.Abbrev(), got, err)
		}
	}
	if _, err := ParseAlgorithm("bresenham"); err == nil {
		t.Error("unknown algorithm name accepted")
	}
	if !AlgLiangBarsky.IsLine() || AlgWeilerAtherton.IsLine() {
		t.Error("IsLine misclassifies algorithms")
	}
}

func TestRunDoesNotAlias(t *testing.T) {
	w := NewWindow(vec2(-5, -5), vec2(5, 5))
	in := Input{
		Segments: []Segment{{A: vec2(-1, -1), B: vec2(1, 2)}},
		Polygon:  Polygon{vec2(-1, -1), vec2(1, -1), vec2(0, 1)},
	}

	lb := Run(AlgLiangBarsky, in, w)
	lb.Segments[0].A.X = 42
	if in.Segments[0].A.X != -1 {
		t.Error("line result aliases the input")
	}

	for _, alg := range []Algorithm{AlgSutherlandHodgeman, AlgWeilerAtherton} {
		res := Run(alg, in, w)
		if len(res.Polygons) != 1 {
			t.Fatalf("%s: got %d polygons", alg, len(res.Polygons))
		}
		res.Polygons[0][0].X = 42
		if in.Polygon[0].X != -1 {
			t.Errorf("%s: polygon result aliases the input", alg)
		}
	}
}
