package clip

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"seehuhn.de/go/clip/testcases"
)

// RunExample clips the geometry of a test case with the given algorithm.
// Test cases with line subjects give an empty result for the polygon
// algorithms and vice versa.
func RunExample(tc testcases.TestCase, alg Algorithm) Result {
	return Run(alg, ExampleInput(tc), WindowFromRect(tc.Window))
}

// ExampleInput converts the subject of a test case to clipper input.
func ExampleInput(tc testcases.TestCase) Input {
	var in Input
	switch s := tc.Subject.(type) {
	case testcases.Lines:
		for _, ab := range s.Segments {
			in.Segments = append(in.Segments, Segment{A: ab[0], B: ab[1]})
		}
	case testcases.Shape:
		in.Polygon = Polygon(s.Vertices).Clone()
	}
	return in
}
