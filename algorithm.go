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

package clip

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the four clippers.
type Algorithm int

// These are the supported clipping algorithms.
const (
	AlgCohenSutherland Algorithm = iota
	AlgLiangBarsky
	AlgSutherlandHodgeman
	AlgWeilerAtherton
)

// Algorithms lists all algorithms in presentation order.
var Algorithms = []Algorithm{
	AlgCohenSutherland,
	AlgLiangBarsky,
	AlgSutherlandHodgeman,
	AlgWeilerAtherton,
}

func (a Algorithm) String() string {
	switch a {
	case AlgCohenSutherland:
		return "Cohen-Sutherland"
	case AlgLiangBarsky:
		return "Liang-Barsky"
	case AlgSutherlandHodgeman:
		return "Sutherland-Hodgeman"
	case AlgWeilerAtherton:
		return "Weiler-Atherton"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts an algorithm name to an Algorithm.
// Both the full name and the two-letter abbreviation ("cs", "lb", "sh",
// "wa") are accepted, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Algorithms {
		if key == strings.ToLower(a.String()) || key == a.Abbrev() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown clipping algorithm %q", s)
}

// Abbrev returns the two-letter abbreviation of the algorithm name.
func (a Algorithm) Abbrev() string {
	switch a {
	case AlgCohenSutherland:
		return "cs"
	case AlgLiangBarsky:
		return "lb"
	case AlgSutherlandHodgeman:
		return "sh"
	case AlgWeilerAtherton:
		return "wa"
	}
	return ""
}

// IsLine reports whether a clips line segments rather than polygons.
func (a Algorithm) IsLine() bool {
	return a == AlgCohenSutherland || a == AlgLiangBarsky
}

// Input holds the geometry to be clipped. Line algorithms use Segments,
// polygon algorithms use Polygon.
type Input struct {
	Segments []Segment
	Polygon  Polygon
}

// Result is the output of [Run].
type Result struct {
	Algorithm Algorithm

	// Segments holds the accepted, clipped segments, in input order.
	Segments []Segment

	// Rejected is the number of input segments completely outside the
	// window.
	Rejected int

	// Polygons holds the output contours. Sutherland-Hodgeman produces at
	// most one contour, Weiler-Atherton any number.
	Polygons []Polygon

	// Relation is the position of the input polygon relative to the window.
	// It is only set by the polygon algorithms.
	Relation Relation
}

// Run clips the input with the given algorithm.
// The input is not modified, and the result does not share memory with it.
func Run(alg Algorithm, in Input, w Window) Result {
	res := Result{Algorithm: alg}
	switch alg {
	case AlgCohenSutherland, AlgLiangBarsky:
		clipSegment := CohenSutherland
		if alg == AlgLiangBarsky {
			clipSegment = LiangBarsky
		}
		for _, s := range in.Segments {
			if c, ok := clipSegment(s, w); ok {
				res.Segments = append(res.Segments, c)
			} else {
				res.Rejected++
			}
		}
	case AlgSutherlandHodgeman:
		if out := SutherlandHodgeman(in.Polygon, w); len(out) > 0 {
			res.Polygons = []Polygon{out}
		}
		res.Relation = Relate(in.Polygon, w)
	case AlgWeilerAtherton:
		res.Polygons = WeilerAtherton(in.Polygon, w)
		res.Relation = Relate(in.Polygon, w)
	}
	return res
}
