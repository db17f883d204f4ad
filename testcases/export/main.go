// Command export writes the clipping test cases as a GeoJSON feature
// collection, for viewing in GIS tools or loading into other programs.
// Run from the module root directory.
//
// Every feature carries the properties "case" (category and name of the
// test case) and "role", which is "window", "segment" or "polygon" as in
// scene files. The window feature also lists the expected results.
package main

import (
	"maps"
	"os"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clip/testcases"
)

const outFile = "testdata/testcases.geojson"

func main() {
	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}

	fc := geojson.NewFeatureCollection()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, f := range toFeatures(category, tc) {
				fc.Append(f)
			}
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		panic(err)
	}
}

func toFeatures(category string, tc testcases.TestCase) []*geojson.Feature {
	name := category + "_" + tc.Name

	b := orb.Bound{
		Min: orb.Point{tc.Window.LLx, tc.Window.LLy},
		Max: orb.Point{tc.Window.URx, tc.Window.URy},
	}
	win := newFeature(b.ToPolygon(), name, "window")
	win.Properties["want_accepted"] = tc.Want.Accepted
	win.Properties["want_contours"] = tc.Want.Contours
	win.Properties["want_area"] = tc.Want.Area
	res := []*geojson.Feature{win}

	switch s := tc.Subject.(type) {
	case testcases.Lines:
		for _, ab := range s.Segments {
			ls := orb.LineString{toPoint(ab[0]), toPoint(ab[1])}
			res = append(res, newFeature(ls, name, "segment"))
		}
	case testcases.Shape:
		if len(s.Vertices) == 0 {
			break
		}
		ring := make(orb.Ring, 0, len(s.Vertices)+1)
		for _, v := range s.Vertices {
			ring = append(ring, toPoint(v))
		}
		ring = append(ring, ring[0])
		res = append(res, newFeature(orb.Polygon{ring}, name, "polygon"))
	}
	return res
}

func newFeature(g orb.Geometry, name, role string) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties["case"] = name
	f.Properties["role"] = role
	return f
}

func toPoint(v vec.Vec2) orb.Point {
	return orb.Point{v.X, v.Y}
}
