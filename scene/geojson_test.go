package scene

import (
	"image"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/test"

	"seehuhn.de/go/clip"
)

func TestGeoJSONRoundTrip(t *testing.T) {
	s := New(newRecorder(), 10)
	clickAll(s, pt(-10, -3), pt(10, -3), pt(10, -1), pt(-8, -1))
	s.CommitPolygon()
	clickAll(s, pt(-9, 7), pt(9, -7))
	s.CommitLine()
	clickAll(s, pt(1, 2), pt(3, 4))
	s.CommitLine()
	clickAll(s, pt(5, 5), pt(-5, -5))
	s.SetWindow()
	s.ClickGrid(pt(2, -2))

	data, err := MarshalGeoJSON(s)
	test.Error(t, err)

	s2 := New(newRecorder(), 10)
	st, err := LoadGeoJSON(s2, data)
	test.Error(t, err)
	test.T(t, st.Accepted, 5)
	test.T(t, st.Ignored, 0)

	test.T(t, s2.Polygon(), s.Polygon())
	test.T(t, s2.Segments(), s.Segments())
	w1, _ := s.Window()
	w2, ok := s2.Window()
	test.That(t, ok)
	test.T(t, w2, w1)
	test.T(t, s2.Points(), []image.Point{pt(2, -2)})

	// the loaded scene can be clipped right away
	st = s2.RunClip(clip.AlgWeilerAtherton)
	test.That(t, st.OK, st.Message)
}

func TestLoadGeoJSONSkips(t *testing.T) {
	fc := geojson.NewFeatureCollection()

	short := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 1}, {0, 0}}})
	short.Properties["role"] = rolePolygon
	fc.Append(short)

	long := geojson.NewFeature(orb.LineString{{0, 0}, {1, 1}, {2, 0}})
	long.Properties["role"] = roleSegment
	fc.Append(long)

	fc.Append(geojson.NewFeature(orb.MultiPoint{{0, 0}}))

	// coordinates far outside the grid would take forever to draw
	far := geojson.NewFeature(orb.LineString{{1e18, 0}, {0, 0}})
	far.Properties["role"] = roleSegment
	fc.Append(far)

	farWindow := geojson.NewFeature(orb.Bound{Min: orb.Point{-1e12, 0}, Max: orb.Point{5, 5}}.ToPolygon())
	farWindow.Properties["role"] = roleWindow
	fc.Append(farWindow)

	tri := geojson.NewFeature(orb.Polygon{{{0, 0}, {4.4, 0}, {0, 3.6}, {0, 0}}})
	fc.Append(tri) // no role: treated as the polygon

	data, err := fc.MarshalJSON()
	test.Error(t, err)

	s := New(newRecorder(), 10)
	st, err := LoadGeoJSON(s, data)
	test.Error(t, err)
	test.T(t, st.Accepted, 1)
	test.T(t, st.Ignored, 5)
	test.T(t, len(s.Polygon()), 3)
	test.T(t, s.Polygon()[2].Y, 4.0)
	test.T(t, len(s.Segments()), 0)
	_, ok := s.Window()
	test.That(t, !ok, "window was set")
	test.T(t, len(s.Points()), 0)
}

func TestToCells(t *testing.T) {
	s := New(newRecorder(), 10) // 800x600 pixels, 80x60 cells

	cells, ok := s.toCells([]orb.Point{{-4.4, 2.5}, {119, -89}})
	test.That(t, ok)
	test.T(t, cells, []image.Point{{X: -4, Y: 3}, {X: 119, Y: -89}})

	for _, pt := range []orb.Point{
		{1e18, 0},
		{0, -1e9},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	} {
		_, ok := s.toCells([]orb.Point{{0, 0}, pt})
		test.That(t, !ok, pt)
	}
}

func TestLoadGeoJSONInvalid(t *testing.T) {
	s := New(newRecorder(), 10)
	_, err := LoadGeoJSON(s, []byte("{not json"))
	test.That(t, err != nil)
	test.That(t, strings.HasPrefix(err.Error(), "decoding scene:"), err)
}
