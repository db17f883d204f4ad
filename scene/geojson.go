package scene

import (
	"fmt"
	"image"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/grid"
	"seehuhn.de/go/geom/vec"
)

// Values of the "role" property of scene file features.
const (
	rolePolygon = "polygon"
	roleSegment = "segment"
	roleWindow  = "window"
	roleClick   = "click"
)

// MarshalGeoJSON encodes the geometry of a scene as a GeoJSON feature
// collection. The polygon, the line segments, the clip window and pending
// clicks become separate features, distinguished by a "role" property.
// Coordinates are grid coordinates.
func MarshalGeoJSON(s *Scene) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	if len(s.polygon) >= 3 {
		fc.Append(newFeature(orb.Polygon{toRing(s.polygon)}, rolePolygon))
	}
	for _, seg := range s.segments {
		ls := orb.LineString{toPoint(seg.A), toPoint(seg.B)}
		fc.Append(newFeature(ls, roleSegment))
	}
	if s.windowSet {
		b := orb.Bound{Min: toPoint(s.window.Min), Max: toPoint(s.window.Max)}
		fc.Append(newFeature(b.ToPolygon(), roleWindow))
	}
	for _, c := range s.clicks {
		fc.Append(newFeature(toPoint(grid.Vec(c)), roleClick))
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding scene: %w", err)
	}
	return data, nil
}

// LoadGeoJSON adds the geometry from a GeoJSON feature collection to the
// scene, in the format written by [MarshalGeoJSON].
//
// The features are replayed as clicks followed by the matching commit
// action, so the usual rules apply: a new polygon replaces the old one,
// segments are added and a window replaces the previous window.
// Coordinates are rounded to the nearest grid cell. Features which cannot
// be used are skipped and counted in the Ignored field of the returned
// status. This includes features with coordinates which are not finite or
// lie far outside the visible grid. An error is only returned if data is not a valid feature
// collection. Clicks which are pending when LoadGeoJSON is called become
// part of the first loaded shape, so normally s should be empty.
func LoadGeoJSON(s *Scene, data []byte) (Status, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Status{}, fmt.Errorf("decoding scene: %w", err)
	}

	loaded, skipped := 0, 0
	for i, f := range fc.Features {
		if loadFeature(s, f) {
			loaded++
		} else {
			skipped++
			Logger().Info("scene: skipping feature", "index", i)
		}
	}
	return done(loaded, skipped, "Loaded %d shapes, skipped %d.", loaded, skipped), nil
}

func loadFeature(s *Scene, f *geojson.Feature) bool {
	role, _ := f.Properties["role"].(string)
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return false
		}
		ring := g[0]
		if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
			ring = ring[:len(ring)-1]
		}
		switch role {
		case rolePolygon, "":
			cells, ok := s.toCells(ring)
			if !ok || len(cells) < 3 {
				return false
			}
			clickCells(s, cells)
			return s.CommitPolygon().OK
		case roleWindow:
			b := g.Bound()
			cells, ok := s.toCells([]orb.Point{b.Min, b.Max})
			if !ok {
				return false
			}
			clickCells(s, cells)
			return s.SetWindow().OK
		}
	case orb.LineString:
		if (role != roleSegment && role != "") || len(g) != 2 {
			return false
		}
		cells, ok := s.toCells(g)
		if !ok {
			return false
		}
		clickCells(s, cells)
		return s.CommitLine().OK
	case orb.Point:
		if role != roleClick && role != "" {
			return false
		}
		cells, ok := s.toCells([]orb.Point{g})
		if !ok {
			return false
		}
		clickCells(s, cells)
		return true
	}
	return false
}

func clickCells(s *Scene, cells []image.Point) {
	for _, c := range cells {
		s.ClickGrid(c)
	}
}

// toCells rounds the points to grid cells. It fails if any coordinate is
// not finite or lies further than one drawing area outside the visible
// part of the grid.
func (s *Scene) toCells(pts []orb.Point) ([]image.Point, bool) {
	vis := s.mapper.Visible()
	margin := max(vis.Dx(), vis.Dy())
	lo := float64(min(vis.Min.X, vis.Min.Y) - margin)
	hi := float64(max(vis.Max.X, vis.Max.Y) + margin)

	cells := make([]image.Point, 0, len(pts))
	for _, pt := range pts {
		for _, v := range pt {
			if math.IsNaN(v) || v < lo || v > hi {
				return nil, false
			}
		}
		cells = append(cells, toCell(pt))
	}
	return cells, true
}

func newFeature(g orb.Geometry, role string) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties["role"] = role
	return f
}

func toPoint(v vec.Vec2) orb.Point {
	return orb.Point{v.X, v.Y}
}

func toRing(p clip.Polygon) orb.Ring {
	ring := make(orb.Ring, 0, len(p)+1)
	for _, v := range p {
		ring = append(ring, toPoint(v))
	}
	return append(ring, ring[0])
}

func toCell(pt orb.Point) image.Point {
	return grid.Round(vec.Vec2{X: pt[0], Y: pt[1]})
}
