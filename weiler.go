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
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// vertexNode is an entry in one of the two Weiler-Atherton vertex lists.
type vertexNode struct {
	pos            vec.Vec2
	isIntersection bool
	isEntry        bool // subject goes from outside to inside the window here
	link           int  // index of the matching node in the other list, or -1
	visited        bool
}

// crossing is a point where a subject edge crosses a window edge.
type crossing struct {
	pos     vec.Vec2
	subject int     // index of the subject edge
	ts      float64 // position along the subject edge, in [0, 1)
	window  int     // index of the window edge
	tw      float64 // position along the window edge, in [0, 1)
	isEntry bool
}

// insertion is a node waiting to be inserted into a vertex list.
type insertion struct {
	at   int     // list index of the new node, before any insertion happens
	t    float64 // position along the edge, orders nodes with equal at
	node vertexNode
}

// WeilerAtherton computes the intersection of p with w.
//
// Unlike [SutherlandHodgeman], the result can consist of any number of
// separate contours: none if p and w do not overlap, several if a concave p
// enters the window more than once. If p lies completely inside w, the
// result is a copy of p. If w lies completely inside p, the result is the
// window rectangle. Output contours have the same winding direction as p.
// Polygons with fewer than three vertices give no output.
//
// A self-intersecting p is first cut into simple loops at the points where
// its boundary crosses itself. Each loop is clipped on its own, and its
// contours follow the winding direction of the loop.
func WeilerAtherton(p Polygon, w Window) []Polygon {
	if len(p) < 3 {
		return nil
	}
	var res []Polygon
	for _, loop := range simpleLoops(p) {
		res = append(res, clipLoop(loop, w)...)
	}
	return res
}

// clipLoop runs Weiler-Atherton for a polygon without self-crossings.
func clipLoop(p Polygon, w Window) []Polygon {
	// The traversal below requires the subject to have the same
	// orientation as the window, which is counter-clockwise.
	subject := p.Clone()
	clockwise := subject.signedArea() < 0
	if clockwise {
		slices.Reverse(subject)
	}
	corners := w.Corners()

	crossings := findCrossings(subject, corners, w)
	if len(crossings) == 0 {
		return enclosure(p, w, clockwise)
	}

	subjectList := buildList(subject, crossings, func(c crossing) (int, float64) {
		return c.subject, c.ts
	})
	windowList := buildList(corners, crossings, func(c crossing) (int, float64) {
		return c.window, c.tw
	})
	linkLists(subjectList, windowList)

	var res []Polygon
	for i := range subjectList {
		n := &subjectList[i]
		if !n.isIntersection || !n.isEntry || n.visited {
			continue
		}
		contour := traceContour(subjectList, windowList, i)
		if len(contour) < 3 {
			continue
		}
		if !insideWindow(contour, w) {
			// Degenerate input confused the traversal. The single
			// Sutherland-Hodgeman polygon is always inside w.
			if out := SutherlandHodgeman(p, w); len(out) >= 3 {
				return []Polygon{out}
			}
			return nil
		}
		if clockwise {
			slices.Reverse(contour)
		}
		res = append(res, contour)
	}
	return res
}

// simpleLoops cuts p into loops at the points where two non-adjacent
// edges cross. Touching edges and shared vertices do not cut the polygon.
// Loops with fewer than three distinct vertices are dropped.
func simpleLoops(p Polygon) []Polygon {
	var res []Polygon
	todo := []Polygon{p}
	// every cut removes at least one self-crossing
	budget := len(p) * len(p)
	for len(todo) > 0 {
		q := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		i, j, x, ok := selfCrossing(q)
		if !ok || budget <= 0 {
			if q = dedup(q.Clone()); len(q) >= 3 {
				res = append(res, q)
			}
			continue
		}
		budget--

		// q[i]-q[i+1] and q[j]-q[j+1] cross at x, with i < j.
		inner := make(Polygon, 0, j-i+1)
		inner = append(inner, x)
		inner = append(inner, q[i+1:j+1]...)

		outer := make(Polygon, 0, len(q)-(j-i)+1)
		outer = append(outer, x)
		outer = append(outer, q[j+1:]...)
		outer = append(outer, q[:i+1]...)

		todo = append(todo, outer, inner)
	}
	slices.Reverse(res)
	return res
}

// selfCrossing finds two non-adjacent edges of p which cross at a point
// inside both edges. The edges are p[i]-p[i+1] and p[j]-p[j+1] with i < j.
func selfCrossing(p Polygon) (i, j int, x vec.Vec2, ok bool) {
	n := len(p)
	for i = 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		for j = i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent via the closing edge
			}
			c, d := p[j], p[(j+1)%n]
			pos, found := intersectEdges(a, b, c, d)
			if !found {
				continue
			}
			ta := edgeParam(a, b, pos)
			tc := edgeParam(c, d, pos)
			if ta > matchEpsilon && ta < 1-matchEpsilon &&
				tc > matchEpsilon && tc < 1-matchEpsilon {
				return i, j, pos, true
			}
		}
	}
	return 0, 0, vec.Vec2{}, false
}

// insideWindow reports whether all vertices of p lie in w, allowing for
// rounding.
func insideWindow(p Polygon, w Window) bool {
	for _, v := range p {
		if v.X < w.Min.X-boundsEpsilon || v.X > w.Max.X+boundsEpsilon ||
			v.Y < w.Min.Y-boundsEpsilon || v.Y > w.Max.Y+boundsEpsilon {
			return false
		}
	}
	return true
}

// findCrossings returns all points where the boundary of subject crosses
// the window boundary. Points where the subject only touches the window
// are omitted.
func findCrossings(subject, corners Polygon, w Window) []crossing {
	n := len(subject)
	m := len(corners)

	var all []crossing
	for i := range n {
		a := subject[i]
		b := subject[(i+1)%n]
		for j := range m {
			c := corners[j]
			d := corners[(j+1)%m]
			pos, ok := intersectEdges(a, b, c, d)
			if !ok {
				continue
			}
			x := crossing{
				pos:     pos,
				subject: i,
				ts:      edgeParam(a, b, pos),
				window:  j,
				tw:      edgeParam(c, d, pos),
			}
			// A crossing at the end of an edge belongs to the next edge.
			if x.ts > 1-matchEpsilon {
				x.subject = (i + 1) % n
				x.ts = 0
			}
			if x.tw > 1-matchEpsilon {
				x.window = (j + 1) % m
				x.tw = 0
			}
			if !slices.ContainsFunc(all, func(y crossing) bool {
				return y.subject == x.subject && samePoint(y.pos, x.pos)
			}) {
				all = append(all, x)
			}
		}
	}

	slices.SortStableFunc(all, func(x, y crossing) int {
		if c := cmp.Compare(x.subject, y.subject); c != 0 {
			return c
		}
		return cmp.Compare(x.ts, y.ts)
	})

	// Classify each crossing by looking at the subject boundary just
	// before and just after it.
	res := make([]crossing, 0, len(all))
	for k, x := range all {
		a := subject[x.subject]
		b := subject[(x.subject+1)%n]

		var before vec.Vec2
		if x.ts > 0 {
			tPrev := 0.0
			if k > 0 && all[k-1].subject == x.subject {
				tPrev = all[k-1].ts
			}
			before = lerp(a, b, (tPrev+x.ts)/2)
		} else {
			prevEdge := (x.subject + n - 1) % n
			tPrev := 0.0
			for _, y := range all {
				if y.subject == prevEdge {
					tPrev = y.ts
				}
			}
			before = lerp(subject[prevEdge], a, (tPrev+1)/2)
		}
		tNext := 1.0
		if k+1 < len(all) && all[k+1].subject == x.subject {
			tNext = all[k+1].ts
		}
		after := lerp(a, b, (x.ts+tNext)/2)

		inBefore := w.Contains(before)
		inAfter := w.Contains(after)
		if inBefore == inAfter {
			continue // touching, not crossing
		}
		x.isEntry = inAfter
		res = append(res, x)
	}
	return res
}

// buildList creates a vertex list from the polygon vertices and inserts
// the crossings after the start vertex of their edge. Insertions are
// applied in order of descending position, so that indices computed before
// the first insertion remain valid.
func buildList(vertices Polygon, crossings []crossing, edge func(crossing) (int, float64)) []vertexNode {
	list := make([]vertexNode, 0, len(vertices)+len(crossings))
	for _, v := range vertices {
		list = append(list, vertexNode{pos: v, link: -1})
	}

	ins := make([]insertion, 0, len(crossings))
	for _, c := range crossings {
		e, t := edge(c)
		ins = append(ins, insertion{
			at: e + 1,
			t:  t,
			node: vertexNode{
				pos:            c.pos,
				isIntersection: true,
				isEntry:        c.isEntry,
				link:           -1,
			},
		})
	}
	// Nodes inserted at the same index end up in reverse order, so sort
	// them by descending edge position.
	slices.SortStableFunc(ins, func(x, y insertion) int {
		if c := cmp.Compare(y.at, x.at); c != 0 {
			return c
		}
		return cmp.Compare(y.t, x.t)
	})
	for _, in := range ins {
		list = slices.Insert(list, in.at, in.node)
	}
	return list
}

// linkLists connects every intersection node in the subject list with the
// node at the same position in the window list.
func linkLists(subject, window []vertexNode) {
	for i := range subject {
		if !subject[i].isIntersection {
			continue
		}
		found := false
		for j := range window {
			if window[j].isIntersection && window[j].link < 0 && samePoint(subject[i].pos, window[j].pos) {
				subject[i].link = j
				window[j].link = i
				found = true
				break
			}
		}
		if !found {
			subject[i].isIntersection = false
		}
	}
	for j := range window {
		if window[j].isIntersection && window[j].link < 0 {
			window[j].isIntersection = false
		}
	}
}

// traceContour walks one output contour, starting at the entry node
// subject[seed]. Whenever an intersection node is reached, the walk
// continues on the other list.
func traceContour(subject, window []vertexNode, seed int) Polygon {
	lists := [2][]vertexNode{subject, window}
	const onSubject, onWindow = 0, 1

	// Begin as if the walk had just arrived at the seed along the window
	// boundary; this makes it follow the subject into the window.
	cur := onWindow
	idx := subject[seed].link

	var contour Polygon
	closed := false
	for range len(subject) + len(window) + 1 {
		node := &lists[cur][idx]
		node.visited = true
		contour = append(contour, node.pos)
		if node.isIntersection {
			lists[1-cur][node.link].visited = true
			idx = node.link
			cur = 1 - cur
		}
		idx = (idx + 1) % len(lists[cur])

		if (cur == onSubject && idx == seed) || (cur == onWindow && idx == subject[seed].link) {
			closed = true
			break
		}
	}
	if !closed {
		return nil
	}
	return dedup(contour)
}

// Relation describes how the boundary of a polygon relates to a window.
type Relation int

// These are the possible relations between a polygon and a window.
const (
	// Crossing means that the polygon boundary enters or leaves the window.
	Crossing Relation = iota

	// Contained means that all vertices lie inside the window or on its
	// boundary.
	Contained

	// Surrounds means that the window lies inside the polygon.
	Surrounds

	// Disjoint means that polygon and window do not overlap.
	Disjoint
)

func (r Relation) String() string {
	switch r {
	case Crossing:
		return "crossing"
	case Contained:
		return "contained"
	case Surrounds:
		return "surrounds"
	case Disjoint:
		return "disjoint"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Relate determines how p is positioned relative to w.
// Polygons with fewer than three vertices are reported as [Disjoint].
func Relate(p Polygon, w Window) Relation {
	if len(p) < 3 {
		return Disjoint
	}
	subject := p.Clone()
	if subject.signedArea() < 0 {
		slices.Reverse(subject)
	}
	if len(findCrossings(subject, w.Corners(), w)) > 0 {
		return Crossing
	}
	return relateUncrossed(p, w)
}

// relateUncrossed classifies a polygon whose boundary does not cross the
// window boundary.
func relateUncrossed(p Polygon, w Window) Relation {
	allInside := true
	noneInside := true
	for _, v := range p {
		if !w.Contains(v) {
			allInside = false
		}
		if v.X > w.Min.X && v.X < w.Max.X && v.Y > w.Min.Y && v.Y < w.Max.Y {
			noneInside = false
		}
	}
	switch {
	case allInside:
		return Contained
	case noneInside && PointInPolygon(p, w.Center()):
		return Surrounds
	default:
		return Disjoint
	}
}

// enclosure gives the clipping result for a polygon whose boundary does
// not cross the window boundary.
func enclosure(p Polygon, w Window, clockwise bool) []Polygon {
	switch relateUncrossed(p, w) {
	case Contained:
		return []Polygon{p.Clone()}
	case Surrounds:
		corners := w.Corners()
		if clockwise {
			slices.Reverse(corners)
		}
		return []Polygon{corners}
	default:
		return nil
	}
}

// PointInPolygon reports whether pt lies inside p, using the even-odd rule.
// The test casts a horizontal ray from pt and counts the edges it crosses.
func PointInPolygon(p Polygon, pt vec.Vec2) bool {
	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := p[i], p[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y+rayEpsilon)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// intersectEdges returns the intersection point of the segments a-b and
// c-d. Both segments are written as lines A·x + B·y = C and the resulting
// 2×2 system is solved directly. Near-parallel segments, and intersections
// outside either segment, are reported as no intersection.
func intersectEdges(a, b, c, d vec.Vec2) (vec.Vec2, bool) {
	a1 := b.Y - a.Y
	b1 := a.X - b.X
	c1 := a1*a.X + b1*a.Y
	a2 := d.Y - c.Y
	b2 := c.X - d.X
	c2 := a2*c.X + b2*c.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) < determinantEpsilon {
		return vec.Vec2{}, false
	}
	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	p := vec.Vec2{X: x, Y: y}
	if !inBounds(p, a, b) || !inBounds(p, c, d) {
		return vec.Vec2{}, false
	}
	return p, true
}

// inBounds reports whether p lies in the bounding box of a and b,
// widened by boundsEpsilon.
func inBounds(p, a, b vec.Vec2) bool {
	return p.X >= min(a.X, b.X)-boundsEpsilon && p.X <= max(a.X, b.X)+boundsEpsilon &&
		p.Y >= min(a.Y, b.Y)-boundsEpsilon && p.Y <= max(a.Y, b.Y)+boundsEpsilon
}

// edgeParam returns the position of p along the edge a-b, clamped to
// [0, 1].
func edgeParam(a, b, p vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return 0
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / l2
	return min(max(t, 0), 1)
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func samePoint(p, q vec.Vec2) bool {
	return math.Abs(p.X-q.X) <= matchEpsilon && math.Abs(p.Y-q.Y) <= matchEpsilon
}

// dedup removes repeated consecutive vertices, including a last vertex
// which repeats the first one.
func dedup(p Polygon) Polygon {
	res := p[:0]
	for _, v := range p {
		if len(res) > 0 && samePoint(res[len(res)-1], v) {
			continue
		}
		res = append(res, v)
	}
	for len(res) > 1 && samePoint(res[0], res[len(res)-1]) {
		res = res[:len(res)-1]
	}
	return res
}
