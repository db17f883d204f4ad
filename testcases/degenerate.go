package testcases

import "seehuhn.de/go/geom/vec"

var degenerateCases = []TestCase{
	{
		// The diamond touches the window in a single vertex.
		Name:   "touching_vertex",
		Window: window(5),
		Subject: Shape{Vertices: []vec.Vec2{
			pt(5, 0), pt(8, 3), pt(11, 0), pt(8, -3),
		}},
		Want: Want{Contours: 0, Area: 0},
	},
	{
		Name:    "two_vertices",
		Window:  window(5),
		Subject: Shape{Vertices: []vec.Vec2{pt(-1, -1), pt(1, 1)}},
		Want:    Want{Contours: 0, Area: 0},
	},
	{
		Name:    "corner_touch",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(5, 5, 10, 10)}},
		Want:    Want{Accepted: 1},
	},
	{
		Name:    "zero_length",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(1, 1, 1, 1), seg(7, 7, 7, 7)}},
		Want:    Want{Accepted: 1},
	},
	{
		Name:    "zero_width_window",
		Window:  rectangle(0, -5, 0, 5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(-10, 0, 10, 0)}},
		Want:    Want{Accepted: 1},
	},
}
