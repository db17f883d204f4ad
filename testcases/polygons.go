package testcases

import "seehuhn.de/go/geom/vec"

var polygonCases = []TestCase{
	{
		Name:    "square_around_window",
		Window:  window(3),
		Subject: Shape{Vertices: box(-10, -10, 10, 10)},
		Want:    Want{Contours: 1, Area: 36},
	},
	{
		Name:    "square_inside",
		Window:  window(3),
		Subject: Shape{Vertices: box(-2, -2, 2, 2)},
		Want:    Want{Contours: 1, Area: 16},
	},
	{
		Name:   "square_clockwise",
		Window: window(3),
		Subject: Shape{Vertices: []vec.Vec2{
			pt(-10, -10), pt(-10, 10), pt(10, 10), pt(10, -10),
		}},
		Want: Want{Contours: 1, Area: 36},
	},
	{
		Name:    "triangle_corner",
		Window:  window(5),
		Subject: Shape{Vertices: []vec.Vec2{pt(0, 0), pt(10, 0), pt(0, 10)}},
		Want:    Want{Contours: 1, Area: 25},
	},
	{
		Name:   "diamond",
		Window: window(5),
		Subject: Shape{Vertices: []vec.Vec2{
			pt(0, -8), pt(8, 0), pt(0, 8), pt(-8, 0),
		}},
		Want: Want{Contours: 1, Area: 92},
	},
	{
		// The two arms of the C cross the window, the spine is outside.
		Name:   "c_shape",
		Window: window(5),
		Subject: Shape{Vertices: []vec.Vec2{
			pt(-10, -3), pt(10, -3), pt(10, -1), pt(-8, -1),
			pt(-8, 1), pt(10, 1), pt(10, 3), pt(-10, 3),
		}},
		Want: Want{Contours: 2, Area: 40},
	},
	{
		Name:    "disjoint",
		Window:  window(5),
		Subject: Shape{Vertices: box(20, 20, 30, 30)},
		Want:    Want{Contours: 0, Area: 0},
	},
	{
		Name:    "window_enclosed",
		Window:  window(5),
		Subject: Shape{Vertices: box(-20, -20, 20, 20)},
		Want:    Want{Contours: 1, Area: 100},
	},
}
