package testcases

import "seehuhn.de/go/geom/vec"

var lineCases = []TestCase{
	{
		Name:    "diagonal",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(-15, -15, 15, 15)}},
		Want:    Want{Accepted: 1},
	},
	{
		Name:    "reversed",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(15, 15, -15, -15)}},
		Want:    Want{Accepted: 1},
	},
	{
		Name:    "inside",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(-2, -1, 3, 4)}},
		Want:    Want{Accepted: 1},
	},
	{
		Name:    "outside",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(-9, -9, -7, 9)}},
		Want:    Want{Accepted: 0},
	},
	{
		// both endpoints are outside on different sides, but the segment
		// passes beyond the corner
		Name:    "corner_miss",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(4, 8, 8, 4)}},
		Want:    Want{Accepted: 0},
	},
	{
		Name:    "on_edge",
		Window:  window(5),
		Subject: Lines{Segments: [][2]vec.Vec2{seg(5, -10, 5, 10)}},
		Want:    Want{Accepted: 1},
	},
	{
		Name:   "mixed",
		Window: rectangle(-8, -4, 6, 7),
		Subject: Lines{Segments: [][2]vec.Vec2{
			seg(-20, 0, 20, 0),
			seg(0, -20, 0, 20),
			seg(-10, 10, -9, 12),
			seg(2, 2, 3, 3),
			seg(-12, -8, 10, 12),
		}},
		Want: Want{Accepted: 4},
	},
}
