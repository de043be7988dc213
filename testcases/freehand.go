// seehuhn.de/go/sketch - freehand drawing with an exact undo history
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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/action"
)

var freehandCases = []TestCase{
	{
		Name:   "dot",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "#000000", 8, pt(32, 32)),
		},
	},
	{
		Name:   "segment",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "#000000", 4, pt(10, 32), pt(54, 32)),
		},
	},
	{
		Name:   "zigzag",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "navy", 3,
				pt(8, 50), pt(18, 14), pt(28, 50), pt(38, 14), pt(48, 50), pt(56, 14)),
		},
	},
	{
		Name:   "spiral",
		Width:  128,
		Height: 128,
		Steps: []Step{
			Gesture{Tool: action.Draw, Color: "darkgreen", Width: 2, Points: spiral(64, 64, 4, 56, 200)},
		},
	},
	{
		Name:   "crossing",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "#cc000080", 10, pt(8, 32), pt(56, 32), pt(56, 56), pt(32, 56), pt(32, 8)),
		},
	},
	{
		Name:   "palette",
		Width:  96,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "#ef4444", 2, pt(8, 8), pt(88, 8)),
			stroke(action.Draw, "#f97316", 4, pt(8, 20), pt(88, 20)),
			stroke(action.Draw, "#eab308", 6, pt(8, 34), pt(88, 34)),
			stroke(action.Draw, "#22c55e", 8, pt(8, 50), pt(88, 50)),
		},
	},
}

// spiral samples an Archimedean spiral around (cx, cy), from radius r0 to
// r1, using n points.
func spiral(cx, cy, r0, r1 float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		r := r0 + (r1-r0)*t
		phi := 6 * math.Pi * t
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return pts
}
