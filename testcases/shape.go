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
	"seehuhn.de/go/sketch/action"
)

var shapeCases = []TestCase{
	{
		Name:   "line",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Line, "#000000", 4, pt(8, 56), pt(30, 20), pt(56, 8)),
		},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Rectangle, "#2563eb", 3, pt(12, 16), pt(40, 40), pt(52, 48)),
		},
	},
	{
		Name:   "rectangle_reversed",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Rectangle, "#2563eb", 3, pt(52, 48), pt(12, 16)),
		},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Circle, "#dc2626", 2, pt(32, 32), pt(40, 40), pt(52, 32)),
		},
	},
	{
		Name:   "circle_zero",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Circle, "#dc2626", 6, pt(32, 32), pt(32, 32)),
		},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Triangle, "#16a34a", 2, pt(32, 8), pt(50, 30), pt(52, 56)),
		},
	},
	{
		Name:   "triangle_flipped",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Triangle, "#16a34a", 2, pt(32, 56), pt(12, 8)),
		},
	},
	{
		Name:   "mixed",
		Width:  128,
		Height: 96,
		Steps: []Step{
			stroke(action.Rectangle, "black", 2, pt(8, 8), pt(120, 88)),
			stroke(action.Circle, "orange", 4, pt(40, 48), pt(64, 48)),
			stroke(action.Triangle, "purple", 3, pt(92, 16), pt(112, 80)),
			stroke(action.Line, "gray", 1, pt(8, 88), pt(120, 8)),
		},
	},
}
