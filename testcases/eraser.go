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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/action"
)

var eraserCases = []TestCase{
	{
		Name:   "erase_line",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "#000000", 6, pt(8, 32), pt(56, 32)),
			Gesture{Tool: action.Eraser, Points: []vec.Vec2{pt(32, 8), pt(32, 56)}},
		},
	},
	{
		Name:       "erase_coloured_background",
		Width:      64,
		Height:     64,
		Background: "lightyellow",
		Steps: []Step{
			stroke(action.Rectangle, "#0000ff", 4, pt(12, 12), pt(52, 52)),
			Gesture{Tool: action.Eraser, Points: []vec.Vec2{pt(8, 8), pt(56, 56)}},
		},
	},
	{
		Name:   "erase_then_draw",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "#000000", 6, pt(8, 20), pt(56, 20)),
			Gesture{Tool: action.Eraser, Points: []vec.Vec2{pt(8, 20), pt(56, 20)}},
			stroke(action.Draw, "#ff0000", 2, pt(8, 44), pt(56, 44)),
		},
	},
}
