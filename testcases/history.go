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

var historyCases = []TestCase{
	{
		// freehand, line, then two undos and two redos
		Name:   "lifo",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "#000000", 2, pt(0, 0), pt(5, 5)),
			stroke(action.Line, "#000000", 2, pt(0, 0), pt(10, 0)),
			Undo{},
			Undo{},
			Redo{},
			Redo{},
		},
	},
	{
		Name:   "undo_all",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "black", 4, pt(8, 8), pt(56, 56)),
			stroke(action.Circle, "red", 4, pt(32, 32), pt(48, 32)),
			Undo{},
			Undo{},
			Undo{},
		},
	},
	{
		Name:   "redo_invalidated",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "black", 4, pt(8, 8), pt(56, 56)),
			stroke(action.Circle, "red", 4, pt(32, 32), pt(48, 32)),
			Undo{},
			stroke(action.Rectangle, "blue", 4, pt(16, 16), pt(48, 48)),
			Redo{},
		},
	},
	{
		Name:   "leave",
		Width:  64,
		Height: 64,
		Steps: []Step{
			Leave{stroke(action.Draw, "teal", 5, pt(32, 32), pt(48, 40), pt(64, 48))},
			stroke(action.Line, "teal", 5, pt(0, 64), pt(64, 0)),
			Undo{},
		},
	},
	{
		Name:   "reset",
		Width:  64,
		Height: 64,
		Steps: []Step{
			stroke(action.Draw, "black", 4, pt(8, 8), pt(56, 56)),
			Reset{},
			stroke(action.Draw, "maroon", 4, pt(8, 56), pt(56, 8)),
		},
	},
}
