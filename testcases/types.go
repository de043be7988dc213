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

// TestCase is a named drawing session: a board size and a script of steps.
type TestCase struct {
	Name       string // lowercase a-z and _ only
	Width      int    // board width in pixels
	Height     int    // board height in pixels
	Background string // background colour ("" means the default)
	Steps      []Step
}

// Step is one user interaction of a test case.
type Step interface {
	isStep()
}

// Gesture draws with the given tool and style, passing through Points.
// The first point is the gesture start, the last point the gesture end.
type Gesture struct {
	Tool   action.Tool
	Color  string  // stroke colour ("" keeps the current colour)
	Width  float64 // stroke width (0 keeps the current width)
	Points []vec.Vec2
}

func (Gesture) isStep() {}

// Leave is like Gesture, but the pointer leaves the board after the last
// point instead of being released.
type Leave struct {
	Gesture
}

// Undo presses the undo button.
type Undo struct{}

func (Undo) isStep() {}

// Redo presses the redo button.
type Redo struct{}

func (Redo) isStep() {}

// Reset clears the board and its history.
type Reset struct{}

func (Reset) isStep() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// stroke returns a Gesture with the given tool and style.
func stroke(tool action.Tool, color string, width float64, pts ...vec.Vec2) Gesture {
	return Gesture{Tool: tool, Color: color, Width: width, Points: pts}
}
