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

// Package sketch implements a drawing board with exact undo and redo.
//
// A [Board] receives pointer gestures through [Board.GestureBegin],
// [Board.GestureMove] and [Board.GestureEnd].  Each finished gesture
// becomes one [action.Action] in the board's history.  Freehand strokes
// and the eraser record every sampled point; the shape tools (line,
// rectangle, circle, triangle) are defined by the first and the last point
// of the gesture.
//
// The picture is never edited in place.  After every change of the history
// the [Engine] clears the surface and replays all committed actions, oldest
// first.  Since the replay is deterministic, undoing an action and redoing
// it again restores the picture bit for bit.
//
// The eraser paints with the background colour, using a fixed width of
// [EraserWidth].
package sketch
