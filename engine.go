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

package sketch

import (
	"fmt"
	"log/slog"
	"time"

	"seehuhn.de/go/sketch/action"
	"seehuhn.de/go/sketch/shape"
	"seehuhn.de/go/sketch/surface"
)

// Engine paints drawing actions onto a surface.
//
// Redraw reconstructs the whole picture from a list of actions.  It keeps
// no state between calls, so the same list always gives the same pixels.
type Engine struct {
	s *surface.Surface
}

// NewEngine returns an engine which draws onto s.
func NewEngine(s *surface.Surface) *Engine {
	return &Engine{s: s}
}

// Surface returns the surface the engine draws onto.
func (e *Engine) Surface() *surface.Surface {
	return e.s
}

// Redraw clears the surface to the background colour and then paints the
// given actions, oldest first.
//
// Redraw panics if an action contains a style which cannot be rendered.
func (e *Engine) Redraw(committed []*action.Action) {
	start := time.Now()

	e.s.Clear()
	points := 0
	for _, a := range committed {
		e.Draw(a)
		points += a.NumPoints()
	}

	Logger().Debug("redraw",
		slog.Int("actions", len(committed)),
		slog.Int("points", points),
		slog.Duration("elapsed", time.Since(start)))
}

// Draw paints a single action on top of the current surface content.
// Paths with fewer than two points are skipped.
func (e *Engine) Draw(a *action.Action) {
	tool := a.Tool()
	for i := range a.NumPaths() {
		pts := a.Path(i)
		if len(pts) < 2 {
			continue
		}
		e.stroke(outline(tool, pts))
	}
}

// geometry returns the shape drawn for path i of a.
func geometry(a *action.Action, i int) shape.Geometry {
	return outline(a.Tool(), a.Path(i))
}

func outline(tool action.Tool, pts []action.Point) shape.Geometry {
	if tool.IsShape() {
		return shape.Outline(tool, pts[0], pts[len(pts)-1])
	}
	return shape.Polyline(pts)
}

// Preview paints g on top of the current surface content.  The history is
// not involved.
func (e *Engine) Preview(g shape.Geometry) {
	e.stroke(g)
}

// Segment paints the straight segment from a to b, using the style of a.
func (e *Engine) Segment(a, b action.Point) {
	e.stroke(shape.Polyline([]action.Point{a, b}))
}

func (e *Engine) stroke(g shape.Geometry) {
	err := e.s.Stroke(g.Path(), g.Color, g.Width)
	if err != nil {
		panic(fmt.Sprintf("sketch: cannot draw %s: %v", g.Tool, err))
	}
}
