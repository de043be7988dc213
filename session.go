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
	"math"

	"seehuhn.de/go/sketch/action"
	"seehuhn.de/go/sketch/shape"
)

// capture holds the points of the gesture in progress.
type capture struct {
	active bool
	tool   action.Tool
	points []action.Point
}

// GestureBegin starts a new gesture at the given surface coordinates,
// using the current tool and style.  If a gesture is already in progress,
// it is ended first.
//
// GestureBegin panics if the point is not finite or lies outside the
// surface.
func (b *Board) GestureBegin(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.capture.active {
		b.end()
	}
	b.begin(x, y)
}

// GestureMove adds a point to the gesture in progress.  If no gesture is
// active, the call is ignored.
//
// GestureMove panics if the point is not finite or lies outside the
// surface.
func (b *Board) GestureMove(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.extend(x, y)
}

// GestureEnd finishes the gesture in progress and commits it to the
// history.  The return value reports whether an action was committed.
func (b *Board) GestureEnd() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.end()
}

// GestureLeave is called when the pointer leaves the surface during a
// gesture.  This ends the gesture in the same way as GestureEnd.
func (b *Board) GestureLeave() bool {
	return b.GestureEnd()
}

// Drawing reports whether a gesture is in progress.
func (b *Board) Drawing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.capture.active
}

func (b *Board) begin(x, y float64) {
	b.checkPoint(x, y)

	color, width := b.cfg.style()
	b.capture.active = true
	b.capture.tool = b.cfg.Tool
	b.capture.points = append(b.capture.points[:0], action.Point{
		X: x, Y: y, Color: color, Width: width,
	})
}

func (b *Board) extend(x, y float64) {
	c := &b.capture
	if !c.active {
		return
	}
	b.checkPoint(x, y)

	prev := c.points[len(c.points)-1]
	p := prev
	p.X, p.Y = x, y
	c.points = append(c.points, p)

	if c.tool.IsShape() {
		b.eng.Redraw(b.hist.Committed())
		b.eng.Preview(shape.Outline(c.tool, c.points[0], p))
	} else {
		b.eng.Segment(prev, p)
	}
}

// end commits the gesture in progress, if any, and discards the capture
// state.
func (b *Board) end() bool {
	c := &b.capture
	if !c.active {
		return false
	}
	c.active = false

	a, err := action.New(c.tool, c.points)
	clear(c.points)
	c.points = c.points[:0]
	if err != nil {
		// a gesture without points is silently dropped
		return false
	}

	b.hist.Commit(a)
	b.eng.Redraw(b.hist.Committed())
	b.logChange("commit", a)
	return true
}

// abort discards the gesture in progress without committing it.  The
// return value reports whether there was a gesture to discard; its partial
// drawing is still on the surface in that case.
func (b *Board) abort() bool {
	c := &b.capture
	if !c.active {
		return false
	}
	Logger().Debug("gesture discarded",
		slog.String("tool", c.tool.String()),
		slog.Int("points", len(c.points)))
	c.active = false
	clear(c.points)
	c.points = c.points[:0]
	return true
}

// checkPoint panics if (x, y) is not a point of the surface.  The
// collaborators which deliver pointer events guarantee this.
func (b *Board) checkPoint(x, y float64) {
	r := b.surf.Bounds()
	if math.IsNaN(x) || math.IsNaN(y) ||
		x < float64(r.Min.X) || x > float64(r.Max.X) ||
		y < float64(r.Min.Y) || y > float64(r.Max.Y) {
		panic(fmt.Sprintf("sketch: point (%g, %g) outside the surface %v", x, y, r))
	}
}
