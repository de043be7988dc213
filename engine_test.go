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
	"bytes"
	"image/color"
	"testing"

	"seehuhn.de/go/sketch/action"
	"seehuhn.de/go/sketch/shape"
	"seehuhn.de/go/sketch/surface"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	s, err := surface.New(40, 30, "white")
	if err != nil {
		t.Fatal(err)
	}
	return NewEngine(s)
}

func sampleActions(t *testing.T) []*action.Action {
	t.Helper()
	p := func(x, y float64, c string, w float64) action.Point {
		return action.Point{X: x, Y: y, Color: c, Width: w}
	}
	var res []*action.Action
	add := func(tool action.Tool, pts ...action.Point) {
		a, err := action.New(tool, pts)
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, a)
	}
	add(action.Draw, p(2, 2, "red", 3), p(10, 20, "red", 3), p(30, 5, "red", 3))
	add(action.Circle, p(20, 15, "#0000ff88", 2), p(28, 15, "#0000ff88", 2))
	add(action.Eraser, p(0, 15, "white", EraserWidth), p(40, 15, "white", EraserWidth))
	add(action.Triangle, p(20, 2, "green", 1.5), p(35, 28, "green", 1.5))
	return res
}

func TestRedrawDeterministic(t *testing.T) {
	actions := sampleActions(t)

	e1 := newEngine(t)
	e1.Redraw(actions)
	first := e1.Surface().Clone()

	// draw something unrelated, then replay again
	e1.Preview(shape.Outline(action.Line,
		action.Point{X: 0, Y: 0, Color: "black", Width: 5},
		action.Point{X: 40, Y: 30, Color: "black", Width: 5}))
	e1.Redraw(actions)
	if !bytes.Equal(first.Image().Pix, e1.Surface().Image().Pix) {
		t.Error("second Redraw differs from the first")
	}

	e2 := newEngine(t)
	e2.Redraw(actions)
	if !bytes.Equal(first.Image().Pix, e2.Surface().Image().Pix) {
		t.Error("Redraw on a fresh surface differs")
	}
}

func TestRedrawOrder(t *testing.T) {
	actions := sampleActions(t)

	e := newEngine(t)
	e.Redraw(actions)
	forward := e.Surface().Clone()

	reversed := []*action.Action{actions[3], actions[2], actions[1], actions[0]}
	e.Redraw(reversed)
	if bytes.Equal(forward.Image().Pix, e.Surface().Image().Pix) {
		t.Error("drawing order has no effect")
	}
}

func TestRedrawEmpty(t *testing.T) {
	e := newEngine(t)
	e.Redraw(sampleActions(t))
	e.Redraw(nil)
	img := e.Surface().Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if !bytes.Equal(img.Pix[i:i+4], []byte{255, 255, 255, 255}) {
			t.Fatalf("pixel %d not cleared", i/4)
		}
	}
}

func TestDrawEraser(t *testing.T) {
	e := newEngine(t)
	e.Redraw(sampleActions(t)[:3])
	img := e.Surface().Image()

	// the eraser band covers the rows 5 to 25 and hides everything drawn
	// before it
	for _, x := range []int{1, 5, 12, 38} {
		if got := img.RGBAAt(x, 15); got != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("pixel (%d, 15) = %v, want white", x, got)
		}
	}
}

func TestSegment(t *testing.T) {
	e := newEngine(t)
	a := action.Point{X: 5, Y: 10, Color: "black", Width: 4}
	b := action.Point{X: 35, Y: 10, Color: "red", Width: 1}
	e.Segment(a, b)

	// the segment uses the style of its first point
	img := e.Surface().Image()
	if got := img.RGBAAt(20, 9); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("got %v, want black", got)
	}
}

func TestDrawSkipsSinglePoint(t *testing.T) {
	e := newEngine(t)
	a, err := action.New(action.Draw, []action.Point{{X: 10, Y: 10, Color: "black", Width: 8}})
	if err != nil {
		t.Fatal(err)
	}
	before := e.Surface().Clone()
	e.Draw(a)
	if !bytes.Equal(before.Image().Pix, e.Surface().Image().Pix) {
		t.Error("single point was drawn")
	}
}
