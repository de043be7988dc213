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

package shape

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/action"
)

func pt(x, y float64) action.Point {
	return action.Point{X: x, Y: y, Color: "#112233", Width: 4}
}

func TestTriangleReflection(t *testing.T) {
	g := Outline(action.Triangle, pt(0, 0), pt(10, 20))
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: -10, Y: 20}}
	if !slices.Equal(g.Vertices, want) {
		t.Errorf("got %v, want %v", g.Vertices, want)
	}
	if !g.Closed {
		t.Error("triangle is not closed")
	}

	// fractional coordinates are kept exactly
	g = Outline(action.Triangle, pt(1.25, 2.5), pt(3.75, 0.5))
	if third := g.Vertices[2]; third != (vec.Vec2{X: -1.25, Y: 0.5}) {
		t.Errorf("third vertex %v, want (-1.25, 0.5)", third)
	}
}

func TestRectangleNormalised(t *testing.T) {
	want := []vec.Vec2{{X: 2, Y: 3}, {X: 8, Y: 3}, {X: 8, Y: 9}, {X: 2, Y: 9}}
	corners := [][2]action.Point{
		{pt(2, 3), pt(8, 9)},
		{pt(8, 9), pt(2, 3)},
		{pt(8, 3), pt(2, 9)},
		{pt(2, 9), pt(8, 3)},
	}
	for _, c := range corners {
		g := Outline(action.Rectangle, c[0], c[1])
		if !slices.Equal(g.Vertices, want) {
			t.Errorf("%v → %v: got %v, want %v", c[0], c[1], g.Vertices, want)
		}
	}
}

func TestCircle(t *testing.T) {
	g := Outline(action.Circle, pt(10, 10), pt(13, 14))
	if g.Center != (vec.Vec2{X: 10, Y: 10}) || g.Radius != 5 {
		t.Errorf("centre %v radius %g, want (10,10) 5", g.Center, g.Radius)
	}

	// all on-curve points of the path lie on the circle
	var n int
	for cmd, pts := range g.Path() {
		if cmd == path.CmdClose {
			continue
		}
		end := pts[len(pts)-1]
		if d := end.Sub(g.Center).Length(); math.Abs(d-5) > 1e-9 {
			t.Errorf("point %v at distance %g", end, d)
		}
		n++
	}
	if n != 5 {
		t.Errorf("got %d path segments, want 5", n)
	}
}

// TestCircleArcMidpoints checks that the control points of the quarter
// arcs are exact: the midpoint of each cubic lies on the circle.
func TestCircleArcMidpoints(t *testing.T) {
	g := Outline(action.Circle, pt(10, 10), pt(13, 14))
	var cur vec.Vec2
	arcs := 0
	for cmd, pts := range g.Path() {
		switch cmd {
		case path.CmdCubeTo:
			mx := (cur.X + 3*pts[0].X + 3*pts[1].X + pts[2].X) / 8
			my := (cur.Y + 3*pts[0].Y + 3*pts[1].Y + pts[2].Y) / 8
			d := math.Hypot(mx-g.Center.X, my-g.Center.Y)
			if math.Abs(d-g.Radius) > 1e-12 {
				t.Errorf("arc %d: midpoint at distance %.15g, want %g", arcs, d, g.Radius)
			}
			arcs++
		case path.CmdClose:
			continue
		}
		cur = pts[len(pts)-1]
	}
	if arcs != 4 {
		t.Errorf("got %d arcs, want 4", arcs)
	}
}

func TestLine(t *testing.T) {
	g := Outline(action.Line, pt(1, 2), pt(3, 4))
	want := []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if !slices.Equal(g.Vertices, want) || g.Closed {
		t.Errorf("got %v closed=%t", g.Vertices, g.Closed)
	}
}

func TestStyleFromStart(t *testing.T) {
	start := action.Point{X: 0, Y: 0, Color: "red", Width: 7}
	end := action.Point{X: 5, Y: 5, Color: "blue", Width: 1}
	for _, tool := range []action.Tool{action.Line, action.Circle, action.Rectangle, action.Triangle} {
		g := Outline(tool, start, end)
		if g.Color != "red" || g.Width != 7 {
			t.Errorf("%v: style %q/%g, want red/7", tool, g.Color, g.Width)
		}
	}
	g := Polyline([]action.Point{start, end})
	if g.Color != "red" || g.Width != 7 {
		t.Errorf("polyline: style %q/%g, want red/7", g.Color, g.Width)
	}
}

func TestOutlinePanics(t *testing.T) {
	for _, tool := range []action.Tool{action.Draw, action.Eraser} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Outline(%v) did not panic", tool)
				}
			}()
			Outline(tool, pt(0, 0), pt(1, 1))
		}()
	}
}

func TestPolylinePath(t *testing.T) {
	g := Polyline([]action.Point{pt(0, 0), pt(1, 0), pt(1, 1)})
	var cmds []path.Command
	for cmd := range g.Path() {
		cmds = append(cmds, cmd)
	}
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}
	if !slices.Equal(cmds, want) {
		t.Errorf("got %v, want %v", cmds, want)
	}

	// a single sample becomes a zero-length segment
	g = Polyline([]action.Point{pt(4, 4)})
	cmds = cmds[:0]
	for cmd := range g.Path() {
		cmds = append(cmds, cmd)
	}
	want = []path.Command{path.CmdMoveTo, path.CmdLineTo}
	if !slices.Equal(cmds, want) {
		t.Errorf("single point: got %v, want %v", cmds, want)
	}
}

func TestBounds(t *testing.T) {
	g := Outline(action.Rectangle, pt(2, 3), pt(8, 9))
	b := g.Bounds()
	if b.LLx != 0 || b.LLy != 1 || b.URx != 10 || b.URy != 11 {
		t.Errorf("got %v", b)
	}
	g = Outline(action.Circle, pt(10, 10), pt(10, 15))
	b = g.Bounds()
	if b.LLx != 3 || b.URy != 17 {
		t.Errorf("circle: got %v", b)
	}
}
