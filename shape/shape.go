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

// Package shape computes the geometry of drawing actions.
//
// [Outline] turns the two defining points of a parametric tool into a shape,
// [Polyline] joins freehand samples by straight segments.  Both functions
// are pure: the same input always gives the same geometry.
package shape

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/action"
)

// Geometry describes what to stroke for one path of an action.
type Geometry struct {
	Tool action.Tool

	// Vertices are the corner points of the shape, or the samples of a
	// freehand path.  For circles, Vertices is nil and Center and Radius
	// are used instead.
	Vertices []vec.Vec2

	Center vec.Vec2
	Radius float64

	// Closed is true if the last vertex connects back to the first.
	Closed bool

	// Color and Width are the stroke style, taken from the first point.
	Color string
	Width float64
}

// Outline returns the shape drawn by a parametric tool between the points
// start and end.  The style of the result is taken from start.
//
// Outline panics if tool is not a parametric tool.
func Outline(tool action.Tool, start, end action.Point) Geometry {
	g := Geometry{
		Tool:  tool,
		Color: start.Color,
		Width: start.Width,
	}
	a := vec.Vec2{X: start.X, Y: start.Y}
	b := vec.Vec2{X: end.X, Y: end.Y}

	switch tool {
	case action.Line:
		g.Vertices = []vec.Vec2{a, b}

	case action.Circle:
		g.Center = a
		g.Radius = math.Hypot(b.X-a.X, b.Y-a.Y)
		g.Closed = true

	case action.Rectangle:
		x0, x1 := min(a.X, b.X), max(a.X, b.X)
		y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
		g.Vertices = []vec.Vec2{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		}
		g.Closed = true

	case action.Triangle:
		// apex at start, base along the horizontal line through end,
		// mirrored at the vertical line through start
		g.Vertices = []vec.Vec2{
			a,
			b,
			{X: a.X - (b.X - a.X), Y: b.Y},
		}
		g.Closed = true

	default:
		panic(fmt.Sprintf("shape: %s is not a parametric tool", tool))
	}
	return g
}

// Polyline returns the freehand geometry through the given points.  Every
// point is joined to its predecessor by a straight segment.  The style is
// taken from the first point.
func Polyline(points []action.Point) Geometry {
	g := Geometry{
		Tool:     action.Draw,
		Vertices: make([]vec.Vec2, len(points)),
	}
	if len(points) > 0 {
		g.Color = points[0].Color
		g.Width = points[0].Width
	}
	for i, p := range points {
		g.Vertices[i] = vec.Vec2{X: p.X, Y: p.Y}
	}
	return g
}

// circleKappa places the control points of a cubic Bézier quarter circle.
const circleKappa = 4 * (math.Sqrt2 - 1) / 3

// Path returns the geometry as a path, for use with the rasterizer.
// A geometry with a single vertex, or a circle of radius zero, gives a
// zero-length subpath which is drawn as a dot by round caps.
func (g Geometry) Path() path.Path {
	p := &path.Data{}

	if g.Vertices == nil && g.Tool == action.Circle {
		c, r := g.Center, g.Radius
		if r == 0 {
			return p.MoveTo(c).LineTo(c).Iter()
		}
		k := circleKappa * r
		pt := func(dx, dy float64) vec.Vec2 {
			return vec.Vec2{X: c.X + dx, Y: c.Y + dy}
		}
		p.MoveTo(pt(r, 0)).
			CubeTo(pt(r, k), pt(k, r), pt(0, r)).
			CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
			CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
			CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
			Close()
		return p.Iter()
	}

	if len(g.Vertices) == 0 {
		return p.Iter()
	}
	p.MoveTo(g.Vertices[0])
	if len(g.Vertices) == 1 {
		p.LineTo(g.Vertices[0])
	}
	for _, v := range g.Vertices[1:] {
		p.LineTo(v)
	}
	if g.Closed {
		p.Close()
	}
	return p.Iter()
}

// Bounds returns the area touched by stroking the geometry, including half
// the stroke width on every side.
func (g Geometry) Bounds() rect.Rect {
	var b rect.Rect
	if g.Vertices == nil && g.Tool == action.Circle {
		b = rect.Rect{
			LLx: g.Center.X - g.Radius, LLy: g.Center.Y - g.Radius,
			URx: g.Center.X + g.Radius, URy: g.Center.Y + g.Radius,
		}
	} else if len(g.Vertices) > 0 {
		b = rect.Rect{
			LLx: g.Vertices[0].X, LLy: g.Vertices[0].Y,
			URx: g.Vertices[0].X, URy: g.Vertices[0].Y,
		}
		for _, v := range g.Vertices[1:] {
			b.LLx = min(b.LLx, v.X)
			b.LLy = min(b.LLy, v.Y)
			b.URx = max(b.URx, v.X)
			b.URy = max(b.URy, v.Y)
		}
	}
	d := g.Width / 2
	b.LLx -= d
	b.LLy -= d
	b.URx += d
	b.URy += d
	return b
}
