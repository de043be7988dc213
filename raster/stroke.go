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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// All outline polygons of all subpaths are filled together with the
// nonzero winding rule, so that places where a stroke overlaps itself are
// painted only once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flatten(p)

	r.outline = r.outline[:0]
	r.polys = r.polys[:0]
	d := r.Width / 2
	for i, closed := range r.closed {
		pts := dedup(r.subpath(i))
		if closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}

		switch {
		case len(pts) == 1:
			r.strokeDot(pts[0], d)
		case closed && len(pts) > 2:
			r.beginPoly()
			r.addOffsetSide(pts, d, true)
			r.beginPoly()
			reverse(pts)
			r.addOffsetSide(pts, d, true)
		default:
			r.beginPoly()
			r.addOffsetSide(pts, d, false)
			r.addCap(pts[len(pts)-1], pts[len(pts)-2], d)
			reverse(pts)
			r.addOffsetSide(pts, d, false)
			r.addCap(pts[len(pts)-1], pts[len(pts)-2], d)
		}
	}

	r.beginEdges()
	for i := range r.polys {
		end := len(r.outline)
		if i+1 < len(r.polys) {
			end = r.polys[i+1]
		}
		if poly := r.outline[r.polys[i]:end]; len(poly) >= 3 {
			r.addPolygon(poly)
		}
	}
	r.scan(emit)
}

func (r *Rasterizer) beginPoly() {
	r.polys = append(r.polys, len(r.outline))
}

// strokeDot draws a subpath which consists of a single point.  Only round
// and square caps produce visible output.
func (r *Rasterizer) strokeDot(p vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.beginPoly()
		r.addArc(p, d, vec.Vec2{X: 1}, 2*math.Pi)
	case graphics.LineCapSquare:
		r.beginPoly()
		r.outline = append(r.outline,
			vec.Vec2{X: p.X - d, Y: p.Y - d},
			vec.Vec2{X: p.X + d, Y: p.Y - d},
			vec.Vec2{X: p.X + d, Y: p.Y + d},
			vec.Vec2{X: p.X - d, Y: p.Y + d},
		)
	}
}

// addOffsetSide appends the offset curve on the left hand side of the
// polyline pts (the side of the normal, rotated 90° counter-clockwise from
// the direction of travel) at distance d.  For closed polylines the joins
// at the first vertex are included and the result is a closed ring.
//
// At every vertex the turn decides which side is the outer side.  The outer
// side gets the join geometry, the inner side is routed through the vertex
// itself, which keeps the winding number positive everywhere inside the
// stroke.
func (r *Rasterizer) addOffsetSide(pts []vec.Vec2, d float64, closed bool) {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	dir := func(i int) vec.Vec2 {
		v := pts[(i+1)%n].Sub(pts[i])
		return v.Mul(1 / v.Length())
	}

	first := 0
	if !closed {
		t := dir(0)
		r.outline = append(r.outline, pts[0].Add(normal(t).Mul(d)))
		first = 1
	}
	for i := first; i < n; i++ {
		if !closed && i == n-1 {
			break
		}
		t1 := dir((i - 1 + segs) % segs)
		t2 := dir(i % segs)
		r.addJoin(pts[i], t1, t2, d)
	}
	if !closed {
		t := dir(n - 2)
		r.outline = append(r.outline, pts[n-1].Add(normal(t).Mul(d)))
	}
}

// addJoin adds the outline points at vertex p, where the direction of travel
// changes from t1 to t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	n1 := normal(t1)
	n2 := normal(t2)
	a := p.Add(n1.Mul(d))
	b := p.Add(n2.Mul(d))

	sin := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		r.outline = append(r.outline, a)
		return
	}
	if sin > 0 {
		// turning towards the normal: this is the inner side
		r.outline = append(r.outline, a, p, b)
		return
	}

	switch r.Join {
	case graphics.LineJoinRound:
		sweep := math.Atan2(sin, cos)
		if sweep > 0 {
			// exact reversal, sin == 0
			sweep = -sweep
		}
		r.addArc(p, d, n1, sweep)
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2),
		// where θ is the turn angle.
		half := math.Sqrt((1 + cos) / 2)
		if half > 0 && 1/half <= r.MiterLimit {
			bis := n1.Add(n2)
			tip := p.Add(bis.Mul(d / (half * bis.Length())))
			r.outline = append(r.outline, a, tip, b)
		} else {
			r.outline = append(r.outline, a, b)
		}
	default:
		r.outline = append(r.outline, a, b)
	}
}

// addCap adds the cap at the end point p of a segment coming from q.  The
// outline is expected to be at the left offset point of p, and continues
// at the right offset point.
func (r *Rasterizer) addCap(p, q vec.Vec2, d float64) {
	t := p.Sub(q)
	t = t.Mul(1 / t.Length())
	n := normal(t)

	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(p, d, n, -math.Pi)
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	}
}

// addArc appends points on the circle with the given centre and radius,
// starting in direction from and sweeping by the given angle (positive is
// counter-clockwise).  The number of points is chosen so that the chords
// deviate from the circle by at most r.Flatness device pixels.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, from vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = int(math.Ceil(math.Abs(sweep) / step))
	}
	n = max(n, 4*int(math.Ceil(math.Abs(sweep)/math.Pi)))

	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: from.X*cos - from.Y*sin,
			Y: from.X*sin + from.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// normal returns t rotated by 90° counter-clockwise.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// dedup removes consecutive points closer than zeroLengthThreshold, in place.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() >= zeroLengthThreshold {
			out = append(out, p)
		}
	}
	return out
}

func reverse(pts []vec.Vec2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
