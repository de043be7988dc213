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
)

// flatten converts p into polylines, stored in r.pts, r.offsets and
// r.closed.  Curves are replaced by line segments so that the deviation in
// device space is at most r.Flatness.  Every subpath keeps at least its
// starting point, so that zero-length subpaths can still be capped.
func (r *Rasterizer) flatten(p path.Path) {
	r.pts = r.pts[:0]
	r.offsets = r.offsets[:0]
	r.closed = r.closed[:0]

	var cur vec.Vec2
	open := false
	add := func(_, to vec.Vec2) {
		r.pts = append(r.pts, to)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.closed = append(r.closed, false)
			}
			cur = pts[0]
			r.offsets = append(r.offsets, len(r.pts))
			r.pts = append(r.pts, cur)
			open = true

		case path.CmdLineTo:
			if !open {
				continue
			}
			cur = pts[0]
			r.pts = append(r.pts, cur)

		case path.CmdQuadTo:
			if !open {
				continue
			}
			r.flattenQuadratic(cur, pts[0], pts[1], add)
			cur = pts[1]

		case path.CmdCubeTo:
			if !open {
				continue
			}
			r.flattenCubic(cur, pts[0], pts[1], pts[2], add)
			cur = pts[2]

		case path.CmdClose:
			if !open {
				continue
			}
			r.closed = append(r.closed, true)
			open = false
		}
	}
	if open {
		r.closed = append(r.closed, false)
	}
}

// subpath returns the points of flattened subpath i.
func (r *Rasterizer) subpath(i int) []vec.Vec2 {
	end := len(r.pts)
	if i+1 < len(r.offsets) {
		end = r.offsets[i+1]
	}
	return r.pts[r.offsets[i]:end]
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and calls emit for each of them.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// deviation of the curve from its chord: (p0 - 2p1 + p2)/4
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments and calls emit for each of them.  The number of segments is
// found using Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}
