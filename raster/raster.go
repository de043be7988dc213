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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// A [Rasterizer] fills paths with the nonzero winding rule, or strokes them
// using a line width, cap and join style.  Coverage is delivered one pixel
// row at a time through a callback, so that the caller decides how the
// coverage is composited onto an image.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row.  coverage[i] is the
// fraction of pixel (xMin+i, y) covered by the shape, in the range [0, 1].
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a polygon edge in device coordinates, normalised so that
// yTop < yBot.  dir is +1 if the original edge pointed downwards and
// -1 if it pointed upwards.
type edge struct {
	xTop, yTop float64
	yBot       float64
	dxdy       float64
	dir        float32
}

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.xTop + e.dxdy*(y-e.yTop)
}

// Rasterizer converts paths to coverage values.  One instance is reused for
// many paths; the internal buffers grow as needed and are kept between
// calls.  Rendering the same path with the same parameters always produces
// the same coverage, independent of earlier calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	// Must be positive.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins.  Must be at least 1.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// flattened subpaths: pts[offsets[i]:offsets[i+1]]
	pts     []vec.Vec2
	offsets []int
	closed  []bool

	// stroke outline polygons: outline[polys[i]:polys[i+1]]
	outline []vec.Vec2
	polys   []int

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewRasterizer returns a Rasterizer which draws into the given clip
// rectangle.  All other parameters are set to the PDF defaults.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is preserved.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// Fill fills the path using the nonzero winding rule.  Open subpaths are
// closed implicitly.
func (r *Rasterizer) Fill(p path.Path, emit EmitFunc) {
	r.flatten(p)

	r.beginEdges()
	for i := range r.closed {
		poly := r.subpath(i)
		if len(poly) < 2 {
			continue
		}
		r.addPolygon(poly)
	}
	r.scan(emit)
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of the closed polygon poly, given in user space.
func (r *Rasterizer) addPolygon(poly []vec.Vec2) {
	for i := 1; i < len(poly); i++ {
		r.addEdge(poly[i-1], poly[i])
	}
	r.addEdge(poly[len(poly)-1], poly[0])
}

// addEdge transforms the segment p0-p1 to device space and adds it to the
// edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}

	e := edge{dir: 1}
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		e.dir = -1
	}
	e.xTop, e.yTop, e.yBot = x0, y0, y1
	e.dxdy = (x1 - x0) / (y1 - y0)
	r.edges = append(r.edges, e)

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = y0, y1
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0)
	r.byMax = max(r.byMax, y1)
}

// bounds returns the pixel range touched by the collected edges, clamped to
// the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model:
//
// For every pixel of a scanline two values are accumulated.  cover is the
// signed height of all edge pieces inside the pixel column, area is the
// part of that height which lies to the right of the edge within the pixel.
// Scanning left to right, the coverage of pixel i is
//
//	sum(cover[0:i]) + area[i]
//
// which is the signed area of the shape inside the pixel.  The nonzero rule
// then uses min(|coverage|, 1).

// scan runs the active edge list over all scanlines of the collected edges
// and emits the resulting coverage.
func (r *Rasterizer) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		switch {
		case a.yTop < b.yTop:
			return -1
		case a.yTop > b.yTop:
			return 1
		}
		return 0
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := top + 1

		for next < len(r.edges) && r.edges[next].yTop < bot {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which end above this scanline
		keep := r.active[:0]
		for _, idx := range r.active {
			if r.edges[idx].yBot > top {
				keep = append(keep, idx)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, idx := range r.active {
			r.accumulate(&r.edges[idx], top, bot, xMin, xMax)
		}

		integrateNonZero(r.cover, r.area)
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of the part of e between the heights top
// and bot to the cover and area buffers.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	y0 := max(top, e.yTop)
	y1 := min(bot, e.yBot)
	if y1 <= y0 {
		return
	}

	xa := e.xAt(y0)
	xb := e.xAt(y1)
	colA := int(math.Floor(xa))
	colB := int(math.Floor(xb))
	if colA == colB {
		r.addPiece(colA, y1-y0, (xa+xb)/2, e.dir, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns.  Split it at the integer x
	// positions and handle every piece separately.
	lo, hi := min(colA, colB), max(colA, colB)
	dydx := 1 / e.dxdy
	for col := lo; col <= hi; col++ {
		ya := e.yTop + dydx*(float64(col)-e.xTop)
		yb := e.yTop + dydx*(float64(col+1)-e.xTop)
		if ya > yb {
			ya, yb = yb, ya
		}
		ya = max(ya, y0)
		yb = min(yb, y1)
		if yb <= ya {
			continue
		}
		r.addPiece(col, yb-ya, e.xAt((ya+yb)/2), e.dir, xMin, xMax)
	}
}

// addPiece records an edge piece of height dy inside pixel column col.
// xMid is the x coordinate of the piece's midpoint.
func (r *Rasterizer) addPiece(col int, dy, xMid float64, dir float32, xMin, xMax int) {
	c := dir * float32(dy)
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		i := col - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(col)))
	}
}

// integrateNonZero turns accumulated cover and area values into coverage,
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.  If all values are zero, nil
// is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest segment length considered
	// when stroking.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the smallest |sin| of a turn angle for which
	// a join is generated.
	collinearityThreshold = 1e-6
)
