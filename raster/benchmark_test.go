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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// circleKappa places the control points of a cubic Bézier quarter circle.
const circleKappa = 4 * (math.Sqrt2 - 1) / 3

var benchSizes = []int{20, 200, 2000}

// BenchmarkFillDisc fills a disc covering most of the canvas.
func BenchmarkFillDisc(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			disc := circle(c, c, 0.45*float64(size))

			b.ReportAllocs()
			for b.Loop() {
				r.Fill(disc.Iter(), func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorDisc draws the same disc with x/image/vector, for
// comparison.
func BenchmarkVectorDisc(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size) / 2
			rad := 0.45 * float32(size)
			k := circleKappa * rad

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(c, c-rad)
				r.CubeTo(c+k, c-rad, c+rad, c-k, c+rad, c)
				r.CubeTo(c+rad, c+k, c+k, c+rad, c, c+rad)
				r.CubeTo(c-k, c+rad, c-rad, c+k, c-rad, c)
				r.CubeTo(c-rad, c-k, c-k, c-rad, c, c-rad)
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeScribble strokes a long freehand-like polyline with round
// caps and joins, the typical workload of a sketch redraw.
func BenchmarkStrokeScribble(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%dpts", n), func(b *testing.B) {
			const size = 500
			r := NewRasterizer(rect.Rect{URx: size, URy: size})
			r.Width = 4
			r.Cap = graphics.LineCapRound
			r.Join = graphics.LineJoinRound

			p := &path.Data{}
			for i := range n {
				t := float64(i) / float64(n)
				pt := vec.Vec2{
					X: 250 + 200*math.Sin(7*t)*math.Cos(3*t),
					Y: 250 + 200*math.Sin(5*t),
				}
				if i == 0 {
					p.MoveTo(pt)
				} else {
					p.LineTo(pt)
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Stroke(p.Iter(), func(int, int, []float32) {})
			}
		})
	}
}

// circle returns a counter-clockwise circle made of four cubic Bézier
// segments.
func circle(cx, cy, rad float64) *path.Data {
	k := circleKappa * rad
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return (&path.Data{}).
		MoveTo(pt(cx, cy-rad)).
		CubeTo(pt(cx+k, cy-rad), pt(cx+rad, cy-k), pt(cx+rad, cy)).
		CubeTo(pt(cx+rad, cy+k), pt(cx+k, cy+rad), pt(cx, cy+rad)).
		CubeTo(pt(cx-k, cy+rad), pt(cx-rad, cy+k), pt(cx-rad, cy)).
		CubeTo(pt(cx-rad, cy-k), pt(cx-k, cy-rad), pt(cx, cy-rad)).
		Close()
}
