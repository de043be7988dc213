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

// Package surface implements the raster image which strokes are drawn onto.
//
// A [Surface] wraps an [image.RGBA] together with its background colour.
// Strokes are rasterised with round caps and joins and composited onto the
// image using the source-over operator.  All arithmetic is done in fixed
// point, so that drawing the same strokes onto a cleared surface always
// gives bit-identical pixels.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/raster"
)

// Surface is a raster image with a background colour.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	img        *image.RGBA
	background string
	bg         color.RGBA

	r   *raster.Rasterizer
	ctm matrix.Matrix

	// parsed style tokens
	colors map[string]color.RGBA

	// the colour used by the current stroke, premultiplied, 16 bit
	sr, sg, sb, sa uint32
}

// New allocates a surface of the given size, cleared to the background
// colour.
func New(width, height int, background string) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	bg, err := ParseColor(background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
		bg:         color.RGBAModel.Convert(bg).(color.RGBA),
		ctm:        matrix.Identity,
		colors:     make(map[string]color.RGBA),
	}
	s.r = raster.NewRasterizer(s.clip())
	s.Clear()
	return s, nil
}

func (s *Surface) clip() rect.Rect {
	b := s.img.Bounds()
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Bounds returns the pixel rectangle of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Background returns the style token of the background colour.
func (s *Surface) Background() string {
	return s.background
}

// Image returns the backing image.  The image is modified by later drawing
// operations.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the whole surface with the background colour.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
}

// SetTransform sets the matrix which maps stroke coordinates to pixel
// coordinates.  Stroke widths are transformed as well.
func (s *Surface) SetTransform(m matrix.Matrix) {
	s.ctm = m
}

// Transform returns the current transformation matrix.
func (s *Surface) Transform() matrix.Matrix {
	return s.ctm
}

// Stroke draws the outline of p in the given colour, using round caps and
// joins.  The width is given in stroke coordinates.
func (s *Surface) Stroke(p path.Path, token string, width float64) error {
	if !(width > 0) || math.IsInf(width, 0) {
		return fmt.Errorf("%g: %w", width, ErrInvalidWidth)
	}
	c, err := s.lookup(token)
	if err != nil {
		return err
	}
	if c.A == 0 {
		return nil
	}
	s.sr = uint32(c.R) * 0x101
	s.sg = uint32(c.G) * 0x101
	s.sb = uint32(c.B) * 0x101
	s.sa = uint32(c.A) * 0x101

	s.r.Reset(s.clip())
	s.r.CTM = s.ctm
	s.r.Width = width
	s.r.Cap = graphics.LineCapRound
	s.r.Join = graphics.LineJoinRound
	s.r.Stroke(p, s.composite)
	return nil
}

// lookup returns the premultiplied colour for a style token.
func (s *Surface) lookup(token string) (color.RGBA, error) {
	if c, ok := s.colors[token]; ok {
		return c, nil
	}
	nc, err := ParseColor(token)
	if err != nil {
		return color.RGBA{}, err
	}
	c := color.RGBAModel.Convert(nc).(color.RGBA)
	s.colors[token] = c
	return c, nil
}

// composite blends the current stroke colour onto one row of pixels,
// using coverage as the mask.
func (s *Surface) composite(y, xMin int, coverage []float32) {
	const m = 0xffff
	offs := s.img.PixOffset(xMin, y)
	pix := s.img.Pix[offs : offs+4*len(coverage)]
	for i, cov := range coverage {
		ma := uint32(cov*m + 0.5)
		if ma == 0 {
			continue
		}
		a := m - s.sa*ma/m

		px := pix[4*i : 4*i+4 : 4*i+4]
		dr := uint32(px[0]) * 0x101
		dg := uint32(px[1]) * 0x101
		db := uint32(px[2]) * 0x101
		da := uint32(px[3]) * 0x101
		px[0] = uint8((dr*a + s.sr*ma) / m >> 8)
		px[1] = uint8((dg*a + s.sg*ma) / m >> 8)
		px[2] = uint8((db*a + s.sb*ma) / m >> 8)
		px[3] = uint8((da*a + s.sa*ma) / m >> 8)
	}
}

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	img := image.NewRGBA(s.img.Bounds())
	copy(img.Pix, s.img.Pix)
	c := &Surface{
		img:        img,
		background: s.background,
		bg:         s.bg,
		ctm:        s.ctm,
		colors:     make(map[string]color.RGBA, len(s.colors)),
	}
	for k, v := range s.colors {
		c.colors[k] = v
	}
	c.r = raster.NewRasterizer(c.clip())
	return c
}

var (
	// ErrInvalidSize indicates a surface without pixels.
	ErrInvalidSize = errors.New("invalid surface size")

	// ErrInvalidWidth indicates a stroke width which is not a positive
	// finite number.
	ErrInvalidWidth = errors.New("invalid stroke width")
)
