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

package surface

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"#FF8000", color.NRGBA{255, 128, 0, 255}},
		{"#f80", color.NRGBA{255, 136, 0, 255}},
		{"#12345678", color.NRGBA{0x12, 0x34, 0x56, 0x78}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"Navy", color.NRGBA{0, 0, 128, 255}},
		{" tomato ", color.NRGBA{255, 99, 71, 255}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "#", "#12", "#12345", "#ggg", "#1234567890", "reddish", "rgb(1,2,3)"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): got %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestNew(t *testing.T) {
	s, err := New(4, 3, "#102030")
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{0x10, 0x20, 0x30, 0xff}
	for y := range 3 {
		for x := range 4 {
			if got := s.Image().RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if _, err := New(0, 10, "white"); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width: got %v", err)
	}
	if _, err := New(10, 10, "nocolour"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("bad background: got %v", err)
	}
}

func line(x0, y0, x1, y1 float64) path.Path {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		Iter()
}

func TestStroke(t *testing.T) {
	s, _ := New(20, 20, "#ffffff")
	if err := s.Stroke(line(4, 10, 18, 10), "#ff0000", 4); err != nil {
		t.Fatal(err)
	}

	img := s.Image()
	if got := img.RGBAAt(10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("centre = %v, want opaque red", got)
	}
	if got := img.RGBAAt(10, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside = %v, want white", got)
	}
	// round caps extend beyond the end points
	if got := img.RGBAAt(1, 10); got.G != 255 {
		t.Errorf("pixel left of the cap = %v, want white", got)
	}
	if got := img.RGBAAt(2, 10); got.G == 255 {
		t.Errorf("cap pixel = %v, want partly red", got)
	}
}

func TestStrokeErrors(t *testing.T) {
	s, _ := New(10, 10, "white")
	before := bytes.Clone(s.Image().Pix)

	if err := s.Stroke(line(1, 1, 8, 8), "#zz0000", 2); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("bad colour: got %v", err)
	}
	if err := s.Stroke(line(1, 1, 8, 8), "black", 0); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("zero width: got %v", err)
	}
	if !bytes.Equal(before, s.Image().Pix) {
		t.Error("failed strokes modified the image")
	}
}

func TestTranslucent(t *testing.T) {
	s, _ := New(10, 10, "#ffffff")
	s.Stroke(line(0, 5, 10, 5), "#00000080", 4)
	got := s.Image().RGBAAt(5, 5)
	if got.A != 255 || got.R < 120 || got.R > 135 || got.R != got.G || got.G != got.B {
		t.Errorf("half transparent black on white = %v, want mid grey", got)
	}
}

func TestOverpaint(t *testing.T) {
	// Painting the background colour over a stroke restores the pixels
	// wherever the second stroke covers the first completely.
	s, _ := New(30, 30, "#ffffff")
	s.Stroke(line(5, 15, 25, 15), "navy", 3)
	s.Stroke(line(5, 15, 25, 15), "#ffffff", 20)

	want := color.RGBA{255, 255, 255, 255}
	for y := range 30 {
		for x := range 30 {
			if got := s.Image().RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	render := func(s *Surface) []byte {
		s.Clear()
		s.Stroke(line(3, 4, 27, 19), "teal", 5)
		s.Stroke(line(27, 3, 2, 28), "#ff000080", 2.5)
		return bytes.Clone(s.Image().Pix)
	}

	s, _ := New(30, 30, "ivory")
	first := render(s)
	s.Stroke(line(0, 0, 30, 30), "black", 9)
	second := render(s)
	third := render(s.Clone())

	if !bytes.Equal(first, second) || !bytes.Equal(first, third) {
		t.Error("rendering is not deterministic")
	}
}

func TestClone(t *testing.T) {
	s, _ := New(10, 10, "white")
	c := s.Clone()
	c.Stroke(line(0, 5, 10, 5), "black", 4)
	if s.Image().RGBAAt(5, 5) != (color.RGBA{255, 255, 255, 255}) {
		t.Error("drawing on the clone changed the original")
	}
	if c.Background() != "white" {
		t.Errorf("clone background %q", c.Background())
	}
}

func TestTransform(t *testing.T) {
	s, _ := New(20, 20, "white")
	s.SetTransform(matrix.Scale(0.5, 0.5))
	s.Stroke(line(4, 20, 36, 20), "black", 8)

	// device space: y in [8, 12], x in [2, 18]
	img := s.Image()
	if got := img.RGBAAt(10, 9); got.R != 0 {
		t.Errorf("inside = %v, want black", got)
	}
	if got := img.RGBAAt(10, 13); got.R != 255 {
		t.Errorf("outside = %v, want white", got)
	}
}
