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
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor converts a style token into a colour.
//
// The token is either a hexadecimal colour of the form #rgb, #rrggbb or
// #rrggbbaa, or one of the SVG 1.1 colour keywords, like "navy" or
// "tomato".  Case is ignored.
func ParseColor(token string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(token))

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%q: %w", token, ErrInvalidColor)
		}
		switch len(hex) {
		case 3:
			return color.NRGBA{
				R: uint8(v>>8) * 0x11,
				G: uint8(v>>4&0xf) * 0x11,
				B: uint8(v&0xf) * 0x11,
				A: 0xff,
			}, nil
		case 6:
			return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		case 8:
			return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
		}
		return color.NRGBA{}, fmt.Errorf("%q: %w", token, ErrInvalidColor)
	}

	if c, ok := colornames.Map[s]; ok {
		// all named colours are opaque
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%q: %w", token, ErrInvalidColor)
}

// ErrInvalidColor is returned for style tokens which do not name a colour.
var ErrInvalidColor = errors.New("invalid colour")
