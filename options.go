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
	"fmt"
	"math"

	"seehuhn.de/go/sketch/action"
	"seehuhn.de/go/sketch/surface"
)

// Config is the drawing style which is applied to new gestures.
type Config struct {
	Tool  action.Tool
	Color string
	Width float64

	// Background is the colour of an empty board.  It is also the colour
	// of the eraser.
	Background string
}

// EraserWidth is the stroke width used by the eraser tool.
const EraserWidth = 20.0

// DefaultConfig returns the configuration of a new board.
func DefaultConfig() Config {
	return Config{
		Tool:       action.Draw,
		Color:      "#000000",
		Width:      2,
		Background: "#ffffff",
	}
}

// Option configures a Board during creation.
//
// Example:
//
//	b, err := sketch.New(800, 600,
//	    sketch.WithColor("navy"),
//	    sketch.WithStrokeWidth(4))
type Option func(*Config)

// WithBackground sets the background colour of the board.
func WithBackground(token string) Option {
	return func(c *Config) {
		c.Background = token
	}
}

// WithTool sets the initial tool.
func WithTool(t action.Tool) Option {
	return func(c *Config) {
		c.Tool = t
	}
}

// WithColor sets the initial stroke colour.
func WithColor(token string) Option {
	return func(c *Config) {
		c.Color = token
	}
}

// WithStrokeWidth sets the initial stroke width.
func WithStrokeWidth(w float64) Option {
	return func(c *Config) {
		c.Width = w
	}
}

// validate checks that all fields of the configuration are usable.
func (c Config) validate() error {
	if !c.Tool.IsValid() {
		return fmt.Errorf("tool %s: %w", c.Tool, action.ErrUnknownTool)
	}
	if _, err := surface.ParseColor(c.Color); err != nil {
		return fmt.Errorf("colour: %w", err)
	}
	if err := checkWidth(c.Width); err != nil {
		return err
	}
	if _, err := surface.ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

func checkWidth(w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("stroke width %g: %w", w, surface.ErrInvalidWidth)
	}
	return nil
}

// style returns the colour and width given to the points of a new gesture.
func (c Config) style() (string, float64) {
	if c.Tool == action.Eraser {
		return c.Background, EraserWidth
	}
	return c.Color, c.Width
}
