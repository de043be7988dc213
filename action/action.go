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

// Package action defines the unit of drawing history.
//
// An [Action] records one completed gesture: the tool which was active and
// the sampled points, each carrying its own colour and stroke width.
// Actions are immutable once created, so that replaying the same list of
// actions always produces the same picture.
package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Point is a sample of a gesture, in surface coordinates.
type Point struct {
	X, Y float64

	// Color is a style token, for example "#ff0000" or "navy".
	Color string

	// Width is the stroke width in surface units.
	Width float64
}

// Tool selects how the points of an action are turned into a picture.
type Tool int

// The supported tools.
const (
	Draw Tool = iota
	Eraser
	Circle
	Rectangle
	Triangle
	Line
)

var toolNames = [...]string{
	Draw:      "draw",
	Eraser:    "eraser",
	Circle:    "circle",
	Rectangle: "rectangle",
	Triangle:  "triangle",
	Line:      "line",
}

// Tools lists all tools, in the order they appear in a tool palette.
var Tools = []Tool{Draw, Eraser, Circle, Rectangle, Triangle, Line}

// IsShape reports whether the tool draws a parametric shape, defined by the
// first and last point of a gesture.
func (t Tool) IsShape() bool {
	switch t {
	case Circle, Rectangle, Triangle, Line:
		return true
	default:
		return false
	}
}

// IsValid reports whether t is one of the defined tools.
func (t Tool) IsValid() bool {
	return t >= Draw && t <= Line
}

func (t Tool) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool converts a tool name, as returned by [Tool.String], back into
// a Tool.  The name "pencil" is accepted as an alias for [Draw].
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "pencil" {
		return Draw, nil
	}
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownTool)
}

// Action is one completed drawing operation.
//
// An action holds at least one path and every path holds at least one
// point.  The zero value is not a valid Action; use [New].
type Action struct {
	id    uuid.UUID
	tool  Tool
	paths [][]Point
}

// New creates an action from the given paths.  The points are copied.
//
// If no paths are given, or if one of the paths is empty, New returns
// [ErrEmptyGesture].
func New(tool Tool, paths ...[]Point) (*Action, error) {
	if !tool.IsValid() {
		return nil, fmt.Errorf("%s: %w", tool, ErrUnknownTool)
	}
	if len(paths) == 0 {
		return nil, ErrEmptyGesture
	}
	a := &Action{
		id:    uuid.New(),
		tool:  tool,
		paths: make([][]Point, len(paths)),
	}
	for i, p := range paths {
		if len(p) == 0 {
			return nil, ErrEmptyGesture
		}
		a.paths[i] = append([]Point(nil), p...)
	}
	return a, nil
}

// ID returns the unique identifier of the action.
func (a *Action) ID() uuid.UUID {
	return a.id
}

// Tool returns the tool which created the action.
func (a *Action) Tool() Tool {
	return a.tool
}

// NumPaths returns the number of paths in the action.
func (a *Action) NumPaths() int {
	return len(a.paths)
}

// Path returns a copy of path i.
func (a *Action) Path(i int) []Point {
	return append([]Point(nil), a.paths[i]...)
}

// NumPoints returns the total number of points in all paths.
func (a *Action) NumPoints() int {
	n := 0
	for _, p := range a.paths {
		n += len(p)
	}
	return n
}

// Style returns the colour and width of the first point.
func (a *Action) Style() (color string, width float64) {
	p := a.paths[0][0]
	return p.Color, p.Width
}

// Endpoints returns the first and the last point of path i.  Parametric
// shapes are defined by these two points.
func (a *Action) Endpoints(i int) (first, last Point) {
	p := a.paths[i]
	return p[0], p[len(p)-1]
}

func (a *Action) String() string {
	return fmt.Sprintf("%s %s (%d points)", a.tool, a.id.String()[:8], a.NumPoints())
}

var (
	// ErrEmptyGesture is returned when an action would contain no points.
	ErrEmptyGesture = errors.New("empty gesture")

	// ErrUnknownTool indicates a tool value or name outside the defined set.
	ErrUnknownTool = errors.New("unknown tool")
)
