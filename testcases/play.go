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

package testcases

import (
	"fmt"

	"seehuhn.de/go/sketch"
)

// NewBoard creates an empty board for the test case.
func (tc TestCase) NewBoard() (*sketch.Board, error) {
	var opts []sketch.Option
	if tc.Background != "" {
		opts = append(opts, sketch.WithBackground(tc.Background))
	}
	return sketch.New(tc.Width, tc.Height, opts...)
}

// Run creates a board for the test case and plays all steps on it.
func (tc TestCase) Run() (*sketch.Board, error) {
	b, err := tc.NewBoard()
	if err != nil {
		return nil, err
	}
	for i, step := range tc.Steps {
		if err := Play(b, step); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", tc.Name, i, err)
		}
	}
	return b, nil
}

// Play performs a single step on the board, in the same way as a user
// would: select the tool and style, then drag the pointer.
func Play(b *sketch.Board, step Step) error {
	switch s := step.(type) {
	case Leave:
		if err := gesture(b, s.Gesture); err != nil {
			return err
		}
		b.GestureLeave()
	case Gesture:
		if err := gesture(b, s); err != nil {
			return err
		}
		b.GestureEnd()
	case Undo:
		b.Undo()
	case Redo:
		b.Redo()
	case Reset:
		b.Reset()
	default:
		return fmt.Errorf("unknown step type %T", step)
	}
	return nil
}

// gesture sets up the style and moves the pointer through all points of
// g, without releasing it.
func gesture(b *sketch.Board, g Gesture) error {
	if err := b.SetTool(g.Tool); err != nil {
		return err
	}
	if g.Color != "" {
		if err := b.SetColor(g.Color); err != nil {
			return err
		}
	}
	if g.Width != 0 {
		if err := b.SetStrokeWidth(g.Width); err != nil {
			return err
		}
	}
	if len(g.Points) == 0 {
		return nil
	}
	b.GestureBegin(g.Points[0].X, g.Points[0].Y)
	for _, p := range g.Points[1:] {
		b.GestureMove(p.X, p.Y)
	}
	return nil
}
