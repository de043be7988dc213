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

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch"
)

// boardView shows the surface of a board and turns pointer events into
// gestures.
type boardView struct {
	widget.BaseWidget

	board    *sketch.Board
	img      *canvas.Image
	onChange func()
}

var (
	_ fyne.Widget       = (*boardView)(nil)
	_ fyne.Draggable    = (*boardView)(nil)
	_ desktop.Mouseable = (*boardView)(nil)
	_ desktop.Hoverable = (*boardView)(nil)
)

func newBoardView(b *sketch.Board) *boardView {
	v := &boardView{board: b}
	v.img = canvas.NewImageFromImage(b.Image())
	v.img.FillMode = canvas.ImageFillOriginal
	v.img.ScaleMode = canvas.ImageScalePixels
	v.ExtendBaseWidget(v)
	return v
}

func (v *boardView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.img)
}

func (v *boardView) MinSize() fyne.Size {
	r := v.board.Bounds()
	return fyne.NewSize(float32(r.Dx()), float32(r.Dy()))
}

// inside reports whether pos is a point of the board surface.
func (v *boardView) inside(pos fyne.Position) bool {
	r := v.board.Bounds()
	return pos.X >= float32(r.Min.X) && pos.X <= float32(r.Max.X) &&
		pos.Y >= float32(r.Min.Y) && pos.Y <= float32(r.Max.Y)
}

func (v *boardView) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !v.inside(e.Position) {
		return
	}
	v.board.GestureBegin(float64(e.Position.X), float64(e.Position.Y))
	v.redraw()
}

func (v *boardView) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if v.board.GestureEnd() {
		v.changed()
	}
}

func (v *boardView) Dragged(e *fyne.DragEvent) {
	if !v.board.Drawing() {
		return
	}
	if !v.inside(e.Position) {
		if v.board.GestureLeave() {
			v.changed()
		}
		return
	}
	v.board.GestureMove(float64(e.Position.X), float64(e.Position.Y))
	v.redraw()
}

func (v *boardView) DragEnd() {
	if v.board.GestureEnd() {
		v.changed()
	}
}

func (v *boardView) MouseIn(*desktop.MouseEvent) {}

func (v *boardView) MouseMoved(*desktop.MouseEvent) {}

func (v *boardView) MouseOut() {
	if v.board.GestureLeave() {
		v.changed()
	}
}

// redraw copies the board surface to the screen.
func (v *boardView) redraw() {
	v.img.Image = v.board.Image()
	v.img.Refresh()
}

// changed is called after every change of the history.
func (v *boardView) changed() {
	v.redraw()
	if v.onChange != nil {
		v.onChange()
	}
}
