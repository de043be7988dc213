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
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/action"
)

// palette lists the colours offered in the colour selector.
var palette = []string{
	"black", "red", "green", "blue", "orange", "purple", "gray", "#ffff0080",
}

type toolbar struct {
	content  fyne.CanvasObject
	undo     *widget.Button
	redo     *widget.Button
	board    *sketch.Board
	onChange func()
}

func newToolbar(b *sketch.Board, view *boardView) *toolbar {
	t := &toolbar{board: b}
	notify := func() {
		view.redraw()
		if t.onChange != nil {
			t.onChange()
		}
	}

	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() {
		if b.Undo() {
			notify()
		}
	})
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), func() {
		if b.Redo() {
			notify()
		}
	})
	reset := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		b.Reset()
		notify()
	})

	cfg := b.Config()

	toolNames := make([]string, len(action.Tools))
	for i, tool := range action.Tools {
		toolNames[i] = tool.String()
	}
	tools := widget.NewSelect(toolNames, func(name string) {
		tool, err := action.ParseTool(name)
		if err == nil {
			err = b.SetTool(tool)
		}
		if err != nil {
			sketch.Logger().Warn("tool not changed",
				slog.String("tool", name),
				slog.Any("error", err))
		}
	})
	tools.SetSelected(cfg.Tool.String())

	colors := widget.NewSelectEntry(palette)
	colors.SetText(cfg.Color)
	colors.OnChanged = func(token string) {
		// incomplete input keeps the previous colour
		b.SetColor(token)
	}

	width := widget.NewSlider(1, 50)
	width.SetValue(cfg.Width)
	width.OnChanged = func(w float64) {
		// the slider range only holds valid widths
		b.SetStrokeWidth(w)
	}
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), width)
	colorBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 35)), colors)

	t.content = container.NewHBox(
		t.undo, t.redo, reset,
		widget.NewSeparator(),
		widget.NewLabel("Tool:"), tools,
		widget.NewSeparator(),
		widget.NewLabel("Colour:"), colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Width:"), widthBox,
		layout.NewSpacer(),
	)
	t.update()
	return t
}

// update enables the undo and redo buttons when they can be used.
func (t *toolbar) update() {
	setEnabled(t.undo, t.board.CanUndo())
	setEnabled(t.redo, t.board.CanRedo())
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
