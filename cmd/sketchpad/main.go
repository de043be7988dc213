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

// Command sketchpad is a small drawing program with undo and redo.
//
// The window shows a toolbar, the drawing surface, and a timeline of all
// actions.  Ctrl+Z undoes the last action, Ctrl+Y redoes it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"seehuhn.de/go/sketch"
)

func main() {
	width := flag.Int("width", 800, "width of the drawing surface")
	height := flag.Int("height", 600, "height of the drawing surface")
	background := flag.String("bg", "#ffffff", "background colour")
	verbose := flag.Bool("v", false, "log history changes to stderr")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		sketch.SetLogger(slog.New(h))
	}

	b, err := sketch.New(*width, *height, sketch.WithBackground(*background))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketchpad:", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("Sketchpad")

	view := newBoardView(b)
	tl := newTimeline(b)
	bar := newToolbar(b, view)
	view.onChange = func() {
		bar.update()
		tl.update()
	}
	bar.onChange = view.onChange

	content := container.NewBorder(bar.content, nil, nil, tl.content,
		container.NewScroll(view))
	w.SetContent(content)
	w.Resize(fyne.NewSize(float32(*width)+260, float32(*height)+80))

	w.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		if b.Undo() {
			view.changed()
		}
	})
	w.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyY,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		if b.Redo() {
			view.changed()
		}
	})

	w.ShowAndRun()
}
