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
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/history"
)

const (
	thumbWidth  = 48
	thumbHeight = 36
)

// timeline lists the actions of the history, with a thumbnail for each.
type timeline struct {
	content fyne.CanvasObject
	list    *widget.List
	board   *sketch.Board
	entries []history.Entry

	// thumbnails never change, since actions are immutable
	thumbs map[uuid.UUID]image.Image
}

func newTimeline(b *sketch.Board) *timeline {
	t := &timeline{
		board:  b,
		thumbs: make(map[uuid.UUID]image.Image),
	}
	t.list = widget.NewList(
		func() int {
			return len(t.entries)
		},
		func() fyne.CanvasObject {
			img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight)))
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(thumbWidth, thumbHeight))
			return container.NewHBox(img, widget.NewLabel(""))
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= len(t.entries) {
				return
			}
			e := t.entries[i]
			row := o.(*fyne.Container)
			img := row.Objects[0].(*canvas.Image)
			img.Image = t.thumbnail(e)
			img.Refresh()
			label := row.Objects[1].(*widget.Label)
			label.SetText(fmt.Sprintf("%d. %s (%s)", i+1, e.Action.Tool(), e.State))
		},
	)
	t.content = container.NewGridWrap(fyne.NewSize(240, 600), t.list)
	t.update()
	return t
}

func (t *timeline) thumbnail(e history.Entry) image.Image {
	id := e.Action.ID()
	if img, ok := t.thumbs[id]; ok {
		return img
	}
	img, err := t.board.Thumbnail(e.Action, thumbWidth, thumbHeight)
	if err != nil {
		return image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	}
	t.thumbs[id] = img
	return img
}

// update reloads the entries from the board history.
func (t *timeline) update() {
	t.entries = t.board.Timeline()

	// drop thumbnails of discarded actions
	live := make(map[uuid.UUID]bool, len(t.entries))
	for _, e := range t.entries {
		live[e.Action.ID()] = true
	}
	for id := range t.thumbs {
		if !live[id] {
			delete(t.thumbs, id)
		}
	}

	t.list.Refresh()
	if len(t.entries) > 0 {
		t.list.ScrollToBottom()
	}
}
