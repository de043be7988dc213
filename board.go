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
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"sync"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketch/action"
	"seehuhn.de/go/sketch/history"
	"seehuhn.de/go/sketch/surface"
)

// Board is a drawing board with an undo history.
//
// The board owns the drawing configuration, the history, and the surface
// which shows the committed actions.  Every history change repaints the
// whole surface from the history.
//
// A Board is safe for concurrent use.  Each method runs to completion,
// including the repaint, before the next one starts.
type Board struct {
	mu sync.Mutex

	cfg     Config
	hist    history.History
	surf    *surface.Surface
	eng     *Engine
	capture capture
}

// New creates an empty board of the given size in pixels.
func New(width, height int, opts ...Option) (*Board, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	surf, err := surface.New(width, height, cfg.Background)
	if err != nil {
		return nil, err
	}
	b := &Board{
		cfg:  cfg,
		surf: surf,
		eng:  NewEngine(surf),
	}
	return b, nil
}

// Config returns the current drawing configuration.
func (b *Board) Config() Config {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cfg
}

// SetTool selects the tool for the next gesture.
func (b *Board) SetTool(t action.Tool) error {
	if !t.IsValid() {
		return fmt.Errorf("tool %s: %w", t, action.ErrUnknownTool)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cfg.Tool = t
	return nil
}

// SetColor selects the stroke colour for the next gesture.  If the token
// does not name a colour, an error is returned and the configuration is
// not changed.
func (b *Board) SetColor(token string) error {
	if _, err := surface.ParseColor(token); err != nil {
		return fmt.Errorf("set colour: %w", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cfg.Color = token
	return nil
}

// SetStrokeWidth selects the stroke width for the next gesture.  The width
// must be positive and finite.
func (b *Board) SetStrokeWidth(w float64) error {
	if err := checkWidth(w); err != nil {
		return fmt.Errorf("set width: %w", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cfg.Width = w
	return nil
}

// Undo removes the most recent action from the picture.  If there is
// nothing to undo, nothing changes and false is returned.  A gesture in
// progress is discarded.
func (b *Board) Undo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	discarded := b.abort()
	a, ok := b.hist.Undo()
	if !ok {
		if discarded {
			b.eng.Redraw(b.hist.Committed())
		}
		return false
	}
	b.eng.Redraw(b.hist.Committed())
	b.logChange("undo", a)
	return true
}

// Redo restores the most recently undone action.  If there is nothing to
// redo, nothing changes and false is returned.  A gesture in progress is
// discarded.
func (b *Board) Redo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	discarded := b.abort()
	a, ok := b.hist.Redo()
	if !ok {
		if discarded {
			b.eng.Redraw(b.hist.Committed())
		}
		return false
	}
	b.eng.Redraw(b.hist.Committed())
	b.logChange("redo", a)
	return true
}

// CanUndo reports whether Undo would change the picture.
func (b *Board) CanUndo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.hist.CanUndo()
}

// CanRedo reports whether Redo would change the picture.
func (b *Board) CanRedo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.hist.CanRedo()
}

// Snapshot returns copies of the committed and the undone actions.  The
// last element of undone is the next action to redo.
func (b *Board) Snapshot() (committed, undone []*action.Action) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.hist.Snapshot()
}

// Timeline returns all actions of the history in chronological order.
// See [history.History.Timeline].
func (b *Board) Timeline() []history.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.hist.Timeline()
}

// Commit adds an action which was created outside of the gesture API.
// Like a gesture, this discards all undone actions.  A gesture in
// progress is discarded.
//
// Actions with non-finite coordinates, unknown colours or invalid widths
// are rejected with [ErrInvalidAction].  An action which is already part
// of the history is rejected with [history.ErrDuplicateAction].
func (b *Board) Commit(a *action.Action) error {
	if a == nil {
		return history.ErrNilAction
	}
	if err := checkAction(a); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	discarded := b.abort()
	if err := b.hist.Commit(a); err != nil {
		if discarded {
			b.eng.Redraw(b.hist.Committed())
		}
		return err
	}
	b.eng.Redraw(b.hist.Committed())
	b.logChange("commit", a)
	return nil
}

// Reset removes all actions and clears the surface.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.abort()
	b.hist.Reset()
	b.eng.Redraw(nil)
	Logger().Debug("reset")
}

// Bounds returns the pixel rectangle of the surface.
func (b *Board) Bounds() image.Rectangle {
	return b.surf.Bounds()
}

// Image returns a copy of the current surface.
func (b *Board) Image() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()

	src := b.surf.Image()
	img := image.NewRGBA(src.Bounds())
	copy(img.Pix, src.Pix)
	return img
}

// thumbnailMargin is the border left free around a thumbnail, in pixels.
const thumbnailMargin = 2

// Thumbnail renders a single action on an empty background, scaled so that
// it fits into an image of the given size.
func (b *Board) Thumbnail(a *action.Action, width, height int) (*image.RGBA, error) {
	if a == nil {
		return nil, history.ErrNilAction
	}
	b.mu.Lock()
	bg := b.cfg.Background
	b.mu.Unlock()

	s, err := surface.New(width, height, bg)
	if err != nil {
		return nil, err
	}

	var box rect.Rect
	for i := range a.NumPaths() {
		r := geometry(a, i).Bounds()
		if i == 0 {
			box = r
			continue
		}
		box.LLx = min(box.LLx, r.LLx)
		box.LLy = min(box.LLy, r.LLy)
		box.URx = max(box.URx, r.URx)
		box.URy = max(box.URy, r.URy)
	}

	availW := float64(width - 2*thumbnailMargin)
	availH := float64(height - 2*thumbnailMargin)
	boxW := box.URx - box.LLx
	boxH := box.URy - box.LLy
	scale := 1.0
	if boxW > 0 && boxH > 0 && availW > 0 && availH > 0 {
		scale = min(availW/boxW, availH/boxH)
	}
	// centre the action in the image
	tx := float64(width)/2 - scale*(box.LLx+box.URx)/2
	ty := float64(height)/2 - scale*(box.LLy+box.URy)/2
	s.SetTransform(matrix.Matrix{scale, 0, 0, scale, tx, ty})

	NewEngine(s).Draw(a)
	return s.Image(), nil
}

func (b *Board) logChange(op string, a *action.Action) {
	Logger().Debug(op,
		slog.String("action", a.ID().String()),
		slog.String("tool", a.Tool().String()),
		slog.Int("committed", b.hist.Len()),
		slog.Int("undone", b.hist.NumUndone()))
}

// checkAction verifies that a can be rendered.
func checkAction(a *action.Action) error {
	for i := range a.NumPaths() {
		for _, p := range a.Path(i) {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				return fmt.Errorf("point (%g, %g): %w", p.X, p.Y, ErrInvalidAction)
			}
			if _, err := surface.ParseColor(p.Color); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidAction, err)
			}
			if err := checkWidth(p.Width); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidAction, err)
			}
		}
	}
	return nil
}

// ErrInvalidAction is returned by [Board.Commit] for actions which cannot
// be drawn.
var ErrInvalidAction = errors.New("invalid action")
