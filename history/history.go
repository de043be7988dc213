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

// Package history keeps the linear undo/redo history of a drawing.
//
// The history consists of two stacks.  The committed stack holds the
// actions which make up the current picture, oldest first.  The undone
// stack holds actions which were undone and can be redone; its top is the
// next action to redo.  Undo and Redo move one action between the tops of
// the two stacks, so that a redo exactly reverses the preceding undo.
package history

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/sketch/action"
)

// History is an undo/redo history of drawing actions.
//
// The zero value is an empty history, ready to use.  A History is not safe
// for concurrent use.
type History struct {
	committed []*action.Action
	undone    []*action.Action
}

// Commit appends a new action to the committed stack.  Any undone actions
// are discarded, since they no longer follow from the current state.
//
// An action can be part of the history only once.  Committing an action
// which is already on one of the stacks fails with [ErrDuplicateAction].
func (h *History) Commit(a *action.Action) error {
	if a == nil {
		return ErrNilAction
	}
	if h.contains(a) {
		return fmt.Errorf("action %s: %w", a.ID(), ErrDuplicateAction)
	}
	h.committed = append(h.committed, a)
	clear(h.undone)
	h.undone = h.undone[:0]
	return nil
}

// Undo moves the most recent committed action to the undone stack and
// returns it.  If there is nothing to undo, the history is left unchanged
// and false is returned.
func (h *History) Undo() (*action.Action, bool) {
	n := len(h.committed)
	if n == 0 {
		return nil, false
	}
	a := h.committed[n-1]
	h.committed[n-1] = nil
	h.committed = h.committed[:n-1]
	h.undone = append(h.undone, a)
	return a, true
}

// Redo moves the most recently undone action back to the committed stack
// and returns it.  If there is nothing to redo, the history is left
// unchanged and false is returned.
func (h *History) Redo() (*action.Action, bool) {
	n := len(h.undone)
	if n == 0 {
		return nil, false
	}
	a := h.undone[n-1]
	h.undone[n-1] = nil
	h.undone = h.undone[:n-1]
	h.committed = append(h.committed, a)
	return a, true
}

func (h *History) contains(a *action.Action) bool {
	id := a.ID()
	same := func(b *action.Action) bool { return b.ID() == id }
	return slices.ContainsFunc(h.committed, same) || slices.ContainsFunc(h.undone, same)
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.committed) > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return len(h.undone) > 0
}

// Len returns the number of committed actions.
func (h *History) Len() int {
	return len(h.committed)
}

// NumUndone returns the number of actions which can be redone.
func (h *History) NumUndone() int {
	return len(h.undone)
}

// Committed returns a copy of the committed stack, oldest first.
func (h *History) Committed() []*action.Action {
	return slices.Clone(h.committed)
}

// Snapshot returns copies of both stacks.  The last element of undone is
// the next action to redo.
func (h *History) Snapshot() (committed, undone []*action.Action) {
	return slices.Clone(h.committed), slices.Clone(h.undone)
}

// Reset removes all actions from both stacks.
func (h *History) Reset() {
	clear(h.committed)
	clear(h.undone)
	h.committed = h.committed[:0]
	h.undone = h.undone[:0]
}

// State describes the position of an action in the timeline.
type State int

// These are the possible values of [State].
const (
	// Applied actions are part of the picture.
	Applied State = iota

	// Current is the most recent applied action, the one which Undo
	// would remove.
	Current

	// Undone actions can be restored by Redo.
	Undone
)

func (s State) String() string {
	switch s {
	case Applied:
		return "applied"
	case Current:
		return "current"
	case Undone:
		return "undone"
	default:
		return "unknown"
	}
}

// Entry is one line of the timeline.
type Entry struct {
	Action *action.Action
	State  State
}

// Timeline lists all actions in chronological order: first the committed
// actions, oldest first, then the undone actions in the order in which
// Redo would restore them.
func (h *History) Timeline() []Entry {
	res := make([]Entry, 0, len(h.committed)+len(h.undone))
	for i, a := range h.committed {
		state := Applied
		if i == len(h.committed)-1 {
			state = Current
		}
		res = append(res, Entry{Action: a, State: state})
	}
	for _, a := range slices.Backward(h.undone) {
		res = append(res, Entry{Action: a, State: Undone})
	}
	return res
}

var (
	// ErrNilAction is returned when committing a nil action.
	ErrNilAction = errors.New("nil action")

	// ErrDuplicateAction is returned when committing an action which is
	// already part of the history.
	ErrDuplicateAction = errors.New("action already in history")
)
