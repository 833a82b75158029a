// Package selection implements the cell focus and range selection state
// machine of a table block.
//
// All state lives in a State value and changes only through Transition, so
// every transition can be exercised on its own:
//
//	Idle ──Focus/Click──▶ CellFocused / RangePicking ──Extend──▶ RangeSelected
//	  ▲                                                              │
//	  └──────────── Resize (focus lost) ◀── TableFocusIn / Merged ◀──┘
package selection

import (
	"fmt"

	"github.com/dshills/gridblock/internal/grid"
)

// Phase is the coarse state of the selection.
type Phase int

const (
	// Idle has no selected cell and no range.
	Idle Phase = iota
	// CellFocused has a selected cell and no range corner.
	CellFocused
	// RangePicking has a selected cell recorded as the first range corner.
	RangePicking
	// RangeSelected has a complete rectangular range.
	RangeSelected
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case CellFocused:
		return "cell-focused"
	case RangePicking:
		return "range-picking"
	case RangeSelected:
		return "range-selected"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is an immutable snapshot of the selection.
type State struct {
	Phase Phase

	// Focus is the selected cell, the anchor for row and column edits.
	// Valid in every phase except Idle. In RangePicking and RangeSelected
	// it is also the last picked cell, where the next Extend starts.
	Focus grid.Pos

	// Range is the picked rectangle. Valid in RangeSelected.
	Range grid.Rect

	// Rows and Cols are the grid bounds positions are checked against.
	Rows int
	Cols int
}

// New returns an Idle state for a grid of the given size.
func New(rows, cols int) State {
	return State{Phase: Idle, Rows: rows, Cols: cols}
}

// Selected returns the selected cell.
func (s State) Selected() (grid.Pos, bool) {
	if s.Phase == Idle {
		return grid.Pos{}, false
	}
	return s.Focus, true
}

// Selection returns the picked range.
func (s State) Selection() (grid.Rect, bool) {
	if s.Phase != RangeSelected {
		return grid.Rect{}, false
	}
	return s.Range, true
}

// Highlighted reports whether p is inside the picked range.
func (s State) Highlighted(p grid.Pos) bool {
	r, ok := s.Selection()
	return ok && r.Has(p)
}

func (s State) inBounds(p grid.Pos) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

func (s State) picking() bool {
	return s.Phase == RangePicking || s.Phase == RangeSelected
}

func (s State) focused() State {
	if s.Phase == Idle {
		return s
	}
	return State{Phase: CellFocused, Focus: s.Focus, Rows: s.Rows, Cols: s.Cols}
}
