package selection

import "github.com/dshills/gridblock/internal/grid"

// Event is an input to Transition.
type Event interface {
	selectionEvent()
}

// Focus moves focus into the editable region of a cell, for example by
// keyboard navigation or a programmatic select. Any range is dropped.
type Focus struct {
	Pos grid.Pos
}

// Click is a plain click on a cell. The cell becomes the first range corner.
type Click struct {
	Pos grid.Pos
}

// Extend is a click with the range modifier held. The range spans from the
// last picked cell to Pos, and Pos becomes the last picked cell.
type Extend struct {
	Pos grid.Pos
}

// TableFocusIn is focus entering the table from outside. It clears every
// highlight and drops the range.
type TableFocusIn struct{}

// Merged reports that the picked range was merged.
type Merged struct{}

// Resize reports new grid bounds after a structural edit. Focus is kept
// when still in bounds; a range never survives a resize.
type Resize struct {
	Rows int
	Cols int
	// Focus, when set, replaces the selected cell (the cell the edit moved).
	Focus *grid.Pos
}

// Blur drops the selected cell.
type Blur struct{}

func (Focus) selectionEvent()        {}
func (Click) selectionEvent()        {}
func (Extend) selectionEvent()       {}
func (TableFocusIn) selectionEvent() {}
func (Merged) selectionEvent()       {}
func (Resize) selectionEvent()       {}
func (Blur) selectionEvent()         {}

// Transition returns the state that follows s on event e.
// Events naming cells outside the grid leave s unchanged.
func Transition(s State, e Event) State {
	switch ev := e.(type) {
	case Focus:
		if !s.inBounds(ev.Pos) {
			return s
		}
		return State{Phase: CellFocused, Focus: ev.Pos, Rows: s.Rows, Cols: s.Cols}

	case Click:
		if !s.inBounds(ev.Pos) {
			return s
		}
		return State{Phase: RangePicking, Focus: ev.Pos, Rows: s.Rows, Cols: s.Cols}

	case Extend:
		if !s.inBounds(ev.Pos) {
			return s
		}
		if !s.picking() {
			return Transition(s, Click(ev))
		}
		return State{
			Phase: RangeSelected,
			Focus: ev.Pos,
			Range: grid.RectFromCorners(s.Focus, ev.Pos),
			Rows:  s.Rows,
			Cols:  s.Cols,
		}

	case TableFocusIn:
		return s.focused()

	case Merged:
		if s.Phase != RangeSelected {
			return s.focused()
		}
		return State{Phase: CellFocused, Focus: s.Range.TopLeft(), Rows: s.Rows, Cols: s.Cols}

	case Resize:
		next := State{Phase: s.Phase, Focus: s.Focus, Rows: ev.Rows, Cols: ev.Cols}
		if ev.Focus != nil {
			next.Phase = CellFocused
			next.Focus = *ev.Focus
		}
		if next.Phase == Idle || !next.inBounds(next.Focus) {
			return New(ev.Rows, ev.Cols)
		}
		return next.focused()

	case Blur:
		return New(s.Rows, s.Cols)

	default:
		return s
	}
}
