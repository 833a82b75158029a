package block

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/input/keymap"
	"github.com/dshills/gridblock/internal/logging"
	"github.com/dshills/gridblock/internal/render/dom"
	"github.com/dshills/gridblock/internal/selection"
)

// Editor is the table block. It is driven from a single goroutine, the
// host's event loop, and is not safe for concurrent use.
type Editor struct {
	id       string
	grid     *grid.Grid
	sel      selection.State
	headings bool
	readOnly bool

	confirm  ConfirmFunc
	alert    AlertFunc
	onChange func(*Editor)
	keymap   *keymap.Keymap
	logger   *logging.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithID sets the block id instead of generating one.
func WithID(id string) Option {
	return func(e *Editor) { e.id = id }
}

// WithConfirm sets the confirmation policy. The default declines, so a
// host that never wires one cannot lose cell content.
func WithConfirm(fn ConfirmFunc) Option {
	return func(e *Editor) { e.confirm = fn }
}

// WithAlert sets the callback for user-facing warnings.
func WithAlert(fn AlertFunc) Option {
	return func(e *Editor) { e.alert = fn }
}

// WithOnChange sets a callback run after every change to the grid.
func WithOnChange(fn func(*Editor)) Option {
	return func(e *Editor) { e.onChange = fn }
}

// WithKeymap sets the chord bindings. Defaults to keymap.Default().
func WithKeymap(km *keymap.Keymap) Option {
	return func(e *Editor) { e.keymap = km }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// WithHeadings renders the first row as header cells.
func WithHeadings(on bool) Option {
	return func(e *Editor) { e.headings = on }
}

// WithReadOnly renders cells without contenteditable.
func WithReadOnly(on bool) Option {
	return func(e *Editor) { e.readOnly = on }
}

// New creates an empty 0x0 table block. Seeding rows and columns is up to
// the caller.
func New(opts ...Option) *Editor {
	e := &Editor{
		grid:    grid.New(),
		sel:     selection.New(0, 0),
		confirm: NeverConfirm,
		alert:   func(string) {},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.id == "" {
		e.id = uuid.NewString()
	}
	if e.keymap == nil {
		e.keymap = keymap.Default()
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	e.logger = e.logger.WithComponent("block")
	return e
}

// ID returns the block id.
func (e *Editor) ID() string { return e.id }

// Rows returns the row count.
func (e *Editor) Rows() int { return e.grid.Rows() }

// Cols returns the column count.
func (e *Editor) Cols() int { return e.grid.Cols() }

// Grid returns a copy of the grid.
func (e *Editor) Grid() *grid.Grid { return e.grid.Clone() }

// Cell returns the cell at p.
func (e *Editor) Cell(p grid.Pos) (grid.Cell, bool) { return e.grid.Cell(p) }

// Selection returns the current selection state.
func (e *Editor) Selection() selection.State { return e.sel }

// Headings reports whether the first row renders as headers.
func (e *Editor) Headings() bool { return e.headings }

// SetHeadings toggles header rendering of the first row.
func (e *Editor) SetHeadings(on bool) {
	if e.headings != on {
		e.headings = on
		e.changed()
	}
}

// Keymap returns the chord bindings.
func (e *Editor) Keymap() *keymap.Keymap { return e.keymap }

// SetKeymap replaces the chord bindings.
func (e *Editor) SetKeymap(km *keymap.Keymap) {
	if km != nil {
		e.keymap = km
	}
}

// SetConfirm replaces the confirmation policy.
func (e *Editor) SetConfirm(fn ConfirmFunc) {
	if fn != nil {
		e.confirm = fn
	}
}

// SetCellContent replaces the text of a cell.
func (e *Editor) SetCellContent(p grid.Pos, content string) error {
	if err := e.grid.SetContent(p, content); err != nil {
		return err
	}
	e.changed()
	return nil
}

// SelectedCell returns the focus anchor used for row and column edits.
func (e *Editor) SelectedCell() (grid.Pos, bool) {
	return e.sel.Selected()
}

// SetSelectedCell focuses p. A covered cell resolves to its anchor.
// Any range selection is dropped.
func (e *Editor) SetSelectedCell(p grid.Pos) {
	if a, ok := e.grid.AnchorOf(p); ok {
		e.sel = selection.Transition(e.sel, selection.Focus{Pos: a})
	}
}

// ClearSelectedCell drops the focus anchor.
func (e *Editor) ClearSelectedCell() {
	e.sel = selection.Transition(e.sel, selection.Blur{})
}

// SelectedRow returns the row of the selected cell.
func (e *Editor) SelectedRow() (int, bool) {
	p, ok := e.sel.Selected()
	return p.Row, ok
}

// Click handles a plain click on a cell. The cell becomes the selected cell
// and the first corner of a range.
func (e *Editor) Click(p grid.Pos) {
	if a, ok := e.grid.AnchorOf(p); ok {
		e.sel = selection.Transition(e.sel, selection.Click{Pos: a})
	}
}

// ExtendSelection handles a click with the range modifier held. The range
// spans from the last clicked cell to p.
func (e *Editor) ExtendSelection(p grid.Pos) {
	if a, ok := e.grid.AnchorOf(p); ok {
		e.sel = selection.Transition(e.sel, selection.Extend{Pos: a})
	}
}

// FocusIn handles focus entering the table from outside: every highlight
// is cleared and the range selection reset.
func (e *Editor) FocusIn() {
	e.sel = selection.Transition(e.sel, selection.TableFocusIn{})
}

// Element returns the root element for the host to mount.
func (e *Editor) Element() *html.Node {
	root, _ := e.render()
	return root
}

// Table returns the table element inside Element.
func (e *Editor) Table() *html.Node {
	_, table := e.render()
	return table
}

func (e *Editor) render() (*html.Node, *html.Node) {
	return dom.Build(e.grid, e.sel, dom.Options{Headings: e.headings, ReadOnly: e.readOnly})
}

// InsertColumnBefore inserts a column left of the selected cell, or at
// column 0 when nothing is selected.
func (e *Editor) InsertColumnBefore() int { return e.insertColumn(false) }

// InsertColumnAfter inserts a column right of the selected cell, or at
// column 0 when nothing is selected.
func (e *Editor) InsertColumnAfter() int { return e.insertColumn(true) }

func (e *Editor) insertColumn(after bool) int {
	focus, ok := e.sel.Selected()
	at := 0
	if ok {
		at = focus.Col
		if after {
			at++
		}
	}
	edit := e.grid.InsertCol(at)
	e.logEdit("insert column", edit)
	if ok && focus.Col >= edit.Index {
		focus.Col++
	}
	e.resize(focus, ok)
	return edit.Index
}

// InsertRowBefore inserts a row above the selected row (row 0 when nothing
// is selected) and returns its index.
func (e *Editor) InsertRowBefore() int { return e.insertRow(false) }

// InsertRowAfter inserts a row below the selected row (below row 0 when
// nothing is selected) and returns its index.
func (e *Editor) InsertRowAfter() int { return e.insertRow(true) }

func (e *Editor) insertRow(after bool) int {
	focus, ok := e.sel.Selected()
	at := 0
	if ok {
		at = focus.Row
	}
	if after {
		at++
	}
	edit := e.grid.InsertRow(at)
	e.logEdit("insert row", edit)
	if ok && focus.Row >= edit.Index {
		focus.Row++
	}
	e.resize(focus, ok)
	return edit.Index
}

// InsertRowBelow inserts a row after the selected row and focuses its
// first cell.
func (e *Editor) InsertRowBelow() int {
	idx := e.InsertRowAfter()
	e.sel = selection.Transition(e.sel, selection.Focus{Pos: grid.At(idx, 0)})
	return idx
}

// DeleteColumn removes the column of the selected cell. It is a no-op when
// nothing is selected.
func (e *Editor) DeleteColumn() Result {
	focus, ok := e.sel.Selected()
	if !ok {
		return skipped(MsgNoCell)
	}
	edit, err := e.grid.DeleteCol(focus.Col)
	if err != nil {
		e.logger.Error("delete column: %v", err)
		return Result{Outcome: Rejected, Message: err.Error()}
	}
	e.logEdit("delete column", edit)
	focus.Col = min(focus.Col, e.grid.Cols()-1)
	e.resize(focus, true)
	return applied(grid.Rect{Row: 0, Col: edit.Index, Rows: e.grid.Rows(), Cols: 1})
}

// DeleteRow removes the row of the selected cell. It is a no-op when
// nothing is selected.
func (e *Editor) DeleteRow() Result {
	focus, ok := e.sel.Selected()
	if !ok {
		return skipped(MsgNoCell)
	}
	edit, err := e.grid.DeleteRow(focus.Row)
	if err != nil {
		e.logger.Error("delete row: %v", err)
		return Result{Outcome: Rejected, Message: err.Error()}
	}
	e.logEdit("delete row", edit)
	focus.Row = min(focus.Row, e.grid.Rows()-1)
	e.resize(focus, true)
	return applied(grid.Rect{Row: edit.Index, Col: 0, Rows: 1, Cols: e.grid.Cols()})
}

// MergeCells merges the range selection into one cell anchored at its
// top-left corner. Cells with text require confirmation first.
func (e *Editor) MergeCells() Result {
	r, ok := e.sel.Selection()
	if !ok {
		e.logger.Warn("merge skipped: no range selected")
		return skipped(MsgNoRange)
	}

	if e.grid.HasContent(r) && !e.confirm(MsgConfirmMerge) {
		e.logger.Debug("merge %s cancelled by user", r)
		return Result{Outcome: Cancelled, Message: MsgConfirmMerge, Range: r}
	}

	if err := e.grid.Merge(r); err != nil {
		msg := mergeMessage(err)
		e.logger.Info("merge %s rejected: %v", r, err)
		e.alert(msg)
		return Result{Outcome: Rejected, Message: msg, Range: r}
	}

	e.sel = selection.Transition(e.sel, selection.Merged{})
	e.logger.Debug("merged %s", r)
	e.changed()
	return applied(r)
}

// UnmergeCells splits the merged block anchored at the selected cell.
func (e *Editor) UnmergeCells() Result {
	p, ok := e.sel.Selected()
	if !ok {
		return skipped(MsgNoCell)
	}
	b, err := e.grid.Unmerge(p)
	if err != nil {
		e.logger.Info("unmerge %s rejected: %v", p, err)
		e.alert(MsgCannotSplit)
		return Result{Outcome: Rejected, Message: MsgCannotSplit}
	}
	e.logger.Debug("unmerged %s", b)
	e.changed()
	return applied(b)
}

func mergeMessage(err error) string {
	switch {
	case errors.Is(err, grid.ErrOverlap):
		return MsgMergeOverlap
	case errors.Is(err, grid.ErrSingleCell):
		return MsgMergeSingle
	default:
		return MsgMergeBounds
	}
}

// resize refits the selection to the grid after a structural edit. A focus
// that landed on a covered cell moves to the anchor of its block.
func (e *Editor) resize(focus grid.Pos, keep bool) {
	ev := selection.Resize{Rows: e.grid.Rows(), Cols: e.grid.Cols()}
	if keep {
		if a, ok := e.grid.AnchorOf(focus); ok {
			focus = a
		}
		ev.Focus = &focus
	}
	e.sel = selection.Transition(e.sel, ev)
	e.changed()
}

func (e *Editor) logEdit(op string, edit grid.Edit) {
	for _, b := range edit.Unmerged {
		e.logger.Info("%s at %d split merged cells %s", op, edit.Index, b)
	}
	e.logger.Debug("%s at %d, grid now %dx%d", op, edit.Index, e.grid.Rows(), e.grid.Cols())
}

func (e *Editor) changed() {
	if e.onChange != nil {
		e.onChange(e)
	}
}
