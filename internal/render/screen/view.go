package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/selection"
)

// Default column width limits, in terminal columns of content.
const (
	DefaultMinWidth = 3
	DefaultMaxWidth = 24
)

// View lays out and draws a grid. The layout of the last Draw is kept for
// HitTest and CellBounds.
type View struct {
	// X and Y are the screen position of the top-left border corner.
	X, Y int

	// MinWidth and MaxWidth bound the content width of a column.
	MinWidth int
	MaxWidth int

	Theme Theme

	g    *grid.Grid
	colX []int // border x offsets, len Cols()+1
	rowY []int // border y offsets, len Rows()+1
}

// New creates a view at the screen origin with the default theme.
func New() *View {
	return &View{
		MinWidth: DefaultMinWidth,
		MaxWidth: DefaultMaxWidth,
		Theme:    DefaultTheme(),
	}
}

// Size returns the width and height of the last drawn table, borders
// included.
func (v *View) Size() (width, height int) {
	if len(v.colX) == 0 || len(v.rowY) == 0 {
		return 0, 0
	}
	return v.colX[len(v.colX)-1] + 1, v.rowY[len(v.rowY)-1] + 1
}

func (v *View) layout(g *grid.Grid) {
	v.g = g
	v.colX = make([]int, g.Cols()+1)
	for c := 0; c < g.Cols(); c++ {
		w := v.MinWidth
		for r := 0; r < g.Rows(); r++ {
			cell, _ := g.Cell(grid.At(r, c))
			if cell.Hidden || cell.ColSpan > 1 {
				continue
			}
			w = max(w, StringWidth(cell.Content))
		}
		if v.MaxWidth > 0 {
			w = min(w, v.MaxWidth)
		}
		// one space of padding on each side plus the right border
		v.colX[c+1] = v.colX[c] + w + 3
	}
	v.rowY = make([]int, g.Rows()+1)
	for r := 0; r < g.Rows(); r++ {
		v.rowY[r+1] = v.rowY[r] + 2
	}
}

// Draw lays out g and draws it with the selection state sel. With headings
// the first row uses the heading style.
func (v *View) Draw(s tcell.Screen, g *grid.Grid, sel selection.State, headings bool) {
	v.layout(g)
	if g.Rows() == 0 || g.Cols() == 0 {
		return
	}
	v.drawBorders(s)

	focus, focused := sel.Selected()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.At(r, c)
			cell, _ := g.Cell(p)
			if cell.Hidden {
				continue
			}
			style := v.Theme.Cell
			switch {
			case focused && p == focus:
				style = v.Theme.Selected
			case sel.Highlighted(p):
				style = v.Theme.Highlight
			case headings && r == 0:
				style = v.Theme.Heading
			}
			v.drawCell(s, cell.Block(p), cell.Content, style)
		}
	}
}

func (v *View) drawCell(s tcell.Screen, b grid.Rect, text string, style tcell.Style) {
	b = v.clip(b)
	left := v.X + v.colX[b.Col] + 1
	right := v.X + v.colX[b.Col+b.Cols]
	top := v.Y + v.rowY[b.Row] + 1
	bottom := v.Y + v.rowY[b.Row+b.Rows]
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
	if inner := right - left - 2; inner > 0 {
		DrawText(s, left+1, top, inner, text, style)
	}
}

func (v *View) drawBorders(s tcell.Screen) {
	rows, cols := v.g.Rows(), v.g.Cols()
	style := v.Theme.Border

	for i := 0; i <= rows; i++ {
		for j := 0; j <= cols; j++ {
			var arms int
			if i > 0 && v.vertical(i-1, j) {
				arms |= armUp
			}
			if i < rows && v.vertical(i, j) {
				arms |= armDown
			}
			if j > 0 && v.horizontal(i, j-1) {
				arms |= armLeft
			}
			if j < cols && v.horizontal(i, j) {
				arms |= armRight
			}
			s.SetContent(v.X+v.colX[j], v.Y+v.rowY[i], junctions[arms], nil, style)

			if j < cols && v.horizontal(i, j) {
				for x := v.colX[j] + 1; x < v.colX[j+1]; x++ {
					s.SetContent(v.X+x, v.Y+v.rowY[i], hLine, nil, style)
				}
			}
			if i < rows && v.vertical(i, j) {
				for y := v.rowY[i] + 1; y < v.rowY[i+1]; y++ {
					s.SetContent(v.X+v.colX[j], v.Y+y, vLine, nil, style)
				}
			}
		}
	}
}

// vertical reports whether the border at column boundary j is drawn in row r.
func (v *View) vertical(r, j int) bool {
	if j == 0 || j == v.g.Cols() {
		return true
	}
	return !v.sameBlock(grid.At(r, j-1), grid.At(r, j))
}

// horizontal reports whether the border at row boundary i is drawn in column c.
func (v *View) horizontal(i, c int) bool {
	if i == 0 || i == v.g.Rows() {
		return true
	}
	return !v.sameBlock(grid.At(i-1, c), grid.At(i, c))
}

func (v *View) sameBlock(a, b grid.Pos) bool {
	aa, ok1 := v.g.AnchorOf(a)
	ba, ok2 := v.g.AnchorOf(b)
	return ok1 && ok2 && aa == ba
}

func (v *View) clip(b grid.Rect) grid.Rect {
	b.Rows = min(b.Rows, v.g.Rows()-b.Row)
	b.Cols = min(b.Cols, v.g.Cols()-b.Col)
	return b
}

// HitTest maps a screen position to the cell drawn there. A position on a
// border between two cells of one merged block hits the block's anchor;
// any other border position hits nothing.
func (v *View) HitTest(x, y int) (grid.Pos, bool) {
	if v.g == nil {
		return grid.Pos{}, false
	}
	c0, c1, ok := span(v.colX, x-v.X)
	if !ok {
		return grid.Pos{}, false
	}
	r0, r1, ok := span(v.rowY, y-v.Y)
	if !ok {
		return grid.Pos{}, false
	}
	anchor, ok := v.g.AnchorOf(grid.At(r0, c0))
	if !ok {
		return grid.Pos{}, false
	}
	for _, p := range []grid.Pos{grid.At(r0, c1), grid.At(r1, c0), grid.At(r1, c1)} {
		if a, _ := v.g.AnchorOf(p); a != anchor {
			return grid.Pos{}, false
		}
	}
	return anchor, true
}

// span locates offset off between borders. Inside a cell it returns that
// index twice; on an inner border it returns the indices on either side.
func span(borders []int, off int) (lo, hi int, ok bool) {
	n := len(borders) - 1
	for i := 0; i < n; i++ {
		switch {
		case off > borders[i] && off < borders[i+1]:
			return i, i, true
		case off == borders[i+1] && i+1 < n:
			return i, i + 1, true
		}
	}
	return 0, 0, false
}

// CellBounds returns the screen rectangle inside the borders of the block
// drawn at p.
func (v *View) CellBounds(p grid.Pos) (x, y, width, height int, ok bool) {
	if v.g == nil {
		return 0, 0, 0, 0, false
	}
	a, ok := v.g.AnchorOf(p)
	if !ok {
		return 0, 0, 0, 0, false
	}
	cell, _ := v.g.Cell(a)
	b := v.clip(cell.Block(a))
	x = v.X + v.colX[b.Col] + 1
	y = v.Y + v.rowY[b.Row] + 1
	return x, y, v.colX[b.Col+b.Cols] - v.colX[b.Col] - 1, v.rowY[b.Row+b.Rows] - v.rowY[b.Row] - 1, true
}
