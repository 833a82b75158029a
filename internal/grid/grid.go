package grid

import (
	"fmt"
	"strings"
)

// Grid is a rows x cols table of cells stored row-major.
// A Grid is not safe for concurrent use; it is owned by a single editor.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell

	// merges counts anchors so edits on a grid without merges skip the scan.
	merges int
}

// Edit reports the outcome of a structural change.
type Edit struct {
	// Index is the row or column that was inserted or removed.
	Index int

	// Unmerged lists merged blocks that were split before the change
	// because the change crossed them.
	Unmerged []Rect
}

// Size limits for grids built from outside data. Browsers clamp rowspan to
// 65534 and colspan to 1000; MaxCells bounds the memory of one table.
const (
	MaxRows  = 65534
	MaxCols  = 1000
	MaxCells = 1 << 20
)

// CheckSize reports whether a rows x cols grid is within the size limits.
func CheckSize(rows, cols int) error {
	if rows < 0 || cols < 0 || rows > MaxRows || cols > MaxCols || rows*cols > MaxCells {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrTooLarge)
	}
	return nil
}

// New returns an empty 0x0 grid.
func New() *Grid {
	return &Grid{}
}

// NewSized returns a grid of empty cells. Callers sizing a grid from
// outside data check the size with CheckSize first.
func NewSized(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	backing := make([]Cell, rows*cols)
	for i := range backing {
		backing[i] = emptyCell()
	}
	for r := range g.cells {
		g.cells[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return g
}

// FromContent builds a grid from row-major content. Short rows are padded
// with empty cells to the width of the longest row.
func FromContent(content [][]string) *Grid {
	return FromContentCols(content, 0)
}

// FromContentCols is FromContent with at least cols columns.
func FromContentCols(content [][]string, cols int) *Grid {
	for _, row := range content {
		cols = max(cols, len(row))
	}
	g := NewSized(len(content), cols)
	for r, row := range content {
		for c, s := range row {
			g.cells[r][c].Content = s
		}
	}
	return g
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Contains reports whether r is non-empty and lies fully inside the grid.
func (g *Grid) Contains(r Rect) bool {
	if r.Empty() || r.Row < 0 || r.Col < 0 {
		return false
	}
	return r.Row+r.Rows <= g.rows && r.Col+r.Cols <= g.cols
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Pos) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Row][p.Col], true
}

// SetContent replaces the text of the cell at p. Line breaks are folded into
// spaces because cell content is single-line.
func (g *Grid) SetContent(p Pos, content string) error {
	if !g.InBounds(p) {
		return fmt.Errorf("set content %s: %w", p, ErrOutOfBounds)
	}
	content = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(content)
	g.cells[p.Row][p.Col].Content = content
	return nil
}

// Content returns the row-major text of every cell, covered cells included.
func (g *Grid) Content() [][]string {
	out := make([][]string, g.rows)
	for r := range g.cells {
		out[r] = make([]string, g.cols)
		for c := range g.cells[r] {
			out[r][c] = g.cells[r][c].Content
		}
	}
	return out
}

// InsertRow inserts a row of empty cells before index at. The index is
// clamped to [0, Rows()]. A merged block the new row would cut through is
// split first; blocks entirely above or below shift intact.
func (g *Grid) InsertRow(at int) Edit {
	at = clamp(at, 0, g.rows)
	edit := Edit{Index: at}
	edit.Unmerged = g.unmergeWhere(func(b Rect) bool {
		return b.Row < at && at < b.Row+b.Rows
	})

	row := make([]Cell, g.cols)
	for c := range row {
		row[c] = emptyCell()
	}
	g.cells = append(g.cells, nil)
	copy(g.cells[at+1:], g.cells[at:])
	g.cells[at] = row
	g.rows++
	return edit
}

// DeleteRow removes the row at index at. Merged blocks that include the row
// are split first.
func (g *Grid) DeleteRow(at int) (Edit, error) {
	if at < 0 || at >= g.rows {
		return Edit{}, fmt.Errorf("delete row %d: %w", at, ErrOutOfBounds)
	}
	edit := Edit{Index: at}
	edit.Unmerged = g.unmergeWhere(func(b Rect) bool {
		return b.Row <= at && at < b.Row+b.Rows
	})

	g.cells = append(g.cells[:at], g.cells[at+1:]...)
	g.rows--
	return edit, nil
}

// InsertCol inserts an empty cell before index at in every row. The index is
// clamped to [0, Cols()]. The column count grows even when the grid has no
// rows yet.
func (g *Grid) InsertCol(at int) Edit {
	at = clamp(at, 0, g.cols)
	edit := Edit{Index: at}
	edit.Unmerged = g.unmergeWhere(func(b Rect) bool {
		return b.Col < at && at < b.Col+b.Cols
	})

	for r := range g.cells {
		row := append(g.cells[r], Cell{})
		copy(row[at+1:], row[at:])
		row[at] = emptyCell()
		g.cells[r] = row
	}
	g.cols++
	return edit
}

// DeleteCol removes the column at index at from every row. Merged blocks
// that include the column are split first.
func (g *Grid) DeleteCol(at int) (Edit, error) {
	if at < 0 || at >= g.cols {
		return Edit{}, fmt.Errorf("delete column %d: %w", at, ErrOutOfBounds)
	}
	edit := Edit{Index: at}
	edit.Unmerged = g.unmergeWhere(func(b Rect) bool {
		return b.Col <= at && at < b.Col+b.Cols
	})

	for r := range g.cells {
		g.cells[r] = append(g.cells[r][:at], g.cells[r][at+1:]...)
	}
	g.cols--
	return edit, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([][]Cell, len(g.cells)), merges: g.merges}
	for r := range g.cells {
		out.cells[r] = append([]Cell(nil), g.cells[r]...)
	}
	return out
}

// Equal reports whether two grids have the same shape and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) unmergeWhere(match func(b Rect) bool) []Rect {
	if g.merges == 0 {
		return nil
	}
	var split []Rect
	for _, b := range g.Merges() {
		if match(b) {
			g.clearBlock(b)
			split = append(split, b)
		}
	}
	return split
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
