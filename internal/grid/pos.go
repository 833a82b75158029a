package grid

import "fmt"

// Pos identifies a cell by 0-based row and column.
type Pos struct {
	Row int
	Col int
}

// At is shorthand for Pos{Row: row, Col: col}.
func At(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Rect is a rectangular block of cells. Rows and Cols are inclusive extents,
// so a single cell is Rect{Row: r, Col: c, Rows: 1, Cols: 1}.
type Rect struct {
	Row  int
	Col  int
	Rows int
	Cols int
}

// RectFromCorners returns the bounding rectangle of two corner cells.
// The corners may be given in any order.
func RectFromCorners(a, b Pos) Rect {
	return Rect{
		Row:  min(a.Row, b.Row),
		Col:  min(a.Col, b.Col),
		Rows: abs(a.Row-b.Row) + 1,
		Cols: abs(a.Col-b.Col) + 1,
	}
}

// TopLeft returns the top-left cell of the rectangle.
func (r Rect) TopLeft() Pos {
	return Pos{Row: r.Row, Col: r.Col}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Rows <= 0 || r.Cols <= 0
}

// Has reports whether p lies inside the rectangle.
func (r Rect) Has(p Pos) bool {
	return p.Row >= r.Row && p.Row < r.Row+r.Rows &&
		p.Col >= r.Col && p.Col < r.Col+r.Cols
}

// Each calls fn for every cell in the rectangle in row-major order.
func (r Rect) Each(fn func(p Pos)) {
	for row := r.Row; row < r.Row+r.Rows; row++ {
		for col := r.Col; col < r.Col+r.Cols; col++ {
			fn(Pos{Row: row, Col: col})
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%s", r.Rows, r.Cols, r.TopLeft())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
