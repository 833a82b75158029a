package grid

// Cell is one position of the grid.
type Cell struct {
	// Content is the editable single-line text of the cell.
	Content string

	// RowSpan and ColSpan are 1 for normal cells and the block extent for
	// merge anchors.
	RowSpan int
	ColSpan int

	// Merged marks the top-left anchor of a merged block.
	Merged bool

	// Hidden marks a cell covered by an anchor elsewhere.
	Hidden bool
}

func emptyCell() Cell {
	return Cell{RowSpan: 1, ColSpan: 1}
}

// Visible reports whether the cell renders on its own.
func (c Cell) Visible() bool {
	return !c.Hidden
}

// IsAnchor reports whether the cell is the anchor of a merged block.
func (c Cell) IsAnchor() bool {
	return c.Merged && (c.RowSpan > 1 || c.ColSpan > 1)
}

// Block returns the rectangle an anchor at p spans.
func (c Cell) Block(p Pos) Rect {
	return Rect{Row: p.Row, Col: p.Col, Rows: max(c.RowSpan, 1), Cols: max(c.ColSpan, 1)}
}

// reset turns the cell back into a normal visible cell, keeping its content.
func (c *Cell) reset() {
	c.RowSpan = 1
	c.ColSpan = 1
	c.Merged = false
	c.Hidden = false
}
