package grid

import (
	"fmt"
	"strings"
)

// CanMerge reports whether r can become a merged block. Overlapping merges
// are not supported, so r may contain neither anchors nor covered cells.
func (g *Grid) CanMerge(r Rect) error {
	if !g.Contains(r) {
		return fmt.Errorf("merge %s: %w", r, ErrOutOfBounds)
	}
	if r.Rows == 1 && r.Cols == 1 {
		return fmt.Errorf("merge %s: %w", r, ErrSingleCell)
	}
	var err error
	r.Each(func(p Pos) {
		c := g.cells[p.Row][p.Col]
		if err == nil && (c.Merged || c.Hidden) {
			err = fmt.Errorf("merge %s: cell %s: %w", r, p, ErrOverlap)
		}
	})
	return err
}

// HasContent reports whether any cell inside r holds non-blank text.
// Cells outside the grid are ignored.
func (g *Grid) HasContent(r Rect) bool {
	found := false
	r.Each(func(p Pos) {
		if g.InBounds(p) && strings.TrimSpace(g.cells[p.Row][p.Col].Content) != "" {
			found = true
		}
	})
	return found
}

// Merge turns r into a merged block anchored at its top-left cell. Every
// other cell in r is hidden but kept, with its content, in the grid.
// Nothing is changed when CanMerge fails.
func (g *Grid) Merge(r Rect) error {
	if err := g.CanMerge(r); err != nil {
		return err
	}
	anchor := r.TopLeft()
	r.Each(func(p Pos) {
		c := &g.cells[p.Row][p.Col]
		if p == anchor {
			c.RowSpan = r.Rows
			c.ColSpan = r.Cols
			c.Merged = true
			return
		}
		c.Hidden = true
	})
	g.merges++
	return nil
}

// Unmerge splits the merged block anchored at p back into normal cells.
func (g *Grid) Unmerge(p Pos) (Rect, error) {
	if !g.InBounds(p) {
		return Rect{}, fmt.Errorf("unmerge %s: %w", p, ErrOutOfBounds)
	}
	c := g.cells[p.Row][p.Col]
	if !c.IsAnchor() {
		return Rect{}, fmt.Errorf("unmerge %s: %w", p, ErrNotMerged)
	}
	b := g.clip(c.Block(p))
	g.clearBlock(b)
	return b, nil
}

// AnchorOf returns the cell that renders position p: the anchor of the
// merged block covering p, or p itself.
func (g *Grid) AnchorOf(p Pos) (Pos, bool) {
	if !g.InBounds(p) {
		return Pos{}, false
	}
	if !g.cells[p.Row][p.Col].Hidden {
		return p, true
	}
	for _, b := range g.Merges() {
		if b.Has(p) {
			return b.TopLeft(), true
		}
	}
	return p, true
}

// Merges returns the blocks of every merge anchor in row-major order.
func (g *Grid) Merges() []Rect {
	var out []Rect
	for r := range g.cells {
		for c := range g.cells[r] {
			if cell := g.cells[r][c]; cell.IsAnchor() {
				out = append(out, g.clip(cell.Block(Pos{Row: r, Col: c})))
			}
		}
	}
	return out
}

// clearBlock splits the merged block b anchored at its top-left cell.
func (g *Grid) clearBlock(b Rect) {
	g.merges--
	b.Each(func(p Pos) {
		g.cells[p.Row][p.Col].reset()
	})
}

func (g *Grid) clip(b Rect) Rect {
	b.Rows = min(b.Rows, g.rows-b.Row)
	b.Cols = min(b.Cols, g.cols-b.Col)
	return b
}
