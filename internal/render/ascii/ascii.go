// Package ascii dumps a table grid as plain text for logs and the command
// line.
package ascii

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/dshills/gridblock/internal/grid"
)

// Markers written in place of covered cells.
const (
	CoveredLeft  = "<" // covered by an anchor in the same row
	CoveredAbove = "^" // covered by an anchor in a row above
)

// Rows returns the text of every cell as it is dumped. Anchors get their
// extent appended, e.g. "total [2x3]", and covered cells a marker pointing
// at their anchor.
func Rows(g *grid.Grid) [][]string {
	out := make([][]string, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		out[r] = make([]string, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			p := grid.At(r, c)
			cell, _ := g.Cell(p)
			switch {
			case cell.Hidden:
				a, _ := g.AnchorOf(p)
				if a.Row == r {
					out[r][c] = CoveredLeft
				} else {
					out[r][c] = CoveredAbove
				}
			case cell.IsAnchor():
				out[r][c] = strings.TrimSpace(fmt.Sprintf("%s [%dx%d]", cell.Content, cell.RowSpan, cell.ColSpan))
			default:
				out[r][c] = cell.Content
			}
		}
	}
	return out
}

// Write renders g to w. With headings the first row becomes the table
// header.
func Write(w io.Writer, g *grid.Grid, headings bool) error {
	rows := Rows(g)
	if len(rows) == 0 || g.Cols() == 0 {
		return nil
	}
	table := tablewriter.NewWriter(w)
	if headings {
		table.Header(rows[0])
		rows = rows[1:]
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("dump row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("dump table: %w", err)
	}
	return nil
}

// String returns the dump of g.
func String(g *grid.Grid, headings bool) string {
	var b strings.Builder
	if err := Write(&b, g, headings); err != nil {
		return err.Error()
	}
	return b.String()
}
