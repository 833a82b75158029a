package block

import (
	"fmt"
	"io"

	"github.com/dshills/gridblock/internal/render/dom"
	"github.com/dshills/gridblock/internal/selection"
)

// ImportHTML replaces the block with the first table of an HTML document,
// such as markup pasted from a web page. rowspan and colspan become merged
// cells and a row of th cells turns headings on. The selection is reset.
// On error the block is left unchanged.
func (e *Editor) ImportHTML(r io.Reader) error {
	imported, err := dom.ParseTable(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	g := imported.Grid
	e.grid = g
	e.headings = imported.Headings
	e.sel = selection.New(g.Rows(), g.Cols())
	e.logger.Debug("imported %dx%d html table with %d merges", g.Rows(), g.Cols(), len(g.Merges()))
	e.changed()
	return nil
}

// ExportHTML writes the rendered block. ImportHTML reads it back with the
// same cells and merges, covered cell content included.
func (e *Editor) ExportHTML(w io.Writer) error {
	return dom.Render(w, e.Element())
}
