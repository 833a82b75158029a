package block

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/selection"
)

type mergeData struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Save returns the block data:
//
//	{"id": "...", "withHeadings": false, "cols": 3,
//	 "content": [["a","b","c"], ...],
//	 "merges": [{"row":0,"col":0,"rows":2,"cols":2}]}
//
// content holds covered cells too, so unmerging after a load restores them.
func (e *Editor) Save() ([]byte, error) {
	merges := make([]mergeData, 0)
	for _, r := range e.grid.Merges() {
		merges = append(merges, mergeData{Row: r.Row, Col: r.Col, Rows: r.Rows, Cols: r.Cols})
	}

	out := []byte(`{}`)
	var err error
	for _, field := range []struct {
		path  string
		value any
	}{
		{"id", e.id},
		{"withHeadings", e.headings},
		{"cols", e.grid.Cols()},
		{"content", e.grid.Content()},
		{"merges", merges},
	} {
		if out, err = sjson.SetBytes(out, field.path, field.value); err != nil {
			return nil, fmt.Errorf("save block %s: %w", field.path, err)
		}
	}
	return out, nil
}

// Load replaces the block with saved data. The selection is reset. On
// error the block is left unchanged.
func (e *Editor) Load(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: not JSON", ErrInvalidData)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("%w: not an object", ErrInvalidData)
	}

	content := doc.Get("content")
	if content.Exists() && !content.IsArray() {
		return fmt.Errorf("%w: content is not an array", ErrInvalidData)
	}
	var rows [][]string
	var bad error
	content.ForEach(func(_, row gjson.Result) bool {
		if !row.IsArray() {
			bad = fmt.Errorf("%w: content row is not an array", ErrInvalidData)
			return false
		}
		if len(rows) == grid.MaxRows {
			bad = fmt.Errorf("%w: %w", ErrInvalidData, grid.ErrTooLarge)
			return false
		}
		var cells []string
		row.ForEach(func(_, cell gjson.Result) bool {
			if len(cells) == grid.MaxCols {
				bad = fmt.Errorf("%w: %w", ErrInvalidData, grid.ErrTooLarge)
				return false
			}
			cells = append(cells, cell.String())
			return true
		})
		rows = append(rows, cells)
		return bad == nil
	})
	if bad != nil {
		return bad
	}

	cols := int(doc.Get("cols").Int())
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if err := grid.CheckSize(len(rows), cols); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	g := grid.FromContentCols(rows, cols)

	var mergeErr error
	doc.Get("merges").ForEach(func(_, m gjson.Result) bool {
		r := grid.Rect{
			Row:  int(m.Get("row").Int()),
			Col:  int(m.Get("col").Int()),
			Rows: int(m.Get("rows").Int()),
			Cols: int(m.Get("cols").Int()),
		}
		if err := g.Merge(r); err != nil {
			mergeErr = fmt.Errorf("%w: %v", ErrInvalidData, err)
			return false
		}
		return true
	})
	if mergeErr != nil {
		return mergeErr
	}

	if id := doc.Get("id").String(); id != "" {
		e.id = id
	}
	e.headings = doc.Get("withHeadings").Bool()
	e.grid = g
	e.sel = selection.New(g.Rows(), g.Cols())
	e.logger.Debug("loaded %dx%d with %d merges", g.Rows(), g.Cols(), len(g.Merges()))
	e.changed()
	return nil
}
