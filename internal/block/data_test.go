package block

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/dshills/gridblock/internal/grid"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	e := seeded(t, 3, 3, WithID("tbl-1"), WithHeadings(true))
	_ = e.SetCellContent(grid.At(0, 0), "name")
	_ = e.SetCellContent(grid.At(2, 2), `quote "x"`)
	e.Click(grid.At(1, 0))
	e.ExtendSelection(grid.At(2, 1))
	if res := e.MergeCells(); !res.OK() {
		t.Fatalf("MergeCells() = %v", res.Outcome)
	}

	data, err := e.Save()
	if err != nil {
		t.Fatalf("Save error = %v", err)
	}
	doc := gjson.ParseBytes(data)
	if got := doc.Get("id").String(); got != "tbl-1" {
		t.Errorf("saved id = %q", got)
	}
	if got := doc.Get("merges.0.rows").Int(); got != 2 {
		t.Errorf("saved merges.0.rows = %d, want 2", got)
	}

	loaded := New()
	if err := loaded.Load(data); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if loaded.ID() != "tbl-1" || !loaded.Headings() {
		t.Errorf("loaded id=%q headings=%v", loaded.ID(), loaded.Headings())
	}
	if !loaded.Grid().Equal(e.Grid()) {
		t.Errorf("grid mismatch (-want +got):\n%s", cmp.Diff(e.Grid().Content(), loaded.Grid().Content()))
	}
	if _, ok := loaded.SelectedCell(); ok {
		t.Error("Load kept a selection")
	}
}

func TestSaveEmptyBlock(t *testing.T) {
	data, err := New(WithID("empty")).Save()
	if err != nil {
		t.Fatalf("Save error = %v", err)
	}
	want := `{"id":"empty","withHeadings":false,"cols":0,"content":[],"merges":[]}`
	if string(data) != want {
		t.Errorf("Save() = %s, want %s", data, want)
	}
}

func TestLoadKeepsColumnCountOfEmptyRows(t *testing.T) {
	e := New()
	if err := e.Load([]byte(`{"cols":3,"content":[["a"]]}`)); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if e.Rows() != 1 || e.Cols() != 3 {
		t.Errorf("grid = %dx%d, want 1x3", e.Rows(), e.Cols())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"content": [`},
		{"not object", `[1,2]`},
		{"content scalar", `{"content": "abc"}`},
		{"row scalar", `{"content": ["abc"]}`},
		{"merge out of bounds", `{"content": [["a","b"]], "merges": [{"row":0,"col":0,"rows":2,"cols":2}]}`},
		{"overlapping merges", `{"content": [["a","b","c"]], "merges": [{"row":0,"col":0,"rows":1,"cols":2},{"row":0,"col":1,"rows":1,"cols":2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := seeded(t, 1, 1, WithID("keep"))
			before := e.Grid()
			err := e.Load([]byte(tt.data))
			if !errors.Is(err, ErrInvalidData) {
				t.Fatalf("Load error = %v, want ErrInvalidData", err)
			}
			if !e.Grid().Equal(before) || e.ID() != "keep" {
				t.Error("failed Load changed the block")
			}
		})
	}
}

func TestLoadRejectsOversizedTables(t *testing.T) {
	wideRow := "[" + strings.TrimSuffix(strings.Repeat(`"",`, grid.MaxCols+1), ",") + "]"
	tests := []struct {
		name string
		data string
	}{
		{"cols field", `{"content":[["a"],["b"]],"cols":200000}`},
		{"wide row", `{"content":[` + wideRow + `]}`},
		{"too many cells", `{"content":[` + strings.TrimSuffix(strings.Repeat(`[""],`, 2000), ",") + `],"cols":1000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := seeded(t, 1, 1)
			err := e.Load([]byte(tt.data))
			if !errors.Is(err, ErrInvalidData) || !errors.Is(err, grid.ErrTooLarge) {
				t.Fatalf("Load error = %v, want ErrInvalidData and grid.ErrTooLarge", err)
			}
			if e.Rows() != 1 || e.Cols() != 1 {
				t.Errorf("failed Load changed the grid to %dx%d", e.Rows(), e.Cols())
			}
		})
	}
}
