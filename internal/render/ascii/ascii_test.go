package ascii

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/gridblock/internal/grid"
)

func TestRows(t *testing.T) {
	g := grid.FromContent([][]string{
		{"total", "x", "c"},
		{"y", "z", "f"},
	})
	if err := g.Merge(grid.Rect{Row: 0, Col: 0, Rows: 2, Cols: 2}); err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"total [2x2]", CoveredLeft, "c"},
		{CoveredAbove, CoveredAbove, "f"},
	}
	if diff := cmp.Diff(want, Rows(g)); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	g := grid.FromContent([][]string{{"alpha", "beta"}, {"gamma", "delta"}})
	out := String(g, false)
	for _, s := range []string{"alpha", "beta", "gamma", "delta"} {
		if !strings.Contains(out, s) {
			t.Errorf("dump lacks %q:\n%s", s, out)
		}
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n") + 1; lines < 4 {
		t.Errorf("dump has %d lines, want a bordered table:\n%s", lines, out)
	}
}

func TestWriteEmpty(t *testing.T) {
	if out := String(grid.New(), true); out != "" {
		t.Errorf("empty grid dump = %q", out)
	}
}
