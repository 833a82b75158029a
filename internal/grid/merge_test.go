package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeAllRectangles(t *testing.T) {
	const rows, cols = 4, 5

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			for nr := 1; row+nr <= rows; nr++ {
				for nc := 1; col+nc <= cols; nc++ {
					if nr == 1 && nc == 1 {
						continue
					}
					r := Rect{Row: row, Col: col, Rows: nr, Cols: nc}
					g := NewSized(rows, cols)
					if err := g.Merge(r); err != nil {
						t.Fatalf("Merge(%v) error = %v", r, err)
					}

					visible := 0
					r.Each(func(p Pos) {
						c, _ := g.Cell(p)
						if c.Visible() {
							visible++
							if p != r.TopLeft() {
								t.Errorf("Merge(%v): %v visible, want hidden", r, p)
							}
							if c.RowSpan != nr || c.ColSpan != nc || !c.Merged {
								t.Errorf("Merge(%v): anchor = %+v", r, c)
							}
						}
					})
					if visible != 1 {
						t.Errorf("Merge(%v): %d visible cells, want 1", r, visible)
					}
					if g.Rows() != rows || g.Cols() != cols {
						t.Errorf("Merge(%v) changed shape to %dx%d", r, g.Rows(), g.Cols())
					}
				}
			}
		}
	}
}

func TestUnmergeRoundTrip(t *testing.T) {
	g := FromContent([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	before := g.Clone()
	r := Rect{Row: 0, Col: 1, Rows: 3, Cols: 2}

	if err := g.Merge(r); err != nil {
		t.Fatalf("Merge error = %v", err)
	}
	got, err := g.Unmerge(r.TopLeft())
	if err != nil {
		t.Fatalf("Unmerge error = %v", err)
	}
	if got != r {
		t.Errorf("Unmerge block = %v, want %v", got, r)
	}
	if !g.Equal(before) {
		t.Errorf("grid after merge+unmerge differs:\n%s", cmp.Diff(before.Content(), g.Content()))
	}
}

func TestMergeRejectsOverlap(t *testing.T) {
	g := NewSized(3, 3)
	if err := g.Merge(Rect{Row: 0, Col: 0, Rows: 2, Cols: 2}); err != nil {
		t.Fatalf("Merge error = %v", err)
	}
	before := g.Clone()

	tests := []Rect{
		{Row: 0, Col: 0, Rows: 3, Cols: 3}, // contains the anchor
		{Row: 1, Col: 1, Rows: 2, Cols: 2}, // contains only covered cells
		{Row: 0, Col: 0, Rows: 1, Cols: 3},
	}
	for _, r := range tests {
		if err := g.Merge(r); !errors.Is(err, ErrOverlap) {
			t.Errorf("Merge(%v) error = %v, want ErrOverlap", r, err)
		}
		if !g.Equal(before) {
			t.Fatalf("Merge(%v) mutated the grid", r)
		}
	}
}

func TestMergeRejectsInvalidRanges(t *testing.T) {
	g := NewSized(2, 2)
	tests := []struct {
		r    Rect
		want error
	}{
		{Rect{Row: 0, Col: 0, Rows: 1, Cols: 1}, ErrSingleCell},
		{Rect{Row: 1, Col: 1, Rows: 2, Cols: 1}, ErrOutOfBounds},
		{Rect{Row: -1, Col: 0, Rows: 2, Cols: 1}, ErrOutOfBounds},
		{Rect{}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		if err := g.Merge(tt.r); !errors.Is(err, tt.want) {
			t.Errorf("Merge(%v) error = %v, want %v", tt.r, err, tt.want)
		}
	}
}

func TestUnmergeRequiresAnchor(t *testing.T) {
	g := NewSized(2, 2)
	if _, err := g.Unmerge(At(0, 0)); !errors.Is(err, ErrNotMerged) {
		t.Errorf("Unmerge normal cell error = %v, want ErrNotMerged", err)
	}
	if _, err := g.Unmerge(At(5, 5)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Unmerge out of range error = %v, want ErrOutOfBounds", err)
	}
}

func TestAnchorOf(t *testing.T) {
	g := NewSized(3, 3)
	_ = g.Merge(Rect{Row: 1, Col: 1, Rows: 2, Cols: 2})

	tests := []struct {
		p    Pos
		want Pos
	}{
		{At(0, 0), At(0, 0)},
		{At(1, 1), At(1, 1)},
		{At(2, 2), At(1, 1)},
		{At(1, 2), At(1, 1)},
	}
	for _, tt := range tests {
		got, ok := g.AnchorOf(tt.p)
		if !ok || got != tt.want {
			t.Errorf("AnchorOf(%v) = %v, %v; want %v", tt.p, got, ok, tt.want)
		}
	}
}

func TestStructuralEditsAcrossMerges(t *testing.T) {
	block := Rect{Row: 0, Col: 0, Rows: 2, Cols: 2}

	tests := []struct {
		name       string
		edit       func(g *Grid) Edit
		wantSplit  bool
		wantMerges []Rect
	}{
		{
			name:       "row inserted inside block",
			edit:       func(g *Grid) Edit { return g.InsertRow(1) },
			wantSplit:  true,
			wantMerges: nil,
		},
		{
			name:       "row inserted before block",
			edit:       func(g *Grid) Edit { return g.InsertRow(0) },
			wantMerges: []Rect{{Row: 1, Col: 0, Rows: 2, Cols: 2}},
		},
		{
			name:       "row inserted after block",
			edit:       func(g *Grid) Edit { return g.InsertRow(2) },
			wantMerges: []Rect{block},
		},
		{
			name:       "column inserted inside block",
			edit:       func(g *Grid) Edit { return g.InsertCol(1) },
			wantSplit:  true,
			wantMerges: nil,
		},
		{
			name:       "column inserted before block",
			edit:       func(g *Grid) Edit { return g.InsertCol(0) },
			wantMerges: []Rect{{Row: 0, Col: 1, Rows: 2, Cols: 2}},
		},
		{
			name: "row deleted through block",
			edit: func(g *Grid) Edit {
				e, _ := g.DeleteRow(1)
				return e
			},
			wantSplit:  true,
			wantMerges: nil,
		},
		{
			name: "column deleted outside block",
			edit: func(g *Grid) Edit {
				e, _ := g.DeleteCol(2)
				return e
			},
			wantMerges: []Rect{block},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSized(3, 3)
			if err := g.Merge(block); err != nil {
				t.Fatalf("Merge error = %v", err)
			}
			edit := tt.edit(g)
			if got := len(edit.Unmerged) > 0; got != tt.wantSplit {
				t.Errorf("split = %v, want %v (unmerged %v)", got, tt.wantSplit, edit.Unmerged)
			}
			if diff := cmp.Diff(tt.wantMerges, g.Merges()); diff != "" {
				t.Errorf("merges mismatch (-want +got):\n%s", diff)
			}
			for r := 0; r < g.Rows(); r++ {
				for c := 0; c < g.Cols(); c++ {
					p := At(r, c)
					cell, _ := g.Cell(p)
					covered := false
					for _, b := range g.Merges() {
						if b.Has(p) && p != b.TopLeft() {
							covered = true
						}
					}
					if cell.Hidden != covered {
						t.Errorf("cell %v hidden = %v, want %v", p, cell.Hidden, covered)
					}
				}
			}
		})
	}
}

func TestHasContent(t *testing.T) {
	g := FromContent([][]string{{"", "  "}, {"", "x"}})
	if g.HasContent(Rect{Row: 0, Col: 0, Rows: 1, Cols: 2}) {
		t.Error("HasContent on blank cells = true, want false")
	}
	if !g.HasContent(Rect{Row: 0, Col: 0, Rows: 2, Cols: 2}) {
		t.Error("HasContent with text = false, want true")
	}
}
