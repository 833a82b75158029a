package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/gridblock/internal/grid"
)

func run(s State, events ...Event) State {
	for _, e := range events {
		s = Transition(s, e)
	}
	return s
}

func TestTransitions(t *testing.T) {
	p := grid.At
	tests := []struct {
		name   string
		events []Event
		want   State
	}{
		{
			name: "initial",
			want: State{Phase: Idle, Rows: 3, Cols: 3},
		},
		{
			name:   "focus",
			events: []Event{Focus{p(1, 2)}},
			want:   State{Phase: CellFocused, Focus: p(1, 2), Rows: 3, Cols: 3},
		},
		{
			name:   "click records corner",
			events: []Event{Click{p(0, 1)}},
			want:   State{Phase: RangePicking, Focus: p(0, 1), Rows: 3, Cols: 3},
		},
		{
			name:   "extend after click",
			events: []Event{Click{p(0, 0)}, Extend{p(1, 1)}},
			want: State{
				Phase: RangeSelected, Focus: p(1, 1),
				Range: grid.Rect{Row: 0, Col: 0, Rows: 2, Cols: 2}, Rows: 3, Cols: 3,
			},
		},
		{
			name:   "extend up-left keeps min indices",
			events: []Event{Click{p(2, 2)}, Extend{p(1, 0)}},
			want: State{
				Phase: RangeSelected, Focus: p(1, 0),
				Range: grid.Rect{Row: 1, Col: 0, Rows: 2, Cols: 3}, Rows: 3, Cols: 3,
			},
		},
		{
			name:   "chained extend starts from the last picked cell",
			events: []Event{Click{p(0, 0)}, Extend{p(1, 1)}, Extend{p(2, 2)}},
			want: State{
				Phase: RangeSelected, Focus: p(2, 2),
				Range: grid.Rect{Row: 1, Col: 1, Rows: 2, Cols: 2}, Rows: 3, Cols: 3,
			},
		},
		{
			name:   "chained extend back up-left",
			events: []Event{Click{p(0, 0)}, Extend{p(2, 2)}, Extend{p(0, 1)}},
			want: State{
				Phase: RangeSelected, Focus: p(0, 1),
				Range: grid.Rect{Row: 0, Col: 1, Rows: 3, Cols: 2}, Rows: 3, Cols: 3,
			},
		},
		{
			name:   "extend without corner acts as click",
			events: []Event{Focus{p(0, 0)}, Extend{p(1, 1)}},
			want:   State{Phase: RangePicking, Focus: p(1, 1), Rows: 3, Cols: 3},
		},
		{
			name:   "table focus-in drops range",
			events: []Event{Click{p(0, 0)}, Extend{p(1, 1)}, TableFocusIn{}},
			want:   State{Phase: CellFocused, Focus: p(1, 1), Rows: 3, Cols: 3},
		},
		{
			name:   "table focus-in while idle",
			events: []Event{TableFocusIn{}},
			want:   State{Phase: Idle, Rows: 3, Cols: 3},
		},
		{
			name:   "merged focuses top-left",
			events: []Event{Click{p(2, 2)}, Extend{p(0, 1)}, Merged{}},
			want:   State{Phase: CellFocused, Focus: p(0, 1), Rows: 3, Cols: 3},
		},
		{
			name:   "out of bounds ignored",
			events: []Event{Focus{p(1, 1)}, Click{p(3, 0)}, Extend{p(0, -1)}},
			want:   State{Phase: CellFocused, Focus: p(1, 1), Rows: 3, Cols: 3},
		},
		{
			name:   "blur",
			events: []Event{Click{p(0, 0)}, Blur{}},
			want:   State{Phase: Idle, Rows: 3, Cols: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(New(3, 3), tt.events...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResize(t *testing.T) {
	s := run(New(3, 3), Click{grid.At(0, 0)}, Extend{grid.At(2, 2)})

	shrunk := Transition(s, Resize{Rows: 2, Cols: 3})
	if shrunk.Phase != Idle {
		t.Errorf("focus out of bounds: phase = %v, want idle", shrunk.Phase)
	}

	moved := grid.At(1, 0)
	kept := Transition(s, Resize{Rows: 4, Cols: 3, Focus: &moved})
	want := State{Phase: CellFocused, Focus: moved, Rows: 4, Cols: 3}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if _, ok := kept.Selection(); ok {
		t.Error("range survived a resize")
	}
}

func TestHighlighted(t *testing.T) {
	s := run(New(3, 3), Click{grid.At(0, 0)}, Extend{grid.At(1, 1)})
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := r <= 1 && c <= 1
			if got := s.Highlighted(grid.At(r, c)); got != want {
				t.Errorf("Highlighted(%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
	if run(s, TableFocusIn{}).Highlighted(grid.At(0, 0)) {
		t.Error("highlight survived table focus-in")
	}
}

func TestPhaseString(t *testing.T) {
	if RangeSelected.String() != "range-selected" {
		t.Errorf("RangeSelected.String() = %q", RangeSelected.String())
	}
	if Phase(9).String() != "Phase(9)" {
		t.Errorf("Phase(9).String() = %q", Phase(9).String())
	}
}
