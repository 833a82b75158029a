package block

import (
	"errors"
	"testing"

	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/input/key"
	"github.com/dshills/gridblock/internal/input/keymap"
)

func TestDefaultKeymapActionsAreCommands(t *testing.T) {
	known := map[string]bool{}
	for _, name := range Commands() {
		known[name] = true
	}
	for _, b := range keymap.Default().Bindings() {
		if !known[b.Action] {
			t.Errorf("binding %s -> %s has no command", b.Keys, b.Action)
		}
	}
}

func TestExecuteUnknown(t *testing.T) {
	_, err := New().Execute("table.explode")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Execute error = %v, want ErrUnknownCommand", err)
	}
}

func TestExecuteInserts(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		wantRect grid.Rect
	}{
		{CmdInsertRowBefore, 3, 2, grid.Rect{Row: 1, Rows: 1, Cols: 2}},
		{CmdInsertRowAfter, 3, 2, grid.Rect{Row: 2, Rows: 1, Cols: 2}},
		{CmdInsertColumnBefore, 2, 3, grid.Rect{Col: 1, Rows: 2, Cols: 1}},
		{CmdInsertColumnAfter, 2, 3, grid.Rect{Col: 2, Rows: 2, Cols: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := seeded(t, 2, 2)
			e.SetSelectedCell(grid.At(1, 1))
			res, err := e.Execute(tt.name)
			if err != nil {
				t.Fatalf("Execute error = %v", err)
			}
			if res.Outcome != Applied || res.Range != tt.wantRect {
				t.Errorf("Execute = %v %v, want applied %v", res.Outcome, res.Range, tt.wantRect)
			}
			if e.Rows() != tt.rows || e.Cols() != tt.cols {
				t.Errorf("grid = %dx%d, want %dx%d", e.Rows(), e.Cols(), tt.rows, tt.cols)
			}
		})
	}
}

func TestHandleKey(t *testing.T) {
	ctrlAltShift := key.ModCtrl | key.ModAlt | key.ModShift

	t.Run("enter in cell is consumed", func(t *testing.T) {
		e := seeded(t, 1, 1)
		e.SetSelectedCell(grid.At(0, 0))
		if !e.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone), true) {
			t.Error("Enter in a cell not consumed")
		}
		if e.Rows() != 1 {
			t.Errorf("Enter changed the grid to %d rows", e.Rows())
		}
	})

	t.Run("enter outside cell passes through", func(t *testing.T) {
		e := seeded(t, 1, 1)
		if e.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone), false) {
			t.Error("Enter outside a cell consumed")
		}
	})

	t.Run("ctrl enter inserts row below", func(t *testing.T) {
		e := seeded(t, 2, 2)
		e.SetSelectedCell(grid.At(0, 1))
		if !e.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModCtrl), true) {
			t.Fatal("Ctrl+Enter not consumed")
		}
		if e.Rows() != 3 {
			t.Errorf("Rows() = %d, want 3", e.Rows())
		}
		if p, _ := e.SelectedCell(); p != grid.At(1, 0) {
			t.Errorf("selected = %v, want (1,0)", p)
		}
	})

	t.Run("merge and unmerge chords", func(t *testing.T) {
		e := seeded(t, 2, 2)
		e.Click(grid.At(0, 0))
		e.ExtendSelection(grid.At(1, 1))

		// Terminals report the letter in upper case when Shift is held.
		if !e.HandleKey(key.NewRuneEvent('J', key.ModCtrl|key.ModAlt), true) {
			t.Fatal("merge chord not consumed")
		}
		if len(e.Grid().Merges()) != 1 {
			t.Fatalf("merges = %v, want one", e.Grid().Merges())
		}
		if !e.HandleKey(key.NewRuneEvent('k', ctrlAltShift), true) {
			t.Fatal("unmerge chord not consumed")
		}
		if len(e.Grid().Merges()) != 0 {
			t.Errorf("merges = %v after unmerge chord", e.Grid().Merges())
		}
	})

	t.Run("unbound key", func(t *testing.T) {
		e := seeded(t, 1, 1)
		if e.HandleKey(key.NewRuneEvent('x', key.ModNone), true) {
			t.Error("plain x consumed")
		}
	})

	t.Run("binding to unknown command", func(t *testing.T) {
		km := keymap.New("custom")
		if err := km.Bind("Ctrl+q", "table.explode"); err != nil {
			t.Fatal(err)
		}
		e := New(WithKeymap(km))
		if e.HandleKey(key.NewRuneEvent('q', key.ModCtrl), false) {
			t.Error("key bound to unknown command consumed")
		}
	})
}
