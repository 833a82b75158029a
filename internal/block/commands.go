package block

import (
	"fmt"
	"sort"

	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/input/key"
	"github.com/dshills/gridblock/internal/input/keymap"
)

// Command names, usable in keymaps, scripts and Execute.
const (
	CmdSuppressNewline    = "table.suppressNewline"
	CmdInsertRowBelow     = "table.insertRowBelow"
	CmdInsertRowBefore    = "table.insertRowBefore"
	CmdInsertRowAfter     = "table.insertRowAfter"
	CmdInsertColumnBefore = "table.insertColumnBefore"
	CmdInsertColumnAfter  = "table.insertColumnAfter"
	CmdDeleteRow          = "table.deleteRow"
	CmdDeleteColumn       = "table.deleteColumn"
	CmdMerge              = "table.merge"
	CmdUnmerge            = "table.unmerge"
)

type command func(e *Editor) Result

var commands = map[string]command{
	CmdSuppressNewline: func(*Editor) Result { return Result{Outcome: Applied} },
	CmdInsertRowBelow: func(e *Editor) Result {
		idx := e.InsertRowBelow()
		return applied(grid.Rect{Row: idx, Rows: 1, Cols: e.Cols()})
	},
	CmdInsertRowBefore: func(e *Editor) Result {
		idx := e.InsertRowBefore()
		return applied(grid.Rect{Row: idx, Rows: 1, Cols: e.Cols()})
	},
	CmdInsertRowAfter: func(e *Editor) Result {
		idx := e.InsertRowAfter()
		return applied(grid.Rect{Row: idx, Rows: 1, Cols: e.Cols()})
	},
	CmdInsertColumnBefore: func(e *Editor) Result {
		idx := e.InsertColumnBefore()
		return applied(grid.Rect{Col: idx, Rows: e.Rows(), Cols: 1})
	},
	CmdInsertColumnAfter: func(e *Editor) Result {
		idx := e.InsertColumnAfter()
		return applied(grid.Rect{Col: idx, Rows: e.Rows(), Cols: 1})
	},
	CmdDeleteRow:    (*Editor).DeleteRow,
	CmdDeleteColumn: (*Editor).DeleteColumn,
	CmdMerge:        (*Editor).MergeCells,
	CmdUnmerge:      (*Editor).UnmergeCells,
}

// Commands returns the names of every command, sorted.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs a command by name.
func (e *Editor) Execute(name string) (Result, error) {
	cmd, ok := commands[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	res := cmd(e)
	e.logger.Debug("command %s: %s", name, res.Outcome)
	return res, nil
}

// HandleKey runs the command bound to ev. inCell is true when the key was
// pressed inside a cell's editable region. It reports whether the key was
// consumed; the host must then suppress its default behavior, such as
// inserting a newline on Enter.
func (e *Editor) HandleKey(ev key.Event, inCell bool) bool {
	b, ok := e.keymap.Lookup(ev, keymap.Context{InCell: inCell})
	if !ok {
		return false
	}
	if _, err := e.Execute(b.Action); err != nil {
		e.logger.Warn("key %s: %v", ev, err)
		return false
	}
	return true
}
