package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridblock/internal/block"
	"github.com/dshills/gridblock/internal/grid"
)

// ModuleName is the global the editor API is installed as.
const ModuleName = "grid"

// gridModule implements the grid API over one editor.
type gridModule struct {
	e *block.Editor
}

// Bind installs the grid module for e into s.
func Bind(s *State, e *block.Editor) {
	m := &gridModule{e: e}
	s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"rows":                 m.rows,
		"cols":                 m.cols,
		"get":                  m.get,
		"set":                  m.set,
		"select":               m.selectCell,
		"extend":               m.extend,
		"focus_in":             m.focusIn,
		"selected":             m.selected,
		"merge":                m.result((*block.Editor).MergeCells),
		"unmerge":              m.result((*block.Editor).UnmergeCells),
		"delete_row":           m.result((*block.Editor).DeleteRow),
		"delete_column":        m.result((*block.Editor).DeleteColumn),
		"insert_row_before":    m.insert((*block.Editor).InsertRowBefore),
		"insert_row_after":     m.insert((*block.Editor).InsertRowAfter),
		"insert_column_before": m.insert((*block.Editor).InsertColumnBefore),
		"insert_column_after":  m.insert((*block.Editor).InsertColumnAfter),
		"exec":                 m.exec,
		"commands":             m.commands,
		"headings":             m.headings,
		"paste":                m.paste,
	})
}

// ConfirmFunc returns a confirmation policy that calls the script's global
// confirm(message). ok is false when the script defines none.
func ConfirmFunc(s *State) (fn block.ConfirmFunc, ok bool) {
	if !s.HasFunction("confirm") {
		return nil, false
	}
	return func(message string) bool {
		ret, err := s.Call("confirm", lua.LString(message))
		if err != nil {
			s.logger.Warn("confirm: %v", err)
			return false
		}
		return len(ret) > 0 && lua.LVAsBool(ret[0])
	}, true
}

// rows() -> n
func (m *gridModule) rows(L *lua.LState) int {
	L.Push(lua.LNumber(m.e.Rows()))
	return 1
}

// cols() -> n
func (m *gridModule) cols(L *lua.LState) int {
	L.Push(lua.LNumber(m.e.Cols()))
	return 1
}

// checkPos reads a 1-based row and column at stack index n and n+1.
func (m *gridModule) checkPos(L *lua.LState, n int) grid.Pos {
	p := grid.At(L.CheckInt(n)-1, L.CheckInt(n+1)-1)
	if _, ok := m.e.Cell(p); !ok {
		L.RaiseError("cell (%d, %d) is outside the %dx%d table", p.Row+1, p.Col+1, m.e.Rows(), m.e.Cols())
	}
	return p
}

// get(row, col) -> content, merged, hidden
func (m *gridModule) get(L *lua.LState) int {
	c, _ := m.e.Cell(m.checkPos(L, 1))
	L.Push(lua.LString(c.Content))
	L.Push(lua.LBool(c.IsAnchor()))
	L.Push(lua.LBool(c.Hidden))
	return 3
}

// set(row, col, content)
func (m *gridModule) set(L *lua.LState) int {
	p := m.checkPos(L, 1)
	if err := m.e.SetCellContent(p, L.CheckString(3)); err != nil {
		L.RaiseError("set: %v", err)
	}
	return 0
}

// select(row, col) clicks a cell: it becomes the selected cell and the
// first corner of a range.
func (m *gridModule) selectCell(L *lua.LState) int {
	m.e.Click(m.checkPos(L, 1))
	return 0
}

// extend(row, col) completes the range from the last selected cell.
func (m *gridModule) extend(L *lua.LState) int {
	m.e.ExtendSelection(m.checkPos(L, 1))
	return 0
}

// focus_in() clears every highlight.
func (m *gridModule) focusIn(L *lua.LState) int {
	m.e.FocusIn()
	return 0
}

// selected() -> row, col or nil
func (m *gridModule) selected(L *lua.LState) int {
	p, ok := m.e.SelectedCell()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(p.Row + 1))
	L.Push(lua.LNumber(p.Col + 1))
	return 2
}

// result wraps an operation returning block.Result as
// fn() -> outcome, message.
func (m *gridModule) result(op func(*block.Editor) block.Result) lua.LGFunction {
	return func(L *lua.LState) int {
		return pushResult(L, op(m.e))
	}
}

// insert wraps an insert operation as fn() -> index (1-based).
func (m *gridModule) insert(op func(*block.Editor) int) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(op(m.e) + 1))
		return 1
	}
}

// exec(command) -> outcome, message
func (m *gridModule) exec(L *lua.LState) int {
	res, err := m.e.Execute(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	return pushResult(L, res)
}

// commands() -> {name, ...}
func (m *gridModule) commands(L *lua.LState) int {
	t := L.NewTable()
	for _, name := range block.Commands() {
		t.Append(lua.LString(name))
	}
	L.Push(t)
	return 1
}

// headings([on]) -> on. With an argument the first row's header rendering
// is switched first.
func (m *gridModule) headings(L *lua.LState) int {
	if L.GetTop() >= 1 {
		m.e.SetHeadings(L.CheckBool(1))
	}
	L.Push(lua.LBool(m.e.Headings()))
	return 1
}

// paste(html) replaces the table with the first table in html.
func (m *gridModule) paste(L *lua.LState) int {
	if err := m.e.ImportHTML(strings.NewReader(L.CheckString(1))); err != nil {
		L.RaiseError("paste: %v", err)
	}
	return 0
}

func pushResult(L *lua.LState, res block.Result) int {
	L.Push(lua.LString(res.Outcome.String()))
	L.Push(lua.LString(res.Message))
	return 2
}
