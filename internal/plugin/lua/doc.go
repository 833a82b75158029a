// Package lua runs user scripts against a table block.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table, string
// and math libraries are opened, file loading functions are removed, and
// every execution is bounded by a timeout.
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	lua.Bind(state, editor)
//	if err := state.DoFile("init.lua"); err != nil {
//	    return err
//	}
//
// # The grid module
//
// Bind installs a global table named grid. Row and column indices are
// 1-based, as is usual in Lua:
//
//	grid.insert_column_after()
//	grid.insert_row_after()
//	grid.set(1, 1, "total")
//	grid.select(1, 1)
//	grid.extend(2, 2)
//	local outcome, message = grid.merge()
//
// grid.paste(html) replaces the table with the first table of an HTML
// string, grid.headings(on) switches header rendering of the first row and
// grid.commands() lists the names grid.exec accepts.
//
// A script that defines a global function confirm(message) answers merge
// confirmations when the host installs ConfirmFunc as the editor's policy.
package lua
