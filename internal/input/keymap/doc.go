// Package keymap maps key chords to table block commands.
//
// A Keymap is an ordered list of bindings. Later bindings for the same chord
// override earlier ones, so user bindings are applied on top of Default().
//
// Bindings may carry a When condition. The only condition the table block
// evaluates is "cellFocus": the key was pressed inside a cell's editable
// region. A "!" prefix negates it.
//
//	km := keymap.Default()
//	if err := km.Bind("Ctrl+M", "table.merge"); err != nil { ... }
//	if b, ok := km.Lookup(ev, keymap.Context{InCell: true}); ok {
//	    // run b.Action
//	}
package keymap
