package keymap

// Default returns the table block bindings.
func Default() *Keymap {
	km := New("default")
	for _, b := range []Binding{
		{Keys: "Enter", Action: "table.suppressNewline", When: WhenCellFocus, Description: "Keep cell content on one line"},
		{Keys: "Ctrl+Enter", Action: "table.insertRowBelow", Description: "Insert a row below and focus it"},
		{Keys: "Ctrl+Alt+Shift+J", Action: "table.merge", Description: "Merge the selected range"},
		{Keys: "Ctrl+Alt+Shift+K", Action: "table.unmerge", Description: "Split the selected merged cell"},
	} {
		if err := km.Add(b); err != nil {
			panic(err)
		}
	}
	return km
}
