// Package key provides key events and chord parsing for table commands.
//
// A chord is one key press with modifiers. Specifications are accepted in
// two forms:
//
//   - Modifier style: "Enter", "Ctrl+Enter", "Ctrl+Alt+Shift+J"
//   - Vim style: "<CR>", "<C-CR>", "<C-A-S-j>"
//
// Letters are case-insensitive when a modifier other than Shift is held, so
// "Ctrl+Alt+Shift+J" and "<C-A-S-j>" parse to the same event.
package key
