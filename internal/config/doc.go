// Package config loads gridblock settings.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← GRIDBLOCK_TABLE_ROWS=5
//	├─────────────────────────────┤
//	│  2. Config File (TOML)      │  ← -config gridblock.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// # Configuration Files
//
//	[log]
//	level = "debug"
//	file = "/tmp/gridblock.log"
//
//	[table]
//	rows = 3
//	cols = 3
//	headings = false
//	confirm = "ask"          # ask, always or never
//
//	[keys]
//	"table.merge" = "Ctrl+Alt+Shift+J"
//	"table.deleteRow" = "Ctrl+Alt+Shift+D"
//	"table.unmerge" = ""     # unbind
//
//	[script]
//	path = "init.lua"
//
// A Watcher reloads the file when it changes on disk.
package config
