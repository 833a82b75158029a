package config

import (
	"github.com/dshills/gridblock/internal/input/keymap"
	"github.com/dshills/gridblock/internal/logging"
)

// Confirmation policies for merging cells that hold text.
const (
	ConfirmAsk    = "ask"
	ConfirmAlways = "always"
	ConfirmNever  = "never"
)

// Table size limits for the seeded grid.
const (
	MaxRows = 1000
	MaxCols = 100
)

// Config holds every setting.
type Config struct {
	Log    LogConfig         `toml:"log"`
	Table  TableConfig       `toml:"table"`
	Keys   map[string]string `toml:"keys"`
	Script ScriptConfig      `toml:"script"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level"`
	// File receives log output. Empty logs to stderr in the dump modes and
	// nowhere while the terminal UI runs.
	File string `toml:"file"`
}

// TableConfig configures the table block.
type TableConfig struct {
	// Rows and Cols size the grid a new block is seeded with.
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	// Headings renders the first row as header cells.
	Headings bool `toml:"headings"`

	// Confirm is the policy for merges that would hide text.
	Confirm string `toml:"confirm"`

	// MinWidth and MaxWidth bound terminal column widths.
	MinWidth int `toml:"minWidth"`
	MaxWidth int `toml:"maxWidth"`
}

// ScriptConfig configures the Lua init script.
type ScriptConfig struct {
	Path string `toml:"path"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Table: TableConfig{
			Rows:     3,
			Cols:     3,
			Confirm:  ConfirmAsk,
			MinWidth: 3,
			MaxWidth: 24,
		},
		Keys: map[string]string{},
	}
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.Log.Level) {
		return &ValidationError{Path: "log.level", Message: "must be debug, info, warn or error", Value: c.Log.Level}
	}
	if c.Table.Rows < 0 || c.Table.Rows > MaxRows {
		return &ValidationError{Path: "table.rows", Message: "out of range", Value: c.Table.Rows}
	}
	if c.Table.Cols < 0 || c.Table.Cols > MaxCols {
		return &ValidationError{Path: "table.cols", Message: "out of range", Value: c.Table.Cols}
	}
	switch c.Table.Confirm {
	case ConfirmAsk, ConfirmAlways, ConfirmNever:
	default:
		return &ValidationError{Path: "table.confirm", Message: "must be ask, always or never", Value: c.Table.Confirm}
	}
	if c.Table.MinWidth < 1 {
		return &ValidationError{Path: "table.minWidth", Message: "must be at least 1", Value: c.Table.MinWidth}
	}
	if c.Table.MaxWidth < c.Table.MinWidth {
		return &ValidationError{Path: "table.maxWidth", Message: "must not be below minWidth", Value: c.Table.MaxWidth}
	}
	// Check chords against a scratch keymap so a bad file never reaches the
	// live one.
	if err := keymap.Default().Apply(c.Keys); err != nil {
		return &ValidationError{Path: "keys", Message: err.Error(), Value: c.Keys}
	}
	return nil
}

// Keymap returns the default bindings with the [keys] overrides applied.
func (c Config) Keymap() (*keymap.Keymap, error) {
	km := keymap.Default()
	if err := km.Apply(c.Keys); err != nil {
		return nil, err
	}
	return km, nil
}
