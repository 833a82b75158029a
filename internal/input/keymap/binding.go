package keymap

import (
	"fmt"

	"github.com/dshills/gridblock/internal/input/key"
)

// Conditions understood in Binding.When.
const (
	WhenCellFocus    = "cellFocus"
	WhenNotCellFocus = "!cellFocus"
)

// Binding maps one chord to an action.
type Binding struct {
	// Keys is the chord, e.g. "Ctrl+Alt+Shift+J" or "<C-CR>".
	Keys string

	// Action is the command to run, e.g. "table.merge".
	Action string

	// When restricts the binding to a context. Empty means always.
	When string

	// Description documents the binding.
	Description string

	chord key.Event
}

// Context is the state a lookup is evaluated in.
type Context struct {
	// InCell is true when the key was pressed inside a cell's editable region.
	InCell bool
}

func (b *Binding) parse() error {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q -> %s: %w", b.Keys, b.Action, err)
	}
	switch b.When {
	case "", WhenCellFocus, WhenNotCellFocus:
	default:
		return fmt.Errorf("binding %q -> %s: unknown condition %q", b.Keys, b.Action, b.When)
	}
	b.chord = ev
	return nil
}

func (b Binding) applies(ctx Context) bool {
	switch b.When {
	case WhenCellFocus:
		return ctx.InCell
	case WhenNotCellFocus:
		return !ctx.InCell
	default:
		return true
	}
}

// Chord returns the parsed chord of the binding.
func (b Binding) Chord() key.Event {
	return b.chord
}
