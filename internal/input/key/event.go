package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event is a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return normalize(Event{Key: KeyRune, Rune: r, Modifiers: mods})
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// normalize folds letter case into the Shift modifier when another modifier
// is held, because terminals and browsers disagree on the reported case of
// Ctrl/Alt chords.
func normalize(e Event) Event {
	if e.Key != KeyRune || !e.Modifiers.Has(ModCtrl|ModAlt|ModMeta) {
		return e
	}
	if unicode.IsUpper(e.Rune) {
		e.Modifiers = e.Modifiers.With(ModShift)
	}
	e.Rune = unicode.ToLower(e.Rune)
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without command
// modifiers.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.Has(ModCtrl|ModAlt|ModMeta)
}

// Equals reports whether two events are the same chord.
func (e Event) Equals(other Event) bool {
	a, b := normalize(e), normalize(other)
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

// String returns the modifier-style spec, e.g. "Ctrl+Alt+Shift+J".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Modifiers.Has(ModCtrl | ModAlt | ModMeta) {
			name = strings.ToUpper(name)
		}
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// VimString returns the Vim-style spec, e.g. "<C-A-S-j>".
func (e Event) VimString() string {
	if e.IsChar() && e.Modifiers == ModNone {
		return string(e.Rune)
	}
	name := e.Key.String()
	switch e.Key {
	case KeyRune:
		name = string(e.Rune)
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyDelete:
		name = "Del"
	}
	if mods := e.Modifiers.ShortString(); mods != "" {
		return "<" + mods + "-" + name + ">"
	}
	return "<" + name + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}", e.Key, e.Rune, e.Modifiers)
}
