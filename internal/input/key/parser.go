package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a chord specification into an Event.
//
// Supported formats:
//   - Single character or key name: "a", "Enter", "Tab"
//   - With modifiers: "Ctrl+Enter", "Ctrl+Alt+Shift+J"
//   - Vim-style: "<CR>", "<C-CR>", "<C-A-S-j>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"), spec)
	}

	// "+" alone or as the key ("Ctrl++") is a literal plus.
	if spec == "+" {
		return NewRuneEvent('+', ModNone), nil
	}
	if strings.HasSuffix(spec, "++") {
		parts := strings.Split(strings.TrimSuffix(spec, "++"), "+")
		return parseParts(append(parts, "+"), spec)
	}
	return parseParts(strings.Split(spec, "+"), spec)
}

func parseParts(parts []string, spec string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	if name == "" {
		return Event{}, fmt.Errorf("%w: missing key in %q", ErrInvalidSpec, spec)
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if strings.EqualFold(name, "space") {
		return NewRuneEvent(' ', mods), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidSpec, name, spec)
	}
	return NewRuneEvent(runes[0], mods), nil
}

// MustParse parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
