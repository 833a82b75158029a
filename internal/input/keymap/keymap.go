package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/gridblock/internal/input/key"
)

// Keymap holds chord bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	bindings []Binding
}

// New creates an empty keymap.
func New(name string) *Keymap {
	return &Keymap{Name: name}
}

// Add parses and appends a binding.
func (k *Keymap) Add(b Binding) error {
	if err := b.parse(); err != nil {
		return err
	}
	k.bindings = append(k.bindings, b)
	return nil
}

// Bind binds keys to action in every context.
func (k *Keymap) Bind(keys, action string) error {
	return k.Add(Binding{Keys: keys, Action: action})
}

// Unbind removes every binding for action.
func (k *Keymap) Unbind(action string) {
	kept := k.bindings[:0]
	for _, b := range k.bindings {
		if b.Action != action {
			kept = append(kept, b)
		}
	}
	k.bindings = kept
}

// Rebind replaces the bindings of action with keys.
func (k *Keymap) Rebind(action, keys string) error {
	b := Binding{Keys: keys, Action: action}
	if err := b.parse(); err != nil {
		return err
	}
	k.Unbind(action)
	k.bindings = append(k.bindings, b)
	return nil
}

// Lookup returns the binding for ev in ctx. The most recently added
// matching binding wins.
func (k *Keymap) Lookup(ev key.Event, ctx Context) (Binding, bool) {
	for i := len(k.bindings) - 1; i >= 0; i-- {
		b := k.bindings[i]
		if b.chord.Equals(ev) && b.applies(ctx) {
			return b, true
		}
	}
	return Binding{}, false
}

// Bindings returns a copy of the bindings sorted by action then keys.
func (k *Keymap) Bindings() []Binding {
	out := append([]Binding(nil), k.bindings...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}

// Help returns one line per binding: the chord in both notations, the
// action and its description.
func (k *Keymap) Help() []string {
	bindings := k.Bindings()
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		desc := b.Description
		if b.When != "" {
			desc = strings.TrimSpace(desc + " (when " + b.When + ")")
		}
		line := fmt.Sprintf("%-20s %-12s %-24s %s", b.Chord(), b.Chord().VimString(), b.Action, desc)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// Apply rebinds every action in overrides (action -> keys).
// An empty keys value unbinds the action.
func (k *Keymap) Apply(overrides map[string]string) error {
	actions := make([]string, 0, len(overrides))
	for action := range overrides {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		keys := overrides[action]
		if keys == "" {
			k.Unbind(action)
			continue
		}
		if err := k.Rebind(action, keys); err != nil {
			return fmt.Errorf("keymap %s: %w", k.Name, err)
		}
	}
	return nil
}
