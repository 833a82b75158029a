package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Event{Key: KeyRune, Rune: 'a'}},
		{"A", Event{Key: KeyRune, Rune: 'A'}},
		{"Enter", Event{Key: KeyEnter}},
		{"<CR>", Event{Key: KeyEnter}},
		{"Ctrl+Enter", Event{Key: KeyEnter, Modifiers: ModCtrl}},
		{"<C-CR>", Event{Key: KeyEnter, Modifiers: ModCtrl}},
		{"Ctrl+Alt+Shift+J", Event{Key: KeyRune, Rune: 'j', Modifiers: ModCtrl | ModAlt | ModShift}},
		{"ctrl+alt+shift+j", Event{Key: KeyRune, Rune: 'j', Modifiers: ModCtrl | ModAlt | ModShift}},
		{"<C-A-S-k>", Event{Key: KeyRune, Rune: 'k', Modifiers: ModCtrl | ModAlt | ModShift}},
		{"Ctrl+Alt+K", Event{Key: KeyRune, Rune: 'k', Modifiers: ModCtrl | ModAlt | ModShift}},
		{"Cmd+Space", Event{Key: KeyRune, Rune: ' ', Modifiers: ModMeta}},
		{"Ctrl++", Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
		{"+", Event{Key: KeyRune, Rune: '+'}},
		{"  Tab  ", Event{Key: KeyTab}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Hyper+J", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"Ctrl+Nope", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse with invalid spec did not panic")
		}
	}()
	MustParse("Bogus+Key")
}
