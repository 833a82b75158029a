package screen

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"日本語", 4, "日…"},
		{"été", 3, "été"},
		{"étés", 3, "ét…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestDrawText(t *testing.T) {
	s := newScreen(t, 10, 1)
	n := DrawText(s, 1, 0, 6, "abc", DefaultTheme().Status)
	if n != 6 {
		t.Errorf("DrawText wrote %d columns, want 6", n)
	}
	if got := lines(s, 1)[0]; got != " abc" {
		t.Errorf("line = %q", got)
	}
}
