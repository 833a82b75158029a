package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width columns, ending it with Ellipsis
// when anything was cut. Grapheme clusters are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}
	limit := width - StringWidth(Ellipsis)
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := StringWidth(gr.Str())
		if used+w > limit {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// DrawText writes s at (x, y) and pads it with spaces to width columns.
// Text wider than width is truncated. It returns the columns written.
func DrawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	text = Truncate(text, width)
	col := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := StringWidth(gr.Str())
		if w == 0 {
			continue
		}
		s.SetContent(x+col, y, runes[0], runes[1:], style)
		col += w
	}
	for ; col < width; col++ {
		s.SetContent(x+col, y, ' ', nil, style)
	}
	return col
}
