// Package screen draws a table grid on a terminal screen.
//
// The table is drawn with box-drawing borders. Every row is one line high;
// a merged block is drawn as a single box spanning its rows and columns,
// and the cells it covers are not drawn:
//
//	┌───────────┬─────┐
//	│ merged    │ c   │
//	│           ├─────┤
//	│           │ f   │
//	├─────┬─────┼─────┤
//	│ g   │ h   │ i   │
//	└─────┴─────┴─────┘
//
// Usage:
//
//	v := screen.New()
//	v.Draw(s, g, sel, false)
//	if p, ok := v.HitTest(mx, my); ok { ... }
package screen
