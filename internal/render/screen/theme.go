package screen

import "github.com/gdamore/tcell/v2"

// Theme holds the styles used to draw a table.
type Theme struct {
	Border    tcell.Style
	Cell      tcell.Style
	Heading   tcell.Style
	Selected  tcell.Style
	Highlight tcell.Style
	Status    tcell.Style
	Alert     tcell.Style
}

// DefaultTheme returns the default styles.
func DefaultTheme() Theme {
	return Theme{
		Border:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Cell:      tcell.StyleDefault,
		Heading:   tcell.StyleDefault.Bold(true),
		Selected:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray),
		Highlight: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		Status:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray),
		Alert:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon),
	}
}
