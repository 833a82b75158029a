package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridblock/internal/render/screen"
)

// Help is shown on the status line when there is nothing else to say.
const Help = "arrows move  shift+arrows select  ctrl+s save  ctrl+q quit"

// draw renders one frame: the table, the alert line and the status line.
func (app *Application) draw() {
	start := time.Now()
	s := app.screen
	s.Clear()
	app.view.Draw(s, app.editor.Grid(), app.editor.Selection(), app.editor.Headings())

	w, h := s.Size()
	if app.alert != "" && h > 1 {
		_, th := app.view.Size()
		screen.DrawText(s, 0, min(app.view.Y+th, h-2), w, app.alert, app.view.Theme.Alert)
	}
	app.placeCursor()
	app.drawStatus(w, h, app.statusText(), app.view.Theme.Status)
	s.Show()
	app.metrics.RecordFrame(time.Since(start))
}

// placeCursor shows the terminal cursor after the text of the selected
// cell, and hides it otherwise.
func (app *Application) placeCursor() {
	p, ok := app.editor.SelectedCell()
	if !ok {
		app.screen.HideCursor()
		return
	}
	x, y, width, height, ok := app.view.CellBounds(p)
	if !ok || width < 1 || height < 1 {
		app.screen.HideCursor()
		return
	}
	cell, _ := app.editor.Cell(p)
	app.screen.ShowCursor(x+min(screen.StringWidth(cell.Content), width-1), y)
}

// drawStatus writes text on the last line with the grid size and the
// modified marker right aligned.
func (app *Application) drawStatus(w, h int, text string, style tcell.Style) {
	if h < 1 {
		return
	}
	size := fmt.Sprintf(" %dx%d ", app.editor.Rows(), app.editor.Cols())
	if app.dirty {
		size = " [+]" + size
	}
	right := screen.StringWidth(size)
	screen.DrawText(app.screen, 0, h-1, max(w-right, 0), " "+text, style)
	screen.DrawText(app.screen, max(w-right, 0), h-1, min(right, w), size, style)
}

func (app *Application) statusText() string {
	if app.status != "" {
		return app.status
	}
	sel := app.editor.Selection()
	if r, ok := sel.Selection(); ok {
		return fmt.Sprintf("range %dx%d at %d,%d", r.Rows, r.Cols, r.Row+1, r.Col+1)
	}
	if p, ok := sel.Selected(); ok {
		return fmt.Sprintf("cell %d,%d", p.Row+1, p.Col+1)
	}
	return Help
}
