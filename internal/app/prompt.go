package app

import (
	"github.com/gdamore/tcell/v2"
)

// prompt asks a yes/no question on the status line and blocks until it is
// answered. Enter and y accept; Escape, n and Ctrl+C decline. Config
// reloads that arrive meanwhile are re-posted once the prompt closes.
// Without an initialized screen there is nobody to ask and the answer is no.
func (app *Application) prompt(message string) bool {
	if !app.ready {
		app.logger.Warn("no terminal to confirm %q, declining", message)
		return false
	}
	var deferred []tcell.Event
	defer func() {
		for _, ev := range deferred {
			_ = app.screen.PostEvent(ev)
		}
	}()

	app.showPrompt(message)
	for {
		switch ev := app.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEnter:
				return true
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return false
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
				return true
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
				return false
			}
		case *tcell.EventResize:
			app.screen.Sync()
			app.showPrompt(message)
		case *tcell.EventInterrupt:
			deferred = append(deferred, ev)
		}
	}
}

func (app *Application) showPrompt(message string) {
	app.draw()
	w, h := app.screen.Size()
	app.drawStatus(w, h, message+" [y/n]", app.view.Theme.Alert)
	app.screen.Show()
}
