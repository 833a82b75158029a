package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/gridblock/internal/config"
	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/input/key"
	"github.com/dshills/gridblock/internal/input/keymap"
)

// configReload carries a watcher notification onto the loop goroutine.
type configReload struct {
	cfg config.Config
	err error
}

// quitRequest is posted by Quit.
type quitRequest struct{}

// Host chords, checked after the keymap.
var (
	quitKey = key.MustParse("Ctrl+q")
	saveKey = key.MustParse("Ctrl+s")
)

// Run initializes the screen and processes events until quit.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.screen == nil {
		return ErrHeadless
	}
	if err := app.init(); err != nil {
		return err
	}
	defer app.fini()
	defer func() {
		if r := recover(); r != nil {
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		}
	}()

	app.startWatcher()
	app.draw()
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		start := time.Now()
		err := app.handleEvent(ev)
		app.metrics.RecordEvent(time.Since(start))
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			app.logger.Error("%v", err)
			app.status = err.Error()
		}
		app.draw()
	}
}

func (app *Application) init() error {
	if err := app.screen.Init(); err != nil {
		return &ComponentError{Component: "screen", Action: "init", Err: err}
	}
	app.screen.EnableMouse()
	app.screen.EnableFocus()
	app.screen.HideCursor()
	app.ready = true
	return nil
}

func (app *Application) fini() {
	app.ready = false
	app.screen.Fini()
}

// startWatcher reloads the config file on change. Notifications arrive on
// the watcher goroutine and are posted to the loop as interrupts.
func (app *Application) startWatcher() {
	if app.opts.ConfigPath == "" || app.watcher != nil {
		return
	}
	w, err := config.NewWatcher(app.opts.ConfigPath)
	if err != nil {
		app.logger.Warn("not watching %s: %v", app.opts.ConfigPath, err)
		return
	}
	s := app.screen
	w.OnChange(func(cfg config.Config, err error) {
		_ = s.PostEvent(tcell.NewEventInterrupt(configReload{cfg: cfg, err: err}))
	})
	app.watcher = w
}

// handleEvent routes a terminal event. It returns ErrQuit when the
// application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventFocus:
		if ev.Focused {
			app.editor.FocusIn()
		}
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case configReload:
			app.applyConfig(data.cfg, data.err)
		case quitRequest:
			return ErrQuit
		}
	}
	return nil
}

// handleKey runs the chord bound to the key, falling back to the host keys.
func (app *Application) handleKey(ev *tcell.EventKey) error {
	app.status, app.alert = "", ""
	k := convertKey(ev)
	if k.Key == key.KeyNone {
		return nil
	}

	_, inCell := app.editor.SelectedCell()
	if b, ok := app.editor.Keymap().Lookup(k, keymap.Context{InCell: inCell}); ok {
		res, err := app.editor.Execute(b.Action)
		if err == nil {
			app.metrics.RecordCommand()
			app.status = fmt.Sprintf("%s: %s", b.Action, res.Outcome)
			if !res.OK() && res.Message != "" {
				app.status += " (" + res.Message + ")"
			}
			return nil
		}
		app.logger.Warn("key %s: %v", k, err)
	}
	return app.hostKey(k)
}

func (app *Application) hostKey(k key.Event) error {
	switch k.Key {
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight:
		if k.Modifiers.Has(key.ModShift) {
			app.extend(k.Key)
		} else {
			app.move(k.Key)
		}
	case key.KeyTab:
		app.move(key.KeyRight)
	case key.KeyHome, key.KeyEnd:
		if p, ok := app.editor.SelectedCell(); ok {
			if k.Key == key.KeyHome {
				p.Col = 0
			} else {
				p.Col = app.editor.Cols() - 1
			}
			app.editor.Click(p)
		}
	case key.KeyEscape:
		app.editor.ClearSelectedCell()
	case key.KeyBackspace:
		app.editCell(trimLastGrapheme)
	case key.KeyDelete:
		app.editCell(func(string) string { return "" })
	case key.KeyRune:
		switch {
		case k.Equals(quitKey):
			return ErrQuit
		case k.Equals(saveKey):
			return app.Save()
		case k.Modifiers.Has(key.ModCtrl):
			return nil
		}
		if k.IsChar() {
			app.editCell(func(s string) string { return s + string(k.Rune) })
		}
	}
	return nil
}

// move selects the cell next to the selected one. Merged blocks are
// stepped over as a whole. With nothing selected the first cell is taken.
func (app *Application) move(dir key.Key) {
	p, ok := app.editor.SelectedCell()
	if !ok {
		app.editor.Click(grid.At(0, 0))
		return
	}
	app.editor.Click(app.step(p, dir))
}

// extend grows the range selection from the selected cell. The range keeps
// the cell it was started from, so repeated Shift+arrows sweep a rectangle.
func (app *Application) extend(dir key.Key) {
	sel := app.editor.Selection()
	p, ok := sel.Selected()
	if !ok {
		app.move(dir)
		return
	}
	if r, ok := sel.Selection(); !ok || !r.Has(app.rangeFrom) {
		app.rangeFrom = p
	}
	app.rangeTo(app.rangeFrom, app.step(p, dir))
}

// rangeTo selects the rectangle between two cells.
func (app *Application) rangeTo(from, to grid.Pos) {
	app.editor.Click(from)
	app.editor.ExtendSelection(to)
}

func (app *Application) step(p grid.Pos, dir key.Key) grid.Pos {
	c, _ := app.editor.Cell(p)
	switch dir {
	case key.KeyUp:
		p.Row--
	case key.KeyDown:
		p.Row += max(c.RowSpan, 1)
	case key.KeyLeft:
		p.Col--
	case key.KeyRight:
		p.Col += max(c.ColSpan, 1)
	}
	return p
}

func (app *Application) editCell(edit func(string) string) {
	p, ok := app.editor.SelectedCell()
	if !ok {
		return
	}
	c, _ := app.editor.Cell(p)
	next := edit(c.Content)
	if next == c.Content {
		return
	}
	if err := app.editor.SetCellContent(p, next); err != nil {
		app.logger.Error("edit %s: %v", p, err)
	}
}

func trimLastGrapheme(s string) string {
	last := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		last, _ = gr.Positions()
	}
	return s[:last]
}

// handleMouse selects on a primary button press: a plain click picks the
// cell, Shift+click extends the range to it from the last picked cell.
// Dragging with the button held sweeps a range from the pressed cell.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	held := ev.Buttons()&tcell.Button1 != 0
	pressed := held && app.buttons&tcell.Button1 == 0
	app.buttons = ev.Buttons()

	x, y := ev.Position()
	p, inside := app.view.HitTest(x, y)
	switch {
	case pressed:
		app.status, app.alert = "", ""
		app.dragging = inside
		if !inside {
			app.editor.ClearSelectedCell()
			return
		}
		before := app.editor.Selection()
		if ev.Modifiers()&tcell.ModShift != 0 {
			app.editor.ExtendSelection(p)
		} else {
			app.editor.Click(p)
		}
		app.rangeFrom = app.editor.Selection().Focus
		if _, ok := app.editor.Selection().Selection(); ok {
			app.rangeFrom = before.Focus
		}
		app.dragAt = p
	case held && app.dragging && inside && p != app.dragAt:
		app.rangeTo(app.rangeFrom, p)
		app.dragAt = p
	case !held:
		app.dragging = false
	}
}

// convertKey converts a tcell key event to a key.Event. Control characters
// become Ctrl+letter chords.
func convertKey(ev *tcell.EventKey) key.Event {
	mods := convertMod(ev.Modifiers())
	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
		}
		return key.Event{}
	}
}

func convertMod(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
