// Package app is the terminal host for a table block. It wires the
// configuration, the editor, the Lua init script and a tcell screen
// together and runs the event loop.
package app

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridblock/internal/block"
	"github.com/dshills/gridblock/internal/config"
	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/logging"
	"github.com/dshills/gridblock/internal/plugin/lua"
	"github.com/dshills/gridblock/internal/render/screen"
)

// Application is the central coordinator of the terminal host.
// Everything except Quit runs on the event loop goroutine.
type Application struct {
	opts   Options
	cfg    config.Config
	logger *logging.Logger
	base   *logging.Logger

	editor        *block.Editor
	script        *lua.State
	scriptConfirm bool
	watcher       *config.Watcher

	screen  tcell.Screen
	ready   bool
	view    *screen.View
	metrics *Metrics

	// UI state
	status   string
	alert    string
	dirty    bool
	buttons  tcell.ButtonMask
	dragging bool
	dragAt   grid.Pos

	// rangeFrom is the cell a keyboard or drag range was started from.
	rangeFrom grid.Pos

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML file to load and watch. Empty uses the
	// defaults and the environment only.
	ConfigPath string

	// Config, when set, is used instead of loading ConfigPath. The file is
	// still watched for changes.
	Config *config.Config

	// DataPath is the saved block to load and the target of Ctrl+S. A
	// .html or .htm path is read and written as an HTML table.
	DataPath string

	// ReadOnly renders cells without contenteditable.
	ReadOnly bool

	// ScriptPath overrides the [script] path setting.
	ScriptPath string

	// Screen is the terminal to draw on. Nil creates one for the
	// controlling terminal.
	Screen tcell.Screen

	// Headless skips the screen entirely, for dumping the table without a
	// terminal. Run fails on a headless application.
	Headless bool

	// Logger receives log output. Nil discards it.
	Logger *logging.Logger
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		base:    opts.Logger,
		metrics: NewMetrics(),
	}
	if app.base == nil {
		app.base = logging.Discard()
	}
	app.logger = app.base.WithComponent("app")

	if err := app.bootstrap(); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	if app.opts.Config != nil {
		app.cfg = *app.opts.Config
	} else {
		cfg, err := config.Load(app.opts.ConfigPath)
		if err != nil {
			return &ComponentError{Component: "config", Action: "load", Err: err}
		}
		app.cfg = cfg
	}
	if app.opts.ScriptPath != "" {
		app.cfg.Script.Path = app.opts.ScriptPath
	}

	// 2. Editor
	km, err := app.cfg.Keymap()
	if err != nil {
		return &ComponentError{Component: "config", Action: "keys", Err: err}
	}
	app.editor = block.New(
		block.WithLogger(app.base),
		block.WithKeymap(km),
		block.WithHeadings(app.cfg.Table.Headings),
		block.WithReadOnly(app.opts.ReadOnly),
		block.WithConfirm(app.confirmPolicy(app.cfg.Table.Confirm)),
		block.WithAlert(app.showAlert),
		block.WithOnChange(func(*block.Editor) { app.dirty = true }),
	)

	// 3. Initial content
	if err := app.loadData(); err != nil {
		return err
	}

	// 4. Init script
	if app.cfg.Script.Path != "" {
		if err := app.loadScript(app.cfg.Script.Path); err != nil {
			return err
		}
	}

	// 5. Screen
	app.screen = app.opts.Screen
	if app.screen == nil && !app.opts.Headless {
		s, err := tcell.NewScreen()
		if err != nil {
			return &ComponentError{Component: "screen", Action: "create", Err: err}
		}
		app.screen = s
	}
	app.view = screen.New()
	app.view.X, app.view.Y = 1, 1
	app.applyWidths(app.cfg.Table)

	app.dirty = false
	app.logger.Info("table %s ready, %dx%d", app.editor.ID(), app.editor.Rows(), app.editor.Cols())
	return nil
}

// Quit asks the event loop to exit. It is safe to call from any goroutine.
func (app *Application) Quit() {
	if app.screen != nil {
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	}
}

// Editor returns the hosted table block.
func (app *Application) Editor() *block.Editor { return app.editor }

// Config returns the active configuration.
func (app *Application) Config() config.Config { return app.cfg }

// Metrics returns the event loop metrics.
func (app *Application) Metrics() *Metrics { return app.metrics }

// Dirty reports whether the table changed since it was loaded or saved.
func (app *Application) Dirty() bool { return app.dirty }

// Seed grows an empty editor to rows x cols the way a fresh block is
// created: columns first, then rows.
func Seed(e *block.Editor, rows, cols int) {
	for i := 0; i < cols; i++ {
		e.InsertColumnAfter()
	}
	for i := 0; i < rows; i++ {
		e.InsertRowAfter()
	}
}

func (app *Application) loadScript(path string) error {
	st, err := lua.NewState(lua.WithLogger(app.base))
	if err != nil {
		return &ComponentError{Component: "script", Action: "create", Err: err}
	}
	app.script = st
	lua.Bind(st, app.editor)
	if err := st.DoFile(path); err != nil {
		return &ComponentError{Component: "script", Action: "run " + path, Err: err}
	}
	if fn, ok := lua.ConfirmFunc(st); ok {
		app.editor.SetConfirm(fn)
		app.scriptConfirm = true
		app.logger.Debug("merge confirmation answered by %s", path)
	}
	app.logger.Info("ran init script %s", path)
	return nil
}

// confirmPolicy maps the [table] confirm setting to a policy.
func (app *Application) confirmPolicy(mode string) block.ConfirmFunc {
	switch mode {
	case config.ConfirmAlways:
		return block.AlwaysConfirm
	case config.ConfirmNever:
		return block.NeverConfirm
	default:
		return app.prompt
	}
}

func (app *Application) applyWidths(t config.TableConfig) {
	app.view.MinWidth = t.MinWidth
	app.view.MaxWidth = t.MaxWidth
}

// applyConfig installs a reloaded configuration. The data file and the init
// script are not reloaded.
func (app *Application) applyConfig(cfg config.Config, err error) {
	if err != nil {
		app.logger.Warn("config reload: %v", err)
		app.showAlert("config not reloaded: " + err.Error())
		return
	}
	km, err := cfg.Keymap()
	if err != nil {
		app.logger.Warn("config reload: %v", err)
		app.showAlert("config not reloaded: " + err.Error())
		return
	}
	app.editor.SetKeymap(km)
	if !app.scriptConfirm {
		app.editor.SetConfirm(app.confirmPolicy(cfg.Table.Confirm))
	}
	app.applyWidths(cfg.Table)

	cfg.Script.Path = app.cfg.Script.Path
	app.cfg = cfg
	app.status = "configuration reloaded"
	app.logger.Info("configuration reloaded from %s", app.opts.ConfigPath)
}

func (app *Application) showAlert(msg string) {
	app.alert = msg
	app.logger.Info("alert: %s", msg)
}

// Close releases the watcher and the script state. It is safe to call
// more than once.
func (app *Application) Close() error {
	var errs ErrorList
	if app.watcher != nil {
		errs.Add(app.watcher.Close())
		app.watcher = nil
	}
	if app.script != nil {
		errs.Add(app.script.Close())
		app.script = nil
	}
	s := app.metrics.Snapshot()
	app.logger.Debug("closing after %s: %d events, %d frames (avg %s, max %s), %d commands",
		s.Uptime, s.Events, s.Frames, s.AvgFrame, s.MaxFrame, s.Commands)
	return errs.AsError()
}
