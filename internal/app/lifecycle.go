package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// isHTML reports whether a data file holds an HTML table rather than the
// block's JSON data.
func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// loadData fills the editor from the data file, or seeds a fresh grid
// from the [table] size when there is no file yet.
func (app *Application) loadData() error {
	path := app.opts.DataPath
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			app.logger.Info("%s does not exist, starting a new table", path)
		case err != nil:
			return &OperationError{Op: "load", Target: path, Err: err}
		default:
			load := app.editor.Load
			if isHTML(path) {
				load = func(data []byte) error { return app.editor.ImportHTML(bytes.NewReader(data)) }
			}
			if err := load(data); err != nil {
				return &OperationError{Op: "load", Target: path, Err: err}
			}
			app.logger.Info("loaded %dx%d table from %s", app.editor.Rows(), app.editor.Cols(), path)
			return nil
		}
	}
	Seed(app.editor, app.cfg.Table.Rows, app.cfg.Table.Cols)
	return nil
}

// Save writes the block data to the data file. A .html or .htm data file
// gets the rendered table.
func (app *Application) Save() error {
	path := app.opts.DataPath
	if path == "" {
		return ErrNoDataFile
	}
	var data []byte
	var err error
	if isHTML(path) {
		var buf bytes.Buffer
		err = app.editor.ExportHTML(&buf)
		data = buf.Bytes()
	} else {
		data, err = app.editor.Save()
	}
	if err != nil {
		return &OperationError{Op: "save", Target: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &OperationError{Op: "save", Target: path, Err: err}
	}
	app.dirty = false
	app.status = "saved " + path
	app.logger.Info("saved %dx%d table to %s", app.editor.Rows(), app.editor.Cols(), path)
	return nil
}
