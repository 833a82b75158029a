// Package main is the entry point for the gridblock table editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/gridblock/internal/app"
	"github.com/dshills/gridblock/internal/config"
	"github.com/dshills/gridblock/internal/logging"
	"github.com/dshills/gridblock/internal/render/ascii"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	app.Options
	logLevel string
	dump     bool
	html     bool
	keys     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	f.Config = &cfg
	if f.keys {
		if err := listKeys(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	f.Headless = f.dump || f.html
	f.ReadOnly = f.html

	logger, closeLog, err := newLogger(cfg.Log, f.Headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	f.Logger = logger

	application, err := app.New(f.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("shutdown: %v", err)
		}
	}()

	if f.Headless {
		if err := dump(os.Stdout, application, f.html); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		<-signals
		application.Quit()
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if application.Dirty() {
		fmt.Fprintln(os.Stderr, "table has unsaved changes")
	}
	return 0
}

// dump writes the table as text or as HTML.
func dump(w io.Writer, application *app.Application, html bool) error {
	e := application.Editor()
	if html {
		if err := e.ExportHTML(w); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	return ascii.Write(w, e.Grid(), e.Headings())
}

// listKeys prints the configured key bindings.
func listKeys(w io.Writer, cfg config.Config) error {
	km, err := cfg.Keymap()
	if err != nil {
		return err
	}
	for _, line := range km.Help() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// newLogger builds the logger from [log]. The terminal UI owns stderr, so
// an interactive session without a log file logs nothing.
func newLogger(cfg config.LogConfig, headless bool) (*logging.Logger, func(), error) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Level)
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		lc.Output = f
		return logging.New(lc), func() { _ = f.Close() }, nil
	case headless:
		return logging.New(lc), func() {}, nil
	default:
		return logging.Discard(), func() {}, nil
	}
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.DataPath, "data", "", "Table data file to load and save")
	flag.StringVar(&f.ScriptPath, "script", "", "Lua init script (overrides [script] path)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&f.dump, "dump", false, "Print the table as text and exit")
	flag.BoolVar(&f.html, "html", false, "Print the table as read-only HTML and exit")
	flag.BoolVar(&f.keys, "keys", false, "List the key bindings and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gridblock - editable table block\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridblock [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridblock                      Edit a new 3x3 table\n")
		fmt.Fprintf(os.Stderr, "  gridblock -data t.json         Edit and save t.json\n")
		fmt.Fprintf(os.Stderr, "  gridblock -data t.json -dump   Print t.json as text\n")
		fmt.Fprintf(os.Stderr, "  gridblock -data t.json -html   Print t.json as HTML\n")
		fmt.Fprintf(os.Stderr, "  gridblock -data t.html         Edit and save an HTML table\n")
		fmt.Fprintf(os.Stderr, "  gridblock -keys                List the key bindings\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("gridblock %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if f.logLevel != "" && !logging.ValidLevel(f.logLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}

	return f
}
