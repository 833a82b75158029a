package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GRIDBLOCK_"

// Load returns the defaults overridden by the TOML file at path and then by
// the environment. An empty path or a missing file skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}
	if err := NewEnvLoader(EnvPrefix).Apply(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse returns the defaults overridden by TOML data. The environment is
// not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode("<reader>", data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			pe.Message = strings.TrimSpace(sme.String())
		}
		return pe
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	return nil
}

// EnvLoader overrides settings from environment variables.
type EnvLoader struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader for variables with the given prefix.
// The prefix should include the trailing underscore (e.g., "GRIDBLOCK_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: os.LookupEnv}
}

// settingPaths lists the settings that can come from the environment.
var settingPaths = []string{
	"log.level",
	"log.file",
	"table.rows",
	"table.cols",
	"table.headings",
	"table.confirm",
	"table.minWidth",
	"table.maxWidth",
	"script.path",
}

// EnvName returns the variable name for a setting path:
// table.minWidth becomes GRIDBLOCK_TABLE_MIN_WIDTH.
func (l *EnvLoader) EnvName(path string) string {
	var b strings.Builder
	b.WriteString(l.prefix)
	for _, r := range path {
		switch {
		case r == '.':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			b.WriteByte('_')
			b.WriteRune(r)
		default:
			b.WriteString(strings.ToUpper(string(r)))
		}
	}
	return b.String()
}

// Apply sets every setting whose variable is present. Empty values are
// treated as set.
func (l *EnvLoader) Apply(cfg *Config) error {
	for _, path := range settingPaths {
		name := l.EnvName(path)
		val, ok := l.lookup(name)
		if !ok {
			continue
		}
		if err := set(cfg, path, val); err != nil {
			return &ParseError{Path: name, Message: err.Error(), Err: err}
		}
	}
	return nil
}

func set(cfg *Config, path, val string) error {
	switch path {
	case "log.level":
		cfg.Log.Level = strings.ToLower(val)
	case "log.file":
		cfg.Log.File = val
	case "table.rows":
		return setInt(&cfg.Table.Rows, val)
	case "table.cols":
		return setInt(&cfg.Table.Cols, val)
	case "table.headings":
		b, err := parseBool(val)
		if err != nil {
			return err
		}
		cfg.Table.Headings = b
	case "table.confirm":
		cfg.Table.Confirm = strings.ToLower(val)
	case "table.minWidth":
		return setInt(&cfg.Table.MinWidth, val)
	case "table.maxWidth":
		return setInt(&cfg.Table.MaxWidth, val)
	case "script.path":
		cfg.Script.Path = val
	default:
		return fmt.Errorf("unknown setting %s", path)
	}
	return nil
}

func setInt(dst *int, val string) error {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// parseBool accepts the spellings of a boolean people put in shells.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
