// Package config loads rpncalc.toml, discovered by walking parent
// directories from the working directory. Missing file means defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest looked up in the working directory and its
// parents.
const FileName = "rpncalc.toml"

// Config is the full rpncalc configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	REPL    REPLConfig    `toml:"repl"`
	Session SessionConfig `toml:"session"`
}

// DisplayConfig controls how stack values are rendered.
type DisplayConfig struct {
	// Precision is the number of decimal places stack values are
	// rounded to for display.
	Precision int `toml:"precision"`
}

// REPLConfig controls the interactive session.
type REPLConfig struct {
	Prompt string `toml:"prompt"`
	// HistoryLimit caps the number of remembered input lines.
	HistoryLimit int `toml:"history_limit"`
}

// SessionConfig controls persistence of REPL state between runs.
type SessionConfig struct {
	Persist bool `toml:"persist"`
}

// Default returns the configuration used when no rpncalc.toml exists.
func Default() Config {
	return Config{
		Display: DisplayConfig{Precision: 6},
		REPL:    REPLConfig{Prompt: "=> ", HistoryLimit: 200},
		Session: SessionConfig{Persist: false},
	}
}

// Find walks up from startDir looking for rpncalc.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load returns the effective configuration: defaults overlaid with the
// nearest rpncalc.toml, if any. The returned path is empty when no
// manifest was found.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return cfg, "", err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, path, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Display.Precision < 0 {
		cfg.Display.Precision = 0
	}
	if cfg.REPL.HistoryLimit < 0 {
		cfg.REPL.HistoryLimit = 0
	}
	return cfg, path, nil
}
