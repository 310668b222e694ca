// Package config loads application configuration from, in increasing
// precedence: built-in defaults, a YAML config file, LEXIQ_* environment
// variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/jbarrault/lexiq/internal/store"
)

// Config is the application-level configuration. Quiz settings live in the
// store, not here; this covers where data lives.
type Config struct {
	// DB is the SQLite database path.
	DB string `koanf:"db" validate:"required"`

	// DeckDir is scanned for *.json deck files by `lexiq import` when no
	// explicit file argument is given.
	DeckDir string `koanf:"deck_dir"`
}

// DefaultPath returns the config file location:
// $XDG_CONFIG_HOME/lexiq/config.yaml or ~/.config/lexiq/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "lexiq", "config.yaml"), nil
}

// Load builds the configuration. The flag set may be nil; flags named
// after koanf keys (db, deck-dir) take highest precedence.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	_ = k.Set("db", dbPath)
	_ = k.Set("deck_dir", "")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	err = k.Load(env.Provider("LEXIQ_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LEXIQ_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		// Flag names use dashes, koanf keys use underscores.
		p := posflag.ProviderWithValue(flags, ".", k, func(key, value string) (string, interface{}) {
			return strings.ReplaceAll(key, "-", "_"), value
		})
		if err := k.Load(p, nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
