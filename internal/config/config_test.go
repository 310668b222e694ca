package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("LEXIQ_DB", "")
	os.Unsetenv("LEXIQ_DB")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.DB)
	require.Equal(t, "lexiq.db", filepath.Base(cfg.DB))
	require.Empty(t, cfg.DeckDir)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "db: /tmp/custom.db\ndeck_dir: /tmp/decks\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.db", cfg.DB)
	require.Equal(t, "/tmp/decks", cfg.DeckDir)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.DB)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: /tmp/file.db\n"), 0o644))

	t.Setenv("LEXIQ_DB", "/tmp/env.db")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "/tmp/env.db", cfg.DB)
}

func TestLoadFlagsWin(t *testing.T) {
	t.Setenv("LEXIQ_DB", "/tmp/env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "database path")
	flags.String("deck-dir", "", "deck directory")
	require.NoError(t, flags.Parse([]string{"--db", "/tmp/flag.db"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	require.Equal(t, "/tmp/flag.db", cfg.DB)
}
