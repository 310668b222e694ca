package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbarrault/lexiq/internal/config"
	"github.com/jbarrault/lexiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lexiq",
	Short: "Terminal flashcard quizzes for language learners",
	Long:  "Lexiq — adaptive vocabulary quizzes over your own flashcard decks, in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIQ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/lexiq/config.yaml)")
	rootCmd.PersistentFlags().String("deck-dir", "", "Directory scanned for deck files by import")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config file path and builds the layered
// configuration from defaults, file, env, and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path, cmd.Flags())
}

// openStore opens the SQLite store at the configured path, creating the
// parent directory when needed.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureDir(cfg.DB); err != nil {
		return nil, err
	}
	return store.Open(cfg.DB)
}
