package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jbarrault/lexiq/internal/deck"
)

var importCmd = &cobra.Command{
	Use:   "import [deck.json ...]",
	Short: "Import flashcard decks",
	Long: "Import validates each deck file against the deck schema and upserts its\n" +
		"cards. Re-importing a deck updates existing cards in place. With no\n" +
		"arguments, all *.json files in the configured deck directory are imported.",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DeckDir == "" {
				return fmt.Errorf("no deck files given and no deck_dir configured")
			}
			paths, err = filepath.Glob(filepath.Join(cfg.DeckDir, "*.json"))
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no *.json files in %s", cfg.DeckDir)
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		for _, path := range paths {
			d, err := deck.Load(path)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			for _, c := range d.Cards {
				if err := st.UpsertCard(ctx, c); err != nil {
					return fmt.Errorf("import %s: card %s: %w", path, c.ID, err)
				}
			}
			fmt.Printf("%s: imported %d cards (%s)\n", path, len(d.Cards), d.Name)
		}
		return nil
	},
}
