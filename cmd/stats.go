package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		totals, err := st.LoadTotals(ctx)
		if err != nil {
			return err
		}
		cardCount, err := st.CardCount(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Cards:              %d\n", cardCount)
		fmt.Printf("Quizzes completed:  %d\n", totals.Sessions)
		fmt.Printf("Questions answered: %d\n", totals.Answers)
		fmt.Printf("Correct:            %d\n", totals.Correct)
		fmt.Printf("Accuracy:           %.0f%%\n", totals.Accuracy()*100)
		fmt.Printf("Best score:         %d\n", totals.BestScore)
		return nil
	},
}
