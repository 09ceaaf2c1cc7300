package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resetScores  bool
	resetSession bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved game data",
	Long:  "Delete the saved session, the score history, or both. With no flags everything is cleared.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		all := !resetScores && !resetSession

		if resetSession || all {
			if err := st.SessionRepo().Clear(ctx); err != nil {
				return fmt.Errorf("clear saved session: %w", err)
			}
			fmt.Println("Saved session cleared.")
		}
		if resetScores || all {
			if err := st.ScoreRepo().Clear(ctx); err != nil {
				return fmt.Errorf("clear scores: %w", err)
			}
			fmt.Println("Score history cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetScores, "scores", false, "clear only the score history")
	resetCmd.Flags().BoolVar(&resetSession, "session", false, "clear only the saved session")
	resetCmd.SetContext(context.Background())
}
