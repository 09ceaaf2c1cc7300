package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the score history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		scores, err := st.ScoreRepo().Top(cmd.Context())
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}

		if len(scores) == 0 {
			fmt.Println("No scores recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tSCORE\tLEVEL\tCORRECT\tAVG TIME\tDATE")
		for i, rec := range scores {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d/%d\t%.1fs\t%s\n",
				i+1,
				rec.PlayerName,
				rec.Score,
				rec.Level,
				rec.CorrectAnswers,
				rec.TotalQuestions,
				rec.AverageTime,
				rec.CreatedAt.Local().Format("2006-01-02"),
			)
		}
		return w.Flush()
	},
}

func init() {
	scoresCmd.SetContext(context.Background())
}
