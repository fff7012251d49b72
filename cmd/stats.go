package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall game statistics and trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		tracker, err := loadTracker(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		if tracker.Len() == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		pb := tracker.PersonalBest("", 0)
		fmt.Printf("Games played:     %d\n", pb.TotalGames)
		fmt.Printf("Average score:    %d\n", pb.AverageScore)
		fmt.Printf("Average accuracy: %d%%\n", pb.AverageAccuracy)
		fmt.Printf("Best score:       %d (%s, %d stars)\n",
			pb.BestScore.Score, pb.BestScore.Grade, pb.BestScore.Stars)

		trend := tracker.ProgressTrend(history.DefaultTrendWindow)
		fmt.Printf("\nTrend: %s\n", trend.Message)
		if trend.HasTrend {
			fmt.Printf("  Score change:    %+d%%\n", trend.ScoreChangePct)
			fmt.Printf("  Accuracy change: %+d points\n", trend.AccuracyChangePts)
		}

		if recs := tracker.Recommendations(); len(recs) > 0 {
			fmt.Println("\nRecommendations:")
			for _, rec := range recs {
				fmt.Printf("  - %s %s\n", rec.Message, rec.Suggestion)
			}
		}

		return nil
	},
}
