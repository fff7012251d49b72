package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/store"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show personal bests, optionally per operation and level",
	RunE: func(cmd *cobra.Command, args []string) error {
		opFlag, _ := cmd.Flags().GetString("op")
		levelFlag, _ := cmd.Flags().GetInt("level")

		op := question.Operation(opFlag)
		if op != "" && !op.Valid() {
			return fmt.Errorf("unknown operation %q (use addition, subtraction, multiplication, or division)", opFlag)
		}
		level := question.Level(levelFlag)
		if level != 0 && !level.Valid() {
			return fmt.Errorf("level must be 1, 2, or 3")
		}

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

		pb := tracker.PersonalBest(op, level)
		if pb == nil {
			fmt.Println("No matching games yet.")
			return nil
		}

		fmt.Printf("Top score:    %d (%s)\n", pb.BestScore.Score, pb.BestScore.Grade)
		fmt.Printf("Top accuracy: %d%%\n", pb.BestAccuracy.Accuracy)
		fmt.Printf("Fastest game: %s\n", pb.BestSpeed.TotalTime.Round(time.Second))
		fmt.Printf("Games:        %d\n", pb.TotalGames)

		return nil
	},
}

func init() {
	bestCmd.Flags().String("op", "", "Filter by operation (addition, subtraction, multiplication, division)")
	bestCmd.Flags().Int("level", 0, "Filter by level (1-3)")
}
