package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohanverma/arithmo/internal/app"
	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into the game, skipping the splash screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

// runApp opens the store, loads history, and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, closeLogger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer closeLogger()

	tracker, err := loadTracker(cmd.Context(), st)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	return app.Run(app.Options{
		Generator:  question.NewGenerator(),
		Results:    st.Results(),
		Tracker:    tracker,
		Logger:     logger,
		SkipSplash: skipSplash,
	})
}

// loadTracker seeds an in-memory tracker from the stored results.
func loadTracker(ctx context.Context, st *store.Store) (*history.Tracker, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	records, err := st.Results().Recent(ctx, history.MaxRecords)
	if err != nil {
		return nil, err
	}
	return history.NewTrackerWith(records), nil
}
