package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rohanverma/arithmo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "arithmo",
	Short: "Arithmetic practice game for kids",
	Long:  "Arithmo — a terminal arithmetic game where kids practice addition, subtraction, multiplication, and division.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ARITHMO_DB env var)")
	rootCmd.PersistentFlags().String("debug-log", "", "Write diagnostics to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ARITHMO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the diagnostics logger. Without --debug-log it is
// silent, so log lines never bleed into the TUI.
func newLogger(cmd *cobra.Command) (*log.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("debug-log")
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }, nil
}
