package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohanverma/arithmo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded games",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes every recorded game. Run again with --force to confirm.")
			return nil
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

		ctx := cmd.Context()
		n, err := st.Results().Count(ctx)
		if err != nil {
			return fmt.Errorf("count results: %w", err)
		}
		if err := st.Results().Clear(ctx); err != nil {
			return fmt.Errorf("clear results: %w", err)
		}

		fmt.Printf("Deleted %d recorded games.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the data")
}
