package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ultrakill-save-editor/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the last edited save slot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.DefaultStore()
		if err != nil {
			return err
		}
		if err := store.Reset(); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session reset.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
