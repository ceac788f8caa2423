package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/store"
)

var deletePlayerCmd = &cobra.Command{
	Use:   "delete-player [player-id]",
	Short: "Remove a player and all of their programs and logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteTree(context.Background(), store.PlayerPath(args[0])); err != nil {
			return fmt.Errorf("Failed to delete player: %w", err)
		}

		fmt.Printf("✅ Player %s deleted\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deletePlayerCmd)
}
