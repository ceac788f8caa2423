package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/utils"
)

var discardDraftCmd = &cobra.Command{
	Use:   "discard-draft",
	Short: "Throw away the open program draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.DraftExists() {
			return fmt.Errorf("No draft open")
		}
		if err := utils.ClearDraft(); err != nil {
			return fmt.Errorf("Failed to discard draft: %w", err)
		}
		fmt.Println("✅ Draft discarded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discardDraftCmd)
}
