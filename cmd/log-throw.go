package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/logbook"
	"github.com/playbookpro/playbook/internal/program"
)

var (
	throwPlayerID string
	throwDay      int
	throwFeel     int
)

var logThrowCmd = &cobra.Command{
	Use:   "log-throw",
	Short: "Record a completed throwing day",
	RunE: func(cmd *cobra.Command, args []string) error {
		if throwDay < 1 {
			return fmt.Errorf("Invalid day index. Must be a positive integer")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		ed, err := program.OpenThrowing(ctx, st, throwPlayerID)
		if err != nil {
			return err
		}

		rec := logbook.NewRecorder(st, throwPlayerID)
		rec.StageThrow(throwDay-1, throwFeel)
		entry, err := rec.CommitThrow(ctx, throwDay-1, ed.Working())
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged throwing day %d (%s) for %s\n", entry.Day, entry.Focus, entry.Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logThrowCmd)

	logThrowCmd.Flags().StringVarP(&throwPlayerID, "player", "p", "", "Player id (required)")
	logThrowCmd.Flags().IntVarP(&throwDay, "day", "d", 0, "Program day (1-based, required)")
	logThrowCmd.Flags().IntVarP(&throwFeel, "feel", "f", 0, "How it felt, 1-10 (required)")
	logThrowCmd.MarkFlagRequired("player")
	logThrowCmd.MarkFlagRequired("day")
	logThrowCmd.MarkFlagRequired("feel")
}
