package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/logbook"
	"github.com/playbookpro/playbook/internal/program"
	"github.com/playbookpro/playbook/internal/utils"
)

var commitDayKey string

var commitLiftCmd = &cobra.Command{
	Use:   "commit-lift",
	Short: "Commit the staged lifting session as one atomic set of log records",
	RunE: func(cmd *cobra.Command, args []string) error {
		staged, err := utils.LoadStagedLifts()
		if err != nil {
			return fmt.Errorf("Failed to load staged lifts: %w", err)
		}
		if staged.PlayerID == "" {
			return fmt.Errorf("Nothing staged; run stage-lift first")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		ed, err := program.OpenLifting(ctx, st, staged.PlayerID)
		if err != nil {
			return err
		}

		rec := logbook.NewRecorder(st, staged.PlayerID)
		for _, e := range staged.Day(commitDayKey) {
			rec.StageLift(commitDayKey, e.Exercise, logbook.SetEntry{Weight: e.Weight, Reps: e.Reps})
		}

		records, err := rec.CommitLift(ctx, commitDayKey, ed.Working())
		if err != nil {
			// Nothing was written; the staged buffer stays for a retry.
			return err
		}

		staged.DropDay(commitDayKey)
		if len(staged.Days) == 0 {
			if err := utils.ClearStagedLifts(); err != nil {
				return fmt.Errorf("session committed but failed to clear staged lifts: %w", err)
			}
		} else if err := utils.SaveStagedLifts(staged); err != nil {
			return fmt.Errorf("session committed but failed to clear staged lifts: %w", err)
		}

		fmt.Printf("✅ Logged %d exercises for %s\n", len(records), records[0].Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitLiftCmd)

	commitLiftCmd.Flags().StringVarP(&commitDayKey, "day-key", "k", "", "Workout day key (required)")
	commitLiftCmd.MarkFlagRequired("day-key")
}
