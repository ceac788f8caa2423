package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/utils"
)

var (
	stagePlayerID string
	stageDayKey   string
	stageExercise int
	stageWeight   float64
	stageReps     int
)

var stageLiftCmd = &cobra.Command{
	Use:   "stage-lift",
	Short: "Stage one exercise result of a lifting session (commit with commit-lift)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if stageExercise < 1 {
			return fmt.Errorf("Invalid exercise index. Must be a positive integer")
		}

		staged, err := utils.LoadStagedLifts()
		if err != nil {
			return fmt.Errorf("Failed to load staged lifts: %w", err)
		}
		if staged.PlayerID != "" && staged.PlayerID != stagePlayerID {
			return fmt.Errorf("Staged lifts belong to player %s; commit or clear them first", staged.PlayerID)
		}

		staged.PlayerID = stagePlayerID
		staged.Stage(stageDayKey, stageExercise-1, stageWeight, stageReps)
		if err := utils.SaveStagedLifts(staged); err != nil {
			return fmt.Errorf("Failed to save staged lifts: %w", err)
		}

		fmt.Printf("✅ Staged exercise %d of workout %s: %.1f x %d\n", stageExercise, stageDayKey, stageWeight, stageReps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stageLiftCmd)

	stageLiftCmd.Flags().StringVarP(&stagePlayerID, "player", "p", "", "Player id (required)")
	stageLiftCmd.Flags().StringVarP(&stageDayKey, "day-key", "k", "", "Workout day key (required)")
	stageLiftCmd.Flags().IntVarP(&stageExercise, "exercise", "e", 0, "Exercise index, 1-based (required)")
	stageLiftCmd.Flags().Float64VarP(&stageWeight, "weight", "w", 0, "Weight used")
	stageLiftCmd.Flags().IntVarP(&stageReps, "reps", "r", 0, "Reps performed")
	stageLiftCmd.MarkFlagRequired("player")
	stageLiftCmd.MarkFlagRequired("day-key")
	stageLiftCmd.MarkFlagRequired("exercise")
}
