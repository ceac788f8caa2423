package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/logbook"
)

var (
	wellnessPlayerID string
	wellnessInput    logbook.WellnessInput
)

var logWellnessCmd = &cobra.Command{
	Use:   "log-wellness",
	Short: "Record today's wellness check-in (scores are 1-10)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		rec := logbook.NewRecorder(st, wellnessPlayerID)
		rec.StageWellness(wellnessInput)
		entry, err := rec.CommitWellness(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged wellness check-in for %s\n", entry.Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logWellnessCmd)

	logWellnessCmd.Flags().StringVarP(&wellnessPlayerID, "player", "p", "", "Player id (required)")
	logWellnessCmd.Flags().IntVar(&wellnessInput.OverallFeel, "overall", 0, "Overall feel")
	logWellnessCmd.Flags().IntVar(&wellnessInput.ArmFeel, "arm", 0, "Arm feel")
	logWellnessCmd.Flags().IntVar(&wellnessInput.ShoulderFeel, "shoulder", 0, "Shoulder feel")
	logWellnessCmd.Flags().IntVar(&wellnessInput.BackFeel, "back", 0, "Back feel")
	logWellnessCmd.Flags().IntVar(&wellnessInput.LegsFeel, "legs", 0, "Legs feel")
	logWellnessCmd.Flags().Float64Var(&wellnessInput.SleepHours, "sleep", 0, "Hours slept")
	logWellnessCmd.Flags().BoolVar(&wellnessInput.HitCalories, "calories", false, "Hit the calorie target")
	logWellnessCmd.Flags().BoolVar(&wellnessInput.HitProtein, "protein", false, "Hit the protein target")
	logWellnessCmd.Flags().StringVar(&wellnessInput.Notes, "notes", "", "Free-form notes")
	logWellnessCmd.MarkFlagRequired("player")
}
