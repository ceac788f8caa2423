package cmd

// Edit commands for an open lifting draft. Workout days are addressed by
// their stable key (shown by show-program), exercises by 1-based position.

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/program"
	"github.com/playbookpro/playbook/internal/utils"
)

func saveLiftingDraft(draft *utils.ProgramDraft, p *models.LiftingProgram) error {
	draft.Lifting = p
	if err := utils.SaveDraft(draft); err != nil {
		return fmt.Errorf("Failed to save draft: %w", err)
	}
	return nil
}

var addWorkoutCmd = &cobra.Command{
	Use:   "add-workout",
	Short: "Append an empty workout day to the lifting draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadLiftingDraft()
		if err != nil {
			return err
		}
		p = program.AddWorkout(p)
		if err := saveLiftingDraft(draft, p); err != nil {
			return err
		}
		day := p.Days[len(p.Days)-1]
		fmt.Printf("✅ Added workout '%s' (key: %s)\n", day.Name, day.Key)
		return nil
	},
}

var removeWorkoutCmd = &cobra.Command{
	Use:   "remove-workout [day-key]",
	Short: "Remove a workout day from the lifting draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadLiftingDraft()
		if err != nil {
			return err
		}
		p, err = program.RemoveWorkout(p, args[0])
		if err != nil {
			return err
		}
		if err := saveLiftingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Removed workout %s\n", args[0])
		return nil
	},
}

var setWorkoutNameValue string

var setWorkoutNameCmd = &cobra.Command{
	Use:   "set-workout-name [day-key]",
	Short: "Rename a workout day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadLiftingDraft()
		if err != nil {
			return err
		}
		p, err = program.SetWorkoutName(p, args[0], setWorkoutNameValue)
		if err != nil {
			return err
		}
		if err := saveLiftingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Renamed workout %s\n", args[0])
		return nil
	},
}

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise [day-key]",
	Short: "Append a starter exercise to a workout day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadLiftingDraft()
		if err != nil {
			return err
		}
		p, err = program.AddExercise(p, args[0])
		if err != nil {
			return err
		}
		if err := saveLiftingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Added exercise to workout %s\n", args[0])
		return nil
	},
}

var removeExerciseCmd = &cobra.Command{
	Use:   "remove-exercise [day-key] [exercise]",
	Short: "Remove an exercise from a workout day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadLiftingDraft()
		if err != nil {
			return err
		}
		ex, err := argIndex(args[1], "exercise")
		if err != nil {
			return err
		}
		p, err = program.RemoveExercise(p, args[0], ex)
		if err != nil {
			return err
		}
		if err := saveLiftingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Removed exercise %s from workout %s\n", args[1], args[0])
		return nil
	},
}

var (
	setExerciseName  string
	setExerciseSets  string
	setExerciseReps  string
	setExerciseVideo string
)

var setExerciseCmd = &cobra.Command{
	Use:   "set-exercise [day-key] [exercise]",
	Short: "Update fields of an exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadLiftingDraft()
		if err != nil {
			return err
		}
		ex, err := argIndex(args[1], "exercise")
		if err != nil {
			return err
		}

		fields := map[program.ExerciseField]struct {
			flag  string
			value string
		}{
			program.ExerciseName:  {"name", setExerciseName},
			program.ExerciseSets:  {"sets", setExerciseSets},
			program.ExerciseReps:  {"reps", setExerciseReps},
			program.ExerciseVideo: {"video", setExerciseVideo},
		}
		for field, f := range fields {
			if !cmd.Flags().Changed(f.flag) {
				continue
			}
			p, err = program.SetExerciseField(p, args[0], ex, field, f.value)
			if err != nil {
				return err
			}
		}
		if err := saveLiftingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Updated exercise %s of workout %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addWorkoutCmd)
	rootCmd.AddCommand(removeWorkoutCmd)
	rootCmd.AddCommand(setWorkoutNameCmd)
	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(removeExerciseCmd)
	rootCmd.AddCommand(setExerciseCmd)

	setWorkoutNameCmd.Flags().StringVarP(&setWorkoutNameValue, "value", "v", "", "New workout name")
	setWorkoutNameCmd.MarkFlagRequired("value")
	setExerciseCmd.Flags().StringVar(&setExerciseName, "name", "", "Exercise name")
	setExerciseCmd.Flags().StringVar(&setExerciseSets, "sets", "", "Sets")
	setExerciseCmd.Flags().StringVar(&setExerciseReps, "reps", "", "Reps")
	setExerciseCmd.Flags().StringVar(&setExerciseVideo, "video", "", "Demo video URL")
}
