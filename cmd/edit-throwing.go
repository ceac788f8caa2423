package cmd

// Edit commands for an open throwing draft. Indices are 1-based as printed
// by show-program; every command applies one pure edit operation to the
// draft and writes it back, never touching the store.

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/program"
	"github.com/playbookpro/playbook/internal/utils"
)

func saveThrowingDraft(draft *utils.ProgramDraft, p *models.ThrowingProgram) error {
	draft.Throwing = p
	if err := utils.SaveDraft(draft); err != nil {
		return fmt.Errorf("Failed to save draft: %w", err)
	}
	return nil
}

func argIndex(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("Invalid %s index. Must be a positive integer", what)
	}
	return n - 1, nil
}

var addDayCmd = &cobra.Command{
	Use:   "add-day",
	Short: "Append an empty day to the throwing draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		p = program.AddDay(p)
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Added day %d\n", len(p.Days))
		return nil
	},
}

var removeDayCmd = &cobra.Command{
	Use:   "remove-day [day]",
	Short: "Remove a day from the throwing draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		p, err = program.RemoveDay(p, day)
		if err != nil {
			return err
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Removed day %s\n", args[0])
		return nil
	},
}

var setFocusValue string

var setFocusCmd = &cobra.Command{
	Use:   "set-focus [day]",
	Short: "Set the focus line of a throwing day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		p, err = program.SetDayFocus(p, day, setFocusValue)
		if err != nil {
			return err
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Set focus for day %s\n", args[0])
		return nil
	},
}

var addSectionCmd = &cobra.Command{
	Use:   "add-section [day]",
	Short: "Append an empty section to a throwing day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		p, err = program.AddSection(p, day)
		if err != nil {
			return err
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Added section to day %s\n", args[0])
		return nil
	},
}

var removeSectionCmd = &cobra.Command{
	Use:   "remove-section [day] [section]",
	Short: "Remove a section from a throwing day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		sec, err := argIndex(args[1], "section")
		if err != nil {
			return err
		}
		p, err = program.RemoveSection(p, day, sec)
		if err != nil {
			return err
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Removed section %s from day %s\n", args[1], args[0])
		return nil
	},
}

var setSectionTitleValue string

var setSectionTitleCmd = &cobra.Command{
	Use:   "set-section-title [day] [section]",
	Short: "Rename a section of a throwing day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		sec, err := argIndex(args[1], "section")
		if err != nil {
			return err
		}
		p, err = program.SetSectionTitle(p, day, sec, setSectionTitleValue)
		if err != nil {
			return err
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Renamed section %s of day %s\n", args[1], args[0])
		return nil
	},
}

var addDrillCmd = &cobra.Command{
	Use:   "add-drill [day] [section]",
	Short: "Append a starter drill to a section",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		sec, err := argIndex(args[1], "section")
		if err != nil {
			return err
		}
		p, err = program.AddDrill(p, day, sec)
		if err != nil {
			return err
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Added drill to day %s section %s\n", args[0], args[1])
		return nil
	},
}

var removeDrillCmd = &cobra.Command{
	Use:   "remove-drill [day] [section] [drill]",
	Short: "Remove a drill from a section",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		sec, err := argIndex(args[1], "section")
		if err != nil {
			return err
		}
		drill, err := argIndex(args[2], "drill")
		if err != nil {
			return err
		}
		p, err = program.RemoveDrill(p, day, sec, drill)
		if err != nil {
			return err
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Removed drill %s\n", args[2])
		return nil
	},
}

var (
	setDrillName string
	setDrillSets string
	setDrillReps string
	setDrillURL  string
)

var setDrillCmd = &cobra.Command{
	Use:   "set-drill [day] [section] [drill]",
	Short: "Update fields of a drill",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, p, err := loadThrowingDraft()
		if err != nil {
			return err
		}
		day, err := argIndex(args[0], "day")
		if err != nil {
			return err
		}
		sec, err := argIndex(args[1], "section")
		if err != nil {
			return err
		}
		drill, err := argIndex(args[2], "drill")
		if err != nil {
			return err
		}

		fields := map[program.DrillField]struct {
			flag  string
			value string
		}{
			program.DrillName: {"name", setDrillName},
			program.DrillSets: {"sets", setDrillSets},
			program.DrillReps: {"reps", setDrillReps},
			program.DrillURL:  {"url", setDrillURL},
		}
		for field, f := range fields {
			if !cmd.Flags().Changed(f.flag) {
				continue
			}
			p, err = program.SetDrillField(p, day, sec, drill, field, f.value)
			if err != nil {
				return err
			}
		}
		if err := saveThrowingDraft(draft, p); err != nil {
			return err
		}
		fmt.Printf("✅ Updated drill %s\n", args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addDayCmd)
	rootCmd.AddCommand(removeDayCmd)
	rootCmd.AddCommand(setFocusCmd)
	rootCmd.AddCommand(addSectionCmd)
	rootCmd.AddCommand(removeSectionCmd)
	rootCmd.AddCommand(setSectionTitleCmd)
	rootCmd.AddCommand(addDrillCmd)
	rootCmd.AddCommand(removeDrillCmd)
	rootCmd.AddCommand(setDrillCmd)

	setFocusCmd.Flags().StringVarP(&setFocusValue, "value", "v", "", "New focus text")
	setFocusCmd.MarkFlagRequired("value")
	setSectionTitleCmd.Flags().StringVarP(&setSectionTitleValue, "value", "v", "", "New section title")
	setSectionTitleCmd.MarkFlagRequired("value")
	setDrillCmd.Flags().StringVar(&setDrillName, "name", "", "Drill name")
	setDrillCmd.Flags().StringVar(&setDrillSets, "sets", "", "Sets")
	setDrillCmd.Flags().StringVar(&setDrillReps, "reps", "", "Reps")
	setDrillCmd.Flags().StringVar(&setDrillURL, "url", "", "Demo video URL")
}
