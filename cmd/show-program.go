package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/program"
)

var (
	showPlayerID   string
	showDiscipline string
)

var showProgramCmd = &cobra.Command{
	Use:   "show-program",
	Short: "Display a player's throwing or lifting program",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		switch models.Discipline(showDiscipline) {
		case models.DisciplineThrowing:
			ed, err := program.OpenThrowing(ctx, st, showPlayerID)
			if err != nil {
				return err
			}
			printThrowing(ed.Working())
		case models.DisciplineLifting:
			ed, err := program.OpenLifting(ctx, st, showPlayerID)
			if err != nil {
				return err
			}
			printLifting(ed.Working())
		default:
			return fmt.Errorf("unknown discipline %q (want throwing or lifting)", showDiscipline)
		}
		return nil
	},
}

func printThrowing(p *models.ThrowingProgram) {
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	printBoxedHeader("THROWING PROGRAM")
	for i, day := range p.Days {
		fmt.Printf("\n%s %d (Day %d): %s\n", yellow("Day"), i+1, day.Day, day.Focus)
		fmt.Println(strings.Repeat("-", 60))
		for j, sec := range day.Sections {
			fmt.Printf("  [%d] %s\n", j+1, cyan(sec.Title))
			for k, drill := range sec.Drills {
				fmt.Printf("    %d. %s — %s x %s", k+1, drill.Name, drill.Sets, drill.Reps)
				if drill.URL != "" {
					fmt.Printf("  (%s)", drill.URL)
				}
				fmt.Println()
			}
		}
	}
	fmt.Println()
}

func printLifting(p *models.LiftingProgram) {
	yellow := color.New(color.FgYellow).SprintFunc()

	printBoxedHeader("LIFTING PROGRAM")
	for i, day := range p.Days {
		fmt.Printf("\n%s %d: %s  (key: %s)\n", yellow("Workout"), i+1, day.Name, day.Key)
		fmt.Println(strings.Repeat("-", 60))
		for j, ex := range day.Exercises {
			fmt.Printf("  %d. %s — %s x %s", j+1, ex.Name, ex.Sets, ex.Reps)
			if ex.VideoURL != "" {
				fmt.Printf("  (%s)", ex.VideoURL)
			}
			fmt.Println()
		}
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(showProgramCmd)

	showProgramCmd.Flags().StringVarP(&showPlayerID, "player", "p", "", "Player id (required)")
	showProgramCmd.Flags().StringVarP(&showDiscipline, "discipline", "d", "throwing", "Program discipline: throwing or lifting")
	showProgramCmd.MarkFlagRequired("player")
}
