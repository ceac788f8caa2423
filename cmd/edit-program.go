package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/program"
	"github.com/playbookpro/playbook/internal/utils"
)

var (
	editPlayerID   string
	editDiscipline string
)

var editProgramCmd = &cobra.Command{
	Use:   "edit-program",
	Short: "Open a draft of a player's program for editing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.DraftExists() {
			return fmt.Errorf("A draft is already open; run save-program or discard-draft first")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		draft := &utils.ProgramDraft{
			PlayerID:   editPlayerID,
			Discipline: editDiscipline,
		}

		switch models.Discipline(editDiscipline) {
		case models.DisciplineThrowing:
			ed, err := program.OpenThrowing(ctx, st, editPlayerID)
			if err != nil {
				return err
			}
			draft.BaseSeq = ed.RemoteSeq()
			draft.Throwing = ed.Working()
		case models.DisciplineLifting:
			ed, err := program.OpenLifting(ctx, st, editPlayerID)
			if err != nil {
				return err
			}
			draft.BaseSeq = ed.RemoteSeq()
			draft.Lifting = ed.Working()
		default:
			return fmt.Errorf("unknown discipline %q (want throwing or lifting)", editDiscipline)
		}

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save draft: %w", err)
		}

		fmt.Printf("✅ Draft opened for player %s (%s). Edit it, then run save-program\n", editPlayerID, editDiscipline)
		return nil
	},
}

// loadThrowingDraft loads the open draft and checks it is a throwing one.
func loadThrowingDraft() (*utils.ProgramDraft, *models.ThrowingProgram, error) {
	if !utils.DraftExists() {
		return nil, nil, fmt.Errorf("No draft open; run edit-program first")
	}
	draft, err := utils.LoadDraft()
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to load draft: %w", err)
	}
	if draft.Throwing == nil {
		return nil, nil, fmt.Errorf("The open draft is a %s draft", draft.Discipline)
	}
	draft.Throwing.Normalize()
	return draft, draft.Throwing, nil
}

// loadLiftingDraft loads the open draft and checks it is a lifting one.
func loadLiftingDraft() (*utils.ProgramDraft, *models.LiftingProgram, error) {
	if !utils.DraftExists() {
		return nil, nil, fmt.Errorf("No draft open; run edit-program first")
	}
	draft, err := utils.LoadDraft()
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to load draft: %w", err)
	}
	if draft.Lifting == nil {
		return nil, nil, fmt.Errorf("The open draft is a %s draft", draft.Discipline)
	}
	draft.Lifting.Normalize()
	return draft, draft.Lifting, nil
}

func init() {
	rootCmd.AddCommand(editProgramCmd)

	editProgramCmd.Flags().StringVarP(&editPlayerID, "player", "p", "", "Player id (required)")
	editProgramCmd.Flags().StringVarP(&editDiscipline, "discipline", "d", "throwing", "Program discipline: throwing or lifting")
	editProgramCmd.MarkFlagRequired("player")
}
