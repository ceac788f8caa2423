package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/store"
	"github.com/playbookpro/playbook/internal/utils"
)

var saveForce bool

var saveProgramCmd = &cobra.Command{
	Use:   "save-program",
	Short: "Save the open draft, replacing the stored program",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.DraftExists() {
			return fmt.Errorf("No draft open; run edit-program first")
		}
		draft, err := utils.LoadDraft()
		if err != nil {
			return fmt.Errorf("Failed to load draft: %w", err)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		path := store.ProgramPath(draft.PlayerID, draft.Discipline)

		// The draft records the store seq it was based on. If the remote copy
		// moved since, someone else edited the program: surface the choice
		// instead of silently overwriting either side.
		snap, err := st.Get(ctx, path)
		if err != nil && err != store.ErrNotFound {
			return fmt.Errorf("failed to check remote program: %w", err)
		}
		if snap.Exists() && snap.Seq > draft.BaseSeq && !saveForce {
			return fmt.Errorf("The remote program changed while this draft was open. Re-run edit-program to reload it, or save-program --force to overwrite")
		}

		// TOML drafts drop empty nested sequences; repair the shape before the
		// document goes back to the store.
		var doc any
		if draft.Throwing != nil {
			draft.Throwing.Normalize()
			doc = draft.Throwing
		} else {
			draft.Lifting.Normalize()
			doc = draft.Lifting
		}
		if err := st.Set(ctx, path, doc); err != nil {
			// Local edits survive a failed save: the draft stays on disk.
			return fmt.Errorf("Failed to save program, draft kept: %w", err)
		}

		if err := utils.ClearDraft(); err != nil {
			return fmt.Errorf("program saved but failed to clear draft: %w", err)
		}

		fmt.Printf("✅ Saved %s program for player %s\n", draft.Discipline, draft.PlayerID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveProgramCmd)

	saveProgramCmd.Flags().BoolVarP(&saveForce, "force", "f", false, "Overwrite even if the remote program changed")
}
