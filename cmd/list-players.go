package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/store"
)

var listPlayersCmd = &cobra.Command{
	Use:   "list-players",
	Short: "List the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		snaps, err := st.GetAll(context.Background(), store.PlayersCollection)
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}
		if len(snaps) == 0 {
			fmt.Println("No players on the roster yet.")
			return nil
		}

		name := color.New(color.FgGreen, color.Bold).SprintFunc()
		for _, snap := range snaps {
			var p models.Player
			if err := json.Unmarshal(snap.Data, &p); err != nil {
				continue
			}
			fmt.Printf("• %s  (id: %s, since %s)\n", name(p.Name), snap.ID(), p.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listPlayersCmd)
}
