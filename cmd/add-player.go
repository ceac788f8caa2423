package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/store"
)

var (
	newPlayerName     string
	newPlayerPassword string
	newPlayerCoach    string
)

var addPlayerCmd = &cobra.Command{
	Use:   "add-player",
	Short: "Add a player to the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		if newPlayerName == "" || newPlayerPassword == "" {
			return fmt.Errorf("player name and password must both be provided")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		player := models.Player{
			Name:      newPlayerName,
			Password:  newPlayerPassword,
			CoachID:   newPlayerCoach,
			CreatedAt: time.Now().UTC(),
		}
		id, err := st.Add(context.Background(), store.PlayersCollection, player)
		if err != nil {
			return fmt.Errorf("Failed to add player: %w", err)
		}

		fmt.Printf("✅ Added player '%s' (%s)\n", player.Name, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addPlayerCmd)

	addPlayerCmd.Flags().StringVarP(&newPlayerName, "name", "n", "", "Player name (required)")
	addPlayerCmd.Flags().StringVarP(&newPlayerPassword, "password", "w", "", "Player password (required)")
	addPlayerCmd.Flags().StringVarP(&newPlayerCoach, "coach", "c", "", "Owning coach id")
	addPlayerCmd.MarkFlagRequired("name")
	addPlayerCmd.MarkFlagRequired("password")
}
